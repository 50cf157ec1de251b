package investigator

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-storyteller/internal/redis"
)

const (
	investigatorKeyPrefix = "investigator:"

	// Error messages
	errInvestigatorNil = "investigator cannot be nil"
	errIDEmpty         = "investigator ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis investigator repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed investigator repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, investigatorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("investigator %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get investigator")
	}

	var inv entities.Investigator
	if err := json.Unmarshal([]byte(result), &inv); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal investigator")
	}

	return &GetOutput{Investigator: &inv}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Investigator == nil {
		return nil, errors.InvalidArgument(errInvestigatorNil)
	}
	if input.Investigator.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	inv := input.Investigator.Clone()
	now := r.clock.Now().Unix()
	if inv.CreatedAt == 0 {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now

	data, err := json.Marshal(inv)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal investigator")
	}

	// No TTL for investigators
	if err := r.client.Set(ctx, investigatorKeyPrefix+inv.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save investigator")
	}

	return &SaveOutput{Investigator: inv}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted, err := r.client.Del(ctx, investigatorKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete investigator")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("investigator %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
