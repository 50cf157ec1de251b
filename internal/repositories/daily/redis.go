package daily

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-storyteller/internal/redis"
)

const (
	// Key pattern: daily:shop:{date}
	shopKeyPrefix = "daily:shop:"
	defaultTTL    = 48 * time.Hour

	errShopNil   = "shop cannot be nil"
	errDateEmpty = "date cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL bounds how long old shops linger; zero uses two days
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for daily records
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisRepository{client: cfg.Client, ttl: ttl}, nil
}

func (r *redisRepository) GetShop(ctx context.Context, input GetShopInput) (*GetShopOutput, error) {
	if input.Date == "" {
		return nil, errors.InvalidArgument(errDateEmpty)
	}

	shop, err := r.get(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	return &GetShopOutput{Shop: shop}, nil
}

func (r *redisRepository) SaveShop(ctx context.Context, input SaveShopInput) (*SaveShopOutput, error) {
	if input.Shop == nil {
		return nil, errors.InvalidArgument(errShopNil)
	}
	if input.Shop.Date == "" {
		return nil, errors.InvalidArgument(errDateEmpty)
	}

	data, err := json.Marshal(input.Shop)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal shop")
	}

	created, err := r.client.SetNX(ctx, shopKeyPrefix+input.Shop.Date, data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save shop")
	}
	if created {
		return &SaveShopOutput{Shop: input.Shop, Created: true}, nil
	}

	existing, err := r.get(ctx, input.Shop.Date)
	if err != nil {
		return nil, err
	}
	return &SaveShopOutput{Shop: existing}, nil
}

func (r *redisRepository) get(ctx context.Context, date string) (*entities.DailyShop, error) {
	result, err := r.client.Get(ctx, shopKeyPrefix+date).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no shop for %s", date)
		}
		return nil, errors.Wrapf(err, "failed to get shop")
	}

	var shop entities.DailyShop
	if err := json.Unmarshal([]byte(result), &shop); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal shop")
	}
	return &shop, nil
}
