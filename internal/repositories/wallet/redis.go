package wallet

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-storyteller/internal/redis"
)

const (
	walletKeyPrefix = "wallet:"

	errPlayerIDEmpty  = "player ID cannot be empty"
	errAmountNegative = "amount cannot be negative"
)

// debitScript subtracts ARGV[1] only when the balance covers it. It returns
// the new balance, or -1 - balance when funds are short.
var debitScript = redis.NewScript(`
local balance = tonumber(redis.call("GET", KEYS[1]) or "0")
local amount = tonumber(ARGV[1])
if balance < amount then
	return -1 - balance
end
return redis.call("DECRBY", KEYS[1], amount)
`)

// RedisConfig contains configuration for the Redis wallet repository
type RedisConfig struct {
	Client redisclient.Client
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

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed wallet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Balance(ctx context.Context, input BalanceInput) (*BalanceOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, walletKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return &BalanceOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get balance")
	}

	gold, err := strconv.Atoi(result)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt balance for %s", input.PlayerID)
	}
	return &BalanceOutput{Gold: gold}, nil
}

func (r *redisRepository) Credit(ctx context.Context, input CreditInput) (*CreditOutput, error) {
	if err := validateAmount(input.PlayerID, input.Amount); err != nil {
		return nil, err
	}

	gold, err := r.client.IncrBy(ctx, walletKeyPrefix+input.PlayerID, int64(input.Amount)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to credit wallet")
	}
	return &CreditOutput{Gold: int(gold)}, nil
}

func (r *redisRepository) Debit(ctx context.Context, input DebitInput) (*DebitOutput, error) {
	if err := validateAmount(input.PlayerID, input.Amount); err != nil {
		return nil, err
	}

	result, err := debitScript.Run(ctx, r.client, []string{walletKeyPrefix + input.PlayerID}, input.Amount).Int64()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to debit wallet")
	}
	if result < 0 {
		balance := int(-1 - result)
		return nil, errors.InsufficientResourcef("余额不足，当前只有 %d 乌帕", balance).
			WithMeta("balance", balance).
			WithMeta("amount", input.Amount)
	}
	return &DebitOutput{Gold: int(result)}, nil
}

func validateAmount(playerID string, amount int) error {
	if playerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if amount < 0 {
		return errors.InvalidArgument(errAmountNegative)
	}
	return nil
}
