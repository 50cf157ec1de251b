// Package wallet provides the interface for player gold balances
package wallet

//go:generate mockgen -destination=mock/mock_repository.go -package=walletmock github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet Repository

import "context"

// Repository holds one gold balance per player. A player with no record
// has a balance of zero.
type Repository interface {
	// Balance returns the current balance
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Internal for storage failures
	Balance(ctx context.Context, input BalanceInput) (*BalanceOutput, error)

	// Credit adds gold and returns the new balance
	// Returns errors.InvalidArgument for an empty player ID or negative amount
	// Returns errors.Internal for storage failures
	Credit(ctx context.Context, input CreditInput) (*CreditOutput, error)

	// Debit removes gold atomically and returns the new balance
	// Returns errors.InvalidArgument for an empty player ID or negative amount
	// Returns an INSUFFICIENT_RESOURCE error when the balance is too low
	// Returns errors.Internal for storage failures
	Debit(ctx context.Context, input DebitInput) (*DebitOutput, error)
}

// BalanceInput defines the input for reading a balance
type BalanceInput struct {
	PlayerID string
}

// BalanceOutput defines the output for reading a balance
type BalanceOutput struct {
	Gold int
}

// CreditInput defines the input for adding gold
type CreditInput struct {
	PlayerID string
	Amount   int
}

// CreditOutput defines the output for adding gold
type CreditOutput struct {
	Gold int
}

// DebitInput defines the input for removing gold
type DebitInput struct {
	PlayerID string
	Amount   int
}

// DebitOutput defines the output for removing gold
type DebitOutput struct {
	Gold int
}
