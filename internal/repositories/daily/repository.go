// Package daily provides the interface for per-day shared records
package daily

//go:generate mockgen -destination=mock/mock_repository.go -package=dailymock github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

// Repository stores the shop generated for each calendar day
type Repository interface {
	// GetShop returns the shop for a date
	// Returns errors.InvalidArgument for an empty date
	// Returns errors.NotFound when no shop was generated that day
	// Returns errors.Internal for storage failures
	GetShop(ctx context.Context, input GetShopInput) (*GetShopOutput, error)

	// SaveShop stores a shop unless one already exists for its date, and
	// returns whichever shop is stored. The first writer wins.
	// Returns errors.InvalidArgument for a nil shop or empty date
	// Returns errors.Internal for storage failures
	SaveShop(ctx context.Context, input SaveShopInput) (*SaveShopOutput, error)
}

// GetShopInput defines the input for reading a day's shop
type GetShopInput struct {
	Date string
}

// GetShopOutput defines the output for reading a day's shop
type GetShopOutput struct {
	Shop *entities.DailyShop
}

// SaveShopInput defines the input for storing a day's shop
type SaveShopInput struct {
	Shop *entities.DailyShop
}

// SaveShopOutput defines the output for storing a day's shop
type SaveShopOutput struct {
	Shop *entities.DailyShop
	// Created is false when an earlier shop for the date was kept
	Created bool
}
