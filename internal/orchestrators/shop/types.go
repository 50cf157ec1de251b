package shop

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=shopmock github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/shop Service

// Service defines the shop orchestrator interface
type Service interface {
	// Today returns the day's stock, generating it on the first request
	Today(ctx context.Context, input *TodayInput) (*TodayOutput, error)

	// Buy debits the wallet and adds the items to the investigator's pack
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Balance returns a player's gold
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)
}

// TodayInput defines the request for the day's stock
type TodayInput struct{}

// TodayOutput defines the response for the day's stock
type TodayOutput struct {
	Shop *entities.DailyShop
}

// BuyInput defines the request for a purchase
type BuyInput struct {
	PlayerID string
	ItemID   string
	// Quantity defaults to one
	Quantity int
}

// BuyOutput defines the response for a purchase
type BuyOutput struct {
	Offer    entities.ShopOffer
	Quantity int
	// Gold is the balance left after the purchase
	Gold         int
	Investigator *entities.Investigator
}

// BalanceInput defines the request for a balance
type BalanceInput struct {
	PlayerID string
}

// BalanceOutput defines the response for a balance
type BalanceOutput struct {
	Gold int
}
