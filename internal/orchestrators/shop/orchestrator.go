// Package shop implements the daily shop: one stock per calendar day shared
// by every player, paid for from the player's wallet.
package shop

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-storyteller/internal/content"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
)

// Catalog is the content the shop reads
type Catalog interface {
	Shop() content.ShopList
	EquipmentName(id string) string
}

// Config holds the dependencies for the shop orchestrator
type Config struct {
	DailyRepo        daily.Repository
	WalletRepo       wallet.Repository
	InvestigatorRepo investigator.Repository
	Catalog          Catalog
	Roller           *dice.Roller
	Clock            clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DailyRepo == nil {
		vb.RequiredField("DailyRepo")
	}
	if c.WalletRepo == nil {
		vb.RequiredField("WalletRepo")
	}
	if c.InvestigatorRepo == nil {
		vb.RequiredField("InvestigatorRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	dailyRepo        daily.Repository
	walletRepo       wallet.Repository
	investigatorRepo investigator.Repository
	catalog          Catalog
	roller           *dice.Roller
	clock            clock.Clock

	// Serializes read-modify-write of investigator packs
	buyMu sync.Mutex
}

// NewOrchestrator creates a new shop orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		dailyRepo:        cfg.DailyRepo,
		walletRepo:       cfg.WalletRepo,
		investigatorRepo: cfg.InvestigatorRepo,
		catalog:          cfg.Catalog,
		roller:           cfg.Roller,
		clock:            clk,
	}, nil
}

// Today returns the stored stock for the current date. The first caller of
// the day generates it; concurrent generators converge on whichever was
// saved first.
func (o *orchestrator) Today(ctx context.Context, input *TodayInput) (*TodayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	date := clock.Today(o.clock)

	got, err := o.dailyRepo.GetShop(ctx, daily.GetShopInput{Date: date})
	if err == nil {
		return &TodayOutput{Shop: got.Shop}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to get daily shop")
	}

	generated, err := o.generate(date)
	if err != nil {
		return nil, err
	}

	saved, err := o.dailyRepo.SaveShop(ctx, daily.SaveShopInput{Shop: generated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save daily shop")
	}

	if saved.Created {
		slog.Info("Daily shop generated",
			"date", date,
			"offers", len(saved.Shop.Offers))
	}

	return &TodayOutput{Shop: saved.Shop}, nil
}

// generate draws one item from every price tier, then lists the fixed-price
// items in id order
func (o *orchestrator) generate(date string) (*entities.DailyShop, error) {
	list := o.catalog.Shop()
	shop := &entities.DailyShop{Date: date}

	for _, tier := range list.Tiers {
		if len(tier.Items) == 0 {
			continue
		}
		idx, err := o.roller.Pick(len(tier.Items))
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw shop item")
		}
		id := tier.Items[idx]
		shop.Offers = append(shop.Offers, entities.ShopOffer{
			ItemID: id,
			Name:   o.catalog.EquipmentName(id),
			Price:  tier.Price,
		})
	}

	fixed := make([]string, 0, len(list.Fixed))
	for id := range list.Fixed {
		fixed = append(fixed, id)
	}
	sort.Strings(fixed)
	for _, id := range fixed {
		shop.Offers = append(shop.Offers, entities.ShopOffer{
			ItemID: id,
			Name:   o.catalog.EquipmentName(id),
			Price:  list.Fixed[id],
		})
	}

	return shop, nil
}

// Buy purchases quantity of one of today's offers
func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, errors.InvalidArgumentf("invalid quantity %d", quantity)
	}

	today, err := o.Today(ctx, &TodayInput{})
	if err != nil {
		return nil, err
	}
	offer, ok := today.Shop.Offer(input.ItemID)
	if !ok {
		return nil, errors.NotFound("该物品不在今日可售出的物品清单中哦~").WithMeta("item_id", input.ItemID)
	}

	o.buyMu.Lock()
	defer o.buyMu.Unlock()

	got, err := o.investigatorRepo.Get(ctx, investigator.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get investigator")
	}
	inv := got.Investigator

	cost := offer.Price * quantity
	debited, err := o.walletRepo.Debit(ctx, wallet.DebitInput{PlayerID: input.PlayerID, Amount: cost})
	if err != nil {
		if errors.HasReason(err, errors.ReasonInsufficientResource) {
			return nil, errors.Wrap(err, "乌帕不足，购买失败。")
		}
		return nil, errors.Wrap(err, "failed to debit wallet")
	}

	inv.AddItem(offer.ItemID, offer.Name, quantity)
	saved, err := o.investigatorRepo.Save(ctx, investigator.SaveInput{Investigator: inv})
	if err != nil {
		if _, refundErr := o.walletRepo.Credit(ctx, wallet.CreditInput{PlayerID: input.PlayerID, Amount: cost}); refundErr != nil {
			slog.Error("Failed to refund purchase",
				"player_id", input.PlayerID,
				"amount", cost,
				"error", refundErr)
		}
		return nil, errors.Wrap(err, "failed to save investigator")
	}

	slog.Info("Item purchased",
		"player_id", input.PlayerID,
		"item_id", offer.ItemID,
		"quantity", quantity,
		"cost", cost,
		"gold", debited.Gold)

	return &BuyOutput{
		Offer:        offer,
		Quantity:     quantity,
		Gold:         debited.Gold,
		Investigator: saved.Investigator,
	}, nil
}

// Balance returns a player's gold
func (o *orchestrator) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.walletRepo.Balance(ctx, wallet.BalanceInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return &BalanceOutput{Gold: out.Gold}, nil
}
