// Package v1alpha1 serves the storyteller over gRPC
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/combat"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/adventure"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/shop"
)

// HandlerConfig holds dependencies for the storyteller handler
type HandlerConfig struct {
	AdventureService    adventure.Service
	InvestigatorService investigator.Service
	ShopService         shop.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.AdventureService == nil {
		vb.RequiredField("AdventureService")
	}
	if c.InvestigatorService == nil {
		vb.RequiredField("InvestigatorService")
	}
	if c.ShopService == nil {
		vb.RequiredField("ShopService")
	}

	return vb.Build()
}

// Handler implements StorytellerServiceServer
type Handler struct {
	UnimplementedStorytellerServiceServer
	adventureService    adventure.Service
	investigatorService investigator.Service
	shopService         shop.Service
}

var _ StorytellerServiceServer = (*Handler)(nil)

// NewHandler creates a new storyteller handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		adventureService:    cfg.AdventureService,
		investigatorService: cfg.InvestigatorService,
		shopService:         cfg.ShopService,
	}, nil
}

// StartAdventure begins the day's fight
func (h *Handler) StartAdventure(
	ctx context.Context,
	req *StartAdventureRequest,
) (*StartAdventureResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.adventureService.Start(ctx, &adventure.StartInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartAdventureResponse{
		AdventureID: out.AdventureID,
		MonsterID:   out.MonsterID,
		Messages:    out.Messages,
		State:       string(out.State),
	}, nil
}

// Act resolves one action in the fight
func (h *Handler) Act(ctx context.Context, req *ActRequest) (*ActResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Action == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action is required"))
	}

	out, err := h.adventureService.Act(ctx, &adventure.ActInput{
		PlayerID: req.PlayerID,
		Action:   req.Action,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ActResponse{
		Messages: out.Messages,
		State:    string(out.State),
		Terminal: out.Terminal,
		Outcome:  convertOutcome(out.Outcome),
	}, nil
}

// GetStatus describes the fight in flight
func (h *Handler) GetStatus(ctx context.Context, req *GetStatusRequest) (*GetStatusResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.adventureService.Status(ctx, &adventure.StatusInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetStatusResponse{
		AdventureID: out.AdventureID,
		State:       string(out.State),
		Turn:        string(out.Turn),
		PlayerHP:    out.PlayerHP,
		PlayerMaxHP: out.PlayerMaxHP,
		MonsterID:   out.MonsterID,
		MonsterName: out.MonsterName,
		MonsterHP:   out.MonsterHP,
		Actions:     out.Actions,
		Ammo:        out.Ammo,
		MaxAmmo:     out.MaxAmmo,
	}, nil
}

// AbandonAdventure gives up the fight
func (h *Handler) AbandonAdventure(
	ctx context.Context,
	req *AbandonAdventureRequest,
) (*AbandonAdventureResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.adventureService.Abandon(ctx, &adventure.AbandonInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AbandonAdventureResponse{AdventureID: out.AdventureID, Message: out.Message}, nil
}

// CreateCandidates rolls investigator candidates
func (h *Handler) CreateCandidates(
	ctx context.Context,
	req *CreateCandidatesRequest,
) (*CreateCandidatesResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.investigatorService.CreateCandidates(ctx, &investigator.CreateCandidatesInput{
		PlayerID: req.PlayerID,
		Count:    req.Count,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	candidates := make([]*Candidate, 0, len(out.Candidates))
	for _, c := range out.Candidates {
		candidates = append(candidates, convertCandidate(c))
	}
	return &CreateCandidatesResponse{Candidates: candidates}, nil
}

// ChooseCandidate picks a rolled candidate
func (h *Handler) ChooseCandidate(
	ctx context.Context,
	req *ChooseCandidateRequest,
) (*ChooseCandidateResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.investigatorService.ChooseCandidate(ctx, &investigator.ChooseCandidateInput{
		PlayerID: req.PlayerID,
		Index:    req.Index,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChooseCandidateResponse{Candidate: convertCandidate(out.Candidate)}, nil
}

// AllocateSkills spends skill points and saves the investigator
func (h *Handler) AllocateSkills(
	ctx context.Context,
	req *AllocateSkillsRequest,
) (*AllocateSkillsResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.investigatorService.AllocateSkills(ctx, &investigator.AllocateSkillsInput{
		PlayerID:   req.PlayerID,
		Name:       req.Name,
		Allocation: req.Allocation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AllocateSkillsResponse{Investigator: out.Investigator}, nil
}

// GetInvestigator loads an investigator with the wallet balance
func (h *Handler) GetInvestigator(
	ctx context.Context,
	req *GetInvestigatorRequest,
) (*GetInvestigatorResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.investigatorService.Get(ctx, &investigator.GetInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	balance, err := h.shopService.Balance(ctx, &shop.BalanceInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetInvestigatorResponse{
		Investigator: out.Investigator,
		Gold:         balance.Gold,
	}, nil
}

// Equip equips a carried item
func (h *Handler) Equip(ctx context.Context, req *EquipRequest) (*EquipResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.investigatorService.Equip(ctx, &investigator.EquipInput{
		PlayerID: req.PlayerID,
		ItemID:   req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipResponse{
		Investigator: out.Investigator,
		ItemName:     out.Item.Name,
		Slot:         string(out.Item.Slot),
		Replaced:     out.Replaced,
	}, nil
}

// GetInventory lists the pack
func (h *Handler) GetInventory(ctx context.Context, req *GetInventoryRequest) (*GetInventoryResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.investigatorService.Inventory(ctx, &investigator.InventoryInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]InventoryItem, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, InventoryItem{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Equipped: it.Equipped,
		})
	}
	return &GetInventoryResponse{Items: items}, nil
}

// GetItem describes a catalog item
func (h *Handler) GetItem(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.investigatorService.ItemDetails(ctx, &investigator.ItemDetailsInput{ItemID: req.ItemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	item := out.Item
	return &GetItemResponse{
		ItemID:      item.ID,
		Name:        item.Name,
		Damage:      item.Damage,
		Slot:        string(item.Slot),
		Armor:       item.Armor,
		Ammo:        item.Ammo,
		Actions:     item.Actions,
		Description: item.Description,
	}, nil
}

// GetShop lists today's stock
func (h *Handler) GetShop(ctx context.Context, _ *GetShopRequest) (*GetShopResponse, error) {
	out, err := h.shopService.Today(ctx, &shop.TodayInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetShopResponse{
		Date:   out.Shop.Date,
		Offers: out.Shop.Offers,
	}, nil
}

// Buy purchases one of today's offers
func (h *Handler) Buy(ctx context.Context, req *BuyRequest) (*BuyResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.shopService.Buy(ctx, &shop.BuyInput{
		PlayerID: req.PlayerID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuyResponse{
		ItemID:   out.Offer.ItemID,
		Name:     out.Offer.Name,
		Quantity: out.Quantity,
		Gold:     out.Gold,
	}, nil
}

func convertCandidate(c *investigator.Candidate) *Candidate {
	if c == nil {
		return nil
	}
	return &Candidate{
		Attributes:  c.Attributes,
		Skills:      c.Skills,
		SAN:         c.SAN,
		HP:          c.HP,
		DamageBonus: c.DamageBonus,
		Total:       c.Total,
		SkillPoints: c.SkillPoints(),
	}
}

func convertOutcome(o *combat.Outcome) *Outcome {
	if o == nil {
		return nil
	}
	out := &Outcome{
		Result:      string(o.Result),
		PlayerHP:    o.PlayerHP,
		Searched:    o.Searched,
		BrokenItems: o.BrokenItems,
		Day:         o.Day,
	}
	if o.Loot != nil {
		out.Gold = o.Loot.Gold
		out.ItemID = o.Loot.ItemID
		out.ItemName = o.Loot.ItemName
	}
	for _, g := range o.Growth {
		out.Growth = append(out.Growth, Growth{
			Skill:  g.Skill,
			Rating: g.Rating,
			Roll:   g.Roll,
			Gain:   g.Gain,
		})
	}
	return out
}
