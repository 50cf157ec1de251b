// Package investigator implements the investigator orchestrator: rolling
// and finishing new investigators, and managing their equipment.
package investigator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	investigatorrepo "github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
)

// Catalog is the equipment lookup the orchestrator needs
type Catalog interface {
	Equipment(id string) (*entities.Equipment, error)
	EquipmentName(id string) string
}

// Config holds the dependencies for the investigator orchestrator
type Config struct {
	Repository investigatorrepo.Repository
	Catalog    Catalog
	Roller     *dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
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
	repo    investigatorrepo.Repository
	catalog Catalog
	roller  *dice.Roller

	// Creation drafts live only until the investigator is saved
	mu     sync.Mutex
	drafts map[string]*draft
}

type draft struct {
	candidates []*Candidate
	chosen     *Candidate
}

// NewOrchestrator creates a new investigator orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		drafts:  make(map[string]*draft),
	}, nil
}

// CreateCandidates rolls a fresh set of candidates, discarding any earlier draft
func (o *orchestrator) CreateCandidates(ctx context.Context, input *CreateCandidatesInput) (*CreateCandidatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	count := input.Count
	if count <= 0 {
		count = DefaultCandidateCount
	}

	candidates := make([]*Candidate, 0, count)
	for i := 0; i < count; i++ {
		c, err := rollCandidate(o.roller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll candidate")
		}
		candidates = append(candidates, c)
	}

	o.mu.Lock()
	o.drafts[input.PlayerID] = &draft{candidates: candidates}
	o.mu.Unlock()

	slog.Info("Investigator candidates rolled",
		"player_id", input.PlayerID,
		"count", count)

	return &CreateCandidatesOutput{Candidates: candidates}, nil
}

// ChooseCandidate picks one of the rolled candidates by its 1-based index
func (o *orchestrator) ChooseCandidate(ctx context.Context, input *ChooseCandidateInput) (*ChooseCandidateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	d, ok := o.drafts[input.PlayerID]
	if !ok {
		return nil, errors.FailedPrecondition("当前还没有可选择的调查员，先使用\n/创建调查员\n开始调查员的创建吧~")
	}
	if input.Index < 1 || input.Index > len(d.candidates) {
		return nil, errors.InvalidArgumentf("请选择1到%d之间的调查员哦~", len(d.candidates)).
			WithMeta("index", input.Index)
	}

	d.chosen = d.candidates[input.Index-1]

	return &ChooseCandidateOutput{
		Candidate:   d.chosen,
		SkillPoints: d.chosen.SkillPoints(),
	}, nil
}

// AllocateSkills spends the chosen candidate's skill points and saves the
// finished investigator in place of any previous one
func (o *orchestrator) AllocateSkills(ctx context.Context, input *AllocateSkillsInput) (*AllocateSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	d, ok := o.drafts[input.PlayerID]
	var chosen *Candidate
	if ok {
		chosen = d.chosen
	}
	o.mu.Unlock()

	if chosen == nil {
		return nil, errors.FailedPrecondition("当前还没有选择调查员哦~")
	}

	points, total, err := parseAllocation(input.Allocation)
	if err != nil {
		return nil, err
	}
	skills, err := applyAllocation(chosen, points, total)
	if err != nil {
		return nil, err
	}

	inv := newInvestigator(input.PlayerID, input.Name, chosen, skills)
	inv.AddItem(entities.PocketKnifeID, o.catalog.EquipmentName(entities.PocketKnifeID), 1)
	inv.Equip(entities.SlotMelee, entities.PocketKnifeID)

	_, err = o.repo.Delete(ctx, investigatorrepo.DeleteInput{ID: input.PlayerID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to remove previous investigator")
	}

	saved, err := o.repo.Save(ctx, investigatorrepo.SaveInput{Investigator: inv})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save investigator")
	}

	o.mu.Lock()
	// A newer roll may have replaced the draft meanwhile
	if o.drafts[input.PlayerID] == d {
		delete(o.drafts, input.PlayerID)
	}
	o.mu.Unlock()

	slog.Info("Investigator created",
		"player_id", input.PlayerID,
		"name", inv.Name,
		"hp", inv.HP)

	return &AllocateSkillsOutput{Investigator: saved.Investigator}, nil
}

func newInvestigator(playerID, name string, c *Candidate, skills map[string]int) *entities.Investigator {
	if name == "" {
		name = entities.DefaultInvestigator
	}

	attributes := make(map[string]int, len(c.Attributes))
	for k, v := range c.Attributes {
		attributes[k] = v
	}

	return &entities.Investigator{
		ID:          playerID,
		Name:        name,
		Attributes:  attributes,
		Skills:      skills,
		DamageBonus: c.DamageBonus,
		HP:          c.HP,
		SAN:         c.SAN,
		Alive:       true,
		Day:         1,
	}
}

// Get loads a player's investigator
func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.repo.Get(ctx, investigatorrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get investigator")
	}

	return &GetOutput{Investigator: out.Investigator}, nil
}

// Equip moves a carried item into the slot its definition names
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	got, err := o.repo.Get(ctx, investigatorrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get investigator")
	}
	inv := got.Investigator

	if !inv.HasItem(input.ItemID) {
		return nil, errors.NotFound("背包中未找到物品").WithMeta("item_id", input.ItemID)
	}

	item, err := o.catalog.Equipment(input.ItemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up item")
	}
	if !item.Slot.Valid() {
		return nil, errors.InvalidArgumentf("%s无法装备哦~", item.Name).WithMeta("item_id", input.ItemID)
	}

	replaced := inv.EquippedID(item.Slot)
	inv.Equip(item.Slot, item.ID)

	saved, err := o.repo.Save(ctx, investigatorrepo.SaveInput{Investigator: inv})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save investigator")
	}

	slog.Info("Item equipped",
		"player_id", input.PlayerID,
		"item_id", item.ID,
		"slot", string(item.Slot),
		"replaced", replaced)

	return &EquipOutput{
		Investigator: saved.Investigator,
		Item:         item,
		Replaced:     replaced,
	}, nil
}

// Inventory lists the pack, marking equipped items
func (o *orchestrator) Inventory(ctx context.Context, input *InventoryInput) (*InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.Get(ctx, &GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	inv := got.Investigator

	equipped := make(map[string]bool, len(inv.Equipped))
	for _, id := range inv.Equipped {
		equipped[id] = true
	}

	items := make([]InventoryEntry, 0, len(inv.Inventory))
	for _, it := range inv.Inventory {
		name := it.Name
		if name == "" {
			name = o.catalog.EquipmentName(it.ItemID)
		}
		items = append(items, InventoryEntry{
			ItemID:   it.ItemID,
			Name:     name,
			Quantity: it.Quantity,
			Equipped: equipped[it.ItemID],
		})
	}

	return &InventoryOutput{Items: items}, nil
}

// ItemDetails describes a catalog item
func (o *orchestrator) ItemDetails(ctx context.Context, input *ItemDetailsInput) (*ItemDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	item, err := o.catalog.Equipment(input.ItemID)
	if err != nil {
		return nil, err
	}

	return &ItemDetailsOutput{Item: item}, nil
}
