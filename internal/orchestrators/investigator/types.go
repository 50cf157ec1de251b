package investigator

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=investigatormock github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/investigator Service

// Service defines the investigator orchestrator interface
type Service interface {
	// Creation flow: roll candidates, pick one, spend skill points
	CreateCandidates(ctx context.Context, input *CreateCandidatesInput) (*CreateCandidatesOutput, error)
	ChooseCandidate(ctx context.Context, input *ChooseCandidateInput) (*ChooseCandidateOutput, error)
	AllocateSkills(ctx context.Context, input *AllocateSkillsInput) (*AllocateSkillsOutput, error)

	// Investigator operations
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Inventory(ctx context.Context, input *InventoryInput) (*InventoryOutput, error)
	ItemDetails(ctx context.Context, input *ItemDetailsInput) (*ItemDetailsOutput, error)
}

// Candidate is a rolled investigator awaiting selection
type Candidate struct {
	Attributes  map[string]int `json:"attributes"`
	Skills      map[string]int `json:"skills"`
	SAN         int            `json:"san"`
	HP          int            `json:"hp"`
	DamageBonus string         `json:"damage_bonus"`
	// Total is the sum of the rolled attributes
	Total int `json:"total"`
}

// SkillPoints is the allocation budget: education plus intelligence
func (c *Candidate) SkillPoints() int {
	return c.Attributes[entities.AttrEducation] + c.Attributes[entities.AttrIntelligence]
}

// CreateCandidatesInput defines the request for rolling candidates
type CreateCandidatesInput struct {
	PlayerID string
	// Count defaults to three
	Count int
}

// CreateCandidatesOutput defines the response for rolling candidates
type CreateCandidatesOutput struct {
	Candidates []*Candidate
}

// ChooseCandidateInput defines the request for picking a candidate
type ChooseCandidateInput struct {
	PlayerID string
	// Index is 1-based, as shown to the player
	Index int
}

// ChooseCandidateOutput defines the response for picking a candidate
type ChooseCandidateOutput struct {
	Candidate   *Candidate
	SkillPoints int
}

// AllocateSkillsInput defines the request for spending skill points
type AllocateSkillsInput struct {
	PlayerID string
	// Name defaults to 调查员
	Name string
	// Allocation reads like 手枪30步枪20
	Allocation string
}

// AllocateSkillsOutput defines the response for spending skill points
type AllocateSkillsOutput struct {
	Investigator *entities.Investigator
}

// GetInput defines the request for loading an investigator
type GetInput struct {
	PlayerID string
}

// GetOutput defines the response for loading an investigator
type GetOutput struct {
	Investigator *entities.Investigator
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	PlayerID string
	ItemID   string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Investigator *entities.Investigator
	Item         *entities.Equipment
	// Replaced is the item id previously in the slot, if any
	Replaced string
}

// InventoryInput defines the request for listing the pack
type InventoryInput struct {
	PlayerID string
}

// InventoryEntry is one pack stack
type InventoryEntry struct {
	ItemID   string
	Name     string
	Quantity int
	Equipped bool
}

// InventoryOutput defines the response for listing the pack
type InventoryOutput struct {
	Items []InventoryEntry
}

// ItemDetailsInput defines the request for describing an item
type ItemDetailsInput struct {
	ItemID string
}

// ItemDetailsOutput defines the response for describing an item
type ItemDetailsOutput struct {
	Item *entities.Equipment
}
