package v1alpha1

import (
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

// StartAdventureRequest starts the day's fight
type StartAdventureRequest struct {
	PlayerID string `json:"player_id"`
}

// StartAdventureResponse carries the opening narration
type StartAdventureResponse struct {
	AdventureID string   `json:"adventure_id"`
	MonsterID   string   `json:"monster_id"`
	Messages    []string `json:"messages"`
	State       string   `json:"state"`
}

// ActRequest resolves one action
type ActRequest struct {
	PlayerID string `json:"player_id"`
	Action   string `json:"action"`
}

// ActResponse carries the action's narration
type ActResponse struct {
	Messages []string `json:"messages"`
	State    string   `json:"state"`
	Terminal bool     `json:"terminal"`
	Outcome  *Outcome `json:"outcome,omitempty"`
}

// Outcome summarizes a finished fight
type Outcome struct {
	Result      string   `json:"result"`
	PlayerHP    int      `json:"player_hp"`
	Searched    bool     `json:"searched"`
	Gold        int      `json:"gold"`
	ItemID      string   `json:"item_id,omitempty"`
	ItemName    string   `json:"item_name,omitempty"`
	Growth      []Growth `json:"growth,omitempty"`
	BrokenItems []string `json:"broken_items,omitempty"`
	Day         int      `json:"day"`
}

// Growth is one post-fight skill check
type Growth struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
	Roll   int    `json:"roll"`
	Gain   int    `json:"gain"`
}

// GetStatusRequest asks for the fight in flight
type GetStatusRequest struct {
	PlayerID string `json:"player_id"`
}

// GetStatusResponse describes the fight in flight
type GetStatusResponse struct {
	AdventureID string   `json:"adventure_id"`
	State       string   `json:"state"`
	Turn        string   `json:"turn"`
	PlayerHP    int      `json:"player_hp"`
	PlayerMaxHP int      `json:"player_max_hp"`
	MonsterID   string   `json:"monster_id"`
	MonsterName string   `json:"monster_name"`
	MonsterHP   int      `json:"monster_hp"`
	Actions     []string `json:"actions"`
	Ammo        int      `json:"ammo"`
	MaxAmmo     int      `json:"max_ammo"`
}

// AbandonAdventureRequest gives up the fight in flight
type AbandonAdventureRequest struct {
	PlayerID string `json:"player_id"`
}

// AbandonAdventureResponse confirms the fight is over
type AbandonAdventureResponse struct {
	AdventureID string `json:"adventure_id"`
	Message     string `json:"message"`
}

// Candidate is a rolled investigator awaiting selection
type Candidate struct {
	Attributes  map[string]int `json:"attributes"`
	Skills      map[string]int `json:"skills"`
	SAN         int            `json:"san"`
	HP          int            `json:"hp"`
	DamageBonus string         `json:"damage_bonus"`
	Total       int            `json:"total"`
	SkillPoints int            `json:"skill_points"`
}

// CreateCandidatesRequest rolls new candidates
type CreateCandidatesRequest struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count,omitempty"`
}

// CreateCandidatesResponse lists the rolled candidates
type CreateCandidatesResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

// ChooseCandidateRequest picks a candidate by 1-based index
type ChooseCandidateRequest struct {
	PlayerID string `json:"player_id"`
	Index    int    `json:"index"`
}

// ChooseCandidateResponse returns the chosen candidate
type ChooseCandidateResponse struct {
	Candidate *Candidate `json:"candidate"`
}

// AllocateSkillsRequest spends skill points and finishes creation
type AllocateSkillsRequest struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name,omitempty"`
	Allocation string `json:"allocation"`
}

// AllocateSkillsResponse returns the finished investigator
type AllocateSkillsResponse struct {
	Investigator *entities.Investigator `json:"investigator"`
}

// GetInvestigatorRequest loads an investigator
type GetInvestigatorRequest struct {
	PlayerID string `json:"player_id"`
}

// GetInvestigatorResponse returns the investigator and wallet
type GetInvestigatorResponse struct {
	Investigator *entities.Investigator `json:"investigator"`
	Gold         int                    `json:"gold"`
}

// EquipRequest equips a carried item
type EquipRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
}

// EquipResponse returns the updated investigator
type EquipResponse struct {
	Investigator *entities.Investigator `json:"investigator"`
	ItemName     string                 `json:"item_name"`
	Slot         string                 `json:"slot"`
	Replaced     string                 `json:"replaced,omitempty"`
}

// GetInventoryRequest lists the pack
type GetInventoryRequest struct {
	PlayerID string `json:"player_id"`
}

// InventoryItem is one pack stack
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped"`
}

// GetInventoryResponse lists the pack
type GetInventoryResponse struct {
	Items []InventoryItem `json:"items"`
}

// GetItemRequest describes a catalog item
type GetItemRequest struct {
	ItemID string `json:"item_id"`
}

// GetItemResponse describes a catalog item
type GetItemResponse struct {
	ItemID      string   `json:"item_id"`
	Name        string   `json:"name"`
	Damage      string   `json:"damage,omitempty"`
	Slot        string   `json:"slot,omitempty"`
	Armor       int      `json:"armor,omitempty"`
	Ammo        int      `json:"ammo,omitempty"`
	Actions     []string `json:"actions,omitempty"`
	Description string   `json:"description,omitempty"`
}

// GetShopRequest asks for today's stock
type GetShopRequest struct{}

// GetShopResponse lists today's stock
type GetShopResponse struct {
	Date   string               `json:"date"`
	Offers []entities.ShopOffer `json:"offers"`
}

// BuyRequest buys one of today's offers
type BuyRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity,omitempty"`
}

// BuyResponse confirms a purchase
type BuyResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	// Gold is the balance left
	Gold int `json:"gold"`
}
