package adventure

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/combat"
)

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/adventure Service

// Service defines the adventure orchestrator interface. Each player has at
// most one adventure in flight.
type Service interface {
	// Start checks eligibility, picks the day's monster and rolls initiative
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Act resolves one action; a finishing action persists the outcome
	Act(ctx context.Context, input *ActInput) (*ActOutput, error)

	// Status describes the adventure in flight
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// Abandon ends the adventure without loot or growth
	Abandon(ctx context.Context, input *AbandonInput) (*AbandonOutput, error)
}

// StartInput defines the request for starting an adventure
type StartInput struct {
	PlayerID string
}

// StartOutput defines the response for starting an adventure
type StartOutput struct {
	AdventureID string
	MonsterID   string
	// Messages are the day event, the monster entrance, the initiative
	// rolls and the first prompt, in order
	Messages []string
	State    combat.State
}

// ActInput defines the request for one action
type ActInput struct {
	PlayerID string
	Action   string
}

// ActOutput defines the response for one action
type ActOutput struct {
	Messages []string
	State    combat.State
	Terminal bool
	// Outcome is set once the fight is over
	Outcome *combat.Outcome
}

// StatusInput defines the request for an adventure's status
type StatusInput struct {
	PlayerID string
}

// StatusOutput defines the response for an adventure's status
type StatusOutput struct {
	AdventureID string
	State       combat.State
	Turn        combat.Turn
	PlayerHP    int
	PlayerMaxHP int
	MonsterID   string
	MonsterName string
	MonsterHP   int
	Actions     []string
	Ammo        int
	MaxAmmo     int
}

// AbandonInput defines the request for abandoning an adventure
type AbandonInput struct {
	PlayerID string
}

// AbandonOutput defines the response for abandoning an adventure
type AbandonOutput struct {
	AdventureID string
	Message     string
}
