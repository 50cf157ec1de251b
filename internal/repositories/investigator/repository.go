// Package investigator provides the interface for investigator persistence
package investigator

//go:generate mockgen -destination=mock/mock_repository.go -package=investigatormock github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

// Repository defines the interface for investigator persistence. One
// investigator exists per player; its ID is the player ID.
type Repository interface {
	// Get retrieves the investigator of a player
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the player has no investigator
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an investigator
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes an investigator
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the player has no investigator
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an investigator
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an investigator
type GetOutput struct {
	Investigator *entities.Investigator
}

// SaveInput defines the input for saving an investigator
type SaveInput struct {
	Investigator *entities.Investigator
}

// SaveOutput defines the output for saving an investigator
type SaveOutput struct {
	Investigator *entities.Investigator
}

// DeleteInput defines the input for deleting an investigator
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an investigator
type DeleteOutput struct{}
