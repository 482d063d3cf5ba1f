package gamestate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dicemaster/scorekeeper/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/dicemaster/scorekeeper/internal/models"
)

// Repository defines the interface for game state persistence. The whole
// state is written and read as one blob, last writer wins.
type Repository interface {
	// Save persists the full state for a table
	Save(ctx context.Context, input *SaveInput) error

	// Load retrieves the full state for a table
	Load(ctx context.Context, input *LoadInput) (*models.GameState, error)

	// Delete removes the stored state for a table
	Delete(ctx context.Context, input *DeleteInput) error
}
