package roll_history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/greed/internal/repositories/roll_history Repository

import (
	"context"

	"github.com/KirkDiggler/greed/internal/models"
)

// Repository defines the interface for roll history persistence
type Repository interface {
	// AddRoll appends a roll to its game's history
	AddRoll(ctx context.Context, input *AddRollInput) error

	// GetRollsForGame retrieves a game's rolls in the order they happened
	GetRollsForGame(ctx context.Context, input *GetRollsForGameInput) (*GetRollsForGameOutput, error)

	// GetRollsForPlayer retrieves a player's most recent rolls, newest first
	GetRollsForPlayer(ctx context.Context, input *GetRollsForPlayerInput) (*GetRollsForPlayerOutput, error)

	// GetRollStats retrieves a player's lifetime roll counters
	GetRollStats(ctx context.Context, input *GetRollStatsInput) (*models.RollStats, error)

	// DeleteRollsForGame removes a game's rolls
	DeleteRollsForGame(ctx context.Context, input *DeleteRollsForGameInput) error
}
