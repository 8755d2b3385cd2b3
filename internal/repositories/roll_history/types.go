package roll_history

import "github.com/KirkDiggler/greed/internal/models"

// AddRollInput contains parameters for recording a roll
type AddRollInput struct {
	Roll *models.Roll
}

// GetRollsForGameInput contains parameters for retrieving a game's rolls
type GetRollsForGameInput struct {
	GameID string
}

// GetRollsForGameOutput contains a game's rolls, oldest first
type GetRollsForGameOutput struct {
	Rolls []*models.Roll
}

// GetRollsForPlayerInput contains parameters for retrieving a player's rolls
type GetRollsForPlayerInput struct {
	PlayerID string

	// Limit caps the number of rolls returned; zero returns all
	Limit int
}

// GetRollsForPlayerOutput contains a player's rolls, newest first
type GetRollsForPlayerOutput struct {
	Rolls []*models.Roll
}

type GetRollStatsInput struct {
	PlayerID string
}

// DeleteRollsForGameInput contains parameters for deleting a game's rolls
type DeleteRollsForGameInput struct {
	GameID string
}
