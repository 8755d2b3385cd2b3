package player

import (
	"time"

	"github.com/KirkDiggler/greed/internal/models"
)

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInGameInput contains parameters for retrieving players in a game
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the result of retrieving players in a game
type GetPlayersInGameOutput struct {
	Players []*models.Player
}

// UpdatePlayerGameInput contains parameters for updating a player's game.
// An empty GameID releases the player.
type UpdatePlayerGameInput struct {
	PlayerID string
	GameID   string
}

// RecordGameResultInput contains the outcome of a finished game for one player
type RecordGameResultInput struct {
	PlayerID string

	// Name is used when the player has no record yet
	Name string

	// GameID is the finished game
	GameID string

	// Score is the player's final banked score
	Score int

	// Won is set for every player sharing the top score
	Won bool

	PlayedAt time.Time
}
