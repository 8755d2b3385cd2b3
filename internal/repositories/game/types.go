package game

import "github.com/KirkDiggler/greed/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByChannelInput contains parameters for retrieving a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// GetActiveGamesInput contains parameters for listing games in play
type GetActiveGamesInput struct {
}

// GetActiveGamesOutput contains the games in play
type GetActiveGamesOutput struct {
	Games []*models.Game
}
