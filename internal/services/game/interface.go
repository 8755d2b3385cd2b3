package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/greed/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame opens a new game in a channel with the creator seated
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a game that has not started
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from a game that has not started
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// StartGame fixes the turn order and begins play
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice applies a roll for the current player
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// EndTurn banks the current player's turn score
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel retrieves the latest game in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// GetLeaderboard returns the current standings for a game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetRollHistory returns recorded rolls for a game or a player
	GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error)

	// GetPlayerStats returns a player's lifetime record
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// AbandonGame stops an unfinished game without a winner
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// GetActiveGames lists games with turns in progress
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
