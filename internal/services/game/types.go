package game

import (
	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/lock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/models"
	gameRepo "github.com/KirkDiggler/greed/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/greed/internal/repositories/player"
	rollHistoryRepo "github.com/KirkDiggler/greed/internal/repositories/roll_history"
	"github.com/rs/zerolog"
)

// DefaultMaxPlayers is used when Config.MaxPlayers is not set
const DefaultMaxPlayers = 8

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Rules for new and restored games; nil uses greed.DefaultRules
	Rules *greed.Rules

	// Repository dependencies
	GameRepo        gameRepo.Repository
	PlayerRepo      playerRepo.Repository
	RollHistoryRepo rollHistoryRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Locks serialises operations per game; nil creates a private set
	Locks *lock.Keyed

	// Logger is optional
	Logger *zerolog.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChannelID is the Discord channel ID where the game is being played
	ChannelID string

	// CreatorID is the Discord user ID of the player creating the game
	CreatorID string

	// CreatorName is the display name of the player creating the game
	CreatorName string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID     string
	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game *models.Game
}

// LeaveGameInput contains parameters for leaving a game
type LeaveGameInput struct {
	GameID   string
	PlayerID string
}

// LeaveGameOutput contains the result of leaving a game
type LeaveGameOutput struct {
	Game *models.Game

	// Abandoned is set when the last player left
	Abandoned bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string

	// PlayerID must be the game creator
	PlayerID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	GameID   string
	PlayerID string

	// Faces are dice rolled by the caller. When empty the service rolls
	// exactly as many dice as the turn allows.
	Faces []int
}

// RollDiceOutput contains the result of a roll
type RollDiceOutput struct {
	Game *models.Game

	// Roll is the recorded roll
	Roll *models.Roll

	// NextPlayerID is whoever must act next
	NextPlayerID string

	// GameOver is set when this roll ended the game
	GameOver bool

	// Winners are the players sharing the top score once the game is over
	Winners []*models.Participant
}

// EndTurnInput contains parameters for banking a turn
type EndTurnInput struct {
	GameID   string
	PlayerID string
}

// EndTurnOutput contains the result of banking a turn
type EndTurnOutput struct {
	Game *models.Game

	// Banked is the turn score added to the player's total
	Banked int

	// Total is the player's score after banking
	Total int

	// FinalRoundArmed is set when this bank reached the winning score first
	FinalRoundArmed bool

	NextPlayerID string
	GameOver     bool
	Winners      []*models.Participant
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the requested game
type GetGameOutput struct {
	Game *models.Game
}

// GetGameByChannelInput contains parameters for retrieving a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByChannelOutput contains the channel's latest game
type GetGameByChannelOutput struct {
	Game *models.Game
}

// GetLeaderboardInput contains parameters for retrieving standings
type GetLeaderboardInput struct {
	GameID string
}

// GetLeaderboardOutput contains the standings for a game
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetRollHistoryInput selects rolls by game, by player or both
type GetRollHistoryInput struct {
	GameID   string
	PlayerID string

	// Limit keeps only the most recent rolls; zero returns all
	Limit int
}

// GetRollHistoryOutput contains the selected rolls. Game history is oldest
// first, player history without a game is newest first.
type GetRollHistoryOutput struct {
	Rolls []*models.Roll
}

// GetPlayerStatsInput contains parameters for retrieving a player's record
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains a player's lifetime record
type GetPlayerStatsOutput struct {
	Player    *models.Player
	RollStats *models.RollStats
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	GameID string

	// PlayerID must be the game creator
	PlayerID string
}

// AbandonGameOutput contains the abandoned game
type AbandonGameOutput struct {
	Game *models.Game
}

// GetActiveGamesInput asks for every game with turns in progress
type GetActiveGamesInput struct{}

// GetActiveGamesOutput contains the games in play
type GetActiveGamesOutput struct {
	Games []*models.Game
}
