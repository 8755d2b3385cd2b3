package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "greed:game:"
	channelKeyPrefix = "greed:channel:"
	activeGamesKey   = "greed:active_games"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// FinishedGameTTL expires completed and abandoned games; zero keeps them
	FinishedGameTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client          *redis.Client
	finishedGameTTL time.Duration
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:          cfg.RedisClient,
		finishedGameTTL: cfg.FinishedGameTTL,
	}, nil
}

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func channelKey(channelID string) string {
	return channelKeyPrefix + channelID
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	var ttl time.Duration
	if input.Game.Status.IsFinished() {
		ttl = r.finishedGameTTL
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, gameKey(input.Game.ID), gameJSON, ttl)

	// The channel always points at the most recently saved game
	if input.Game.ChannelID != "" {
		pipe.Set(ctx, channelKey(input.Game.ChannelID), input.Game.ID, ttl)
	}

	if input.Game.Status.IsInProgress() {
		pipe.SAdd(ctx, activeGamesKey, input.Game.ID)
	} else {
		pipe.SRem(ctx, activeGamesKey, input.Game.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByChannel retrieves a game by channel ID from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Get the game first to get its channel ID
	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, gameKey(input.GameID))

	// Only drop the channel mapping if it still points at this game
	if game.ChannelID != "" {
		current, err := r.client.Get(ctx, channelKey(game.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get game ID for channel: %w", err)
		}
		if current == input.GameID {
			pipe.Del(ctx, channelKey(game.ChannelID))
		}
	}

	pipe.SRem(ctx, activeGamesKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetActiveGames retrieves all games with turns in progress from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	// Get all games in one round trip
	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	// redis.Nil from individual commands is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Game expired between getting the IDs and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, &game)
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}
