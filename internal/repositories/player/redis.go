package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "greed:player:"
	gamePlayersKeyPrefix = "greed:game_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

func gamePlayersKey(gameID string) string {
	return gamePlayersKeyPrefix + gameID
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)

	// Keep the game's player set in step with the player record
	if player.CurrentGameID != "" {
		pipe.SAdd(ctx, gamePlayersKey(player.CurrentGameID), player.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInGame retrieves all players in a game from Redis
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for game: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInGameOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd, len(playerIDs))
	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.Get(ctx, playerKey(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &player)
	}

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

// UpdatePlayerGame updates a player's current game in Redis
func (r *redisRepository) UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	return r.moveToGame(ctx, player, input.GameID)
}

// RecordGameResult updates a player's totals from a finished game in Redis
func (r *redisRepository) RecordGameResult(ctx context.Context, input *RecordGameResultInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, ErrPlayerNotFound) {
			return nil, err
		}
		player = &models.Player{
			ID:   input.PlayerID,
			Name: input.Name,
		}
	}

	player.GamesPlayed++
	if input.Won {
		player.GamesWon++
	}
	if input.Score > player.HighScore {
		player.HighScore = input.Score
	}
	player.LastPlayedAt = input.PlayedAt

	// A player who already moved on to another game stays there
	nextGameID := player.CurrentGameID
	if nextGameID == input.GameID {
		nextGameID = ""
	}

	if err := r.moveToGame(ctx, player, nextGameID); err != nil {
		return nil, err
	}

	return player, nil
}

// moveToGame saves player with gameID as their current game and fixes up
// the per-game player sets
func (r *redisRepository) moveToGame(ctx context.Context, player *models.Player, gameID string) error {
	pipe := r.client.TxPipeline()

	if player.CurrentGameID != "" && player.CurrentGameID != gameID {
		pipe.SRem(ctx, gamePlayersKey(player.CurrentGameID), player.ID)
	}

	player.CurrentGameID = gameID

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}
	pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)

	if gameID != "" {
		pipe.SAdd(ctx, gamePlayersKey(gameID), player.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player game: %w", err)
	}

	return nil
}
