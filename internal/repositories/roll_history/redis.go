package roll_history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	rollKeyPrefix        = "greed:roll:"
	gameRollsKeyPrefix   = "greed:game_rolls:"
	playerRollsKeyPrefix = "greed:player_rolls:"
	rollStatsKeyPrefix   = "greed:roll_stats:"

	// Fields of the roll stats hash
	statRolls   = "rolls"
	statBusts   = "busts"
	statHotDice = "hot_dice"
	statPoints  = "points"
)

// Config holds configuration for the Redis roll history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roll history repository
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

func rollKey(rollID string) string {
	return rollKeyPrefix + rollID
}

func gameRollsKey(gameID string) string {
	return gameRollsKeyPrefix + gameID
}

func playerRollsKey(playerID string) string {
	return playerRollsKeyPrefix + playerID
}

func rollStatsKey(playerID string) string {
	return rollStatsKeyPrefix + playerID
}

// AddRoll stores a roll and indexes it by game and player
func (r *redisRepository) AddRoll(ctx context.Context, input *AddRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	roll := input.Roll
	switch {
	case roll.ID == "":
		return errors.New("roll ID cannot be empty")
	case roll.GameID == "":
		return errors.New("game ID cannot be empty")
	case roll.PlayerID == "":
		return errors.New("player ID cannot be empty")
	}

	rollJSON, err := json.Marshal(roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, rollKey(roll.ID), rollJSON, 0)

	// A list keeps a game's rolls in play order even within one millisecond
	pipe.RPush(ctx, gameRollsKey(roll.GameID), roll.ID)

	pipe.ZAdd(ctx, playerRollsKey(roll.PlayerID), redis.Z{
		Score:  float64(roll.Timestamp.UnixMilli()),
		Member: roll.ID,
	})

	statsKey := rollStatsKey(roll.PlayerID)
	pipe.HIncrBy(ctx, statsKey, statRolls, 1)
	pipe.HIncrBy(ctx, statsKey, statPoints, int64(roll.Score))
	if roll.Busted {
		pipe.HIncrBy(ctx, statsKey, statBusts, 1)
	}
	if roll.HotDice {
		pipe.HIncrBy(ctx, statsKey, statHotDice, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add roll: %w", err)
	}

	return nil
}

// GetRollsForGame retrieves all rolls for a game, oldest first
func (r *redisRepository) GetRollsForGame(ctx context.Context, input *GetRollsForGameInput) (*GetRollsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	rollIDs, err := r.client.LRange(ctx, gameRollsKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll IDs for game: %w", err)
	}

	rolls, err := r.getRolls(ctx, rollIDs)
	if err != nil {
		return nil, err
	}

	return &GetRollsForGameOutput{
		Rolls: rolls,
	}, nil
}

// GetRollsForPlayer retrieves a player's rolls, newest first
func (r *redisRepository) GetRollsForPlayer(ctx context.Context, input *GetRollsForPlayerInput) (*GetRollsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	rollIDs, err := r.client.ZRevRange(ctx, playerRollsKey(input.PlayerID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll IDs for player: %w", err)
	}

	rolls, err := r.getRolls(ctx, rollIDs)
	if err != nil {
		return nil, err
	}

	return &GetRollsForPlayerOutput{
		Rolls: rolls,
	}, nil
}

// GetRollStats retrieves a player's roll counters. A player who never
// rolled gets zeroed stats.
func (r *redisRepository) GetRollStats(ctx context.Context, input *GetRollStatsInput) (*models.RollStats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, rollStatsKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll stats: %w", err)
	}

	stats := &models.RollStats{
		PlayerID: input.PlayerID,
	}
	for name, dest := range map[string]*int{
		statRolls:   &stats.Rolls,
		statBusts:   &stats.Busts,
		statHotDice: &stats.HotDice,
		statPoints:  &stats.Points,
	} {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse roll stat %s: %w", name, err)
		}
		*dest = value
	}

	return stats, nil
}

// DeleteRollsForGame removes a game's rolls and their player index entries.
// Lifetime stats are kept.
func (r *redisRepository) DeleteRollsForGame(ctx context.Context, input *DeleteRollsForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	out, err := r.GetRollsForGame(ctx, &GetRollsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, roll := range out.Rolls {
		pipe.Del(ctx, rollKey(roll.ID))
		pipe.ZRem(ctx, playerRollsKey(roll.PlayerID), roll.ID)
	}
	pipe.Del(ctx, gameRollsKey(input.GameID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete rolls: %w", err)
	}

	return nil
}

// getRolls fetches roll records in the order of rollIDs, skipping any that
// no longer exist
func (r *redisRepository) getRolls(ctx context.Context, rollIDs []string) ([]*models.Roll, error) {
	if len(rollIDs) == 0 {
		return []*models.Roll{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(rollIDs))
	for i, rollID := range rollIDs {
		cmds[i] = pipe.Get(ctx, rollKey(rollID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get rolls: %w", err)
	}

	rolls := make([]*models.Roll, 0, len(rollIDs))
	for i, cmd := range cmds {
		rollJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get roll %s: %w", rollIDs[i], err)
		}

		var roll models.Roll
		if err := json.Unmarshal([]byte(rollJSON), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll %s: %w", rollIDs[i], err)
		}

		rolls = append(rolls, &roll)
	}

	return rolls, nil
}
