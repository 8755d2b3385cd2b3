package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/lock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/config"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/handlers/discord"
	"github.com/KirkDiggler/greed/internal/repositories/game"
	"github.com/KirkDiggler/greed/internal/repositories/player"
	"github.com/KirkDiggler/greed/internal/repositories/roll_history"
	gameService "github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = cfg.NewLogger(os.Stderr)
	logger := log.Logger

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}

	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient:     redisClient,
		FinishedGameTTL: time.Duration(cfg.FinishedGameTTLHours) * time.Hour,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game repository")
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create player repository")
	}

	rollHistoryRepo, err := roll_history.NewRedis(&roll_history.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create roll history repository")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:      cfg.MaxPlayers,
		Rules:           cfg.Rules(),
		GameRepo:        gameRepo,
		PlayerRepo:      playerRepo,
		RollHistoryRepo: rollHistoryRepo,
		DiceRoller:      dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		Locks:           lock.New(),
		Logger:          &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game service")
	}

	// Games survive restarts in Redis; their buttons keep working
	active, err := gameSvc.GetActiveGames(pingCtx, &gameService.GetActiveGamesInput{})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to list active games")
	} else {
		for _, g := range active.Games {
			logger.Info().
				Str("game_id", g.ID).
				Str("channel_id", g.ChannelID).
				Str("status", string(g.Status)).
				Int("players", len(g.Participants)).
				Msg("Resuming game")
		}
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Logger:           &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	logger.Info().
		Int("max_players", cfg.MaxPlayers).
		Int("entry_score", cfg.EntryScore).
		Int("winning_score", cfg.WinningScore).
		Msg("Greed bot started. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("Error stopping bot")
	}

	logger.Info().Msg("Bot has been shut down")
}
