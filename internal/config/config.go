// Package config loads bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/greed/internal/greed"
)

var (
	// ErrMissingToken is returned by Validate when DISCORD_TOKEN is empty
	ErrMissingToken = errors.New("DISCORD_TOKEN is required")

	// ErrInvalidMaxPlayer is returned by Validate for tables under two seats
	ErrInvalidMaxPlayer = errors.New("MAX_PLAYERS must be at least 2")

	// ErrInvalidScores is returned by Validate when the entry and winning
	// scores are out of order
	ErrInvalidScores = errors.New("ENTRY_SCORE must be positive and below WINNING_SCORE")

	// ErrInvalidLogFormat is returned by Validate for an unknown LOG_FORMAT
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be json or console")
)

// Config holds everything cmd/bot needs to start
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands to a single guild for development
	GuildID string `env:"GUILD_ID"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	MaxPlayers   int `env:"MAX_PLAYERS" envDefault:"8"`
	EntryScore   int `env:"ENTRY_SCORE" envDefault:"300"`
	WinningScore int `env:"WINNING_SCORE" envDefault:"3000"`

	// DiceSeed makes rolls reproducible, 0 seeds from the clock
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	// FinishedGameTTLHours is how long completed games stay in redis
	FinishedGameTTLHours int `env:"FINISHED_GAME_TTL_HOURS" envDefault:"168"`
}

// Load reads an optional .env file from files, or ./.env when none are
// given, then parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the bot cannot run without
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	if c.MaxPlayers < greed.MinPlayers {
		return ErrInvalidMaxPlayer
	}
	if c.EntryScore <= 0 || c.EntryScore >= c.WinningScore {
		return ErrInvalidScores
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Rules returns the game rules from the configured scores
func (c *Config) Rules() *greed.Rules {
	rules := greed.DefaultRules()
	rules.EntryScore = c.EntryScore
	rules.WinningScore = c.WinningScore
	return rules
}

// NewLogger builds the process logger. Console output is meant for local runs.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := w
	if c.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
