package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

// GreedCommand handles the /greed command
type GreedCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	logger           zerolog.Logger
}

// NewGreedCommand creates a new greed command handler
func NewGreedCommand(gameService game.Service, messagingService messaging.Service, logger *zerolog.Logger) *GreedCommand {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}

	return &GreedCommand{
		BaseCommand: BaseCommand{
			Name:        "greed",
			Description: "Play Greed, the push-your-luck dice game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a new game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the standings of the game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Call off the game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show lifetime stats for a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Whose stats to show, defaults to you",
							Required:    false,
						},
					},
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		logger:           l,
	}
}

// Handle processes a Discord interaction for the greed command
func (c *GreedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	userID, username := interactionUser(i)
	sub := data.Options[0]

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i, userID, username)
	case "status":
		return c.handleStatus(ctx, s, i)
	case "leaderboard":
		return c.handleLeaderboard(ctx, s, i)
	case "abandon":
		return c.handleAbandon(ctx, s, i, userID)
	case "stats":
		targetID := userID
		for _, opt := range sub.Options {
			if opt.Name == "player" {
				if u := opt.UserValue(nil); u != nil {
					targetID = u.ID
				}
			}
		}
		return c.handleStats(ctx, s, i, targetID)
	}

	return errors.New("unknown subcommand")
}

func (c *GreedCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithError(s, i, errorText(ctx, c.messagingService, err, ""))
}

func (c *GreedCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	out, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChannelID:   i.ChannelID,
		CreatorID:   userID,
		CreatorName: username,
	})
	if err != nil {
		if !errors.Is(err, game.ErrGameAlreadyExists) {
			c.logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("Error creating game")
		}
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithData(s, i, renderGameMessage(out.Game, &notice{
		Title: fmt.Sprintf("%s opened a table!", username),
	}))
}

func (c *GreedCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	// a fresh copy of the game message with working buttons
	return RespondWithData(s, i, renderGameMessage(out.Game, nil))
}

func (c *GreedCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	existing, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{
		GameID: existing.Game.ID,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("game_id", existing.Game.ID).Msg("Error getting leaderboard")
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderLeaderboard(out.Leaderboard))
}

func (c *GreedCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	existing, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID:   existing.Game.ID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithError(s, i, errorText(ctx, c.messagingService, err, existing.Game.Status))
	}

	return RespondWithData(s, i, renderGameMessage(out.Game, nil))
}

func (c *GreedCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, playerID string) error {
	out, err := c.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, game.ErrPlayerNotFound) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("<@%s> hasn't played any Greed yet.", playerID))
		}
		c.logger.Error().Err(err).Str("player_id", playerID).Msg("Error getting player stats")
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderStats(out))
}
