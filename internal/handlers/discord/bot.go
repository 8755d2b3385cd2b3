// Package discord exposes Greed games as a Discord slash command with
// buttons on a shared game message.
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

// interactionTimeout bounds the service calls behind one interaction.
// Discord drops interactions that are not answered within three seconds.
const interactionTimeout = 2500 * time.Millisecond

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
	logger           zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	GameService      game.Service
	MessagingService messaging.Service

	Logger *zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "discord").Logger()
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		logger:           logger,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	greedCmd := NewGreedCommand(b.gameService, b.messagingService, &b.logger)
	if err := b.RegisterCommand(greedCmd); err != nil {
		return fmt.Errorf("failed to register greed command: %w", err)
	}

	b.logger.Info().Msg("Bot is running")
	return nil
}

// Stop removes registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Error().Err(err).Str("command", cmdName).Msg("Failed to delete command")
			continue
		}
		b.logger.Debug().Str("command", cmdName).Msg("Deleted command")
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// or globally when none is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("Registered command")

	return nil
}

// handleInteraction routes slash commands and button clicks
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).
				Str("custom_id", i.MessageComponentData().CustomID).
				Msg("Error handling component interaction")
		}
	}
}

// componentHandler runs one button action against the channel's game and
// returns the game to redraw with an optional notice
type componentHandler func(ctx context.Context, g *models.Game, userID, username string) (*models.Game, *notice, error)

func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	var handler componentHandler
	switch customID {
	case ButtonJoinGame:
		handler = b.joinGame
	case ButtonLeaveGame:
		handler = b.leaveGame
	case ButtonBeginGame:
		handler = b.beginGame
	case ButtonRollDice:
		handler = b.rollDice
	case ButtonBankTurn:
		handler = b.bankTurn
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	userID, username := interactionUser(i)

	existing, err := b.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, errorText(ctx, b.messagingService, err, ""))
	}

	updated, n, err := handler(ctx, existing.Game, userID, username)
	if err != nil {
		b.logger.Debug().Err(err).
			Str("game_id", existing.Game.ID).
			Str("player_id", userID).
			Str("custom_id", customID).
			Msg("Button rejected")
		return RespondWithError(s, i, errorText(ctx, b.messagingService, err, existing.Game.Status))
	}

	return UpdateWithData(s, i, renderGameMessage(updated, n))
}

func (b *Bot) joinGame(ctx context.Context, g *models.Game, userID, username string) (*models.Game, *notice, error) {
	alreadyJoined := g.GetParticipant(userID) != nil

	updated := g
	if !alreadyJoined {
		out, err := b.gameService.JoinGame(ctx, &game.JoinGameInput{
			GameID:     g.ID,
			PlayerID:   userID,
			PlayerName: username,
		})
		if err != nil {
			return nil, nil, err
		}
		updated = out.Game
	}

	msg, err := b.messagingService.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName:    username,
		GameStatus:    updated.Status,
		AlreadyJoined: alreadyJoined,
	})
	if err != nil {
		return updated, nil, nil
	}
	return updated, &notice{Message: msg.Message}, nil
}

func (b *Bot) leaveGame(ctx context.Context, g *models.Game, userID, username string) (*models.Game, *notice, error) {
	out, err := b.gameService.LeaveGame(ctx, &game.LeaveGameInput{
		GameID:   g.ID,
		PlayerID: userID,
	})
	if err != nil {
		return nil, nil, err
	}

	if out.Abandoned {
		return out.Game, &notice{Message: fmt.Sprintf("%s left and the table is empty.", username)}, nil
	}
	return out.Game, &notice{Message: fmt.Sprintf("%s left the table.", username)}, nil
}

func (b *Bot) beginGame(ctx context.Context, g *models.Game, userID, _ string) (*models.Game, *notice, error) {
	out, err := b.gameService.StartGame(ctx, &game.StartGameInput{
		GameID:   g.ID,
		PlayerID: userID,
	})
	if err != nil {
		return nil, nil, err
	}

	return out.Game, &notice{Title: "Let the greed begin!"}, nil
}

func (b *Bot) rollDice(ctx context.Context, g *models.Game, userID, username string) (*models.Game, *notice, error) {
	out, err := b.gameService.RollDice(ctx, &game.RollDiceInput{
		GameID:   g.ID,
		PlayerID: userID,
	})
	if err != nil {
		return nil, nil, err
	}

	title, flavour := "", ""
	msg, err := b.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName:  username,
		Score:       out.Roll.Score,
		TurnScore:   out.Roll.TurnScore,
		DiceAllowed: out.Roll.DiceAllowed,
		Busted:      out.Roll.Busted,
		HotDice:     out.Roll.HotDice,
	})
	if err == nil {
		title, flavour = msg.Title, msg.Message
	}

	n := renderRollNotice(out.Roll, title, flavour)
	if out.GameOver {
		b.appendGameOver(ctx, n, out.Winners)
	}
	return out.Game, n, nil
}

func (b *Bot) bankTurn(ctx context.Context, g *models.Game, userID, username string) (*models.Game, *notice, error) {
	out, err := b.gameService.EndTurn(ctx, &game.EndTurnInput{
		GameID:   g.ID,
		PlayerID: userID,
	})
	if err != nil {
		return nil, nil, err
	}

	n := &notice{Message: fmt.Sprintf("%s banked %d for %d.", username, out.Banked, out.Total)}
	msg, err := b.messagingService.GetBankMessage(ctx, &messaging.GetBankMessageInput{
		PlayerName:      username,
		Banked:          out.Banked,
		Total:           out.Total,
		FinalRoundArmed: out.FinalRoundArmed,
	})
	if err == nil {
		n = &notice{Title: msg.Title, Message: msg.Message}
	}

	if out.GameOver {
		b.appendGameOver(ctx, n, out.Winners)
	}
	return out.Game, n, nil
}

func (b *Bot) appendGameOver(ctx context.Context, n *notice, winners []*models.Participant) {
	if len(winners) == 0 {
		return
	}

	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, w.PlayerName)
	}

	msg, err := b.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerNames: names,
		Score:       winners[0].Score,
	})
	if err != nil {
		return
	}

	n.Title = msg.Title
	n.Message += "\n\n" + msg.Message
}
