package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

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

// channelLockPrefix keeps channel keys apart from game ids in the lock set
const channelLockPrefix = "channel:"

// service implements the Service interface
type service struct {
	maxPlayers      int
	rules           *greed.Rules
	gameRepo        gameRepo.Repository
	playerRepo      playerRepo.Repository
	rollHistoryRepo rollHistoryRepo.Repository
	diceRoller      dice.Roller
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	locks           *lock.Keyed
	logger          zerolog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.RollHistoryRepo == nil {
		return nil, ErrNilRollHistoryRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	locks := cfg.Locks
	if locks == nil {
		locks = lock.New()
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "game_service").Logger()
	}

	return &service{
		maxPlayers:      maxPlayers,
		rules:           cfg.Rules,
		gameRepo:        cfg.GameRepo,
		playerRepo:      cfg.PlayerRepo,
		rollHistoryRepo: cfg.RollHistoryRepo,
		diceRoller:      cfg.DiceRoller,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		locks:           locks,
		logger:          logger,
	}, nil
}

// CreateGame opens a new game in a channel with the creator seated
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" || input.CreatorID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(channelLockPrefix + input.ChannelID)
	defer unlock()

	// Only one unfinished game per channel
	existing, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	switch {
	case err == nil && !existing.Status.IsFinished():
		return nil, ErrGameAlreadyExists
	case err != nil && !errors.Is(err, gameRepo.ErrGameNotFound):
		return nil, fmt.Errorf("failed to check channel game: %w", err)
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Status:    models.GameStatusWaiting,
		Participants: []*models.Participant{
			{
				PlayerID:   input.CreatorID,
				PlayerName: input.CreatorName,
				JoinedAt:   now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.ensurePlayer(ctx, input.CreatorID, input.CreatorName, game.ID); err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game, now); err != nil {
		s.releasePlayer(ctx, input.CreatorID, game.ID)
		return nil, err
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Str("channel_id", game.ChannelID).
		Str("creator_id", game.CreatorID).
		Msg("game created")

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// JoinGame adds a player to a game that has not started
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.Status.IsWaiting() {
		return nil, ErrInvalidGameState
	}

	if game.GetParticipant(input.PlayerID) != nil {
		return nil, ErrPlayerAlreadyInGame
	}

	if len(game.Participants) >= s.maxPlayers {
		return nil, ErrGameFull
	}

	now := s.clock.Now()
	game.Participants = append(game.Participants, &models.Participant{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		JoinedAt:   now,
	})

	if err := s.ensurePlayer(ctx, input.PlayerID, input.PlayerName, game.ID); err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game, now); err != nil {
		s.releasePlayer(ctx, input.PlayerID, game.ID)
		return nil, err
	}

	s.logger.Debug().
		Str("game_id", game.ID).
		Str("player_id", input.PlayerID).
		Int("players", len(game.Participants)).
		Msg("player joined")

	return &JoinGameOutput{
		Game: game,
	}, nil
}

// LeaveGame removes a player from a game that has not started. The creator
// role passes to the next player in line and an empty game is abandoned.
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.Status.IsWaiting() {
		return nil, ErrInvalidGameState
	}

	remaining := make([]*models.Participant, 0, len(game.Participants))
	for _, p := range game.Participants {
		if p.PlayerID != input.PlayerID {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(game.Participants) {
		return nil, ErrPlayerNotInGame
	}

	game.Participants = remaining

	output := &LeaveGameOutput{
		Game: game,
	}

	switch {
	case len(remaining) == 0:
		game.Status = models.GameStatusAbandoned
		game.UpdatedAt = s.clock.Now()
		output.Abandoned = true
	case game.CreatorID == input.PlayerID:
		game.CreatorID = remaining[0].PlayerID
	}

	if output.Abandoned {
		// An empty table never rolled, so there is nothing to keep
		if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
			GameID: game.ID,
		}); err != nil {
			return nil, fmt.Errorf("failed to delete game: %w", err)
		}
	} else if err := s.saveGame(ctx, game, s.clock.Now()); err != nil {
		return nil, err
	}

	s.releasePlayer(ctx, input.PlayerID, game.ID)

	s.logger.Debug().
		Str("game_id", game.ID).
		Str("player_id", input.PlayerID).
		Bool("abandoned", output.Abandoned).
		Msg("player left")

	return output, nil
}

// StartGame fixes the turn order in join order and begins play
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.CreatorID != input.PlayerID {
		return nil, ErrNotCreator
	}

	if !game.Status.IsWaiting() {
		return nil, ErrInvalidGameState
	}

	playerIDs := make([]string, 0, len(game.Participants))
	for _, p := range game.Participants {
		playerIDs = append(playerIDs, p.PlayerID)
	}

	core, err := greed.New(playerIDs, s.rules)
	if err != nil {
		return nil, err
	}

	applyState(game, core)

	if err := s.saveGame(ctx, game, s.clock.Now()); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Strs("turn_order", playerIDs).
		Msg("game started")

	return &StartGameOutput{
		Game: game,
	}, nil
}

// RollDice applies a roll for the current player. Core rule violations are
// returned unwrapped so callers can match the greed error kinds.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	core, err := s.restoreForTurn(game, input.PlayerID)
	if err != nil {
		return nil, err
	}

	faces := input.Faces
	if len(faces) == 0 {
		faces = s.diceRoller.RollDice(core.DiceAllowed())
	}

	result, err := core.RollDetailed(faces)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	applyState(game, core)

	output := &RollDiceOutput{
		Game:         game,
		NextPlayerID: result.NextPlayerID,
		GameOver:     core.Status() == greed.StatusEnded,
	}
	if output.GameOver {
		output.Winners = markWinners(game, core)
	}

	if err := s.saveGame(ctx, game, now); err != nil {
		return nil, err
	}

	output.Roll = &models.Roll{
		ID:          s.uuidGenerator.NewUUID(),
		GameID:      game.ID,
		PlayerID:    input.PlayerID,
		Faces:       result.Faces,
		Score:       result.Score,
		TurnScore:   result.TurnScore,
		DiceAllowed: result.DiceAllowed,
		Busted:      result.Busted,
		HotDice:     result.HotDice,
		Timestamp:   now,
	}

	// History is secondary to the game itself
	if err := s.rollHistoryRepo.AddRoll(ctx, &rollHistoryRepo.AddRollInput{Roll: output.Roll}); err != nil {
		s.logger.Error().Err(err).Str("game_id", game.ID).Msg("failed to record roll")
	}

	s.logger.Debug().
		Str("game_id", game.ID).
		Str("player_id", input.PlayerID).
		Ints("faces", result.Faces).
		Int("score", result.Score).
		Int("turn_score", result.TurnScore).
		Bool("busted", result.Busted).
		Msg("dice rolled")

	if output.GameOver {
		s.finishGame(ctx, game, now)
	}

	return output, nil
}

// EndTurn banks the current player's turn score
func (s *service) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	core, err := s.restoreForTurn(game, input.PlayerID)
	if err != nil {
		return nil, err
	}

	result, err := core.EndTurnDetailed()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	applyState(game, core)

	output := &EndTurnOutput{
		Game:            game,
		Banked:          result.Banked,
		Total:           result.Total,
		FinalRoundArmed: result.FinalRoundArmed,
		NextPlayerID:    result.NextPlayerID,
		GameOver:        core.Status() == greed.StatusEnded,
	}
	if output.GameOver {
		output.Winners = markWinners(game, core)
	}

	if err := s.saveGame(ctx, game, now); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Str("player_id", input.PlayerID).
		Int("banked", result.Banked).
		Int("total", result.Total).
		Msg("turn banked")

	if output.FinalRoundArmed {
		s.logger.Info().
			Str("game_id", game.ID).
			Str("player_id", input.PlayerID).
			Msg("final round")
	}

	if output.GameOver {
		s.finishGame(ctx, game, now)
	}

	return output, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// GetGameByChannel retrieves the latest game in a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get channel game: %w", err)
	}

	return &GetGameByChannelOutput{
		Game: game,
	}, nil
}

// GetLeaderboard ranks participants by banked score. Tied players share a
// rank and keep turn order between them.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Leaderboard: buildLeaderboard(game),
	}, nil
}

// GetRollHistory returns recorded rolls for a game, optionally narrowed to
// one player, or a player's rolls across games
func (s *service) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	if input == nil || (input.GameID == "" && input.PlayerID == "") {
		return nil, ErrInvalidInput
	}

	if input.GameID == "" {
		out, err := s.rollHistoryRepo.GetRollsForPlayer(ctx, &rollHistoryRepo.GetRollsForPlayerInput{
			PlayerID: input.PlayerID,
			Limit:    input.Limit,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get player rolls: %w", err)
		}
		return &GetRollHistoryOutput{
			Rolls: out.Rolls,
		}, nil
	}

	out, err := s.rollHistoryRepo.GetRollsForGame(ctx, &rollHistoryRepo.GetRollsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get game rolls: %w", err)
	}

	rolls := out.Rolls
	if input.PlayerID != "" {
		rolls = make([]*models.Roll, 0, len(out.Rolls))
		for _, roll := range out.Rolls {
			if roll.PlayerID == input.PlayerID {
				rolls = append(rolls, roll)
			}
		}
	}

	if input.Limit > 0 && len(rolls) > input.Limit {
		rolls = rolls[len(rolls)-input.Limit:]
	}

	return &GetRollHistoryOutput{
		Rolls: rolls,
	}, nil
}

// GetPlayerStats returns a player's lifetime record
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	stats, err := s.rollHistoryRepo.GetRollStats(ctx, &rollHistoryRepo.GetRollStatsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get roll stats: %w", err)
	}

	return &GetPlayerStatsOutput{
		Player:    player,
		RollStats: stats,
	}, nil
}

// AbandonGame stops an unfinished game without a winner. Its rolls are
// dropped from the history; lifetime roll stats are kept.
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	unlock := s.locks.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.CreatorID != input.PlayerID {
		return nil, ErrNotCreator
	}

	if game.Status.IsFinished() {
		return nil, ErrInvalidGameState
	}

	game.Status = models.GameStatusAbandoned

	if err := s.saveGame(ctx, game, s.clock.Now()); err != nil {
		return nil, err
	}

	s.releasePlayers(ctx, game.ID)

	if err := s.rollHistoryRepo.DeleteRollsForGame(ctx, &rollHistoryRepo.DeleteRollsForGameInput{
		GameID: game.ID,
	}); err != nil {
		s.logger.Error().Err(err).Str("game_id", game.ID).Msg("failed to drop abandoned rolls")
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Str("player_id", input.PlayerID).
		Msg("game abandoned")

	return &AbandonGameOutput{
		Game: game,
	}, nil
}

// GetActiveGames lists games with turns in progress, oldest first
func (s *service) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	out, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := out.Games
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// loadGame fetches a game and maps a missing game to ErrGameNotFound
func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game, now time.Time) error {
	game.UpdatedAt = now

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// restoreForTurn rebuilds the core game for a move by playerID
func (s *service) restoreForTurn(game *models.Game, playerID string) (*greed.Game, error) {
	switch {
	case game.Status == models.GameStatusCompleted:
		return nil, greed.ErrGameEnded
	case !game.Status.IsInProgress():
		return nil, ErrInvalidGameState
	}

	if game.GetParticipant(playerID) == nil {
		return nil, ErrPlayerNotInGame
	}

	if current := game.CurrentParticipant(); current == nil || current.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}

	core, err := greed.Restore(coreState(game), s.rules)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	return core, nil
}

// ensurePlayer creates the player record or points it at gameID
func (s *service) ensurePlayer(ctx context.Context, playerID, name, gameID string) error {
	_, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	switch {
	case errors.Is(err, playerRepo.ErrPlayerNotFound):
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: &models.Player{
				ID:            playerID,
				Name:          name,
				CurrentGameID: gameID,
			},
		}); err != nil {
			return fmt.Errorf("failed to save player: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to get player: %w", err)
	default:
		if err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
			PlayerID: playerID,
			GameID:   gameID,
		}); err != nil {
			return fmt.Errorf("failed to update player game: %w", err)
		}
	}

	return nil
}

// releasePlayer clears the player's current game if it is still gameID
func (s *service) releasePlayer(ctx context.Context, playerID, gameID string) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("failed to load player to release")
		return
	}

	if player.CurrentGameID != gameID {
		return
	}

	if err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
		PlayerID: playerID,
	}); err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to release player")
	}
}

// releasePlayers clears the current game of everyone still seated in gameID
func (s *service) releasePlayers(ctx context.Context, gameID string) {
	out, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: gameID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("game_id", gameID).Msg("failed to load players to release")
		return
	}

	for _, player := range out.Players {
		if player.CurrentGameID != gameID {
			continue
		}
		if err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
			PlayerID: player.ID,
		}); err != nil {
			s.logger.Error().Err(err).Str("player_id", player.ID).Msg("failed to release player")
		}
	}
}

// finishGame records every participant's result once a game has ended
func (s *service) finishGame(ctx context.Context, game *models.Game, now time.Time) {
	for _, p := range game.Participants {
		if _, err := s.playerRepo.RecordGameResult(ctx, &playerRepo.RecordGameResultInput{
			PlayerID: p.PlayerID,
			Name:     p.PlayerName,
			GameID:   game.ID,
			Score:    p.Score,
			Won:      game.IsWinner(p.PlayerID),
			PlayedAt: now,
		}); err != nil {
			s.logger.Error().Err(err).
				Str("game_id", game.ID).
				Str("player_id", p.PlayerID).
				Msg("failed to record game result")
		}
	}

	s.logger.Info().
		Str("game_id", game.ID).
		Strs("winners", game.WinnerIDs).
		Msg("game over")
}

// coreState converts a stored game into a snapshot the core can restore
func coreState(game *models.Game) *greed.State {
	players := make([]greed.Player, len(game.Participants))
	for i, p := range game.Participants {
		players[i] = greed.Player{
			ID:                 p.PlayerID,
			Score:              p.Score,
			IsIn:               p.IsIn,
			HasPlayedFinalTurn: p.HasPlayedFinalTurn,
		}
	}

	status := greed.StatusActive
	switch game.Status {
	case models.GameStatusFinalRound:
		status = greed.StatusFinalRound
	case models.GameStatusCompleted:
		status = greed.StatusEnded
	}

	return &greed.State{
		Players:            players,
		CurrentPlayerIndex: game.CurrentPlayerIndex,
		TurnScore:          game.TurnScore,
		DiceAllowed:        game.DiceAllowed,
		HasRolledThisTurn:  game.HasRolledThisTurn,
		Status:             status,
	}
}

// applyState copies the core game's state onto the stored game. Participants
// keep their order, which is the turn order.
func applyState(game *models.Game, core *greed.Game) {
	state := core.State()
	for i, p := range state.Players {
		participant := game.Participants[i]
		participant.Score = p.Score
		participant.IsIn = p.IsIn
		participant.HasPlayedFinalTurn = p.HasPlayedFinalTurn
	}

	game.CurrentPlayerIndex = state.CurrentPlayerIndex
	game.TurnScore = state.TurnScore
	game.DiceAllowed = state.DiceAllowed
	game.HasRolledThisTurn = state.HasRolledThisTurn

	switch state.Status {
	case greed.StatusActive:
		game.Status = models.GameStatusActive
	case greed.StatusFinalRound:
		game.Status = models.GameStatusFinalRound
	case greed.StatusEnded:
		game.Status = models.GameStatusCompleted
	}
}

// markWinners stores the winners of an ended core game and returns them
func markWinners(game *models.Game, core *greed.Game) []*models.Participant {
	winners := core.Winners()

	game.WinnerIDs = make([]string, 0, len(winners))
	participants := make([]*models.Participant, 0, len(winners))
	for _, w := range winners {
		game.WinnerIDs = append(game.WinnerIDs, w.ID)
		participants = append(participants, game.GetParticipant(w.ID))
	}

	return participants
}

// buildLeaderboard ranks participants with competition ranking (1, 1, 3)
func buildLeaderboard(game *models.Game) *models.Leaderboard {
	current := game.CurrentParticipant()

	entries := make([]*models.LeaderboardEntry, 0, len(game.Participants))
	for _, p := range game.Participants {
		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   p.PlayerID,
			PlayerName: p.PlayerName,
			Score:      p.Score,
			IsIn:       p.IsIn,
			IsCurrent:  current != nil && current.PlayerID == p.PlayerID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i, entry := range entries {
		if i > 0 && entry.Score == entries[i-1].Score {
			entry.Rank = entries[i-1].Rank
			continue
		}
		entry.Rank = i + 1
	}

	return &models.Leaderboard{
		GameID:  game.ID,
		Status:  game.Status,
		Entries: entries,
	}
}
