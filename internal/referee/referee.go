// Package referee runs a complete game of Greed in memory, rolling the dice
// and asking a Strategy for every player decision.
package referee

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/greed"
)

// DefaultMaxRolls bounds a game when Config.MaxRolls is not set
const DefaultMaxRolls = 10000

// maxRejections is how many refused decisions in a row end the game
const maxRejections = 3

var (
	// ErrNilConfig is returned by New without a config
	ErrNilConfig = errors.New("referee: config is nil")

	// ErrNilRoller is returned by New without a dice roller
	ErrNilRoller = errors.New("referee: dice roller is required")

	// ErrNoStrategy is returned by Play when a player has no strategy and
	// there is no default
	ErrNoStrategy = errors.New("referee: no strategy for player")

	// ErrTooManyRolls is returned by Play when MaxRolls is used up
	ErrTooManyRolls = errors.New("referee: roll limit reached before the game ended")

	// ErrStrategyStuck is returned by Play after a strategy's decision has
	// been refused too many times in a row
	ErrStrategyStuck = errors.New("referee: strategy kept making illegal decisions")
)

// EventKind identifies an Event
type EventKind string

const (
	// EventRoll reports a roll, scoring or bust
	EventRoll EventKind = "roll"

	// EventBank reports a banked turn
	EventBank EventKind = "bank"

	// EventRejected reports a decision the game refused
	EventRejected EventKind = "rejected"

	// EventGameOver is the last event of a game
	EventGameOver EventKind = "game_over"
)

// Event is reported to the observer as the game progresses
type Event struct {
	Kind     EventKind
	PlayerID string

	// Roll is set for EventRoll
	Roll *greed.RollResult

	// Turn is set for EventBank
	Turn *greed.TurnResult

	// Err is set for EventRejected
	Err error

	// Winners is set for EventGameOver
	Winners []greed.Player
}

// Config for a referee
type Config struct {
	Roller dice.Roller

	// Rules for the game, nil uses greed.DefaultRules
	Rules *greed.Rules

	// Strategies by player id. Players without an entry use Default.
	Strategies map[string]Strategy
	Default    Strategy

	MaxRolls int

	// Observer is called synchronously for every event
	Observer func(Event)

	Logger *zerolog.Logger
}

// Result of a finished game
type Result struct {
	Players []greed.Player
	Winners []greed.Player
	Rolls   int
}

// Referee plays games to completion
type Referee struct {
	roller     dice.Roller
	rules      *greed.Rules
	strategies map[string]Strategy
	fallback   Strategy
	maxRolls   int
	observer   func(Event)
	logger     zerolog.Logger
}

// New creates a referee
func New(cfg *Config) (*Referee, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	r := &Referee{
		roller:     cfg.Roller,
		rules:      cfg.Rules,
		strategies: cfg.Strategies,
		fallback:   cfg.Default,
		maxRolls:   cfg.MaxRolls,
		observer:   cfg.Observer,
		logger:     zerolog.Nop(),
	}
	if r.maxRolls <= 0 {
		r.maxRolls = DefaultMaxRolls
	}
	if cfg.Logger != nil {
		r.logger = cfg.Logger.With().Str("component", "referee").Logger()
	}

	return r, nil
}

func (r *Referee) strategyFor(playerID string) (Strategy, error) {
	if s, ok := r.strategies[playerID]; ok && s != nil {
		return s, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, ErrNoStrategy
}

// Play runs a game for playerIDs in turn order until it ends
func (r *Referee) Play(ctx context.Context, playerIDs []string) (*Result, error) {
	for _, id := range playerIDs {
		if _, err := r.strategyFor(id); err != nil {
			return nil, err
		}
	}

	game, err := greed.New(playerIDs, r.rules)
	if err != nil {
		return nil, err
	}

	var (
		rolls    int
		rejected int
		lastRoll *greed.RollResult
	)

	for game.Status() != greed.StatusEnded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rolls >= r.maxRolls {
			return nil, ErrTooManyRolls
		}

		current := game.CurrentPlayer()
		strategy, _ := r.strategyFor(current.ID)

		view := r.view(game, lastRoll)
		decision, err := strategy.Decide(view)
		if err != nil {
			return nil, err
		}

		if decision == DecisionBank {
			turn, err := game.EndTurnDetailed()
			if err != nil {
				var playErr greed.GamePlayError
				if !errors.As(err, &playErr) {
					return nil, err
				}
				rejected++
				r.emit(Event{Kind: EventRejected, PlayerID: current.ID, Err: err})
				if rejected >= maxRejections {
					return nil, ErrStrategyStuck
				}
				continue
			}

			rejected = 0
			lastRoll = nil
			r.logger.Debug().
				Str("player_id", turn.PlayerID).
				Int("banked", turn.Banked).
				Int("total", turn.Total).
				Bool("final_round_armed", turn.FinalRoundArmed).
				Msg("Turn banked")
			r.emit(Event{Kind: EventBank, PlayerID: current.ID, Turn: turn})
			continue
		}

		faces := r.roller.RollDice(game.DiceAllowed())
		roll, err := game.RollDetailed(faces)
		if err != nil {
			return nil, err
		}

		rolls++
		rejected = 0
		lastRoll = roll
		if roll.Busted {
			lastRoll = nil
		}
		r.emit(Event{Kind: EventRoll, PlayerID: current.ID, Roll: roll})
	}

	winners := game.Winners()
	r.logger.Info().
		Int("rolls", rolls).
		Int("winners", len(winners)).
		Msg("Game finished")
	r.emit(Event{Kind: EventGameOver, Winners: winners})

	return &Result{
		Players: game.Players(),
		Winners: winners,
		Rolls:   rolls,
	}, nil
}

func (r *Referee) view(game *greed.Game, lastRoll *greed.RollResult) *View {
	current := game.CurrentPlayer()

	leader := 0
	for _, p := range game.Players() {
		if p.ID != current.ID && p.Score > leader {
			leader = p.Score
		}
	}

	return &View{
		PlayerID:    current.ID,
		Score:       current.Score,
		IsIn:        current.IsIn,
		TurnScore:   game.TurnScore(),
		DiceAllowed: game.DiceAllowed(),
		HasRolled:   game.HasRolledThisTurn(),
		Status:      game.Status(),
		Rules:       game.Rules(),
		LeaderScore: leader,
		LastRoll:    lastRoll,
	}
}

func (r *Referee) emit(e Event) {
	if r.observer != nil {
		r.observer(e)
	}
}
