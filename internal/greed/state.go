package greed

// State is a plain copy of everything a Game tracks, used to persist a game
// between calls and to rebuild it with Restore.
type State struct {
	Players            []Player
	CurrentPlayerIndex int
	TurnScore          int
	DiceAllowed        int
	HasRolledThisTurn  bool
	Status             Status
}

// State returns a snapshot of the game
func (g *Game) State() *State {
	return &State{
		Players:            g.Players(),
		CurrentPlayerIndex: g.current,
		TurnScore:          g.turnScore,
		DiceAllowed:        g.diceAllowed,
		HasRolledThisTurn:  g.rolled,
		Status:             g.status,
	}
}

// Restore rebuilds a game from a snapshot taken with State.
// The snapshot is checked for internal consistency; a nil rules value uses
// DefaultRules.
func Restore(state *State, rules *Rules) (*Game, error) {
	if state == nil {
		return nil, ErrInvalidState
	}
	if len(state.Players) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(state.Players))
	for _, p := range state.Players {
		if _, ok := seen[p.ID]; ok {
			return nil, ErrDuplicatePlayers
		}
		seen[p.ID] = struct{}{}
		if p.Score < 0 {
			return nil, ErrInvalidState
		}
	}

	switch {
	case state.CurrentPlayerIndex < 0 || state.CurrentPlayerIndex >= len(state.Players):
		return nil, ErrInvalidState
	case state.DiceAllowed < 1 || state.DiceAllowed > DefaultDiceCount:
		return nil, ErrInvalidState
	case state.TurnScore < 0:
		return nil, ErrInvalidState
	case !state.Status.IsValid():
		return nil, ErrInvalidState
	}

	return &Game{
		rules:       rules.withDefaults(),
		players:     append([]Player(nil), state.Players...),
		current:     state.CurrentPlayerIndex,
		turnScore:   state.TurnScore,
		diceAllowed: state.DiceAllowed,
		rolled:      state.HasRolledThisTurn,
		status:      state.Status,
	}, nil
}
