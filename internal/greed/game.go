// Package greed implements the turn state machine of the Greed dice game.
//
// A Game never rolls dice itself. Callers roll however they like and hand the
// faces to Roll, which checks them against the number of dice currently
// allowed. Every call validates fully before it changes anything, so a call
// that returns an error leaves the game exactly as it was.
//
// Turn flow:
//
//	Roll(faces)  scoring roll   -> turn score grows, dice allowed recomputed
//	Roll(faces)  zero score     -> turn score lost, next player's turn
//	EndTurn()                   -> turn score banked, next player's turn
//
// Once a banked score reaches the winning score the final round is armed and
// every player, including the one who armed it, gets exactly one more turn.
package greed

// Status is the phase of a game
type Status string

const (
	// StatusActive is normal play before anyone reaches the winning score
	StatusActive Status = "active"

	// StatusFinalRound means the winning score was reached and players are
	// taking their last turns
	StatusFinalRound Status = "final_round"

	// StatusEnded means every player has had their final turn
	StatusEnded Status = "ended"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinalRound, StatusEnded:
		return true
	}
	return false
}

// RollResult describes the outcome of one roll
type RollResult struct {
	// PlayerID is the player who rolled
	PlayerID string

	// Faces are the dice as supplied
	Faces []int

	// Score is the value of this roll alone
	Score int

	// TurnScore is the provisional turn score after the roll, 0 on a bust
	TurnScore int

	// DiceAllowed is the number of dice the next roll must use, 0 on a bust
	DiceAllowed int

	// Busted is set when the roll scored nothing and the turn was lost
	Busted bool

	// HotDice is set when every die scored and a fresh set is rolled
	HotDice bool

	// NextPlayerID is whoever must act next
	NextPlayerID string

	// Status is the game status after the roll
	Status Status
}

// TurnResult describes a banked turn
type TurnResult struct {
	PlayerID        string
	Banked          int
	Total           int
	FinalRoundArmed bool
	NextPlayerID    string
	Status          Status
}

// Game is a single match of Greed. It is not safe for concurrent use.
type Game struct {
	rules       *Rules
	players     []Player
	current     int
	turnScore   int
	diceAllowed int
	rolled      bool
	status      Status
}

// New creates a game for the given player ids in turn order.
// A nil rules value uses DefaultRules.
func New(playerIDs []string, rules *Rules) (*Game, error) {
	if len(playerIDs) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(playerIDs))
	players := make([]Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if _, ok := seen[id]; ok {
			return nil, ErrDuplicatePlayers
		}
		seen[id] = struct{}{}
		players = append(players, Player{ID: id})
	}

	return &Game{
		rules:       rules.withDefaults(),
		players:     players,
		diceAllowed: DefaultDiceCount,
		status:      StatusActive,
	}, nil
}

// Roll applies a roll of faces for the current player. It returns the number
// of dice the next roll must use, or 0 when the roll scored nothing and the
// turn passed to the next player.
func (g *Game) Roll(faces []int) (int, error) {
	result, err := g.RollDetailed(faces)
	if err != nil {
		return 0, err
	}
	return result.DiceAllowed, nil
}

// RollDetailed is Roll with the full outcome
func (g *Game) RollDetailed(faces []int) (*RollResult, error) {
	if g.isOver() {
		return nil, ErrGameEnded
	}
	if len(faces) != g.diceAllowed {
		return nil, wrongDiceCount(g.diceAllowed)
	}
	for _, face := range faces {
		if face < 1 || face > 6 {
			return nil, ErrInvalidFace
		}
	}

	result := &RollResult{
		PlayerID: g.players[g.current].ID,
		Faces:    append([]int(nil), faces...),
		Score:    g.rules.Scorer.Score(faces),
	}

	if result.Score <= 0 {
		result.Score = 0
		result.Busted = true
		g.advance()
	} else {
		g.rolled = true
		g.turnScore += result.Score
		g.diceAllowed = RerollCount(faces)

		result.TurnScore = g.turnScore
		result.DiceAllowed = g.diceAllowed
		result.HotDice = g.diceAllowed == DefaultDiceCount
	}

	result.NextPlayerID = g.players[g.current].ID
	result.Status = g.status
	return result, nil
}

// EndTurn banks the current turn score for the current player
func (g *Game) EndTurn() error {
	_, err := g.EndTurnDetailed()
	return err
}

// EndTurnDetailed is EndTurn with the full outcome
func (g *Game) EndTurnDetailed() (*TurnResult, error) {
	if !g.rolled {
		return nil, ErrNotRolled
	}
	player := &g.players[g.current]
	if g.turnScore < g.rules.EntryScore && !player.IsIn {
		return nil, ErrNotIn
	}

	player.IsIn = true
	player.Score += g.turnScore

	result := &TurnResult{
		PlayerID: player.ID,
		Banked:   g.turnScore,
		Total:    player.Score,
	}

	// the player who arms the final round is not flagged by this advance
	arming := g.status == StatusActive && player.Score >= g.rules.WinningScore
	g.advance()
	if arming {
		g.status = StatusFinalRound
		result.FinalRoundArmed = true
	}

	result.NextPlayerID = g.players[g.current].ID
	result.Status = g.status
	return result, nil
}

// advance resets per-turn state and passes the dice to the next player
func (g *Game) advance() {
	g.diceAllowed = DefaultDiceCount
	g.turnScore = 0
	g.rolled = false

	if g.status == StatusFinalRound {
		g.players[g.current].HasPlayedFinalTurn = true
	}

	g.current = (g.current + 1) % len(g.players)

	if g.status == StatusFinalRound && g.players[g.current].HasPlayedFinalTurn {
		g.status = StatusEnded
	}
}

func (g *Game) isOver() bool {
	if g.status == StatusEnded {
		return true
	}
	return g.status == StatusFinalRound && g.players[g.current].HasPlayedFinalTurn
}

// TurnScore returns the provisional score of the current turn
func (g *Game) TurnScore() int {
	return g.turnScore
}

// DiceAllowed returns how many dice the next roll must use
func (g *Game) DiceAllowed() int {
	return g.diceAllowed
}

// HasRolledThisTurn reports whether the current player has a scoring roll this turn
func (g *Game) HasRolledThisTurn() bool {
	return g.rolled
}

// Status returns the game phase
func (g *Game) Status() Status {
	return g.status
}

// Rules returns a copy of the rules in effect
func (g *Game) Rules() Rules {
	return *g.rules
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() Player {
	return g.players[g.current]
}

// CurrentPlayerIndex returns the turn order position of the current player
func (g *Game) CurrentPlayerIndex() int {
	return g.current
}

// Players returns the players in turn order
func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

// Player looks up a player by id
func (g *Game) Player(id string) (Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Winners returns the players holding the top score once the game has
// ended, in turn order. Ties share the win. It returns nil before the end.
func (g *Game) Winners() []Player {
	if g.status != StatusEnded {
		return nil
	}

	best := 0
	for _, p := range g.players {
		if p.Score > best {
			best = p.Score
		}
	}

	var winners []Player
	for _, p := range g.players {
		if p.Score == best {
			winners = append(winners, p)
		}
	}
	return winners
}
