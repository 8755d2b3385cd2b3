package greed

// Player is a seat in a game.
// Values handed out by Game are copies; only the game mutates its own players.
type Player struct {
	// ID identifies the player and must be unique within a game
	ID string

	// Score is the total banked across turns
	Score int

	// IsIn is set once the player banks a turn worth at least the entry score
	IsIn bool

	// HasPlayedFinalTurn is set when the player's turn ends during the final round
	HasPlayedFinalTurn bool
}
