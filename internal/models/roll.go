package models

import (
	"time"
)

// Roll records one roll of the dice in a game
type Roll struct {
	// ID is the unique identifier for the roll
	ID string

	// GameID is the ID of the game the roll belongs to
	GameID string

	// PlayerID is the ID of the player who made the roll
	PlayerID string

	// Faces are the dice values rolled
	Faces []int

	// Score is the value of this roll alone
	Score int

	// TurnScore is the provisional turn score after the roll
	TurnScore int

	// DiceAllowed is the number of dice for the next roll, 0 after a bust
	DiceAllowed int

	// Busted indicates the roll scored nothing and the turn was lost
	Busted bool

	// HotDice indicates every die scored and a fresh set is rolled next
	HotDice bool

	// Timestamp is when the roll was made
	Timestamp time.Time
}

// RollStats are a player's lifetime roll counters
type RollStats struct {
	PlayerID string

	// Rolls counts every roll made
	Rolls int

	// Busts counts rolls that scored nothing
	Busts int

	// HotDice counts rolls where every die scored
	HotDice int

	// Points is the sum of all roll scores, banked or not
	Points int
}
