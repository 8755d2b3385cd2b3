package models

import (
	"time"
)

// Participant represents a player's seat in a specific game
type Participant struct {
	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the total banked in this game
	Score int

	// IsIn is set once the player has banked a turn of at least the entry score
	IsIn bool

	// HasPlayedFinalTurn is set once the player's final round turn is over
	HasPlayedFinalTurn bool

	// JoinedAt is when the player took the seat
	JoinedAt time.Time
}
