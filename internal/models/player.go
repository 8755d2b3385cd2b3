package models

import (
	"time"
)

// Player is a player's profile across games
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// CurrentGameID is the ID of the game the player is currently in
	CurrentGameID string

	// GamesPlayed counts completed games
	GamesPlayed int

	// GamesWon counts completed games the player won or tied for first
	GamesWon int

	// HighScore is the best final score across completed games
	HighScore int

	// LastPlayedAt is when the player last finished a game
	LastPlayedAt time.Time
}
