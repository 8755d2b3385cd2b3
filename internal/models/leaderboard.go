package models

// LeaderboardEntry is one player's standing in a game
type LeaderboardEntry struct {
	// Rank starts at 1; tied scores share a rank
	Rank int

	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the banked score
	Score int

	// IsIn indicates the player has got in
	IsIn bool

	// IsCurrent indicates it is this player's turn
	IsCurrent bool
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// Status is the game status when the leaderboard was built
	Status GameStatus

	// Entries are ordered by rank
	Entries []*LeaderboardEntry
}
