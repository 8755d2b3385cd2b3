package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusFinalRound indicates a player reached the winning score and
	// everyone is taking their last turn
	GameStatusFinalRound GameStatus = "final_round"

	// GameStatusCompleted indicates every player has had their final turn
	GameStatusCompleted GameStatus = "completed"

	// GameStatusAbandoned indicates the game was called off before it finished
	GameStatusAbandoned GameStatus = "abandoned"
)

// IsWaiting reports whether players can still join
func (s GameStatus) IsWaiting() bool {
	return s == GameStatusWaiting
}

// IsInProgress reports whether turns are being played
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusActive || s == GameStatusFinalRound
}

// IsFinished reports whether the game can no longer change
func (s GameStatus) IsFinished() bool {
	return s == GameStatusCompleted || s == GameStatusAbandoned
}

// Game represents a Greed match played in a channel
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the Discord channel where the game is being played
	ChannelID string

	// CreatorID is the player who created the game and may start it
	CreatorID string

	// Status is the current state of the game
	Status GameStatus

	// Participants are the seated players in turn order
	Participants []*Participant

	// CurrentPlayerIndex points into Participants at the player whose turn it is
	CurrentPlayerIndex int

	// TurnScore is the provisional score of the current turn
	TurnScore int

	// DiceAllowed is the number of dice the next roll must use
	DiceAllowed int

	// HasRolledThisTurn is set after a scoring roll in the current turn
	HasRolledThisTurn bool

	// WinnerIDs holds the players with the top score once the game completes
	WinnerIDs []string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// CurrentParticipant returns the participant whose turn it is, or nil when
// no turn is being played
func (g *Game) CurrentParticipant() *Participant {
	if !g.Status.IsInProgress() {
		return nil
	}
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Participants) {
		return nil
	}
	return g.Participants[g.CurrentPlayerIndex]
}

// GetParticipant finds a participant by player ID
func (g *Game) GetParticipant(playerID string) *Participant {
	for _, p := range g.Participants {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// IsWinner reports whether playerID is among the winners
func (g *Game) IsWinner(playerID string) bool {
	for _, id := range g.WinnerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
