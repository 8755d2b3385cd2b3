package greed

import "fmt"

// GameStartError is returned when a game cannot be constructed
type GameStartError string

// Error implements the error interface
func (e GameStartError) Error() string {
	return string(e)
}

// GamePlayError is returned when a call violates turn sequencing or gating.
// The game is unchanged and the caller may retry with corrected input.
type GamePlayError string

// Error implements the error interface
func (e GamePlayError) Error() string {
	return string(e)
}

// GameEndError is returned when a roll is attempted after the game is over
type GameEndError string

// Error implements the error interface
func (e GameEndError) Error() string {
	return string(e)
}

const (
	ErrNotEnoughPlayers GameStartError = "Not enough players"
	ErrDuplicatePlayers GameStartError = "Players must have unique names"
	ErrInvalidState     GameStartError = "Invalid game state"

	ErrNotRolled   GamePlayError = "Cannot end turn until you roll"
	ErrNotIn       GamePlayError = "Cannot end turn until player is in"
	ErrInvalidFace GamePlayError = "Dice faces must be between 1 and 6"

	ErrGameEnded GameEndError = "Game has ended"
)

// wrongDiceCount reports a roll with the wrong number of dice
func wrongDiceCount(allowed int) GamePlayError {
	return GamePlayError(fmt.Sprintf("Must roll with %d die", allowed))
}
