package messaging

import (
	"github.com/KirkDiggler/greed/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names a failure the bot explains to a player
type ErrorType string

const (
	ErrorTypeGameNotFound ErrorType = "game_not_found"
	ErrorTypeGameStarted  ErrorType = "game_started"
	ErrorTypeNotStarted   ErrorType = "not_started"
	ErrorTypeGameFinished ErrorType = "game_finished"
	ErrorTypeGameFull     ErrorType = "game_full"
	ErrorTypeGameExists   ErrorType = "game_exists"
	ErrorTypeNotYourTurn  ErrorType = "not_your_turn"
	ErrorTypeNotInGame    ErrorType = "not_in_game"
	ErrorTypeNotCreator   ErrorType = "not_creator"
	ErrorTypeNotEnough    ErrorType = "not_enough_players"
	ErrorTypeNotRolled    ErrorType = "not_rolled"
	ErrorTypeNotIn        ErrorType = "not_in"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed fixes message selection; zero seeds from the clock
	Seed int64
}

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// GameStatus is the current status of the game
	GameStatus models.GameStatus

	// AlreadyJoined indicates if the player was already in the game
	AlreadyJoined bool

	// PreferredTone picks the message variant; unknown tones fall back to funny
	PreferredTone MessageTone
}

// GetJoinGameMessageOutput contains the result of getting a join game message
type GetJoinGameMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRollResultMessageInput describes a roll to comment on
type GetRollResultMessageInput struct {
	PlayerName  string
	Score       int
	TurnScore   int
	DiceAllowed int
	Busted      bool
	HotDice     bool
}

// GetRollResultMessageOutput contains the roll commentary
type GetRollResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetBankMessageInput describes a banked turn
type GetBankMessageInput struct {
	PlayerName      string
	Banked          int
	Total           int
	FinalRoundArmed bool
}

// GetBankMessageOutput contains the bank commentary
type GetBankMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput describes the end of a game
type GetGameOverMessageInput struct {
	WinnerNames []string
	Score       int
}

// GetGameOverMessageOutput contains the game over announcement
type GetGameOverMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType     ErrorType
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
