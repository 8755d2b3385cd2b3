package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

// errorTypeFor maps a service error to the message players see. status is
// the game's status when known, used to explain an invalid game state.
func errorTypeFor(err error, status models.GameStatus) messaging.ErrorType {
	var endErr greed.GameEndError
	if errors.As(err, &endErr) {
		return messaging.ErrorTypeGameFinished
	}

	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return messaging.ErrorTypeGameNotFound
	case errors.Is(err, game.ErrGameAlreadyExists):
		return messaging.ErrorTypeGameExists
	case errors.Is(err, game.ErrGameFull):
		return messaging.ErrorTypeGameFull
	case errors.Is(err, game.ErrNotYourTurn):
		return messaging.ErrorTypeNotYourTurn
	case errors.Is(err, game.ErrPlayerNotInGame):
		return messaging.ErrorTypeNotInGame
	case errors.Is(err, game.ErrNotCreator):
		return messaging.ErrorTypeNotCreator
	case errors.Is(err, greed.ErrNotEnoughPlayers):
		return messaging.ErrorTypeNotEnough
	case errors.Is(err, greed.ErrNotRolled):
		return messaging.ErrorTypeNotRolled
	case errors.Is(err, greed.ErrNotIn):
		return messaging.ErrorTypeNotIn
	case errors.Is(err, game.ErrInvalidGameState):
		switch {
		case status.IsWaiting():
			return messaging.ErrorTypeNotStarted
		case status.IsFinished():
			return messaging.ErrorTypeGameFinished
		case status.IsInProgress():
			return messaging.ErrorTypeGameStarted
		}
	}
	return messaging.ErrorTypeUnknown
}

// errorText picks the player-facing text for err, falling back to the raw
// error when no message can be produced
func errorText(ctx context.Context, msgs messaging.Service, err error, status models.GameStatus) string {
	if msgs == nil {
		return err.Error()
	}

	out, msgErr := msgs.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorTypeFor(err, status),
	})
	if msgErr != nil {
		return err.Error()
	}
	return out.Message
}
