package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/greed/internal/services/messaging/mocks"
)

func TestErrorTypeFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status models.GameStatus
		want   messaging.ErrorType
	}{
		{name: "game not found", err: game.ErrGameNotFound, want: messaging.ErrorTypeGameNotFound},
		{name: "game exists", err: game.ErrGameAlreadyExists, want: messaging.ErrorTypeGameExists},
		{name: "full", err: game.ErrGameFull, want: messaging.ErrorTypeGameFull},
		{name: "not your turn", err: game.ErrNotYourTurn, want: messaging.ErrorTypeNotYourTurn},
		{name: "not in game", err: game.ErrPlayerNotInGame, want: messaging.ErrorTypeNotInGame},
		{name: "not creator", err: game.ErrNotCreator, want: messaging.ErrorTypeNotCreator},
		{name: "not enough players", err: greed.ErrNotEnoughPlayers, want: messaging.ErrorTypeNotEnough},
		{name: "not rolled", err: greed.ErrNotRolled, want: messaging.ErrorTypeNotRolled},
		{name: "not in", err: greed.ErrNotIn, want: messaging.ErrorTypeNotIn},
		{name: "game ended", err: greed.ErrGameEnded, want: messaging.ErrorTypeGameFinished},
		{name: "waiting game", err: game.ErrInvalidGameState, status: models.GameStatusWaiting, want: messaging.ErrorTypeNotStarted},
		{name: "running game", err: game.ErrInvalidGameState, status: models.GameStatusFinalRound, want: messaging.ErrorTypeGameStarted},
		{name: "finished game", err: game.ErrInvalidGameState, status: models.GameStatusAbandoned, want: messaging.ErrorTypeGameFinished},
		{name: "unknown status", err: game.ErrInvalidGameState, want: messaging.ErrorTypeUnknown},
		{name: "wrapped", err: fmt.Errorf("join: %w", game.ErrGameFull), want: messaging.ErrorTypeGameFull},
		{name: "infrastructure", err: errors.New("redis down"), want: messaging.ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorTypeFor(tt.err, tt.status))
		})
	}
}

func TestErrorText(t *testing.T) {
	ctrl := gomock.NewController(t)
	msgs := messagingMocks.NewMockService(ctrl)
	ctx := context.Background()

	msgs.EXPECT().
		GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeNotYourTurn}).
		Return(&messaging.GetErrorMessageOutput{Message: "Patience!"}, nil)
	assert.Equal(t, "Patience!", errorText(ctx, msgs, game.ErrNotYourTurn, models.GameStatusActive))

	msgs.EXPECT().
		GetErrorMessage(ctx, gomock.Any()).
		Return(nil, errors.New("no messages"))
	assert.Equal(t, "it is not your turn", errorText(ctx, msgs, game.ErrNotYourTurn, models.GameStatusActive))

	assert.Equal(t, "game not found", errorText(ctx, nil, game.ErrGameNotFound, ""))
}
