package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetJoinGameMessage_NewPlayer() {
	out, err := s.svc.GetJoinGameMessage(s.ctx, &GetJoinGameMessageInput{
		PlayerName: "Sterling",
		GameStatus: models.GameStatusWaiting,
	})

	s.Require().NoError(err)
	s.Contains(out.Message, "Sterling")
	s.Equal(ToneFunny, out.Tone)
}

func (s *MessagingServiceTestSuite) TestGetJoinGameMessage_PreferredTone() {
	out, err := s.svc.GetJoinGameMessage(s.ctx, &GetJoinGameMessageInput{
		PlayerName:    "Sterling",
		GameStatus:    models.GameStatusWaiting,
		PreferredTone: ToneNeutral,
	})

	s.Require().NoError(err)
	s.Equal("Sterling joined the game.", out.Message)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *MessagingServiceTestSuite) TestGetJoinGameMessage_UnknownToneFallsBack() {
	out, err := s.svc.GetJoinGameMessage(s.ctx, &GetJoinGameMessageInput{
		PlayerName:    "Sterling",
		AlreadyJoined: true,
		GameStatus:    models.GameStatusActive,
		PreferredTone: ToneCelebration,
	})

	s.Require().NoError(err)
	s.Equal("Still here, still greedy. The game is already under way.", out.Message)
	s.Equal(ToneFunny, out.Tone)
}

func (s *MessagingServiceTestSuite) TestGetRollResultMessage() {
	tests := []struct {
		name     string
		input    *GetRollResultMessageInput
		wantTone MessageTone
		contains string
	}{
		{
			name:     "bust",
			input:    &GetRollResultMessageInput{PlayerName: "Lana", Busted: true},
			wantTone: ToneSarcastic,
			contains: "Lana",
		},
		{
			name:     "hot dice",
			input:    &GetRollResultMessageInput{PlayerName: "Lana", Score: 350, TurnScore: 600, DiceAllowed: 5, HotDice: true},
			wantTone: ToneCelebration,
			contains: "Lana",
		},
		{
			name:     "big roll",
			input:    &GetRollResultMessageInput{PlayerName: "Lana", Score: 1100, TurnScore: 1100, DiceAllowed: 1},
			wantTone: ToneCelebration,
			contains: "1 die",
		},
		{
			name:     "scoring roll",
			input:    &GetRollResultMessageInput{PlayerName: "Lana", Score: 250, TurnScore: 250, DiceAllowed: 2},
			wantTone: ToneNeutral,
			contains: "2 dice",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.svc.GetRollResultMessage(s.ctx, tt.input)

			s.Require().NoError(err)
			s.NotEmpty(out.Title)
			s.Contains(out.Message, tt.contains)
			s.Equal(tt.wantTone, out.Tone)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetBankMessage_FinalRound() {
	out, err := s.svc.GetBankMessage(s.ctx, &GetBankMessageInput{
		PlayerName:      "Cyril",
		Banked:          600,
		Total:           3100,
		FinalRoundArmed: true,
	})

	s.Require().NoError(err)
	s.Equal("Final Round!", out.Title)
	s.Contains(out.Message, "3100")
}

func (s *MessagingServiceTestSuite) TestGetBankMessage() {
	out, err := s.svc.GetBankMessage(s.ctx, &GetBankMessageInput{
		PlayerName: "Cyril",
		Banked:     450,
		Total:      1200,
	})

	s.Require().NoError(err)
	s.Contains(out.Message, "Cyril")
	s.Contains(out.Message, "1200")
}

func (s *MessagingServiceTestSuite) TestGetGameOverMessage() {
	out, err := s.svc.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		WinnerNames: []string{"Pam"},
		Score:       3650,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Pam")

	out, err = s.svc.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		WinnerNames: []string{"Pam", "Ray"},
		Score:       3200,
	})
	s.Require().NoError(err)
	s.Equal("It's a Tie!", out.Title)
	s.Equal("Pam and Ray share the win with 3200 points each!", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	for _, errorType := range []ErrorType{
		ErrorTypeGameNotFound,
		ErrorTypeGameStarted,
		ErrorTypeNotStarted,
		ErrorTypeGameFinished,
		ErrorTypeGameFull,
		ErrorTypeGameExists,
		ErrorTypeNotYourTurn,
		ErrorTypeNotInGame,
		ErrorTypeNotCreator,
		ErrorTypeNotEnough,
		ErrorTypeNotRolled,
		ErrorTypeNotIn,
		ErrorTypeUnknown,
	} {
		out, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: errorType})

		s.Require().NoError(err, errorType)
		s.NotEmpty(out.Message, errorType)
		s.Equal(ToneFunny, out.Tone)

		neutral, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: errorType, PreferredTone: ToneNeutral})

		s.Require().NoError(err, errorType)
		s.NotEmpty(neutral.Message, errorType)
		s.NotEqual(out.Message, neutral.Message, errorType)
		s.Equal(ToneNeutral, neutral.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_PreferredTone() {
	out, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		ErrorType:     ErrorTypeNotYourTurn,
		PreferredTone: ToneSarcastic,
	})

	s.Require().NoError(err)
	s.Equal("Bold move, rolling on someone else's turn. Denied.", out.Message)
	s.Equal(ToneSarcastic, out.Tone)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.svc.GetRollResultMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.svc.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}
