package referee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/greed/internal/dice/mocks"
	"github.com/KirkDiggler/greed/internal/greed"
)

var bust = []int{2, 3, 4, 6, 2}

type RefereeTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *diceMocks.MockRoller
	events     []Event
	referee    *Referee
}

func (s *RefereeTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.ctrl)
	s.events = nil

	r, err := New(&Config{
		Roller:  s.mockRoller,
		Rules:   &greed.Rules{EntryScore: 300, WinningScore: 1000},
		Default: NewThreshold(300),
		Observer: func(e Event) {
			s.events = append(s.events, e)
		},
	})
	s.Require().NoError(err)
	s.referee = r
}

func (s *RefereeTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRefereeTestSuite(t *testing.T) {
	suite.Run(t, new(RefereeTestSuite))
}

func (s *RefereeTestSuite) kinds() []EventKind {
	kinds := make([]EventKind, 0, len(s.events))
	for _, e := range s.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (s *RefereeTestSuite) TestNew_Validation() {
	r, err := New(nil)
	s.Nil(r)
	s.Equal(ErrNilConfig, err)

	r, err = New(&Config{})
	s.Nil(r)
	s.Equal(ErrNilRoller, err)
}

func (s *RefereeTestSuite) TestPlay_ToCompletion() {
	gomock.InOrder(
		s.mockRoller.EXPECT().RollDice(5).Return([]int{1, 1, 1, 2, 3}),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
	)

	result, err := s.referee.Play(context.Background(), []string{"p1", "p2"})

	s.Require().NoError(err)
	s.Equal(3, result.Rolls)
	s.Require().Len(result.Winners, 1)
	s.Equal("p1", result.Winners[0].ID)
	s.Equal(1000, result.Winners[0].Score)
	s.Equal([]EventKind{EventRoll, EventBank, EventRoll, EventRoll, EventGameOver}, s.kinds())

	bank := s.events[1]
	s.Equal("p1", bank.PlayerID)
	s.True(bank.Turn.FinalRoundArmed)
	s.True(s.events[2].Roll.Busted)
}

func (s *RefereeTestSuite) TestPlay_PerPlayerStrategy() {
	r, err := New(&Config{
		Roller: s.mockRoller,
		Rules:  &greed.Rules{EntryScore: 300, WinningScore: 1000},
		Strategies: map[string]Strategy{
			"p1": NewThreshold(300),
			"p2": NewThreshold(300),
		},
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
		s.mockRoller.EXPECT().RollDice(5).Return([]int{1, 1, 1, 1, 5}),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
	)

	result, err := r.Play(context.Background(), []string{"p1", "p2"})

	s.Require().NoError(err)
	s.Equal("p2", result.Winners[0].ID)
	s.Equal(1150, result.Winners[0].Score)
}

func (s *RefereeTestSuite) TestPlay_MissingStrategy() {
	r, err := New(&Config{
		Roller:     s.mockRoller,
		Strategies: map[string]Strategy{"p1": NewThreshold(300)},
	})
	s.Require().NoError(err)

	result, err := r.Play(context.Background(), []string{"p1", "p2"})

	s.Nil(result)
	s.Equal(ErrNoStrategy, err)
}

func (s *RefereeTestSuite) TestPlay_InvalidPlayers() {
	result, err := s.referee.Play(context.Background(), []string{"p1"})

	s.Nil(result)
	s.Equal(greed.ErrNotEnoughPlayers, err)
}

func (s *RefereeTestSuite) TestPlay_StuckStrategy() {
	r, err := New(&Config{
		Roller: s.mockRoller,
		Default: StrategyFunc(func(*View) (Decision, error) {
			return DecisionBank, nil
		}),
		Observer: func(e Event) {
			s.events = append(s.events, e)
		},
	})
	s.Require().NoError(err)

	result, err := r.Play(context.Background(), []string{"p1", "p2"})

	s.Nil(result)
	s.Equal(ErrStrategyStuck, err)
	s.Equal([]EventKind{EventRejected, EventRejected, EventRejected}, s.kinds())
	s.Equal(greed.ErrNotRolled, s.events[0].Err)
}

func (s *RefereeTestSuite) TestPlay_RollLimit() {
	r, err := New(&Config{
		Roller:   s.mockRoller,
		Default:  NewThreshold(300),
		MaxRolls: 5,
	})
	s.Require().NoError(err)

	s.mockRoller.EXPECT().RollDice(5).Return(bust).Times(5)

	result, err := r.Play(context.Background(), []string{"p1", "p2"})

	s.Nil(result)
	s.Equal(ErrTooManyRolls, err)
}

func (s *RefereeTestSuite) TestPlay_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.referee.Play(ctx, []string{"p1", "p2"})

	s.Nil(result)
	s.ErrorIs(err, context.Canceled)
}

func (s *RefereeTestSuite) TestPlay_ViewTracksTurn() {
	var views []View
	r, err := New(&Config{
		Roller: s.mockRoller,
		Rules:  &greed.Rules{EntryScore: 300, WinningScore: 1000},
		Default: StrategyFunc(func(v *View) (Decision, error) {
			views = append(views, *v)
			return NewThreshold(300).Decide(v)
		}),
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRoller.EXPECT().RollDice(5).Return([]int{5, 1, 3, 4, 2}),
		s.mockRoller.EXPECT().RollDice(3).Return([]int{1, 3, 4}),
		s.mockRoller.EXPECT().RollDice(2).Return([]int{1, 1}),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
		s.mockRoller.EXPECT().RollDice(5).Return([]int{1, 1, 1, 1, 1}),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
		s.mockRoller.EXPECT().RollDice(5).Return(bust),
	)

	_, err = r.Play(context.Background(), []string{"p1", "p2"})
	s.Require().NoError(err)

	s.False(views[0].HasRolled)
	s.Nil(views[0].LastRoll)

	s.Equal(150, views[1].TurnScore)
	s.Equal(3, views[1].DiceAllowed)
	s.Equal([]int{5, 1, 3, 4, 2}, views[1].LastRoll.Faces)

	s.Equal(250, views[2].TurnScore)
	s.Equal(2, views[2].DiceAllowed)

	s.Equal(450, views[3].TurnScore)
	s.Equal(5, views[3].DiceAllowed)
}
