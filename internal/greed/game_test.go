package greed

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GameTestSuite struct {
	suite.Suite
	game *Game
}

func (s *GameTestSuite) SetupTest() {
	game, err := New([]string{"player1", "player2"}, nil)
	s.Require().NoError(err)
	s.game = game
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

// roll is a helper that fails the test on error
func (s *GameTestSuite) roll(faces ...int) int {
	s.T().Helper()
	allowed, err := s.game.Roll(faces)
	s.Require().NoError(err)
	return allowed
}

func (s *GameTestSuite) endTurn() {
	s.T().Helper()
	s.Require().NoError(s.game.EndTurn())
}

func (s *GameTestSuite) score(id string) int {
	s.T().Helper()
	p, ok := s.game.Player(id)
	s.Require().True(ok)
	return p.Score
}

// armFinalRound banks 3600 for the current player
func (s *GameTestSuite) armFinalRound() {
	s.T().Helper()
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.endTurn()
}

func (s *GameTestSuite) TestNew_NotEnoughPlayers() {
	game, err := New([]string{"player"}, nil)

	s.Nil(game)
	s.Equal(ErrNotEnoughPlayers, err)
	s.Equal("Not enough players", err.Error())

	var startErr GameStartError
	s.ErrorAs(err, &startErr)
}

func (s *GameTestSuite) TestNew_NoPlayers() {
	game, err := New(nil, nil)

	s.Nil(game)
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *GameTestSuite) TestNew_PlayersMustHaveUniqueNames() {
	game, err := New([]string{"player", "player"}, nil)

	s.Nil(game)
	s.Equal(ErrDuplicatePlayers, err)
	s.Equal("Players must have unique names", err.Error())
}

func (s *GameTestSuite) TestNew_InitialState() {
	s.Equal(0, s.game.TurnScore())
	s.Equal(5, s.game.DiceAllowed())
	s.False(s.game.HasRolledThisTurn())
	s.Equal(StatusActive, s.game.Status())
	s.Equal("player1", s.game.CurrentPlayer().ID)
	s.Equal([]Player{{ID: "player1"}, {ID: "player2"}}, s.game.Players())
}

func (s *GameTestSuite) TestRoll_MustRollFiveDice() {
	_, err := s.game.Roll([]int{1, 2, 3, 4})

	s.Equal("Must roll with 5 die", err.Error())
	var playErr GamePlayError
	s.ErrorAs(err, &playErr)
}

func (s *GameTestSuite) TestRoll_RejectsInvalidFaces() {
	_, err := s.game.Roll([]int{0, 1, 2, 3, 4})
	s.Equal(ErrInvalidFace, err)

	_, err = s.game.Roll([]int{1, 2, 3, 4, 7})
	s.Equal(ErrInvalidFace, err)

	s.Equal(0, s.game.TurnScore())
	s.Equal(5, s.game.DiceAllowed())
}

func (s *GameTestSuite) TestRoll_PlayerCanCheckTurnScore() {
	s.roll(5, 1, 3, 4, 1)

	s.Equal(250, s.game.TurnScore())
}

func (s *GameTestSuite) TestRoll_ReturnsDiceToReroll() {
	s.Equal(2, s.roll(5, 1, 3, 4, 1))
}

func (s *GameTestSuite) TestRoll_RerollsAllDiceWhenAllScored() {
	s.Equal(5, s.roll(5, 2, 1, 2, 2))
}

func (s *GameTestSuite) TestRoll_CanOnlyRerollNonScoringDice() {
	s.roll(5, 1, 3, 4, 1)

	_, err := s.game.Roll([]int{5, 1, 3, 4, 1})

	s.Equal("Must roll with 2 die", err.Error())
	s.Equal(250, s.game.TurnScore())
	s.Equal(2, s.game.DiceAllowed())
}

func (s *GameTestSuite) TestRoll_SubsequentRollsAddToTurnScore() {
	s.roll(5, 1, 3, 4, 1)
	s.roll(1, 5)

	s.Equal(400, s.game.TurnScore())
}

func (s *GameTestSuite) TestEndTurn_PlayerAccumulatesTurnScore() {
	s.roll(5, 1, 3, 4, 1)
	s.roll(1, 5)
	s.endTurn()

	s.Equal(400, s.score("player1"))
	s.Equal("player2", s.game.CurrentPlayer().ID)
	s.Equal(0, s.game.TurnScore())
	s.Equal(5, s.game.DiceAllowed())
}

func (s *GameTestSuite) TestRoll_TurnEndsWhenNoDiceScore() {
	s.roll(5, 1, 3, 4, 1)

	s.Equal(0, s.roll(3, 4))
	s.Equal("player2", s.game.CurrentPlayer().ID)
}

func (s *GameTestSuite) TestRoll_PlayerLosesTurnScoreIfFirstRollScoresZero() {
	s.roll(2, 3, 3, 4, 6)
	s.Equal(0, s.score("player1"))

	s.roll(5, 1, 1, 4, 1)
	s.endTurn()

	s.Equal(1050, s.score("player2"))
}

func (s *GameTestSuite) TestRoll_PlayerLosesTurnScoreIfSubsequentRollScoresZero() {
	s.roll(5, 1, 3, 4, 1)
	s.roll(3, 4)

	s.Equal(0, s.score("player1"))
	s.Equal(0, s.game.TurnScore())
}

func (s *GameTestSuite) TestEndTurn_CannotEndTurnUntilYouRoll() {
	err := s.game.EndTurn()

	s.Equal("Cannot end turn until you roll", err.Error())
	var playErr GamePlayError
	s.ErrorAs(err, &playErr)
}

func (s *GameTestSuite) TestEndTurn_SubsequentPlayersCannotEndTurnUntilTheyRoll() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()

	s.Equal(ErrNotRolled, s.game.EndTurn())
}

func (s *GameTestSuite) TestEndTurn_BustDoesNotCountAsRolled() {
	s.roll(2, 3, 3, 4, 6)

	s.Equal(ErrNotRolled, s.game.EndTurn())
}

func (s *GameTestSuite) TestEndTurn_NextPlayerGoesOnceFirstPlayersTurnEnds() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()
	s.roll(1, 1, 1, 3, 1)
	s.Equal(1100, s.game.TurnScore())
	s.endTurn()

	s.Equal(1100, s.score("player2"))
}

func (s *GameTestSuite) TestEndTurn_FirstPlayerGoesAgainAfterOtherPlayers() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()
	s.roll(1, 1, 1, 3, 1)
	s.endTurn()
	s.roll(2, 4, 4, 5, 4)
	s.endTurn()

	s.Equal(1500, s.score("player1"))
}

func (s *GameTestSuite) TestEndTurn_CannotEndTurnUntilPlayerIsIn() {
	s.roll(5, 1, 3, 4, 1)

	err := s.game.EndTurn()

	s.Equal("Cannot end turn until player is in", err.Error())
	s.Equal(250, s.game.TurnScore())
	s.Equal("player1", s.game.CurrentPlayer().ID)
	s.Equal(0, s.score("player1"))

	p, _ := s.game.Player("player1")
	s.False(p.IsIn)
}

func (s *GameTestSuite) TestEndTurn_PlayerCanEndTurnWithLessThan300OnceIn() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()
	s.roll(1, 1, 1, 3, 1)
	s.endTurn()
	s.roll(5, 1, 3, 4, 1)
	s.endTurn()

	s.Equal(1300, s.score("player1"))
}

func (s *GameTestSuite) TestEndTurn_DetailedResult() {
	s.roll(5, 1, 1, 4, 1)

	result, err := s.game.EndTurnDetailed()

	s.Require().NoError(err)
	s.Equal(&TurnResult{
		PlayerID:     "player1",
		Banked:       1050,
		Total:        1050,
		NextPlayerID: "player2",
		Status:       StatusActive,
	}, result)
}

func (s *GameTestSuite) TestRollDetailed_ScoringRoll() {
	result, err := s.game.RollDetailed([]int{5, 1, 3, 4, 1})

	s.Require().NoError(err)
	s.Equal(&RollResult{
		PlayerID:     "player1",
		Faces:        []int{5, 1, 3, 4, 1},
		Score:        250,
		TurnScore:    250,
		DiceAllowed:  2,
		NextPlayerID: "player1",
		Status:       StatusActive,
	}, result)
}

func (s *GameTestSuite) TestRollDetailed_HotDice() {
	result, err := s.game.RollDetailed([]int{5, 2, 1, 2, 2})

	s.Require().NoError(err)
	s.True(result.HotDice)
	s.False(result.Busted)
	s.Equal(5, result.DiceAllowed)
}

func (s *GameTestSuite) TestRollDetailed_Bust() {
	s.roll(5, 1, 3, 4, 1)

	result, err := s.game.RollDetailed([]int{3, 4})

	s.Require().NoError(err)
	s.True(result.Busted)
	s.Equal(0, result.Score)
	s.Equal(0, result.TurnScore)
	s.Equal(0, result.DiceAllowed)
	s.Equal("player1", result.PlayerID)
	s.Equal("player2", result.NextPlayerID)
}

func (s *GameTestSuite) TestGameEndsAfterFinalRound() {
	s.armFinalRound()
	s.Equal(3600, s.score("player1"))
	s.Equal(StatusFinalRound, s.game.Status())

	s.roll(2, 3, 4, 6, 2)
	s.Equal(StatusFinalRound, s.game.Status())
	s.roll(2, 3, 4, 6, 2)
	s.Equal(StatusEnded, s.game.Status())

	_, err := s.game.Roll([]int{2, 3, 4, 6, 2})

	s.Equal("Game has ended", err.Error())
	var endErr GameEndError
	s.ErrorAs(err, &endErr)
}

func (s *GameTestSuite) TestPlayersCanRollMultipleTimesInFinalRound() {
	s.armFinalRound()

	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 2, 3, 4, 6)
	s.endTurn()
	s.Equal(3700, s.score("player2"))

	s.roll(2, 3, 4, 5, 6)
	s.roll(2, 3, 4, 6)

	s.Equal(3600, s.score("player1"))
	s.Equal(StatusEnded, s.game.Status())
	s.Equal([]Player{{ID: "player2", Score: 3700, IsIn: true, HasPlayedFinalTurn: true}}, s.game.Winners())
}

func (s *GameTestSuite) TestGameEnd_CheckedBeforeDiceCount() {
	s.armFinalRound()
	s.roll(2, 3, 4, 6, 2)
	s.roll(2, 3, 4, 6, 2)

	_, err := s.game.Roll([]int{1})

	s.Equal(ErrGameEnded, err)
}

func (s *GameTestSuite) TestGameEnd_EndTurnHasNothingToBank() {
	s.armFinalRound()
	s.roll(2, 3, 4, 6, 2)
	s.roll(2, 3, 4, 6, 2)

	s.Equal(ErrNotRolled, s.game.EndTurn())
}

func (s *GameTestSuite) TestFinalRound_ArmedOnlyOnce() {
	s.armFinalRound()

	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	result, err := s.game.EndTurnDetailed()

	s.Require().NoError(err)
	s.False(result.FinalRoundArmed)
	s.Equal(StatusFinalRound, result.Status)
}

func (s *GameTestSuite) TestFinalRound_ArmingResultReported() {
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)
	s.roll(1, 1, 1, 1, 1)

	result, err := s.game.EndTurnDetailed()

	s.Require().NoError(err)
	s.True(result.FinalRoundArmed)
	s.Equal(StatusFinalRound, result.Status)

	p, _ := s.game.Player("player1")
	s.False(p.HasPlayedFinalTurn)
}

func (s *GameTestSuite) TestFinalRound_ArmedBySecondPlayer() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()
	s.armFinalRound()
	s.Equal("player1", s.game.CurrentPlayer().ID)

	s.roll(2, 3, 4, 6, 2)
	s.Equal(StatusFinalRound, s.game.Status())
	s.roll(2, 3, 4, 6, 2)
	s.Equal(StatusEnded, s.game.Status())

	_, err := s.game.Roll([]int{2, 3, 4, 6, 2})
	s.Equal(ErrGameEnded, err)
	s.Equal("player2", s.game.Winners()[0].ID)
}

func (s *GameTestSuite) TestFinalRound_EveryPlayerGetsOneMoreTurn() {
	game, err := New([]string{"a", "b", "c"}, nil)
	s.Require().NoError(err)
	s.game = game

	s.armFinalRound()

	for _, id := range []string{"b", "c", "a"} {
		s.Equal(StatusFinalRound, s.game.Status())
		s.Equal(id, s.game.CurrentPlayer().ID)
		s.roll(2, 3, 4, 6, 2)
	}

	s.Equal(StatusEnded, s.game.Status())
	for _, p := range s.game.Players() {
		s.True(p.HasPlayedFinalTurn, p.ID)
	}
}

func (s *GameTestSuite) TestWinners_NilBeforeEnd() {
	s.Nil(s.game.Winners())
}

func (s *GameTestSuite) TestWinners_TiesShareTheWin() {
	s.armFinalRound()
	s.armFinalRound()
	s.roll(2, 3, 4, 6, 2)

	s.Equal(StatusEnded, s.game.Status())
	s.Len(s.game.Winners(), 2)
}

func (s *GameTestSuite) TestPlayers_ReturnsCopy() {
	players := s.game.Players()
	players[0].Score = 9999

	s.Equal(0, s.score("player1"))
}

func (s *GameTestSuite) TestPlayer_Unknown() {
	_, ok := s.game.Player("nobody")

	s.False(ok)
}

func (s *GameTestSuite) TestCustomRules() {
	game, err := New([]string{"a", "b"}, &Rules{EntryScore: 100, WinningScore: 500})
	s.Require().NoError(err)
	s.game = game

	s.roll(5, 1, 3, 4, 1)
	result, err := s.game.EndTurnDetailed()
	s.Require().NoError(err)
	s.Equal(250, result.Total)

	s.roll(5, 1, 1, 4, 1)
	result, err = s.game.EndTurnDetailed()
	s.Require().NoError(err)
	s.True(result.FinalRoundArmed)
	s.Equal(100, s.game.Rules().EntryScore)
}

func (s *GameTestSuite) TestStateRestore_RoundTrip() {
	s.roll(5, 1, 1, 4, 1)
	s.endTurn()
	s.roll(5, 1, 3, 4, 1)

	restored, err := Restore(s.game.State(), nil)
	s.Require().NoError(err)
	s.Equal(s.game.State(), restored.State())

	allowed, err := restored.Roll([]int{1, 5})
	s.Require().NoError(err)
	s.Equal(5, allowed)
	s.Equal(400, restored.TurnScore())
	s.Equal(250, s.game.TurnScore())
}

func (s *GameTestSuite) TestRestore_RejectsInconsistentState() {
	valid := func() *State {
		return &State{
			Players:     []Player{{ID: "a"}, {ID: "b"}},
			DiceAllowed: 5,
			Status:      StatusActive,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*State)
		wantErr error
	}{
		{name: "one player", mutate: func(st *State) { st.Players = st.Players[:1] }, wantErr: ErrNotEnoughPlayers},
		{name: "duplicate ids", mutate: func(st *State) { st.Players[1].ID = "a" }, wantErr: ErrDuplicatePlayers},
		{name: "index out of range", mutate: func(st *State) { st.CurrentPlayerIndex = 2 }, wantErr: ErrInvalidState},
		{name: "too many dice", mutate: func(st *State) { st.DiceAllowed = 6 }, wantErr: ErrInvalidState},
		{name: "no dice", mutate: func(st *State) { st.DiceAllowed = 0 }, wantErr: ErrInvalidState},
		{name: "negative turn score", mutate: func(st *State) { st.TurnScore = -1 }, wantErr: ErrInvalidState},
		{name: "negative score", mutate: func(st *State) { st.Players[0].Score = -50 }, wantErr: ErrInvalidState},
		{name: "unknown status", mutate: func(st *State) { st.Status = "paused" }, wantErr: ErrInvalidState},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			state := valid()
			tt.mutate(state)

			game, err := Restore(state, nil)

			s.Nil(game)
			s.Equal(tt.wantErr, err)
		})
	}

	_, err := Restore(nil, nil)
	s.Equal(ErrInvalidState, err)
}

func TestRerollCount(t *testing.T) {
	tests := []struct {
		name  string
		faces []int
		want  int
	}{
		{name: "two singletons", faces: []int{5, 1, 3, 4, 1}, want: 2},
		{name: "triple and scoring singles", faces: []int{5, 2, 1, 2, 2}, want: 5},
		{name: "only ones and fives", faces: []int{1, 5}, want: 5},
		{name: "four of a kind leaves one", faces: []int{2, 2, 2, 2, 3}, want: 2},
		{name: "five of a kind leaves two", faces: []int{6, 6, 6, 6, 6}, want: 2},
		{name: "pairs", faces: []int{2, 2, 3, 3, 1}, want: 4},
		{name: "nothing scores", faces: []int{2, 3, 4, 6}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RerollCount(tt.faces); got != tt.want {
				t.Errorf("RerollCount(%v) = %d, want %d", tt.faces, got, tt.want)
			}
		})
	}
}
