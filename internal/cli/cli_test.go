package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	out *bytes.Buffer
	err *bytes.Buffer
}

func (s *CLITestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.err = &bytes.Buffer{}
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) run(input string, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)
	return cmd.Execute()
}

func (s *CLITestSuite) TestScore() {
	s.Require().NoError(s.run("", "score", "5", "1", "3", "4", "1"))

	s.Equal("[5 1 3 4 1] scores 250\n  2 x 1         200\n  1 x 5          50\nroll 2 next\n", s.out.String())
}

func (s *CLITestSuite) TestScore_Triple() {
	s.Require().NoError(s.run("", "score", "2", "2", "2", "1", "5"))

	s.Contains(s.out.String(), "scores 350")
	s.Contains(s.out.String(), "three 2s")
	s.Contains(s.out.String(), "roll 5 next")
}

func (s *CLITestSuite) TestScore_Bust() {
	s.Require().NoError(s.run("", "score", "2", "3", "4", "6", "2"))

	s.Equal("[2 3 4 6 2] scores nothing: bust\n", s.out.String())
}

func (s *CLITestSuite) TestScore_JSON() {
	s.Require().NoError(s.run("", "score", "1", "1", "1", "-o", "json"))

	var result scoreResult
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &result))
	s.Equal(1000, result.Score)
	s.Equal(5, result.Reroll)
	s.False(result.Bust)
	s.Len(result.Combos, 1)
}

func (s *CLITestSuite) TestScore_InvalidFace() {
	err := s.run("", "score", "1", "7")

	s.ErrorContains(err, `invalid die "7"`)
}

func (s *CLITestSuite) TestScore_TooManyDice() {
	s.Error(s.run("", "score", "1", "2", "3", "4", "5", "6"))
}

func (s *CLITestSuite) TestInvalidOutput() {
	err := s.run("", "score", "1", "-o", "yaml")

	s.ErrorContains(err, "output must be text or json")
}

func (s *CLITestSuite) TestInvalidScores() {
	err := s.run("", "score", "1", "--entry-score", "500", "--winning-score", "400")

	s.ErrorContains(err, "entry score")
}

func (s *CLITestSuite) TestSimulate() {
	s.Require().NoError(s.run("", "simulate", "--players", "alice,bob", "--seed", "7", "--winning-score", "1000"))

	out := s.out.String()
	s.Contains(out, "alice rolled")
	s.Contains(out, "final round!")
	s.Contains(out, "game over")
	s.Contains(out, "final standings after")
	s.Contains(out, "* ")
}

func (s *CLITestSuite) TestSimulate_JSON() {
	s.Require().NoError(s.run("", "simulate", "-p", "alice,bob,carol", "--seed", "3", "-o", "json"))

	var result gameResult
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &result))
	s.Len(result.Players, 3)
	s.NotEmpty(result.Winners)
	s.Positive(result.Rolls)
}

func (s *CLITestSuite) TestSimulate_ManyGames() {
	s.Require().NoError(s.run("", "simulate", "-p", "alice,bob", "--seed", "11", "--games", "25", "--winning-score", "1000"))

	out := s.out.String()
	s.Contains(out, "wins over 25 games")
	s.Contains(out, "alice")
	s.Contains(out, "bob")
	s.NotContains(out, "rolled")
}

func (s *CLITestSuite) TestSimulate_NeedsPlayers() {
	err := s.run("", "simulate", "--players", "alice")

	s.ErrorContains(err, "need at least two players")
}

func (s *CLITestSuite) TestSimulate_DuplicatePlayers() {
	err := s.run("", "simulate", "--players", "alice,alice", "--seed", "1")

	s.ErrorContains(err, "unique")
}

func (s *CLITestSuite) TestPlay() {
	input := strings.Repeat("b\n", 5000)

	s.Require().NoError(s.run(input, "play", "-p", "alice,bob", "--seed", "5", "--winning-score", "1000"))

	out := s.out.String()
	s.Contains(out, "[r]oll or [b]ank?")
	s.Contains(out, "banked")
	s.Contains(out, "final standings after")
}

func (s *CLITestSuite) TestPlay_InputRunsOut() {
	err := s.run("", "play", "-p", "alice,bob", "--seed", "5")

	s.Error(err)
}
