package referee

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/greed/internal/greed"
)

// Decision is what a player wants to do next
type Decision int

const (
	// DecisionRoll rolls the dice currently allowed
	DecisionRoll Decision = iota

	// DecisionBank ends the turn and banks the turn score
	DecisionBank
)

func (d Decision) String() string {
	switch d {
	case DecisionRoll:
		return "roll"
	case DecisionBank:
		return "bank"
	}
	return fmt.Sprintf("decision(%d)", int(d))
}

// View is what a strategy sees when it is asked to decide
type View struct {
	PlayerID    string
	Score       int
	IsIn        bool
	TurnScore   int
	DiceAllowed int
	HasRolled   bool
	Status      greed.Status
	Rules       greed.Rules

	// LeaderScore is the best banked score among the other players
	LeaderScore int

	// LastRoll is the previous roll of this turn, nil before the first one
	LastRoll *greed.RollResult
}

// Strategy decides whether the current player rolls or banks
type Strategy interface {
	Decide(view *View) (Decision, error)
}

// StrategyFunc adapts a plain function to Strategy
type StrategyFunc func(view *View) (Decision, error)

// Decide calls f
func (f StrategyFunc) Decide(view *View) (Decision, error) {
	return f(view)
}

// DefaultBankAt is the turn score Threshold banks at when none is set
const DefaultBankAt = 300

// Threshold banks as soon as the turn score reaches BankAt. It never banks
// below the entry score while the player is not in, and in the final round
// it keeps rolling until it has passed the leader.
type Threshold struct {
	BankAt int
}

// NewThreshold creates a Threshold strategy
func NewThreshold(bankAt int) *Threshold {
	return &Threshold{BankAt: bankAt}
}

// Decide implements Strategy
func (t *Threshold) Decide(view *View) (Decision, error) {
	bankAt := t.BankAt
	if bankAt <= 0 {
		bankAt = DefaultBankAt
	}

	switch {
	case !view.HasRolled:
		return DecisionRoll, nil
	case !view.IsIn && view.TurnScore < view.Rules.EntryScore:
		return DecisionRoll, nil
	case view.Status == greed.StatusFinalRound && view.Score+view.TurnScore <= view.LeaderScore:
		return DecisionRoll, nil
	case view.TurnScore >= bankAt:
		return DecisionBank, nil
	}
	return DecisionRoll, nil
}

// Prompt asks a human for each decision. Prompts go to out and answers are
// read a line at a time from in.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt creates a Prompt strategy
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Decide implements Strategy. The first roll of a turn, and every roll
// while the player cannot bank yet, is taken without asking. An empty
// answer rolls.
func (p *Prompt) Decide(view *View) (Decision, error) {
	if !view.HasRolled {
		return DecisionRoll, nil
	}
	if !view.IsIn && view.TurnScore < view.Rules.EntryScore {
		fmt.Fprintf(p.out, "%s: turn %d, need %d to get in. Rolling %d dice.\n",
			view.PlayerID, view.TurnScore, view.Rules.EntryScore, view.DiceAllowed)
		return DecisionRoll, nil
	}

	for {
		fmt.Fprintf(p.out, "%s: turn %d, banked %d, %d dice left. [r]oll or [b]ank? ",
			view.PlayerID, view.TurnScore, view.Score, view.DiceAllowed)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return DecisionRoll, err
			}
			return DecisionRoll, io.ErrUnexpectedEOF
		}

		switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
		case "", "r", "roll":
			return DecisionRoll, nil
		case "b", "bank":
			return DecisionBank, nil
		default:
			fmt.Fprintln(p.out, "please answer r or b")
		}
	}
}
