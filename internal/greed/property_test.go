package greed

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// TestGameInvariantsProperty drives games with random calls and checks the
// turn invariants after every step.
func TestGameInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		playerCount := rapid.IntRange(2, 5).Draw(t, "playerCount")
		ids := make([]string, playerCount)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}

		game, err := New(ids, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		steps := rapid.IntRange(1, 300).Draw(t, "steps")
		for step := 0; step < steps; step++ {
			before := game.State()

			switch rapid.IntRange(0, 3).Draw(t, "action") {
			case 0, 1:
				faces := rapid.SliceOfN(rapid.IntRange(1, 6), game.DiceAllowed(), game.DiceAllowed()).Draw(t, "faces")
				checkRoll(t, game, before, faces)
			case 2:
				checkEndTurn(t, game, before)
			case 3:
				size := rapid.IntRange(0, 6).Draw(t, "wrongSize")
				if size == game.DiceAllowed() {
					continue
				}
				faces := rapid.SliceOfN(rapid.IntRange(1, 6), size, size).Draw(t, "wrongFaces")
				if _, err := game.Roll(faces); err == nil {
					t.Fatalf("roll of %d dice accepted with %d allowed", size, before.DiceAllowed)
				}
				assertUnchanged(t, before, game)
			}

			if game.DiceAllowed() < 1 || game.DiceAllowed() > DefaultDiceCount {
				t.Fatalf("dice allowed out of range: %d", game.DiceAllowed())
			}
		}
	})
}

func checkRoll(t *rapid.T, game *Game, before *State, faces []int) {
	result, err := game.RollDetailed(faces)
	if before.Status == StatusEnded {
		var endErr GameEndError
		if !errors.As(err, &endErr) {
			t.Fatalf("roll after game end returned %v", err)
		}
		assertUnchanged(t, before, game)
		return
	}
	if err != nil {
		t.Fatalf("valid roll %v failed: %v", faces, err)
	}

	for i, p := range game.Players() {
		if p.Score != before.Players[i].Score {
			t.Fatalf("roll changed banked score of %s", p.ID)
		}
	}

	if result.Busted {
		if game.TurnScore() != 0 || game.DiceAllowed() != DefaultDiceCount {
			t.Fatalf("bust did not reset the turn")
		}
		if game.CurrentPlayerIndex() != (before.CurrentPlayerIndex+1)%len(before.Players) {
			t.Fatalf("bust did not pass the turn")
		}
		return
	}

	if game.TurnScore() <= before.TurnScore {
		t.Fatalf("turn score did not grow: %d -> %d", before.TurnScore, game.TurnScore())
	}
	if game.TurnScore() != before.TurnScore+result.Score {
		t.Fatalf("turn score %d != %d + %d", game.TurnScore(), before.TurnScore, result.Score)
	}
	if game.DiceAllowed() != RerollCount(faces) {
		t.Fatalf("dice allowed %d, want %d", game.DiceAllowed(), RerollCount(faces))
	}
}

func checkEndTurn(t *rapid.T, game *Game, before *State) {
	err := game.EndTurn()
	current := before.Players[before.CurrentPlayerIndex]

	switch {
	case !before.HasRolledThisTurn:
		if err != ErrNotRolled {
			t.Fatalf("end turn without roll returned %v", err)
		}
		assertUnchanged(t, before, game)
		return
	case before.TurnScore < DefaultEntryScore && !current.IsIn:
		if err != ErrNotIn {
			t.Fatalf("end turn before in returned %v", err)
		}
		assertUnchanged(t, before, game)
		return
	case err != nil:
		t.Fatalf("valid end turn failed: %v", err)
	}

	for i, p := range game.Players() {
		want := before.Players[i].Score
		if i == before.CurrentPlayerIndex {
			want += before.TurnScore
		}
		if p.Score != want {
			t.Fatalf("%s score %d, want %d", p.ID, p.Score, want)
		}
	}

	banked, _ := game.Player(current.ID)
	if !banked.IsIn {
		t.Fatalf("banking player not in")
	}
	if game.TurnScore() != 0 || game.HasRolledThisTurn() {
		t.Fatalf("turn state not reset")
	}
	if before.Status == StatusActive && banked.Score >= DefaultWinningScore && game.Status() != StatusFinalRound {
		t.Fatalf("final round not armed at %d", banked.Score)
	}
}

func assertUnchanged(t *rapid.T, before *State, game *Game) {
	if after := game.State(); !reflect.DeepEqual(before, after) {
		t.Fatalf("failed call changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

// TestRerollCountProperty checks the reroll count stays within a fresh set
// for any roll of up to five dice.
func TestRerollCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		faces := rapid.SliceOfN(rapid.IntRange(1, 6), 1, DefaultDiceCount).Draw(t, "faces")

		got := RerollCount(faces)
		if got < 1 || got > DefaultDiceCount {
			t.Fatalf("RerollCount(%v) = %d", faces, got)
		}

		nonScoring := 0
		for _, face := range faces {
			if face != 1 && face != 5 {
				nonScoring++
			}
		}
		if got != DefaultDiceCount && got > nonScoring {
			t.Fatalf("RerollCount(%v) = %d exceeds %d non-scoring dice", faces, got, nonScoring)
		}
	})
}
