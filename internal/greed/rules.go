package greed

import "github.com/KirkDiggler/greed/internal/scoring"

const (
	// DefaultDiceCount is the size of a fresh set of dice
	DefaultDiceCount = 5

	// DefaultEntryScore is the turn score a player must bank to get in
	DefaultEntryScore = 300

	// DefaultWinningScore arms the final round once a banked score reaches it
	DefaultWinningScore = 3000

	// MinPlayers is the smallest table a game can start with
	MinPlayers = 2
)

// Rules holds the tunable parts of a game
type Rules struct {
	// EntryScore is the minimum turn score to bank before a player is in
	EntryScore int

	// WinningScore arms the final round
	WinningScore int

	// Scorer values each roll
	Scorer scoring.Scorer
}

// DefaultRules returns the standard Greed rules
func DefaultRules() *Rules {
	return &Rules{
		EntryScore:   DefaultEntryScore,
		WinningScore: DefaultWinningScore,
		Scorer:       scoring.Default,
	}
}

// withDefaults fills zero fields of r from DefaultRules
func (r *Rules) withDefaults() *Rules {
	out := DefaultRules()
	if r == nil {
		return out
	}
	if r.EntryScore > 0 {
		out.EntryScore = r.EntryScore
	}
	if r.WinningScore > 0 {
		out.WinningScore = r.WinningScore
	}
	if r.Scorer != nil {
		out.Scorer = r.Scorer
	}
	return out
}

// RerollCount returns how many dice the next roll must use after a scoring
// roll of faces. Faces other than 1 and 5 are grouped by value and each group
// leaves count mod 3 dice to reroll. A total of zero means every die scored
// and the player rolls a fresh set.
func RerollCount(faces []int) int {
	groups := make(map[int]int)
	for _, face := range faces {
		if face == 1 || face == 5 {
			continue
		}
		groups[face]++
	}

	total := 0
	for _, count := range groups {
		total += count % 3
	}

	if total == 0 {
		return DefaultDiceCount
	}
	return total
}
