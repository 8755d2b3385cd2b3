// Package scoring implements the point values of a Greed dice roll.
package scoring

// Scorer maps a rolled face sequence to its point value.
// Implementations must be pure and never return a negative value.
type Scorer interface {
	Score(faces []int) int
}

// ScorerFunc adapts a plain function to the Scorer interface
type ScorerFunc func(faces []int) int

// Score calls f(faces)
func (f ScorerFunc) Score(faces []int) int {
	return f(faces)
}

// ComboKind identifies a scoring combination
type ComboKind string

const (
	// ComboTriple is three dice showing the same face
	ComboTriple ComboKind = "triple"

	// ComboSingle is a lone 1 or 5 outside a triple
	ComboSingle ComboKind = "single"
)

// Combo is one scoring group found in a roll
type Combo struct {
	Kind   ComboKind
	Face   int
	Count  int
	Points int
}

// Greed scores rolls under the standard rules:
//
//	three 1s        1000
//	three of n      n * 100
//	single 1        100
//	single 5        50
//
// Faces outside 1-6 are ignored.
type Greed struct{}

// Score returns the total points for faces
func (Greed) Score(faces []int) int {
	total := 0
	for _, combo := range breakdown(faces) {
		total += combo.Points
	}
	return total
}

// Breakdown lists the scoring combinations in faces, triples first then
// singles, each ordered by face value.
func (Greed) Breakdown(faces []int) []Combo {
	return breakdown(faces)
}

// Default is the scorer used when none is configured
var Default Scorer = Greed{}

func breakdown(faces []int) []Combo {
	var counts [7]int
	for _, face := range faces {
		if face < 1 || face > 6 {
			continue
		}
		counts[face]++
	}

	var combos []Combo
	for face := 1; face <= 6; face++ {
		if counts[face] < 3 {
			continue
		}
		points := face * 100
		if face == 1 {
			points = 1000
		}
		combos = append(combos, Combo{Kind: ComboTriple, Face: face, Count: 3, Points: points})
		counts[face] -= 3
	}

	if counts[1] > 0 {
		combos = append(combos, Combo{Kind: ComboSingle, Face: 1, Count: counts[1], Points: counts[1] * 100})
	}
	if counts[5] > 0 {
		combos = append(combos, Combo{Kind: ComboSingle, Face: 5, Count: counts[5], Points: counts[5] * 50})
	}

	return combos
}
