package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/greed/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Sides is the number of faces on a Greed die
const Sides = 6

// Roller rolls sets of six-sided dice
type Roller interface {
	// RollDice returns count faces, each between 1 and 6
	RollDice(count int) []int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// SeededRoller is a Roller backed by math/rand
type SeededRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// RollDice rolls count dice. A count below 1 rolls nothing.
func (r *SeededRoller) RollDice(count int) []int {
	if count < 1 {
		return []int{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.random.Intn(Sides) + 1
	}
	return faces
}
