package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/dicemaster/scorekeeper/internal/dice Roller

// Roller provides uniform dice rolling, injectable for deterministic tests
type Roller interface {
	// Roll returns a uniform integer in [1, sides]
	Roll(sides int) int
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// defaultRoller implements Roller with math/rand
type defaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &defaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *defaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}
