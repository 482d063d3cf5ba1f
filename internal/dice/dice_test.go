package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for _, sides := range []int{4, 6, 8, 10, 20} {
		for i := 0; i < 1000; i++ {
			v := roller.Roll(sides)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, sides)
		}
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 100; i++ {
		v := roller.Roll(0)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededRollerIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(6), b.Roll(6))
	}
}
