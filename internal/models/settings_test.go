package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceTypeFaces(t *testing.T) {
	assert.Equal(t, 4, DiceTypeD4.Faces())
	assert.Equal(t, 6, DiceTypeD6.Faces())
	assert.Equal(t, 8, DiceTypeD8.Faces())
	assert.Equal(t, 10, DiceTypeD10.Faces())
	assert.Equal(t, 20, DiceTypeD20.Faces())
	assert.Equal(t, 6, DiceType("d13").Faces())
}

func TestRepairFillsMissingFields(t *testing.T) {
	repaired := Settings{}.Repair()
	assert.Equal(t, DefaultSettings(), repaired)
}

func TestRepairKeepsValidFields(t *testing.T) {
	s := Settings{
		GameMode:        GameModeGenerala,
		DiceType:        DiceTypeD10,
		DiceCount:       5,
		RollsPerPlayer:  3,
		TargetScore:     10000,
		MaxRounds:       15,
		MaxParticipants: 6,
		RotateTurns:     true,
		CounterType:     "dots",
		Theme:           "neon",
		Language:        "en",
	}

	repaired := s.Repair()
	assert.Equal(t, s, repaired)
}

func TestRepairReplacesOutOfRangeValues(t *testing.T) {
	s := Settings{
		GameMode:  GameMode("nope"),
		DiceType:  DiceType("d100"),
		DiceCount: -3,
		MaxRounds: -1,
	}

	repaired := s.Repair()
	assert.Equal(t, GameModeClassic, repaired.GameMode)
	assert.Equal(t, DiceTypeD6, repaired.DiceType)
	assert.Equal(t, 2, repaired.DiceCount)
	assert.Equal(t, 0, repaired.MaxRounds)
}

func TestGameModeCatalogCoversEveryMode(t *testing.T) {
	for _, mode := range []GameMode{
		GameModeClassic, GameModePoker, GameModeGenerala, GameModeBlackjack, GameModeTruco,
	} {
		info, ok := GameModeCatalog[mode]
		assert.True(t, ok, "missing catalog entry for %s", mode)
		assert.NotEmpty(t, info.Name)
		assert.Greater(t, info.DefaultTarget, 0)
	}
}
