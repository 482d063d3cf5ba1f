package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsParticipantIndex(t *testing.T) {
	g := NewGameState()
	g.Participants = []*Participant{{ID: "a"}, {ID: "b"}}
	g.CurrentParticipantIndex = 5

	g.Normalize()
	assert.Equal(t, 0, g.CurrentParticipantIndex)
}

func TestNormalizeForcesIdleOnEmptyRoster(t *testing.T) {
	g := NewGameState()
	g.RoundInProgress = true

	g.Normalize()
	assert.False(t, g.RoundInProgress)
}

func TestNormalizeRepairsNilSlicesAndCounters(t *testing.T) {
	g := &GameState{}

	g.Normalize()
	assert.NotNil(t, g.Participants)
	assert.NotNil(t, g.History)
	assert.NotNil(t, g.SessionsHistory)
	assert.Equal(t, 1, g.CurrentRound)
	assert.Equal(t, 1, g.TotalSessions)
	assert.Equal(t, DefaultSettings(), g.Settings)
}

func TestNormalizeResetsOverflowedTurnCounter(t *testing.T) {
	g := NewGameState()
	g.Settings.RollsPerPlayer = 2
	g.RollsInTurn = 2

	g.Normalize()
	assert.Equal(t, 0, g.RollsInTurn)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGameState()
	g.Participants = []*Participant{{ID: "a", Score: 1}}
	g.History = []*RollRecord{{ID: "r", Results: []int{1, 2}}}
	g.SessionsHistory = []*SessionSummary{{ID: "s", Participants: []ParticipantResult{{Name: "a"}}}}

	clone := g.Clone()
	clone.Participants[0].Score = 99
	clone.History[0].Results[0] = 99
	clone.SessionsHistory[0].Participants[0].Score = 99

	assert.Equal(t, 1, g.Participants[0].Score)
	assert.Equal(t, 1, g.History[0].Results[0])
	assert.Equal(t, 0, g.SessionsHistory[0].Participants[0].Score)
}
