package models

import (
	"time"
)

// RollRecord represents one resolved dice roll in the session history
type RollRecord struct {
	// ID is the unique identifier for the roll
	ID string `json:"id"`

	// ParticipantID is the ID of the participant who rolled
	ParticipantID string `json:"participantId"`

	// ParticipantName is the display label at the time of the roll
	ParticipantName string `json:"participantName"`

	// DiceType is the die that was used
	DiceType DiceType `json:"diceType"`

	// DiceCount is how many dice were thrown
	DiceCount int `json:"diceCount"`

	// Results holds the raw face values in roll order
	Results []int `json:"results"`

	// Total is the score delta the roll produced under the active game mode
	Total int `json:"total"`

	// Round is the round number the roll belongs to
	Round int `json:"round"`

	// Timestamp is when the roll was resolved
	Timestamp time.Time `json:"timestamp"`
}
