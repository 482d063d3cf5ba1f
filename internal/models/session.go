package models

import (
	"time"
)

// ParticipantResult is a participant's final standing within a closed session
type ParticipantResult struct {
	// Name is the participant's display label
	Name string `json:"name"`

	// Score is the participant's final score
	Score int `json:"score"`

	// Rounds is how many times the participant acted
	Rounds int `json:"rounds"`
}

// SessionSummary records the outcome of a completed session
type SessionSummary struct {
	// ID is the unique identifier for the summary
	ID string `json:"id"`

	// WinnerName is the display label of the highest scorer
	WinnerName string `json:"winner"`

	// WinnerScore is the winning score
	WinnerScore int `json:"score"`

	// Rounds is the round counter when the session closed
	Rounds int `json:"rounds"`

	// EndedAt is when the session closed
	EndedAt time.Time `json:"endedAt"`

	// Participants holds every participant's final result
	Participants []ParticipantResult `json:"participants"`
}
