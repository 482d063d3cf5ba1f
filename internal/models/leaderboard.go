package models

// Standing is one row of the leaderboard
type Standing struct {
	// Rank is the 1-based position, highest score first
	Rank int `json:"rank"`

	// ParticipantID is the participant this row belongs to
	ParticipantID string `json:"participantId"`

	// Name is the participant's display label
	Name string `json:"name"`

	// Score is the participant's current score
	Score int `json:"score"`

	// Rounds is how many times the participant has acted this session
	Rounds int `json:"rounds"`

	// IsLeader is true for the row(s) holding the top score
	IsLeader bool `json:"isLeader"`
}

// Leaderboard represents the current standings at a table
type Leaderboard struct {
	// Standings contains one row per participant, highest score first
	Standings []*Standing `json:"standings"`
}
