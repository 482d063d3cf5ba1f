package models

// Participant represents a local player seated at the table
type Participant struct {
	// ID is the unique identifier for the participant
	ID string `json:"id"`

	// Name is the display label for the participant
	Name string `json:"name"`

	// AvatarID identifies the participant's avatar in an external catalog
	AvatarID string `json:"avatarId,omitempty"`

	// ColorID identifies the participant's color in an external catalog
	ColorID string `json:"colorId,omitempty"`

	// Score is the accumulated score for the current session.
	// May go negative under some game modes.
	Score int `json:"score"`

	// Rounds is how many times the participant has acted this session
	Rounds int `json:"rounds"`
}
