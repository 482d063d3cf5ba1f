package game

import "github.com/dicemaster/scorekeeper/internal/models"

//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/dicemaster/scorekeeper/internal/services/game EventSink

// EventType identifies a state-change notification emitted by the controller
type EventType string

const (
	// EventParticipantAdded is emitted when a participant joins the roster
	EventParticipantAdded EventType = "participant_added"

	// EventParticipantRemoved is emitted when a participant leaves the roster
	EventParticipantRemoved EventType = "participant_removed"

	// EventTurnChanged is emitted when the acting participant advances
	EventTurnChanged EventType = "turn_changed"

	// EventRoundEnded is emitted when a full pass over the lineup completes
	EventRoundEnded EventType = "round_ended"

	// EventSessionStarted is emitted when a new session begins
	EventSessionStarted EventType = "session_started"

	// EventSessionEnded is emitted when a session closes for any reason
	EventSessionEnded EventType = "session_ended"

	// EventWinnerDeclared is emitted when a participant reaches the target score
	EventWinnerDeclared EventType = "winner_declared"

	// EventSettingsUpdated is emitted when the table settings change
	EventSettingsUpdated EventType = "settings_updated"

	// EventGameReset is emitted when the table is wiped back to defaults
	EventGameReset EventType = "game_reset"
)

// Event is a state-change notification. The core defines the vocabulary;
// rendering it is up to the subscriber.
type Event struct {
	// Type identifies what happened
	Type EventType `json:"type"`

	// ParticipantID is set for participant- and turn-scoped events
	ParticipantID string `json:"participantId,omitempty"`

	// ParticipantName is the display label for the participant above
	ParticipantName string `json:"participantName,omitempty"`

	// Round is the current round number at the time of the event
	Round int `json:"round,omitempty"`

	// Score carries the relevant score for winner events
	Score int `json:"score,omitempty"`

	// Summary is attached to session-ended events
	Summary *models.SessionSummary `json:"summary,omitempty"`
}

// EventSink receives controller events. Implementations must not call back
// into the service from Publish.
type EventSink interface {
	Publish(event Event)
}

// NopSink discards all events
type NopSink struct{}

// Publish does nothing
func (NopSink) Publish(Event) {}
