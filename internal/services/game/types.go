package game

import (
	"github.com/dicemaster/scorekeeper/internal/common/clock"
	"github.com/dicemaster/scorekeeper/internal/common/uuid"
	"github.com/dicemaster/scorekeeper/internal/dice"
	"github.com/dicemaster/scorekeeper/internal/models"
	stateRepo "github.com/dicemaster/scorekeeper/internal/repositories/gamestate"
)

// DefaultHistoryWindow bounds how many roll records a history query returns
// when the caller does not ask for a specific window.
const DefaultHistoryWindow = 10

// Config holds configuration for the game service
type Config struct {
	// TableID namespaces the persisted state; defaults to "default"
	TableID string

	// Repository dependencies
	StateRepo stateRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// EventSink receives state-change notifications; optional
	EventSink EventSink
}

// RollDiceInput contains parameters for resolving a roll
type RollDiceInput struct {
}

// RollDiceOutput contains the result of a resolved roll
type RollDiceOutput struct {
	// Record is the roll that was appended to the history
	Record *models.RollRecord

	// Participant is the acting participant after the delta was applied
	Participant *models.Participant

	// RoundEnded indicates the roll completed a full pass over the lineup
	RoundEnded bool

	// SessionEnded indicates the roll closed the session (win or round cap)
	SessionEnded bool

	// Winner is set when a participant reached the target score
	Winner *models.Participant
}

// StartNewSessionInput contains parameters for starting a new session
type StartNewSessionInput struct {
}

// StartNewSessionOutput contains the result of starting a new session
type StartNewSessionOutput struct {
	// Summary is the closed session's summary, if one was recorded
	Summary *models.SessionSummary

	// TotalSessions is the session counter after the new session opened
	TotalSessions int
}

// ResetAllInput contains parameters for wiping the table
type ResetAllInput struct {
}

// ResetAllOutput contains the result of wiping the table
type ResetAllOutput struct {
}

// AddParticipantInput contains parameters for adding a participant
type AddParticipantInput struct {
	// Name is the display label for the participant
	Name string

	// AvatarID identifies an avatar in an external catalog; opaque
	AvatarID string

	// ColorID identifies a color in an external catalog; opaque
	ColorID string
}

// AddParticipantOutput contains the result of adding a participant
type AddParticipantOutput struct {
	// Participant is the newly created participant
	Participant *models.Participant
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	// ParticipantID is the ID of the participant to remove
	ParticipantID string
}

// RemoveParticipantOutput contains the result of removing a participant
type RemoveParticipantOutput struct {
	// Removed is the participant that was removed
	Removed *models.Participant
}

// RemoveLastParticipantInput contains parameters for removing the last participant
type RemoveLastParticipantInput struct {
}

// RemoveLastParticipantOutput contains the result of removing the last participant
type RemoveLastParticipantOutput struct {
	// Removed is the participant that was removed
	Removed *models.Participant
}

// UpdateSettingsInput contains the replacement table settings
type UpdateSettingsInput struct {
	// Settings is the new configuration; repaired against defaults
	Settings models.Settings
}

// UpdateSettingsOutput contains the settings actually applied
type UpdateSettingsOutput struct {
	// Settings is the configuration after repair
	Settings models.Settings
}

// GetStateInput contains parameters for reading the table state
type GetStateInput struct {
}

// GetStateOutput contains a snapshot of the table state
type GetStateOutput struct {
	// State is an independent copy; mutating it does not affect the table
	State *models.GameState
}

// GetLeaderboardInput contains parameters for reading the standings
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput contains the current standings
type GetLeaderboardOutput struct {
	// Leaderboard holds one row per participant, highest score first
	Leaderboard *models.Leaderboard
}

// GetHistoryInput contains parameters for reading the roll history
type GetHistoryInput struct {
	// Limit bounds the window; 0 means DefaultHistoryWindow
	Limit int
}

// GetHistoryOutput contains the most recent roll records
type GetHistoryOutput struct {
	// Records holds the window, newest first
	Records []*models.RollRecord

	// Total is the full history length, ignoring the window
	Total int
}

// GetSessionHistoryInput contains parameters for reading session summaries
type GetSessionHistoryInput struct {
	// Limit bounds the window; 0 means DefaultHistoryWindow
	Limit int
}

// GetSessionHistoryOutput contains the most recent session summaries
type GetSessionHistoryOutput struct {
	// Summaries holds the window, newest first
	Summaries []*models.SessionSummary

	// Total is the full list length, ignoring the window
	Total int
}
