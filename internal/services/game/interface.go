package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dicemaster/scorekeeper/internal/services/game Service

// Service defines the interface for the turn/round/session controller
type Service interface {
	// RollDice resolves one roll for the acting participant and advances
	// the turn, round, and session bookkeeping
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// StartNewSession closes the current session and opens a fresh one,
	// keeping the roster
	StartNewSession(ctx context.Context, input *StartNewSessionInput) (*StartNewSessionOutput, error)

	// ResetAll wipes the table back to its initial state
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// AddParticipant appends a participant to the roster
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// RemoveParticipant removes a participant by ID
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// RemoveLastParticipant removes the participant at the end of the lineup
	RemoveLastParticipant(ctx context.Context, input *RemoveLastParticipantInput) (*RemoveLastParticipantOutput, error)

	// UpdateSettings replaces the table settings, effective on the next roll
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// GetState returns a snapshot of the full table state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// GetLeaderboard returns the current standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHistory returns the most recent roll records
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetSessionHistory returns the most recent session summaries
	GetSessionHistory(ctx context.Context, input *GetSessionHistoryInput) (*GetSessionHistoryOutput, error)
}
