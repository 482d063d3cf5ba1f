package messaging

import "context"

// Service renders controller events and error conditions into user-facing
// notice strings. The core treats locales as opaque ids; this service owns
// the actual string tables.
type Service interface {
	// GetEventMessage returns a notice for a controller event
	GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a service error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
