package messaging

import (
	"github.com/dicemaster/scorekeeper/internal/services/game"
)

// DefaultLocale is used when a requested locale has no string table
const DefaultLocale = "es"

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DefaultLocale overrides the package default when set
	DefaultLocale string
}

// GetEventMessageInput contains parameters for rendering an event notice
type GetEventMessageInput struct {
	// Locale selects the string table; falls back to the default locale
	Locale string

	// Event is the controller event to render
	Event game.Event
}

// GetEventMessageOutput contains the rendered notice
type GetEventMessageOutput struct {
	// Message is the localized notice text
	Message string
}

// GetErrorMessageInput contains parameters for rendering an error notice
type GetErrorMessageInput struct {
	// Locale selects the string table; falls back to the default locale
	Locale string

	// Err is the service error to render
	Err error
}

// GetErrorMessageOutput contains the rendered notice
type GetErrorMessageOutput struct {
	// Message is the localized notice text
	Message string
}
