package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/dicemaster/scorekeeper/internal/services/game"
)

// messageKey indexes the per-locale string tables
type messageKey string

const (
	keyParticipantAdded   messageKey = "participant_added"
	keyParticipantRemoved messageKey = "participant_removed"
	keyTurnChanged        messageKey = "turn_changed"
	keyRoundEnded         messageKey = "round_ended"
	keySessionStarted     messageKey = "session_started"
	keySessionEnded       messageKey = "session_ended"
	keyWinnerDeclared     messageKey = "winner_declared"
	keySettingsUpdated    messageKey = "settings_updated"
	keyGameReset          messageKey = "game_reset"

	keyErrNoParticipants   messageKey = "err_no_participants"
	keyErrAlreadyRolling   messageKey = "err_already_rolling"
	keyErrCapacityExceeded messageKey = "err_capacity_exceeded"
	keyErrRosterLocked     messageKey = "err_roster_locked"
	keyErrSessionEnded     messageKey = "err_session_ended"
	keyErrNotFound         messageKey = "err_not_found"
	keyErrEmptyName        messageKey = "err_empty_name"
	keyErrGeneric          messageKey = "err_generic"
)

// locales holds the notice string tables. Format arguments are positional:
// participant name, then round or score where the template uses them.
var locales = map[string]map[messageKey]string{
	"es": {
		keyParticipantAdded:    "%s se ha unido a la mesa",
		keyParticipantRemoved:  "%s ha dejado la mesa",
		keyTurnChanged:         "Turno de %s",
		keyRoundEnded:          "¡Ronda %d!",
		keySessionStarted:      "¡Nueva sesión iniciada!",
		keySessionEnded:        "La sesión ha terminado",
		keyWinnerDeclared:      "🎉 ¡%s ha ganado el juego con %d puntos!",
		keySettingsUpdated:     "Configuración actualizada",
		keyGameReset:           "Juego reiniciado",
		keyErrNoParticipants:   "Agrega participantes antes de continuar.",
		keyErrAlreadyRolling:   "Espera a que termine la tirada actual.",
		keyErrCapacityExceeded: "La mesa está completa.",
		keyErrRosterLocked:     "No se puede cambiar la mesa con una sesión en curso.",
		keyErrSessionEnded:     "La sesión terminó. Inicia una nueva sesión para continuar.",
		keyErrNotFound:         "Participante no encontrado.",
		keyErrEmptyName:        "El nombre no puede estar vacío.",
		keyErrGeneric:          "Algo salió mal. Inténtalo de nuevo.",
	},
	"en": {
		keyParticipantAdded:    "%s joined the table",
		keyParticipantRemoved:  "%s left the table",
		keyTurnChanged:         "%s's turn",
		keyRoundEnded:          "Round %d!",
		keySessionStarted:      "New session started!",
		keySessionEnded:        "The session has ended",
		keyWinnerDeclared:      "🎉 %s won the game with %d points!",
		keySettingsUpdated:     "Settings updated",
		keyGameReset:           "Game reset",
		keyErrNoParticipants:   "Add participants before continuing.",
		keyErrAlreadyRolling:   "Wait for the current roll to finish.",
		keyErrCapacityExceeded: "The table is full.",
		keyErrRosterLocked:     "The roster is locked while a session is in progress.",
		keyErrSessionEnded:     "The session ended. Start a new session to continue.",
		keyErrNotFound:         "Participant not found.",
		keyErrEmptyName:        "The name cannot be empty.",
		keyErrGeneric:          "Something went wrong. Try again.",
	},
}

// service implements the Service interface
type service struct {
	defaultLocale string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	defaultLocale := DefaultLocale
	if config != nil && config.DefaultLocale != "" {
		if _, ok := locales[config.DefaultLocale]; !ok {
			return nil, fmt.Errorf("unknown default locale %q", config.DefaultLocale)
		}
		defaultLocale = config.DefaultLocale
	}

	return &service{defaultLocale: defaultLocale}, nil
}

// table resolves the string table for a locale, falling back to the default
func (s *service) table(locale string) map[messageKey]string {
	if t, ok := locales[locale]; ok {
		return t
	}
	return locales[s.defaultLocale]
}

// GetEventMessage returns a notice for a controller event
func (s *service) GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	t := s.table(input.Locale)
	event := input.Event

	var message string
	switch event.Type {
	case game.EventParticipantAdded:
		message = fmt.Sprintf(t[keyParticipantAdded], event.ParticipantName)
	case game.EventParticipantRemoved:
		message = fmt.Sprintf(t[keyParticipantRemoved], event.ParticipantName)
	case game.EventTurnChanged:
		message = fmt.Sprintf(t[keyTurnChanged], event.ParticipantName)
	case game.EventRoundEnded:
		message = fmt.Sprintf(t[keyRoundEnded], event.Round)
	case game.EventSessionStarted:
		message = t[keySessionStarted]
	case game.EventSessionEnded:
		message = t[keySessionEnded]
	case game.EventWinnerDeclared:
		message = fmt.Sprintf(t[keyWinnerDeclared], event.ParticipantName, event.Score)
	case game.EventSettingsUpdated:
		message = t[keySettingsUpdated]
	case game.EventGameReset:
		message = t[keyGameReset]
	default:
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}

	return &GetEventMessageOutput{Message: message}, nil
}

// GetErrorMessage returns a user-friendly message for a service error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	t := s.table(input.Locale)

	var key messageKey
	switch {
	case errors.Is(input.Err, game.ErrNoParticipants):
		key = keyErrNoParticipants
	case errors.Is(input.Err, game.ErrAlreadyRolling):
		key = keyErrAlreadyRolling
	case errors.Is(input.Err, game.ErrCapacityExceeded):
		key = keyErrCapacityExceeded
	case errors.Is(input.Err, game.ErrSessionAlreadyStarted):
		key = keyErrRosterLocked
	case errors.Is(input.Err, game.ErrSessionEnded):
		key = keyErrSessionEnded
	case errors.Is(input.Err, game.ErrParticipantNotFound):
		key = keyErrNotFound
	case errors.Is(input.Err, game.ErrEmptyParticipantName):
		key = keyErrEmptyName
	default:
		key = keyErrGeneric
	}

	return &GetErrorMessageOutput{Message: t[key]}, nil
}
