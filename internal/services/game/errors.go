package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoParticipants        GameError = "no participants at the table"
	ErrAlreadyRolling        GameError = "a roll is already being resolved"
	ErrCapacityExceeded      GameError = "the table is at maximum capacity"
	ErrSessionAlreadyStarted GameError = "the roster is locked while a session is in progress"
	ErrSessionEnded          GameError = "the session has ended; start a new session to continue"
	ErrParticipantNotFound   GameError = "participant not found"
	ErrEmptyParticipantName  GameError = "participant name cannot be empty"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilRepository         GameError = "game state repository cannot be nil"
	ErrNilDiceRoller         GameError = "dice roller cannot be nil"
	ErrNilClock              GameError = "clock cannot be nil"
	ErrNilUUIDGenerator      GameError = "UUID generator cannot be nil"
)
