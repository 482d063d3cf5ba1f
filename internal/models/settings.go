package models

// GameMode identifies the scoring-rule set applied to every roll in a session
type GameMode string

const (
	// GameModeClassic scores the plain sum of all faces
	GameModeClassic GameMode = "classic"

	// GameModePoker scores poker-style combinations across the roll
	GameModePoker GameMode = "poker"

	// GameModeGenerala scores serviced generalas and straights
	GameModeGenerala GameMode = "generala"

	// GameModeBlackjack scores toward 21 with natural and bust rules
	GameModeBlackjack GameMode = "blackjack"

	// GameModeTruco remaps faces through the truco card values
	GameModeTruco GameMode = "truco"
)

// DiceType identifies the die used for a roll by its face count
type DiceType string

const (
	DiceTypeD4  DiceType = "d4"
	DiceTypeD6  DiceType = "d6"
	DiceTypeD8  DiceType = "d8"
	DiceTypeD10 DiceType = "d10"
	DiceTypeD20 DiceType = "d20"
)

// Faces returns the face count for the dice type.
// Unrecognized types fall back to a six-sided die.
func (d DiceType) Faces() int {
	switch d {
	case DiceTypeD4:
		return 4
	case DiceTypeD6:
		return 6
	case DiceTypeD8:
		return 8
	case DiceTypeD10:
		return 10
	case DiceTypeD20:
		return 20
	default:
		return 6
	}
}

// Settings holds the table configuration. Immutable while a roll is being
// resolved; changes take effect on the next roll.
type Settings struct {
	// GameMode is the active scoring-rule set
	GameMode GameMode `json:"gameMode"`

	// DiceType is the die used for every roll
	DiceType DiceType `json:"diceType"`

	// DiceCount is how many dice are thrown per roll
	DiceCount int `json:"diceCount"`

	// RollsPerPlayer is how many rolls a participant takes per turn
	RollsPerPlayer int `json:"rollsPerPlayer"`

	// TargetScore is the score that wins the session
	TargetScore int `json:"targetScore"`

	// MaxRounds caps the session length in rounds; 0 disables the cap
	MaxRounds int `json:"maxRounds"`

	// MaxParticipants caps the roster size
	MaxParticipants int `json:"maxParticipants"`

	// RotateTurns rotates the lineup after each round when true
	RotateTurns bool `json:"rotateTurns"`

	// CounterType selects the score display style; opaque to the core
	CounterType string `json:"counterType"`

	// Theme identifies the presentation theme; opaque to the core
	Theme string `json:"theme"`

	// Language is the locale for user-facing notices
	Language string `json:"language"`

	// SoundEnabled toggles audio feedback in the presentation layer
	SoundEnabled bool `json:"soundEnabled"`
}

// DefaultSettings returns the settings a fresh table starts with
func DefaultSettings() Settings {
	return Settings{
		GameMode:        GameModeClassic,
		DiceType:        DiceTypeD6,
		DiceCount:       2,
		RollsPerPlayer:  1,
		TargetScore:     100,
		MaxRounds:       0,
		MaxParticipants: 4,
		RotateTurns:     false,
		CounterType:     "numbers",
		Theme:           "classic-casino",
		Language:        "es",
		SoundEnabled:    true,
	}
}

// Repair merges the settings with defaults, replacing any missing or
// out-of-range field. Applied once when a persisted state is loaded, so the
// rest of the code never has to guard against a half-filled settings bag.
func (s Settings) Repair() Settings {
	defaults := DefaultSettings()

	if _, ok := GameModeCatalog[s.GameMode]; !ok {
		s.GameMode = defaults.GameMode
	}
	switch s.DiceType {
	case DiceTypeD4, DiceTypeD6, DiceTypeD8, DiceTypeD10, DiceTypeD20:
	default:
		s.DiceType = defaults.DiceType
	}
	if s.DiceCount < 1 {
		s.DiceCount = defaults.DiceCount
	}
	if s.RollsPerPlayer < 1 {
		s.RollsPerPlayer = defaults.RollsPerPlayer
	}
	if s.TargetScore < 1 {
		s.TargetScore = defaults.TargetScore
	}
	if s.MaxRounds < 0 {
		s.MaxRounds = defaults.MaxRounds
	}
	if s.MaxParticipants < 1 {
		s.MaxParticipants = defaults.MaxParticipants
	}
	if s.CounterType == "" {
		s.CounterType = defaults.CounterType
	}
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.Language == "" {
		s.Language = defaults.Language
	}

	return s
}

// GameModeInfo describes a game mode for presentation and defaults
type GameModeInfo struct {
	// Name is the display name of the mode
	Name string

	// MinPlayers is the suggested minimum roster size
	MinPlayers int

	// MaxPlayers is the suggested maximum roster size
	MaxPlayers int

	// DefaultTarget is the suggested winning score for the mode
	DefaultTarget int
}

// GameModeCatalog lists every supported game mode
var GameModeCatalog = map[GameMode]GameModeInfo{
	GameModeClassic:   {Name: "Classic", MinPlayers: 2, MaxPlayers: 10, DefaultTarget: 100},
	GameModePoker:     {Name: "Dice Poker", MinPlayers: 2, MaxPlayers: 8, DefaultTarget: 1000},
	GameModeGenerala:  {Name: "Generala", MinPlayers: 2, MaxPlayers: 6, DefaultTarget: 10000},
	GameModeBlackjack: {Name: "Blackjack 21", MinPlayers: 2, MaxPlayers: 7, DefaultTarget: 500},
	GameModeTruco:     {Name: "Truco", MinPlayers: 2, MaxPlayers: 4, DefaultTarget: 30},
}
