package models

// GameState is the whole persisted snapshot of a table. It is rewritten to
// storage in full after every mutating operation.
type GameState struct {
	// Participants is the ordered lineup; index order is turn order
	Participants []*Participant `json:"participants"`

	// History holds roll records, newest first
	History []*RollRecord `json:"history"`

	// SessionsHistory holds closed-session summaries, newest first
	SessionsHistory []*SessionSummary `json:"sessionsHistory"`

	// Settings is the table configuration
	Settings Settings `json:"settings"`

	// CurrentRound is the 1-based round counter
	CurrentRound int `json:"currentRound"`

	// TotalSessions counts sessions played at this table, current included
	TotalSessions int `json:"totalSessions"`

	// CurrentParticipantIndex is whose turn it is
	CurrentParticipantIndex int `json:"currentParticipantIndex"`

	// RollsInTurn is how many rolls the acting participant has taken this turn
	RollsInTurn int `json:"rollsInTurn"`

	// RoundInProgress is true between the first roll of a round and its close
	RoundInProgress bool `json:"roundInProgress"`

	// SessionStarted is true once the first roll of a session has resolved;
	// the roster is locked while it is set
	SessionStarted bool `json:"sessionStarted"`

	// SessionEnded is true after a win or round cap closed the session and
	// before a new one is started
	SessionEnded bool `json:"sessionEnded"`
}

// NewGameState returns the state of a fresh table
func NewGameState() *GameState {
	return &GameState{
		Participants:    []*Participant{},
		History:         []*RollRecord{},
		SessionsHistory: []*SessionSummary{},
		Settings:        DefaultSettings(),
		CurrentRound:    1,
		TotalSessions:   1,
	}
}

// Clone returns an independent deep copy of the state
func (g *GameState) Clone() *GameState {
	out := *g

	out.Participants = make([]*Participant, len(g.Participants))
	for i, p := range g.Participants {
		cp := *p
		out.Participants[i] = &cp
	}

	out.History = make([]*RollRecord, len(g.History))
	for i, r := range g.History {
		cr := *r
		cr.Results = append([]int(nil), r.Results...)
		out.History[i] = &cr
	}

	out.SessionsHistory = make([]*SessionSummary, len(g.SessionsHistory))
	for i, s := range g.SessionsHistory {
		cs := *s
		cs.Participants = append([]ParticipantResult(nil), s.Participants...)
		out.SessionsHistory[i] = &cs
	}

	return &out
}

// Normalize repairs a loaded state so that the controller's invariants hold:
// settings merged with defaults, participant index in range, counters sane,
// and no round in progress on an empty roster.
func (g *GameState) Normalize() {
	if g.Participants == nil {
		g.Participants = []*Participant{}
	}
	if g.History == nil {
		g.History = []*RollRecord{}
	}
	if g.SessionsHistory == nil {
		g.SessionsHistory = []*SessionSummary{}
	}

	g.Settings = g.Settings.Repair()

	if g.CurrentRound < 1 {
		g.CurrentRound = 1
	}
	if g.TotalSessions < 1 {
		g.TotalSessions = 1
	}

	if g.CurrentParticipantIndex < 0 {
		g.CurrentParticipantIndex = 0
	}
	if g.CurrentParticipantIndex >= len(g.Participants) {
		g.CurrentParticipantIndex = 0
	}

	if g.RollsInTurn < 0 || g.RollsInTurn >= g.Settings.RollsPerPlayer {
		g.RollsInTurn = 0
	}

	if len(g.Participants) == 0 {
		g.RoundInProgress = false
	}
}
