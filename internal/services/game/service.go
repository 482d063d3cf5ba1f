package game

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/dicemaster/scorekeeper/internal/common/clock"
	"github.com/dicemaster/scorekeeper/internal/common/uuid"
	"github.com/dicemaster/scorekeeper/internal/dice"
	"github.com/dicemaster/scorekeeper/internal/models"
	stateRepo "github.com/dicemaster/scorekeeper/internal/repositories/gamestate"
	"github.com/dicemaster/scorekeeper/internal/scoring"
)

// service implements the Service interface. All state belongs to the service
// instance; callers hold an explicit reference, there is no ambient global.
type service struct {
	tableID    string
	stateRepo  stateRepo.Repository
	diceRoller dice.Roller
	clock      clock.Clock
	uuids      uuid.UUID
	sink       EventSink

	mu    sync.Mutex
	state *models.GameState

	// rolling is the reentrancy guard: at most one roll may be in flight.
	// Kept explicit even though the mutex serializes operations, so an
	// overlapping request surfaces as ErrAlreadyRolling instead of silently
	// resolving a second roll.
	rolling bool
}

// New creates a new game service. The persisted state is loaded once here;
// a missing or corrupt blob falls back to a fresh default state.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StateRepo == nil {
		return nil, ErrNilRepository
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	tableID := cfg.TableID
	if tableID == "" {
		tableID = "default"
	}

	sink := cfg.EventSink
	if sink == nil {
		sink = NopSink{}
	}

	s := &service{
		tableID:    tableID,
		stateRepo:  cfg.StateRepo,
		diceRoller: cfg.DiceRoller,
		clock:      cfg.Clock,
		uuids:      cfg.UUIDGenerator,
		sink:       sink,
	}

	state, err := cfg.StateRepo.Load(ctx, &stateRepo.LoadInput{TableID: tableID})
	switch {
	case err == nil:
		state.Normalize()
		s.state = state
	case errors.Is(err, stateRepo.ErrStateNotFound):
		s.state = models.NewGameState()
	case errors.Is(err, stateRepo.ErrStateCorrupt):
		log.Printf("stored state for table %s is corrupt, starting fresh: %v", tableID, err)
		s.state = models.NewGameState()
	default:
		return nil, err
	}

	return s, nil
}

// save persists the whole state. Called with the lock held, after every
// mutating operation.
func (s *service) save(ctx context.Context) error {
	return s.stateRepo.Save(ctx, &stateRepo.SaveInput{
		TableID: s.tableID,
		State:   s.state,
	})
}

// publish sends events to the sink. Runs with the lock held; sinks must not
// block or call back into the service.
func (s *service) publish(events []Event) {
	for _, e := range events {
		s.sink.Publish(e)
	}
}

// RollDice resolves one roll for the acting participant. Guards are checked
// before any mutation; on failure the state is untouched.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	if len(g.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if g.SessionEnded {
		return nil, ErrSessionEnded
	}
	if s.rolling {
		return nil, ErrAlreadyRolling
	}

	s.rolling = true
	defer func() { s.rolling = false }()

	var events []Event
	defer func() { s.publish(events) }()

	// Opening a round resets the lineup pointers and locks the roster
	if !g.RoundInProgress {
		g.RoundInProgress = true
		g.CurrentParticipantIndex = 0
		g.RollsInTurn = 0
		g.SessionStarted = true
	}

	actor := g.Participants[g.CurrentParticipantIndex]

	faces := g.Settings.DiceType.Faces()
	results := make([]int, g.Settings.DiceCount)
	for i := range results {
		results[i] = s.diceRoller.Roll(faces)
	}

	delta := scoring.Evaluate(g.Settings.GameMode, results, actor.Rounds)
	now := s.clock.Now()

	record := &models.RollRecord{
		ID:              s.uuids.NewUUID(),
		ParticipantID:   actor.ID,
		ParticipantName: actor.Name,
		DiceType:        g.Settings.DiceType,
		DiceCount:       g.Settings.DiceCount,
		Results:         results,
		Total:           delta,
		Round:           g.CurrentRound,
		Timestamp:       now,
	}
	g.History = append([]*models.RollRecord{record}, g.History...)

	actor.Score += delta
	actor.Rounds++

	// Advance the per-turn counter, then the lineup
	roundEnded := false
	g.RollsInTurn++
	if g.RollsInTurn >= g.Settings.RollsPerPlayer {
		g.RollsInTurn = 0
		g.CurrentParticipantIndex++

		if g.CurrentParticipantIndex >= len(g.Participants) {
			roundEnded = true
			events = append(events, s.endRound()...)
		} else {
			next := g.Participants[g.CurrentParticipantIndex]
			events = append(events, Event{
				Type:            EventTurnChanged,
				ParticipantID:   next.ID,
				ParticipantName: next.Name,
				Round:           g.CurrentRound,
			})
		}
	}

	// Win check runs after the delta is applied, layered on top of the
	// round-cap check above
	var winner *models.Participant
	if !g.SessionEnded {
		for _, p := range g.Participants {
			if p.Score >= g.Settings.TargetScore {
				winner = p
				break
			}
		}
		if winner != nil {
			summary := s.recordSessionSummary()
			g.SessionEnded = true
			g.RoundInProgress = false
			events = append(events,
				Event{
					Type:            EventWinnerDeclared,
					ParticipantID:   winner.ID,
					ParticipantName: winner.Name,
					Round:           g.CurrentRound,
					Score:           winner.Score,
				},
				Event{
					Type:    EventSessionEnded,
					Round:   g.CurrentRound,
					Summary: summary,
				},
			)
		}
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	actorCopy := *actor
	return &RollDiceOutput{
		Record:       record,
		Participant:  &actorCopy,
		RoundEnded:   roundEnded,
		SessionEnded: g.SessionEnded,
		Winner:       winner,
	}, nil
}

// endRound closes the current round: the round counter advances, the round
// cap is checked before any rotation, and the lineup rotates when enabled.
// Called with the lock held.
func (s *service) endRound() []Event {
	g := s.state

	g.CurrentRound++
	g.RoundInProgress = false
	g.CurrentParticipantIndex = 0
	g.RollsInTurn = 0

	if g.Settings.MaxRounds > 0 && g.CurrentRound > g.Settings.MaxRounds {
		summary := s.recordSessionSummary()
		g.SessionEnded = true
		return []Event{{
			Type:    EventSessionEnded,
			Round:   g.CurrentRound,
			Summary: summary,
		}}
	}

	// Rotation changes future turn order only; scores are untouched
	if g.Settings.RotateTurns && len(g.Participants) > 1 {
		first := g.Participants[0]
		g.Participants = append(g.Participants[1:], first)
	}

	return []Event{{
		Type:  EventRoundEnded,
		Round: g.CurrentRound,
	}}
}

// recordSessionSummary prepends a summary of the session being closed.
// The winner is the highest scorer. Called with the lock held.
func (s *service) recordSessionSummary() *models.SessionSummary {
	g := s.state

	if len(g.Participants) == 0 {
		return nil
	}

	sorted := make([]*models.Participant, len(g.Participants))
	copy(sorted, g.Participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	results := make([]models.ParticipantResult, len(g.Participants))
	for i, p := range g.Participants {
		results[i] = models.ParticipantResult{
			Name:   p.Name,
			Score:  p.Score,
			Rounds: p.Rounds,
		}
	}

	summary := &models.SessionSummary{
		ID:           s.uuids.NewUUID(),
		WinnerName:   sorted[0].Name,
		WinnerScore:  sorted[0].Score,
		Rounds:       g.CurrentRound,
		EndedAt:      s.clock.Now(),
		Participants: results,
	}

	g.SessionsHistory = append([]*models.SessionSummary{summary}, g.SessionsHistory...)
	return summary
}

// StartNewSession closes the current session and opens a fresh one. The
// roster survives; scores, rounds and the roll history do not.
func (s *service) StartNewSession(ctx context.Context, input *StartNewSessionInput) (*StartNewSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	if len(g.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if s.rolling {
		return nil, ErrAlreadyRolling
	}

	var summary *models.SessionSummary
	if !g.SessionEnded {
		for _, p := range g.Participants {
			if p.Score != 0 {
				summary = s.recordSessionSummary()
				break
			}
		}
	}

	for _, p := range g.Participants {
		p.Score = 0
		p.Rounds = 0
	}
	g.CurrentRound = 1
	g.CurrentParticipantIndex = 0
	g.RollsInTurn = 0
	g.RoundInProgress = false
	g.SessionStarted = false
	g.SessionEnded = false
	g.History = []*models.RollRecord{}
	g.TotalSessions++

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.publish([]Event{{Type: EventSessionStarted, Round: 1}})

	return &StartNewSessionOutput{
		Summary:       summary,
		TotalSessions: g.TotalSessions,
	}, nil
}

// ResetAll wipes the table back to its initial state. Settings survive a
// reset; everything else does not. Calling it twice is the same as once.
func (s *service) ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		return nil, ErrAlreadyRolling
	}

	settings := s.state.Settings
	s.state = models.NewGameState()
	s.state.Settings = settings

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.publish([]Event{{Type: EventGameReset, Round: 1}})

	return &ResetAllOutput{}, nil
}

// AddParticipant appends a participant to the roster. The roster is locked
// once a session has started.
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyParticipantName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	if g.SessionStarted {
		return nil, ErrSessionAlreadyStarted
	}
	if len(g.Participants) >= g.Settings.MaxParticipants {
		return nil, ErrCapacityExceeded
	}

	participant := &models.Participant{
		ID:       s.uuids.NewUUID(),
		Name:     input.Name,
		AvatarID: input.AvatarID,
		ColorID:  input.ColorID,
	}
	g.Participants = append(g.Participants, participant)

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.publish([]Event{{
		Type:            EventParticipantAdded,
		ParticipantID:   participant.ID,
		ParticipantName: participant.Name,
		Round:           g.CurrentRound,
	}})

	participantCopy := *participant
	return &AddParticipantOutput{Participant: &participantCopy}, nil
}

// RemoveParticipant removes a participant by ID, clamping the acting index
// back into range if the removal left it dangling.
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrParticipantNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	if g.SessionStarted {
		return nil, ErrSessionAlreadyStarted
	}

	index := -1
	for i, p := range g.Participants {
		if p.ID == input.ParticipantID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrParticipantNotFound
	}

	return s.removeAt(ctx, index)
}

// RemoveLastParticipant removes the participant at the end of the lineup
func (s *service) RemoveLastParticipant(ctx context.Context, input *RemoveLastParticipantInput) (*RemoveLastParticipantOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	if len(g.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if g.SessionStarted {
		return nil, ErrSessionAlreadyStarted
	}

	out, err := s.removeAt(ctx, len(g.Participants)-1)
	if err != nil {
		return nil, err
	}
	return &RemoveLastParticipantOutput{Removed: out.Removed}, nil
}

// removeAt splices one participant out of the lineup. Called with the lock
// held and a valid index.
func (s *service) removeAt(ctx context.Context, index int) (*RemoveParticipantOutput, error) {
	g := s.state

	removed := g.Participants[index]
	g.Participants = append(g.Participants[:index], g.Participants[index+1:]...)

	if g.CurrentParticipantIndex >= len(g.Participants) {
		g.CurrentParticipantIndex = 0
		if len(g.Participants) > 0 {
			g.CurrentParticipantIndex = len(g.Participants) - 1
		}
	}
	if len(g.Participants) == 0 {
		g.RoundInProgress = false
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.publish([]Event{{
		Type:            EventParticipantRemoved,
		ParticipantID:   removed.ID,
		ParticipantName: removed.Name,
		Round:           g.CurrentRound,
	}})

	removedCopy := *removed
	return &RemoveParticipantOutput{Removed: &removedCopy}, nil
}

// UpdateSettings replaces the table settings. Rejected while a roll is in
// flight; the new configuration takes effect on the next roll.
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolling {
		return nil, ErrAlreadyRolling
	}

	s.state.Settings = input.Settings.Repair()

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	s.publish([]Event{{Type: EventSettingsUpdated, Round: s.state.CurrentRound}})

	return &UpdateSettingsOutput{Settings: s.state.Settings}, nil
}

// GetState returns an independent snapshot of the table state
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetStateOutput{State: s.state.Clone()}, nil
}

// GetLeaderboard returns the standings sorted by score, highest first.
// Participants sharing the top score are all flagged as leaders.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.state

	sorted := make([]*models.Participant, len(g.Participants))
	copy(sorted, g.Participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	standings := make([]*models.Standing, len(sorted))
	for i, p := range sorted {
		standings[i] = &models.Standing{
			Rank:          i + 1,
			ParticipantID: p.ID,
			Name:          p.Name,
			Score:         p.Score,
			Rounds:        p.Rounds,
			IsLeader:      p.Score == sorted[0].Score,
		}
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{Standings: standings},
	}, nil
}

// GetHistory returns the most recent roll records without discarding the
// underlying list
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := DefaultHistoryWindow
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	g := s.state
	if limit > len(g.History) {
		limit = len(g.History)
	}

	records := make([]*models.RollRecord, limit)
	for i := 0; i < limit; i++ {
		record := *g.History[i]
		record.Results = append([]int(nil), g.History[i].Results...)
		records[i] = &record
	}

	return &GetHistoryOutput{
		Records: records,
		Total:   len(g.History),
	}, nil
}

// GetSessionHistory returns the most recent session summaries
func (s *service) GetSessionHistory(ctx context.Context, input *GetSessionHistoryInput) (*GetSessionHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := DefaultHistoryWindow
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	g := s.state
	if limit > len(g.SessionsHistory) {
		limit = len(g.SessionsHistory)
	}

	summaries := make([]*models.SessionSummary, limit)
	for i := 0; i < limit; i++ {
		summary := *g.SessionsHistory[i]
		summary.Participants = append([]models.ParticipantResult(nil), g.SessionsHistory[i].Participants...)
		summaries[i] = &summary
	}

	return &GetSessionHistoryOutput{
		Summaries: summaries,
		Total:     len(g.SessionsHistory),
	}, nil
}
