package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"deskduty-service/internal/engine"
	"deskduty-service/internal/models"
	"deskduty-service/internal/repository"
	"deskduty-service/internal/selection"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrAnswerInFlight   = errors.New("another answer is being processed")
	ErrNoScenarioInPlay = errors.New("no scenario in play, fetch the next one first")
	ErrScenarioMismatch = errors.New("answer does not match the scenario in play")
)

// activeSession pairs the engine session with the scenario currently
// presented to the player. The answering flag holds off re-entrant
// submissions until the transition, including its persistence side
// effects, has completed.
type activeSession struct {
	session      *engine.PlayerSession
	current      *models.Scenario
	answering    bool
	lastAnswerAt time.Time
}

// GameService runs play-throughs: it owns the in-memory sessions, drives
// the progression engine and mirrors state to the stores best-effort.
// A persistence failure never rolls back or blocks an in-memory
// transition; the game continues with a stale persisted copy.
type GameService struct {
	manager     *engine.Manager
	poolManager *selection.PoolManager

	SessionRepo  *repository.SessionRepository
	PlayerRepo   *repository.PlayerRepository
	ProgressRepo *repository.ProgressRepository
	Leaderboard  *LeaderboardService

	batchSize int
	nextDelay time.Duration

	mu     sync.Mutex
	active map[string]*activeSession
}

func NewGameService(
	sessionRepo *repository.SessionRepository,
	playerRepo *repository.PlayerRepository,
	progressRepo *repository.ProgressRepository,
	scenarioRepo *repository.ScenarioRepository,
	leaderboard *LeaderboardService,
	batchSize int,
	nextDelay time.Duration,
) *GameService {
	return &GameService{
		manager:      engine.NewManager(nil), // Uses default config
		poolManager:  selection.NewPoolManager(scenarioRepo),
		SessionRepo:  sessionRepo,
		PlayerRepo:   playerRepo,
		ProgressRepo: progressRepo,
		Leaderboard:  leaderboard,
		batchSize:    batchSize,
		nextDelay:    nextDelay,
		active:       map[string]*activeSession{},
	}
}

// StartSession opens a new play-through. Logged-in players resume their
// persisted rank and paperwork count; guests play with defaults and skip
// every persistence call.
func (s *GameService) StartSession(ctx context.Context, playerID string, isGuest bool) (*models.GameSession, error) {
	carriedOverRank := ""
	paperworkCompleted := 0

	if !isGuest {
		player, err := s.PlayerRepo.FindByID(ctx, playerID)
		if err != nil {
			log.Printf("Warning: failed to fetch saved progress for player %s: %v", playerID, err)
		} else {
			carriedOverRank = player.CurrentRank
			paperworkCompleted = player.PaperworkCompleted
		}
	}

	session := s.manager.StartSession(uuid.NewString(), playerID, isGuest, carriedOverRank, paperworkCompleted)

	s.mu.Lock()
	s.active[session.ID] = &activeSession{session: session}
	snapshot := snapshotOf(session)
	s.mu.Unlock()

	if !isGuest {
		if err := s.SessionRepo.Create(ctx, snapshot); err != nil {
			log.Printf("Warning: failed to persist session %s: %v", session.ID, err)
		}
	}

	return snapshot, nil
}

// NextScenario selects the next scenario for the session, solutions
// shuffled and the answer index recomputed. The configured delay gives
// the client time to show feedback for the previous answer.
func (s *GameService) NextScenario(ctx context.Context, sessionID string) (*models.Scenario, bool, error) {
	s.mu.Lock()
	entry, ok := s.active[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, false, ErrSessionNotFound
	}
	if entry.session.IsOver {
		s.mu.Unlock()
		return nil, false, engine.ErrSessionOver
	}
	if entry.answering {
		s.mu.Unlock()
		return nil, false, ErrAnswerInFlight
	}
	criteria := &selection.Criteria{
		Difficulty: entry.session.CurrentRank,
		ExcludeIDs: entry.session.AnsweredIDs(),
		BatchSize:  s.batchSize,
	}
	wait := s.nextDelay - time.Since(entry.lastAnswerAt)
	s.mu.Unlock()

	if wait > 0 {
		time.Sleep(wait)
	}

	result := s.poolManager.SelectNext(ctx, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()
	// The session may have resigned or timed out while the pool was
	// queried; a fetched scenario for a finished session is dropped.
	if entry.session.IsOver {
		return nil, false, engine.ErrSessionOver
	}
	entry.current = result.Scenario
	return result.Scenario, result.UsedFallback, nil
}

// SubmitAnswer applies one answer to the session. At most one answer per
// session may be in flight; re-entrant calls are rejected with no state
// change.
func (s *GameService) SubmitAnswer(ctx context.Context, sessionID, scenarioID string, solutionIndex int) (*engine.AnswerOutcome, *models.GameSession, error) {
	s.mu.Lock()
	entry, ok := s.active[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrSessionNotFound
	}
	if entry.answering {
		s.mu.Unlock()
		return nil, nil, ErrAnswerInFlight
	}
	if entry.session.IsOver {
		s.mu.Unlock()
		return nil, nil, engine.ErrSessionOver
	}
	if entry.current == nil {
		s.mu.Unlock()
		return nil, nil, ErrNoScenarioInPlay
	}
	if entry.current.ID != scenarioID {
		s.mu.Unlock()
		return nil, nil, ErrScenarioMismatch
	}

	scenario := entry.current
	outcome, err := s.manager.SubmitAnswer(entry.session, scenario, solutionIndex)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}

	entry.answering = true
	entry.current = nil
	entry.lastAnswerAt = time.Now()
	session := entry.session
	snapshot := snapshotOf(session)
	s.mu.Unlock()

	if !session.IsGuest {
		s.persistAnswer(ctx, snapshot, scenario.ID, outcome)
	}

	s.mu.Lock()
	entry.answering = false
	// A finished session is discarded once its final snapshot is written;
	// the sessions collection serves any later status reads.
	if session.IsOver {
		delete(s.active, sessionID)
	}
	s.mu.Unlock()

	return outcome, snapshot, nil
}

// DrinkChai restores the session's chai level.
func (s *GameService) DrinkChai(ctx context.Context, sessionID string) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.active[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.answering {
		return nil, ErrAnswerInFlight
	}
	if err := s.manager.DrinkChai(entry.session); err != nil {
		return nil, err
	}
	return snapshotOf(entry.session), nil
}

// Resign ends the session immediately and records the final score.
func (s *GameService) Resign(ctx context.Context, sessionID string) (*engine.AnswerOutcome, *models.GameSession, error) {
	s.mu.Lock()
	entry, ok := s.active[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrSessionNotFound
	}
	if entry.answering {
		s.mu.Unlock()
		return nil, nil, ErrAnswerInFlight
	}
	outcome, err := s.manager.Resign(entry.session)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}
	session := entry.session
	snapshot := snapshotOf(session)
	delete(s.active, sessionID)
	s.mu.Unlock()

	if !session.IsGuest {
		s.updateSessionDoc(ctx, snapshot)
		s.appendLeaderboard(ctx, snapshot)
	}

	return outcome, snapshot, nil
}

// GetSession returns a point-in-time snapshot of an active session.
func (s *GameService) GetSession(sessionID string) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.active[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshotOf(entry.session), nil
}

// EvictIdle drops sessions with no activity for longer than maxIdle, so
// abandoned play-throughs do not accumulate for the life of the process.
// Sessions with an answer in flight are left alone.
func (s *GameService) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	now := time.Now()
	for id, entry := range s.active {
		if entry.answering {
			continue
		}
		last := entry.lastAnswerAt
		if last.IsZero() {
			last = entry.session.StartTime
		}
		if now.Sub(last) > maxIdle {
			delete(s.active, id)
			evicted++
		}
	}
	return evicted
}

// persistAnswer mirrors one answer transition to the stores. Every write
// is best-effort: failures are logged and the session plays on.
func (s *GameService) persistAnswer(ctx context.Context, snapshot *models.GameSession, scenarioID string, outcome *engine.AnswerOutcome) {
	progress := &models.PlayerProgress{
		PlayerID:     snapshot.PlayerID,
		ScenarioID:   scenarioID,
		Success:      outcome.IsCorrect,
		SanityChange: -outcome.SanityPenalty,
		AnsweredAt:   time.Now(),
	}
	if err := s.ProgressRepo.Create(ctx, progress); err != nil {
		log.Printf("Warning: failed to record progress for player %s: %v", snapshot.PlayerID, err)
	}

	update := bson.M{
		"sanity_points":       snapshot.SanityPoints,
		"current_rank":        snapshot.CurrentRank,
		"paperwork_completed": snapshot.PaperworkCompleted,
		// Session medals are deliberately not written to medals_earned.
	}
	if err := s.PlayerRepo.Update(ctx, snapshot.PlayerID, update); err != nil {
		log.Printf("Warning: failed to update player %s: %v", snapshot.PlayerID, err)
	}

	s.updateSessionDoc(ctx, snapshot)

	if outcome.IsOver {
		s.appendLeaderboard(ctx, snapshot)
	}
}

func (s *GameService) updateSessionDoc(ctx context.Context, snapshot *models.GameSession) {
	update := bson.M{
		"sanity_points":       snapshot.SanityPoints,
		"chai_level":          snapshot.ChaiLevel,
		"current_rank":        snapshot.CurrentRank,
		"current_level":       snapshot.CurrentLevel,
		"medals":              snapshot.Medals,
		"paperwork_completed": snapshot.PaperworkCompleted,
		"correct_answers":     snapshot.CorrectAnswers,
		"wrong_answers":       snapshot.WrongAnswers,
		"answered_scenarios":  snapshot.AnsweredScenarios,
		"status":              snapshot.Status,
		"game_over_reason":    snapshot.GameOverReason,
		"final_score":         snapshot.FinalScore,
		"end_time":            snapshot.EndTime,
	}
	if err := s.SessionRepo.Update(ctx, snapshot.ID, update); err != nil {
		log.Printf("Warning: failed to update session %s: %v", snapshot.ID, err)
	}
}

func (s *GameService) appendLeaderboard(ctx context.Context, snapshot *models.GameSession) {
	username := snapshot.PlayerID
	if player, err := s.PlayerRepo.FindByID(ctx, snapshot.PlayerID); err == nil {
		username = player.Username
	}

	entry := &models.LeaderboardEntry{
		PlayerID:     snapshot.PlayerID,
		Username:     username,
		Score:        snapshot.FinalScore,
		RankAchieved: snapshot.CurrentRank,
		CreatedAt:    time.Now(),
	}
	if err := s.Leaderboard.Append(ctx, entry); err != nil {
		log.Printf("Warning: failed to save leaderboard entry for player %s: %v", snapshot.PlayerID, err)
	}
}

// snapshotOf copies the engine session into its persisted document shape.
func snapshotOf(session *engine.PlayerSession) *models.GameSession {
	status := "active"
	var endTime time.Time
	if session.IsOver {
		status = "completed"
		endTime = time.Now()
	}
	return &models.GameSession{
		ID:                 session.ID,
		PlayerID:           session.PlayerID,
		IsGuest:            session.IsGuest,
		StartTime:          session.StartTime,
		EndTime:            endTime,
		SanityPoints:       session.SanityPoints,
		ChaiLevel:          session.ChaiLevel,
		CurrentRank:        session.CurrentRank,
		CurrentLevel:       session.CurrentLevel,
		Medals:             session.Medals,
		PaperworkCompleted: session.PaperworkCompleted,
		CorrectAnswers:     session.CorrectAnswers,
		WrongAnswers:       session.WrongAnswers,
		AnsweredScenarios:  session.AnsweredIDs(),
		Status:             status,
		GameOverReason:     string(session.GameOverReason),
		FinalScore:         session.FinalScore,
	}
}
