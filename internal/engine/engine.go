package engine

import (
	"errors"
	"time"

	"deskduty-service/internal/models"
)

var (
	ErrSessionOver          = errors.New("session already over")
	ErrInvalidSolutionIndex = errors.New("solution index out of range")
)

// Manager owns the progression rules: answer evaluation, resource meters,
// promotion and game over. It performs no I/O.
type Manager struct {
	config *Config
}

// NewManager creates a new progression manager
func NewManager(config *Config) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &Manager{config: config}
}

// StartSession initializes a fresh session. Rank and paperwork are seeded
// from persisted player state when resuming a logged-in player; medals are
// never carried over from a prior session.
func (m *Manager) StartSession(id, playerID string, isGuest bool, carriedOverRank string, paperworkCompleted int) *PlayerSession {
	level := 1
	rank := Ranks[0]
	if idx := RankIndex(carriedOverRank); idx >= 0 {
		level = idx + 1
		rank = Ranks[idx]
	}

	return &PlayerSession{
		ID:                  id,
		PlayerID:            playerID,
		IsGuest:             isGuest,
		SanityPoints:        m.config.MaxSanity,
		ChaiLevel:           m.config.MaxChai,
		CurrentRank:         rank,
		CurrentLevel:        level,
		PaperworkCompleted:  paperworkCompleted,
		AnsweredScenarioIDs: map[string]struct{}{},
		StartTime:           time.Now(),
	}
}

// SubmitAnswer applies one answer as a single state transition and reports
// the outcome. Invalid indices and finished sessions are rejected with no
// state change.
func (m *Manager) SubmitAnswer(session *PlayerSession, scenario *models.Scenario, chosenIndex int) (*AnswerOutcome, error) {
	if session.IsOver {
		return nil, ErrSessionOver
	}
	if chosenIndex < 0 || chosenIndex >= len(scenario.Solutions) {
		return nil, ErrInvalidSolutionIndex
	}

	isCorrect := chosenIndex == scenario.CorrectSolutionIndex

	// Penalty scales with level, not with the scenario's advertised loss.
	penalty := 0
	if !isCorrect {
		base := session.CurrentLevel * m.config.SanityLossPerLevel
		penalty = int(float64(base) * m.config.SanityPenaltyMultiplier)
	}

	if isCorrect {
		session.Medals++
		session.PaperworkCompleted++
		session.CorrectAnswers++
	} else {
		session.WrongAnswers++
		session.SanityPoints = max(0, session.SanityPoints-penalty)
	}
	session.ChaiLevel = max(0, session.ChaiLevel-m.config.ChaiCostPerAnswer)

	if scenario.ID != "" {
		session.AnsweredScenarioIDs[scenario.ID] = struct{}{}
	}

	outcome := &AnswerOutcome{
		IsCorrect:     isCorrect,
		SanityPenalty: penalty,
	}

	// Sanity depletion wins over every other transition: a just-applied
	// penalty can zero sanity on the same answer that would otherwise
	// promote or continue.
	switch {
	case session.SanityPoints <= 0:
		m.finishGame(session, ReasonSanityDepleted, outcome)
	case session.WrongAnswers > m.config.MaxWrongAllowed():
		m.finishGame(session, ReasonTooManyWrong, outcome)
	case session.CorrectAnswers >= m.config.QuestionsToLevelUp:
		m.promote(session, outcome)
	}

	return outcome, nil
}

// promote advances to the next rank and resets the per-level state, or ends
// the game when the ladder is exhausted.
func (m *Manager) promote(session *PlayerSession, outcome *AnswerOutcome) {
	newLevel := session.CurrentLevel + 1
	if newLevel > len(Ranks) {
		m.finishGame(session, ReasonCompleted, outcome)
		return
	}

	session.CurrentLevel = newLevel
	session.CurrentRank = Ranks[newLevel-1]
	session.SanityPoints = m.config.MaxSanity
	session.CorrectAnswers = 0
	session.WrongAnswers = 0
	session.AnsweredScenarioIDs = map[string]struct{}{}

	outcome.Promoted = true
	outcome.NewLevel = newLevel
	outcome.NewRank = session.CurrentRank
}

// finishGame closes the session and computes the final score exactly once.
func (m *Manager) finishGame(session *PlayerSession, reason GameOverReason, outcome *AnswerOutcome) {
	session.IsOver = true
	session.GameOverReason = reason
	session.FinalScore = session.Medals*m.config.MedalScore + session.CorrectAnswers*m.config.CorrectAnswerScore

	outcome.IsOver = true
	outcome.Reason = reason
	outcome.FinalScore = session.FinalScore
}

// DrinkChai restores chai up to the cap. It never affects sanity, rank or
// termination.
func (m *Manager) DrinkChai(session *PlayerSession) error {
	if session.IsOver {
		return ErrSessionOver
	}
	session.ChaiLevel = min(m.config.MaxChai, session.ChaiLevel+m.config.ChaiPerCup)
	return nil
}

// Resign ends the session immediately.
func (m *Manager) Resign(session *PlayerSession) (*AnswerOutcome, error) {
	if session.IsOver {
		return nil, ErrSessionOver
	}
	outcome := &AnswerOutcome{}
	m.finishGame(session, ReasonResigned, outcome)
	return outcome, nil
}
