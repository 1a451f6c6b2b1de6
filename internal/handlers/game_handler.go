package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"deskduty-service/internal/engine"
	"deskduty-service/internal/service"
)

var (
	// Counter for started sessions
	sessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskduty_sessions_started_total",
			Help: "Total number of game sessions started",
		},
		[]string{"mode"}, // mode: guest/player
	)

	// Counter for processed answers
	answersProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskduty_answers_total",
			Help: "Total number of answers processed",
		},
		[]string{"result"}, // result: correct/wrong
	)

	// Counter for finished games by reason
	gamesEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deskduty_games_ended_total",
			Help: "Total number of games ended",
		},
		[]string{"reason"},
	)

	// Gauge for sessions currently in play
	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deskduty_active_sessions_current",
			Help: "Current number of sessions in play",
		},
	)
)

type GameHandler struct {
	Service *service.GameService
}

func NewGameHandler(s *service.GameService) *GameHandler {
	return &GameHandler{Service: s}
}

// StartSession opens a play-through for a logged-in player, resuming
// their persisted rank and paperwork count.
func (h *GameHandler) StartSession(c *gin.Context) {
	playerID := c.GetHeader("X-User-ID")
	if playerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	session, err := h.Service.StartSession(context.Background(), playerID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session", "details": err.Error()})
		return
	}

	sessionsStarted.WithLabelValues("player").Inc()
	activeSessions.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Call /next endpoint to get the first scenario",
	})
}

// StartGuestSession opens a play-through with persistence disabled.
func (h *GameHandler) StartGuestSession(c *gin.Context) {
	session, err := h.Service.StartSession(context.Background(), "guest-"+uuid.NewString(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session", "details": err.Error()})
		return
	}

	sessionsStarted.WithLabelValues("guest").Inc()
	activeSessions.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Call /next endpoint to get the first scenario",
	})
}

// NextScenario serves the next scenario for the session. The correct
// solution index is withheld from the payload.
func (h *GameHandler) NextScenario(c *gin.Context) {
	sessionID := c.Param("id")

	scenario, usedFallback, err := h.Service.NextScenario(context.Background(), sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"scenario": gin.H{
			"id":          scenario.ID,
			"situation":   scenario.Situation,
			"solutions":   scenario.Solutions,
			"sanity_loss": scenario.SanityLoss,
			"difficulty":  scenario.Difficulty,
		},
	}
	if usedFallback {
		response["notice"] = "Scenario pool exhausted, serving a fallback scenario"
	}
	c.JSON(http.StatusOK, response)
}

// SubmitAnswer applies one answer to the session.
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var answerData struct {
		ScenarioID    string `json:"scenario_id" binding:"required"`
		SolutionIndex int    `json:"solution_index"`
	}
	if err := c.ShouldBindJSON(&answerData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	outcome, session, err := h.Service.SubmitAnswer(
		context.Background(),
		sessionID,
		answerData.ScenarioID,
		answerData.SolutionIndex,
	)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	if outcome.IsCorrect {
		answersProcessed.WithLabelValues("correct").Inc()
	} else {
		answersProcessed.WithLabelValues("wrong").Inc()
	}

	response := gin.H{
		"answer_processed": true,
		"is_correct":       outcome.IsCorrect,
		"sanity_penalty":   outcome.SanityPenalty,
		"session":          session,
	}

	if outcome.Promoted {
		response["promoted"] = true
		response["new_rank"] = outcome.NewRank
		response["new_level"] = outcome.NewLevel
		response["promotion_message"] = "Congratulations! You've been promoted to " + outcome.NewRank
	}

	if outcome.IsOver {
		gamesEnded.WithLabelValues(string(outcome.Reason)).Inc()
		activeSessions.Dec()
		response["game_over"] = true
		response["reason"] = outcome.Reason
		response["final_score"] = outcome.FinalScore
	}

	if session.ChaiLevel <= 20 {
		response["chai_warning"] = "Your chai levels are critically low! Take a chai break!"
	}

	c.JSON(http.StatusOK, response)
}

// DrinkChai restores the session's chai level.
func (h *GameHandler) DrinkChai(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := h.Service.DrinkChai(context.Background(), sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "You enjoyed a refreshing cup of chai!",
		"chai_level": session.ChaiLevel,
	})
}

// Resign ends the session immediately.
func (h *GameHandler) Resign(c *gin.Context) {
	sessionID := c.Param("id")

	outcome, session, err := h.Service.Resign(context.Background(), sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	gamesEnded.WithLabelValues(string(outcome.Reason)).Inc()
	activeSessions.Dec()

	c.JSON(http.StatusOK, gin.H{
		"game_over":   true,
		"reason":      outcome.Reason,
		"final_score": outcome.FinalScore,
		"session":     session,
	})
}

// GetSessionStatus returns a snapshot of the session.
func (h *GameHandler) GetSessionStatus(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := h.Service.GetSession(sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrInvalidSolutionIndex),
		errors.Is(err, service.ErrNoScenarioInPlay),
		errors.Is(err, service.ErrScenarioMismatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAnswerInFlight),
		errors.Is(err, engine.ErrSessionOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
