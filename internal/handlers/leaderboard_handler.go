package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskduty-service/internal/service"
)

type LeaderboardHandler struct {
	Service *service.LeaderboardService
}

func NewLeaderboardHandler(s *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

// GetTopScores returns the top 10 finished sessions, highest score first.
func (h *LeaderboardHandler) GetTopScores(c *gin.Context) {
	entries, err := h.Service.TopScores(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
