package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskduty-service/internal/service"
)

type PlayerHandler struct {
	Service *service.PlayerService
}

func NewPlayerHandler(s *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{Service: s}
}

func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id := c.Param("id")
	player, err := h.Service.GetPlayer(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *PlayerHandler) GetPlayerProgress(c *gin.Context) {
	id := c.Param("id")
	records, err := h.Service.GetPlayerProgress(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
