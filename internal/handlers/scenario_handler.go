package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskduty-service/internal/models"
	"deskduty-service/internal/service"
)

type ScenarioHandler struct {
	Service *service.ScenarioService
}

func NewScenarioHandler(s *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{Service: s}
}

func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios, err := h.Service.ListScenarios(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id := c.Param("id")
	scenario, err := h.Service.GetScenario(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var scenario models.Scenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateScenario(context.Background(), &scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, scenario)
}

func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateScenario(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteScenario(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// BulkScenarioOps imports a batch of scenarios, as produced by the CSV
// formatting pipeline.
func (h *ScenarioHandler) BulkScenarioOps(c *gin.Context) {
	var req struct {
		Scenarios []models.Scenario `json:"scenarios" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, skipped, err := h.Service.BulkCreate(context.Background(), req.Scenarios)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": created, "skipped": skipped})
}
