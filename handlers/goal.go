package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
)

type GoalHandler struct {
	Goals *services.GoalService
	Hub   *EventHub
}

type createGoalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     *time.Time      `json:"deadline"`
}

type addFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.Goals.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Goals.Create(c.Request.Context(), req.Name, req.TargetAmount, req.Deadline)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// AddFunds contributes to a goal. Completing the goal pushes a celebration
// event to the stream.
func (h *GoalHandler) AddFunds(c *gin.Context) {
	var req addFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, completed, err := h.Goals.Contribute(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contribution"})
		return
	}

	if completed {
		h.Hub.Broadcast(Event{Type: EventGoalCompleted, Payload: goal})
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "completed": completed})
}
