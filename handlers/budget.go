package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
)

type BudgetHandler struct {
	Budget *services.BudgetService
	Hub    *EventHub
}

type setBudgetRequest struct {
	Budget decimal.Decimal `json:"budget"`
}

// GetStatus returns the derived budget view. Crossing a new alert threshold
// is detected here, persisted, and pushed to the event stream.
func (h *BudgetHandler) GetStatus(c *gin.Context) {
	status, err := h.Budget.Status(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute budget status"})
		return
	}

	if status.Alert != nil {
		h.Hub.Broadcast(Event{Type: EventBudgetAlert, Payload: status.Alert})
	}

	c.JSON(http.StatusOK, status)
}

// SetBudget replaces the monthly budget.
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req setBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Budget.Set(c.Request.Context(), req.Budget); err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": req.Budget, "message": "Budget updated successfully"})
}
