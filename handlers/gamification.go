package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aleembhd/pocket-pals-budget/services"
)

type GamificationHandler struct {
	Gamification *services.GamificationService
}

// GetSnapshot recomputes level, XP and the badge set from current state.
func (h *GamificationHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.Gamification.Snapshot(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute gamification state"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
