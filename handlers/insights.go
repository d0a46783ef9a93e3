package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aleembhd/pocket-pals-budget/services"
)

// tipDisplayDelay matches the SPA's short pause before the tip toast slides
// in after a dashboard load.
const tipDisplayDelay = 2 * time.Second

type InsightsHandler struct {
	Insights *services.InsightsService
	Hub      *EventHub
}

// GetWeeklyTip returns the weekly tip if one is due, marking it shown, and
// schedules the delayed toast on the event stream.
func (h *InsightsHandler) GetWeeklyTip(c *gin.Context) {
	tip, shown, err := h.Insights.WeeklyTip(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly tip"})
		return
	}

	if !shown {
		c.JSON(http.StatusOK, gin.H{"due": false})
		return
	}

	h.Hub.BroadcastLater(tipDisplayDelay, Event{Type: EventWeeklyTip, Payload: tip})
	c.JSON(http.StatusOK, gin.H{"due": true, "tip": tip})
}
