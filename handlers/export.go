package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aleembhd/pocket-pals-budget/services"
)

type ExportHandler struct {
	Export *services.ExportService
	Hub    *EventHub
}

// ExportData returns the full data export as a downloadable JSON document.
func (h *ExportHandler) ExportData(c *gin.Context) {
	now := time.Now()
	doc, err := h.Export.Export(c.Request.Context(), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	filename := fmt.Sprintf("expense-tracker-%s.json", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(http.StatusOK, doc)
}

// ResetData deletes all persisted data.
func (h *ExportHandler) ResetData(c *gin.Context) {
	if err := h.Export.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	h.Hub.Broadcast(Event{Type: EventDataReset})
	c.JSON(http.StatusOK, gin.H{"message": "All data has been cleared"})
}
