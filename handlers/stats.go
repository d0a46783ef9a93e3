package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
)

type StatsHandler struct {
	Ledger *services.LedgerService
}

func (h *StatsHandler) Categories(c *gin.Context) {
	expenses, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.GroupByCategory(expenses))
}

func (h *StatsHandler) PaymentModes(c *gin.Context) {
	expenses, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.GroupByPaymentMode(expenses))
}

func (h *StatsHandler) Daily(c *gin.Context) {
	expenses, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.GroupByDay(expenses))
}

func (h *StatsHandler) Weekly(c *gin.Context) {
	expenses, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.GroupByWeek(expenses))
}

func (h *StatsHandler) snapshot(c *gin.Context) ([]models.Expense, bool) {
	expenses, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return nil, false
	}
	return expenses, true
}
