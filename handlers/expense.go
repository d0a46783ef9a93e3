package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
)

type ExpenseHandler struct {
	Ledger *services.LedgerService
}

type createExpenseRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  string          `json:"paymentMode"`
	Description  string          `json:"description"`
	PayeeName    string          `json:"payeeName"`
	PayeeAddress string          `json:"payeeAddress"`
}

// ListExpenses returns the full ledger, newest first.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records a new expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Ledger.Add(c.Request.Context(), services.ExpenseInput{
		Amount:       req.Amount,
		PaymentMode:  models.PaymentMode(req.PaymentMode),
		Description:  req.Description,
		PayeeName:    req.PayeeName,
		PayeeAddress: req.PayeeAddress,
	}, time.Now())
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}
