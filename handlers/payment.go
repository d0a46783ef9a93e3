package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/services"
	"github.com/aleembhd/pocket-pals-budget/utils"
)

type PaymentHandler struct {
	Ledger *services.LedgerService
	Log    *logrus.Logger
}

type buildLinkRequest struct {
	// Either a scanned QR value or explicit payee fields.
	QRValue      string          `json:"qrValue"`
	PayeeAddress string          `json:"payeeAddress"`
	PayeeName    string          `json:"payeeName"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note"`
}

type confirmPaymentRequest struct {
	Success      bool            `json:"success"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  string          `json:"paymentMode"`
	Description  string          `json:"description"`
	PayeeName    string          `json:"payeeName"`
	PayeeAddress string          `json:"payeeAddress"`
}

// BuildLink constructs a upi://pay deep link, resolving the payee from a
// scanned QR value when one is supplied.
func (h *PaymentHandler) BuildLink(c *gin.Context) {
	var req buildLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.QRValue != "" {
		address, name, err := services.ParseUPILink(req.QRValue)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.PayeeAddress = address
		if req.PayeeName == "" {
			req.PayeeName = name
		}
	}

	link, err := services.BuildUPILink(services.PaymentRequest{
		PayeeAddress: req.PayeeAddress,
		PayeeName:    req.PayeeName,
		Amount:       req.Amount,
		Note:         req.Note,
	})
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payment link"})
		return
	}

	h.Log.WithField("payee", utils.MaskUPIAddress(req.PayeeAddress)).Info("payment link built")
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// Confirm records the expense only when the user reports the external
// payment succeeded. A failed or cancelled payment changes nothing and the
// user may retry.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Success {
		c.JSON(http.StatusOK, gin.H{"recorded": false, "message": "Payment cancelled, no expense recorded"})
		return
	}

	mode := models.PaymentMode(req.PaymentMode)
	if req.PaymentMode == "" {
		mode = models.PaymentUPI
	}
	description := req.Description
	if description == "" && req.PayeeAddress != "" {
		description = "QR Payment"
	}

	expense, err := h.Ledger.Add(c.Request.Context(), services.ExpenseInput{
		Amount:       req.Amount,
		PaymentMode:  mode,
		Description:  description,
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

	c.JSON(http.StatusCreated, gin.H{"recorded": true, "expense": expense})
}
