package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// ExpenseInput is a user-submitted expense before validation.
type ExpenseInput struct {
	Amount       decimal.Decimal
	PaymentMode  models.PaymentMode
	Description  string
	PayeeName    string
	PayeeAddress string
}

// LedgerService owns the append-only expense ledger.
type LedgerService struct {
	repo *storage.Repository
}

func NewLedgerService(repo *storage.Repository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Add validates the input and prepends a new expense to the ledger, so the
// stored order stays newest-first.
func (s *LedgerService) Add(ctx context.Context, in ExpenseInput, now time.Time) (models.Expense, error) {
	if !in.Amount.IsPositive() {
		return models.Expense{}, models.NewValidationError("amount", "must be greater than zero")
	}
	if in.PaymentMode == "" {
		return models.Expense{}, models.NewValidationError("paymentMode", "must be selected")
	}
	if !in.PaymentMode.Valid() {
		return models.Expense{}, models.NewValidationError("paymentMode", "must be one of Card, UPI, Cash, Online")
	}

	expense := models.Expense{
		ID:           uuid.NewString(),
		Amount:       in.Amount,
		PaymentMode:  in.PaymentMode,
		Date:         now,
		Description:  in.Description,
		PayeeName:    in.PayeeName,
		PayeeAddress: in.PayeeAddress,
	}

	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	updated := append([]models.Expense{expense}, expenses...)
	if err := s.repo.SaveExpenses(ctx, updated); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// List returns the ledger, newest first.
func (s *LedgerService) List(ctx context.Context) ([]models.Expense, error) {
	return s.repo.Expenses(ctx)
}
