package services

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

func newTestRepo(t *testing.T) *storage.Repository {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return storage.NewRepository(storage.NewMemoryKV(), log)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func expenseOn(date time.Time, amount string, mode models.PaymentMode, description string) models.Expense {
	return models.Expense{
		ID:          "test-" + date.Format(time.RFC3339) + "-" + amount,
		Amount:      dec(amount),
		PaymentMode: mode,
		Date:        date,
		Description: description,
	}
}
