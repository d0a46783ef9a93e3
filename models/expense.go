package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted documents keep plain numeric literals so they stay
	// byte-compatible with what the SPA already has in its store.
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentMode is the closed set of ways an expense can be paid.
type PaymentMode string

const (
	PaymentCard   PaymentMode = "Card"
	PaymentUPI    PaymentMode = "UPI"
	PaymentCash   PaymentMode = "Cash"
	PaymentOnline PaymentMode = "Online"
)

// Valid reports whether m is one of the four known payment modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCash, PaymentOnline:
		return true
	}
	return false
}

// Expense is a single ledger entry. Expenses are immutable once recorded;
// the only way to remove one is a full data reset.
type Expense struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
	PayeeName    string          `json:"payeeName,omitempty"`
	PayeeAddress string          `json:"payeeAddress,omitempty"`
}
