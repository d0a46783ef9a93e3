package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal. CurrentAmount only ever grows, and never past
// TargetAmount; contributions are clamped at the target.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
}

// Completed reports whether the goal has reached its target.
func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
