package services

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// alertThresholds are the budget percentages that trigger a one-shot alert,
// ascending. Each fires at most once until a higher one is crossed.
var alertThresholds = [...]int{25, 50, 75, 90}

var oneHundred = decimal.NewFromInt(100)

// ThresholdAlert is raised the first time cumulative spend crosses a
// threshold the user has not been shown yet.
type ThresholdAlert struct {
	Threshold    int     `json:"threshold"`
	PercentSpent float64 `json:"percentSpent"`
}

// BudgetStatus is the derived spend-vs-budget view for the dashboard.
type BudgetStatus struct {
	Budget       decimal.Decimal `json:"budget"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	PercentSpent float64         `json:"percentSpent"`
	Remaining    decimal.Decimal `json:"remaining"`
	ExpenseCount int             `json:"expenseCount"`
	TodaysSpend  decimal.Decimal `json:"todaysSpend"`
	DailyBudget  decimal.Decimal `json:"dailyBudget"`
	TodayStatus  string          `json:"todayStatus"`
	Alert        *ThresholdAlert `json:"alert,omitempty"`
}

// BudgetService derives spend-vs-budget state from the ledger and the
// configured monthly budget.
type BudgetService struct {
	repo *storage.Repository
}

func NewBudgetService(repo *storage.Repository) *BudgetService {
	return &BudgetService{repo: repo}
}

// Set replaces the monthly budget. There is only ever one active value;
// past expenses are not re-bucketed.
func (s *BudgetService) Set(ctx context.Context, budget decimal.Decimal) error {
	if !budget.IsPositive() {
		return models.NewValidationError("budget", "must be greater than zero")
	}
	return s.repo.SetBudget(ctx, budget)
}

// Get returns the configured budget, zero when unset.
func (s *BudgetService) Get(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.Budget(ctx)
}

// Status computes the full budget view at the given instant and, as a side
// effect, records any newly crossed alert threshold.
func (s *BudgetService) Status(ctx context.Context, now time.Time) (BudgetStatus, error) {
	budget, err := s.repo.Budget(ctx)
	if err != nil {
		return BudgetStatus{}, err
	}
	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return BudgetStatus{}, err
	}

	spent := TotalSpent(expenses)
	percent := PercentSpent(budget, spent)
	todays := TodaysSpend(expenses, now)
	daily := DailyBudget(budget, now)

	alert, err := s.checkAlertThreshold(ctx, percent)
	if err != nil {
		return BudgetStatus{}, err
	}

	return BudgetStatus{
		Budget:       budget,
		TotalSpent:   spent,
		PercentSpent: percent,
		Remaining:    budget.Sub(spent),
		ExpenseCount: len(expenses),
		TodaysSpend:  todays,
		DailyBudget:  daily,
		TodayStatus:  TodayStatus(todays, daily),
		Alert:        alert,
	}, nil
}

// checkAlertThreshold finds the highest threshold crossed by percent that
// exceeds the last acknowledged one. Raising an alert persists the new
// threshold, so re-crossing it later stays silent until a higher one fires.
func (s *BudgetService) checkAlertThreshold(ctx context.Context, percent float64) (*ThresholdAlert, error) {
	last, err := s.repo.LastAlertPercent(ctx)
	if err != nil {
		return nil, err
	}

	crossed := 0
	for _, t := range alertThresholds {
		if percent >= float64(t) && t > last {
			crossed = t
		}
	}
	if crossed == 0 {
		return nil, nil
	}

	if err := s.repo.SetLastAlertPercent(ctx, crossed); err != nil {
		return nil, err
	}
	return &ThresholdAlert{Threshold: crossed, PercentSpent: percent}, nil
}

// TotalSpent sums the whole ledger. Deliberately lifetime, not
// calendar-month: the app has always compared all-time spend against the
// monthly budget and that behavior is preserved.
func TotalSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// PercentSpent is spent/budget as a percentage, capped at 100. A zero
// budget always reads as 0%.
func PercentSpent(budget, spent decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	percent, _ := spent.Div(budget).Mul(oneHundred).Float64()
	return math.Min(percent, 100)
}

// TodaysSpend sums expenses recorded on the same calendar day as now.
func TodaysSpend(expenses []models.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if sameDay(e.Date, now) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// DailyBudget is the monthly budget spread evenly over the current month.
func DailyBudget(budget decimal.Decimal, now time.Time) decimal.Decimal {
	return budget.Div(decimal.NewFromInt(int64(daysInMonth(now))))
}

// TodayStatus buckets today's spend against the daily budget: "good" up to
// half of it, "warning" up to all of it, "danger" beyond.
func TodayStatus(todaysSpend, dailyBudget decimal.Decimal) string {
	half := dailyBudget.Div(decimal.NewFromInt(2))
	switch {
	case todaysSpend.LessThanOrEqual(half):
		return "good"
	case todaysSpend.LessThanOrEqual(dailyBudget):
		return "warning"
	default:
		return "danger"
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}
