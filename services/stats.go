package services

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
)

// uncategorized is the fallback bucket for expenses with no description.
const uncategorized = "Uncategorized"

// StatBucket is one slice of a category or payment-mode breakdown.
// Percentage is of the total across buckets, rounded to the nearest whole.
type StatBucket struct {
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
	Percentage int             `json:"percentage"`
}

// DayBucket is one calendar day's total spend.
type DayBucket struct {
	Date  time.Time       `json:"date"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// WeekBucket is one week's total spend, weeks starting on Sunday.
type WeekBucket struct {
	WeekStart time.Time       `json:"weekStart"`
	WeekEnd   time.Time       `json:"weekEnd"`
	Total     decimal.Decimal `json:"total"`
}

// GroupByCategory buckets the ledger by description, falling back to
// "Uncategorized". Buckets keep the order in which their key first appears.
func GroupByCategory(expenses []models.Expense) []StatBucket {
	return groupBy(expenses, func(e models.Expense) string {
		if e.Description == "" {
			return uncategorized
		}
		return e.Description
	})
}

// GroupByPaymentMode buckets the ledger by payment mode, in first-appearance
// order.
func GroupByPaymentMode(expenses []models.Expense) []StatBucket {
	return groupBy(expenses, func(e models.Expense) string {
		return string(e.PaymentMode)
	})
}

func groupBy(expenses []models.Expense, keyOf func(models.Expense) string) []StatBucket {
	totals := make(map[string]decimal.Decimal)
	var order []string
	grand := decimal.Zero

	for _, e := range expenses {
		key := keyOf(e)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	buckets := make([]StatBucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, StatBucket{
			Name:       key,
			Total:      totals[key],
			Percentage: percentOf(totals[key], grand),
		})
	}
	return buckets
}

// GroupByDay buckets the ledger by calendar day, ascending, truncated to the
// most recent 7 days that have any spend.
func GroupByDay(expenses []models.Expense) []DayBucket {
	totals := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] = totals[day].Add(e.Amount)
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, DayBucket{
			Date:  day,
			Label: day.Format("Jan 2"),
			Total: totals[day],
		})
	}
	return buckets
}

// GroupByWeek buckets the ledger by week-start/week-end pairs, ascending.
func GroupByWeek(expenses []models.Expense) []WeekBucket {
	totals := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		start := day.AddDate(0, 0, -int(day.Weekday()))
		totals[start] = totals[start].Add(e.Amount)
	}

	starts := make([]time.Time, 0, len(totals))
	for start := range totals {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	buckets := make([]WeekBucket, 0, len(starts))
	for _, start := range starts {
		buckets = append(buckets, WeekBucket{
			WeekStart: start,
			WeekEnd:   start.AddDate(0, 0, 6),
			Total:     totals[start],
		})
	}
	return buckets
}

func percentOf(part, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	f, _ := part.Div(total).Mul(oneHundred).Float64()
	return int(math.Round(f))
}
