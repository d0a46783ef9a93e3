package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleembhd/pocket-pals-budget/models"
)

func TestPercentSpent(t *testing.T) {
	assert.Equal(t, 50.0, PercentSpent(dec("3000"), dec("1500")))
	assert.Equal(t, 0.0, PercentSpent(decimal.Zero, dec("1500")), "zero budget reads as 0%")
	assert.Equal(t, 100.0, PercentSpent(dec("100"), dec("250")), "overspend caps at 100%")
}

func TestTotalSpent(t *testing.T) {
	now := time.Now()
	expenses := []models.Expense{
		expenseOn(now, "100.50", models.PaymentCard, "Groceries"),
		expenseOn(now.AddDate(0, -1, 0), "200", models.PaymentUPI, "Rent"),
	}
	assert.True(t, TotalSpent(expenses).Equal(dec("300.50")), "total is lifetime, not calendar-month")
	assert.True(t, TotalSpent(nil).IsZero())
}

func TestTodaysSpendAndStatus(t *testing.T) {
	// 30-day month, budget 3000, so the daily budget is 100.
	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	budget := dec("3000")

	daily := DailyBudget(budget, now)
	assert.True(t, daily.Equal(dec("100")))

	expenses := []models.Expense{
		expenseOn(now.Add(-2*time.Hour), "40", models.PaymentCash, "Lunch"),
		expenseOn(now.AddDate(0, 0, -1), "500", models.PaymentCard, "Yesterday"),
	}
	todays := TodaysSpend(expenses, now)
	assert.True(t, todays.Equal(dec("40")), "only today's expenses count")

	assert.Equal(t, "good", TodayStatus(dec("40"), daily))
	assert.Equal(t, "good", TodayStatus(dec("50"), daily), "exactly half is still good")
	assert.Equal(t, "warning", TodayStatus(dec("80"), daily))
	assert.Equal(t, "warning", TodayStatus(dec("100"), daily), "exactly the daily budget is a warning")
	assert.Equal(t, "danger", TodayStatus(dec("150"), daily))
}

func TestBudgetSetRejectsNonPositive(t *testing.T) {
	svc := NewBudgetService(newTestRepo(t))
	ctx := context.Background()

	err := svc.Set(ctx, decimal.Zero)
	assert.True(t, models.IsValidationError(err))

	err = svc.Set(ctx, dec("-10"))
	assert.True(t, models.IsValidationError(err))

	require.NoError(t, svc.Set(ctx, dec("3000")))
	budget, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, budget.Equal(dec("3000")))
}

func TestBudgetStatus(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBudgetService(repo)
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SetBudget(ctx, dec("3000")))
	require.NoError(t, repo.SaveExpenses(ctx, []models.Expense{
		expenseOn(now, "40", models.PaymentUPI, "Lunch"),
		expenseOn(now.AddDate(0, 0, -3), "860", models.PaymentCard, "Shopping"),
	}))

	status, err := svc.Status(ctx, now)
	require.NoError(t, err)

	assert.True(t, status.TotalSpent.Equal(dec("900")))
	assert.Equal(t, 30.0, status.PercentSpent)
	assert.True(t, status.Remaining.Equal(dec("2100")))
	assert.Equal(t, 2, status.ExpenseCount)
	assert.True(t, status.TodaysSpend.Equal(dec("40")))
	assert.Equal(t, "good", status.TodayStatus)
	require.NotNil(t, status.Alert, "30% spent crosses the 25% threshold")
	assert.Equal(t, 25, status.Alert.Threshold)
}

func TestAlertThresholdFiresOnce(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBudgetService(repo)
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SetBudget(ctx, dec("1000")))
	require.NoError(t, repo.SaveExpenses(ctx, []models.Expense{
		expenseOn(now, "300", models.PaymentCard, ""),
	}))

	status, err := svc.Status(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, status.Alert)
	assert.Equal(t, 25, status.Alert.Threshold)

	// Same spend again: the threshold was acknowledged, so it stays quiet.
	status, err = svc.Status(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, status.Alert)

	// Jumping past 50 and 75 raises only the highest crossed threshold.
	require.NoError(t, repo.SaveExpenses(ctx, []models.Expense{
		expenseOn(now, "800", models.PaymentCard, ""),
	}))
	status, err = svc.Status(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, status.Alert)
	assert.Equal(t, 75, status.Alert.Threshold)

	status, err = svc.Status(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, status.Alert)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, daysInMonth(time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, daysInMonth(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, daysInMonth(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
}
