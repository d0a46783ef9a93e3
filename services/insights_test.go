package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleembhd/pocket-pals-budget/models"
)

func TestGenerateTip(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	thisWeek := now.AddDate(0, 0, -2)
	lastWeek := now.AddDate(0, 0, -10)

	assert.Equal(t,
		"Start tracking your expenses to get personalized insights!",
		GenerateTip(nil, now))

	down := []models.Expense{
		expenseOn(thisWeek, "100", models.PaymentCard, ""),
		expenseOn(lastWeek, "200", models.PaymentCard, ""),
	}
	assert.Equal(t,
		"You spent 50% less than last week! Keep going. 🎉",
		GenerateTip(down, now))

	up := []models.Expense{
		expenseOn(thisWeek, "300", models.PaymentCard, ""),
		expenseOn(lastWeek, "200", models.PaymentCard, ""),
	}
	assert.Equal(t,
		"Your spending increased by 50% compared to last week. 📈",
		GenerateTip(up, now))

	// No previous week to compare against: fall back to this week's top
	// payment mode.
	topMode := []models.Expense{
		expenseOn(thisWeek, "120", models.PaymentUPI, ""),
		expenseOn(thisWeek, "30", models.PaymentCash, ""),
	}
	assert.Equal(t,
		"Top category: UPI – ₹120 this week. 💡",
		GenerateTip(topMode, now))

	grouped := []models.Expense{
		expenseOn(thisWeek, "12500", models.PaymentUPI, ""),
	}
	assert.Equal(t,
		"Top category: UPI – ₹12,500 this week. 💡",
		GenerateTip(grouped, now))

	// Expenses exist but none in the last two weeks.
	stale := []models.Expense{
		expenseOn(now.AddDate(0, -2, 0), "500", models.PaymentCard, ""),
	}
	assert.Equal(t,
		"Keep tracking your expenses to see more personalized insights!",
		GenerateTip(stale, now))
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "120", formatGrouped(dec("120")))
	assert.Equal(t, "1,500", formatGrouped(dec("1500")))
	assert.Equal(t, "1,234,567.25", formatGrouped(dec("1234567.25")))
}

func TestWeeklyTipGate(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewInsightsService(repo)
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	due, err := svc.TipDue(ctx, now)
	require.NoError(t, err)
	assert.True(t, due, "never shown means due")

	tip, shown, err := svc.WeeklyTip(ctx, now)
	require.NoError(t, err)
	assert.True(t, shown)
	assert.NotEmpty(t, tip)

	// Within the week the gate stays closed.
	_, shown, err = svc.WeeklyTip(ctx, now.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.False(t, shown)

	// Exactly seven days later is still within the interval.
	due, err = svc.TipDue(ctx, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.False(t, due)

	_, shown, err = svc.WeeklyTip(ctx, now.AddDate(0, 0, 8))
	require.NoError(t, err)
	assert.True(t, shown)
}
