package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleembhd/pocket-pals-budget/models"
)

func TestGroupByCategory(t *testing.T) {
	now := time.Now()
	expenses := []models.Expense{
		expenseOn(now, "100", models.PaymentCard, "Food"),
		expenseOn(now, "50", models.PaymentCash, ""),
		expenseOn(now, "50", models.PaymentUPI, "Food"),
	}

	buckets := GroupByCategory(expenses)
	require.Len(t, buckets, 2)

	assert.Equal(t, "Food", buckets[0].Name, "buckets keep first-appearance order")
	assert.True(t, buckets[0].Total.Equal(dec("150")))
	assert.Equal(t, 75, buckets[0].Percentage)

	assert.Equal(t, "Uncategorized", buckets[1].Name)
	assert.True(t, buckets[1].Total.Equal(dec("50")))
	assert.Equal(t, 25, buckets[1].Percentage)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestGroupByPaymentMode(t *testing.T) {
	now := time.Now()
	expenses := []models.Expense{
		expenseOn(now, "30", models.PaymentUPI, "a"),
		expenseOn(now, "70", models.PaymentCard, "b"),
		expenseOn(now, "100", models.PaymentUPI, "c"),
	}

	buckets := GroupByPaymentMode(expenses)
	require.Len(t, buckets, 2)
	assert.Equal(t, "UPI", buckets[0].Name)
	assert.True(t, buckets[0].Total.Equal(dec("130")))
	assert.Equal(t, 65, buckets[0].Percentage)
	assert.Equal(t, "Card", buckets[1].Name)
	assert.Equal(t, 35, buckets[1].Percentage)
}

func TestGroupByDay(t *testing.T) {
	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	var expenses []models.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, expenseOn(base.AddDate(0, 0, i), "10", models.PaymentCash, ""))
	}
	// Two expenses on the same day collapse into one bucket.
	expenses = append(expenses, expenseOn(base.AddDate(0, 0, 9).Add(time.Hour), "5", models.PaymentCash, ""))

	buckets := GroupByDay(expenses)
	require.Len(t, buckets, 7, "only the most recent 7 days survive")

	assert.Equal(t, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), buckets[0].Date)
	assert.Equal(t, "Jun 4", buckets[0].Label)
	assert.True(t, buckets[0].Total.Equal(dec("10")))

	last := buckets[6]
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), last.Date)
	assert.True(t, last.Total.Equal(dec("15")))

	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Date.Before(buckets[i].Date), "days are ascending")
	}
}

func TestGroupByWeek(t *testing.T) {
	// Sunday June 8 2025 starts a week; Saturday June 14 ends it.
	sunday := time.Date(2025, time.June, 8, 9, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		expenseOn(sunday, "100", models.PaymentCard, ""),
		expenseOn(wednesday, "50", models.PaymentCash, ""),
		expenseOn(nextMonday, "25", models.PaymentUPI, ""),
	}

	buckets := GroupByWeek(expenses)
	require.Len(t, buckets, 2)

	assert.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), buckets[0].WeekStart)
	assert.Equal(t, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), buckets[0].WeekEnd)
	assert.True(t, buckets[0].Total.Equal(dec("150")))

	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), buckets[1].WeekStart)
	assert.True(t, buckets[1].Total.Equal(dec("25")))
}

func TestPercentOfZeroTotal(t *testing.T) {
	assert.Equal(t, 0, percentOf(dec("10"), dec("0")))
}
