package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleembhd/pocket-pals-budget/models"
)

func TestExportEmptyState(t *testing.T) {
	svc := NewExportService(newTestRepo(t))
	now := time.Now()

	doc, err := svc.Export(context.Background(), now)
	require.NoError(t, err)

	assert.NotNil(t, doc.Expenses)
	assert.NotNil(t, doc.Goals)
	assert.NotNil(t, doc.Badges)
	assert.True(t, doc.Budget.IsZero())
	assert.Equal(t, 1, doc.UserLevel)
	assert.Equal(t, 0, doc.UserXP)
	assert.Equal(t, now, doc.ExportDate)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"expenses":[]`, "empty collections marshal as arrays, not null")
	assert.Contains(t, string(raw), `"profileData"`)
}

func TestExportSnapshotsEverything(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewExportService(repo)
	ctx := context.Background()
	now := time.Now()

	var expenses []models.Expense
	for i := 0; i < 5; i++ {
		expenses = append(expenses, expenseOn(now, "10", models.PaymentUPI, "Snack"))
	}
	require.NoError(t, repo.SaveExpenses(ctx, expenses))
	require.NoError(t, repo.SetBudget(ctx, dec("1000")))
	require.NoError(t, repo.SaveGoals(ctx, []models.Goal{{ID: "g1", Name: "Trip", TargetAmount: dec("500")}}))

	doc, err := svc.Export(ctx, now)
	require.NoError(t, err)

	assert.Len(t, doc.Expenses, 5)
	assert.True(t, doc.Budget.Equal(dec("1000")))
	assert.Len(t, doc.Goals, 1)
	assert.Equal(t, 1, doc.UserLevel)
	assert.Equal(t, 50, doc.UserXP)
	assert.NotEmpty(t, doc.Badges, "derived badges ride along in the export")
}

func TestResetClearsEverything(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewExportService(repo)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SaveExpenses(ctx, []models.Expense{expenseOn(now, "10", models.PaymentCard, "")}))
	require.NoError(t, repo.SetBudget(ctx, dec("1000")))
	require.NoError(t, repo.SaveProfile(ctx, models.Profile{Name: "A", Email: "a@b.c", Phone: "1"}))
	require.NoError(t, repo.SetLastAlertPercent(ctx, 50))
	require.NoError(t, repo.SetLastTipDate(ctx, now))

	require.NoError(t, svc.Reset(ctx))

	expenses, err := repo.Expenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	budget, err := repo.Budget(ctx)
	require.NoError(t, err)
	assert.True(t, budget.IsZero())

	profile, err := repo.Profile(ctx)
	require.NoError(t, err)
	assert.False(t, profile.Complete())

	last, err := repo.LastAlertPercent(ctx)
	require.NoError(t, err)
	assert.Zero(t, last, "a fresh start re-arms the budget alerts")

	tip, err := repo.LastTipDate(ctx)
	require.NoError(t, err)
	assert.True(t, tip.IsZero())
}
