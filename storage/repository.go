package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/models"
)

// Repository exposes typed access to each persisted collection. A value that
// is absent or fails to parse is treated as empty/default and logged, never
// surfaced as an error: a corrupt document must not take the app down.
// Store I/O errors still propagate.
type Repository struct {
	kv  KV
	log *logrus.Logger
}

func NewRepository(kv KV, log *logrus.Logger) *Repository {
	return &Repository{kv: kv, log: log}
}

// Expenses returns the ledger, newest first (callers prepend on insert).
func (r *Repository) Expenses(ctx context.Context) ([]models.Expense, error) {
	raw, ok, err := r.kv.Get(ctx, KeyExpenses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var expenses []models.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as empty", KeyExpenses)
		return nil, nil
	}
	return expenses, nil
}

func (r *Repository) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	raw, err := json.Marshal(expenses)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyExpenses, string(raw))
}

// Budget returns the configured monthly budget, zero when unset.
func (r *Repository) Budget(ctx context.Context) (decimal.Decimal, error) {
	raw, ok, err := r.kv.Get(ctx, KeyBudget)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, nil
	}

	budget, err := decimal.NewFromString(raw)
	if err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as zero", KeyBudget)
		return decimal.Zero, nil
	}
	return budget, nil
}

func (r *Repository) SetBudget(ctx context.Context, budget decimal.Decimal) error {
	return r.kv.Set(ctx, KeyBudget, budget.String())
}

func (r *Repository) Goals(ctx context.Context) ([]models.Goal, error) {
	raw, ok, err := r.kv.Get(ctx, KeyGoals)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var goals []models.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as empty", KeyGoals)
		return nil, nil
	}
	return goals, nil
}

func (r *Repository) SaveGoals(ctx context.Context, goals []models.Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyGoals, string(raw))
}

func (r *Repository) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	raw, ok, err := r.kv.Get(ctx, KeyProfile)
	if err != nil || !ok {
		return profile, err
	}

	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as empty", KeyProfile)
		return models.Profile{}, nil
	}
	return profile, nil
}

func (r *Repository) SaveProfile(ctx context.Context, profile models.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyProfile, string(raw))
}

// LastAlertPercent is the highest budget threshold already surfaced to the
// user. Zero means no alert has fired yet.
func (r *Repository) LastAlertPercent(ctx context.Context) (int, error) {
	raw, ok, err := r.kv.Get(ctx, KeyLastAlert)
	if err != nil || !ok {
		return 0, err
	}

	last, err := strconv.Atoi(raw)
	if err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as zero", KeyLastAlert)
		return 0, nil
	}
	return last, nil
}

func (r *Repository) SetLastAlertPercent(ctx context.Context, percent int) error {
	return r.kv.Set(ctx, KeyLastAlert, strconv.Itoa(percent))
}

// LastTipDate is when the weekly tip was last shown; zero time when never.
func (r *Repository) LastTipDate(ctx context.Context) (time.Time, error) {
	raw, ok, err := r.kv.Get(ctx, KeyLastTip)
	if err != nil || !ok {
		return time.Time{}, err
	}

	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		r.log.WithError(err).Warnf("malformed %s document, treating as never", KeyLastTip)
		return time.Time{}, nil
	}
	return last, nil
}

func (r *Repository) SetLastTipDate(ctx context.Context, when time.Time) error {
	return r.kv.Set(ctx, KeyLastTip, when.Format(time.RFC3339))
}

// Reset deletes every persisted key. The store has no multi-key transaction,
// so this is a best-effort sequential delete; the first failure is returned
// after attempting the remaining keys.
func (r *Repository) Reset(ctx context.Context) error {
	var firstErr error
	for _, key := range allKeys {
		if err := r.kv.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
