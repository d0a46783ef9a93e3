package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// tipInterval is how long after a tip was shown the next one becomes due.
const tipInterval = 7 * 24 * time.Hour

// InsightsService produces the weekly spending tip. A tip is due at most
// once per week; showing one records the date so reloads within the week
// stay quiet.
type InsightsService struct {
	repo *storage.Repository
}

func NewInsightsService(repo *storage.Repository) *InsightsService {
	return &InsightsService{repo: repo}
}

// TipDue reports whether a weekly tip should be shown at now.
func (s *InsightsService) TipDue(ctx context.Context, now time.Time) (bool, error) {
	last, err := s.repo.LastTipDate(ctx)
	if err != nil {
		return false, err
	}
	return last.IsZero() || now.Sub(last) > tipInterval, nil
}

// WeeklyTip returns the tip text when one is due and marks it shown.
// shown is false when the weekly gate has not elapsed yet.
func (s *InsightsService) WeeklyTip(ctx context.Context, now time.Time) (tip string, shown bool, err error) {
	due, err := s.TipDue(ctx, now)
	if err != nil || !due {
		return "", false, err
	}

	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return "", false, err
	}
	if err := s.repo.SetLastTipDate(ctx, now); err != nil {
		return "", false, err
	}
	return GenerateTip(expenses, now), true, nil
}

// GenerateTip compares this week's spend to the previous week's and phrases
// an encouragement, a warning, or the top payment-mode bucket of the week.
func GenerateTip(expenses []models.Expense, now time.Time) string {
	if len(expenses) == 0 {
		return "Start tracking your expenses to get personalized insights!"
	}

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek := decimal.Zero
	prevWeek := decimal.Zero
	byMode := make(map[models.PaymentMode]decimal.Decimal)

	for _, e := range expenses {
		switch {
		case !e.Date.Before(weekAgo) && !e.Date.After(now):
			thisWeek = thisWeek.Add(e.Amount)
			byMode[e.PaymentMode] = byMode[e.PaymentMode].Add(e.Amount)
		case !e.Date.Before(twoWeeksAgo) && !e.Date.After(weekAgo):
			prevWeek = prevWeek.Add(e.Amount)
		}
	}

	switch {
	case prevWeek.IsPositive() && thisWeek.LessThan(prevWeek):
		return fmt.Sprintf("You spent %d%% less than last week! Keep going. 🎉",
			weekDeltaPercent(prevWeek.Sub(thisWeek), prevWeek))
	case prevWeek.IsPositive() && thisWeek.GreaterThan(prevWeek):
		return fmt.Sprintf("Your spending increased by %d%% compared to last week. 📈",
			weekDeltaPercent(thisWeek.Sub(prevWeek), prevWeek))
	}

	topMode, topAmount := models.PaymentMode(""), decimal.Zero
	for mode, amount := range byMode {
		if amount.GreaterThan(topAmount) {
			topMode, topAmount = mode, amount
		}
	}
	if topMode != "" {
		return fmt.Sprintf("Top category: %s – ₹%s this week. 💡", topMode, formatGrouped(topAmount))
	}
	return "Keep tracking your expenses to see more personalized insights!"
}

func weekDeltaPercent(delta, base decimal.Decimal) int {
	f, _ := delta.Div(base).Mul(oneHundred).Float64()
	return int(math.Round(f))
}

// formatGrouped renders an amount with comma thousands separators, matching
// how the tip amounts have always been displayed.
func formatGrouped(d decimal.Decimal) string {
	s := d.String()
	intPart, frac, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
