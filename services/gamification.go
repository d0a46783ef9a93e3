package services

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

const xpPerExpense = 10

var superSaverRatio = decimal.NewFromFloat(0.7)

// ComputeLevel derives the level/XP pair from the number of logged expenses.
//
// The computation order matters: total XP first, then the level from total
// XP, then XP-within-level as the modulus against the just-computed level's
// span. Beyond level 1 this does not yield evenly spaced levels, but it is
// the progression users have always seen, so it stays.
func ComputeLevel(expenseCount int) models.LevelInfo {
	totalXP := expenseCount * xpPerExpense

	level := totalXP/100 + 1
	if level < 1 {
		level = 1
	}

	span := level * 100
	inLevel := totalXP % span

	progress := int(math.Round(float64(inLevel) / float64(span) * 100))
	if progress > 100 {
		progress = 100
	}

	return models.LevelInfo{
		Level:           level,
		TotalXP:         totalXP,
		XPInLevel:       inLevel,
		XPToNextLevel:   span,
		ProgressPercent: progress,
	}
}

// ComputeBadges evaluates the fixed badge rule set against current state.
// Rules are independent, not mutually exclusive, and nothing is persisted:
// a badge whose condition no longer holds simply disappears on the next
// computation. EarnedAt is the compute instant.
func ComputeBadges(expenses []models.Expense, budget decimal.Decimal, profileComplete bool, now time.Time) []models.Badge {
	badges := []models.Badge{}
	award := func(id, name, description, icon string, category models.BadgeCategory) {
		badges = append(badges, models.Badge{
			ID:          id,
			Name:        name,
			Description: description,
			Icon:        icon,
			Category:    category,
			EarnedAt:    now,
		})
	}

	if len(expenses) >= 5 {
		award("1", "Expense Tracker", "Logged 5 expenses", "📊", models.BadgeConsistency)
	}
	if len(expenses) >= 10 {
		award("2", "Tracking Pro", "Logged 10 expenses", "🏆", models.BadgeConsistency)
	}
	for _, e := range expenses {
		if e.PaymentMode == models.PaymentUPI {
			award("3", "Digital Payer", "Made a UPI payment", "📱", models.BadgePayment)
			break
		}
	}
	if budget.IsPositive() && TotalSpent(expenses).LessThan(budget.Mul(superSaverRatio)) {
		award("4", "Super Saver", "Kept spending under 70% of budget", "💰", models.BadgeSavings)
	}
	if profileComplete {
		award("5", "Profile Master", "Completed your profile details", "👤", models.BadgeSpecial)
	}

	return badges
}

// GamificationSnapshot bundles the derived level and badge set.
type GamificationSnapshot struct {
	Level  models.LevelInfo `json:"level"`
	Badges []models.Badge   `json:"badges"`
}

// GamificationService recomputes level and badges from current state on
// every call. Nothing here is incremental or stored.
type GamificationService struct {
	repo *storage.Repository
}

func NewGamificationService(repo *storage.Repository) *GamificationService {
	return &GamificationService{repo: repo}
}

func (s *GamificationService) Snapshot(ctx context.Context, now time.Time) (GamificationSnapshot, error) {
	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return GamificationSnapshot{}, err
	}
	budget, err := s.repo.Budget(ctx)
	if err != nil {
		return GamificationSnapshot{}, err
	}
	profile, err := s.repo.Profile(ctx)
	if err != nil {
		return GamificationSnapshot{}, err
	}

	return GamificationSnapshot{
		Level:  ComputeLevel(len(expenses)),
		Badges: ComputeBadges(expenses, budget, profile.Complete(), now),
	}, nil
}
