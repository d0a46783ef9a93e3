package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// GoalService manages savings goals. Goals are never deleted individually
// and contributions are never withdrawn; only a full reset removes them.
type GoalService struct {
	repo *storage.Repository
}

func NewGoalService(repo *storage.Repository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	return s.repo.Goals(ctx)
}

// Create appends a new goal with nothing saved toward it yet.
func (s *GoalService) Create(ctx context.Context, name string, target decimal.Decimal, deadline *time.Time) (models.Goal, error) {
	if strings.TrimSpace(name) == "" {
		return models.Goal{}, models.NewValidationError("name", "is required")
	}
	if !target.IsPositive() {
		return models.Goal{}, models.NewValidationError("targetAmount", "must be greater than zero")
	}

	goal := models.Goal{
		ID:            uuid.NewString(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}

	goals, err := s.repo.Goals(ctx)
	if err != nil {
		return models.Goal{}, err
	}
	if err := s.repo.SaveGoals(ctx, append(goals, goal)); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// Contribute adds funds to a goal, clamped at its target. It returns the
// updated goal and whether the goal is now complete, so the caller can
// celebrate exactly once per contribution that finishes it.
func (s *GoalService) Contribute(ctx context.Context, goalID string, amount decimal.Decimal) (models.Goal, bool, error) {
	if !amount.IsPositive() {
		return models.Goal{}, false, models.NewValidationError("amount", "must be greater than zero")
	}

	goals, err := s.repo.Goals(ctx)
	if err != nil {
		return models.Goal{}, false, err
	}

	idx := -1
	for i := range goals {
		if goals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Goal{}, false, models.NewValidationError("goalId", "is unknown")
	}

	next := goals[idx].CurrentAmount.Add(amount)
	if next.GreaterThan(goals[idx].TargetAmount) {
		next = goals[idx].TargetAmount
	}
	goals[idx].CurrentAmount = next

	if err := s.repo.SaveGoals(ctx, goals); err != nil {
		return models.Goal{}, false, err
	}
	return goals[idx], goals[idx].Completed(), nil
}
