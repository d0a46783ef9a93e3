package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// ExportDocument is the single JSON file a user can download: everything
// persisted plus the derived gamification state at export time. There is no
// import counterpart.
type ExportDocument struct {
	Expenses   []models.Expense `json:"expenses"`
	Budget     decimal.Decimal  `json:"budget"`
	Goals      []models.Goal    `json:"goals"`
	Profile    models.Profile   `json:"profileData"`
	Badges     []models.Badge   `json:"badges"`
	UserLevel  int              `json:"userLevel"`
	UserXP     int              `json:"userXp"`
	ExportDate time.Time        `json:"exportDate"`
}

// ExportService produces export documents and performs the full data reset.
type ExportService struct {
	repo *storage.Repository
}

func NewExportService(repo *storage.Repository) *ExportService {
	return &ExportService{repo: repo}
}

func (s *ExportService) Export(ctx context.Context, now time.Time) (ExportDocument, error) {
	expenses, err := s.repo.Expenses(ctx)
	if err != nil {
		return ExportDocument{}, err
	}
	budget, err := s.repo.Budget(ctx)
	if err != nil {
		return ExportDocument{}, err
	}
	goals, err := s.repo.Goals(ctx)
	if err != nil {
		return ExportDocument{}, err
	}
	profile, err := s.repo.Profile(ctx)
	if err != nil {
		return ExportDocument{}, err
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	level := ComputeLevel(len(expenses))
	return ExportDocument{
		Expenses:   expenses,
		Budget:     budget,
		Goals:      goals,
		Profile:    profile,
		Badges:     ComputeBadges(expenses, budget, profile.Complete(), now),
		UserLevel:  level.Level,
		UserXP:     level.TotalXP,
		ExportDate: now,
	}, nil
}

// Reset wipes every persisted key. Derived state falls out automatically:
// the next computation sees an empty ledger and yields level 1, zero XP and
// no badges.
func (s *ExportService) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
