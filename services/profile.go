package services

import (
	"context"

	"github.com/aleembhd/pocket-pals-budget/models"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// ProfileService owns the singleton user profile.
type ProfileService struct {
	repo *storage.Repository
}

func NewProfileService(repo *storage.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	return s.repo.Profile(ctx)
}

// Save stores the profile and reports whether this save completed it for
// the first time, which is the moment the Profile Master badge (and its
// celebration) is triggered.
func (s *ProfileService) Save(ctx context.Context, profile models.Profile) (completedNow bool, err error) {
	previous, err := s.repo.Profile(ctx)
	if err != nil {
		return false, err
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return false, err
	}
	return profile.Complete() && !previous.Complete(), nil
}
