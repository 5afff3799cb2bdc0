package services

import (
	"context"
	"fmt"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RateService handles rate profile business logic
type RateService struct {
	rateRepo repositories.RateProfileRepository
}

// NewRateService creates a new RateService
func NewRateService(rateRepo repositories.RateProfileRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

// CreateProfile creates a new rate profile
func (s *RateService) CreateProfile(ctx context.Context, profile *models.RateProfile) (*models.RateProfile, error) {
	if err := s.rateRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create rate profile: %w", err)
	}
	return profile, nil
}

// GetProfileByID retrieves a rate profile by ID
func (s *RateService) GetProfileByID(ctx context.Context, id primitive.ObjectID) (*models.RateProfile, error) {
	return s.rateRepo.FindByID(ctx, id)
}

// GetProfiles retrieves all rate profiles
func (s *RateService) GetProfiles(ctx context.Context) ([]*models.RateProfile, error) {
	return s.rateRepo.FindAll(ctx)
}

// UpdateProfile updates a rate profile
func (s *RateService) UpdateProfile(ctx context.Context, profile *models.RateProfile) error {
	return s.rateRepo.Update(ctx, profile)
}

// DeleteProfile deletes a rate profile
func (s *RateService) DeleteProfile(ctx context.Context, id primitive.ObjectID) error {
	return s.rateRepo.Delete(ctx, id)
}

// EffectiveRates expands a profile over the full bet type catalog. A bet type
// the profile has no entry for comes back with pay=0, meaning the type is fully
// closed, never an error.
func (s *RateService) EffectiveRates(ctx context.Context, id primitive.ObjectID) (map[models.BetTypeKey]models.BetTypeRate, error) {
	profile, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rates := make(map[models.BetTypeKey]models.BetTypeRate, len(models.BetTypeCatalog))
	for _, spec := range models.BetTypeCatalog {
		rates[spec.Key] = profile.RateFor(spec.Key)
	}
	return rates, nil
}
