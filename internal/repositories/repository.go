package repositories

import (
	"context"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LotteryRepository defines the interface for lottery product data operations
type LotteryRepository interface {
	Create(ctx context.Context, product *models.LotteryProduct) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LotteryProduct, error)
	FindByCode(ctx context.Context, code string) (*models.LotteryProduct, error)
	FindAll(ctx context.Context) ([]*models.LotteryProduct, error)
	FindActive(ctx context.Context) ([]*models.LotteryProduct, error)
	Update(ctx context.Context, product *models.LotteryProduct) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RateProfileRepository defines the interface for rate profile data operations
type RateProfileRepository interface {
	Create(ctx context.Context, profile *models.RateProfile) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.RateProfile, error)
	FindAll(ctx context.Context) ([]*models.RateProfile, error)
	Update(ctx context.Context, profile *models.RateProfile) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RiskEntryRepository defines the interface for committed risk entries
type RiskEntryRepository interface {
	FindByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) ([]*models.RiskEntry, error)
	// UpsertMany writes a batch in one operation; an entry matching an existing
	// (product, date, betType, number) tuple replaces it
	UpsertMany(ctx context.Context, entries []*models.RiskEntry) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (int64, error)
}

// ResultRepository defines the interface for round results
type ResultRepository interface {
	// Upsert replaces any existing result for the same product+date
	Upsert(ctx context.Context, result *models.RoundResult) error
	FindByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (*models.RoundResult, error)
}

// AdminUserRepository defines the interface for operator accounts
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}
