package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"github.com/huaydee/lotto-admin-backend/internal/schedule"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// LotteryService handles lottery product business logic
type LotteryService struct {
	lotteryRepo repositories.LotteryRepository
}

// NewLotteryService creates a new LotteryService
func NewLotteryService(lotteryRepo repositories.LotteryRepository) *LotteryService {
	return &LotteryService{lotteryRepo: lotteryRepo}
}

// CreateLottery creates a new lottery product
func (s *LotteryService) CreateLottery(ctx context.Context, product *models.LotteryProduct) (*models.LotteryProduct, error) {
	existing, err := s.lotteryRepo.FindByCode(ctx, product.Code)
	if err == nil && existing != nil {
		return nil, errors.New("a lottery with this code already exists")
	}
	if err != nil && err != mongo.ErrNoDocuments {
		slog.Error("Failed to check for existing lottery", "error", err, "code", product.Code)
		return nil, fmt.Errorf("failed to check for existing lottery: %w", err)
	}

	if err := s.lotteryRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create lottery: %w", err)
	}
	return product, nil
}

// GetLotteryByID retrieves a lottery product by ID
func (s *LotteryService) GetLotteryByID(ctx context.Context, id primitive.ObjectID) (*models.LotteryProduct, error) {
	return s.lotteryRepo.FindByID(ctx, id)
}

// GetLotteries retrieves lottery products, optionally only active ones
func (s *LotteryService) GetLotteries(ctx context.Context, activeOnly bool) ([]*models.LotteryProduct, error) {
	if activeOnly {
		return s.lotteryRepo.FindActive(ctx)
	}
	return s.lotteryRepo.FindAll(ctx)
}

// UpdateLottery updates a lottery product
func (s *LotteryService) UpdateLottery(ctx context.Context, product *models.LotteryProduct) error {
	return s.lotteryRepo.Update(ctx, product)
}

// DeleteLottery deletes a lottery product
func (s *LotteryService) DeleteLottery(ctx context.Context, id primitive.ObjectID) error {
	return s.lotteryRepo.Delete(ctx, id)
}

// GetRoundStatus resolves the current betting window for a product
func (s *LotteryService) GetRoundStatus(ctx context.Context, id primitive.ObjectID, now time.Time) (*models.RoundStatusResponse, error) {
	product, err := s.lotteryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RoundStatusResponse{
		LotteryID:   product.ID.Hex(),
		IsOpen:      product.IsActive && schedule.IsOpen(product, now),
		NextCloseAt: schedule.NextClose(product, now),
	}, nil
}
