package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// SettlementClient is the boundary to the remote settlement service. Posting a
// result is an idempotent replace: re-posting for an already-settled round
// rolls back prior payouts and recomputes, it never adjusts incrementally.
// The settlement side checks every ticket number against the committed risk
// entries (CLOSE refunds the stake, HALF halves the payout rate) and reports a
// summary. No payout computation happens in this service.
type SettlementClient interface {
	PostResult(ctx context.Context, productID, roundDate, top3, bottom2 string) (*models.SettlementSummary, error)
}

// ErrInvalidResult is returned when a posted result is not shaped as 3+2 digits
var ErrInvalidResult = errors.New("result must be 3 top digits and 2 bottom digits")

// ResultService stores round results and forwards them to settlement
type ResultService struct {
	resultRepo repositories.ResultRepository
	settlement SettlementClient
}

// NewResultService creates a new ResultService
func NewResultService(resultRepo repositories.ResultRepository, settlement SettlementClient) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		settlement: settlement,
	}
}

// PostResult stores the winning result for a round and triggers settlement.
// Re-posting replaces the stored result and recomputes all payouts.
func (s *ResultService) PostResult(ctx context.Context, productID primitive.ObjectID, req *models.PostResultRequest) (*models.SettlementSummary, error) {
	if len(digitsOnly(req.Top3)) != 3 || req.Top3 != digitsOnly(req.Top3) ||
		len(digitsOnly(req.Bottom2)) != 2 || req.Bottom2 != digitsOnly(req.Bottom2) {
		return nil, ErrInvalidResult
	}

	result := &models.RoundResult{
		LotteryProductID: productID,
		RoundDate:        req.RoundDate,
		Top3:             req.Top3,
		Bottom2:          req.Bottom2,
	}
	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store round result: %w", err)
	}

	summary, err := s.settlement.PostResult(ctx, productID.Hex(), req.RoundDate, req.Top3, req.Bottom2)
	if err != nil {
		slog.Error("Settlement service rejected posted result", "error", err,
			"productId", productID.Hex(), "roundDate", req.RoundDate)
		return nil, fmt.Errorf("settlement failed: %w", err)
	}

	slog.Info("Round settled", "productId", productID.Hex(), "roundDate", req.RoundDate,
		"tickets", summary.TotalTicketsProcessed, "winners", summary.TotalWinners)
	return summary, nil
}

// GetResult retrieves the stored result for a round
func (s *ResultService) GetResult(ctx context.Context, productID primitive.ObjectID, roundDate string) (*models.RoundResult, error) {
	return s.resultRepo.FindByRound(ctx, productID, roundDate)
}
