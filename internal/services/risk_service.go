package services

import (
	"context"
	"fmt"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// RiskService manages the committed risk entry set over storage. The stateful
// editing side lives in RiskSession; this service is the storage boundary the
// HTTP layer talks to.
type RiskService struct {
	riskRepo repositories.RiskEntryRepository
}

// NewRiskService creates a new RiskService
func NewRiskService(riskRepo repositories.RiskEntryRepository) *RiskService {
	return &RiskService{riskRepo: riskRepo}
}

// GetRound retrieves the committed entries for one product and round date
func (s *RiskService) GetRound(ctx context.Context, productID primitive.ObjectID, roundDate string) ([]*models.RiskEntry, error) {
	entries, err := s.riskRepo.FindByRound(ctx, productID, roundDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk entries: %w", err)
	}
	return entries, nil
}

// CommitBatch validates and writes a batch of risk items with a uniform risk
// type. Items whose number does not match the bet type's digit length, or
// contains non-digit characters, are dropped and counted as rejected rather
// than failing the batch. An empty valid set is reported via ErrNothingPending
// before any write is attempted.
func (s *RiskService) CommitBatch(ctx context.Context, productID primitive.ObjectID, roundDate string, riskType models.RiskType, items []models.RiskItem) (committed, rejected int, err error) {
	var entries []*models.RiskEntry
	seen := make(map[models.BetTypeKey]map[string]bool)

	for _, item := range items {
		spec, ok := models.GetBetTypeSpec(item.BetType)
		if !ok {
			rejected++
			continue
		}
		number := digitsOnly(item.Number)
		if len(number) != spec.DigitLength || number != item.Number {
			rejected++
			continue
		}
		if seen[item.BetType] == nil {
			seen[item.BetType] = make(map[string]bool)
		}
		if seen[item.BetType][number] {
			continue
		}
		seen[item.BetType][number] = true
		entries = append(entries, &models.RiskEntry{
			LotteryProductID: productID,
			RoundDate:        roundDate,
			BetType:          item.BetType,
			Number:           number,
			RiskType:         riskType,
		})
	}

	if len(entries) == 0 {
		return 0, rejected, ErrNothingPending
	}

	if err := s.riskRepo.UpsertMany(ctx, entries); err != nil {
		slog.Error("Failed to commit risk batch", "error", err,
			"productId", productID.Hex(), "roundDate", roundDate)
		return 0, rejected, fmt.Errorf("failed to commit risk batch: %w", err)
	}
	return len(entries), rejected, nil
}

// DeleteEntry removes one committed entry
func (s *RiskService) DeleteEntry(ctx context.Context, id primitive.ObjectID) error {
	if err := s.riskRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete risk entry: %w", err)
	}
	return nil
}

// ClearRound removes every committed entry for one product and round date
func (s *RiskService) ClearRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (int64, error) {
	deleted, err := s.riskRepo.DeleteByRound(ctx, productID, roundDate)
	if err != nil {
		return 0, fmt.Errorf("failed to clear risk entries: %w", err)
	}
	slog.Warn("Cleared all risk entries for round",
		"productId", productID.Hex(), "roundDate", roundDate, "deleted", deleted)
	return deleted, nil
}

// Distribute runs the free-text distribution against a throwaway session and
// reports the resulting buckets. Used by the bulk entry screen to preview how
// pasted numbers classify before the operator commits.
func (s *RiskService) Distribute(text string) *models.DistributeResponse {
	session := NewRiskSession(s.riskRepo, primitive.NilObjectID, "")
	inserted := session.DistributeFreeText(text)
	return &models.DistributeResponse{
		Inserted: inserted,
		Buckets:  session.Pending(),
	}
}
