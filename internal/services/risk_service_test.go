package services

import (
	"context"
	"errors"
	"testing"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommitBatchValidatesShape(t *testing.T) {
	repo := newFakeRiskRepo()
	svc := NewRiskService(repo)

	items := []models.RiskItem{
		{Number: "12", BetType: models.BetTypeTwoUp},
		{Number: "567", BetType: models.BetTypeTwoUp},  // wrong length
		{Number: "1x", BetType: models.BetTypeTwoDown}, // non-numeric
		{Number: "12", BetType: "4up"},                 // unknown bet type
		{Number: "999", BetType: models.BetTypeThreeTop},
	}

	committed, rejected, err := svc.CommitBatch(context.Background(), primitive.NewObjectID(), "2025-03-16", models.RiskClose, items)
	if err != nil {
		t.Fatalf("Expected batch to commit, got %v", err)
	}
	if committed != 2 {
		t.Errorf("Expected 2 committed, got %d", committed)
	}
	if rejected != 3 {
		t.Errorf("Expected 3 rejected, got %d", rejected)
	}
}

func TestCommitBatchEmptyAfterValidation(t *testing.T) {
	repo := newFakeRiskRepo()
	svc := NewRiskService(repo)

	items := []models.RiskItem{{Number: "9999", BetType: models.BetTypeTwoUp}}
	_, rejected, err := svc.CommitBatch(context.Background(), primitive.NewObjectID(), "2025-03-16", models.RiskClose, items)
	if !errors.Is(err, ErrNothingPending) {
		t.Errorf("Expected ErrNothingPending, got %v", err)
	}
	if rejected != 1 {
		t.Errorf("Expected 1 rejected, got %d", rejected)
	}
	if len(repo.entries) != 0 {
		t.Error("Expected no write attempted for an empty valid set")
	}
}

func TestDistributePreview(t *testing.T) {
	svc := NewRiskService(newFakeRiskRepo())

	resp := svc.Distribute("12 123 5")
	if resp.Inserted != 6 {
		t.Errorf("Expected 6 insertions, got %d", resp.Inserted)
	}
	if got := resp.Buckets[models.BetTypeTwoDown]; len(got) != 1 || got[0] != "12" {
		t.Errorf("Expected 2down bucket [12], got %v", got)
	}
}
