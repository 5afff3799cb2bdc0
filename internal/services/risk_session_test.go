package services

import (
	"context"
	"errors"
	"testing"

	"github.com/huaydee/lotto-admin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRiskRepo is an in-memory RiskEntryRepository with the same tuple-upsert
// semantics as the mongo implementation
type fakeRiskRepo struct {
	entries  map[string]*models.RiskEntry
	failNext error
	gate     chan struct{} // when set, FindByRound blocks until the gate closes
}

func newFakeRiskRepo() *fakeRiskRepo {
	return &fakeRiskRepo{entries: make(map[string]*models.RiskEntry)}
}

func tupleKey(e *models.RiskEntry) string {
	return e.LotteryProductID.Hex() + "|" + e.RoundDate + "|" + string(e.BetType) + "|" + e.Number
}

func (f *fakeRiskRepo) FindByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) ([]*models.RiskEntry, error) {
	if f.gate != nil {
		<-f.gate
	}
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	var out []*models.RiskEntry
	for _, e := range f.entries {
		if e.LotteryProductID == productID && e.RoundDate == roundDate {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRiskRepo) UpsertMany(ctx context.Context, entries []*models.RiskEntry) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	for _, e := range entries {
		copied := *e
		if copied.ID.IsZero() {
			copied.ID = primitive.NewObjectID()
		}
		f.entries[tupleKey(e)] = &copied
	}
	return nil
}

func (f *fakeRiskRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	for key, e := range f.entries {
		if e.ID == id {
			delete(f.entries, key)
			return nil
		}
	}
	return nil
}

func (f *fakeRiskRepo) DeleteByRound(ctx context.Context, productID primitive.ObjectID, roundDate string) (int64, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return 0, err
	}
	var deleted int64
	for key, e := range f.entries {
		if e.LotteryProductID == productID && e.RoundDate == roundDate {
			delete(f.entries, key)
			deleted++
		}
	}
	return deleted, nil
}

func newTestSession(repo *fakeRiskRepo) *RiskSession {
	return NewRiskSession(repo, primitive.NewObjectID(), "2025-03-16")
}

func TestDistributeFreeTextFansOutByLength(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	inserted := s.DistributeFreeText("12 123 5")
	if inserted != 6 {
		t.Errorf("Expected 6 insertions, got %d", inserted)
	}

	pending := s.Pending()
	for _, key := range []models.BetTypeKey{models.BetTypeTwoUp, models.BetTypeTwoDown} {
		if len(pending[key]) != 1 || pending[key][0] != "12" {
			t.Errorf("Expected %s to hold [12], got %v", key, pending[key])
		}
	}
	for _, key := range []models.BetTypeKey{models.BetTypeThreeTop, models.BetTypeThreeTod} {
		if len(pending[key]) != 1 || pending[key][0] != "123" {
			t.Errorf("Expected %s to hold [123], got %v", key, pending[key])
		}
	}
	for _, key := range []models.BetTypeKey{models.BetTypeRunUp, models.BetTypeRunDown} {
		if len(pending[key]) != 1 || pending[key][0] != "5" {
			t.Errorf("Expected %s to hold [5], got %v", key, pending[key])
		}
	}
}

func TestDistributeFreeTextIgnoresGarbageAndDuplicates(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	inserted := s.DistributeFreeText("12, 12, abc, 9999, 34\n56")
	// 12 twice dedupes, 9999 matches no bet type, 34 and 56 fan out
	if inserted != 6 {
		t.Errorf("Expected 6 insertions, got %d", inserted)
	}

	pending := s.Pending()
	if got := pending[models.BetTypeTwoUp]; len(got) != 3 {
		t.Errorf("Expected 3 numbers in 2up, got %v", got)
	}
	if len(pending[models.BetTypeThreeTop]) != 0 {
		t.Errorf("Expected no 3-digit numbers, got %v", pending[models.BetTypeThreeTop])
	}
}

func TestPasteIntoBucketStrictLength(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	accepted, rejected := s.PasteIntoBucket(models.BetTypeTwoUp, "12,34,567")
	if accepted != 2 || rejected != 1 {
		t.Errorf("Expected accepted=2 rejected=1, got accepted=%d rejected=%d", accepted, rejected)
	}

	pending := s.Pending()
	if len(pending[models.BetTypeTwoUp]) != 2 {
		t.Errorf("Expected 2 numbers in 2up, got %v", pending[models.BetTypeTwoUp])
	}
	// strict paste never touches the sibling bucket
	if len(pending[models.BetTypeTwoDown]) != 0 {
		t.Errorf("Expected 2down untouched, got %v", pending[models.BetTypeTwoDown])
	}
}

func TestTypeDigitBuffersUntilComplete(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	s.TypeDigit(models.BetTypeThreeTop, "4")
	if s.Typing(models.BetTypeThreeTop) != "4" {
		t.Errorf("Expected typing buffer '4', got %q", s.Typing(models.BetTypeThreeTop))
	}
	s.TypeDigit(models.BetTypeThreeTop, "45")
	s.TypeDigit(models.BetTypeThreeTop, "456")

	if s.Typing(models.BetTypeThreeTop) != "" {
		t.Errorf("Expected typing buffer cleared, got %q", s.Typing(models.BetTypeThreeTop))
	}
	pending := s.Pending()
	if len(pending[models.BetTypeThreeTop]) != 1 || pending[models.BetTypeThreeTop][0] != "456" {
		t.Errorf("Expected [456] pending, got %v", pending[models.BetTypeThreeTop])
	}
}

func TestTypeDigitStripsNonDigits(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	s.TypeDigit(models.BetTypeTwoUp, "1a2")
	pending := s.Pending()
	if len(pending[models.BetTypeTwoUp]) != 1 || pending[models.BetTypeTwoUp][0] != "12" {
		t.Errorf("Expected [12] pending, got %v", pending[models.BetTypeTwoUp])
	}
}

func TestTypeDigitIdempotent(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	s.TypeDigit(models.BetTypeTwoUp, "12")
	s.TypeDigit(models.BetTypeTwoUp, "12")

	pending := s.Pending()
	if len(pending[models.BetTypeTwoUp]) != 1 {
		t.Errorf("Expected exactly one occurrence of 12, got %v", pending[models.BetTypeTwoUp])
	}
}

func TestRemoveAndClearPending(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	s.DistributeFreeText("12 34")
	s.RemovePending(models.BetTypeTwoUp, "12")
	pending := s.Pending()
	if len(pending[models.BetTypeTwoUp]) != 1 || pending[models.BetTypeTwoUp][0] != "34" {
		t.Errorf("Expected [34] in 2up, got %v", pending[models.BetTypeTwoUp])
	}
	// removal is per bucket
	if len(pending[models.BetTypeTwoDown]) != 2 {
		t.Errorf("Expected 2down untouched, got %v", pending[models.BetTypeTwoDown])
	}

	s.TypeDigit(models.BetTypeThreeTop, "9")
	s.ClearAllPending()
	if s.PendingCount() != 0 {
		t.Errorf("Expected no pending after clear, got %d", s.PendingCount())
	}
	if s.Typing(models.BetTypeThreeTop) != "" {
		t.Error("Expected typing buffers emptied by clear")
	}
}

func TestCommitFlattensInCatalogOrder(t *testing.T) {
	repo := newFakeRiskRepo()
	s := newTestSession(repo)

	s.DistributeFreeText("12 123 5")
	s.SetRiskType(models.RiskHalf)

	committed, err := s.Commit(context.Background())
	if err != nil {
		t.Fatalf("Expected commit to succeed, got %v", err)
	}
	if committed != 6 {
		t.Errorf("Expected 6 committed entries, got %d", committed)
	}
	if s.PendingCount() != 0 {
		t.Errorf("Expected pending cleared after commit, got %d", s.PendingCount())
	}

	for _, e := range repo.entries {
		if e.RiskType != models.RiskHalf {
			t.Errorf("Expected uniform HALF risk type, got %s for %s", e.RiskType, e.Number)
		}
	}

	loaded := s.Committed()
	if len(loaded) != 6 {
		t.Errorf("Expected committed view refreshed with 6 entries, got %d", len(loaded))
	}
}

func TestCommitEmptyIsValidationError(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	_, err := s.Commit(context.Background())
	if !errors.Is(err, ErrNothingPending) {
		t.Errorf("Expected ErrNothingPending, got %v", err)
	}
}

func TestCommitFailurePreservesPending(t *testing.T) {
	repo := newFakeRiskRepo()
	s := newTestSession(repo)

	s.DistributeFreeText("12")
	repo.failNext = errors.New("network down")

	if _, err := s.Commit(context.Background()); err == nil {
		t.Fatal("Expected commit to fail")
	}
	if s.PendingCount() != 2 {
		t.Errorf("Expected pending preserved for retry, got %d", s.PendingCount())
	}
	if len(repo.entries) != 0 {
		t.Errorf("Expected no entries written, got %d", len(repo.entries))
	}
}

func TestCommitSupersedesEarlierTuple(t *testing.T) {
	repo := newFakeRiskRepo()
	s := newTestSession(repo)

	s.DistributeFreeText("12")
	s.SetRiskType(models.RiskClose)
	if _, err := s.Commit(context.Background()); err != nil {
		t.Fatal(err)
	}

	s.DistributeFreeText("12")
	s.SetRiskType(models.RiskHalf)
	if _, err := s.Commit(context.Background()); err != nil {
		t.Fatal(err)
	}

	entries, err := s.LoadCommitted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected one surviving entry per bucket, got %d", len(entries))
	}
	for _, e := range entries {
		if e.RiskType != models.RiskHalf {
			t.Errorf("Expected the later HALF write to win, got %s", e.RiskType)
		}
	}
}

func TestDeleteAndClearCommittedLeavePendingUntouched(t *testing.T) {
	repo := newFakeRiskRepo()
	s := newTestSession(repo)

	s.DistributeFreeText("12")
	if _, err := s.Commit(context.Background()); err != nil {
		t.Fatal(err)
	}

	s.DistributeFreeText("34")
	entries := s.Committed()
	if len(entries) == 0 {
		t.Fatal("Expected committed entries")
	}

	if err := s.DeleteCommitted(context.Background(), entries[0].ID); err != nil {
		t.Fatal(err)
	}
	if len(s.Committed()) != len(entries)-1 {
		t.Error("Expected committed view to shrink by one")
	}

	deleted, err := s.ClearAllCommitted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 remaining entry cleared, got %d", deleted)
	}
	if s.PendingCount() != 2 {
		t.Errorf("Expected pending untouched by committed deletes, got %d", s.PendingCount())
	}

	reloaded, err := s.LoadCommitted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != 0 {
		t.Errorf("Expected empty committed set after clear, got %d", len(reloaded))
	}
}

func TestSelectRoundDiscardsUnsavedWork(t *testing.T) {
	s := newTestSession(newFakeRiskRepo())

	s.DistributeFreeText("12 123")
	s.TypeDigit(models.BetTypeRunUp, "7")

	s.SelectRound(primitive.NewObjectID(), "2025-04-01")
	if s.PendingCount() != 0 {
		t.Errorf("Expected pending discarded on round switch, got %d", s.PendingCount())
	}
}

func TestStaleLoadResponseDiscarded(t *testing.T) {
	repo := newFakeRiskRepo()
	oldRound := primitive.NewObjectID()
	repo.entries[tupleKey(&models.RiskEntry{
		LotteryProductID: oldRound,
		RoundDate:        "2025-03-16",
		BetType:          models.BetTypeTwoUp,
		Number:           "12",
	})] = &models.RiskEntry{
		ID:               primitive.NewObjectID(),
		LotteryProductID: oldRound,
		RoundDate:        "2025-03-16",
		BetType:          models.BetTypeTwoUp,
		Number:           "12",
		RiskType:         models.RiskClose,
	}

	s := NewRiskSession(repo, oldRound, "2025-03-16")

	gate := make(chan struct{})
	repo.gate = gate
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := s.LoadCommitted(context.Background()); err != nil {
			t.Errorf("Unexpected load error: %v", err)
		}
	}()

	// the operator switches rounds while the load is in flight
	s.SelectRound(primitive.NewObjectID(), "2025-04-01")
	close(gate)
	<-done

	if len(s.Committed()) != 0 {
		t.Errorf("Expected stale response discarded, got %d entries", len(s.Committed()))
	}
}
