package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// ErrNothingPending is returned by Commit when the session holds no numbers
var ErrNothingPending = errors.New("no pending numbers to commit")

// RiskSession holds one operator's unsaved risk declarations for a single
// product + round date. Each editing surface owns its own session; switching
// the round discards unsaved work, since pending numbers are round-specific.
type RiskSession struct {
	mu sync.Mutex

	riskRepo repositories.RiskEntryRepository

	productID primitive.ObjectID
	roundDate string

	pending      map[models.BetTypeKey][]string
	pendingIndex map[models.BetTypeKey]map[string]bool
	typing       map[models.BetTypeKey]string
	committed    []*models.RiskEntry
	riskType     models.RiskType

	// loadGen increments on every round switch so a slow LoadCommitted response
	// for a previous round is recognized and discarded
	loadGen uint64
}

// NewRiskSession creates a session bound to a product and round date
func NewRiskSession(riskRepo repositories.RiskEntryRepository, productID primitive.ObjectID, roundDate string) *RiskSession {
	s := &RiskSession{
		riskRepo: riskRepo,
		riskType: models.RiskClose,
	}
	s.resetLocked(productID, roundDate)
	return s
}

// SelectRound switches the session to another product/date, discarding all
// pending and typing state
func (s *RiskSession) SelectRound(productID primitive.ObjectID, roundDate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(productID, roundDate)
}

func (s *RiskSession) resetLocked(productID primitive.ObjectID, roundDate string) {
	s.productID = productID
	s.roundDate = roundDate
	s.pending = make(map[models.BetTypeKey][]string)
	s.pendingIndex = make(map[models.BetTypeKey]map[string]bool)
	s.typing = make(map[models.BetTypeKey]string)
	s.committed = nil
	s.loadGen++
}

// LoadCommitted fetches the committed entries for the session's round and
// replaces the session's committed view. A response that arrives after the
// session moved to a different round is discarded.
func (s *RiskSession) LoadCommitted(ctx context.Context) ([]*models.RiskEntry, error) {
	s.mu.Lock()
	gen := s.loadGen
	productID := s.productID
	roundDate := s.roundDate
	s.mu.Unlock()

	token := uuid.NewString()
	entries, err := s.riskRepo.FindByRound(ctx, productID, roundDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load committed risk entries: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadGen != gen {
		slog.Warn("Discarding stale risk load response",
			"requestId", token, "roundDate", roundDate)
		return nil, nil
	}
	s.committed = entries
	return entries, nil
}

// TypeDigit feeds keystrokes for one bet type box. Non-digit characters are
// stripped; once the buffer reaches the bet type's digit length the value
// moves into the pending set and the buffer clears. Re-entering a value
// already pending is silently ignored.
func (s *RiskSession) TypeDigit(betType models.BetTypeKey, rawInput string) {
	spec, ok := models.GetBetTypeSpec(betType)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value := digitsOnly(rawInput)
	if len(value) != spec.DigitLength {
		s.typing[betType] = value
		return
	}
	s.typing[betType] = ""
	s.addPendingLocked(betType, value)
}

// Typing returns the in-progress buffer for a bet type box
func (s *RiskSession) Typing(betType models.BetTypeKey) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing[betType]
}

// DistributeFreeText tokenizes pasted text on runs of non-digit characters and
// drops every token into the bucket of each bet type whose digit length
// matches: a 2-digit token lands in both 2up and 2down. Returns the total
// number of (bucket, number) insertions.
func (s *RiskSession) DistributeFreeText(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, token := range tokenizeNumbers(text) {
		for _, spec := range models.BetTypesByDigitLength(len(token)) {
			if s.addPendingLocked(spec.Key, token) {
				inserted++
			}
		}
	}
	return inserted
}

// PasteIntoBucket tokenizes like DistributeFreeText but accepts only tokens
// whose length matches the one target bucket; everything else is counted as
// rejected, not reported individually.
func (s *RiskSession) PasteIntoBucket(betType models.BetTypeKey, text string) (accepted, rejected int) {
	spec, ok := models.GetBetTypeSpec(betType)
	if !ok {
		return 0, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, token := range tokenizeNumbers(text) {
		if len(token) != spec.DigitLength {
			rejected++
			continue
		}
		if s.addPendingLocked(betType, token) {
			accepted++
		}
	}
	return accepted, rejected
}

// addPendingLocked appends a number to a bucket unless already present
func (s *RiskSession) addPendingLocked(betType models.BetTypeKey, number string) bool {
	index, ok := s.pendingIndex[betType]
	if !ok {
		index = make(map[string]bool)
		s.pendingIndex[betType] = index
	}
	if index[number] {
		return false
	}
	index[number] = true
	s.pending[betType] = append(s.pending[betType], number)
	return true
}

// RemovePending removes one number from a bucket
func (s *RiskSession) RemovePending(betType models.BetTypeKey, number string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.pendingIndex[betType]
	if !ok || !index[number] {
		return
	}
	delete(index, number)
	bucket := s.pending[betType]
	for i, n := range bucket {
		if n == number {
			s.pending[betType] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
}

// ClearAllPending empties every bucket and every typing buffer
func (s *RiskSession) ClearAllPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = make(map[models.BetTypeKey][]string)
	s.pendingIndex = make(map[models.BetTypeKey]map[string]bool)
	s.typing = make(map[models.BetTypeKey]string)
}

// Pending returns a copy of the pending buckets in catalog order
func (s *RiskSession) Pending() map[models.BetTypeKey][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[models.BetTypeKey][]string, len(s.pending))
	for key, bucket := range s.pending {
		out[key] = append([]string(nil), bucket...)
	}
	return out
}

// PendingCount returns the total number of pending (bucket, number) pairs
func (s *RiskSession) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, bucket := range s.pending {
		count += len(bucket)
	}
	return count
}

// SetRiskType selects the risk type applied to the whole batch at commit time
func (s *RiskSession) SetRiskType(riskType models.RiskType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riskType = riskType
}

// Commit flattens the pending buckets in catalog order, writes them as one
// batch with the selected risk type, then clears pending state and reloads the
// committed view. On any storage error the pending state is left untouched so
// the operator can retry.
func (s *RiskSession) Commit(ctx context.Context) (int, error) {
	s.mu.Lock()
	entries := s.flattenLocked()
	roundDate := s.roundDate
	s.mu.Unlock()

	if len(entries) == 0 {
		return 0, ErrNothingPending
	}

	if err := s.riskRepo.UpsertMany(ctx, entries); err != nil {
		slog.Error("Failed to commit risk batch", "error", err,
			"roundDate", roundDate, "count", len(entries))
		return 0, fmt.Errorf("failed to commit risk batch: %w", err)
	}

	s.mu.Lock()
	s.pending = make(map[models.BetTypeKey][]string)
	s.pendingIndex = make(map[models.BetTypeKey]map[string]bool)
	s.typing = make(map[models.BetTypeKey]string)
	s.mu.Unlock()

	if _, err := s.LoadCommitted(ctx); err != nil {
		// the write succeeded; a failed refresh only leaves the view stale
		slog.Warn("Committed batch but failed to refresh view", "error", err)
	}
	return len(entries), nil
}

func (s *RiskSession) flattenLocked() []*models.RiskEntry {
	var entries []*models.RiskEntry
	for _, spec := range models.BetTypeCatalog {
		for _, number := range s.pending[spec.Key] {
			entries = append(entries, &models.RiskEntry{
				LotteryProductID: s.productID,
				RoundDate:        s.roundDate,
				BetType:          spec.Key,
				Number:           number,
				RiskType:         s.riskType,
			})
		}
	}
	return entries
}

// Committed returns the committed view loaded for the session's round
func (s *RiskSession) Committed() []*models.RiskEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.RiskEntry(nil), s.committed...)
}

// DeleteCommitted removes one committed entry. Pending state is untouched:
// committed and pending are disjoint.
func (s *RiskSession) DeleteCommitted(ctx context.Context, id primitive.ObjectID) error {
	if err := s.riskRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete risk entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.committed {
		if entry.ID == id {
			s.committed = append(s.committed[:i], s.committed[i+1:]...)
			break
		}
	}
	return nil
}

// ClearAllCommitted removes every committed entry for the session's round.
// Pending state is untouched.
func (s *RiskSession) ClearAllCommitted(ctx context.Context) (int64, error) {
	s.mu.Lock()
	productID := s.productID
	roundDate := s.roundDate
	s.mu.Unlock()

	deleted, err := s.riskRepo.DeleteByRound(ctx, productID, roundDate)
	if err != nil {
		return 0, fmt.Errorf("failed to clear risk entries: %w", err)
	}

	s.mu.Lock()
	s.committed = nil
	s.mu.Unlock()
	return deleted, nil
}

// tokenizeNumbers splits text on any run of non-digit characters
func tokenizeNumbers(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r < '0' || r > '9'
	})
}

// digitsOnly strips every non-digit character
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
