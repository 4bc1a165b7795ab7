// Package service implements the application operations on top of the
// ledger and the storage layer.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/ledger"
	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
)

// deletionRequestTTL bounds how long a requested deletion stays confirmable.
const deletionRequestTTL = 5 * time.Minute

// DeletionRequest is the pending first phase of an entry deletion. The
// caller must present the token to ConfirmDeletion before it expires;
// nothing is removed until then.
type DeletionRequest struct {
	Token     string           `json:"token"`
	Entry     models.MilkEntry `json:"entry"`
	ExpiresAt int64            `json:"expiresAt"`
}

// EntryService manages milk collection entries.
type EntryService struct {
	store storage.Store

	mu      sync.Mutex
	pending map[string]DeletionRequest
}

func NewEntryService(store storage.Store) *EntryService {
	return &EntryService{
		store:   store,
		pending: make(map[string]DeletionRequest),
	}
}

func validateEntry(entry *models.MilkEntry) error {
	if _, err := models.ParseSession(string(entry.Session)); err != nil {
		return err
	}
	if entry.Date == "" {
		return &models.ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return &models.ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q", entry.Date)}
	}
	if entry.FarmerID == "" {
		return &models.ValidationError{Field: "farmerId", Message: "farmer id is required"}
	}
	if entry.Liters < 0 {
		return &models.ValidationError{Field: "liters", Message: "liters cannot be negative"}
	}
	if entry.Rate < 0 {
		return &models.ValidationError{Field: "rate", Message: "rate cannot be negative"}
	}
	return nil
}

// Save validates and persists a new entry. TotalAmount is recomputed from
// liters and rate on every save; client-supplied totals are ignored.
func (s *EntryService) Save(ctx context.Context, entry *models.MilkEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	entry.TotalAmount = models.Round2(entry.Liters * entry.Rate)
	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return err
	}
	slog.Info("Milk entry saved", "entry_id", entry.ID, "farmer_id", entry.FarmerID, "date", entry.Date, "session", entry.Session)
	return nil
}

// Update replaces an existing entry wholesale. Partial mutation is not
// supported; callers send the full record.
func (s *EntryService) Update(ctx context.Context, entry *models.MilkEntry) error {
	if entry.ID == "" {
		return &models.ValidationError{Field: "id", Message: "entry id is required"}
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	entry.TotalAmount = models.Round2(entry.Liters * entry.Rate)
	return s.store.UpdateEntry(ctx, entry)
}

// Get returns one entry by id.
func (s *EntryService) Get(ctx context.Context, id string) (*models.MilkEntry, error) {
	return s.store.GetEntry(ctx, id)
}

// List returns entries matching the filter in (date, session, farmer) order.
func (s *EntryService) List(ctx context.Context, filter ledger.EntryFilter) ([]models.MilkEntry, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Filter(entries, filter), nil
}

// RequestDeletion starts the two-phase removal of an entry. It verifies the
// entry exists and returns a request carrying the record about to be removed
// and a confirmation token.
func (s *EntryService) RequestDeletion(ctx context.Context, id string) (*DeletionRequest, error) {
	entry, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	req := DeletionRequest{
		Token:     uuid.New().String(),
		Entry:     *entry,
		ExpiresAt: time.Now().Add(deletionRequestTTL).Unix(),
	}

	s.mu.Lock()
	s.evictExpiredLocked()
	s.pending[req.Token] = req
	s.mu.Unlock()

	slog.Info("Entry deletion requested", "entry_id", id)
	return &req, nil
}

// ConfirmDeletion completes a pending deletion. Unknown and expired tokens
// fail; the underlying entry is untouched in both cases.
func (s *EntryService) ConfirmDeletion(ctx context.Context, token string) error {
	s.mu.Lock()
	req, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	s.mu.Unlock()

	if !ok || time.Now().Unix() > req.ExpiresAt {
		return &models.ValidationError{Field: "token", Message: "deletion request is unknown or expired"}
	}

	if err := s.store.DeleteEntry(ctx, req.Entry.ID); err != nil {
		return err
	}
	slog.Info("Milk entry deleted", "entry_id", req.Entry.ID, "farmer_id", req.Entry.FarmerID)
	return nil
}

// evictExpiredLocked drops expired pending requests. Caller holds s.mu.
func (s *EntryService) evictExpiredLocked() {
	now := time.Now().Unix()
	for token, req := range s.pending {
		if now > req.ExpiresAt {
			delete(s.pending, token)
		}
	}
}
