package service

import (
	"context"
	"log/slog"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
)

// AdvanceService manages cash advances and in-kind supplement entries.
// The two collections have the same shape but are tracked separately so
// settlement can net them against milk dues independently.
type AdvanceService struct {
	store storage.Store
}

func NewAdvanceService(store storage.Store) *AdvanceService {
	return &AdvanceService{store: store}
}

func validateAdvanceFields(date, farmerID string, amount float64) error {
	if date == "" {
		return &models.ValidationError{Field: "date", Message: "date is required"}
	}
	if farmerID == "" {
		return &models.ValidationError{Field: "farmerId", Message: "farmer id is required"}
	}
	if amount <= 0 {
		return &models.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	return nil
}

// AddCash records a cash advance.
func (s *AdvanceService) AddCash(ctx context.Context, entry *models.AdvanceEntry) error {
	if err := validateAdvanceFields(entry.Date, entry.FarmerID, entry.Amount); err != nil {
		return err
	}
	entry.Amount = models.Round2(entry.Amount)
	if err := s.store.CreateCashAdvance(ctx, entry); err != nil {
		return err
	}
	slog.Info("Cash advance recorded", "advance_id", entry.ID, "farmer_id", entry.FarmerID, "amount", entry.Amount)
	return nil
}

// CashSummary is advance listing plus the running total.
type CashSummary struct {
	Advances    []models.AdvanceEntry `json:"advances"`
	TotalAmount float64               `json:"totalAmount"`
}

// ListCash returns cash advances, optionally for one farmer, with their sum.
func (s *AdvanceService) ListCash(ctx context.Context, farmerID string) (*CashSummary, error) {
	advances, err := s.store.ListCashAdvances(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, a := range advances {
		total += a.Amount
	}
	return &CashSummary{Advances: advances, TotalAmount: models.Round2(total)}, nil
}

// DeleteCash removes a cash advance.
func (s *AdvanceService) DeleteCash(ctx context.Context, id string) error {
	return s.store.DeleteCashAdvance(ctx, id)
}

// AddSupplement records an in-kind advance.
func (s *AdvanceService) AddSupplement(ctx context.Context, entry *models.SupplementEntry) error {
	if err := validateAdvanceFields(entry.Date, entry.FarmerID, entry.Amount); err != nil {
		return err
	}
	entry.Amount = models.Round2(entry.Amount)
	if err := s.store.CreateSupplement(ctx, entry); err != nil {
		return err
	}
	slog.Info("Supplement recorded", "supplement_id", entry.ID, "farmer_id", entry.FarmerID, "amount", entry.Amount)
	return nil
}

// SupplementSummary is supplement listing plus the running total.
type SupplementSummary struct {
	Supplements []models.SupplementEntry `json:"supplements"`
	TotalAmount float64                  `json:"totalAmount"`
}

// ListSupplements returns supplement entries, optionally for one farmer,
// with their sum.
func (s *AdvanceService) ListSupplements(ctx context.Context, farmerID string) (*SupplementSummary, error) {
	supplements, err := s.store.ListSupplements(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, sp := range supplements {
		total += sp.Amount
	}
	return &SupplementSummary{Supplements: supplements, TotalAmount: models.Round2(total)}, nil
}

// DeleteSupplement removes a supplement entry.
func (s *AdvanceService) DeleteSupplement(ctx context.Context, id string) error {
	return s.store.DeleteSupplement(ctx, id)
}
