package service

import (
	"context"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
)

// RateChartService manages the fat/SNF rate chart and rate lookups.
type RateChartService struct {
	store storage.Store
}

func NewRateChartService(store storage.Store) *RateChartService {
	return &RateChartService{store: store}
}

func (s *RateChartService) Save(ctx context.Context, row *models.RateChartRow) error {
	if row.Fat <= 0 {
		return &models.ValidationError{Field: "fat", Message: "fat must be positive"}
	}
	if row.SNF <= 0 {
		return &models.ValidationError{Field: "snf", Message: "snf must be positive"}
	}
	if row.RatePerLiter <= 0 {
		return &models.ValidationError{Field: "ratePerLiter", Message: "rate must be positive"}
	}
	if row.EffectiveFrom == "" {
		return &models.ValidationError{Field: "effectiveFrom", Message: "effective date is required"}
	}
	return s.store.SaveRateChartRow(ctx, row)
}

func (s *RateChartService) List(ctx context.Context) ([]models.RateChartRow, error) {
	return s.store.ListRateChartRows(ctx)
}

func (s *RateChartService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteRateChartRow(ctx, id)
}

// LookupRate finds the rate for a fat/SNF combination on a date. Among rows
// matching fat and SNF exactly, the one with the latest effective date not
// after the given date wins. Returns a ValidationError when no row applies.
func (s *RateChartService) LookupRate(ctx context.Context, fat, snf float64, date string) (float64, error) {
	rows, err := s.store.ListRateChartRows(ctx)
	if err != nil {
		return 0, err
	}

	best := ""
	rate := 0.0
	for _, row := range rows {
		if row.Fat != fat || row.SNF != snf {
			continue
		}
		if date != "" && row.EffectiveFrom > date {
			continue
		}
		if row.EffectiveFrom > best || best == "" {
			best = row.EffectiveFrom
			rate = row.RatePerLiter
		}
	}
	if best == "" {
		return 0, &models.ValidationError{Field: "rate", Message: "no rate chart row matches the given fat and snf"}
	}
	return rate, nil
}

// FeedService manages feed handout entries.
type FeedService struct {
	store storage.Store
}

func NewFeedService(store storage.Store) *FeedService {
	return &FeedService{store: store}
}

func validateFeedEntry(entry *models.FeedEntry) error {
	if entry.FarmerID == "" {
		return &models.ValidationError{Field: "farmerId", Message: "farmer id is required"}
	}
	if entry.FeedName == "" {
		return &models.ValidationError{Field: "feedName", Message: "feed name is required"}
	}
	if entry.Rate < 0 {
		return &models.ValidationError{Field: "rate", Message: "rate cannot be negative"}
	}
	return nil
}

func (s *FeedService) Add(ctx context.Context, entry *models.FeedEntry) error {
	if err := validateFeedEntry(entry); err != nil {
		return err
	}
	return s.store.CreateFeedEntry(ctx, entry)
}

func (s *FeedService) List(ctx context.Context) ([]models.FeedEntry, error) {
	return s.store.ListFeedEntries(ctx)
}

func (s *FeedService) Update(ctx context.Context, entry *models.FeedEntry) error {
	if entry.ID == "" {
		return &models.ValidationError{Field: "id", Message: "feed entry id is required"}
	}
	if err := validateFeedEntry(entry); err != nil {
		return err
	}
	return s.store.UpdateFeedEntry(ctx, entry)
}

func (s *FeedService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteFeedEntry(ctx, id)
}
