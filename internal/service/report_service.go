package service

import (
	"context"
	"fmt"

	"github.com/smerla/milkbook/internal/ledger"
	"github.com/smerla/milkbook/internal/storage"
)

// ReportService produces the daily and monthly aggregation views.
type ReportService struct {
	store     storage.Store
	customers *CustomerService
}

func NewReportService(store storage.Store, customers *CustomerService) *ReportService {
	return &ReportService{store: store, customers: customers}
}

// Summary is one aggregation view: overall totals plus per-date and
// per-farmer breakdowns of the same filtered set.
type Summary struct {
	Totals   ledger.Totals        `json:"totals"`
	ByDate   []ledger.DateGroup   `json:"byDate"`
	ByFarmer []ledger.FarmerGroup `json:"byFarmer"`
}

// DailySummary aggregates all entries collected on one date, optionally for
// a single farmer.
func (s *ReportService) DailySummary(ctx context.Context, date, farmerID string) (*Summary, error) {
	return s.summarize(ctx, ledger.EntryFilter{From: date, To: date, FarmerID: farmerID})
}

// MonthlySummary aggregates one calendar month.
func (s *ReportService) MonthlySummary(ctx context.Context, year, month int, farmerID string) (*Summary, error) {
	period := ledger.MonthPeriod(year, month)
	if period == nil {
		return nil, fmt.Errorf("invalid month: %d-%d", year, month)
	}
	return s.summarize(ctx, ledger.EntryFilter{From: period.StartDate, To: period.EndDate, FarmerID: farmerID})
}

func (s *ReportService) summarize(ctx context.Context, filter ledger.EntryFilter) (*Summary, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	matched := ledger.Filter(entries, filter)

	resolve, err := s.customers.Resolver(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals:   ledger.Summarize(matched),
		ByDate:   ledger.GroupByDate(matched),
		ByFarmer: ledger.GroupByFarmer(matched, resolve),
	}, nil
}

// Periods lists the months that have at least one entry, newest first.
func (s *ReportService) Periods(ctx context.Context) ([]ledger.Period, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.DerivePeriods(entries), nil
}
