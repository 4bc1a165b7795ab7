package service

import (
	"context"
	"testing"

	"github.com/smerla/milkbook/internal/models"
)

func TestLookupRatePicksLatestEffectiveRow(t *testing.T) {
	svc := NewRateChartService(newTestStore(t))
	ctx := context.Background()

	rows := []models.RateChartRow{
		{Fat: 4.0, SNF: 8.5, RatePerLiter: 28, EffectiveFrom: "2024-01-01"},
		{Fat: 4.0, SNF: 8.5, RatePerLiter: 31, EffectiveFrom: "2024-06-01"},
		{Fat: 4.5, SNF: 8.5, RatePerLiter: 33, EffectiveFrom: "2024-01-01"},
	}
	for i := range rows {
		if err := svc.Save(ctx, &rows[i]); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	tests := []struct {
		name     string
		fat, snf float64
		date     string
		want     float64
		wantErr  bool
	}{
		{"latest row wins", 4.0, 8.5, "2024-07-01", 31, false},
		{"older date uses older row", 4.0, 8.5, "2024-03-01", 28, false},
		{"effective date is inclusive", 4.0, 8.5, "2024-06-01", 31, false},
		{"empty date means latest", 4.0, 8.5, "", 31, false},
		{"different fat", 4.5, 8.5, "2024-07-01", 33, false},
		{"before any row", 4.0, 8.5, "2023-12-31", 0, true},
		{"no matching combination", 5.0, 9.0, "2024-07-01", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.LookupRate(ctx, tt.fat, tt.snf, tt.date)
			if tt.wantErr {
				if !models.IsValidation(err) {
					t.Fatalf("LookupRate() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupRate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LookupRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceRunningTotals(t *testing.T) {
	svc := NewAdvanceService(newTestStore(t))
	ctx := context.Background()

	advances := []models.AdvanceEntry{
		{Date: "2024-06-01", FarmerID: "F1", Description: "cash", Amount: 500},
		{Date: "2024-06-10", FarmerID: "F1", Description: "cash", Amount: 250.5},
		{Date: "2024-06-12", FarmerID: "F2", Description: "cash", Amount: 100},
	}
	for i := range advances {
		if err := svc.AddCash(ctx, &advances[i]); err != nil {
			t.Fatalf("AddCash() error = %v", err)
		}
	}

	summary, err := svc.ListCash(ctx, "F1")
	if err != nil {
		t.Fatalf("ListCash() error = %v", err)
	}
	if len(summary.Advances) != 2 || summary.TotalAmount != 750.5 {
		t.Errorf("ListCash(F1) = %d advances / %v total, want 2 / 750.5", len(summary.Advances), summary.TotalAmount)
	}

	if err := svc.AddCash(ctx, &models.AdvanceEntry{Date: "2024-06-01", FarmerID: "F1", Amount: 0}); !models.IsValidation(err) {
		t.Error("AddCash() zero amount expected ValidationError")
	}
}
