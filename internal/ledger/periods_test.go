package ledger

import (
	"testing"

	"github.com/smerla/milkbook/internal/models"
)

func TestDerivePeriods(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-05-15", models.SessionMorning, "F1", 10, 30),
		entry("2024-06-02", models.SessionMorning, "F1", 10, 30),
		entry("2024-06-20", models.SessionEvening, "F2", 5, 30),
	}

	periods := DerivePeriods(entries)
	if len(periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(periods))
	}

	// Most recent month first.
	if periods[0].Key != "2024-06" || periods[1].Key != "2024-05" {
		t.Errorf("period order = [%s, %s], want [2024-06, 2024-05]", periods[0].Key, periods[1].Key)
	}
	if periods[0].EndDate != "2024-06-30" {
		t.Errorf("June end date = %s, want 2024-06-30", periods[0].EndDate)
	}
	if periods[1].EndDate != "2024-05-31" {
		t.Errorf("May end date = %s, want 2024-05-31", periods[1].EndDate)
	}
	if periods[0].StartDate != "2024-06-01" {
		t.Errorf("June start date = %s, want 2024-06-01", periods[0].StartDate)
	}
	if periods[0].Label != "June 2024" {
		t.Errorf("June label = %q, want %q", periods[0].Label, "June 2024")
	}
}

func TestDerivePeriodsMonthLengths(t *testing.T) {
	tests := []struct {
		date    string
		wantEnd string
	}{
		{"2024-02-10", "2024-02-29"}, // leap year
		{"2023-02-10", "2023-02-28"},
		{"2024-12-31", "2024-12-31"},
		{"2024-04-01", "2024-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			periods := DerivePeriods([]models.MilkEntry{
				entry(tt.date, models.SessionMorning, "F1", 1, 30),
			})
			if len(periods) != 1 {
				t.Fatalf("expected 1 period, got %d", len(periods))
			}
			if periods[0].EndDate != tt.wantEnd {
				t.Errorf("end date = %s, want %s", periods[0].EndDate, tt.wantEnd)
			}
		})
	}
}

func TestDerivePeriodsYearOrdering(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2023-12-10", models.SessionMorning, "F1", 1, 30),
		entry("2024-01-05", models.SessionMorning, "F1", 1, 30),
		entry("not-a-date", models.SessionMorning, "F1", 1, 30),
	}

	periods := DerivePeriods(entries)
	if len(periods) != 2 {
		t.Fatalf("expected malformed date to be skipped, got %d periods", len(periods))
	}
	if periods[0].Key != "2024-01" || periods[1].Key != "2023-12" {
		t.Errorf("year boundary order = [%s, %s], want [2024-01, 2023-12]", periods[0].Key, periods[1].Key)
	}
}
