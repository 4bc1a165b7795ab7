package ledger

import (
	"math"
	"testing"

	"github.com/smerla/milkbook/internal/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		entries     []models.MilkEntry
		wantLiters  float64
		wantAmount  float64
		wantFarmers int
		wantCount   int
	}{
		{
			name: "plain sums",
			entries: []models.MilkEntry{
				entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
				entry("2024-06-01", models.SessionEvening, "F2", 5, 32),
			},
			wantLiters:  15,
			wantAmount:  460,
			wantFarmers: 2,
			wantCount:   2,
		},
		{
			name: "farmer ids counted case-insensitively",
			entries: []models.MilkEntry{
				entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
				entry("2024-06-02", models.SessionMorning, "f1", 5, 30),
				entry("2024-06-03", models.SessionMorning, "F2", 5, 30),
			},
			wantLiters:  20,
			wantAmount:  600,
			wantFarmers: 2,
			wantCount:   3,
		},
		{
			name:        "empty input",
			entries:     nil,
			wantLiters:  0,
			wantAmount:  0,
			wantFarmers: 0,
			wantCount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.entries)
			if math.Abs(got.TotalLiters-tt.wantLiters) > 1e-9 {
				t.Errorf("TotalLiters = %v, want %v", got.TotalLiters, tt.wantLiters)
			}
			if math.Abs(got.TotalAmount-tt.wantAmount) > 1e-9 {
				t.Errorf("TotalAmount = %v, want %v", got.TotalAmount, tt.wantAmount)
			}
			if got.UniqueFarmers != tt.wantFarmers {
				t.Errorf("UniqueFarmers = %d, want %d", got.UniqueFarmers, tt.wantFarmers)
			}
			if got.EntryCount != tt.wantCount {
				t.Errorf("EntryCount = %d, want %d", got.EntryCount, tt.wantCount)
			}
		})
	}
}

func TestGroupByDate(t *testing.T) {
	entries := Filter([]models.MilkEntry{
		entry("2024-06-02", models.SessionMorning, "F1", 4, 30),
		entry("2024-06-01", models.SessionEvening, "F2", 5, 32),
		entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
	}, EntryFilter{})

	groups := GroupByDate(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(groups))
	}
	if groups[0].Date != "2024-06-01" || groups[1].Date != "2024-06-02" {
		t.Errorf("groups not ascending by date: %v, %v", groups[0].Date, groups[1].Date)
	}
	if math.Abs(groups[0].Liters-15) > 1e-9 {
		t.Errorf("2024-06-01 liters = %v, want 15", groups[0].Liters)
	}
	if math.Abs(groups[0].Amount-460) > 1e-9 {
		t.Errorf("2024-06-01 amount = %v, want 460", groups[0].Amount)
	}
	if len(groups[0].Entries) != 2 {
		t.Errorf("2024-06-01 bucket has %d entries, want 2", len(groups[0].Entries))
	}
	// Bucket keeps the filter's session order.
	if groups[0].Entries[0].Session != models.SessionMorning {
		t.Errorf("bucket lost session ordering: first entry is %s", groups[0].Entries[0].Session)
	}
}

func TestGroupByFarmer(t *testing.T) {
	customers := []models.CustomerProfile{
		{FarmerID: "F1", FarmerName: "Zankar Dairy"},
		{FarmerID: "F2", FarmerName: "Anand Farm"},
	}
	resolve := func(id string) string { return ResolveFarmerName(customers, id) }

	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
		entry("2024-06-01", models.SessionMorning, "F2", 5, 32),
		entry("2024-06-02", models.SessionMorning, "f1", 8, 30),
		entry("2024-06-02", models.SessionMorning, "F3", 2, 28),
	}

	groups := GroupByFarmer(entries, resolve)
	if len(groups) != 3 {
		t.Fatalf("expected 3 farmer groups, got %d", len(groups))
	}

	// Ascending by resolved display name: Anand Farm, F3 (no profile,
	// raw id), Zankar Dairy.
	if groups[0].FarmerName != "Anand Farm" || groups[1].FarmerName != "F3" || groups[2].FarmerName != "Zankar Dairy" {
		t.Errorf("unexpected name order: %s, %s, %s", groups[0].FarmerName, groups[1].FarmerName, groups[2].FarmerName)
	}

	// F1 and f1 merge into one bucket.
	if groups[2].EntryCount != 2 {
		t.Errorf("F1 bucket entry count = %d, want 2", groups[2].EntryCount)
	}
	if math.Abs(groups[2].Liters-18) > 1e-9 {
		t.Errorf("F1 bucket liters = %v, want 18", groups[2].Liters)
	}
}
