package ledger

import (
	"math"
	"testing"

	"github.com/smerla/milkbook/internal/models"
)

func TestBuildInvoiceMergesSameDaySession(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
		entry("2024-06-01", models.SessionMorning, "F1", 5, 32),
	}
	customer := &models.CustomerProfile{FarmerID: "F1", FarmerName: "Ramesh Patil"}

	inv, err := BuildInvoice(entries, customer, "F1", "2024-06-01", "2024-06-01", models.StatusDraft, "")
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	if len(inv.LineItems) != 1 {
		t.Fatalf("expected 1 merged line item, got %d", len(inv.LineItems))
	}
	item := inv.LineItems[0]
	if math.Abs(item.Liters-15) > 1e-9 {
		t.Errorf("line liters = %v, want 15", item.Liters)
	}
	if math.Abs(item.Amount-460) > 1e-9 {
		t.Errorf("line amount = %v, want 460", item.Amount)
	}
	// Weighted average, not mean of 30 and 32.
	if math.Abs(item.Rate-460.0/15.0) > 1e-9 {
		t.Errorf("line rate = %v, want %v", item.Rate, 460.0/15.0)
	}
	if math.Abs(inv.TotalLiters-15) > 1e-9 || math.Abs(inv.GrossAmount-460) > 1e-9 {
		t.Errorf("invoice totals = (%v, %v), want (15, 460)", inv.TotalLiters, inv.GrossAmount)
	}
	if inv.FarmerName != "Ramesh Patil" {
		t.Errorf("farmer name snapshot = %q, want Ramesh Patil", inv.FarmerName)
	}
	if inv.Status != models.StatusDraft {
		t.Errorf("status = %s, want draft", inv.Status)
	}
}

func TestBuildInvoiceTotalsMatchSummarize(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10.25, 29.5),
		entry("2024-06-01", models.SessionEvening, "F1", 8.75, 30.25),
		entry("2024-06-02", models.SessionMorning, "F1", 9.5, 31),
		entry("2024-06-02", models.SessionMorning, "f1", 3.33, 28.4),
		entry("2024-06-03", models.SessionMorning, "F2", 50, 30), // other farmer
	}

	inv, err := BuildInvoice(entries, nil, "F1", "2024-06-01", "2024-06-30", models.StatusDraft, "")
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	matched := Filter(entries, EntryFilter{From: "2024-06-01", To: "2024-06-30", FarmerID: "F1"})
	want := Summarize(matched)

	if inv.TotalLiters != want.TotalLiters {
		t.Errorf("TotalLiters = %v, want exactly %v", inv.TotalLiters, want.TotalLiters)
	}
	if inv.GrossAmount != want.TotalAmount {
		t.Errorf("GrossAmount = %v, want exactly %v", inv.GrossAmount, want.TotalAmount)
	}
}

func TestBuildInvoiceLineItemOrder(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-02", models.SessionEvening, "F1", 5, 30),
		entry("2024-06-01", models.SessionEvening, "F1", 6, 30),
		entry("2024-06-02", models.SessionMorning, "F1", 7, 30),
		entry("2024-06-01", models.SessionMorning, "F1", 8, 30),
	}

	inv, err := BuildInvoice(entries, nil, "F1", "2024-06-01", "2024-06-02", models.StatusDraft, "")
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	want := []struct {
		date    string
		session models.Session
	}{
		{"2024-06-01", models.SessionMorning},
		{"2024-06-01", models.SessionEvening},
		{"2024-06-02", models.SessionMorning},
		{"2024-06-02", models.SessionEvening},
	}
	if len(inv.LineItems) != len(want) {
		t.Fatalf("expected %d line items, got %d", len(want), len(inv.LineItems))
	}
	for i, w := range want {
		if inv.LineItems[i].Date != w.date || inv.LineItems[i].Session != w.session {
			t.Errorf("line %d = %s/%s, want %s/%s",
				i, inv.LineItems[i].Date, inv.LineItems[i].Session, w.date, w.session)
		}
	}
}

func TestBuildInvoiceWeightedRateIdentity(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10.25, 29.55),
		entry("2024-06-01", models.SessionMorning, "F1", 7.4, 31.1),
		entry("2024-06-01", models.SessionEvening, "F1", 3.33, 30),
		entry("2024-06-02", models.SessionMorning, "F1", 12, 28.75),
		entry("2024-06-02", models.SessionMorning, "F1", 0.5, 33),
	}

	inv, err := BuildInvoice(entries, nil, "F1", "2024-06-01", "2024-06-02", models.StatusDraft, "")
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	for _, item := range inv.LineItems {
		if math.Abs(item.Rate*item.Liters-item.Amount) > 1e-9 {
			t.Errorf("rate*liters = %v, want amount %v (line %s/%s)",
				item.Rate*item.Liters, item.Amount, item.Date, item.Session)
		}
	}
}

func TestBuildInvoiceEmptyMatch(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F2", 10, 30),
	}

	inv, err := BuildInvoice(entries, nil, "F1", "2024-06-01", "2024-06-30", models.StatusDraft, "")
	if err == nil {
		t.Fatal("expected error for empty match, got nil")
	}
	if !models.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}
	if inv != nil {
		t.Errorf("expected no invoice, got %+v", inv)
	}
}

func TestBuildInvoiceNameFallsBackToID(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
	}

	inv, err := BuildInvoice(entries, nil, "F1", "2024-06-01", "2024-06-01", models.StatusIssued, "june cycle")
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}
	if inv.FarmerName != "F1" {
		t.Errorf("farmer name = %q, want raw id fallback F1", inv.FarmerName)
	}
	if inv.Notes != "june cycle" {
		t.Errorf("notes = %q, want june cycle", inv.Notes)
	}
}

func TestMergeLineItemsZeroLiters(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 0, 30),
		entry("2024-06-01", models.SessionMorning, "F1", 0, 32),
	}

	items := MergeLineItems(entries)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Rate != 0 {
		t.Errorf("zero-liter group rate = %v, want 0", items[0].Rate)
	}
}

func TestMergeLineItemsIdempotent(t *testing.T) {
	entries := []models.MilkEntry{
		entry("2024-06-01", models.SessionMorning, "F1", 10, 30),
		entry("2024-06-01", models.SessionMorning, "F1", 5, 32),
		entry("2024-06-01", models.SessionEvening, "F1", 4, 31),
		entry("2024-06-02", models.SessionMorning, "F1", 6, 30),
	}

	once := MergeLineItems(entries)

	// Re-feed the merged items as entries: grouping again must not merge
	// any further or change any value.
	asEntries := make([]models.MilkEntry, len(once))
	for i, item := range once {
		asEntries[i] = models.MilkEntry{
			Date:        item.Date,
			Session:     item.Session,
			FarmerID:    "F1",
			Liters:      item.Liters,
			Rate:        item.Rate,
			TotalAmount: item.Amount,
		}
	}
	twice := MergeLineItems(asEntries)

	if len(twice) != len(once) {
		t.Fatalf("re-merge changed item count: %d vs %d", len(twice), len(once))
	}
	for i := range once {
		if math.Abs(once[i].Liters-twice[i].Liters) > 1e-9 ||
			math.Abs(once[i].Amount-twice[i].Amount) > 1e-9 ||
			math.Abs(once[i].Rate-twice[i].Rate) > 1e-9 {
			t.Errorf("line %d changed on re-merge: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
