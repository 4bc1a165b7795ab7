package service

import (
	"context"
	"math"
	"testing"

	"github.com/smerla/milkbook/internal/models"
)

func TestCreateInvoiceFreezesSnapshot(t *testing.T) {
	store := newTestStore(t)
	entries := NewEntryService(store)
	customers := NewCustomerService(store)
	billing := NewBillingService(store)
	ctx := context.Background()

	profile := models.CustomerProfile{FarmerID: "F1", FarmerName: "Anand Farm"}
	if err := customers.Add(ctx, &profile); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	morning := seedEntry(t, entries, "2024-06-01", models.SessionMorning, "F1", 10, 30)
	seedEntry(t, entries, "2024-06-01", models.SessionMorning, "f1", 5, 32)
	seedEntry(t, entries, "2024-06-02", models.SessionEvening, "F1", 4, 30)
	seedEntry(t, entries, "2024-06-01", models.SessionMorning, "F2", 7, 30) // other farmer

	invoice, err := billing.CreateInvoice(ctx, "F1", "2024-06-01", "2024-06-30", "", "june run")
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if invoice.ID == "" || invoice.CreatedAt == 0 {
		t.Fatalf("CreateInvoice() did not assign id/createdAt: %+v", invoice)
	}
	if invoice.FarmerName != "Anand Farm" {
		t.Errorf("FarmerName = %q, want Anand Farm", invoice.FarmerName)
	}
	if invoice.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft default", invoice.Status)
	}
	if invoice.TotalLiters != 19 || invoice.GrossAmount != 580 {
		t.Errorf("totals = %v L / %v, want 19 / 580", invoice.TotalLiters, invoice.GrossAmount)
	}

	// Same-day same-session entries merge into one line item.
	if len(invoice.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(invoice.LineItems))
	}
	merged := invoice.LineItems[0]
	if merged.Liters != 15 || merged.Amount != 460 {
		t.Errorf("merged item = %+v, want 15 L / 460", merged)
	}
	if math.Abs(merged.Rate*merged.Liters-merged.Amount) > 1e-9 {
		t.Errorf("rate*liters = %v, want %v", merged.Rate*merged.Liters, merged.Amount)
	}

	// Invoices are frozen: later edits to the source entries do not change
	// the stored invoice.
	morning.Liters = 100
	if err := entries.Update(ctx, &morning); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	stored, err := billing.Get(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.TotalLiters != 19 {
		t.Errorf("stored TotalLiters = %v, want frozen 19", stored.TotalLiters)
	}
}

func TestCreateInvoiceEmptyMatch(t *testing.T) {
	store := newTestStore(t)
	billing := NewBillingService(store)

	_, err := billing.CreateInvoice(context.Background(), "F1", "2024-06-01", "2024-06-30", "", "")
	if !models.IsValidation(err) {
		t.Errorf("CreateInvoice() error = %v, want ValidationError", err)
	}
}

func TestInvoiceStatusLifecycle(t *testing.T) {
	store := newTestStore(t)
	entries := NewEntryService(store)
	billing := NewBillingService(store)
	ctx := context.Background()

	seedEntry(t, entries, "2024-06-01", models.SessionMorning, "F1", 10, 30)
	invoice, err := billing.CreateInvoice(ctx, "F1", "2024-06-01", "2024-06-30", "", "")
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	if err := billing.UpdateStatus(ctx, invoice.ID, "issued"); err != nil {
		t.Fatalf("UpdateStatus(issued) error = %v", err)
	}
	if err := billing.UpdateStatus(ctx, invoice.ID, "shredded"); !models.IsValidation(err) {
		t.Errorf("UpdateStatus(shredded) error = %v, want ValidationError", err)
	}

	got, err := billing.Get(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != models.StatusIssued {
		t.Errorf("Status = %q, want issued", got.Status)
	}

	if err := billing.Delete(ctx, invoice.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := billing.Get(ctx, invoice.ID); err == nil {
		t.Error("Get() after delete expected error, got nil")
	}
}

func TestListInvoicesRejectsBadStatusFilter(t *testing.T) {
	billing := NewBillingService(newTestStore(t))

	_, err := billing.List(context.Background(), models.InvoiceFilter{Status: "bogus"})
	if !models.IsValidation(err) {
		t.Errorf("List() error = %v, want ValidationError", err)
	}
}
