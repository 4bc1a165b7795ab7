package service

import (
	"context"
	"log/slog"

	"github.com/smerla/milkbook/internal/ledger"
	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
)

// BillingService generates and manages invoices.
type BillingService struct {
	store storage.Store
}

func NewBillingService(store storage.Store) *BillingService {
	return &BillingService{store: store}
}

// CreateInvoice builds an invoice for the farmer over the period from the
// current entry snapshot and persists it. The stored invoice is frozen;
// later edits to the underlying entries do not flow into it.
func (s *BillingService) CreateInvoice(ctx context.Context, farmerID, periodStart, periodEnd, rawStatus, notes string) (*models.BillingInvoice, error) {
	status := models.StatusDraft
	if rawStatus != "" {
		parsed, err := models.ParseInvoiceStatus(rawStatus)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := s.store.GetCustomerByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	invoice, err := ledger.BuildInvoice(entries, customer, farmerID, periodStart, periodEnd, status, notes)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	slog.Info("Invoice created",
		"invoice_id", invoice.ID,
		"farmer_id", invoice.FarmerID,
		"period_start", invoice.PeriodStart,
		"period_end", invoice.PeriodEnd,
		"gross_amount", invoice.GrossAmount,
	)
	return invoice, nil
}

// List returns invoices matching the filter, newest first.
func (s *BillingService) List(ctx context.Context, filter models.InvoiceFilter) ([]models.BillingInvoice, error) {
	if filter.Status != "" && filter.Status != "all" {
		if _, err := models.ParseInvoiceStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return s.store.ListInvoices(ctx, filter)
}

// Get returns one invoice by id.
func (s *BillingService) Get(ctx context.Context, id string) (*models.BillingInvoice, error) {
	return s.store.GetInvoice(ctx, id)
}

// UpdateStatus moves an invoice through its lifecycle (draft, issued, paid).
func (s *BillingService) UpdateStatus(ctx context.Context, id, rawStatus string) error {
	status, err := models.ParseInvoiceStatus(rawStatus)
	if err != nil {
		return err
	}
	return s.store.UpdateInvoiceStatus(ctx, id, status)
}

// Delete removes an invoice. Source entries are untouched.
func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteInvoice(ctx, id)
}
