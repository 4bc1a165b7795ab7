package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/models"
)

// CreateInvoice persists a new invoice, generating id and timestamp when
// unset. Line items are stored as a JSON column: they are an immutable
// snapshot that is only ever read back whole.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, invoice *models.BillingInvoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if invoice.CreatedAt == 0 {
		invoice.CreatedAt = time.Now().Unix()
	}

	lineItems, err := json.Marshal(invoice.LineItems)
	if err != nil {
		return fmt.Errorf("failed to encode line items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO invoices (id, farmer_id, farmer_name, period_start, period_end, total_liters, gross_amount, status, created_at, notes, line_items)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID, invoice.FarmerID, invoice.FarmerName, invoice.PeriodStart, invoice.PeriodEnd,
		invoice.TotalLiters, invoice.GrossAmount, invoice.Status, invoice.CreatedAt, invoice.Notes, string(lineItems),
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

// GetInvoice retrieves an invoice by id.
func (s *SQLiteStore) GetInvoice(ctx context.Context, id string) (*models.BillingInvoice, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, farmer_id, farmer_name, period_start, period_end, total_liters, gross_amount, status, created_at, notes, line_items
		 FROM invoices WHERE id = ?`, id,
	)
	invoice, err := scanInvoice(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// ListInvoices returns invoices matching the filter, newest first.
func (s *SQLiteStore) ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.BillingInvoice, error) {
	q := `SELECT id, farmer_id, farmer_name, period_start, period_end, total_liters, gross_amount, status, created_at, notes, line_items
	      FROM invoices WHERE 1=1`
	var args []any
	if filter.FarmerID != "" {
		q += " AND farmer_id = ?"
		args = append(args, filter.FarmerID)
	}
	if filter.PeriodStart != "" {
		q += " AND period_start >= ?"
		args = append(args, filter.PeriodStart)
	}
	if filter.PeriodEnd != "" {
		q += " AND period_end <= ?"
		args = append(args, filter.PeriodEnd)
	}
	if filter.Status != "" && filter.Status != "all" {
		q += " AND status = ?"
		args = append(args, filter.Status)
	}
	q += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.BillingInvoice
	for rows.Next() {
		invoice, err := scanInvoice(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus changes only the lifecycle status; everything else on
// an invoice is frozen at creation.
func (s *SQLiteStore) UpdateInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) error {
	res, err := s.db.ExecContext(ctx, "UPDATE invoices SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("invoice not found: %s", id)
	}
	return nil
}

// DeleteInvoice removes an invoice by id.
func (s *SQLiteStore) DeleteInvoice(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("invoice not found: %s", id)
	}
	return nil
}

// scanInvoice reads one invoice row. Malformed line-item JSON degrades to an
// empty list rather than failing the read; corrupted persisted data must
// never make the system unusable.
func scanInvoice(scan func(dest ...any) error) (*models.BillingInvoice, error) {
	invoice := &models.BillingInvoice{}
	var lineItems string
	if err := scan(&invoice.ID, &invoice.FarmerID, &invoice.FarmerName,
		&invoice.PeriodStart, &invoice.PeriodEnd, &invoice.TotalLiters, &invoice.GrossAmount,
		&invoice.Status, &invoice.CreatedAt, &invoice.Notes, &lineItems); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(lineItems), &invoice.LineItems); err != nil {
		slog.Warn("Discarding malformed invoice line items", "invoice_id", invoice.ID, "error", err)
		invoice.LineItems = nil
	}
	return invoice, nil
}
