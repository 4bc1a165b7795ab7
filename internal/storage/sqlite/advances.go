package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/models"
)

func (s *SQLiteStore) CreateCashAdvance(ctx context.Context, advance *models.AdvanceEntry) error {
	if advance.ID == "" {
		advance.ID = uuid.New().String()
	}
	if advance.CreatedAt == 0 {
		advance.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cash_advances (id, date, farmer_id, farmer_name, description, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		advance.ID, advance.Date, advance.FarmerID, advance.FarmerName, advance.Description, advance.Amount, advance.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert advance: %w", err)
	}
	return nil
}

// ListCashAdvances returns cash advances, optionally restricted to one farmer.
func (s *SQLiteStore) ListCashAdvances(ctx context.Context, farmerID string) ([]models.AdvanceEntry, error) {
	q := `SELECT id, date, farmer_id, farmer_name, description, amount, created_at FROM cash_advances`
	var args []any
	if farmerID != "" {
		q += " WHERE farmer_id = ? COLLATE NOCASE"
		args = append(args, farmerID)
	}
	q += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []models.AdvanceEntry
	for rows.Next() {
		var a models.AdvanceEntry
		if err := rows.Scan(&a.ID, &a.Date, &a.FarmerID, &a.FarmerName, &a.Description, &a.Amount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advances: %w", err)
	}
	return advances, nil
}

func (s *SQLiteStore) DeleteCashAdvance(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM cash_advances WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("advance not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) CreateSupplement(ctx context.Context, supplement *models.SupplementEntry) error {
	if supplement.ID == "" {
		supplement.ID = uuid.New().String()
	}
	if supplement.CreatedAt == 0 {
		supplement.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO supplement_entries (id, date, farmer_id, farmer_name, description, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		supplement.ID, supplement.Date, supplement.FarmerID, supplement.FarmerName, supplement.Description, supplement.Amount, supplement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert supplement: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListSupplements(ctx context.Context, farmerID string) ([]models.SupplementEntry, error) {
	q := `SELECT id, date, farmer_id, farmer_name, description, amount, created_at FROM supplement_entries`
	var args []any
	if farmerID != "" {
		q += " WHERE farmer_id = ? COLLATE NOCASE"
		args = append(args, farmerID)
	}
	q += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplements: %w", err)
	}
	defer rows.Close()

	var supplements []models.SupplementEntry
	for rows.Next() {
		var sp models.SupplementEntry
		if err := rows.Scan(&sp.ID, &sp.Date, &sp.FarmerID, &sp.FarmerName, &sp.Description, &sp.Amount, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplement: %w", err)
		}
		supplements = append(supplements, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate supplements: %w", err)
	}
	return supplements, nil
}

func (s *SQLiteStore) DeleteSupplement(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM supplement_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete supplement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("supplement not found: %s", id)
	}
	return nil
}
