package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/models"
)

// CreateEntry persists a new milk entry, generating id and timestamp when unset.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *models.MilkEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO milk_entries (id, session, date, farmer_id, farmer_name, liters, fat, snf, rate, total_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Session, entry.Date, entry.FarmerID, entry.FarmerName,
		entry.Liters, entry.Fat, entry.SNF, entry.Rate, entry.TotalAmount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert milk entry: %w", err)
	}
	return nil
}

// GetEntry retrieves a milk entry by id.
func (s *SQLiteStore) GetEntry(ctx context.Context, id string) (*models.MilkEntry, error) {
	entry := &models.MilkEntry{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session, date, farmer_id, farmer_name, liters, fat, snf, rate, total_amount, created_at
		 FROM milk_entries WHERE id = ?`, id,
	).Scan(&entry.ID, &entry.Session, &entry.Date, &entry.FarmerID, &entry.FarmerName,
		&entry.Liters, &entry.Fat, &entry.SNF, &entry.Rate, &entry.TotalAmount, &entry.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milk entry not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get milk entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns all milk entries ordered by date then creation time.
// Callers needing the full (date, session, farmer) order use the ledger.
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]models.MilkEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session, date, farmer_id, farmer_name, liters, fat, snf, rate, total_amount, created_at
		 FROM milk_entries ORDER BY date ASC, created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list milk entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MilkEntry
	for rows.Next() {
		var entry models.MilkEntry
		if err := rows.Scan(&entry.ID, &entry.Session, &entry.Date, &entry.FarmerID, &entry.FarmerName,
			&entry.Liters, &entry.Fat, &entry.SNF, &entry.Rate, &entry.TotalAmount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan milk entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milk entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry replaces an existing entry; every column is written.
func (s *SQLiteStore) UpdateEntry(ctx context.Context, entry *models.MilkEntry) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE milk_entries
		 SET session = ?, date = ?, farmer_id = ?, farmer_name = ?, liters = ?, fat = ?, snf = ?, rate = ?, total_amount = ?
		 WHERE id = ?`,
		entry.Session, entry.Date, entry.FarmerID, entry.FarmerName,
		entry.Liters, entry.Fat, entry.SNF, entry.Rate, entry.TotalAmount, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update milk entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("milk entry not found: %s", entry.ID)
	}
	return nil
}

// DeleteEntry removes an entry by id.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM milk_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete milk entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("milk entry not found: %s", id)
	}
	return nil
}
