package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/models"
)

// SaveRateChartRow inserts or replaces a rate chart row. A row with an id is
// replaced wholesale; a row without one is a new entry.
func (s *SQLiteStore) SaveRateChartRow(ctx context.Context, row *models.RateChartRow) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	if row.CreatedAt == 0 {
		row.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rate_charts (id, fat, snf, rate_per_liter, effective_from, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   fat = excluded.fat,
		   snf = excluded.snf,
		   rate_per_liter = excluded.rate_per_liter,
		   effective_from = excluded.effective_from`,
		row.ID, row.Fat, row.SNF, row.RatePerLiter, row.EffectiveFrom, row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate chart row: %w", err)
	}
	return nil
}

// ListRateChartRows returns all rate chart rows, newest effective date first.
func (s *SQLiteStore) ListRateChartRows(ctx context.Context) ([]models.RateChartRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fat, snf, rate_per_liter, effective_from, created_at
		 FROM rate_charts ORDER BY effective_from DESC, fat ASC, snf ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate chart rows: %w", err)
	}
	defer rows.Close()

	var chart []models.RateChartRow
	for rows.Next() {
		var r models.RateChartRow
		if err := rows.Scan(&r.ID, &r.Fat, &r.SNF, &r.RatePerLiter, &r.EffectiveFrom, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate chart row: %w", err)
		}
		chart = append(chart, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rate chart rows: %w", err)
	}
	return chart, nil
}

func (s *SQLiteStore) DeleteRateChartRow(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rate_charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete rate chart row: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rate chart row not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) CreateFeedEntry(ctx context.Context, entry *models.FeedEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feed_entries (id, farmer_id, farmer_name, feed_name, rate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.FarmerID, entry.FarmerName, entry.FeedName, entry.Rate, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feed entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListFeedEntries(ctx context.Context) ([]models.FeedEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, farmer_id, farmer_name, feed_name, rate, created_at
		 FROM feed_entries ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed entries: %w", err)
	}
	defer rows.Close()

	var entries []models.FeedEntry
	for rows.Next() {
		var e models.FeedEntry
		if err := rows.Scan(&e.ID, &e.FarmerID, &e.FarmerName, &e.FeedName, &e.Rate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feed entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feed entries: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) UpdateFeedEntry(ctx context.Context, entry *models.FeedEntry) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE feed_entries SET farmer_id = ?, farmer_name = ?, feed_name = ?, rate = ? WHERE id = ?`,
		entry.FarmerID, entry.FarmerName, entry.FeedName, entry.Rate, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update feed entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed entry not found: %s", entry.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteFeedEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM feed_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete feed entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed entry not found: %s", id)
	}
	return nil
}
