package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
	"github.com/smerla/milkbook/internal/storage/sqlite"
)

// newTestStore creates a store backed by a temp database.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "service-test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedEntry(t *testing.T, svc *EntryService, date string, session models.Session, farmerID string, liters, rate float64) models.MilkEntry {
	t.Helper()
	entry := models.NewMilkEntry(session, date, farmerID, "", liters, 4.0, 8.5, rate)
	if err := svc.Save(context.Background(), &entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return entry
}
