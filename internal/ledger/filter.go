// Package ledger is the pure computation core over milk-collection records:
// period/farmer filtering, summary totals, date and farmer grouping, monthly
// period derivation, and invoice building. Every function borrows its inputs
// read-only and returns newly constructed values, so callers can hand in
// shared snapshots without copying.
package ledger

import (
	"sort"
	"strings"

	"github.com/smerla/milkbook/internal/models"
)

// EntryFilter narrows a set of milk entries. Date bounds are inclusive
// yyyy-mm-dd strings; an empty bound is unbounded. FarmerID is matched
// case-insensitively; empty means no farmer filter.
type EntryFilter struct {
	From     string
	To       string
	FarmerID string
}

// Filter returns the entries matching f, ordered by date ascending, then
// morning before evening, then farmer id ascending. This total order is a
// contract: line-item generation and the report breakdowns depend on it.
func Filter(entries []models.MilkEntry, f EntryFilter) []models.MilkEntry {
	want := strings.ToLower(f.FarmerID)
	out := make([]models.MilkEntry, 0, len(entries))
	for _, e := range entries {
		if f.From != "" && e.Date < f.From {
			continue
		}
		if f.To != "" && e.Date > f.To {
			continue
		}
		if want != "" && strings.ToLower(e.FarmerID) != want {
			continue
		}
		out = append(out, e)
	}
	SortEntries(out)
	return out
}

// SortEntries sorts in place by (date, session, farmer id). Exported so
// callers that assemble entry lists themselves can establish the same order.
func SortEntries(entries []models.MilkEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Session != b.Session {
			return sessionRank(a.Session) < sessionRank(b.Session)
		}
		return a.FarmerID < b.FarmerID
	})
}

func sessionRank(s models.Session) int {
	if s == models.SessionMorning {
		return 0
	}
	return 1
}

// ResolveFarmerName scans the customer list for a case-insensitive farmer id
// match and returns the profile's display name, falling back to the raw id
// when no profile matches.
func ResolveFarmerName(customers []models.CustomerProfile, farmerID string) string {
	want := strings.ToLower(farmerID)
	for _, c := range customers {
		if strings.ToLower(c.FarmerID) == want {
			return c.FarmerName
		}
	}
	return farmerID
}
