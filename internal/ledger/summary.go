package ledger

import (
	"sort"
	"strings"

	"github.com/smerla/milkbook/internal/models"
)

// Totals summarizes a set of entries. Liters and amount are plain sums with
// no rounding applied; rounding happens once, at entry creation.
type Totals struct {
	TotalLiters   float64 `json:"totalLiters"`
	TotalAmount   float64 `json:"totalAmount"`
	UniqueFarmers int     `json:"uniqueFarmers"`
	EntryCount    int     `json:"entryCount"`
}

// Summarize computes totals over entries. Farmer ids are counted
// case-insensitively, matching the filter's comparison policy.
func Summarize(entries []models.MilkEntry) Totals {
	t := Totals{EntryCount: len(entries)}
	farmers := make(map[string]struct{})
	for _, e := range entries {
		t.TotalLiters += e.Liters
		t.TotalAmount += e.TotalAmount
		farmers[strings.ToLower(e.FarmerID)] = struct{}{}
	}
	t.UniqueFarmers = len(farmers)
	return t
}

// DateGroup is one day's accumulated collection.
type DateGroup struct {
	Date    string             `json:"date"`
	Liters  float64            `json:"liters"`
	Amount  float64            `json:"amount"`
	Entries []models.MilkEntry `json:"entries"`
}

// GroupByDate buckets entries per calendar date, ascending. Input order
// within a bucket is preserved, so pre-filtered input keeps the filter's
// session/farmer ordering.
func GroupByDate(entries []models.MilkEntry) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[i].Liters += e.Liters
		groups[i].Amount += e.TotalAmount
		groups[i].Entries = append(groups[i].Entries, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})
	return groups
}

// FarmerGroup is one farmer's accumulated collection.
type FarmerGroup struct {
	FarmerID   string  `json:"farmerId"`
	FarmerName string  `json:"farmerName"`
	Liters     float64 `json:"liters"`
	Amount     float64 `json:"amount"`
	EntryCount int     `json:"entryCount"`
}

// NameResolver maps a farmer id to a display name. ResolveFarmerName
// partially applied over a customer snapshot is the usual implementation.
type NameResolver func(farmerID string) string

// GroupByFarmer buckets entries per farmer (case-insensitive id), resolving
// each display name once. Output is ordered ascending by resolved name, with
// farmer id as tiebreak. A nil resolver falls back to the raw id.
func GroupByFarmer(entries []models.MilkEntry, resolve NameResolver) []FarmerGroup {
	index := make(map[string]int)
	var groups []FarmerGroup
	for _, e := range entries {
		key := strings.ToLower(e.FarmerID)
		i, ok := index[key]
		if !ok {
			name := e.FarmerID
			if resolve != nil {
				name = resolve(e.FarmerID)
			}
			i = len(groups)
			index[key] = i
			groups = append(groups, FarmerGroup{FarmerID: e.FarmerID, FarmerName: name})
		}
		groups[i].Liters += e.Liters
		groups[i].Amount += e.TotalAmount
		groups[i].EntryCount++
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].FarmerName != groups[j].FarmerName {
			return groups[i].FarmerName < groups[j].FarmerName
		}
		return groups[i].FarmerID < groups[j].FarmerID
	})
	return groups
}
