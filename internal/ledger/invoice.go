package ledger

import (
	"sort"

	"github.com/smerla/milkbook/internal/models"
)

// BuildInvoice generates a billing invoice for one farmer over an inclusive
// date range. It filters entries for the farmer and period, merges same
// (date, session) entries into line items with weighted-average rates, and
// freezes totals computed over all matched entries rather than the merged
// items, so the invoice totals always equal Summarize over the same
// filtered set.
//
// Returns a ValidationError when no entries match; that is a user-facing
// condition, not a fault. The invoice id and creation timestamp are left
// unset for the persistence layer to assign.
func BuildInvoice(
	entries []models.MilkEntry,
	customer *models.CustomerProfile,
	farmerID, periodStart, periodEnd string,
	status models.InvoiceStatus,
	notes string,
) (*models.BillingInvoice, error) {
	if farmerID == "" {
		return nil, &models.ValidationError{Field: "farmerId", Message: "farmer id is required"}
	}

	matched := Filter(entries, EntryFilter{From: periodStart, To: periodEnd, FarmerID: farmerID})
	if len(matched) == 0 {
		return nil, &models.ValidationError{
			Field:   "period",
			Message: "no milk entries found for the selected farmer and date range",
		}
	}

	totals := Summarize(matched)

	farmerName := farmerID
	if customer != nil && customer.FarmerName != "" {
		farmerName = customer.FarmerName
	}

	return &models.BillingInvoice{
		FarmerID:    farmerID,
		FarmerName:  farmerName,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalLiters: totals.TotalLiters,
		GrossAmount: totals.TotalAmount,
		Status:      status,
		Notes:       notes,
		LineItems:   MergeLineItems(matched),
	}, nil
}

// MergeLineItems collapses entries sharing a (date, session) key into single
// line items. Liters and amounts are summed; the merged rate is the weighted
// average amount/liters so that rate*liters reconstructs the amount exactly.
// A group whose liters sum to zero gets rate 0 rather than dividing by zero.
// Output is ordered by date, morning before evening. Merging is idempotent:
// re-merging the result changes nothing.
func MergeLineItems(entries []models.MilkEntry) []models.BillingLineItem {
	type key struct {
		date    string
		session models.Session
	}
	index := make(map[key]int)
	var items []models.BillingLineItem
	for _, e := range entries {
		k := key{e.Date, e.Session}
		i, ok := index[k]
		if !ok {
			i = len(items)
			index[k] = i
			items = append(items, models.BillingLineItem{Date: e.Date, Session: e.Session})
		}
		items[i].Liters += e.Liters
		items[i].Amount += e.TotalAmount
	}
	for i := range items {
		if items[i].Liters == 0 {
			items[i].Rate = 0
			continue
		}
		items[i].Rate = items[i].Amount / items[i].Liters
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return sessionRank(items[i].Session) < sessionRank(items[j].Session)
	})
	return items
}
