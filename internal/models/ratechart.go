package models

// RateChartRow maps a fat/SNF combination to a per-liter rate, effective
// from a given date. Multiple rows may exist for the same combination with
// different effective dates; the latest row on or before the lookup date
// wins.
type RateChartRow struct {
	ID            string  `json:"id"`
	Fat           float64 `json:"fat"`
	SNF           float64 `json:"snf"`
	RatePerLiter  float64 `json:"ratePerLiter"`
	EffectiveFrom string  `json:"effectiveFrom"`
	CreatedAt     int64   `json:"createdAt"`
}

// FeedEntry records feed handed out to a farmer.
type FeedEntry struct {
	ID         string  `json:"id"`
	FarmerID   string  `json:"farmerId"`
	FarmerName string  `json:"farmerName"`
	FeedName   string  `json:"feedName"`
	Rate       float64 `json:"rate"`
	CreatedAt  int64   `json:"createdAt"`
}
