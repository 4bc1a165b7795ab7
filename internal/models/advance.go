package models

// AdvanceEntry is a cash advance paid out to a farmer ahead of billing.
type AdvanceEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	Date        string  `json:"date"`
	FarmerID    string  `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// SupplementEntry is an advance issued in kind (feed supplements etc.)
// rather than cash. Same shape as AdvanceEntry but persisted independently.
type SupplementEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	FarmerID    string  `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   int64   `json:"createdAt"`
}
