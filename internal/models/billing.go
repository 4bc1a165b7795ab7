package models

import "fmt"

// InvoiceStatus is the billing lifecycle state.
type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "draft"
	StatusIssued InvoiceStatus = "issued"
	StatusPaid   InvoiceStatus = "paid"
)

// ParseInvoiceStatus validates a raw status string.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch InvoiceStatus(raw) {
	case StatusDraft, StatusIssued, StatusPaid:
		return InvoiceStatus(raw), nil
	default:
		return "", &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status %q", raw)}
	}
}

// BillingLineItem is one merged (date, session) row within an invoice.
// Rate is a weighted average (amount / liters), not an arithmetic mean of
// the merged entries' rates, so rate * liters reconstructs amount.
type BillingLineItem struct {
	Date    string  `json:"date"`
	Session Session `json:"session"`
	Liters  float64 `json:"liters"`
	Rate    float64 `json:"rate"`
	Amount  float64 `json:"amount"`
}

// BillingInvoice is a point-in-time billing snapshot for one farmer over a
// period. Totals and the farmer display name are computed once at creation
// and frozen; the invoice never tracks later entry edits or profile renames.
type BillingInvoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	ID string `json:"id"`

	FarmerID string `json:"farmerId"`

	// FarmerName is a snapshot of the customer's display name at creation
	// time, or the raw farmer id when no profile matched.
	FarmerName string `json:"farmerName"`

	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`

	// TotalLiters and GrossAmount are summed over all source entries in the
	// period, not over the merged line items.
	TotalLiters float64 `json:"totalLiters"`
	GrossAmount float64 `json:"grossAmount"`

	Status InvoiceStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the invoice was generated.
	CreatedAt int64 `json:"createdAt"`

	Notes string `json:"notes,omitempty"`

	// LineItems are ordered by date then session and immutable once created.
	LineItems []BillingLineItem `json:"lineItems"`
}

// InvoiceFilter narrows invoice listings. Zero values mean "no filter";
// Status "all" is equivalent to empty.
type InvoiceFilter struct {
	FarmerID    string
	PeriodStart string
	PeriodEnd   string
	Status      string
}
