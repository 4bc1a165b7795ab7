package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Session is one of the two daily collection windows.
type Session string

const (
	SessionMorning Session = "morning"
	SessionEvening Session = "evening"
)

// ParseSession validates a raw session string.
func ParseSession(raw string) (Session, error) {
	switch Session(raw) {
	case SessionMorning, SessionEvening:
		return Session(raw), nil
	default:
		return "", &ValidationError{Field: "session", Message: fmt.Sprintf("invalid session %q", raw)}
	}
}

// MilkEntry represents one milk collection event.
type MilkEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// Session is the collection window, morning or evening.
	Session Session `json:"session"`

	// Date is the calendar date of collection (yyyy-mm-dd, no time component).
	Date string `json:"date"`

	// FarmerID identifies the farmer. Compared case-insensitively for
	// lookups but stored verbatim.
	FarmerID string `json:"farmerId"`

	// FarmerName is the display name captured on the form; may be empty.
	FarmerName string `json:"farmerName"`

	Liters float64 `json:"liters"`
	Fat    float64 `json:"fat"`
	SNF    float64 `json:"snf"`
	Rate   float64 `json:"rate"`

	// TotalAmount is liters * rate rounded to 2 decimal places at save
	// time. It is stored, never re-derived on read, so every save path
	// must recompute it.
	TotalAmount float64 `json:"totalAmount"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// Round2 rounds a monetary value to 2 decimal places. Decimal arithmetic is
// used because float math misrounds halfway cases (e.g. 10.5*29.3).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// NewMilkEntry builds an entry with TotalAmount computed from liters and rate.
func NewMilkEntry(session Session, date, farmerID, farmerName string, liters, fat, snf, rate float64) MilkEntry {
	return MilkEntry{
		Session:     session,
		Date:        date,
		FarmerID:    farmerID,
		FarmerName:  farmerName,
		Liters:      liters,
		Fat:         fat,
		SNF:         snf,
		Rate:        rate,
		TotalAmount: Round2(liters * rate),
	}
}
