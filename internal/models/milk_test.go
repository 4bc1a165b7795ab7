package models

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{307.65000000000003, 307.65}, // 10.5 * 29.3 in float math
		{2.675, 2.68},                // halfway case that plain float rounding gets wrong
		{2.665, 2.67},
		{0.005, 0.01},
		{-2.675, -2.68},
		{100, 100},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewMilkEntryComputesTotal(t *testing.T) {
	entry := NewMilkEntry(SessionMorning, "2024-06-01", "F1", "", 10.5, 4.2, 8.6, 29.3)
	if entry.TotalAmount != 307.65 {
		t.Errorf("TotalAmount = %v, want 307.65", entry.TotalAmount)
	}
}

func TestParseSession(t *testing.T) {
	if _, err := ParseSession("morning"); err != nil {
		t.Errorf("ParseSession(morning) error = %v", err)
	}
	if _, err := ParseSession("evening"); err != nil {
		t.Errorf("ParseSession(evening) error = %v", err)
	}
	if _, err := ParseSession("noon"); !IsValidation(err) {
		t.Error("ParseSession(noon) expected ValidationError")
	}
}

func TestParseInvoiceStatus(t *testing.T) {
	for _, valid := range []string{"draft", "issued", "paid"} {
		if _, err := ParseInvoiceStatus(valid); err != nil {
			t.Errorf("ParseInvoiceStatus(%s) error = %v", valid, err)
		}
	}
	if _, err := ParseInvoiceStatus("void"); !IsValidation(err) {
		t.Error("ParseInvoiceStatus(void) expected ValidationError")
	}
}
