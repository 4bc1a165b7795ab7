package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/smerla/milkbook/internal/models"
)

// Period is one calendar month covered by the entry set, used for monthly
// reporting. StartDate and EndDate are the month's first and last calendar
// days (yyyy-mm-dd).
type Period struct {
	Key       string `json:"key"`   // "2024-06"
	Year      int    `json:"year"`
	Month     int    `json:"month"` // 1-12
	Label     string `json:"label"` // "June 2024"
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DerivePeriods partitions entries by calendar month, most recent month
// first. Entries with unparseable dates are skipped.
func DerivePeriods(entries []models.MilkEntry) []Period {
	seen := make(map[string]struct{})
	var periods []Period
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		periods = append(periods, monthPeriod(d.Year(), d.Month()))
	}
	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Month > periods[j].Month
	})
	return periods
}

// MonthPeriod returns the bounds of one calendar month, or nil when the
// month is out of range.
func MonthPeriod(year, month int) *Period {
	if month < 1 || month > 12 || year < 1 {
		return nil
	}
	p := monthPeriod(year, time.Month(month))
	return &p
}

// monthPeriod computes a month's bounds. Day 0 of the following month is the
// last day of this one, which handles 28/29/30/31-day months uniformly.
func monthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return Period{
		Key:       fmt.Sprintf("%04d-%02d", year, int(month)),
		Year:      year,
		Month:     int(month),
		Label:     fmt.Sprintf("%s %d", month.String(), year),
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}
