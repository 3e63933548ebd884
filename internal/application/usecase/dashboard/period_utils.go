// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// GeneratePeriodLabel returns a human-readable label for a month,
// e.g. "Mar 2025".
func GeneratePeriodLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[month], year)
}

// PreviousMonth returns the year and month before the month containing date.
func PreviousMonth(date time.Time) (int, time.Month) {
	prev := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}
