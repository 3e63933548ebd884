// Package aggregate derives summary views from the entity collections.
// Every function is pure and recomputes from its inputs on each call;
// nothing is cached.
package aggregate

import "time"

// MonthBounds returns the first instant of the calendar month containing
// date and the first instant of the following month, in date's location.
func MonthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// InMonth reports whether t falls within the calendar month containing ref,
// judged in ref's location.
func InMonth(t, ref time.Time) bool {
	start, end := MonthBounds(ref)
	local := t.In(ref.Location())
	return !local.Before(start) && local.Before(end)
}
