package timecalc

import "time"

// DaysInMonth returns every calendar day of the month containing t.
func DaysInMonth(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)

	days := make([]time.Time, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(t.Year(), t.Month(), d, 0, 0, 0, 0, t.Location()))
	}
	return days
}

// CalendarGrid returns the month of t as a Sunday-first grid: zero
// time values pad the cells before the first day of the month.
func CalendarGrid(t time.Time) []time.Time {
	days := DaysInMonth(t)
	padding := int(days[0].Weekday())

	grid := make([]time.Time, 0, padding+len(days))
	for i := 0; i < padding; i++ {
		grid = append(grid, time.Time{})
	}
	return append(grid, days...)
}
