package timecalc

import "time"

// The business week runs Saturday 00:00:00 through Friday 23:59:59.
// This is a domain choice (timesheets close out on Fridays), not ISO
// week numbering, and is not configurable.

const dateLayout = "2006-01-02"

// WeekStart returns the Saturday that starts the week containing t,
// normalized to the start of that calendar day in t's location.
func WeekStart(t time.Time) time.Time {
	// weekday 0 = Sunday, ..., 6 = Saturday
	dow := int(t.Weekday())
	daysBack := 0
	if dow != 6 {
		daysBack = dow + 1
	}
	return StartOfDay(t.AddDate(0, 0, -daysBack))
}

// WeekEnd returns the Friday that ends the week containing t,
// normalized to the last instant of that calendar day.
func WeekEnd(t time.Time) time.Time {
	return EndOfDay(WeekStart(t).AddDate(0, 0, 6))
}

// NextWeek and PrevWeek shift an established week start by one week.
// They do not re-derive the window from the current date.
func NextWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7)
}

func PrevWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -7)
}

// StartOfDay normalizes t to 00:00:00 of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normalizes t to the last nanosecond of its calendar day, so
// the seventh day of a week window is included in full.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FormatDate renders t as a zero-padded "2006-01-02" string. Range
// filters compare these strings lexicographically, which is only valid
// because the representation is fixed-width.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDisplayDate renders t for human-facing report headers.
func FormatDisplayDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}
