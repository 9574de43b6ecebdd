package timecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"saturday maps to itself", date(2024, time.January, 6), "2024-01-06"},
		{"sunday goes back one day", date(2024, time.January, 7), "2024-01-06"},
		{"monday", date(2024, time.January, 8), "2024-01-06"},
		{"wednesday", date(2024, time.January, 10), "2024-01-06"},
		{"friday closes the week", date(2024, time.January, 12), "2024-01-06"},
		{"next saturday opens a new week", date(2024, time.January, 13), "2024-01-13"},
		{"across month boundary", date(2024, time.February, 1), "2024-01-27"},
		{"across year boundary", date(2024, time.January, 2), "2023-12-30"},
		{"leap day", date(2024, time.February, 29), "2024-02-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.Saturday, got.Weekday())
		})
	}
}

func TestWeekEnd(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.January, 6), "2024-01-12"},
		{date(2024, time.January, 10), "2024-01-12"},
		{date(2024, time.January, 12), "2024-01-12"},
		{date(2024, time.January, 13), "2024-01-19"},
	}
	for _, tt := range tests {
		got := WeekEnd(tt.in)
		assert.Equal(t, tt.want, FormatDate(got))
		assert.Equal(t, time.Friday, got.Weekday())
	}
}

func TestWeekWindowProperties(t *testing.T) {
	// Walk a full year of days and check the window invariants hold
	// regardless of month, year, or leap boundaries.
	d := date(2024, time.January, 1)
	for i := 0; i < 366; i++ {
		start := WeekStart(d)
		end := WeekEnd(d)

		assert.Equal(t, time.Saturday, start.Weekday(), "start of week for %s", FormatDate(d))
		assert.Equal(t, time.Friday, end.Weekday(), "end of week for %s", FormatDate(d))
		assert.False(t, d.Before(start), "weekStart(%s) must not be after it", FormatDate(d))
		assert.False(t, d.After(end), "weekEnd(%s) must not be before it", FormatDate(d))

		// The window spans exactly 7 calendar days.
		assert.Equal(t, FormatDate(start.AddDate(0, 0, 6)), FormatDate(end))

		// Idempotence on the window start.
		assert.Equal(t, start, WeekStart(start))

		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekNavigation(t *testing.T) {
	start := WeekStart(date(2024, time.January, 10))

	next := NextWeek(start)
	prev := PrevWeek(start)

	assert.Equal(t, "2024-01-13", FormatDate(next))
	assert.Equal(t, "2023-12-30", FormatDate(prev))

	// Shifted starts are valid window starts themselves.
	assert.Equal(t, next, WeekStart(next))
	assert.Equal(t, start, PrevWeek(NextWeek(start)))
}

func TestDayNormalization(t *testing.T) {
	noon := time.Date(2024, time.March, 5, 12, 34, 56, 789, time.UTC)

	start := StartOfDay(noon)
	end := EndOfDay(noon)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, start.Day(), end.Day())
}

func TestFormatParseDate(t *testing.T) {
	d := date(2024, time.March, 5)
	assert.Equal(t, "2024-03-05", FormatDate(d))

	parsed, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDate("2024-3-5")
	assert.Error(t, err, "non-zero-padded dates must be rejected")

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)
}
