package timecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month time.Time
		want  int
	}{
		{date(2024, time.January, 15), 31},
		{date(2024, time.February, 1), 29}, // leap year
		{date(2023, time.February, 1), 28},
		{date(2024, time.April, 30), 30},
	}
	for _, tt := range tests {
		days := DaysInMonth(tt.month)
		assert.Len(t, days, tt.want)
		assert.Equal(t, 1, days[0].Day())
		assert.Equal(t, tt.want, days[len(days)-1].Day())
	}
}

func TestCalendarGrid(t *testing.T) {
	// March 2024 starts on a Friday, so the Sunday-first grid needs
	// five leading padding cells.
	grid := CalendarGrid(date(2024, time.March, 1))

	assert.Len(t, grid, 5+31)
	for i := 0; i < 5; i++ {
		assert.True(t, grid[i].IsZero(), "cell %d should be padding", i)
	}
	assert.Equal(t, 1, grid[5].Day())
	assert.Equal(t, 31, grid[len(grid)-1].Day())

	// September 2024 starts on a Sunday: no padding at all.
	grid = CalendarGrid(date(2024, time.September, 10))
	assert.Len(t, grid, 30)
	assert.False(t, grid[0].IsZero())
}
