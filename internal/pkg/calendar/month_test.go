package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestMonthGrid(t *testing.T) {
	holidays := map[string]bool{"2024-02-10": true, "2024-02-14": false}

	grid := MonthGrid(2024, time.February, holidays)
	require.Len(t, grid, 29)

	assert.Equal(t, "2024-02-01", Key(grid[0].Date))
	assert.Equal(t, "2024-02-29", Key(grid[28].Date))

	for i, d := range grid {
		assert.Equal(t, i+1, d.DayNumber)
		if i > 0 {
			assert.True(t, grid[i-1].Date.Before(d.Date), "grid must be ascending")
		}
	}

	// 2024-02-03 is a Saturday, 2024-02-05 a Monday
	assert.True(t, grid[2].IsWeekend)
	assert.Equal(t, "Sat", grid[2].DayName())
	assert.False(t, grid[4].IsWeekend)
	assert.Equal(t, "Mon", grid[4].DayName())

	// 2024-02-10 is a Saturday holiday
	assert.True(t, grid[9].IsHoliday)
	assert.True(t, grid[9].IsWeekend)
	assert.False(t, grid[10].IsHoliday)

	// a false value is a working day, same as a missing key
	assert.False(t, grid[13].IsHoliday)

	assert.Len(t, MonthGrid(2023, time.February, nil), 28)
}

func TestDateOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	// 20:00 UTC on the 1st is 03:00 on the 2nd in UTC+7
	instant := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", Key(DateOf(instant, time.UTC)))
	assert.Equal(t, "2024-03-02", Key(DateOf(instant, jakarta)))
	assert.Equal(t, time.UTC, DateOf(instant, jakarta).Location())
}

func TestOverlaps(t *testing.T) {
	first, last := MonthBounds(2024, time.March)
	assert.Equal(t, "2024-03-01", Key(first))
	assert.Equal(t, "2024-03-31", Key(last))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", Date(2024, 3, 5), Date(2024, 3, 7), true},
		{"ends on first day", Date(2024, 2, 20), Date(2024, 3, 1), true},
		{"starts on last day", Date(2024, 3, 31), Date(2024, 4, 2), true},
		{"spans whole month", Date(2024, 2, 1), Date(2024, 4, 30), true},
		{"before", Date(2024, 2, 1), Date(2024, 2, 29), false},
		{"after", Date(2024, 4, 1), Date(2024, 4, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, first, last))
		})
	}
}
