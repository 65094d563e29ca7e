package overtime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		day       DayContext
		regular   string
		dailyOT   string
		restOT    string
		holidayOT string
	}{
		{"weekday under threshold", "4", DayContext{}, "4", "0", "0", "0"},
		{"weekday exactly threshold", "8", DayContext{}, "8", "0", "0", "0"},
		{"weekday with daily overtime", "10.5", DayContext{}, "8", "2.5", "0", "0"},
		{"rest day", "10", DayContext{IsRestDay: true}, "0", "0", "10", "0"},
		{"public holiday on weekday", "4", DayContext{IsPublicHoliday: true}, "0", "0", "0", "4"},
		{"public holiday on saturday", "9", DayContext{IsRestDay: true, IsPublicHoliday: true}, "0", "0", "0", "9"},
		{"zero hours", "0", DayContext{}, "0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Classify(hours(tt.total), tt.day)
			require.NoError(t, err)

			assert.True(t, b.RegularHours.Equal(hours(tt.regular)), "regular = %s", b.RegularHours)
			assert.True(t, b.DailyOTHours.Equal(hours(tt.dailyOT)), "daily ot = %s", b.DailyOTHours)
			assert.True(t, b.RestDayOTHours.Equal(hours(tt.restOT)), "rest ot = %s", b.RestDayOTHours)
			assert.True(t, b.PublicHolidayOTHours.Equal(hours(tt.holidayOT)), "holiday ot = %s", b.PublicHolidayOTHours)
		})
	}
}

func TestClassify_CategoriesSumToTotal(t *testing.T) {
	days := []DayContext{
		{},
		{IsRestDay: true},
		{IsPublicHoliday: true},
		{IsRestDay: true, IsPublicHoliday: true},
	}

	// every hundredth of an hour from 0 to 16
	for cents := int64(0); cents <= 1600; cents++ {
		total := decimal.New(cents, -2)
		for _, day := range days {
			b, err := Classify(total, day)
			require.NoError(t, err)
			if !b.Total().Equal(total) {
				t.Fatalf("Classify(%s, %+v) sums to %s", total, day, b.Total())
			}
			if b.RegularHours.IsNegative() || b.DailyOTHours.IsNegative() ||
				b.RestDayOTHours.IsNegative() || b.PublicHolidayOTHours.IsNegative() {
				t.Fatalf("Classify(%s, %+v) produced a negative bucket: %+v", total, day, b)
			}
		}
	}
}

func TestClassify_NegativeHours(t *testing.T) {
	_, err := Classify(hours("-0.5"), DayContext{})
	assert.ErrorIs(t, err, ErrNegativeHours)
}

func TestIsRestDay(t *testing.T) {
	assert.True(t, IsRestDay(time.Saturday))
	assert.True(t, IsRestDay(time.Sunday))
	for _, w := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		assert.False(t, IsRestDay(w), w.String())
	}
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"seven and a half hours", start.Add(7*time.Hour + 30*time.Minute), "7.5"},
		{"ten and a half hours", start.Add(10*time.Hour + 30*time.Minute), "10.5"},
		{"twenty minutes rounds to 0.33", start.Add(20 * time.Minute), "0.33"},
		{"forty minutes rounds half-up to 0.67", start.Add(40 * time.Minute), "0.67"},
		{"exact half cent rounds up", start.Add(18 * time.Second), "0.01"},
		{"clock skew is negative", start.Add(-time.Hour), "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoursBetween(start, tt.end)
			assert.True(t, got.Equal(hours(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestBreakdown_Add(t *testing.T) {
	a := Breakdown{RegularHours: hours("8"), DailyOTHours: hours("1.25"), RestDayOTHours: decimal.Zero, PublicHolidayOTHours: decimal.Zero}
	b := Breakdown{RegularHours: decimal.Zero, DailyOTHours: decimal.Zero, RestDayOTHours: hours("6"), PublicHolidayOTHours: hours("3.5")}

	sum := a.Add(b)
	assert.True(t, sum.Total().Equal(hours("18.75")))
	assert.True(t, sum.RestDayOTHours.Equal(hours("6")))
}
