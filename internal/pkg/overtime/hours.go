package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPrecision is the number of decimal places every stored or reported
// hour value carries.
const HoursPrecision = 2

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// RoundHours applies the rounding policy: half-up to two decimal places.
// decimal.Round rounds half away from zero, which is half-up for the
// non-negative values the ledger stores.
func RoundHours(h decimal.Decimal) decimal.Decimal {
	return h.Round(HoursPrecision)
}

// HoursBetween returns the rounded fractional hours from start to end.
// A 7h30m shift yields 7.5. The result is negative when end precedes start;
// callers decide what that means.
func HoursBetween(start, end time.Time) decimal.Decimal {
	return DurationHours(end.Sub(start))
}

// DurationHours converts d to rounded fractional hours.
func DurationHours(d time.Duration) decimal.Decimal {
	return RoundHours(decimal.NewFromInt(int64(d)).Div(nanosPerHour))
}
