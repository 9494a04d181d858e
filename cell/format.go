// SPDX-License-Identifier: MIT

package cell

import (
	"math"
	"strconv"
	"time"
)

const (
	// DefaultPrecision is the number of decimals used for non-integral numbers.
	DefaultPrecision = 3

	// NAString is the literal written for NA cells.
	NAString = "NA"

	// DateLayout is used for dates without a time-of-day component.
	DateLayout = "2006-01-02"

	// DateTimeLayout is used for dates carrying a time-of-day component.
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Format renders v as text.
//   - integral numbers are written without padding or decimals;
//   - other numbers are fixed to dp places (dp < 0 means shortest repr);
//   - dates use DateLayout, or DateTimeLayout when a time of day is set;
//     dates with a non-zero UTC offset use RFC3339 so the instant survives;
//   - NA is NAString; text is verbatim.
//
// Complexity: O(1) per cell.
func Format(v Value, dp int) string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num, dp)
	case KindText:
		return v.text
	case KindDate:
		if _, off := v.date.Zone(); off != 0 {
			return v.date.Format(time.RFC3339Nano)
		}
		if v.date.Hour() == 0 && v.date.Minute() == 0 && v.date.Second() == 0 && v.date.Nanosecond() == 0 {
			return v.date.Format(DateLayout)
		}
		return v.date.Format(DateTimeLayout)
	default:
		return NAString
	}
}

func formatNumber(f float64, dp int) string {
	if math.IsInf(f, 1) {
		return "Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	if dp < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', dp, 64)
}
