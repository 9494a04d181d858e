// SPDX-License-Identifier: MIT

// Package cell: typing of raw tokens.
//
// Order of attempts is fixed: NA pattern -> number -> date -> text.
// The order matters: "2024" is a number, never a date, and "NaN" is text.
// Infinities are numbers only when spelled the way Format writes them
// ("Inf", "+Inf", "-Inf"); "inf" or "Infinity" stay text.

package cell

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// naPatterns lists the tokens (upper-cased) treated as missing.
var naPatterns = map[string]struct{}{
	"NA":   {},
	"N/A":  {},
	"#N/A": {},
}

// infTokens are the only spellings parsed as infinite numbers.
var infTokens = map[string]struct{}{
	"Inf":  {},
	"+Inf": {},
	"-Inf": {},
}

// dateLayouts are tried in order by Parse.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	DateTimeLayout,
	"2006-01-02 15:04:05",
}

// IsNAToken reports whether s is empty (after trimming) or an NA pattern.
func IsNAToken(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return true
	}
	_, ok := naPatterns[strings.ToUpper(t)]

	return ok
}

// Parse types a raw text token.
//
// Implementation:
//   - Stage 1: empty or NA pattern -> NA when keepNA, else empty Text.
//   - Stage 2: strconv.ParseFloat on the trimmed token (NaN and
//     non-canonical infinities rejected).
//   - Stage 3: ISO date layouts.
//   - Stage 4: Text holding the original (untrimmed) token.
//
// Complexity: O(len(s)).
func Parse(s string, keepNA bool) Value {
	if IsNAToken(s) {
		if keepNA {
			return NA()
		}
		return Text("")
	}

	t := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) {
		if !math.IsInf(f, 0) {
			return Number(f)
		}
		if _, ok := infTokens[t]; ok {
			return Number(f)
		}
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, t); err == nil {
			return Date(d)
		}
	}

	return Text(s)
}

// Make types an arbitrary Go value.
// Strings go through Parse; non-string input passes through unchanged in
// meaning: Value as-is, Go numbers as Number, time.Time as Date, nil as NA,
// bool and fmt.Stringer values as Text.
func Make(raw any, keepNA bool) Value {
	switch x := raw.(type) {
	case nil:
		return NA()
	case Value:
		return x
	case string:
		return Parse(x, keepNA)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case time.Time:
		return Date(x)
	case bool:
		return Text(strconv.FormatBool(x))
	default:
		return Text(fmt.Sprint(x))
	}
}

// MakeAll types every element of raw with Make.
func MakeAll(raw []any, keepNA bool) []Value {
	out := make([]Value, len(raw))
	for i, r := range raw {
		out[i] = Make(r, keepNA)
	}

	return out
}
