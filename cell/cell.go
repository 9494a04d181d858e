// SPDX-License-Identifier: MIT

// Package cell defines the value stored at one frame position.
//
// A Value is a closed union of four kinds:
//
//	NA     - absent or non-numeric sentinel (the zero Value)
//	Number - float64
//	Text   - string (empty text is NOT NA)
//	Date   - time.Time
//
// Values are small, comparable-by-method and immutable; frames store them by
// value in row-major slices.
package cell

import (
	"math"
	"strings"
	"time"
)

// Kind enumerates the variants of Value.
type Kind uint8

const (
	// KindNA marks the absent-value sentinel. It is the zero Kind.
	KindNA Kind = iota
	// KindNumber marks a float64 payload.
	KindNumber
	// KindDate marks a time.Time payload.
	KindDate
	// KindText marks a string payload.
	KindText
)

// String returns a short lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindText:
		return "text"
	default:
		return "na"
	}
}

// Value is one cell. The zero Value is NA.
type Value struct {
	kind Kind
	num  float64
	text string
	date time.Time
}

// NA returns the absent-value sentinel.
func NA() Value { return Value{} }

// Number wraps f. NaN is normalized to NA so that the sentinel stays the
// single representation of "missing".
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}

	return Value{kind: KindNumber, num: f}
}

// Text wraps s verbatim. Text("") is an empty string, not NA.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Date wraps t.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNA reports whether v is the absent-value sentinel.
func (v Value) IsNA() bool { return v.kind == KindNA }

// Float returns the numeric payload; ok is false unless v is a Number.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return math.NaN(), false
	}

	return v.num, true
}

// Str returns the text payload; ok is false unless v is Text.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}

	return v.text, true
}

// Time returns the date payload; ok is false unless v is a Date.
func (v Value) Time() (t time.Time, ok bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}

	return v.date, true
}

// Numeric projects v onto float64 for numeric consumers:
// numbers as-is, dates as Unix seconds, everything else NaN.
func (v Value) Numeric() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindDate:
		return float64(v.date.Unix())
	default:
		return math.NaN()
	}
}

// Equal reports whether a and b hold the same kind and payload.
// Two NA values are equal; dates compare with time.Time.Equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindDate:
		return v.date.Equal(o.date)
	default:
		return true
	}
}

// Compare orders values: NA < numbers < dates < text, then by payload.
// It returns -1, 0 or +1.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
	case KindDate:
		return a.date.Compare(b.date)
	case KindText:
		return strings.Compare(a.text, b.text)
	}

	return 0
}

// String renders v with the default precision of Format.
func (v Value) String() string { return Format(v, DefaultPrecision) }
