// SPDX-License-Identifier: MIT

package cell_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/cell"
)

func TestParse_Kinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		keepNA bool
		kind   cell.Kind
	}{
		{"na keep", "NA", true, cell.KindNA},
		{"na lower", "n/a", true, cell.KindNA},
		{"hash na", "#N/A", true, cell.KindNA},
		{"empty keep", "", true, cell.KindNA},
		{"blank keep", "   ", true, cell.KindNA},
		{"na drop", "NA", false, cell.KindText},
		{"float", "3.14", true, cell.KindNumber},
		{"negative", "-2", true, cell.KindNumber},
		{"exp", "1e-3", true, cell.KindNumber},
		{"year is number", "2024", true, cell.KindNumber},
		{"date", "2024-01-01", true, cell.KindDate},
		{"datetime", "2024-01-01T10:11:12", true, cell.KindDate},
		{"rfc3339", "2024-01-01T10:11:12Z", true, cell.KindDate},
		{"nan literal", "NaN", true, cell.KindText},
		{"word", "hello", true, cell.KindText},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.kind, cell.Parse(tc.in, tc.keepNA).Kind())
		})
	}
}

func TestParse_Payloads(t *testing.T) {
	f, ok := cell.Parse("3.14", true).Float()
	require.True(t, ok)
	require.Equal(t, 3.14, f)

	d, ok := cell.Parse("2024-01-01", true).Time()
	require.True(t, ok)
	require.True(t, d.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	s, ok := cell.Parse("hello", true).Str()
	require.True(t, ok)
	require.Equal(t, "hello", s)

	// NA dropped to empty text: distinct from the sentinel.
	v := cell.Parse("N/A", false)
	s, ok = v.Str()
	require.True(t, ok)
	require.Equal(t, "", s)
	require.False(t, v.IsNA())
}

func TestMake_NonStringPassThrough(t *testing.T) {
	now := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)

	assert.Equal(t, cell.KindNumber, cell.Make(7, true).Kind())
	assert.Equal(t, cell.KindNumber, cell.Make(int64(7), true).Kind())
	assert.Equal(t, cell.KindNumber, cell.Make(float32(1.5), true).Kind())
	assert.Equal(t, cell.KindDate, cell.Make(now, true).Kind())
	assert.Equal(t, cell.KindNA, cell.Make(nil, true).Kind())
	assert.Equal(t, cell.KindNA, cell.Make(math.NaN(), true).Kind())

	v := cell.Text("NA")
	assert.True(t, cell.Make(v, true).Equal(v), "a Value must pass through untouched")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", cell.Format(cell.Number(42), 3))
	assert.Equal(t, "-7", cell.Format(cell.Number(-7), 0))
	assert.Equal(t, "3.142", cell.Format(cell.Number(3.14159), 3))
	assert.Equal(t, "0.50", cell.Format(cell.Number(0.5), 2))
	assert.Equal(t, "0.1", cell.Format(cell.Number(0.1), -1))
	assert.Equal(t, "NA", cell.Format(cell.NA(), 3))
	assert.Equal(t, "", cell.Format(cell.Text(""), 3))
	assert.Equal(t, "2024-01-01", cell.Format(cell.Parse("2024-01-01", true), 3))
	assert.Equal(t, "2024-01-01T10:11:12", cell.Format(cell.Parse("2024-01-01 10:11:12", true), 3))
	assert.Equal(t, "Inf", cell.Format(cell.Number(math.Inf(1)), 3))
}

func TestCompareAndEqual(t *testing.T) {
	t.Parallel()

	d := cell.Date(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	ordered := []cell.Value{cell.NA(), cell.Number(-1), cell.Number(2), d, cell.Text("a"), cell.Text("b")}
	for i := 0; i+1 < len(ordered); i++ {
		require.Equal(t, -1, cell.Compare(ordered[i], ordered[i+1]), "pos %d", i)
		require.Equal(t, 1, cell.Compare(ordered[i+1], ordered[i]), "pos %d", i)
	}
	require.Equal(t, 0, cell.Compare(cell.NA(), cell.NA()))
	require.True(t, cell.NA().Equal(cell.Value{}))
	require.False(t, cell.Text("").Equal(cell.NA()))
	require.False(t, cell.Number(1).Equal(cell.Text("1")))
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2.5, cell.Number(2.5).Numeric())
	require.True(t, math.IsNaN(cell.Text("x").Numeric()))
	require.True(t, math.IsNaN(cell.NA().Numeric()))
	require.Equal(t, float64(86400), cell.Date(time.Unix(86400, 0)).Numeric())
}

func TestFormat_OffsetDateKeepsInstant(t *testing.T) {
	t.Parallel()

	v := cell.Parse("2024-01-01T10:00:00+02:00", true)
	require.Equal(t, cell.KindDate, v.Kind())
	s := cell.Format(v, 3)
	assert.Equal(t, "2024-01-01T10:00:00+02:00", s)

	back := cell.Parse(s, true)
	assert.True(t, back.Equal(v))
	got, _ := back.Time()
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, "2024-01-01T10:00:00", cell.Format(cell.Parse("2024-01-01T10:00:00Z", true), 3))
}

func TestFormat_LargeIntegersUnpadded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10000000000000000", cell.Format(cell.Parse("1e16", true), 3))
	assert.Equal(t, "-10000000000000000", cell.Format(cell.Number(-1e16), 2))
	assert.Equal(t, "0", cell.Format(cell.Number(math.Copysign(0, -1)), 3))
}

func TestParse_Infinities(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Inf", "+Inf", "-Inf"} {
		v := cell.Parse(s, true)
		require.Equal(t, cell.KindNumber, v.Kind(), s)
		f, _ := v.Float()
		assert.True(t, math.IsInf(f, 0), s)
	}
	for _, s := range []string{"inf", "Infinity", "-INF", "1e400"} {
		assert.Equal(t, cell.KindText, cell.Parse(s, true).Kind(), s)
	}
	assert.Equal(t, "-Inf", cell.Format(cell.Parse(cell.Format(cell.Number(math.Inf(-1)), 3), true), 3))
}
