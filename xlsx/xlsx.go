// SPDX-License-Identifier: MIT

// Package xlsx exchanges frames with spreadsheet workbooks.
//
// The sheet layout mirrors textio.Writer: an optional header row (its first
// cell left empty when row labels are written) followed by one row per frame
// row, the label first. Numbers are stored as numeric cells, text and dates as
// strings (dates in the cell package layout), NA cells are left empty.
// Reading goes through textio.Reader.ReadRecords, so cell typing and ragged
// row handling are identical to the text path.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/lvframe/cell"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/textio"
)

// DefaultSheet is the sheet written when no name is configured.
const DefaultSheet = "Sheet1"

var (
	// ErrNoSheet indicates that the requested sheet does not exist.
	ErrNoSheet = errors.New("xlsx: sheet not found")

	// ErrNilTable indicates that a nil table was passed to Write.
	ErrNilTable = errors.New("xlsx: nil table")
)

// Option configures Write and Read.
type Option func(*options)

type options struct {
	sheet  string
	header bool
	index  bool
}

// WithSheet selects the sheet to write or read. Read defaults to the first
// sheet of the workbook.
func WithSheet(name string) Option { return func(o *options) { o.sheet = name } }

// WithHeader toggles the header row on Write.
func WithHeader(on bool) Option { return func(o *options) { o.header = on } }

// WithIndex toggles the row label column on Write.
func WithIndex(on bool) Option { return func(o *options) { o.index = on } }

func gather(opts []Option) options {
	o := options{header: true, index: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Write stores t as a single-sheet workbook on w.
//
// Implementation:
//   - Stage 1: create the workbook and rename the default sheet.
//   - Stage 2: header row, then one row per frame row.
//   - Stage 3: serialize to w.
//
// Complexity: O(r*c).
func Write(w io.Writer, t frame.Table, opts ...Option) error {
	if t == nil {
		return ErrNilTable
	}
	o := gather(opts)
	f, err := build(t, o)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}

	return nil
}

// WriteFile stores t as a workbook at path.
func WriteFile(path string, t frame.Table, opts ...Option) error {
	if t == nil {
		return ErrNilTable
	}
	f, err := build(t, gather(opts))
	if err != nil {
		return err
	}
	defer f.Close()

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}

	return nil
}

// build lays t out on a fresh workbook.
func build(t frame.Table, o options) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := DefaultSheet
	if o.sheet != "" && o.sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, o.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("xlsx: sheet %q: %w", o.sheet, err)
		}
		sheet = o.sheet
	}

	nr, nc := t.Shape()
	off := 0 // first data column (0-based)
	if o.index {
		off = 1
	}
	row := 1
	if o.header {
		for j := 0; j < nc; j++ {
			if err := put(f, sheet, off+j, row, t.ColName(j)); err != nil {
				f.Close()
				return nil, err
			}
		}
		row++
	}
	var i, j int
	for i = 0; i < nr; i++ {
		if o.index {
			if err := put(f, sheet, 0, row, t.RowName(i)); err != nil {
				f.Close()
				return nil, err
			}
		}
		for j = 0; j < nc; j++ {
			if err := putCell(f, sheet, off+j, row, t.Get(i, j)); err != nil {
				f.Close()
				return nil, err
			}
		}
		row++
	}

	return f, nil
}

// put writes a raw value at the 0-based column col and 1-based row.
func put(f *excelize.File, sheet string, col, row int, v any) error {
	ref, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Errorf("xlsx: cell (%d,%d): %w", col, row, err)
	}
	if err = f.SetCellValue(sheet, ref, v); err != nil {
		return fmt.Errorf("xlsx: set %s: %w", ref, err)
	}

	return nil
}

// putCell writes one typed cell; NA stays empty.
func putCell(f *excelize.File, sheet string, col, row int, v cell.Value) error {
	switch v.Kind() {
	case cell.KindNA:
		return nil
	case cell.KindNumber:
		x, _ := v.Float()
		if math.IsInf(x, 0) {
			return put(f, sheet, col, row, cell.Format(v, -1))
		}
		return put(f, sheet, col, row, x)
	default:
		return put(f, sheet, col, row, cell.Format(v, -1))
	}
}

// Read loads one sheet of the workbook in src and parses it with r.
// Raw cell values are used, so number formats applied by spreadsheet
// applications do not leak into the cells.
//
// Errors:
//   - ErrNoSheet when WithSheet names a missing sheet or the workbook is empty.
//   - excelize open and read errors, wrapped.
func Read(src io.Reader, r textio.Reader, opts ...Option) (*frame.Frame, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()

	return readSheet(f, r, gather(opts))
}

// ReadFile is Read on the workbook stored at path.
func ReadFile(path string, r textio.Reader, opts ...Option) (*frame.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	defer f.Close()

	return readSheet(f, r, gather(opts))
}

func readSheet(f *excelize.File, r textio.Reader, o options) (*frame.Frame, error) {
	sheets := f.GetSheetList()
	sheet := o.sheet
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}
	found := false
	for _, s := range sheets {
		if s == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("xlsx: %q: %w", sheet, ErrNoSheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: rows of %q: %w", sheet, err)
	}

	return r.ReadRecords(rows), nil
}
