// SPDX-License-Identifier: MIT

// Package lvframe is an in-memory labeled table engine: a two-dimensional
// container of typed cells with row and column indices, plus the readers,
// writers and numeric consumers built around it.
//
// What is lvframe?
//
//	A small, pure-Go library that brings together:
//		• Cells: a closed union of number, text, date and NA with one formatter
//		• Indices: materialized labels, 1-based numbers, spreadsheet letters
//		• Frames: immutable tables with iloc slicing, isin, joins, transpose
//		• Builder: the one mutable type, for in-place construction
//		• I/O: delimited text Reader/Writer and xlsx workbooks
//		• Consumers: a NaN-aware numeric view and hierarchical clustering
//		• History: an undo/redo stack of frame versions
//
// Every Frame method returns a new frame; published frames are never changed,
// so history steps and concurrent readers can share them freely.
//
// Packages:
//
//	cell/      Value union, Make/Parse typing, Format
//	index/     Index contract with Labels, Numeric and Letters
//	series/    1-D labeled vector
//	frame/     Frame, Builder, Table, Annotated, ILoc, JoinRows/JoinCols
//	textio/    delimited text Reader and Writer
//	xlsx/      workbook import/export
//	matrix/    Dense numeric view, row statistics and distances
//	cluster/   single, complete and average linkage ordering
//	history/   undo/redo of frame versions
//	config/    YAML + LVFRAME_* environment configuration
//	logging/   slog setup with per-run identifiers
//	cmd/lvframe  command line front end
//
// Quick example:
//
//	f := textio.NewReader().IndexCols(1).Read(lines)
//	sub, err := f.ILoc("1:10", "Alpha:Gamma")
//	if err != nil { ... }
//	fmt.Println(sub.T())
package lvframe
