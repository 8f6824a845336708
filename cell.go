// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

// CellKind discriminates the tagged union a Cell holds.
type CellKind int

const (
	CellBlank CellKind = iota
	CellNumber
	CellBoolean
	CellString       // shared-string pooled text
	CellInlineString // inline text, no pool entry
	CellRichString   // shared-string pooled rich-text runs
	CellFormula
	CellDate // a number cell whose format renders it as a date
	CellURL
)

// Cell is the tagged-union value one (row, column) position in a worksheet
// holds, plus an optional Format.
type Cell struct {
	Kind CellKind

	Number float64
	Bool   bool
	Text   string // CellString, CellInlineString, CellURL display text
	Runs   []RichTextRun

	FormulaText    string
	FormulaCached  float64
	IsDynamicArray bool
	SpillRange     string

	URL         string
	URLTooltip  string
	URLDisplay  string

	Format *Format

	// sharedIndex is filled in by the cell store at write time for
	// CellString/CellRichString cells stored in pooled mode.
	sharedIndex int
}

// NewNumberCell returns a numeric cell.
func NewNumberCell(v float64, f *Format) Cell {
	return Cell{Kind: CellNumber, Number: v, Format: f}
}

// NewBooleanCell returns a boolean cell.
func NewBooleanCell(v bool, f *Format) Cell {
	return Cell{Kind: CellBoolean, Bool: v, Format: f}
}

// NewStringCell returns a plain-text cell; the store decides at write time
// whether it goes through the shared-string pool or is written inline,
// based on the worksheet's mode.
func NewStringCell(s string, f *Format) Cell {
	return Cell{Kind: CellString, Text: s, Format: f}
}

// NewRichStringCell returns a cell whose text carries per-run formatting.
func NewRichStringCell(runs []RichTextRun, f *Format) Cell {
	return Cell{Kind: CellRichString, Runs: runs, Format: f}
}

// NewFormulaCell returns a formula cell. cached is the value Excel should
// display before it first recalculates.
func NewFormulaCell(formula Formula, cached float64, f *Format) Cell {
	return Cell{
		Kind: CellFormula, FormulaText: formula.Text, FormulaCached: cached,
		IsDynamicArray: formula.IsDynamicArray, Format: f,
	}
}

// NewDateCell returns a number cell carrying an Excel serial date/time; the
// caller is responsible for giving it a date-formatted Format so it
// renders correctly (the value itself is stored identically to a plain
// number).
func NewDateCell(serial float64, f *Format) Cell {
	return Cell{Kind: CellDate, Number: serial, Format: f}
}

// NewBlankCell returns a formatted-but-empty cell; a blank cell with no
// format is simply omitted from the row by the assembler.
func NewBlankCell(f *Format) Cell {
	return Cell{Kind: CellBlank, Format: f}
}

// NewURLCell returns a hyperlink cell: text is the cell's displayed text
// (defaulting to the URL itself when empty), url is the link target.
func NewURLCell(url, text, tooltip string, f *Format) Cell {
	if text == "" {
		text = url
	}
	return Cell{Kind: CellURL, URL: url, Text: text, URLTooltip: tooltip, Format: f}
}
