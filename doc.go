// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package xlsxwriter provides a set of functions that allow you to write
// XLSX / XLSM spreadsheet files conforming to the ECMA-376 / ISO/IEC 29500
// "Office Open XML SpreadsheetML" subset that Microsoft Excel itself
// writes. The package builds a workbook model in memory (or, for large
// datasets, streams rows through a single resident row) and serializes it
// to a deflate-compressed ZIP archive. It does not read, modify, or
// round-trip existing files.
package xlsxwriter

// Dimensional limits imposed by the SpreadsheetML format itself.
const (
	// RowLimit is the maximum number of rows (1,048,576) a worksheet may
	// address (rows are 0-indexed internally, 1-indexed in A1 notation).
	RowLimit = 1048576
	// ColumnLimit is the maximum number of columns (16,384, i.e. "XFD") a
	// worksheet may address.
	ColumnLimit = 16384
	// MaxSheetNameLength is the maximum number of characters in a
	// worksheet name.
	MaxSheetNameLength = 31
	// MaxURLLength is the maximum number of characters in a hyperlink
	// target that Excel will accept.
	MaxURLLength = 2080
	// MaxStringLength is the maximum number of characters a single cell
	// string (shared or inline) may hold.
	MaxStringLength = 32767
	// MaxDefinedNameLength is the maximum number of characters in a
	// defined name.
	MaxDefinedNameLength = 255
	// MaxPageBreaks is the maximum number of row or column page breaks
	// per worksheet.
	MaxPageBreaks = 1023
	// MaxColumnWidth is the maximum column width in Excel width units.
	MaxColumnWidth = 255.0
	// MaxFontSize is the maximum font size Excel accepts.
	MaxFontSize = 409
	// MaxFontFamilyLength is the maximum length of a font family name.
	MaxFontFamilyLength = 31
	// rowBucketSize is the number of rows grouped together when computing
	// <row spans="min:max"> during finalization.
	rowBucketSize = 16
	// firstCustomNumFmtID is the first numFmtId assigned to a non-built-in
	// number format string.
	firstCustomNumFmtID = 164
)
