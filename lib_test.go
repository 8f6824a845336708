// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelWidth(t *testing.T) {
	cases := map[string]int{
		" ": 3, "!": 5, "\"": 6, "#": 7, "$": 7, "%": 11, "&": 10, "'": 3,
		"@": 13, "N": 10, "O": 10, "Q": 10, "V": 9, "W": 13, "Y": 7, "P": 8,
		"b": 8, "d": 8, "e": 8, "h": 8, "n": 8, "m": 12, "w": 11,
		"é": 8, "éé": 16, "ABC": 25, "Hello": 33, "12345": 35,
	}
	for s, want := range cases {
		assert.Equal(t, want, PixelWidth(s), "PixelWidth(%q)", s)
	}
}

func TestColumnNameToNumber(t *testing.T) {
	cases := map[string]int{"A": 0, "Z": 25, "AA": 26, "AZ": 51, "XFD": ColumnLimit - 1}
	for name, want := range cases {
		got, err := ColumnNameToNumber(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ColumnNameToNumber("")
	assert.Error(t, err)
	_, err = ColumnNameToNumber("1A")
	assert.Error(t, err)
	_, err = ColumnNameToNumber("XFE")
	assert.Error(t, err)
}

func TestColumnNumberToName(t *testing.T) {
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 51: "AZ"}
	for num, want := range cases {
		got, err := ColumnNumberToName(num)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ColumnNumberToName(-1)
	assert.Error(t, err)
	_, err = ColumnNumberToName(ColumnLimit)
	assert.Error(t, err)
}

func TestCellNameToCoordinates(t *testing.T) {
	col, row, err := CellNameToCoordinates("B3")
	assert.NoError(t, err)
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, row)

	_, _, err = CellNameToCoordinates("3B")
	assert.Error(t, err)
	_, _, err = CellNameToCoordinates("B0")
	assert.Error(t, err)
	_, _, err = CellNameToCoordinates("B")
	assert.Error(t, err)
	_, _, err = CellNameToCoordinates("")
	assert.Error(t, err)
}

func TestCoordinatesToCellName(t *testing.T) {
	name, err := CoordinatesToCellName(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, "B3", name)

	_, err = CoordinatesToCellName(-1, 0)
	assert.Error(t, err)
	_, err = CoordinatesToCellName(0, -1)
	assert.Error(t, err)
}

func TestCellRange(t *testing.T) {
	ref, err := CellRange(1, 1, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "A1:B2", ref)

	ref, err = CellRange(0, 0, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "A1", ref)
}

func TestParseCellRange(t *testing.T) {
	fc, fr, lc, lr, err := ParseCellRange("B2:A1")
	assert.NoError(t, err)
	assert.Equal(t, 0, fc)
	assert.Equal(t, 0, fr)
	assert.Equal(t, 1, lc)
	assert.Equal(t, 1, lr)

	fc, fr, lc, lr, err = ParseCellRange("C5")
	assert.NoError(t, err)
	assert.Equal(t, 2, fc)
	assert.Equal(t, 4, fr)
	assert.Equal(t, 2, lc)
	assert.Equal(t, 4, lr)

	_, _, _, _, err = ParseCellRange("!:A1")
	assert.Error(t, err)
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", QuoteSheetName("Sheet1"))
	assert.Equal(t, "'2024'", QuoteSheetName("2024"))
	assert.Equal(t, "'My Sheet'", QuoteSheetName("My Sheet"))
	assert.Equal(t, "'It''s Mine'", QuoteSheetName("It's Mine"))
}

func TestCheckSheetName(t *testing.T) {
	assert.NoError(t, CheckSheetName("Sheet1"))
	assert.Error(t, CheckSheetName(""))
	assert.Error(t, CheckSheetName("ThisNameIsWayTooLongForExcelToAccept"))
	assert.Error(t, CheckSheetName("a/b"))
	assert.Error(t, CheckSheetName("'Sheet1"))
	assert.Error(t, CheckSheetName("Sheet1'"))
}

func TestHashPassword(t *testing.T) {
	// HashPassword must be deterministic and sensitive to every input byte.
	h1 := HashPassword("password")
	h2 := HashPassword("password")
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, HashPassword("Password"))
	assert.Equal(t, uint16(0xCE4B), HashPassword(""))
}
