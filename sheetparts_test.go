// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetProtectionLegacyHash(t *testing.T) {
	p := &SheetProtection{Enabled: true, Password: "secret"}
	out := p.buildXML()
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Password)
	assert.Empty(t, out.AlgorithmName)
}

func TestSheetProtectionSHA512Hash(t *testing.T) {
	p := &SheetProtection{Enabled: true, Password: "secret", Algorithm: ProtectionSHA512}
	out := p.buildXML()
	require.NotNil(t, out)
	assert.Equal(t, "SHA-512", out.AlgorithmName)
	assert.NotEmpty(t, out.SaltValue)
	assert.NotEmpty(t, out.HashValue)
	assert.Equal(t, defaultProtectionSpinCount, out.SpinCount)
}

func TestSheetProtectionSHA512CustomSpinCount(t *testing.T) {
	p := &SheetProtection{Enabled: true, Password: "secret", Algorithm: ProtectionSHA512, SpinCount: 5000}
	out := p.buildXML()
	require.NotNil(t, out)
	assert.Equal(t, 5000, out.SpinCount)
}

func TestHashPasswordSHA512Randomized(t *testing.T) {
	salt1, hash1 := hashPasswordSHA512("secret", 1000)
	salt2, hash2 := hashPasswordSHA512("secret", 1000)
	// Salts are random per call, so identical passwords still produce
	// different salt/hash pairs.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestCellDisplayText(t *testing.T) {
	assert.Equal(t, "TRUE", cellDisplayText(NewBooleanCell(true, nil)))
	assert.Equal(t, "FALSE", cellDisplayText(NewBooleanCell(false, nil)))
	assert.Equal(t, "hello", cellDisplayText(NewStringCell("hello", nil)))
	assert.Equal(t, "42", cellDisplayText(NewNumberCell(42, nil)))
	assert.Equal(t, "", cellDisplayText(NewBlankCell(nil)))
	runs := []RichTextRun{{Text: "ab"}, {Text: "cd"}}
	assert.Equal(t, "abcd", cellDisplayText(NewRichStringCell(runs, nil)))
}

func TestAutofitColumnWidthsWidensOnLongestCell(t *testing.T) {
	store := newCellStore()
	store.Put(0, 0, NewStringCell("x", nil))
	store.Put(1, 0, NewStringCell("a much longer string", nil))
	widths := autofitColumnWidths(store)
	require.Contains(t, widths, 0)
	assert.Greater(t, widths[0], PixelWidthToColumnWidth(PixelWidth("x")+autofitPixelPadding))
}

func TestAutofitColumnWidthsIgnoresEmptyCells(t *testing.T) {
	store := newCellStore()
	store.Put(0, 0, NewBlankCell(nil))
	widths := autofitColumnWidths(store)
	assert.NotContains(t, widths, 0)
}

func TestAutofitColumnWidthsScalesWithFontSize(t *testing.T) {
	store := newCellStore()
	big := NewFormat()
	big.Font.Size = 22
	store.Put(0, 0, NewStringCell("abc", nil))
	store.Put(0, 1, NewStringCell("abc", big))
	widths := autofitColumnWidths(store)
	assert.Greater(t, widths[1], widths[0])
}

func TestApplyAutofitWidensBlankColumn(t *testing.T) {
	cols := newColumnStore()
	applyAutofit(cols, map[int]float64{0: 25})
	props, ok := cols.Get(0)
	require.True(t, ok)
	assert.True(t, props.HasWidth)
	assert.Equal(t, 25.0, props.Width)
}

func TestApplyAutofitDoesNotNarrowExplicitWidth(t *testing.T) {
	cols := newColumnStore()
	cols.Set(0, ColumnProperties{HasWidth: true, Width: 50})
	applyAutofit(cols, map[int]float64{0: 25})
	props, _ := cols.Get(0)
	assert.Equal(t, 50.0, props.Width)
}

func TestApplyAutofitWidensExplicitWidthWhenSmaller(t *testing.T) {
	cols := newColumnStore()
	cols.Set(0, ColumnProperties{HasWidth: true, Width: 5})
	applyAutofit(cols, map[int]float64{0: 25})
	props, _ := cols.Get(0)
	assert.Equal(t, 25.0, props.Width)
}

func TestWorksheetFinalizeAppliesAutofit(t *testing.T) {
	sheet := newTestWorksheet(t)
	require.NoError(t, sheet.WriteCell(0, 0, NewStringCell("a very long cell value indeed", nil)))
	data, err := sheet.finalize()
	require.NoError(t, err)
	assert.Contains(t, string(data), `customWidth="true"`)
}
