// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkbookAddWorksheet(t *testing.T) {
	wb := NewWorkbook()
	sheet1, err := wb.AddWorksheet("")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet1.Name)

	sheet2, err := wb.AddWorksheet("Data")
	require.NoError(t, err)
	assert.Equal(t, "Data", sheet2.Name)

	_, err = wb.AddWorksheet("data")
	assert.Error(t, err, "sheet names must be case-insensitively unique")

	_, err = wb.AddWorksheet("bad/name")
	assert.Error(t, err)

	found, err := wb.WorksheetFromName("DATA")
	require.NoError(t, err)
	assert.Same(t, sheet2, found)

	_, err = wb.WorksheetFromName("Missing")
	assert.Error(t, err)
}

func TestWorkbookDefineName(t *testing.T) {
	wb := NewWorkbook()
	assert.NoError(t, wb.DefineName("MyRange", "Sheet1!$A$1:$A$10"))
	assert.Error(t, wb.DefineName("1Invalid", "Sheet1!A1"))
	assert.NoError(t, wb.DefineSheetName(0, "Local", "Sheet1!$B$1"))
	require.Len(t, wb.DefinedNames, 2)
	assert.Equal(t, -1, wb.DefinedNames[0].SheetIndex)
	assert.Equal(t, 0, wb.DefinedNames[1].SheetIndex)
}

func TestWorkbookSaveToBuffer(t *testing.T) {
	wb := NewWorkbook()
	sheet, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	require.NoError(t, sheet.WriteCell(0, 0, NewStringCell("hello", nil)))
	require.NoError(t, sheet.WriteCell(0, 1, NewNumberCell(42, nil)))

	data, err := wb.SaveToBuffer()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["xl/workbook.xml"])
	assert.True(t, names["xl/worksheets/sheet1.xml"])
}

func TestWorkbookVBAProject(t *testing.T) {
	wb := NewWorkbook()
	assert.Error(t, wb.AddVBAProject(nil), "empty data is rejected")
	assert.Error(t, wb.AddVBAProject([]byte("not a compound file")))
	assert.False(t, wb.HasVBA())
}

func TestWorkbookReadOnlyRecommend(t *testing.T) {
	wb := NewWorkbook()
	assert.False(t, wb.ReadOnlyRecommended)
	wb.ReadOnlyRecommend()
	assert.True(t, wb.ReadOnlyRecommended)
}
