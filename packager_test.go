// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipNames(t *testing.T, data []byte) map[string]bool {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make(map[string]bool, len(r.File))
	for _, f := range r.File {
		names[f.Name] = true
	}
	return names
}

func TestPackagerCommentsAndButtonsShareVMLPart(t *testing.T) {
	wb := NewWorkbook()
	sheet, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	require.NoError(t, sheet.WriteCell(0, 0, NewStringCell("hi", nil)))
	sheet.AddComment(NewComment("A1", "note"))
	require.NoError(t, sheet.AddButton(NewButton("B1")))

	data, err := wb.SaveToBuffer()
	require.NoError(t, err)

	names := zipNames(t, data)
	assert.True(t, names["xl/drawings/vmlDrawing1.vml"])
	assert.True(t, names["xl/comments1.xml"])
	assert.True(t, names["xl/worksheets/_rels/sheet1.xml.rels"])
}

func TestPackagerTableProducesTablePart(t *testing.T) {
	wb := NewWorkbook()
	sheet, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	for i, v := range []float64{1, 2} {
		require.NoError(t, sheet.WriteCell(i+1, 0, NewNumberCell(v, nil)))
	}
	require.NoError(t, sheet.WriteCell(0, 0, NewStringCell("Value", nil)))

	tbl := NewTable("Table1", "A1:A3")
	tbl.Columns = []TableColumn{{Name: "Value"}}
	require.NoError(t, sheet.AddTable(tbl))

	data, err := wb.SaveToBuffer()
	require.NoError(t, err)

	names := zipNames(t, data)
	assert.True(t, names["xl/tables/table1.xml"])
}

func TestPackagerImageProducesDrawingAndMediaParts(t *testing.T) {
	wb := NewWorkbook()
	sheet, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	pngData, err := base64.StdEncoding.DecodeString(onePxPNG)
	require.NoError(t, err)
	require.NoError(t, sheet.AddImage(NewImage("A1", pngData, ".png")))

	data, err := wb.SaveToBuffer()
	require.NoError(t, err)

	names := zipNames(t, data)
	assert.True(t, names["xl/drawings/drawing1.xml"])
	assert.True(t, names["xl/media/image1.png"])
}

func TestPackagerContentTypesListsWorksheets(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	_, err = wb.AddWorksheet("Sheet2")
	require.NoError(t, err)

	data, err := wb.SaveToBuffer()
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var ct []byte
	for _, f := range r.File {
		if f.Name == "[Content_Types].xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			buf := new(bytes.Buffer)
			_, err = buf.ReadFrom(rc)
			require.NoError(t, err)
			ct = buf.Bytes()
			rc.Close()
		}
	}
	require.NotNil(t, ct)
	assert.Contains(t, string(ct), "/xl/worksheets/sheet1.xml")
	assert.Contains(t, string(ct), "/xl/worksheets/sheet2.xml")
}
