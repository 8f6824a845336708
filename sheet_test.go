// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorksheet(t *testing.T) *Worksheet {
	t.Helper()
	wb := NewWorkbook()
	sheet, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	return sheet
}

func TestWorksheetMergeAndHyperlink(t *testing.T) {
	sheet := newTestWorksheet(t)
	sheet.Merge("A1:B2")
	require.Len(t, sheet.Merges, 1)

	link, err := NewHyperlink(0, 0, "https://example.com", "Example", "")
	require.NoError(t, err)
	sheet.AddHyperlink(link)
	require.Len(t, sheet.Hyperlinks, 1)
}

func TestWorksheetAddComment(t *testing.T) {
	sheet := newTestWorksheet(t)
	c := NewComment("A1", "a note")
	c.Author = "Reviewer"
	c.Visible = true
	sheet.AddComment(c)
	require.Len(t, sheet.Comments, 1)

	data, err := sheet.finalize()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWorksheetAddButton(t *testing.T) {
	sheet := newTestWorksheet(t)
	btn := NewButton("B2")
	btn.Caption = "Run"
	btn.Macro = "Module1.DoSomething"
	require.NoError(t, sheet.AddButton(btn))
	require.Len(t, sheet.Buttons, 1)

	assert.Error(t, sheet.AddButton(NewButton("not a cell")))
}

func TestWorksheetCommentsAndButtonsShareVML(t *testing.T) {
	sheet := newTestWorksheet(t)
	sheet.AddComment(NewComment("A1", "note"))
	require.NoError(t, sheet.AddButton(NewButton("B1")))

	vml, err := buildLegacyDrawingVML(sheet.Comments, sheet.Buttons)
	require.NoError(t, err)
	assert.Contains(t, string(vml), `ObjectType="Note"`)
	assert.Contains(t, string(vml), `ObjectType="Button"`)

	// Shape ids must not collide between the two shape kinds.
	assert.Contains(t, string(vml), `id="_x0000_s`+strconv.Itoa(vmlShapeIDBase)+`"`)
	assert.Contains(t, string(vml), `id="_x0000_s`+strconv.Itoa(vmlShapeIDBase+1)+`"`)
}

func TestWorksheetAddSparkline(t *testing.T) {
	sheet := newTestWorksheet(t)
	sp := &Sparkline{
		Locations: []string{"A1"},
		Ranges:    []string{"Sheet2!A1:J1"},
		Type:      SparklineColumn,
		ShowHigh:  true,
	}
	require.NoError(t, sheet.AddSparkline(sp))
	require.Len(t, sheet.Sparklines, 1)

	bad := &Sparkline{Locations: []string{"A1", "A2"}, Ranges: []string{"A1:B1"}}
	assert.Error(t, sheet.AddSparkline(bad))

	data, err := sheet.finalize()
	require.NoError(t, err)
	assert.Contains(t, string(data), "sparklineGroups")
}

func TestWorksheetSetVBAName(t *testing.T) {
	sheet := newTestWorksheet(t)
	sheet.SetVBAName("ThisSheet")
	assert.Equal(t, "ThisSheet", sheet.Properties.CodeName)
}

func TestWorksheetAddTable(t *testing.T) {
	sheet := newTestWorksheet(t)
	tbl := NewTable("Table1", "A1:C3")
	require.NoError(t, sheet.AddTable(tbl))
	require.Len(t, sheet.Tables, 1)
}
