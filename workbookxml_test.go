// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbookXMLSheetsAndRIDs(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	s2, err := wb.AddWorksheet("Hidden")
	require.NoError(t, err)
	s2.Hidden = true

	data, err := buildWorkbookXML(wb, []string{"rId1", "rId2"}, false)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `name="Sheet1"`)
	assert.Contains(t, text, `name="Hidden"`)
	assert.Contains(t, text, `state="hidden"`)
	assert.Contains(t, text, `r:id="rId2"`)
}

func TestBuildWorkbookXMLReadOnlyRecommended(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)

	data, err := buildWorkbookXML(wb, []string{"rId1"}, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), `minimized="1"`)
}

func TestBuildWorkbookXMLDefinedNames(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)
	require.NoError(t, wb.DefineName("TaxRate", "0.15"))
	require.NoError(t, wb.DefineSheetName(0, "LocalName", "A1"))

	data, err := buildWorkbookXML(wb, []string{"rId1"}, false)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `name="TaxRate"`)
	assert.Contains(t, text, `name="LocalName"`)
	assert.Contains(t, text, `localSheetId="0"`)
}

func TestBuildWorkbookXMLNoDefinedNamesOmitsElement(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddWorksheet("Sheet1")
	require.NoError(t, err)

	data, err := buildWorkbookXML(wb, []string{"rId1"}, false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "definedNames")
}
