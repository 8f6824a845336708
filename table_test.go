// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTableDefaults(t *testing.T) {
	tbl := NewTable("Table1", "A1:C10")
	assert.Equal(t, "TableStyleMedium9", tbl.StyleName)
	assert.True(t, tbl.HeaderRowShown)
	assert.True(t, tbl.BandedRows)
	assert.True(t, tbl.AutoFilter)
}

func TestTableValidateDuplicateColumns(t *testing.T) {
	tbl := NewTable("Table1", "A1:B10")
	tbl.Columns = []TableColumn{{Name: "Name"}, {Name: "name"}}
	assert.Error(t, tbl.validate())
}

func TestTableValidateTotalRowNeedsDataRow(t *testing.T) {
	tbl := NewTable("Table1", "A1:B2")
	tbl.TotalRowShown = true
	assert.Error(t, tbl.validate())
}

func TestTableValidateOK(t *testing.T) {
	tbl := NewTable("Table1", "A1:B3")
	tbl.Columns = []TableColumn{{Name: "Name"}, {Name: "Value"}}
	tbl.TotalRowShown = true
	assert.NoError(t, tbl.validate())
}
