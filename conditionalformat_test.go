// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalFormatConstructors(t *testing.T) {
	rule := NewCellRule(CellGreaterThan, "10", nil)
	assert.Equal(t, "cell", rule.kind)
	assert.Equal(t, CellGreaterThan, rule.cellCriteria)

	between := NewCellBetweenRule(CellBetween, "1", "10", nil)
	assert.Equal(t, "1", between.minimum)
	assert.Equal(t, "10", between.maximum)

	assert.Equal(t, "duplicateValues", NewDuplicateRule(nil).kind)
	assert.Equal(t, "uniqueValues", NewUniqueRule(nil).kind)
	assert.Equal(t, "containsBlanks", NewBlanksRule(nil).kind)
}

func TestWorksheetAddConditionalFormat(t *testing.T) {
	sheet := newTestWorksheet(t)
	sheet.AddConditionalFormat("A1:A10", NewCellRule(CellGreaterThan, "5", nil))
	require.Len(t, sheet.cfGroups, 1)
	assert.Equal(t, "A1:A10", sheet.cfGroups[0].Range)

	data, err := sheet.finalize()
	require.NoError(t, err)
	assert.Contains(t, string(data), "conditionalFormatting")
}
