// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataValidationDefaults(t *testing.T) {
	d := NewDataValidation("A1:A10")
	assert.True(t, d.IgnoreBlank)
	assert.Equal(t, ErrorStyleStop, d.ErrorStyle)
}

func TestDataValidationSetList(t *testing.T) {
	d := NewDataValidation("A1")
	d.SetList("Sheet2!$A$1:$A$5", true)
	assert.Equal(t, ValidateList, d.Type)
	assert.Equal(t, "Sheet2!$A$1:$A$5", d.Formula1)

	d2 := NewDataValidation("B1")
	d2.SetList("Yes,No,Maybe", false)
	assert.Equal(t, `"Yes,No,Maybe"`, d2.Formula1)
}

func TestDataValidationSetCustom(t *testing.T) {
	d := NewDataValidation("C1")
	d.SetCustom("ISNUMBER(C1)")
	assert.Equal(t, ValidateCustom, d.Type)
	assert.Equal(t, "ISNUMBER(C1)", d.Formula1)
}

func TestBuildDataValidations(t *testing.T) {
	d := NewDataValidation("D1:D10")
	d.SetRange(ValidateWhole, ValidationBetween, "1", "10")
	out := buildDataValidations([]*DataValidation{d})
	require.NotNil(t, out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "D1:D10", out.Items[0].Sqref)
}
