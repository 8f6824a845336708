// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormulaPlain(t *testing.T) {
	f, err := NewFormula("=SUM(A1:A10)")
	assert.NoError(t, err)
	assert.Equal(t, "SUM(A1:A10)", f.Text)
	assert.False(t, f.IsDynamicArray)
}

func TestNewFormulaFutureFunction(t *testing.T) {
	f, err := NewFormula("=IFS(A1>0,\"pos\",TRUE,\"other\")")
	assert.NoError(t, err)
	assert.Equal(t, "_xlfn.IFS(A1>0,\"pos\",TRUE,\"other\")", f.Text)
	assert.False(t, f.IsDynamicArray)
}

func TestNewFormulaDynamicArray(t *testing.T) {
	f, err := NewFormula("=UNIQUE(A1:A10)")
	assert.NoError(t, err)
	assert.Equal(t, "_xlfn.UNIQUE(A1:A10)", f.Text)
	assert.True(t, f.IsDynamicArray)
}

func TestNewFormulaXlws(t *testing.T) {
	f, err := NewFormula("=FILTER(A1:A10,B1:B10>0)")
	assert.NoError(t, err)
	assert.Equal(t, "_xlfn._xlws.FILTER(A1:A10,B1:B10>0)", f.Text)
	assert.True(t, f.IsDynamicArray)
}

func TestNewFormulaArrayWrapper(t *testing.T) {
	f, err := NewFormula("{=SUM(A1:A10*B1:B10)}")
	assert.NoError(t, err)
	assert.Equal(t, "SUM(A1:A10*B1:B10)", f.Text)
}

func TestNewFormulaIdempotent(t *testing.T) {
	once, err := NewFormula("=IFS(TRUE,1)")
	assert.NoError(t, err)
	twice, err := NewFormula(once.Text)
	assert.NoError(t, err)
	assert.Equal(t, once.Text, twice.Text)
}

func TestNewFormulaRejectsUnknownToken(t *testing.T) {
	_, err := NewFormula("=SUM(A1:A10")
	assert.Error(t, err)
}

func TestValidateFormulaSyntax(t *testing.T) {
	assert.NoError(t, ValidateFormulaSyntax("=SUM(A1:A10)"))
	assert.NoError(t, ValidateFormulaSyntax("=IF(A1>0,\"yes\",\"no\")"))
}
