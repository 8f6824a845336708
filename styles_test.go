// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistryAddFormatDedup(t *testing.T) {
	r := newStyleRegistry()
	f1 := NewFormat()
	f1.Font.Bold = true
	f2 := NewFormat()
	f2.Font.Bold = true

	id1, err := r.AddFormat(f1)
	require.NoError(t, err)
	id2, err := r.AddFormat(f2)
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "identical formats must dedup to the same xf index")

	f3 := NewFormat()
	f3.Font.Italic = true
	id3, err := r.AddFormat(f3)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestStyleRegistryAddFormatAcceptsCustomNumFmt(t *testing.T) {
	r := newStyleRegistry()
	f := NewFormat()
	f.NumberFormat.Code = `"Units: "0`
	id, err := r.AddFormat(f)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.xfs[id].numFmtID, firstCustomNumFmtID)
}

func TestStyleRegistryInternNumFmtBuiltin(t *testing.T) {
	r := newStyleRegistry()
	id, custom, err := r.internNumFmt("0.00")
	require.NoError(t, err)
	assert.False(t, custom)
	assert.Equal(t, builtinNumFmts["0.00"], id)
}

func TestStyleRegistryInternNumFmtCustom(t *testing.T) {
	r := newStyleRegistry()
	id1, custom1, err := r.internNumFmt(`"Units: "0`)
	require.NoError(t, err)
	assert.True(t, custom1)
	assert.GreaterOrEqual(t, id1, firstCustomNumFmtID)

	id2, custom2, err := r.internNumFmt(`"Units: "0`)
	require.NoError(t, err)
	assert.True(t, custom2)
	assert.Equal(t, id1, id2)
}

func TestStyleRegistryInternFillPromotesBackgroundToSolid(t *testing.T) {
	r := newStyleRegistry()
	idx := r.internFill(Fill{Background: ColorRed})
	require.Greater(t, idx, 1)
	assert.Equal(t, FillPatternSolid, r.fills[idx].Pattern)
	assert.Equal(t, ColorRed, r.fills[idx].Foreground)
}
