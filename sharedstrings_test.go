// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedStringTableInternDedup(t *testing.T) {
	tbl := newSharedStringTable()
	i1, err := tbl.Intern("hello")
	require.NoError(t, err)
	i2, err := tbl.Intern("hello")
	require.NoError(t, err)
	assert.Equal(t, i1, i2)
	assert.Equal(t, 1, tbl.UniqueCount())
	assert.Equal(t, 2, tbl.Count())
}

func TestSharedStringTableInternTooLong(t *testing.T) {
	tbl := newSharedStringTable()
	_, err := tbl.Intern(strings.Repeat("a", MaxStringLength+1))
	assert.Error(t, err)
}

func TestSharedStringTableInternRichNeverDedups(t *testing.T) {
	tbl := newSharedStringTable()
	runs := []RichTextRun{{Text: "bold"}}
	i1, err := tbl.InternRich(runs)
	require.NoError(t, err)
	i2, err := tbl.InternRich(runs)
	require.NoError(t, err)
	assert.NotEqual(t, i1, i2)
	assert.Equal(t, 2, tbl.UniqueCount())
}
