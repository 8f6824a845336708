// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellStorePutAndRowSpan(t *testing.T) {
	s := newCellStore()
	s.Put(0, 2, NewNumberCell(1, nil))
	s.Put(0, 5, NewNumberCell(2, nil))

	min, max, ok := s.RowSpan(0)
	assert.True(t, ok)
	assert.Equal(t, 2, min)
	assert.Equal(t, 5, max)

	_, _, ok = s.RowSpan(1)
	assert.False(t, ok)
}

func TestCellStoreRowIndicesSorted(t *testing.T) {
	s := newCellStore()
	s.Put(5, 0, NewNumberCell(1, nil))
	s.Put(1, 0, NewNumberCell(1, nil))
	s.Put(3, 0, NewNumberCell(1, nil))

	assert.Equal(t, []int{1, 3, 5}, s.rowIndices())
}

func TestCellStoreUsedRange(t *testing.T) {
	s := newCellStore()
	minRow, minCol, maxRow, maxCol, ok := s.UsedRange()
	assert.False(t, ok)

	s.Put(2, 3, NewNumberCell(1, nil))
	s.Put(0, 6, NewNumberCell(1, nil))
	minRow, minCol, maxRow, maxCol, ok = s.UsedRange()
	assert.True(t, ok)
	assert.Equal(t, 0, minRow)
	assert.Equal(t, 3, minCol)
	assert.Equal(t, 2, maxRow)
	assert.Equal(t, 6, maxCol)
}

func TestCellStorePutRowPropertiesWithoutCells(t *testing.T) {
	s := newCellStore()
	s.PutRowProperties(4, RowProperties{Hidden: true})
	_, _, ok := s.RowSpan(4)
	assert.False(t, ok, "a row with properties but no cells has no column span")
	assert.Contains(t, s.rowIndices(), 4)
}
