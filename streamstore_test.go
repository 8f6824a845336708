// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreamStore() *streamStore {
	sink := &bufferedSink{}
	return newStreamStore(sink, newStyleRegistry(), newSharedStringTable(), sharedStringPooled)
}

func TestStreamStorePutSameRow(t *testing.T) {
	s := newTestStreamStore()
	require.NoError(t, s.Put(0, 0, NewNumberCell(1, nil)))
	require.NoError(t, s.Put(0, 1, NewNumberCell(2, nil)))
	require.NoError(t, s.Finish())

	out, err := s.sink.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `r="1"`)
	assert.Contains(t, string(out), `<row`)
}

func TestStreamStorePutAdvancesRow(t *testing.T) {
	s := newTestStreamStore()
	require.NoError(t, s.Put(0, 0, NewNumberCell(1, nil)))
	require.NoError(t, s.Put(2, 0, NewNumberCell(2, nil)))
	require.NoError(t, s.Finish())

	out, err := s.sink.Bytes()
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, `r="1"`)
	assert.Contains(t, text, `r="3"`)
}

func TestStreamStorePutBehindCurrentIsError(t *testing.T) {
	s := newTestStreamStore()
	require.NoError(t, s.Put(2, 0, NewNumberCell(1, nil)))
	err := s.Put(0, 0, NewNumberCell(1, nil))
	assert.Error(t, err)
	var xerr *XlsxError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, ErrRowColumnOrder, xerr.Kind)
}

func TestStreamStoreUsedRange(t *testing.T) {
	s := newTestStreamStore()
	_, _, _, _, ok := s.UsedRange()
	assert.False(t, ok)

	require.NoError(t, s.Put(1, 2, NewNumberCell(1, nil)))
	require.NoError(t, s.Put(3, 0, NewNumberCell(1, nil)))
	minRow, minCol, maxRow, maxCol, ok := s.UsedRange()
	assert.True(t, ok)
	assert.Equal(t, 1, minRow)
	assert.Equal(t, 0, minCol)
	assert.Equal(t, 3, maxRow)
	assert.Equal(t, 2, maxCol)
}

func TestStreamStorePutRowPropertiesAheadOfCurrent(t *testing.T) {
	s := newTestStreamStore()
	require.NoError(t, s.Put(0, 0, NewNumberCell(1, nil)))
	require.NoError(t, s.PutRowProperties(2, RowProperties{Hidden: true}))
	require.NoError(t, s.Put(4, 0, NewNumberCell(1, nil)))
	require.NoError(t, s.Finish())

	out, err := s.sink.Bytes()
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, `r="3"`)
	assert.Contains(t, text, `hidden="1"`)
}

func TestStreamStoreFinishBeforeAnyWriteIsNoop(t *testing.T) {
	s := newTestStreamStore()
	require.NoError(t, s.Finish())
	out, err := s.sink.Bytes()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteStreamCellString(t *testing.T) {
	strings := newSharedStringTable()
	var b xmlBuilder
	cell := NewStringCell("hello", nil)
	err := writeStreamCell(&b, "A1", cell, newStyleRegistry(), strings, sharedStringPooled)
	require.NoError(t, err)
	assert.Contains(t, b.String(), `t="s"`)
}

func TestWriteStreamCellInlineString(t *testing.T) {
	var b xmlBuilder
	cell := NewStringCell("hello", nil)
	err := writeStreamCell(&b, "A1", cell, newStyleRegistry(), newSharedStringTable(), sharedStringInline)
	require.NoError(t, err)
	assert.Contains(t, b.String(), `t="inlineStr"`)
	assert.Contains(t, b.String(), "hello")
}

func TestWriteStreamCellBoolean(t *testing.T) {
	var b xmlBuilder
	cell := NewBooleanCell(true, nil)
	err := writeStreamCell(&b, "A1", cell, newStyleRegistry(), newSharedStringTable(), sharedStringPooled)
	require.NoError(t, err)
	assert.Contains(t, b.String(), `t="b"`)
	assert.Contains(t, b.String(), "<v>1</v>")
}

func TestRowOpenAttrsWithProperties(t *testing.T) {
	attrs := rowOpenAttrs(0, "1:3", RowProperties{HasHeight: true, Height: 20, Hidden: true, OutlineLevel: 2, Collapsed: true})
	found := map[string]string{}
	for _, a := range attrs {
		found[a[0]] = a[1]
	}
	assert.Equal(t, "1", found["r"])
	assert.Equal(t, "1:3", found["spans"])
	assert.Equal(t, "20", found["ht"])
	assert.Equal(t, "1", found["customHeight"])
	assert.Equal(t, "1", found["hidden"])
	assert.Equal(t, "2", found["outlineLevel"])
	assert.Equal(t, "1", found["collapsed"])
}
