// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentDefaults(t *testing.T) {
	c := NewComment("A1", "hello")
	assert.Equal(t, 128, c.Width)
	assert.Equal(t, 74, c.Height)
	assert.False(t, c.Visible)
}

func TestCommentAuthorTableDedup(t *testing.T) {
	tbl := newCommentAuthorTable()
	i1 := tbl.intern("Alice")
	i2 := tbl.intern("Bob")
	i3 := tbl.intern("Alice")
	assert.Equal(t, 0, i1)
	assert.Equal(t, 1, i2)
	assert.Equal(t, 0, i3)
	assert.Equal(t, []string{"Alice", "Bob"}, tbl.names)
}

func TestBuildCommentsXMLPlainText(t *testing.T) {
	authors := newCommentAuthorTable()
	c := NewComment("B2", "a note")
	c.Author = "Reviewer"
	data, err := buildCommentsXML([]*Comment{c}, authors)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `ref="B2"`)
	assert.Contains(t, text, "Reviewer")
	assert.Contains(t, text, "a note")
}

func TestBuildCommentsXMLSharesAuthorsAcrossSheets(t *testing.T) {
	authors := newCommentAuthorTable()
	c1 := NewComment("A1", "one")
	c1.Author = "Shared"
	c2 := NewComment("A2", "two")
	c2.Author = "Shared"

	_, err := buildCommentsXML([]*Comment{c1}, authors)
	require.NoError(t, err)
	data, err := buildCommentsXML([]*Comment{c2}, authors)
	require.NoError(t, err)

	assert.Equal(t, 0, c1.authorID)
	assert.Equal(t, 0, c2.authorID)
	assert.Equal(t, 1, len(authors.names))
	assert.Contains(t, string(data), `authorId="0"`)
}

func TestCommentVMLShapeInvalidCell(t *testing.T) {
	var b xmlBuilder
	c := NewComment("not a cell", "x")
	assert.Error(t, commentVMLShape(&b, c, vmlShapeIDBase))
}

func TestCommentVMLShapeVisible(t *testing.T) {
	var b xmlBuilder
	c := NewComment("A1", "x")
	c.Visible = true
	require.NoError(t, commentVMLShape(&b, c, vmlShapeIDBase))
	assert.Contains(t, b.String(), "visibility:visible")
	assert.Contains(t, b.String(), "<x:Visible/>")
}

func TestBuildLegacyDrawingVMLCommentsOnly(t *testing.T) {
	c := NewComment("A1", "note")
	data, err := buildLegacyDrawingVML([]*Comment{c}, nil)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "_xcmt_shapetype")
	assert.NotContains(t, text, "_xbtn_shapetype")
	assert.Contains(t, text, `ObjectType="Note"`)
}

func TestBuildLegacyDrawingVMLCommentsAndButtonsNoIDCollision(t *testing.T) {
	c := NewComment("A1", "note")
	btn := NewButton("B1")
	data, err := buildLegacyDrawingVML([]*Comment{c}, []*Button{btn})
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `id="_x0000_s1024"`)
	assert.Contains(t, text, `id="_x0000_s1025"`)
	assert.Contains(t, text, "_xbtn_shapetype")
}
