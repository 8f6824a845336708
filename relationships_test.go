// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipBuilderSequentialIDs(t *testing.T) {
	var b relationshipBuilder
	assert.True(t, b.empty())
	id1 := b.add(relTypeComments, "../comments1.xml")
	id2 := b.add(relTypeVMLDrawing, "../drawings/vmlDrawing1.vml")
	assert.Equal(t, "rId1", id1)
	assert.Equal(t, "rId2", id2)
	assert.False(t, b.empty())
}

func TestRelationshipBuilderExternal(t *testing.T) {
	var b relationshipBuilder
	b.addExternal(relTypeComments, "https://example.com")
	require.Len(t, b.rels, 1)
	assert.Equal(t, "External", b.rels[0].TargetMode)
}

func TestRelationshipBuilderBuildXML(t *testing.T) {
	var b relationshipBuilder
	b.add(relTypeComments, "../comments1.xml")
	data, err := b.buildXML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "rId1")
}

func TestContentTypeBuilderDedup(t *testing.T) {
	b := newContentTypeBuilder()
	b.addDefault("png", "image/png")
	b.addDefault("png", "image/png")
	count := 0
	for _, d := range b.defaults {
		if d.Extension == "png" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestContentTypeBuilderBuildXML(t *testing.T) {
	b := newContentTypeBuilder()
	b.addOverride("/xl/workbook.xml", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml")
	data, err := b.buildXML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "Override")
}
