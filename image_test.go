// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onePxPNG is a minimal valid 1x1 transparent PNG, used to exercise the
// standard-library decode path without shipping a binary fixture.
const onePxPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

func decodeFixturePNG(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(onePxPNG)
	require.NoError(t, err)
	return data
}

func TestNewImageDefaults(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".PNG")
	assert.Equal(t, ".png", img.Ext)
	assert.Equal(t, float64(1), img.ScaleX)
	assert.Equal(t, float64(1), img.ScaleY)
	assert.True(t, img.PrintObject)
}

func TestImageResolveExtentPNG(t *testing.T) {
	img := NewImage("B2", decodeFixturePNG(t), ".png")
	require.NoError(t, img.resolveExtent())
	assert.Equal(t, 1, img.col)
	assert.Equal(t, 1, img.row)
	assert.Equal(t, 1, img.widthPx)
	assert.Equal(t, 1, img.heightPx)
}

func TestImageResolveExtentScaled(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".png")
	img.ScaleX = 4
	img.ScaleY = 8
	require.NoError(t, img.resolveExtent())
	assert.Equal(t, 4, img.widthPx)
	assert.Equal(t, 8, img.heightPx)
}

func TestImageResolveExtentUnsupportedExtension(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".webp")
	assert.Error(t, img.resolveExtent())
}

func TestImageResolveExtentInvalidCell(t *testing.T) {
	img := NewImage("not a cell", decodeFixturePNG(t), ".png")
	assert.Error(t, img.resolveExtent())
}

func TestImageResolveExtentCorruptData(t *testing.T) {
	img := NewImage("A1", []byte("not an image"), ".png")
	assert.Error(t, img.resolveExtent())
}

func TestDecodeImageBoundsPNG(t *testing.T) {
	w, h, err := decodeImageBounds(decodeFixturePNG(t), ".png")
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestSpanMarker(t *testing.T) {
	unit, off := spanMarker(0, 0, 2*defaultColWidthEMU+100, defaultColWidthEMU)
	assert.Equal(t, 2, unit)
	assert.Equal(t, 100, off)
}

func TestBuildDrawingXMLTwoCellAnchor(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".png")
	require.NoError(t, img.resolveExtent())
	img.relID = "rId1"
	data, err := buildDrawingXML([]*Image{img})
	require.NoError(t, err)
	assert.Contains(t, string(data), "xdr:twoCellAnchor")
	assert.Contains(t, string(data), "rId1")
}

func TestBuildDrawingXMLAbsoluteAnchor(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".png")
	img.Positioning = PositionAbsolute
	require.NoError(t, img.resolveExtent())
	img.relID = "rId1"
	data, err := buildDrawingXML([]*Image{img})
	require.NoError(t, err)
	assert.Contains(t, string(data), "xdr:absoluteAnchor")
}

func TestBuildDrawingXMLMoveOnlyAnchor(t *testing.T) {
	img := NewImage("A1", decodeFixturePNG(t), ".png")
	img.Positioning = PositionMoveOnly
	require.NoError(t, img.resolveExtent())
	img.relID = "rId1"
	data, err := buildDrawingXML([]*Image{img})
	require.NoError(t, err)
	assert.Contains(t, string(data), "xdr:oneCellAnchor")
}
