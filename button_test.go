// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewButtonDefaults(t *testing.T) {
	b := NewButton("C3")
	assert.Equal(t, "C3", b.Cell)
	assert.Equal(t, "C3", b.caption())
	assert.Equal(t, 64, b.scaledWidth())
	assert.Equal(t, 20, b.scaledHeight())
}

func TestButtonCaptionOverride(t *testing.T) {
	b := NewButton("A1")
	b.Caption = "Click Me"
	assert.Equal(t, "Click Me", b.caption())
}

func TestButtonScale(t *testing.T) {
	b := NewButton("A1")
	b.ScaleWidth = 2.0
	b.ScaleHeight = 1.5
	assert.Equal(t, 128, b.scaledWidth())
	assert.Equal(t, 30, b.scaledHeight())
}

func TestButtonVMLShape(t *testing.T) {
	b := NewButton("A1")
	b.Macro = "Module1.OnClick"
	var buf xmlBuilder
	require.NoError(t, buttonVMLShape(&buf, b, vmlShapeIDBase))
	out := buf.String()
	assert.Contains(t, out, `ObjectType="Button"`)
	assert.Contains(t, out, "Module1.OnClick")
	assert.Contains(t, out, `id="_x0000_s1024"`)
}

func TestButtonVMLShapeInvalidCell(t *testing.T) {
	b := &Button{Cell: "not-a-cell"}
	var buf xmlBuilder
	assert.Error(t, buttonVMLShape(&buf, b, vmlShapeIDBase))
}
