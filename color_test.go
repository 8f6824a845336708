// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBColor(t *testing.T) {
	c := RGBColor(0xFF0000)
	assert.True(t, c.IsSet())
	assert.Equal(t, "FF0000", c.rgbHex())
	assert.Equal(t, "FFFF0000", c.ARGBHex())
	assert.Equal(t, "#ff0000", c.VMLHex())
}

func TestThemeColor(t *testing.T) {
	c := ThemeColor(4, 0)
	assert.True(t, c.IsSet())
	theme, _, ok := c.ThemeAttributes()
	assert.True(t, ok)
	assert.Equal(t, uint8(4), theme)
}

func TestColorUnset(t *testing.T) {
	var c Color
	assert.False(t, c.IsSet())
}
