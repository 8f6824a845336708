// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeBytesDefault(t *testing.T) {
	wb := NewWorkbook()
	assert.Equal(t, defaultThemeXML, wb.themeBytes())
}

func TestThemeBytesOverride(t *testing.T) {
	wb := NewWorkbook()
	custom := []byte(XMLHeader + "<a:theme/>")
	wb.ThemeXML = custom
	assert.Equal(t, custom, wb.themeBytes())
}
