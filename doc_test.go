// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionalLimits(t *testing.T) {
	assert.Equal(t, 1048576, RowLimit)
	assert.Equal(t, 16384, ColumnLimit)
	assert.Equal(t, 31, MaxSheetNameLength)
	assert.Equal(t, 2080, MaxURLLength)
	assert.Equal(t, 32767, MaxStringLength)
	assert.Equal(t, 255, MaxDefinedNameLength)
	assert.Equal(t, 1023, MaxPageBreaks)
	assert.Equal(t, 164, firstCustomNumFmtID)
}
