// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumberFormatSyntax(t *testing.T) {
	assert.NoError(t, ValidateNumberFormatSyntax(""))
	assert.NoError(t, ValidateNumberFormatSyntax("General"))
	assert.NoError(t, ValidateNumberFormatSyntax("0.00"))
	assert.NoError(t, ValidateNumberFormatSyntax(`"$"#,##0.00`))
}
