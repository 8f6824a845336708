// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXlsxErrorIs(t *testing.T) {
	err := newErr(ErrSheetNameBlank, "sheet name cannot be blank")
	assert.True(t, errors.Is(err, ErrSheetNameBlankErr))
	assert.False(t, errors.Is(err, ErrSheetNameLengthErr))
}

func TestXlsxErrorMessage(t *testing.T) {
	err := newErr(ErrParameter, "bad value %d", 5)
	assert.Equal(t, "ParameterError: bad value 5", err.Error())
}

func TestWrapErrUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := wrapErr(ErrIO, inner, "writing failed")
	assert.Same(t, inner, errors.Unwrap(wrapped))
}
