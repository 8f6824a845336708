// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialDateTime(t *testing.T) {
	serial, err := SerialDateTime(2024, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(45292), serial)

	// Excel's fictitious leap day: 1900-02-29 is serial 60.
	serial, err = SerialDateTime(1900, 3, 1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(61), serial)

	_, err = SerialDateTime(2024, 13, 1, 0, 0, 0)
	assert.Error(t, err)
	_, err = SerialDateTime(2024, 2, 30, 0, 0, 0)
	assert.Error(t, err)
}

func TestSerialTime(t *testing.T) {
	serial, err := SerialTime(12, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, serial, 1e-9)

	serial, err = SerialTime(24, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, serial, 1e-9)
	_, err = SerialTime(0, 60, 0)
	assert.Error(t, err)
}

func TestParseISO8601(t *testing.T) {
	serial, err := ParseISO8601("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, float64(45292), serial)

	_, err = ParseISO8601("not a date")
	assert.Error(t, err)
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2024))
	assert.False(t, isLeapYear(1900))
	assert.True(t, isLeapYear(2000))
}
