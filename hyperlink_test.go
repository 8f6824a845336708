// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHyperlinkURL(t *testing.T) {
	h, err := NewHyperlink(0, 0, "https://example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, HyperlinkURL, h.linkType)
	assert.Equal(t, "https://example.com", h.userText)
}

func TestNewHyperlinkInternal(t *testing.T) {
	h, err := NewHyperlink(0, 0, "internal:Sheet2!A1", "Go to Sheet2", "")
	require.NoError(t, err)
	assert.Equal(t, HyperlinkInternal, h.linkType)
}

func TestNewHyperlinkTooLong(t *testing.T) {
	_, err := NewHyperlink(0, 0, "https://example.com/"+strings.Repeat("a", MaxURLLength), "", "")
	assert.Error(t, err)
}

func TestNewHyperlinkTooltipTooLong(t *testing.T) {
	_, err := NewHyperlink(0, 0, "https://example.com", "", strings.Repeat("a", MaxParameterLength+1))
	assert.Error(t, err)
}
