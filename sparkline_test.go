// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparklineValidate(t *testing.T) {
	s := &Sparkline{Locations: []string{"A1"}, Ranges: []string{"Sheet1!B1:E1"}}
	assert.NoError(t, s.validate())

	empty := &Sparkline{}
	assert.Error(t, empty.validate())

	mismatched := &Sparkline{Locations: []string{"A1", "A2"}, Ranges: []string{"B1:E1"}}
	assert.Error(t, mismatched.validate())
}

func TestSparklineTypeXMLValue(t *testing.T) {
	assert.Equal(t, "line", SparklineLine.xmlValue())
	assert.Equal(t, "column", SparklineColumn.xmlValue())
	assert.Equal(t, "stacked", SparklineWinLoss.xmlValue())
}

func TestBuildSparklineExtLstEmpty(t *testing.T) {
	ext, err := buildSparklineExtLst(nil)
	require.NoError(t, err)
	assert.Nil(t, ext)
}

func TestBuildSparklineExtLst(t *testing.T) {
	s := &Sparkline{
		Locations:   []string{"A1", "A2"},
		Ranges:      []string{"Sheet1!B1:E1", "Sheet1!B2:E2"},
		Type:        SparklineColumn,
		ShowHigh:    true,
		SeriesColor: "1F497D",
	}
	ext, err := buildSparklineExtLst([]*Sparkline{s})
	require.NoError(t, err)
	require.NotNil(t, ext)
	require.Len(t, ext.Ext, 1)
	assert.Equal(t, sparklineGroupsExtURI, ext.Ext[0].URI)
	assert.Contains(t, ext.Ext[0].Content, "x14:sparklineGroup")
	assert.Contains(t, ext.Ext[0].Content, `type="column"`)
	assert.Contains(t, ext.Ext[0].Content, "Sheet1!B1:E1")
	assert.Contains(t, ext.Ext[0].Content, "FF1F497D")
}
