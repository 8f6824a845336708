// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorePropertiesXML(t *testing.T) {
	data, err := buildCorePropertiesXML(DocumentProperties{
		Title:  "Quarterly Report",
		Author: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Quarterly Report")
	assert.Contains(t, string(data), "Jane Doe")
}

func TestBuildAppPropertiesXML(t *testing.T) {
	data, err := buildAppPropertiesXML(DocumentProperties{Company: "Acme"}, []string{"Sheet1", "Sheet2"}, 1)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
	assert.Contains(t, string(data), "Sheet1")
}

func TestBuildCustomPropertiesXML(t *testing.T) {
	data, err := buildCustomPropertiesXML(map[string]string{"Reviewed": "true"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Reviewed")
}
