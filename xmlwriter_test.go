// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXMLText(t *testing.T) {
	assert.Equal(t, "plain", escapeXMLText("plain"))
	assert.Equal(t, "a &amp; b &lt;c&gt;", escapeXMLText("a & b <c>"))
	assert.Equal(t, `he said "hi"`, escapeXMLText(`he said "hi"`), "quotes are left alone in character data")
}

func TestEscapeXMLAttr(t *testing.T) {
	assert.Equal(t, "plain", escapeXMLAttr("plain"))
	assert.Contains(t, escapeXMLAttr(`say "hi"`), "&quot;")
}

func TestXMLBuilderTags(t *testing.T) {
	var b xmlBuilder
	b.openTag("row", [2]string{"r", "1"})
	b.text("hi")
	b.closeTag("row")
	assert.Equal(t, `<row r="1">hi</row>`, b.String())
}

func TestXMLBuilderEmptyTag(t *testing.T) {
	var b xmlBuilder
	b.emptyTag("c", [2]string{"r", "A1"}, [2]string{"skip", ""})
	assert.Equal(t, `<c r="A1"/>`, b.String())
}
