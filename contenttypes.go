// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "encoding/xml"

const contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"

type xlsxContentTypes struct {
	XMLName  xml.Name            `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults []xlsxCTDefault     `xml:"Default"`
	Override []xlsxCTOverride    `xml:"Override"`
}

type xlsxCTDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxCTOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypeBuilder accumulates the Default/Override entries a packaging
// run discovers as it writes parts, in the order they're first seen.
type contentTypeBuilder struct {
	extSeen  map[string]bool
	defaults []xlsxCTDefault
	override []xlsxCTOverride
}

func newContentTypeBuilder() *contentTypeBuilder {
	b := &contentTypeBuilder{extSeen: make(map[string]bool)}
	b.addDefault("rels", "application/vnd.openxmlformats-package.relationships+xml")
	b.addDefault("xml", "application/xml")
	return b
}

func (b *contentTypeBuilder) addDefault(ext, contentType string) {
	if b.extSeen[ext] {
		return
	}
	b.extSeen[ext] = true
	b.defaults = append(b.defaults, xlsxCTDefault{Extension: ext, ContentType: contentType})
}

func (b *contentTypeBuilder) addOverride(partName, contentType string) {
	b.override = append(b.override, xlsxCTOverride{PartName: partName, ContentType: contentType})
}

func (b *contentTypeBuilder) buildXML() ([]byte, error) {
	ct := &xlsxContentTypes{Defaults: b.defaults, Override: b.override}
	body, err := xml.Marshal(ct)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal [Content_Types].xml")
	}
	return append([]byte(XMLHeader), body...), nil
}

// Content types for the fixed set of parts this package always or
// conditionally emits.
const (
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorkbookMacro = "application/vnd.ms-excel.sheet.macroEnabled.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctTable         = "application/vnd.openxmlformats-officedocument.spreadsheetml.table+xml"
	ctComments      = "application/vnd.openxmlformats-officedocument.spreadsheetml.comments+xml"
	ctDrawing       = "application/vnd.openxmlformats-officedocument.drawing+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCore          = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp           = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctCustom        = "application/vnd.openxmlformats-officedocument.custom-properties+xml"
	ctVMLDrawing    = "application/vnd.openxmlformats-officedocument.vmlDrawing"
	ctVBAProject    = "application/vnd.ms-office.vbaProject"
)
