// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"strconv"
)

const relationshipsPackageNS = "http://schemas.openxmlformats.org/package/2006/relationships"

// xlsxRelationships is the root of every .rels part: _rels/.rels,
// xl/_rels/workbook.xml.rels, and each worksheet's
// xl/worksheets/_rels/sheet{N}.xml.rels.
type xlsxRelationships struct {
	XMLName xml.Name           `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rel     []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// relationshipBuilder allocates sequential rIds ("rId1", "rId2", ...) in
// the order relationships are registered.
type relationshipBuilder struct {
	rels []xlsxRelationship
}

func (b *relationshipBuilder) add(relType, target string) string {
	return b.addWithMode(relType, target, "")
}

func (b *relationshipBuilder) addExternal(relType, target string) string {
	return b.addWithMode(relType, target, "External")
}

func (b *relationshipBuilder) addWithMode(relType, target, mode string) string {
	id := "rId" + strconv.Itoa(len(b.rels)+1)
	b.rels = append(b.rels, xlsxRelationship{ID: id, Type: relType, Target: target, TargetMode: mode})
	return id
}

func (b *relationshipBuilder) buildXML() ([]byte, error) {
	rels := &xlsxRelationships{Rel: b.rels}
	body, err := xml.Marshal(rels)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal relationships part")
	}
	return append([]byte(XMLHeader), body...), nil
}

func (b *relationshipBuilder) empty() bool { return len(b.rels) == 0 }

// Relationship type URIs used across the package's .rels parts.
const (
	relTypeOfficeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProperties  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeCustomProps     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties"
	relTypeWorksheet       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeStyles          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSharedStrings   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	relTypeTheme           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeHyperlink       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeTable           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/table"
	relTypeComments        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	relTypeDrawing         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
	relTypeVMLDrawing      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing"
	relTypeImage           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeVBAProject      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/vbaProject"
	relTypeVBAProjectSig   = "http://schemas.microsoft.com/office/2006/relationships/vbaProjectSignature"
)
