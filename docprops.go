// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"sort"
)

// xlsxCoreProperties is the root of docProps/core.xml: the Dublin Core
// subset OOXML packages carry (title, author, timestamps).
type xlsxCoreProperties struct {
	XMLName        xml.Name `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	Description    string   `xml:"dc:description,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Created        *dcTerm  `xml:"dcterms:created,omitempty"`
	Modified       *dcTerm  `xml:"dcterms:modified,omitempty"`
	Category       string   `xml:"cp:category,omitempty"`
	ContentStatus  string   `xml:"cp:contentStatus,omitempty"`
}

type dcTerm struct {
	Type string `xml:"xsi:type,attr"`
	Val  string `xml:",chardata"`
}

func buildCorePropertiesXML(p DocumentProperties) ([]byte, error) {
	core := &xlsxCoreProperties{
		XmlnsCP:       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDC:       "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:  "http://purl.org/dc/terms/",
		XmlnsDCMIType: "http://purl.org/dc/dcmitype/",
		XmlnsXSI:      "http://www.w3.org/2001/XMLSchema-instance",

		Title:          p.Title,
		Subject:        p.Subject,
		Creator:        p.Author,
		Keywords:       p.Keywords,
		Description:    p.Comments,
		LastModifiedBy: p.Author,
		Category:       p.Category,
		ContentStatus:  p.Status,
	}
	if p.Created != "" {
		core.Created = &dcTerm{Type: "dcterms:W3CDTF", Val: p.Created}
	}
	modified := p.Modified
	if modified == "" {
		modified = NowUTC()
	}
	core.Modified = &dcTerm{Type: "dcterms:W3CDTF", Val: modified}

	body, err := xml.Marshal(core)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal docProps/core.xml")
	}
	return append([]byte(XMLHeader), body...), nil
}

// xlsxExtendedProperties is the root of docProps/app.xml.
type xlsxExtendedProperties struct {
	XMLName          xml.Name      `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	XmlnsVT          string        `xml:"xmlns:vt,attr"`
	Application      string        `xml:"Application"`
	DocSecurity      int           `xml:"DocSecurity"`
	ScaleCrop        bool          `xml:"ScaleCrop"`
	Manager          string        `xml:"Manager,omitempty"`
	Company          string        `xml:"Company"`
	LinksUpToDate    bool          `xml:"LinksUpToDate"`
	SharedDoc        bool          `xml:"SharedDoc"`
	HyperlinksChanged bool         `xml:"HyperlinksChanged"`
	AppVersion       string        `xml:"AppVersion"`
	HeadingPairs     *xlsxVectorHP `xml:"HeadingPairs,omitempty"`
	TitlesOfParts    *xlsxVectorT  `xml:"TitlesOfParts,omitempty"`
}

type xlsxVectorHP struct {
	Vector xlsxVTVector `xml:"vt:vector"`
}

type xlsxVTVector struct {
	Size    int           `xml:"size,attr"`
	BaseType string       `xml:"baseType,attr"`
	Variant []xlsxVariant `xml:"vt:variant"`
	LPSTR   []string      `xml:"vt:lpstr"`
}

type xlsxVariant struct {
	LPSTR string `xml:"vt:lpstr,omitempty"`
	I4    *int   `xml:"vt:i4,omitempty"`
}

type xlsxVectorT struct {
	Vector xlsxVTVector `xml:"vt:vector"`
}

// buildAppPropertiesXML renders docProps/app.xml. sheetNames lists
// worksheet names in creation order; namedRangeCount is the number of
// defined names, both folded into the HeadingPairs/TitlesOfParts summary
// Excel shows in its file-properties dialog.
func buildAppPropertiesXML(p DocumentProperties, sheetNames []string, namedRangeCount int) ([]byte, error) {
	app := &xlsxExtendedProperties{
		XmlnsVT:      "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes",
		Application:  "xlsxwriter",
		ScaleCrop:    false,
		Manager:      p.Manager,
		Company:      p.Company,
		LinksUpToDate: false,
		SharedDoc:    false,
		AppVersion:   "1.0000",
	}

	titles := make([]string, 0, len(sheetNames))
	titles = append(titles, sheetNames...)

	headingVariants := []xlsxVariant{{LPSTR: "Worksheets"}, {I4: intPtr(len(sheetNames))}}
	size := 2
	if namedRangeCount > 0 {
		headingVariants = append(headingVariants, xlsxVariant{LPSTR: "Named Ranges"}, xlsxVariant{I4: intPtr(namedRangeCount)})
		size += 2
		for i := 0; i < namedRangeCount; i++ {
			titles = append(titles, "")
		}
	}
	app.HeadingPairs = &xlsxVectorHP{Vector: xlsxVTVector{Size: size, BaseType: "variant", Variant: headingVariants}}
	app.TitlesOfParts = &xlsxVectorT{Vector: xlsxVTVector{Size: len(titles), BaseType: "lpstr", LPSTR: titles}}

	body, err := xml.Marshal(app)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal docProps/app.xml")
	}
	return append([]byte(XMLHeader), body...), nil
}

// xlsxCustomProperties is the root of docProps/custom.xml, used only when
// DocumentProperties.Custom is non-empty.
type xlsxCustomProperties struct {
	XMLName xml.Name             `xml:"http://schemas.openxmlformats.org/officeDocument/2006/custom-properties Properties"`
	XmlnsVT string               `xml:"xmlns:vt,attr"`
	Props   []xlsxCustomProperty `xml:"property"`
}

type xlsxCustomProperty struct {
	FmtID string `xml:"fmtid,attr"`
	PID   int    `xml:"pid,attr"`
	Name  string `xml:"name,attr"`
	LPWSTR string `xml:"vt:lpwstr"`
}

func buildCustomPropertiesXML(custom map[string]string) ([]byte, error) {
	props := &xlsxCustomProperties{
		XmlnsVT: "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes",
	}
	names := sortedKeys(custom)
	for i, name := range names {
		props.Props = append(props.Props, xlsxCustomProperty{
			FmtID:  "{D5CDD505-2E9C-101B-9397-08002B2CF9AE}",
			PID:    i + 2,
			Name:   name,
			LPWSTR: custom[name],
		})
	}
	body, err := xml.Marshal(props)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal docProps/custom.xml")
	}
	return append([]byte(XMLHeader), body...), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
