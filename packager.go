// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
)

// orderedParts collects named part bodies in insertion order, so a
// worksheet's referenced parts (tables, drawings, comments, media) land in
// the archive in a stable, run-to-run identical sequence rather than a
// map's randomized iteration order.
type orderedParts struct {
	names  []string
	bodies [][]byte
}

func (o *orderedParts) add(name string, body []byte) {
	o.names = append(o.names, name)
	o.bodies = append(o.bodies, body)
}

// packager assembles a finalized Workbook into a ZIP archive: the package
// member set and relationship graph ECMA-376 part 2 requires, written in
// core-parts-first, worksheets-in-order, then-referenced-parts sequence.
type packager struct {
	wb       *Workbook
	noCompress bool

	ct        *contentTypeBuilder
	rootRels  relationshipBuilder
	wbRels    relationshipBuilder

	imageCounter   int
	tableCounter   int
	drawingCounter int
	commentsCounter int
	vmlCounter     int

	authors *commentAuthorTable
}

// PackOptions controls how Save/SaveToBuffer compress the archive.
type PackOptions struct {
	// NoCompression stores every member uncompressed instead of deflating
	// it; useful for debugging a part's exact bytes, never for shipping.
	NoCompression bool
}

func newPackager(wb *Workbook, opts PackOptions) *packager {
	return &packager{
		wb:         wb,
		noCompress: opts.NoCompression,
		ct:         newContentTypeBuilder(),
		authors:    newCommentAuthorTable(),
	}
}

func (p *packager) write(zw *zip.Writer) error {
	sheetXML := make([][]byte, len(p.wb.Worksheets))
	sheetRels := make([]relationshipBuilder, len(p.wb.Worksheets))
	sheetExtras := make([]*orderedParts, len(p.wb.Worksheets))

	for i, sheet := range p.wb.Worksheets {
		extras := &orderedParts{}
		if err := p.buildWorksheetParts(sheet, &sheetRels[i], extras); err != nil {
			return err
		}
		body, err := sheet.finalize()
		if err != nil {
			return wrapErr(ErrIO, err, "finalize worksheet %q", sheet.Name)
		}
		sheetXML[i] = body
		sheetExtras[i] = extras
		p.ct.addOverride("/xl/worksheets/sheet"+strconv.Itoa(i+1)+".xml", ctWorksheet)
	}

	stylesXML, err := marshalPart(p.wb.styles.buildXML(), "xl/styles.xml")
	if err != nil {
		return err
	}
	p.ct.addOverride("/xl/styles.xml", ctStyles)

	var sharedStringsXML []byte
	if p.wb.strings.UniqueCount() > 0 {
		sharedStringsXML, err = marshalPart(p.wb.strings.buildXML(), "xl/sharedStrings.xml")
		if err != nil {
			return err
		}
		p.ct.addOverride("/xl/sharedStrings.xml", ctSharedStrings)
	}

	themeXML := p.wb.themeBytes()
	p.ct.addOverride("/xl/theme/theme1.xml", ctTheme)

	sheetRIDs := make([]string, len(p.wb.Worksheets))
	for i := range p.wb.Worksheets {
		sheetRIDs[i] = p.wbRels.add(relTypeWorksheet, "worksheets/sheet"+strconv.Itoa(i+1)+".xml")
	}
	p.wbRels.add(relTypeStyles, "styles.xml")
	if sharedStringsXML != nil {
		p.wbRels.add(relTypeSharedStrings, "sharedStrings.xml")
	}
	p.wbRels.add(relTypeTheme, "theme/theme1.xml")
	if p.wb.HasVBA() {
		p.wbRels.add(relTypeVBAProject, "vbaProject.bin")
		if p.wb.vbaSignature != nil {
			p.wbRels.add(relTypeVBAProjectSig, "vbaProjectSignature.bin")
		}
	}

	workbookXML, err := buildWorkbookXML(p.wb, sheetRIDs, p.wb.ReadOnlyRecommended)
	if err != nil {
		return err
	}
	if p.wb.HasVBA() {
		p.ct.addOverride("/xl/workbook.xml", ctWorkbookMacro)
	} else {
		p.ct.addOverride("/xl/workbook.xml", ctWorkbook)
	}

	wbRelsXML, err := p.wbRels.buildXML()
	if err != nil {
		return err
	}

	p.rootRels.add(relTypeOfficeDocument, "xl/workbook.xml")
	p.rootRels.add(relTypeCoreProperties, "docProps/core.xml")
	p.rootRels.add(relTypeExtendedProps, "docProps/app.xml")
	hasCustom := len(p.wb.Properties.Custom) > 0
	if hasCustom {
		p.rootRels.add(relTypeCustomProps, "docProps/custom.xml")
	}

	coreXML, err := buildCorePropertiesXML(p.wb.Properties)
	if err != nil {
		return err
	}
	p.ct.addOverride("/docProps/core.xml", ctCore)

	sheetNames := make([]string, len(p.wb.Worksheets))
	for i, sheet := range p.wb.Worksheets {
		sheetNames[i] = sheet.Name
	}
	appXML, err := buildAppPropertiesXML(p.wb.Properties, sheetNames, len(p.wb.DefinedNames))
	if err != nil {
		return err
	}
	p.ct.addOverride("/docProps/app.xml", ctApp)

	var customXML []byte
	if hasCustom {
		customXML, err = buildCustomPropertiesXML(p.wb.Properties.Custom)
		if err != nil {
			return err
		}
		p.ct.addOverride("/docProps/custom.xml", ctCustom)
	}

	if p.wb.HasVBA() {
		p.ct.addDefault("bin", ctVBAProject)
	}

	rootRelsXML, err := p.rootRels.buildXML()
	if err != nil {
		return err
	}

	contentTypesXML, err := p.ct.buildXML()
	if err != nil {
		return err
	}

	w := &zipWriter{zw: zw, noCompress: p.noCompress}
	if err := w.put("[Content_Types].xml", contentTypesXML); err != nil {
		return err
	}
	if err := w.put("_rels/.rels", rootRelsXML); err != nil {
		return err
	}
	if err := w.put("docProps/core.xml", coreXML); err != nil {
		return err
	}
	if err := w.put("docProps/app.xml", appXML); err != nil {
		return err
	}
	if hasCustom {
		if err := w.put("docProps/custom.xml", customXML); err != nil {
			return err
		}
	}
	if err := w.put("xl/workbook.xml", workbookXML); err != nil {
		return err
	}
	if err := w.put("xl/_rels/workbook.xml.rels", wbRelsXML); err != nil {
		return err
	}
	if err := w.put("xl/styles.xml", stylesXML); err != nil {
		return err
	}
	if sharedStringsXML != nil {
		if err := w.put("xl/sharedStrings.xml", sharedStringsXML); err != nil {
			return err
		}
	}
	if err := w.put("xl/theme/theme1.xml", themeXML); err != nil {
		return err
	}
	if p.wb.HasVBA() {
		if err := w.put("xl/vbaProject.bin", p.wb.vbaProject); err != nil {
			return err
		}
		if p.wb.vbaSignature != nil {
			if err := w.put("xl/vbaProjectSignature.bin", p.wb.vbaSignature); err != nil {
				return err
			}
		}
	}

	for i, sheet := range p.wb.Worksheets {
		name := "xl/worksheets/sheet" + strconv.Itoa(i+1) + ".xml"
		if err := w.put(name, sheetXML[i]); err != nil {
			return err
		}
		if !sheetRels[i].empty() {
			relsXML, err := sheetRels[i].buildXML()
			if err != nil {
				return err
			}
			if err := w.put("xl/worksheets/_rels/sheet"+strconv.Itoa(i+1)+".xml.rels", relsXML); err != nil {
				return err
			}
		}
		for j, partName := range sheetExtras[i].names {
			if err := w.put(partName, sheetExtras[i].bodies[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildWorksheetParts builds every relationship-bearing part a single
// worksheet owns (hyperlinks, tables, drawing, legacy drawing/comments),
// assigning relationship ids in registration order and wiring them back
// into the worksheet's own rel-id fields for finalize() to consume.
func (p *packager) buildWorksheetParts(sheet *Worksheet, rels *relationshipBuilder, extras *orderedParts) error {
	if len(sheet.Hyperlinks) > 0 {
		sheet.hyperlinkRelIDs = make(map[int]string)
		for i, h := range sheet.Hyperlinks {
			if h.NeedsRelationship() {
				sheet.hyperlinkRelIDs[i] = rels.addExternal(relTypeHyperlink, h.Target())
			}
		}
	}

	if len(sheet.Tables) > 0 {
		sheet.tableRelIDs = make([]string, len(sheet.Tables))
		for i, t := range sheet.Tables {
			p.tableCounter++
			t.index = p.tableCounter
			tbl, err := t.buildXML()
			if err != nil {
				return err
			}
			body, err := marshalPart(tbl, "xl/tables/table"+strconv.Itoa(p.tableCounter)+".xml")
			if err != nil {
				return err
			}
			name := "xl/tables/table" + strconv.Itoa(p.tableCounter) + ".xml"
			extras.add(name, body)
			p.ct.addOverride("/"+name, ctTable)
			sheet.tableRelIDs[i] = rels.add(relTypeTable, "../tables/table"+strconv.Itoa(p.tableCounter)+".xml")
		}
	}

	if len(sheet.Images) > 0 {
		p.drawingCounter++
		drawingN := p.drawingCounter
		var drawingRels relationshipBuilder
		for _, img := range sheet.Images {
			p.imageCounter++
			ext := img.Ext
			ct, ok := imageContentTypes[ext]
			if !ok {
				return newErr(ErrParameter, "unsupported image extension %q", ext)
			}
			p.ct.addDefault(ext[1:], ct)
			mediaName := "xl/media/image" + strconv.Itoa(p.imageCounter) + ext
			extras.add(mediaName, img.Data)
			img.relID = drawingRels.add(relTypeImage, "../media/image"+strconv.Itoa(p.imageCounter)+ext)
		}
		drawingXML, err := buildDrawingXML(sheet.Images)
		if err != nil {
			return err
		}
		drawingName := "xl/drawings/drawing" + strconv.Itoa(drawingN) + ".xml"
		extras.add(drawingName, drawingXML)
		p.ct.addOverride("/"+drawingName, ctDrawing)
		if !drawingRels.empty() {
			relsBody, err := drawingRels.buildXML()
			if err != nil {
				return err
			}
			extras.add("xl/drawings/_rels/drawing"+strconv.Itoa(drawingN)+".xml.rels", relsBody)
		}
		sheet.drawingRelID = rels.add(relTypeDrawing, "../drawings/drawing"+strconv.Itoa(drawingN)+".xml")
	}

	if len(sheet.Comments) > 0 {
		p.commentsCounter++
		n := p.commentsCounter
		commentsXML, err := buildCommentsXML(sheet.Comments, p.authors)
		if err != nil {
			return err
		}
		commentsName := "xl/comments" + strconv.Itoa(n) + ".xml"
		extras.add(commentsName, commentsXML)
		p.ct.addOverride("/"+commentsName, ctComments)
		rels.add(relTypeComments, "../comments"+strconv.Itoa(n)+".xml")
	}

	if len(sheet.Comments) > 0 || len(sheet.Buttons) > 0 {
		p.vmlCounter++
		n := p.vmlCounter
		vmlXML, err := buildLegacyDrawingVML(sheet.Comments, sheet.Buttons)
		if err != nil {
			return err
		}
		vmlName := "xl/drawings/vmlDrawing" + strconv.Itoa(n) + ".vml"
		extras.add(vmlName, vmlXML)
		p.ct.addDefault("vml", ctVMLDrawing)
		sheet.legacyDrawingRelID = rels.add(relTypeVMLDrawing, "../drawings/vmlDrawing"+strconv.Itoa(n)+".vml")
	}

	return nil
}

// marshalPart marshals v, whose XMLName field already carries its part's
// namespace and element name, prepending the standard XML declaration.
func marshalPart(v interface{}, partName string) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal %s", partName)
	}
	return append([]byte(XMLHeader), body...), nil
}

// zipWriter writes named members into a zip.Writer, honoring the
// package's deflate-by-default / optional-stored compression choice.
type zipWriter struct {
	zw         *zip.Writer
	noCompress bool
}

func (w *zipWriter) put(name string, body []byte) error {
	method := zip.Deflate
	if w.noCompress {
		method = zip.Store
	}
	fw, err := w.zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return wrapErr(ErrIO, err, "create zip member %s", name)
	}
	if _, err := fw.Write(body); err != nil {
		return wrapErr(ErrIO, err, "write zip member %s", name)
	}
	return nil
}

