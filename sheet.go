// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
)

// relationshipsNS is the namespace worksheet r:id attributes live in.
const relationshipsNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// WorksheetMode selects a worksheet's memory regime.
type WorksheetMode int

const (
	// ModeRandomAccess buffers the whole sheet's cells in memory and
	// allows writes in any order.
	ModeRandomAccess WorksheetMode = iota
	// ModeConstantMemory streams rows to an inline-string sink in strict
	// top-to-bottom order, holding only one row in memory at a time.
	ModeConstantMemory
	// ModeLowMemory is ModeConstantMemory but pools strings through the
	// shared-string table instead of writing them inline.
	ModeLowMemory
)

// Worksheet is one sheet of a workbook: a cell store plus every piece of
// sheet-level state the assembler folds into sheet{N}.xml.
type Worksheet struct {
	Name     string
	index    int
	mode     WorksheetMode
	styles   *styleRegistry
	strings  *sharedStringTable

	access *cellStore
	stream *streamStore
	sink   *bufferedSink

	Columns    *columnStore
	Merges     []MergeRange
	Hyperlinks []*Hyperlink
	Tables     []*Table
	Images     []*Image
	Comments   []*Comment
	Sparklines []*Sparkline
	Buttons    []*Button

	cfGroups    []conditionalFormatGroup
	Validations []*DataValidation

	Protection SheetProtection
	View       SheetView
	Properties SheetProperties
	PageSetup  PageSetup

	AutoFilterRange    string
	AutoFilterCriteria []AutoFilterCriteria

	// Hidden marks the worksheet tab hidden in xl/workbook.xml's <sheet>
	// state attribute.
	Hidden bool

	// relationship ids assigned by the workbook/packager when it wires
	// worksheet -> hyperlink/table/drawing relationships.
	hyperlinkRelIDs  map[int]string
	tableRelIDs      []string
	drawingRelID     string
	legacyDrawingRelID string
}

func newWorksheet(name string, index int, mode WorksheetMode, styles *styleRegistry, strings *sharedStringTable, tempDir string) *Worksheet {
	w := &Worksheet{
		Name: name, index: index, mode: mode, styles: styles, strings: strings,
		Columns:    newColumnStore(),
		View:       SheetView{ShowGridLines: true, ShowRowColHeaders: true, ShowZeros: true, View: "normal", ZoomScale: 100},
		PageSetup:  PageSetup{Orientation: "portrait", MarginLeft: 0.7, MarginRight: 0.7, MarginTop: 0.75, MarginBottom: 0.75, MarginHeader: 0.3, MarginFooter: 0.3},
		Properties: SheetProperties{OutlineSummaryBelow: true, OutlineSummaryRight: true},
	}
	switch mode {
	case ModeRandomAccess:
		w.access = newCellStore()
	default:
		stringMode := sharedStringInline
		if mode == ModeLowMemory {
			stringMode = sharedStringPooled
		}
		w.sink = &bufferedSink{dir: tempDir}
		w.stream = newStreamStore(w.sink, styles, strings, stringMode)
	}
	return w
}

// WriteCell writes cell at (row, col). In streaming modes this enforces
// top-to-bottom, left-within-row write order; see streamStore.Put.
func (w *Worksheet) WriteCell(row, col int, cell Cell) error {
	if w.access != nil {
		w.access.Put(row, col, cell)
		return nil
	}
	return w.stream.Put(row, col, cell)
}

// SetRowProperties sets row-level height/visibility/outline state for row.
func (w *Worksheet) SetRowProperties(row int, props RowProperties) error {
	if w.access != nil {
		w.access.PutRowProperties(row, props)
		return nil
	}
	return w.stream.PutRowProperties(row, props)
}

// AddConditionalFormat registers rules against rng, grouped together under
// one `<conditionalFormatting sqref="rng">` block.
func (w *Worksheet) AddConditionalFormat(rng string, rules ...ConditionalFormatRule) {
	w.cfGroups = append(w.cfGroups, conditionalFormatGroup{Range: rng, Rules: rules})
}

// AddDataValidation registers a data-validation rule.
func (w *Worksheet) AddDataValidation(d *DataValidation) {
	w.Validations = append(w.Validations, d)
}

// Merge registers a merged range. Overlap against previously registered
// ranges is checked at finalize time.
func (w *Worksheet) Merge(ref string) {
	w.Merges = append(w.Merges, MergeRange{Ref: ref})
}

// AddHyperlink registers a cell hyperlink.
func (w *Worksheet) AddHyperlink(h *Hyperlink) {
	w.Hyperlinks = append(w.Hyperlinks, h)
}

// AddImage attaches img to the worksheet, anchored at img.Cell. The image
// is embedded as an opaque blob; decoding is limited to recovering pixel
// dimensions for sizing the anchor.
func (w *Worksheet) AddImage(img *Image) error {
	if err := img.resolveExtent(); err != nil {
		return err
	}
	w.Images = append(w.Images, img)
	return nil
}

// SetHidden hides or shows the worksheet's tab.
func (w *Worksheet) SetHidden(hidden bool) {
	w.Hidden = hidden
}

// SetVBAName sets the worksheet's VBA code name (sheetPr/@codeName),
// overriding the default of the worksheet's own display name. Needed when
// an imported macro refers to a sheet by a code name other than its tab
// name, for example a project extracted from a non-English Excel build.
func (w *Worksheet) SetVBAName(name string) {
	w.Properties.CodeName = name
}

// AddSparkline registers a sparkline group on the worksheet, rendered
// through the `x14:sparklineGroups` extension list Excel 2010 introduced.
// Sparklines written this way are silently ignored by Excel 2007.
func (w *Worksheet) AddSparkline(s *Sparkline) error {
	if err := s.validate(); err != nil {
		return err
	}
	w.Sparklines = append(w.Sparklines, s)
	return nil
}

// AddComment attaches c to the worksheet. Comments are rendered through
// the legacy VML drawing format (comments*.xml + vmlDrawing*.vml), not
// the DrawingML format images and charts use.
func (w *Worksheet) AddComment(c *Comment) {
	w.Comments = append(w.Comments, c)
}

// AddButton attaches a form-control button to the worksheet. Like
// comments, buttons are rendered through the legacy VML drawing format;
// a worksheet with both shares one vmlDrawing{N}.vml part between them.
func (w *Worksheet) AddButton(b *Button) error {
	if _, _, err := CellNameToCoordinates(b.Cell); err != nil {
		return err
	}
	w.Buttons = append(w.Buttons, b)
	return nil
}

// AddTable validates t and registers it on the worksheet. Its workbook-wide
// 1-based table{N}.xml index is assigned by the packager at save time.
func (w *Worksheet) AddTable(t *Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	w.Tables = append(w.Tables, t)
	return nil
}

// finalize closes out whichever store is active (flushing the last
// pending row for streaming modes) and returns the fully assembled
// sheet{N}.xml bytes.
func (w *Worksheet) finalize() ([]byte, error) {
	if w.stream != nil {
		if err := w.stream.Finish(); err != nil {
			return nil, err
		}
	}
	if from, to, overlap := mergeOverlaps(w.Merges); overlap {
		return nil, newErr(ErrMergeRangeOverlap, "merged ranges %s and %s overlap", from, to)
	}

	sheet := &xlsxWorksheet{
		Xmlns:  sharedStringsNS,
		XmlnsR: relationshipsNS,
	}
	sheet.SheetPr = w.Properties.buildXML()
	sheet.Dimension = w.buildDimension()
	sheet.SheetViews = w.View.buildXML()
	sheet.SheetFormatPr = &xlsxSheetFormatPr{DefaultRowHeight: 15}

	if w.access != nil {
		applyAutofit(w.Columns, autofitColumnWidths(w.access))
	}
	colRuns, err := w.Columns.coalesce(w.styles)
	if err != nil {
		return nil, err
	}
	sheet.Cols = buildCols(colRuns)

	sheetData, err := w.buildSheetData()
	if err != nil {
		return nil, err
	}
	sheet.SheetData = xlsxSheetData{Raw: sheetData}

	sheet.SheetProtection = w.Protection.buildXML()
	sheet.AutoFilter = buildAutoFilter(w.AutoFilterRange, w.AutoFilterCriteria)
	sheet.MergeCells = buildMergeCells(w.Merges)
	cf, err := buildConditionalFormatting(w.cfGroups, w.styles)
	if err != nil {
		return nil, err
	}
	sheet.ConditionalFormatting = cf
	sheet.DataValidations = buildDataValidations(w.Validations)
	sheet.Hyperlinks = w.buildHyperlinks()
	sheet.PrintOptions = w.PageSetup.buildPrintOptions()
	margins := w.PageSetup.buildMargins()
	sheet.PageMargins = margins
	sheet.PageSetupPr = w.PageSetup.buildPageSetup()
	sheet.HeaderFooter = w.PageSetup.buildHeaderFooter()
	sheet.RowBreaks = buildBreaks(w.PageSetup.RowBreaks, 16383)
	sheet.ColBreaks = buildBreaks(w.PageSetup.ColBreaks, 1048575)
	if w.drawingRelID != "" {
		sheet.Drawing = &xlsxRID{ID: w.drawingRelID}
	}
	if w.legacyDrawingRelID != "" {
		sheet.LegacyDrawing = &xlsxRID{ID: w.legacyDrawingRelID}
	}
	sheet.TableParts = w.buildTableParts()
	extLst, err := buildSparklineExtLst(w.Sparklines)
	if err != nil {
		return nil, err
	}
	sheet.ExtLst = extLst

	out, err := xml.Marshal(sheet)
	if err != nil {
		return nil, err
	}
	return append([]byte(XMLHeader), out...), nil
}

func (w *Worksheet) buildDimension() *xlsxDimension {
	var (
		ref            string
		minRow, minCol int
		maxRow, maxCol int
		ok             bool
	)
	if w.access != nil {
		minRow, minCol, maxRow, maxCol, ok = w.access.UsedRange()
	} else {
		minRow, minCol, maxRow, maxCol, ok = w.stream.UsedRange()
	}
	if ok {
		ref, _ = CellRange(minCol, minRow, maxCol, maxRow)
	}
	if ref == "" {
		ref = "A1"
	}
	return &xlsxDimension{Ref: ref}
}

// buildSheetData renders every row into the raw `<sheetData>` inner XML.
// Streaming-mode worksheets have already flushed their rows straight to
// sink during WriteCell/finalize, so this only applies to random-access
// worksheets; streaming worksheets return the sink's accumulated bytes.
func (w *Worksheet) buildSheetData() (string, error) {
	if w.stream != nil {
		b, err := w.sink.Bytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	var b xmlBuilder
	rows := w.access.rowIndices()
	spans := w.access.rowSpans()
	for _, row := range rows {
		r := w.access.rows[row]
		var props RowProperties
		if r.props != nil {
			props = *r.props
		}
		if len(r.cells) == 0 {
			b.emptyTag("row", rowOpenAttrs(row, "", props)...)
			continue
		}
		cols := sortedCols(r)
		b.openTagAll("row", rowOpenAttrs(row, spans[row], props)...)
		for _, col := range cols {
			ref := mustCellName(col, row)
			stringMode := sharedStringPooled
			if err := writeStreamCell(&b, ref, r.cells[col], w.styles, w.strings, stringMode); err != nil {
				return "", err
			}
		}
		b.closeTag("row")
	}
	return b.String(), nil
}

type xlsxHyperlinks struct {
	Items []xlsxHyperlinkItem `xml:"hyperlink"`
}

type xlsxHyperlinkItem struct {
	Ref      string `xml:"ref,attr"`
	RID      string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr,omitempty"`
	Location string `xml:"location,attr,omitempty"`
	Tooltip  string `xml:"tooltip,attr,omitempty"`
	Display  string `xml:"display,attr,omitempty"`
}

func (w *Worksheet) buildHyperlinks() *xlsxHyperlinks {
	if len(w.Hyperlinks) == 0 {
		return nil
	}
	out := &xlsxHyperlinks{}
	for _, h := range w.Hyperlinks {
		ref := mustCellName(h.Col, h.Row)
		item := xlsxHyperlinkItem{Ref: ref, Tooltip: h.ToolTip(), Display: h.DisplayText()}
		if h.NeedsRelationship() {
			item.RID = w.hyperlinkRelIDs[len(out.Items)]
		} else {
			item.Location = h.Anchor()
		}
		out.Items = append(out.Items, item)
	}
	return out
}

type xlsxTableParts struct {
	Count int              `xml:"count,attr"`
	Parts []xlsxTablePart  `xml:"tablePart"`
}

type xlsxTablePart struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

func (w *Worksheet) buildTableParts() *xlsxTableParts {
	if len(w.Tables) == 0 {
		return nil
	}
	out := &xlsxTableParts{Count: len(w.Tables)}
	for i := range w.Tables {
		rid := ""
		if i < len(w.tableRelIDs) {
			rid = w.tableRelIDs[i]
		}
		out.Parts = append(out.Parts, xlsxTablePart{RID: rid})
	}
	return out
}

type xlsxDimension struct {
	Ref string `xml:"ref,attr"`
}

type xlsxRID struct {
	ID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// xlsxSheetData holds the worksheet's row data as pre-rendered raw XML,
// injected verbatim (no re-escaping) since every cell was already escaped
// at write time by writeStreamCell.
type xlsxSheetData struct {
	Raw string `xml:",innerxml"`
}

// xlsxWorksheet is the root of xl/worksheets/sheet{N}.xml. Field order matches
// the required SpreadsheetML child-element order exactly; encoding/xml
// emits struct fields in declaration order.
type xlsxWorksheet struct {
	XMLName xml.Name `xml:"worksheet"`
	Xmlns   string   `xml:"xmlns,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`

	SheetPr        *xlsxSheetPr      `xml:"sheetPr,omitempty"`
	Dimension      *xlsxDimension    `xml:"dimension,omitempty"`
	SheetViews     *xlsxSheetViews   `xml:"sheetViews,omitempty"`
	SheetFormatPr  *xlsxSheetFormatPr `xml:"sheetFormatPr,omitempty"`
	Cols           *xlsxCols         `xml:"cols,omitempty"`
	SheetData      xlsxSheetData     `xml:"sheetData"`
	SheetProtection *xlsxSheetProtection `xml:"sheetProtection,omitempty"`
	AutoFilter     *xlsxAutoFilterFull `xml:"autoFilter,omitempty"`
	MergeCells     *xlsxMergeCells   `xml:"mergeCells,omitempty"`
	ConditionalFormatting []*xlsxConditionalFormatting `xml:"conditionalFormatting,omitempty"`
	DataValidations *xlsxDataValidations `xml:"dataValidations,omitempty"`
	Hyperlinks     *xlsxHyperlinks   `xml:"hyperlinks,omitempty"`
	PrintOptions   *xlsxPrintOptions `xml:"printOptions,omitempty"`
	PageMargins    *xlsxPageMargins  `xml:"pageMargins,omitempty"`
	PageSetupPr    *xlsxPageSetup    `xml:"pageSetup,omitempty"`
	HeaderFooter   *xlsxHeaderFooter `xml:"headerFooter,omitempty"`
	RowBreaks      *xlsxBreaks       `xml:"rowBreaks,omitempty"`
	ColBreaks      *xlsxBreaks       `xml:"colBreaks,omitempty"`
	Drawing        *xlsxRID          `xml:"drawing,omitempty"`
	LegacyDrawing  *xlsxRID          `xml:"legacyDrawing,omitempty"`
	LegacyDrawingHF *xlsxRID         `xml:"legacyDrawingHF,omitempty"`
	TableParts     *xlsxTableParts   `xml:"tableParts,omitempty"`
	ExtLst         *xlsxExtLst       `xml:"extLst,omitempty"`
}
