// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"

	"golang.org/x/crypto/pbkdf2"
)

// ColumnProperties holds the column-level attributes a contiguous run of
// columns can share: width, format, visibility, and outline state.
type ColumnProperties struct {
	Width        float64
	HasWidth     bool
	Format       *Format
	Hidden       bool
	OutlineLevel int
	Collapsed    bool
}

func (c ColumnProperties) key(formatIdx int) [5]int {
	w := 0
	if c.HasWidth {
		w = int(c.Width*1000 + 0.5)
	}
	hidden := 0
	if c.Hidden {
		hidden = 1
	}
	collapsed := 0
	if c.Collapsed {
		collapsed = 1
	}
	return [5]int{w, formatIdx, hidden, c.OutlineLevel, collapsed}
}

// columnStore tracks per-column properties set by the user, keyed by
// 0-indexed column number.
type columnStore struct {
	cols map[int]ColumnProperties
}

func newColumnStore() *columnStore {
	return &columnStore{cols: make(map[int]ColumnProperties)}
}

func (s *columnStore) Set(col int, props ColumnProperties) {
	s.cols[col] = props
}

func (s *columnStore) Get(col int) (ColumnProperties, bool) {
	p, ok := s.cols[col]
	return p, ok
}

type colRun struct {
	min, max int
	props    ColumnProperties
	xfIndex  int
}

// coalesce sorts stored column properties by index and merges consecutive
// columns whose (width, format-idx, hidden, outline-level, collapsed)
// tuple is identical into a single `<col min max .../>` run.
func (s *columnStore) coalesce(styles *styleRegistry) ([]colRun, error) {
	if len(s.cols) == 0 {
		return nil, nil
	}
	idx := make([]int, 0, len(s.cols))
	for c := range s.cols {
		idx = append(idx, c)
	}
	sort.Ints(idx)

	var runs []colRun
	for _, c := range idx {
		p := s.cols[c]
		xf := -1
		if p.Format != nil {
			var err error
			xf, err = styles.AddFormat(p.Format)
			if err != nil {
				return nil, err
			}
		}
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.max == c-1 && last.xfIndex == xf && last.props.key(xf) == p.key(xf) {
				last.max = c
				continue
			}
		}
		runs = append(runs, colRun{min: c, max: c, props: p, xfIndex: xf})
	}
	return runs, nil
}

// xlsxCols is the `<cols>` worksheet child.
type xlsxCols struct {
	Col []xlsxCol `xml:"col"`
}

type xlsxCol struct {
	Min          int    `xml:"min,attr"`
	Max          int    `xml:"max,attr"`
	Width        string `xml:"width,attr,omitempty"`
	Style        *int   `xml:"style,attr,omitempty"`
	Hidden       *bool  `xml:"hidden,attr,omitempty"`
	OutlineLevel *int   `xml:"outlineLevel,attr,omitempty"`
	Collapsed    *bool  `xml:"collapsed,attr,omitempty"`
	CustomWidth  *bool  `xml:"customWidth,attr,omitempty"`
}

func buildCols(runs []colRun) *xlsxCols {
	if len(runs) == 0 {
		return nil
	}
	out := &xlsxCols{}
	for _, r := range runs {
		col := xlsxCol{Min: r.min + 1, Max: r.max + 1}
		if r.props.HasWidth {
			col.Width = strconv.FormatFloat(r.props.Width, 'f', -1, 64)
			col.CustomWidth = boolPtr(true)
		}
		if r.xfIndex >= 0 {
			col.Style = intPtr(r.xfIndex)
		}
		if r.props.Hidden {
			col.Hidden = boolPtr(true)
		}
		if r.props.OutlineLevel > 0 {
			col.OutlineLevel = intPtr(r.props.OutlineLevel)
		}
		if r.props.Collapsed {
			col.Collapsed = boolPtr(true)
		}
		out.Col = append(out.Col, col)
	}
	return out
}

// cellDisplayText approximates what Excel renders for c, for autofit
// measurement purposes: numbers and dates as their plain decimal form,
// booleans as TRUE/FALSE, and string/rich-text/URL cells as their text.
// Formula cells measure their cached value since the formula text itself
// is never displayed.
func cellDisplayText(c Cell) string {
	switch c.Kind {
	case CellNumber, CellDate:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	case CellBoolean:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case CellString, CellInlineString, CellURL:
		return c.Text
	case CellRichString:
		var s string
		for _, r := range c.Runs {
			s += r.Text
		}
		return s
	case CellFormula:
		return strconv.FormatFloat(c.FormulaCached, 'g', -1, 64)
	default:
		return ""
	}
}

// autofitColumnWidths scans every cell in access and returns, for each
// 0-indexed column that holds at least one cell, the column width that
// fits its widest cell: the cell's pixel width scaled by its font size
// relative to the 11pt baseline the pixel table was measured against,
// converted to Excel's character-width units.
func autofitColumnWidths(access *cellStore) map[int]float64 {
	widest := make(map[int]int)
	for _, row := range access.rows {
		for col, cell := range row.cells {
			text := cellDisplayText(cell)
			if text == "" {
				continue
			}
			px := PixelWidth(text)
			if cell.Format != nil && cell.Format.Font.Size > 0 {
				px = int(float64(px)*cell.Format.Font.Size/11.0 + 0.5)
			}
			if px > widest[col] {
				widest[col] = px
			}
		}
	}
	widths := make(map[int]float64, len(widest))
	for col, px := range widest {
		widths[col] = PixelWidthToColumnWidth(px + autofitPixelPadding)
	}
	return widths
}

// autofitPixelPadding is the cell-padding pixel allowance rust_xlsxwriter
// adds on top of the raw text width before converting to column units.
const autofitPixelPadding = 5

// applyAutofit widens columns whose computed autofit width exceeds any
// explicit width the user already set, leaving untouched columns that
// have no cells or whose explicit width is already wider.
func applyAutofit(cols *columnStore, widths map[int]float64) {
	for col, width := range widths {
		props, ok := cols.Get(col)
		if ok && props.HasWidth && props.Width >= width {
			continue
		}
		props.HasWidth = true
		props.Width = width
		cols.Set(col, props)
	}
}

// MergeRange is one merged-cell range, stored in A1:B2 form.
type MergeRange struct {
	Ref string
}

// mergeOverlaps reports whether any two ranges in refs overlap, using
// parsed 0-indexed rectangles.
func mergeOverlaps(refs []MergeRange) (string, string, bool) {
	type rect struct{ c1, r1, c2, r2 int }
	rects := make([]rect, len(refs))
	for i, m := range refs {
		c1, r1, c2, r2, err := ParseCellRange(m.Ref)
		if err != nil {
			continue
		}
		rects[i] = rect{c1, r1, c2, r2}
	}
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			if a.c1 <= b.c2 && b.c1 <= a.c2 && a.r1 <= b.r2 && b.r1 <= a.r2 {
				return refs[i].Ref, refs[j].Ref, true
			}
		}
	}
	return "", "", false
}

type xlsxMergeCells struct {
	Count int               `xml:"count,attr"`
	Cells []xlsxMergeCell   `xml:"mergeCell"`
}

type xlsxMergeCell struct {
	Ref string `xml:"ref,attr"`
}

func buildMergeCells(refs []MergeRange) *xlsxMergeCells {
	if len(refs) == 0 {
		return nil
	}
	out := &xlsxMergeCells{Count: len(refs)}
	for _, m := range refs {
		out.Cells = append(out.Cells, xlsxMergeCell{Ref: m.Ref})
	}
	return out
}

// AutoFilterCriteria is one `<filterColumn>` entry: a list filter, a
// blanks filter, or up to two custom relational filters.
type AutoFilterCriteria struct {
	ColOffset     int // offset from the autofilter range's first column
	ListValues    []string
	Blanks        bool
	CustomOp1     string
	CustomVal1    string
	CustomOp2     string
	CustomVal2    string
	CustomAndJoin bool
}

type xlsxAutoFilterFull struct {
	Ref     string                `xml:"ref,attr"`
	Columns []xlsxFilterColumn    `xml:"filterColumn"`
}

type xlsxFilterColumn struct {
	ColID         int                `xml:"colId,attr"`
	Filters       *xlsxFilters       `xml:"filters,omitempty"`
	CustomFilters *xlsxCustomFilters `xml:"customFilters,omitempty"`
}

type xlsxFilters struct {
	Blank   *bool          `xml:"blank,attr,omitempty"`
	Filters []xlsxFilterVal `xml:"filter"`
}

type xlsxFilterVal struct {
	Val string `xml:"val,attr"`
}

type xlsxCustomFilters struct {
	And     *bool               `xml:"and,attr,omitempty"`
	Filters []xlsxCustomFilter  `xml:"customFilter"`
}

type xlsxCustomFilter struct {
	Operator string `xml:"operator,attr,omitempty"`
	Val      string `xml:"val,attr"`
}

func buildAutoFilter(rng string, criteria []AutoFilterCriteria) *xlsxAutoFilterFull {
	if rng == "" {
		return nil
	}
	out := &xlsxAutoFilterFull{Ref: rng}
	for _, c := range criteria {
		col := xlsxFilterColumn{ColID: c.ColOffset}
		switch {
		case c.Blanks:
			col.Filters = &xlsxFilters{Blank: boolPtr(true)}
		case len(c.ListValues) > 0:
			f := &xlsxFilters{}
			for _, v := range c.ListValues {
				f.Filters = append(f.Filters, xlsxFilterVal{Val: v})
			}
			col.Filters = f
		case c.CustomOp1 != "" || c.CustomOp2 != "":
			cf := &xlsxCustomFilters{}
			if c.CustomAndJoin {
				cf.And = boolPtr(true)
			}
			if c.CustomOp1 != "" {
				cf.Filters = append(cf.Filters, xlsxCustomFilter{Operator: c.CustomOp1, Val: c.CustomVal1})
			}
			if c.CustomOp2 != "" {
				cf.Filters = append(cf.Filters, xlsxCustomFilter{Operator: c.CustomOp2, Val: c.CustomVal2})
			}
			col.CustomFilters = cf
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}

// PageSetup holds print-related worksheet settings.
type PageSetup struct {
	Orientation    string // "portrait" or "landscape"
	PaperSize      int
	FitToWidth     int
	FitToHeight    int
	Scale          int
	FirstPageNumber int
	BlackAndWhite  bool

	MarginLeft, MarginRight             float64
	MarginTop, MarginBottom             float64
	MarginHeader, MarginFooter          float64
	PrintGridlines, PrintHeadings       bool
	CenterHorizontally, CenterVertically bool

	OddHeader, OddFooter   string
	EvenHeader, EvenFooter string
	FirstHeader, FirstFooter string
	DifferentOddEven, DifferentFirst bool

	RowBreaks []int // 0-indexed rows after which a manual page break is inserted
	ColBreaks []int
}

type xlsxPrintOptions struct {
	GridLines          *bool `xml:"gridLines,attr,omitempty"`
	Headings           *bool `xml:"headings,attr,omitempty"`
	HorizontalCentered *bool `xml:"horizontalCentered,attr,omitempty"`
	VerticalCentered   *bool `xml:"verticalCentered,attr,omitempty"`
}

type xlsxPageMargins struct {
	Left   float64 `xml:"left,attr"`
	Right  float64 `xml:"right,attr"`
	Top    float64 `xml:"top,attr"`
	Bottom float64 `xml:"bottom,attr"`
	Header float64 `xml:"header,attr"`
	Footer float64 `xml:"footer,attr"`
}

type xlsxPageSetup struct {
	PaperSize          int    `xml:"paperSize,attr,omitempty"`
	Orientation        string `xml:"orientation,attr,omitempty"`
	Scale              int    `xml:"scale,attr,omitempty"`
	FitToWidth         int    `xml:"fitToWidth,attr,omitempty"`
	FitToHeight        int    `xml:"fitToHeight,attr,omitempty"`
	FirstPageNumber    int    `xml:"firstPageNumber,attr,omitempty"`
	BlackAndWhite      *bool  `xml:"blackAndWhite,attr,omitempty"`
}

type xlsxHeaderFooter struct {
	DifferentOddEven *bool  `xml:"differentOddEven,attr,omitempty"`
	DifferentFirst   *bool  `xml:"differentFirst,attr,omitempty"`
	OddHeader        string `xml:"oddHeader,omitempty"`
	OddFooter        string `xml:"oddFooter,omitempty"`
	EvenHeader       string `xml:"evenHeader,omitempty"`
	EvenFooter       string `xml:"evenFooter,omitempty"`
	FirstHeader      string `xml:"firstHeader,omitempty"`
	FirstFooter      string `xml:"firstFooter,omitempty"`
}

func (p *PageSetup) buildPrintOptions() *xlsxPrintOptions {
	if !p.PrintGridlines && !p.PrintHeadings && !p.CenterHorizontally && !p.CenterVertically {
		return nil
	}
	out := &xlsxPrintOptions{}
	if p.PrintGridlines {
		out.GridLines = boolPtr(true)
	}
	if p.PrintHeadings {
		out.Headings = boolPtr(true)
	}
	if p.CenterHorizontally {
		out.HorizontalCentered = boolPtr(true)
	}
	if p.CenterVertically {
		out.VerticalCentered = boolPtr(true)
	}
	return out
}

func (p *PageSetup) buildMargins() *xlsxPageMargins {
	return &xlsxPageMargins{
		Left: p.MarginLeft, Right: p.MarginRight,
		Top: p.MarginTop, Bottom: p.MarginBottom,
		Header: p.MarginHeader, Footer: p.MarginFooter,
	}
}

func (p *PageSetup) buildPageSetup() *xlsxPageSetup {
	out := &xlsxPageSetup{
		PaperSize: p.PaperSize, Orientation: p.Orientation, Scale: p.Scale,
		FitToWidth: p.FitToWidth, FitToHeight: p.FitToHeight,
		FirstPageNumber: p.FirstPageNumber,
	}
	if p.BlackAndWhite {
		out.BlackAndWhite = boolPtr(true)
	}
	return out
}

func (p *PageSetup) buildHeaderFooter() *xlsxHeaderFooter {
	if p.OddHeader == "" && p.OddFooter == "" && p.EvenHeader == "" && p.EvenFooter == "" &&
		p.FirstHeader == "" && p.FirstFooter == "" {
		return nil
	}
	out := &xlsxHeaderFooter{OddHeader: p.OddHeader, OddFooter: p.OddFooter,
		EvenHeader: p.EvenHeader, EvenFooter: p.EvenFooter,
		FirstHeader: p.FirstHeader, FirstFooter: p.FirstFooter}
	if p.DifferentOddEven {
		out.DifferentOddEven = boolPtr(true)
	}
	if p.DifferentFirst {
		out.DifferentFirst = boolPtr(true)
	}
	return out
}

// sortedUniqueBreaks sorts breaks ascending, drops duplicates and zero
// entries, and clamps to MaxPageBreaks, matching the row/col break
// invariant.
func sortedUniqueBreaks(breaks []int) []int {
	seen := make(map[int]bool, len(breaks))
	var out []int
	for _, b := range breaks {
		if b <= 0 || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.Ints(out)
	if len(out) > MaxPageBreaks {
		out = out[:MaxPageBreaks]
	}
	return out
}

type xlsxBreaks struct {
	Count        int          `xml:"count,attr"`
	ManualBreakCount int      `xml:"manualBreakCount,attr"`
	Brk          []xlsxBrk    `xml:"brk"`
}

type xlsxBrk struct {
	ID  int  `xml:"id,attr"`
	Max int  `xml:"max,attr,omitempty"`
	Man bool `xml:"man,attr"`
}

func buildBreaks(breaks []int, max int) *xlsxBreaks {
	breaks = sortedUniqueBreaks(breaks)
	if len(breaks) == 0 {
		return nil
	}
	out := &xlsxBreaks{Count: len(breaks), ManualBreakCount: len(breaks)}
	for _, b := range breaks {
		out.Brk = append(out.Brk, xlsxBrk{ID: b, Max: max, Man: true})
	}
	return out
}

// ProtectionAlgorithm selects how SheetProtection.Password is hashed into
// the sheetProtection element.
type ProtectionAlgorithm int

const (
	// ProtectionLegacy is the 16-bit XOR/rotate hash every Excel version
	// understands (lib.go's HashPassword), stored in the password attribute.
	ProtectionLegacy ProtectionAlgorithm = iota
	// ProtectionSHA512 is the salted, spin-counted SHA-512 hash ISO 29500
	// added (algorithmName/hashValue/saltValue/spinCount attributes).
	ProtectionSHA512
)

// defaultProtectionSpinCount is the iteration count Excel itself writes
// when a workbook is protected through the UI.
const defaultProtectionSpinCount = 100000

// SheetProtection mirrors the password-hash-backed protection a sheet can
// carry; zero value means unprotected.
type SheetProtection struct {
	Enabled   bool
	Password  string // plaintext; hashed at build time per Algorithm
	Algorithm ProtectionAlgorithm
	// SpinCount is the iteration count for ProtectionSHA512; zero means
	// the ISO 29500-recommended default of 100000.
	SpinCount             int
	EditObjects           bool
	EditScenarios         bool
	FormatCells           bool
	FormatColumns         bool
	FormatRows            bool
	InsertColumns         bool
	InsertRows            bool
	InsertHyperlinks      bool
	DeleteColumns         bool
	DeleteRows            bool
	SelectLockedCells     bool
	SelectUnlockedCells   bool
	Sort                  bool
	AutoFilter            bool
	PivotTables           bool
}

type xlsxSheetProtection struct {
	Password            string `xml:"password,attr,omitempty"`
	AlgorithmName       string `xml:"algorithmName,attr,omitempty"`
	HashValue           string `xml:"hashValue,attr,omitempty"`
	SaltValue           string `xml:"saltValue,attr,omitempty"`
	SpinCount           int    `xml:"spinCount,attr,omitempty"`
	Sheet               *bool  `xml:"sheet,attr,omitempty"`
	Objects             *bool  `xml:"objects,attr,omitempty"`
	Scenarios           *bool  `xml:"scenarios,attr,omitempty"`
	FormatCells         *bool  `xml:"formatCells,attr,omitempty"`
	FormatColumns       *bool  `xml:"formatColumns,attr,omitempty"`
	FormatRows          *bool  `xml:"formatRows,attr,omitempty"`
	InsertColumns       *bool  `xml:"insertColumns,attr,omitempty"`
	InsertRows          *bool  `xml:"insertRows,attr,omitempty"`
	InsertHyperlinks    *bool  `xml:"insertHyperlinks,attr,omitempty"`
	DeleteColumns       *bool  `xml:"deleteColumns,attr,omitempty"`
	DeleteRows          *bool  `xml:"deleteRows,attr,omitempty"`
	SelectLockedCells   *bool  `xml:"selectLockedCells,attr,omitempty"`
	SelectUnlockedCells *bool  `xml:"selectUnlockedCells,attr,omitempty"`
	Sort                *bool  `xml:"sort,attr,omitempty"`
	AutoFilter          *bool  `xml:"autoFilter,attr,omitempty"`
	PivotTables         *bool  `xml:"pivotTables,attr,omitempty"`
}

// invert* helpers: the XML attributes are "this action is NOT allowed
// while protected," inverted from the user-facing "this action IS
// allowed" fields above (Excel's own convention).
func invertedBool(allow bool) *bool {
	if allow {
		return nil
	}
	return boolPtr(true)
}

func (p *SheetProtection) buildXML() *xlsxSheetProtection {
	if !p.Enabled {
		return nil
	}
	out := &xlsxSheetProtection{Sheet: boolPtr(true)}
	if p.Password != "" {
		switch p.Algorithm {
		case ProtectionSHA512:
			spin := p.SpinCount
			if spin <= 0 {
				spin = defaultProtectionSpinCount
			}
			salt, hash := hashPasswordSHA512(p.Password, spin)
			out.AlgorithmName = "SHA-512"
			out.SaltValue = salt
			out.HashValue = hash
			out.SpinCount = spin
		default:
			out.Password = fmt.Sprintf("%04X", HashPassword(p.Password))
		}
	}
	out.Objects = invertedBool(p.EditObjects)
	out.Scenarios = invertedBool(p.EditScenarios)
	out.FormatCells = invertedBool(p.FormatCells)
	out.FormatColumns = invertedBool(p.FormatColumns)
	out.FormatRows = invertedBool(p.FormatRows)
	out.InsertColumns = invertedBool(p.InsertColumns)
	out.InsertRows = invertedBool(p.InsertRows)
	out.InsertHyperlinks = invertedBool(p.InsertHyperlinks)
	out.DeleteColumns = invertedBool(p.DeleteColumns)
	out.DeleteRows = invertedBool(p.DeleteRows)
	out.SelectLockedCells = invertedBool(p.SelectLockedCells)
	out.SelectUnlockedCells = invertedBool(p.SelectUnlockedCells)
	out.Sort = invertedBool(p.Sort)
	out.AutoFilter = invertedBool(p.AutoFilter)
	out.PivotTables = invertedBool(p.PivotTables)
	return out
}

// hashPasswordSHA512 derives the ISO 29500 sheetProtection saltValue and
// hashValue for the given password, returning both base64-encoded. The
// password is encoded UTF-16LE before hashing, per ISO 29500.
func hashPasswordSHA512(password string, spinCount int) (salt, hash string) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		panic(err) // crypto/rand failing is not recoverable
	}
	pw := utf16.Encode([]rune(password))
	pwBytes := make([]byte, len(pw)*2)
	for i, u := range pw {
		pwBytes[2*i] = byte(u)
		pwBytes[2*i+1] = byte(u >> 8)
	}
	derived := pbkdf2.Key(pwBytes, saltBytes, spinCount, sha512.Size, sha512.New)
	return base64.StdEncoding.EncodeToString(saltBytes), base64.StdEncoding.EncodeToString(derived)
}

// PaneFreeze describes a frozen/split pane, set via SheetView.
type PaneFreeze struct {
	Enabled     bool
	Split       bool // true for a movable split, false for a frozen pane
	XSplit      float64
	YSplit      float64
	TopLeftCell string
	ActivePane  string // "topLeft", "topRight", "bottomLeft", "bottomRight"
}

// SheetView holds the `<sheetViews>` worksheet-display settings.
type SheetView struct {
	ShowGridLines   bool
	ShowRowColHeaders bool
	ShowZeros       bool
	RightToLeft     bool
	TabSelected     bool
	ZoomScale       int
	View            string // "normal", "pageBreakPreview", "pageLayout"
	Freeze          PaneFreeze
	SelectionActiveCell string
	SelectionSqref      string
}

type xlsxSheetViews struct {
	SheetView []xlsxSheetView `xml:"sheetView"`
}

type xlsxSheetView struct {
	ShowGridLines    *bool         `xml:"showGridLines,attr,omitempty"`
	ShowRowColHeaders *bool        `xml:"showRowColHeaders,attr,omitempty"`
	ShowZeros        *bool         `xml:"showZeros,attr,omitempty"`
	RightToLeft      *bool         `xml:"rightToLeft,attr,omitempty"`
	TabSelected      *bool         `xml:"tabSelected,attr,omitempty"`
	View             string        `xml:"view,attr,omitempty"`
	ZoomScale        int           `xml:"zoomScale,attr,omitempty"`
	WorkbookViewID   int           `xml:"workbookViewId,attr"`
	Pane             *xlsxPane     `xml:"pane,omitempty"`
	Selection        []xlsxSelection `xml:"selection"`
}

type xlsxPane struct {
	XSplit      float64 `xml:"xSplit,attr,omitempty"`
	YSplit      float64 `xml:"ySplit,attr,omitempty"`
	TopLeftCell string  `xml:"topLeftCell,attr,omitempty"`
	ActivePane  string  `xml:"activePane,attr,omitempty"`
	State       string  `xml:"state,attr"`
}

type xlsxSelection struct {
	Pane       string `xml:"pane,attr,omitempty"`
	ActiveCell string `xml:"activeCell,attr,omitempty"`
	Sqref      string `xml:"sqref,attr,omitempty"`
}

func (v *SheetView) buildXML() *xlsxSheetViews {
	sv := xlsxSheetView{View: v.View, ZoomScale: v.ZoomScale}
	if !v.ShowGridLines {
		sv.ShowGridLines = boolPtr(false)
	}
	if !v.ShowRowColHeaders {
		sv.ShowRowColHeaders = boolPtr(false)
	}
	if !v.ShowZeros {
		sv.ShowZeros = boolPtr(false)
	}
	if v.RightToLeft {
		sv.RightToLeft = boolPtr(true)
	}
	if v.TabSelected {
		sv.TabSelected = boolPtr(true)
	}
	if v.Freeze.Enabled {
		state := "frozen"
		if v.Freeze.Split {
			state = "split"
		}
		sv.Pane = &xlsxPane{
			XSplit: v.Freeze.XSplit, YSplit: v.Freeze.YSplit,
			TopLeftCell: v.Freeze.TopLeftCell, ActivePane: v.Freeze.ActivePane, State: state,
		}
	}
	if v.SelectionSqref != "" {
		sv.Selection = append(sv.Selection, xlsxSelection{ActiveCell: v.SelectionActiveCell, Sqref: v.SelectionSqref})
	}
	return &xlsxSheetViews{SheetView: []xlsxSheetView{sv}}
}

// SheetProperties carries the sheetPr-level worksheet settings: tab color,
// outline-summary direction, VBA code-name, fit-to-page flag, and
// autofilter "filter mode" marker.
type SheetProperties struct {
	TabColor          Color
	OutlineSummaryBelow bool
	OutlineSummaryRight bool
	CodeName          string
	FitToPage         bool
	FilterMode        bool
}

type xlsxSheetPr struct {
	CodeName    string             `xml:"codeName,attr,omitempty"`
	FilterMode  *bool              `xml:"filterMode,attr,omitempty"`
	TabColor    *xlsxColor         `xml:"tabColor,omitempty"`
	OutlinePr   *xlsxOutlinePr     `xml:"outlinePr,omitempty"`
	PageSetUpPr *xlsxPageSetUpPr   `xml:"pageSetUpPr,omitempty"`
}

type xlsxOutlinePr struct {
	SummaryBelow *bool `xml:"summaryBelow,attr,omitempty"`
	SummaryRight *bool `xml:"summaryRight,attr,omitempty"`
}

type xlsxPageSetUpPr struct {
	FitToPage *bool `xml:"fitToPage,attr,omitempty"`
}

func (p *SheetProperties) buildXML() *xlsxSheetPr {
	if p.CodeName == "" && !p.FilterMode && p.TabColor == (Color{}) && !p.FitToPage &&
		!p.OutlineSummaryBelow && !p.OutlineSummaryRight {
		return nil
	}
	out := &xlsxSheetPr{CodeName: p.CodeName}
	if p.FilterMode {
		out.FilterMode = boolPtr(true)
	}
	if p.TabColor.IsSet() {
		out.TabColor = colorToXML(p.TabColor)
	}
	if !p.OutlineSummaryBelow || !p.OutlineSummaryRight {
		o := &xlsxOutlinePr{}
		if !p.OutlineSummaryBelow {
			o.SummaryBelow = boolPtr(false)
		}
		if !p.OutlineSummaryRight {
			o.SummaryRight = boolPtr(false)
		}
		out.OutlinePr = o
	}
	if p.FitToPage {
		out.PageSetUpPr = &xlsxPageSetUpPr{FitToPage: boolPtr(true)}
	}
	return out
}

type xlsxSheetFormatPr struct {
	DefaultRowHeight float64 `xml:"defaultRowHeight,attr"`
	DefaultColWidth  float64 `xml:"defaultColWidth,attr,omitempty"`
	OutlineLevelRow  int     `xml:"outlineLevelRow,attr,omitempty"`
	OutlineLevelCol  int     `xml:"outlineLevelCol,attr,omitempty"`
}
