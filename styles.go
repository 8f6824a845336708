// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/mohae/deepcopy"
)

// Underline is the character-level underline style a Font can carry.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineSingleAccounting
	UnderlineDoubleAccounting
)

func (u Underline) xmlValue() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineSingleAccounting:
		return "singleAccounting"
	case UnderlineDoubleAccounting:
		return "doubleAccounting"
	default:
		return ""
	}
}

// Font is the font portion of a Format.
type Font struct {
	Name      string
	Size      float64
	Color     Color
	Bold      bool
	Italic    bool
	Strikeout bool
	Underline Underline
	Script    FontScript
	Family    int
	Charset   int
	Scheme    string
}

// FontScript selects superscript/subscript vertical alignment.
type FontScript int

const (
	FontScriptNone FontScript = iota
	FontScriptSuperscript
	FontScriptSubscript
)

func (s FontScript) xmlValue() string {
	switch s {
	case FontScriptSuperscript:
		return "superscript"
	case FontScriptSubscript:
		return "subscript"
	default:
		return ""
	}
}

// FillPattern selects a cell fill's pattern.
type FillPattern int

const (
	FillPatternNone FillPattern = iota
	FillPatternSolid
	FillPatternMediumGray
	FillPatternDarkGray
	FillPatternLightGray
	FillPatternDarkHorizontal
	FillPatternDarkVertical
	FillPatternDarkDown
	FillPatternDarkUp
	FillPatternDarkGrid
	FillPatternDarkTrellis
	FillPatternLightHorizontal
	FillPatternLightVertical
	FillPatternLightDown
	FillPatternLightUp
	FillPatternLightGrid
	FillPatternLightTrellis
	FillPatternGray125
	FillPatternGray0625
)

var fillPatternNames = map[FillPattern]string{
	FillPatternNone: "none", FillPatternSolid: "solid",
	FillPatternMediumGray: "mediumGray", FillPatternDarkGray: "darkGray",
	FillPatternLightGray: "lightGray", FillPatternDarkHorizontal: "darkHorizontal",
	FillPatternDarkVertical: "darkVertical", FillPatternDarkDown: "darkDown",
	FillPatternDarkUp: "darkUp", FillPatternDarkGrid: "darkGrid",
	FillPatternDarkTrellis: "darkTrellis", FillPatternLightHorizontal: "lightHorizontal",
	FillPatternLightVertical: "lightVertical", FillPatternLightDown: "lightDown",
	FillPatternLightUp: "lightUp", FillPatternLightGrid: "lightGrid",
	FillPatternLightTrellis: "lightTrellis", FillPatternGray125: "gray125",
	FillPatternGray0625: "gray0625",
}

// Fill is the fill portion of a Format.
type Fill struct {
	Pattern    FillPattern
	Foreground Color
	Background Color
}

// BorderStyle selects a border side's line style.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

var borderStyleNames = map[BorderStyle]string{
	BorderNone: "", BorderThin: "thin", BorderMedium: "medium",
	BorderDashed: "dashed", BorderDotted: "dotted", BorderThick: "thick",
	BorderDouble: "double", BorderHair: "hair", BorderMediumDashed: "mediumDashed",
	BorderDashDot: "dashDot", BorderMediumDashDot: "mediumDashDot",
	BorderDashDotDot: "dashDotDot", BorderMediumDashDotDot: "mediumDashDotDot",
	BorderSlantDashDot: "slantDashDot",
}

// BorderSide is one edge (or diagonal) of a cell border.
type BorderSide struct {
	Style BorderStyle
	Color Color
}

// Border is the four-edges-plus-diagonals portion of a Format.
type Border struct {
	Left, Right, Top, Bottom BorderSide
	DiagonalUp, DiagonalDown bool
	Diagonal                 BorderSide
}

// Alignment is the text-alignment portion of a Format.
type Alignment struct {
	Horizontal      HorizontalAlign
	Vertical        VerticalAlign
	Rotation        int
	Indent          int
	ShrinkToFit     bool
	WrapText        bool
	ReadingOrder    int
	JustifyLastLine bool
}

type HorizontalAlign int

const (
	HorizontalAlignNone HorizontalAlign = iota
	HorizontalAlignLeft
	HorizontalAlignCenter
	HorizontalAlignRight
	HorizontalAlignFill
	HorizontalAlignJustify
	HorizontalAlignCenterAcross
	HorizontalAlignDistributed
)

var horizontalAlignNames = map[HorizontalAlign]string{
	HorizontalAlignLeft: "left", HorizontalAlignCenter: "center",
	HorizontalAlignRight: "right", HorizontalAlignFill: "fill",
	HorizontalAlignJustify: "justify", HorizontalAlignCenterAcross: "centerContinuous",
	HorizontalAlignDistributed: "distributed",
}

type VerticalAlign int

const (
	VerticalAlignNone VerticalAlign = iota
	VerticalAlignTop
	VerticalAlignCenter
	VerticalAlignBottom
	VerticalAlignJustify
	VerticalAlignDistributed
)

var verticalAlignNames = map[VerticalAlign]string{
	VerticalAlignTop: "top", VerticalAlignCenter: "center",
	VerticalAlignBottom: "bottom", VerticalAlignJustify: "justify",
	VerticalAlignDistributed: "distributed",
}

// Protection is the cell-locking portion of a Format.
type Protection struct {
	Locked bool
	Hidden bool
}

// NumberFormat is either a built-in id (recognized by code string match
// against builtinNumFmts) or a custom format code string.
type NumberFormat struct {
	Code string
}

// Format is the value object every cell's presentation is built from: font,
// fill, border, alignment, protection, number format, and the quote-prefix
// / hyperlink-style flags. Two Formats with identical property sets
// canonicalize to the same registry entry.
type Format struct {
	Font         Font
	Fill         Fill
	Border       Border
	Alignment    Alignment
	Protection   Protection
	NumberFormat NumberFormat
	QuotePrefix  bool
	Hyperlink    bool
}

// NewFormat returns the zero-value Format: Calibri 11, no fill, no border,
// default alignment, unlocked, "General" number format.
func NewFormat() *Format {
	return &Format{Font: Font{Name: "Calibri", Size: 11, Family: 2, Scheme: "minor"}}
}

// Clone returns a deep, independent copy of f, used when a caller wants to
// derive a new Format from an existing one without mutating the original
// (e.g. cloning a base Format before tweaking one property for a single
// conditional-format rule).
func (f *Format) Clone() *Format {
	return deepcopy.Copy(f).(*Format)
}

// key builds the structural dedup key described in the registry contract:
// the concatenation of independently-deduped font/fill/border keys plus
// the alignment/protection/number-format keys.
func (f *Format) key() string {
	return fontKey(f.Font) + "|" + fillKey(f.Fill) + "|" + borderKey(f.Border) + "|" +
		alignmentKey(f.Alignment) + "|" + protectionKey(f.Protection) + "|" +
		f.NumberFormat.Code + "|" + strconv.FormatBool(f.QuotePrefix)
}

func fontKey(f Font) string {
	return fmt.Sprintf("%s,%g,%s,%v,%v,%v,%d,%d,%d,%d,%s",
		f.Name, f.Size, colorKeyString(f.Color), f.Bold, f.Italic, f.Strikeout,
		f.Underline, f.Script, f.Family, f.Charset, f.Scheme)
}

func fillKey(fl Fill) string {
	return fmt.Sprintf("%d,%s,%s", fl.Pattern, colorKeyString(fl.Foreground), colorKeyString(fl.Background))
}

func borderSideKey(s BorderSide) string {
	return fmt.Sprintf("%d,%s", s.Style, colorKeyString(s.Color))
}

func borderKey(b Border) string {
	return strings.Join([]string{
		borderSideKey(b.Left), borderSideKey(b.Right), borderSideKey(b.Top),
		borderSideKey(b.Bottom), borderSideKey(b.Diagonal),
		strconv.FormatBool(b.DiagonalUp), strconv.FormatBool(b.DiagonalDown),
	}, ",")
}

func alignmentKey(a Alignment) string {
	return fmt.Sprintf("%d,%d,%d,%d,%v,%v,%d,%v", a.Horizontal, a.Vertical, a.Rotation,
		a.Indent, a.ShrinkToFit, a.WrapText, a.ReadingOrder, a.JustifyLastLine)
}

func protectionKey(p Protection) string {
	return fmt.Sprintf("%v,%v", p.Locked, p.Hidden)
}

func colorKeyString(c Color) string {
	if !c.IsSet() {
		return "d"
	}
	theme, tint, ok := c.ThemeAttributes()
	if ok {
		return fmt.Sprintf("t%d:%s", theme, tint)
	}
	return "r" + c.ARGBHex()
}

// builtinNumFmts is the fixed table of built-in number format codes and
// their ids (0-49 inclusive), matched by exact string equality.
var builtinNumFmts = map[string]int{
	"General": 0, "0": 1, "0.00": 2, "#,##0": 3, "#,##0.00": 4,
	"0%": 9, "0.00%": 10, "0.00E+00": 11, "# ?/?": 12, "# ??/??": 13,
	"mm-dd-yy": 14, "d-mmm-yy": 15, "d-mmm": 16, "mmm-yy": 17,
	"h:mm AM/PM": 18, "h:mm:ss AM/PM": 19, "h:mm": 20, "h:mm:ss": 21,
	"m/d/yy h:mm": 22, "#,##0 ;(#,##0)": 37, "#,##0 ;[Red](#,##0)": 38,
	"#,##0.00;(#,##0.00)": 39, "#,##0.00;[Red](#,##0.00)": 40,
	"mm:ss": 45, "[h]:mm:ss": 46, "mmss.0": 47, "##0.0E+0": 48, "@": 49,
}

// styleRegistry canonicalizes Format values into the deduplicated tables
// SpreadsheetML's styles.xml is made of.
type styleRegistry struct {
	fonts      []Font
	fontIndex  map[string]int
	fills      []Fill
	fillIndex  map[string]int
	borders    []Border
	borderIndex map[string]int
	numFmts    []xlsxNumFmt
	numFmtIndex map[string]int
	nextNumFmt int

	xfs      []resolvedXf
	xfIndex  map[string]int
	dxfs     []*xlsxDxf
	dxfIndex map[string]int
}

// resolvedXf is an xf/dxf record after every sub-table lookup has happened:
// indices instead of Format values.
type resolvedXf struct {
	numFmtID    int
	hasNumFmt   bool
	fontID      int
	fillID      int
	borderID    int
	alignment   *Alignment
	protection  *Protection
	quotePrefix bool
}

func newStyleRegistry() *styleRegistry {
	r := &styleRegistry{
		fontIndex:   make(map[string]int),
		fillIndex:   make(map[string]int),
		borderIndex: make(map[string]int),
		numFmtIndex: make(map[string]int),
		xfIndex:     make(map[string]int),
		dxfIndex:    make(map[string]int),
		nextNumFmt:  firstCustomNumFmtID,
	}
	// Index 0 ("Normal" default xf), fill 0 ("none"), and fill 1
	// ("gray125") are reserved positions every styles.xml carries.
	r.fonts = append(r.fonts, NewFormat().Font)
	r.fontIndex[fontKey(r.fonts[0])] = 0
	r.fills = append(r.fills, Fill{Pattern: FillPatternNone})
	r.fillIndex[fillKey(r.fills[0])] = 0
	r.fills = append(r.fills, Fill{Pattern: FillPatternGray125})
	r.fillIndex[fillKey(r.fills[1])] = 1
	r.borders = append(r.borders, Border{})
	r.borderIndex[borderKey(r.borders[0])] = 0
	r.xfs = append(r.xfs, resolvedXf{})
	r.xfIndex[r.xfs[0].dedupKey()] = 0
	return r
}

func (x resolvedXf) dedupKey() string {
	a := "-"
	if x.alignment != nil {
		a = alignmentKey(*x.alignment)
	}
	p := "-"
	if x.protection != nil {
		p = protectionKey(*x.protection)
	}
	return fmt.Sprintf("%d,%v,%d,%d,%d,%s,%s,%v", x.numFmtID, x.hasNumFmt, x.fontID, x.fillID, x.borderID, a, p, x.quotePrefix)
}

func (r *styleRegistry) internFont(f Font) int {
	k := fontKey(f)
	if i, ok := r.fontIndex[k]; ok {
		return i
	}
	i := len(r.fonts)
	r.fonts = append(r.fonts, f)
	r.fontIndex[k] = i
	return i
}

func (r *styleRegistry) internFill(fl Fill) int {
	// A background color with no explicit pattern is promoted to solid,
	// per the registry contract.
	if fl.Pattern == FillPatternNone && fl.Background.IsSet() && !fl.Foreground.IsSet() {
		fl.Foreground, fl.Background = fl.Background, Color{}
		fl.Pattern = FillPatternSolid
	}
	k := fillKey(fl)
	if i, ok := r.fillIndex[k]; ok {
		return i
	}
	i := len(r.fills)
	r.fills = append(r.fills, fl)
	r.fillIndex[k] = i
	return i
}

func (r *styleRegistry) internBorder(b Border) int {
	k := borderKey(b)
	if i, ok := r.borderIndex[k]; ok {
		return i
	}
	i := len(r.borders)
	r.borders = append(r.borders, b)
	r.borderIndex[k] = i
	return i
}

// internNumFmt returns the numFmtId for code: a built-in id if code matches
// the fixed table exactly, otherwise a custom id starting at 164. code is
// rejected by ValidateNumberFormatSyntax before a new custom id is minted
// for it.
func (r *styleRegistry) internNumFmt(code string) (id int, custom bool, err error) {
	if code == "" {
		return 0, false, nil
	}
	if id, ok := builtinNumFmts[code]; ok {
		return id, false, nil
	}
	if id, ok := r.numFmtIndex[code]; ok {
		return id, true, nil
	}
	if err := ValidateNumberFormatSyntax(code); err != nil {
		return 0, false, err
	}
	id = r.nextNumFmt
	r.nextNumFmt++
	r.numFmtIndex[code] = id
	r.numFmts = append(r.numFmts, xlsxNumFmt{NumFmtID: id, FormatCode: code})
	return id, true, nil
}

// AddFormat registers f as a cell xf and returns its stable index for the
// cell's `s` attribute.
func (r *styleRegistry) AddFormat(f *Format) (int, error) {
	x, err := r.resolve(f, true)
	if err != nil {
		return 0, err
	}
	k := x.dedupKey()
	if i, ok := r.xfIndex[k]; ok {
		return i, nil
	}
	i := len(r.xfs)
	r.xfs = append(r.xfs, x)
	r.xfIndex[k] = i
	return i, nil
}

// AddDxf registers f as a differential format for conditional formatting
// and returns its dxf index. Per the registry contract dxf records embed
// the number-format string directly rather than indirecting through
// numFmts, and never carry alignment/protection unless the caller set one
// (detected here as "not the zero value", the same convention xf resolution
// uses). Unlike fonts/fills/borders, dxf sub-elements are not deduplicated
// against the cellXfs sub-tables: each is a self-contained differential
// record, matching how conditional formats are consumed independently of
// the cell's own style.
func (r *styleRegistry) AddDxf(f *Format) (int, error) {
	if f.NumberFormat.Code != "" {
		if err := ValidateNumberFormatSyntax(f.NumberFormat.Code); err != nil {
			return 0, err
		}
	}
	entry, key := buildDxfEntry(f)
	if i, ok := r.dxfIndex[key]; ok {
		return i, nil
	}
	i := len(r.dxfs)
	r.dxfs = append(r.dxfs, entry)
	r.dxfIndex[key] = i
	return i, nil
}

func buildDxfEntry(f *Format) (*xlsxDxf, string) {
	d := &xlsxDxf{}
	var key strings.Builder
	if f.Font != (Font{}) {
		d.Font = fontToXML(f.Font)
		key.WriteString("f:" + fontKey(f.Font))
	}
	if f.NumberFormat.Code != "" {
		d.NumFmt = &xlsxNumFmt{FormatCode: f.NumberFormat.Code}
		key.WriteString("|n:" + f.NumberFormat.Code)
	}
	if f.Fill != (Fill{}) {
		d.Fill = fillToXML(f.Fill)
		key.WriteString("|l:" + fillKey(f.Fill))
	}
	if f.Border != (Border{}) {
		d.Border = borderToXML(f.Border)
		key.WriteString("|b:" + borderKey(f.Border))
	}
	if f.Alignment != (Alignment{}) {
		d.Alignment = alignmentToXML(f.Alignment)
		key.WriteString("|a:" + alignmentKey(f.Alignment))
	}
	if f.Protection != (Protection{}) {
		d.Protection = protectionToXML(f.Protection)
		key.WriteString("|p:" + protectionKey(f.Protection))
	}
	return d, key.String()
}

func (r *styleRegistry) resolve(f *Format, indirectNumFmt bool) (resolvedXf, error) {
	x := resolvedXf{
		fontID:      r.internFont(f.Font),
		fillID:      r.internFill(f.Fill),
		borderID:    r.internBorder(f.Border),
		quotePrefix: f.QuotePrefix,
	}
	if f.Alignment != (Alignment{}) {
		a := f.Alignment
		x.alignment = &a
	}
	if f.Protection != (Protection{}) {
		p := f.Protection
		x.protection = &p
	}
	if indirectNumFmt && f.NumberFormat.Code != "" {
		id, _, err := r.internNumFmt(f.NumberFormat.Code)
		if err != nil {
			return resolvedXf{}, err
		}
		x.numFmtID = id
		x.hasNumFmt = true
	}
	return x, nil
}

// buildXML renders the registry into xl/styles.xml.
func (r *styleRegistry) buildXML() *xlsxStyleSheet {
	ss := &xlsxStyleSheet{}
	if len(r.numFmts) > 0 {
		nf := make([]*xlsxNumFmt, len(r.numFmts))
		for i := range r.numFmts {
			nf[i] = &r.numFmts[i]
		}
		ss.NumFmts = &xlsxNumFmts{Count: len(nf), NumFmt: nf}
	}

	fonts := make([]*xlsxFont, len(r.fonts))
	for i, f := range r.fonts {
		fonts[i] = fontToXML(f)
	}
	ss.Fonts = &xlsxFonts{Count: len(fonts), Font: fonts}

	fills := make([]*xlsxFill, len(r.fills))
	for i, fl := range r.fills {
		fills[i] = fillToXML(fl)
	}
	ss.Fills = &xlsxFills{Count: len(fills), Fill: fills}

	borders := make([]*xlsxBorder, len(r.borders))
	for i, b := range r.borders {
		borders[i] = borderToXML(b)
	}
	ss.Borders = &xlsxBorders{Count: len(borders), Border: borders}

	ss.CellStyleXfs = &xlsxCellStyleXfs{Count: 1, Xf: []xlsxXf{{}}}
	ss.CellStyles = &xlsxCellStyles{Count: 1, CellStyle: []xlsxCellStyleEl{{Name: "Normal", XfID: 0, BuiltinID: 0}}}
	ss.TableStyles = &xlsxTableStyles{DefaultTableStyle: "TableStyleMedium9", DefaultPivotStyle: "PivotStyleLight16"}

	xfs := make([]xlsxXf, len(r.xfs))
	for i, x := range r.xfs {
		xfs[i] = x.toXML(true)
	}
	ss.CellXfs = &xlsxCellXfs{Count: len(xfs), Xf: xfs}

	if len(r.dxfs) > 0 {
		ss.Dxfs = &xlsxDxfs{Count: len(r.dxfs), Dxfs: r.dxfs}
	}
	return ss
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func (x resolvedXf) toXML(applyFlags bool) xlsxXf {
	xf := xlsxXf{FontID: intPtr(x.fontID), FillID: intPtr(x.fillID), BorderID: intPtr(x.borderID)}
	if x.hasNumFmt {
		xf.NumFmtID = intPtr(x.numFmtID)
	} else {
		xf.NumFmtID = intPtr(0)
	}
	if x.alignment != nil {
		xf.Alignment = alignmentToXML(*x.alignment)
	}
	if x.protection != nil {
		xf.Protection = protectionToXML(*x.protection)
	}
	if x.quotePrefix {
		xf.QuotePrefix = boolPtr(true)
	}
	if applyFlags {
		if x.hasNumFmt {
			xf.ApplyNumberFormat = boolPtr(true)
		}
		xf.ApplyFont = boolPtr(x.fontID != 0)
		xf.ApplyFill = boolPtr(x.fillID != 0)
		xf.ApplyBorder = boolPtr(x.borderID != 0)
		if x.alignment != nil {
			xf.ApplyAlignment = boolPtr(true)
		}
		if x.protection != nil {
			xf.ApplyProtection = boolPtr(true)
		}
	}
	return xf
}

func fontToXML(f Font) *xlsxFont {
	xf := &xlsxFont{Sz: &attrValFloat{Val: f.Size}, Name: &attrValString{Val: f.Name}}
	if f.Bold {
		xf.B = &attrValBool{Val: true}
	}
	if f.Italic {
		xf.I = &attrValBool{Val: true}
	}
	if f.Strikeout {
		xf.Strike = &attrValBool{Val: true}
	}
	if f.Underline != UnderlineNone {
		xf.U = &attrValString{Val: f.Underline.xmlValue()}
	}
	if f.Color.IsSet() {
		xf.Color = colorToXML(f.Color)
	}
	if f.Family != 0 {
		xf.Family = &attrValInt{Val: f.Family}
	}
	if f.Charset != 0 {
		xf.Charset = &attrValInt{Val: f.Charset}
	}
	if f.Scheme != "" {
		xf.Scheme = &attrValString{Val: f.Scheme}
	}
	return xf
}

func fillToXML(fl Fill) *xlsxFill {
	pf := &xlsxPatternFill{PatternType: fillPatternNames[fl.Pattern]}
	if fl.Foreground.IsSet() {
		pf.FgColor = colorToXML(fl.Foreground)
	}
	if fl.Background.IsSet() {
		pf.BgColor = colorToXML(fl.Background)
	}
	return &xlsxFill{PatternFill: pf}
}

func borderToXML(b Border) *xlsxBorder {
	return &xlsxBorder{
		DiagonalUp:   b.DiagonalUp,
		DiagonalDown: b.DiagonalDown,
		Left:         borderSideToXML(b.Left),
		Right:        borderSideToXML(b.Right),
		Top:          borderSideToXML(b.Top),
		Bottom:       borderSideToXML(b.Bottom),
		Diagonal:     borderSideToXML(b.Diagonal),
	}
}

// borderSideToXML emits an empty `<left/>`-style element (no attributes)
// for an unset side, and defaults an unset color on a styled side to
// "automatic" (Excel's own default when no color is specified).
func borderSideToXML(s BorderSide) xlsxLine {
	if s.Style == BorderNone {
		return xlsxLine{}
	}
	line := xlsxLine{Style: borderStyleNames[s.Style]}
	if s.Color.IsSet() {
		line.Color = colorToXML(s.Color)
	} else {
		line.Color = &xlsxColor{Auto: true}
	}
	return line
}

func alignmentToXML(a Alignment) *xlsxAlignment {
	return &xlsxAlignment{
		Horizontal:      horizontalAlignNames[a.Horizontal],
		Vertical:        verticalAlignNames[a.Vertical],
		TextRotation:    a.Rotation,
		Indent:          a.Indent,
		ShrinkToFit:     a.ShrinkToFit,
		WrapText:        a.WrapText,
		ReadingOrder:    uint64(a.ReadingOrder),
		JustifyLastLine: a.JustifyLastLine,
	}
}

func protectionToXML(p Protection) *xlsxProtection {
	return &xlsxProtection{Locked: boolPtr(p.Locked), Hidden: boolPtr(p.Hidden)}
}

// colorToXML projects a Color into its styles.xml attribute form: an RGB
// (ARGB hex) color for RGB/named colors, or a theme+tint pair for theme
// colors. Default/Automatic colors are omitted by callers before reaching
// here (IsSet() is checked first).
func colorToXML(c Color) *xlsxColor {
	if theme, tint, ok := c.ThemeAttributes(); ok {
		xc := &xlsxColor{Theme: intPtr(int(theme))}
		if tint != "" {
			if t, err := strconv.ParseFloat(tint, 64); err == nil {
				xc.Tint = t
			}
		}
		return xc
	}
	return &xlsxColor{RGB: c.ARGBHex()}
}

// --- shared attribute-wrapper types used across styles.go, sharedstrings.go ---

type attrValBool struct {
	Val bool `xml:"val,attr"`
}

type attrValInt struct {
	Val int `xml:"val,attr"`
}

type attrValFloat struct {
	Val float64 `xml:"val,attr"`
}

type attrValString struct {
	Val string `xml:"val,attr"`
}

// --- xl/styles.xml part structs ---

type xlsxStyleSheet struct {
	XMLName      xml.Name          `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main styleSheet"`
	NumFmts      *xlsxNumFmts      `xml:"numFmts"`
	Fonts        *xlsxFonts        `xml:"fonts"`
	Fills        *xlsxFills        `xml:"fills"`
	Borders      *xlsxBorders      `xml:"borders"`
	CellStyleXfs *xlsxCellStyleXfs `xml:"cellStyleXfs"`
	CellXfs      *xlsxCellXfs      `xml:"cellXfs"`
	CellStyles   *xlsxCellStyles   `xml:"cellStyles"`
	Dxfs         *xlsxDxfs         `xml:"dxfs"`
	TableStyles  *xlsxTableStyles  `xml:"tableStyles"`
}

// xlsxCellStyles carries the named-style table; this package always emits
// exactly the one Excel requires by default, "Normal".
type xlsxCellStyles struct {
	Count     int               `xml:"count,attr"`
	CellStyle []xlsxCellStyleEl `xml:"cellStyle"`
}

type xlsxCellStyleEl struct {
	Name      string `xml:"name,attr"`
	XfID      int    `xml:"xfId,attr"`
	BuiltinID int    `xml:"builtinId,attr"`
}

// xlsxTableStyles carries the workbook-wide default table/pivot-table
// style names new tables without an explicit style reference inherit.
type xlsxTableStyles struct {
	Count             int    `xml:"count,attr"`
	DefaultTableStyle string `xml:"defaultTableStyle,attr"`
	DefaultPivotStyle string `xml:"defaultPivotStyle,attr"`
}

type xlsxNumFmts struct {
	Count  int           `xml:"count,attr"`
	NumFmt []*xlsxNumFmt `xml:"numFmt"`
}

type xlsxNumFmt struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xlsxFonts struct {
	Count int         `xml:"count,attr"`
	Font  []*xlsxFont `xml:"font"`
}

type xlsxFont struct {
	B       *attrValBool   `xml:"b"`
	I       *attrValBool   `xml:"i"`
	Strike  *attrValBool   `xml:"strike"`
	U       *attrValString `xml:"u"`
	Sz      *attrValFloat  `xml:"sz"`
	Color   *xlsxColor     `xml:"color"`
	Name    *attrValString `xml:"name"`
	Family  *attrValInt    `xml:"family"`
	Charset *attrValInt    `xml:"charset"`
	Scheme  *attrValString `xml:"scheme"`
}

type xlsxColor struct {
	Auto    bool    `xml:"auto,attr,omitempty"`
	RGB     string  `xml:"rgb,attr,omitempty"`
	Indexed int     `xml:"indexed,attr,omitempty"`
	Theme   *int    `xml:"theme,attr"`
	Tint    float64 `xml:"tint,attr,omitempty"`
}

type xlsxFills struct {
	Count int         `xml:"count,attr"`
	Fill  []*xlsxFill `xml:"fill"`
}

type xlsxFill struct {
	PatternFill *xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr,omitempty"`
	FgColor     *xlsxColor `xml:"fgColor"`
	BgColor     *xlsxColor `xml:"bgColor"`
}

type xlsxBorders struct {
	Count  int           `xml:"count,attr"`
	Border []*xlsxBorder `xml:"border"`
}

type xlsxBorder struct {
	DiagonalDown bool     `xml:"diagonalDown,attr,omitempty"`
	DiagonalUp   bool     `xml:"diagonalUp,attr,omitempty"`
	Left         xlsxLine `xml:"left"`
	Right        xlsxLine `xml:"right"`
	Top          xlsxLine `xml:"top"`
	Bottom       xlsxLine `xml:"bottom"`
	Diagonal     xlsxLine `xml:"diagonal"`
}

type xlsxLine struct {
	Style string     `xml:"style,attr,omitempty"`
	Color *xlsxColor `xml:"color"`
}

type xlsxCellStyleXfs struct {
	Count int      `xml:"count,attr"`
	Xf    []xlsxXf `xml:"xf"`
}

type xlsxCellXfs struct {
	Count int      `xml:"count,attr"`
	Xf    []xlsxXf `xml:"xf"`
}

type xlsxXf struct {
	NumFmtID          *int            `xml:"numFmtId,attr"`
	FontID            *int            `xml:"fontId,attr"`
	FillID            *int            `xml:"fillId,attr"`
	BorderID          *int            `xml:"borderId,attr"`
	QuotePrefix       *bool           `xml:"quotePrefix,attr"`
	ApplyNumberFormat *bool           `xml:"applyNumberFormat,attr"`
	ApplyFont         *bool           `xml:"applyFont,attr"`
	ApplyFill         *bool           `xml:"applyFill,attr"`
	ApplyBorder       *bool           `xml:"applyBorder,attr"`
	ApplyAlignment    *bool           `xml:"applyAlignment,attr"`
	ApplyProtection   *bool           `xml:"applyProtection,attr"`
	Alignment         *xlsxAlignment  `xml:"alignment"`
	Protection        *xlsxProtection `xml:"protection"`
}

type xlsxAlignment struct {
	Horizontal      string `xml:"horizontal,attr,omitempty"`
	Vertical        string `xml:"vertical,attr,omitempty"`
	Indent          int    `xml:"indent,attr,omitempty"`
	JustifyLastLine bool   `xml:"justifyLastLine,attr,omitempty"`
	ReadingOrder    uint64 `xml:"readingOrder,attr,omitempty"`
	ShrinkToFit     bool   `xml:"shrinkToFit,attr,omitempty"`
	TextRotation    int    `xml:"textRotation,attr,omitempty"`
	WrapText        bool   `xml:"wrapText,attr,omitempty"`
}

type xlsxProtection struct {
	Hidden *bool `xml:"hidden,attr"`
	Locked *bool `xml:"locked,attr"`
}

type xlsxDxfs struct {
	Count int        `xml:"count,attr"`
	Dxfs  []*xlsxDxf `xml:"dxf"`
}

type xlsxDxf struct {
	Font       *xlsxFont       `xml:"font"`
	NumFmt     *xlsxNumFmt     `xml:"numFmt"`
	Fill       *xlsxFill       `xml:"fill"`
	Alignment  *xlsxAlignment  `xml:"alignment"`
	Border     *xlsxBorder     `xml:"border"`
	Protection *xlsxProtection `xml:"protection"`
}
