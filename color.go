// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "fmt"

// Color is a value object for the color model SpreadsheetML supports:
// Default/Automatic, the sixteen legacy named colors, an explicit RGB
// value, or an indirect theme reference with a tint shade.
type Color struct {
	kind  colorKind
	rgb   uint32
	theme uint8
	shade uint8
}

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorAutomatic
	colorRGB
	colorTheme
)

// Named colors, matching the sixteen legacy Excel palette entries.
var (
	ColorDefault   = Color{kind: colorDefault}
	ColorAutomatic = Color{kind: colorAutomatic}
	ColorBlack     = RGBColor(0x000000)
	ColorBlue      = RGBColor(0x0000FF)
	ColorBrown     = RGBColor(0x800000)
	ColorCyan      = RGBColor(0x00FFFF)
	ColorGray      = RGBColor(0x808080)
	ColorGreen     = RGBColor(0x008000)
	ColorLime      = RGBColor(0x00FF00)
	ColorMagenta   = RGBColor(0xFF00FF)
	ColorNavy      = RGBColor(0x000080)
	ColorOrange    = RGBColor(0xFF6600)
	ColorPink      = RGBColor(0xFFC0CB)
	ColorPurple    = RGBColor(0x800080)
	ColorRed       = RGBColor(0xFF0000)
	ColorSilver    = RGBColor(0xC0C0C0)
	ColorWhite     = RGBColor(0xFFFFFF)
	ColorYellow    = RGBColor(0xFFFF00)
)

// RGBColor builds a Color from a 24-bit 0xRRGGBB value.
func RGBColor(rgb uint32) Color {
	return Color{kind: colorRGB, rgb: rgb & 0xFFFFFF}
}

// ThemeColor builds an indirect theme-palette reference. color is the
// palette column (0..=9), shade is the tint row (0..=5, 0 meaning no
// tint).
func ThemeColor(color, shade uint8) Color {
	return Color{kind: colorTheme, theme: color, shade: shade}
}

// IsSet reports whether the color carries an explicit value (i.e. is not
// the zero-value Default color).
func (c Color) IsSet() bool { return c.kind != colorDefault }

// rgbHex returns the 6 hex digit RRGGBB representation; theme colors and
// Default/Automatic default to black, matching rust_xlsxwriter.
func (c Color) rgbHex() string {
	switch c.kind {
	case colorRGB:
		return fmt.Sprintf("%06X", c.rgb)
	default:
		return "000000"
	}
}

// ARGBHex returns the 8 hex digit AARRGGBB projection used by the `rgb`
// attribute of styles.xml color elements; alpha is always FF.
func (c Color) ARGBHex() string {
	return "FF" + c.rgbHex()
}

// VMLHex returns the lowercase "#rrggbb" form used by legacy VML fills.
// Theme/Default/Automatic colors fall back to the VML comment-box default.
func (c Color) VMLHex() string {
	if c.kind == colorTheme || c.kind == colorDefault || c.kind == colorAutomatic {
		return "#ffffe1"
	}
	return "#" + toLowerHex(c.rgbHex())
}

func toLowerHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// themeTint is the fixed tint table for theme colors, reproduced
// bit-for-bit from rust_xlsxwriter's published palette (see DESIGN.md).
// Indexed [row][shade], where row is the theme column for columns 0-2 and
// row 3 serves every column from 3 upward; empty string means "no tint
// attribute".
var themeTint = [4][6]string{
	0: {"", "-4.9989318521683403E-2", "-0.14999847407452621", "-0.249977111117893", "-0.34998626667073579", "-0.499984740745262"},
	1: {"", "0.499984740745262", "0.34998626667073579", "0.249977111117893", "0.14999847407452621", "4.9989318521683403E-2"},
	2: {"", "-9.9978637043366805E-2", "-0.249977111117893", "-0.499984740745262", "-0.749992370372631", "-0.89999084444715716"},
	3: {"", "0.79998168889431442", "0.59999389629810485", "0.39997558519241921", "-0.249977111117893", "-0.499984740745262"},
}

// ThemeAttributes returns the (theme, tint) attribute pair for a theme
// color, with tint omitted (empty string) when the shade carries none.
func (c Color) ThemeAttributes() (theme uint8, tint string, ok bool) {
	if c.kind != colorTheme {
		return 0, "", false
	}
	row := 3
	if c.theme < 3 {
		row = int(c.theme)
	}
	shade := c.shade
	if shade > 5 {
		shade = 0
	}
	return c.theme, themeTint[row][shade], true
}

// chartSchemeEntry is one shade of a theme column: its DrawingML scheme
// name and (lumMod, lumOff) pair, in thousandths of a percent.
type chartSchemeEntry struct {
	name          string
	lumMod, lumOff uint32
}

var chartSchemeTable = map[uint8][6]chartSchemeEntry{
	0: {{"bg1", 0, 0}, {"bg1", 95000, 0}, {"bg1", 85000, 0}, {"bg1", 75000, 0}, {"bg1", 65000, 0}, {"bg1", 50000, 0}},
	1: {{"tx1", 0, 0}, {"tx1", 50000, 50000}, {"tx1", 65000, 35000}, {"tx1", 75000, 25000}, {"tx1", 85000, 15000}, {"tx1", 95000, 5000}},
	2: {{"bg2", 0, 0}, {"bg2", 90000, 0}, {"bg2", 75000, 0}, {"bg2", 50000, 0}, {"bg2", 25000, 0}, {"bg2", 10000, 0}},
	3: {{"tx2", 0, 0}, {"tx2", 20000, 80000}, {"tx2", 40000, 60000}, {"tx2", 60000, 40000}, {"tx2", 75000, 0}, {"tx2", 50000, 0}},
	4: {{"accent1", 0, 0}, {"accent1", 20000, 80000}, {"accent1", 40000, 60000}, {"accent1", 60000, 40000}, {"accent1", 75000, 0}, {"accent1", 50000, 0}},
	5: {{"accent2", 0, 0}, {"accent2", 20000, 80000}, {"accent2", 40000, 60000}, {"accent2", 60000, 40000}, {"accent2", 75000, 0}, {"accent2", 50000, 0}},
	6: {{"accent3", 0, 0}, {"accent3", 20000, 80000}, {"accent3", 40000, 60000}, {"accent3", 60000, 40000}, {"accent3", 75000, 0}, {"accent3", 50000, 0}},
	7: {{"accent4", 0, 0}, {"accent4", 20000, 80000}, {"accent4", 40000, 60000}, {"accent4", 60000, 40000}, {"accent4", 75000, 0}, {"accent4", 50000, 0}},
	8: {{"accent5", 0, 0}, {"accent5", 20000, 80000}, {"accent5", 40000, 60000}, {"accent5", 60000, 40000}, {"accent5", 75000, 0}, {"accent5", 50000, 0}},
	9: {{"accent6", 0, 0}, {"accent6", 20000, 80000}, {"accent6", 40000, 60000}, {"accent6", 60000, 40000}, {"accent6", 75000, 0}, {"accent6", 50000, 0}},
}

// ChartScheme converts a theme color into the (schemeName, lumMod, lumOff)
// triple chart color elements use. Non-theme colors return an empty name.
func (c Color) ChartScheme() (name string, lumMod, lumOff uint32) {
	if c.kind != colorTheme {
		return "", 0, 0
	}
	row, ok := chartSchemeTable[c.theme]
	if !ok {
		return "", 0, 0
	}
	shade := c.shade
	if shade > 5 {
		shade = 0
	}
	e := row[shade]
	return e.name, e.lumMod, e.lumOff
}
