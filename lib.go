// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strconv"
	"strings"
)

// ColumnNameToNumber converts an Excel column name ("A", "Z", "AA", "XFD")
// to a 0-indexed column number.
func ColumnNameToNumber(name string) (int, error) {
	if name == "" {
		return 0, newErr(ErrParameter, "column name cannot be blank")
	}
	col := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, newErr(ErrParameter, "invalid column name %q", name)
		}
		col = col*26 + int(r-'A') + 1
	}
	col--
	if col < 0 || col >= ColumnLimit {
		return 0, newErr(ErrRowColumnLimit, "column %q out of range", name)
	}
	return col, nil
}

// ColumnNumberToName converts a 0-indexed column number to an Excel column
// name ("A"..."XFD").
func ColumnNumberToName(col int) (string, error) {
	if col < 0 || col >= ColumnLimit {
		return "", newErr(ErrRowColumnLimit, "column number %d out of range", col)
	}
	col++
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b), nil
}

// CellNameToCoordinates converts an A1-style cell reference to 0-indexed
// (col, row).
func CellNameToCoordinates(cell string) (col, row int, err error) {
	i := 0
	for i < len(cell) && isColLetter(cell[i]) {
		i++
	}
	if i == 0 || i == len(cell) {
		return 0, 0, newErr(ErrParameter, "invalid cell reference %q", cell)
	}
	col, err = ColumnNameToNumber(cell[:i])
	if err != nil {
		return 0, 0, err
	}
	rowNum, err := strconv.Atoi(cell[i:])
	if err != nil || rowNum < 1 {
		return 0, 0, newErr(ErrParameter, "invalid row in cell reference %q", cell)
	}
	row = rowNum - 1
	if row >= RowLimit {
		return 0, 0, newErr(ErrRowColumnLimit, "row %d out of range", rowNum)
	}
	return col, row, nil
}

func isColLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// CoordinatesToCellName converts 0-indexed (col, row) to an A1-style cell
// reference, e.g. (0, 0) -> "A1".
func CoordinatesToCellName(col, row int) (string, error) {
	colName, err := ColumnNumberToName(col)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= RowLimit {
		return "", newErr(ErrRowColumnLimit, "row %d out of range", row)
	}
	return colName + strconv.Itoa(row+1), nil
}

// mustCellName is CoordinatesToCellName for call sites that already
// validated their coordinates (internal assembly code, never user input).
func mustCellName(col, row int) string {
	name, err := CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}

// CellRange builds an "A1:B2" range reference from two 0-indexed
// coordinate pairs, normalizing so the first corner is top-left. Returns a
// single cell reference ("A1") when both corners coincide.
func CellRange(firstCol, firstRow, lastCol, lastRow int) (string, error) {
	if firstCol > lastCol {
		firstCol, lastCol = lastCol, firstCol
	}
	if firstRow > lastRow {
		firstRow, lastRow = lastRow, firstRow
	}
	first, err := CoordinatesToCellName(firstCol, firstRow)
	if err != nil {
		return "", err
	}
	if firstCol == lastCol && firstRow == lastRow {
		return first, nil
	}
	last, err := CoordinatesToCellName(lastCol, lastRow)
	if err != nil {
		return "", err
	}
	return first + ":" + last, nil
}

// ParseCellRange parses "A1:B2" (or a single "A1") into 0-indexed
// (firstCol, firstRow, lastCol, lastRow), normalized so first <= last.
func ParseCellRange(ref string) (firstCol, firstRow, lastCol, lastRow int, err error) {
	parts := strings.SplitN(ref, ":", 2)
	firstCol, firstRow, err = CellNameToCoordinates(parts[0])
	if err != nil {
		return
	}
	if len(parts) == 1 {
		lastCol, lastRow = firstCol, firstRow
		return
	}
	lastCol, lastRow, err = CellNameToCoordinates(parts[1])
	if err != nil {
		return
	}
	if firstCol > lastCol {
		firstCol, lastCol = lastCol, firstCol
	}
	if firstRow > lastRow {
		firstRow, lastRow = lastRow, firstRow
	}
	return
}

// QuoteSheetName wraps a sheet name in single quotes when SpreadsheetML
// requires it for use inside a formula or defined name: the name contains
// any character outside [A-Za-z0-9_.] or starts with a digit. Embedded
// single quotes are doubled.
func QuoteSheetName(name string) string {
	needsQuote := name == ""
	if !needsQuote {
		if r := rune(name[0]); r >= '0' && r <= '9' {
			needsQuote = true
		}
	}
	if !needsQuote {
		for _, r := range name {
			if !(r == '_' || r == '.' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				needsQuote = true
				break
			}
		}
	}
	if !needsQuote {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// sheetNameInvalidChars are forbidden in a worksheet name per Excel rules.
const sheetNameInvalidChars = "[]:*?/\\"

// CheckSheetName validates a worksheet name against Excel's rules: 1..31
// characters, none of `[]:*?/\`, and it must not start or end with `'`.
func CheckSheetName(name string) error {
	if name == "" {
		return &XlsxError{Kind: ErrSheetNameBlank, Message: "sheet name cannot be blank"}
	}
	if len([]rune(name)) > MaxSheetNameLength {
		return &XlsxError{Kind: ErrSheetNameLength, Message: "sheet name exceeds 31 characters: " + name}
	}
	if strings.ContainsAny(name, sheetNameInvalidChars) {
		return &XlsxError{Kind: ErrSheetNameInvalidChar, Message: "sheet name contains invalid character: " + name}
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return &XlsxError{Kind: ErrSheetNameApostrophe, Message: "sheet name starts or ends with apostrophe: " + name}
	}
	return nil
}

// HashPassword computes Excel's legacy 16-bit worksheet/workbook
// protection password hash. For each byte b at 1-indexed position i, the
// running hash is rotated left by i within 15 bits, then XORed with b;
// finally the hash is XORed with the password length and the constant
// 0xCE4B.
func HashPassword(password string) uint16 {
	var hash uint16
	for i, c := range []byte(password) {
		pos := i + 1
		rotated := (hash << uint(pos%15)) | (hash >> uint(15-pos%15))
		if pos%15 == 0 {
			rotated = hash
		}
		hash = (rotated & 0x7FFF) ^ uint16(c)
	}
	hash ^= uint16(len(password))
	hash ^= 0xCE4B
	return hash
}

// pixelWidths is the rendered pixel width of each printable ASCII
// character in Calibri 11, used by the autofit heuristic. Values are
// transcribed bit-for-bit from rust_xlsxwriter's character-width table
// (original_source/src/utility/tests.rs, test_pixel_width); characters
// outside the table, including all non-ASCII runes, count as
// defaultPixelWidth.
var pixelWidths = map[rune]int{
	' ': 3, '!': 5, '"': 6, '#': 7, '$': 7, '%': 11, '&': 10, '\'': 3,
	'(': 5, ')': 5, '*': 7, '+': 7, ',': 4, '-': 5, '.': 4, '/': 6,
	'0': 7, '1': 7, '2': 7, '3': 7, '4': 7, '5': 7, '6': 7, '7': 7, '8': 7, '9': 7,
	':': 4, ';': 4, '<': 7, '=': 7, '>': 7, '?': 7, '@': 13,
	'A': 9, 'B': 8, 'C': 8, 'D': 9, 'E': 7, 'F': 7, 'G': 9, 'H': 9,
	'I': 4, 'J': 5, 'K': 8, 'L': 6, 'M': 12, 'N': 10, 'O': 10, 'P': 8,
	'Q': 10, 'R': 8, 'S': 7, 'T': 7, 'U': 9, 'V': 9, 'W': 13, 'X': 8,
	'Y': 7, 'Z': 7,
	'[': 5, '\\': 6, ']': 5, '^': 7, '_': 7, '`': 4,
	'a': 7, 'b': 8, 'c': 6, 'd': 8, 'e': 8, 'f': 5, 'g': 7, 'h': 8,
	'i': 4, 'j': 4, 'k': 7, 'l': 4, 'm': 12, 'n': 8, 'o': 8, 'p': 8,
	'q': 8, 'r': 5, 's': 6, 't': 5, 'u': 8, 'v': 7, 'w': 11, 'x': 7,
	'y': 7, 'z': 6,
	'{': 5, '|': 7, '}': 5, '~': 7,
}

// defaultPixelWidth is the width charged for runes outside pixelWidths,
// notably all non-ASCII characters; rust_xlsxwriter's own table expects 8
// for those (its "é" case), so that's what this package uses too.
const defaultPixelWidth = 8

// PixelWidth estimates the rendered pixel width of s in Calibri 11 using
// the per-character table above.
func PixelWidth(s string) int {
	total := 0
	for _, r := range s {
		if w, ok := pixelWidths[r]; ok {
			total += w
		} else {
			total += defaultPixelWidth
		}
	}
	return total
}

// PixelWidthToColumnWidth converts a pixel width to Excel column width
// units, clamped to [0, MaxColumnWidth].
func PixelWidthToColumnWidth(pixels int) float64 {
	w := (float64(pixels) - 5.0) / 7.0
	w = float64(int(w*100+0.5)) / 100
	if w < 0 {
		w = 0
	}
	if w > MaxColumnWidth {
		w = MaxColumnWidth
	}
	return w
}

// definedNameInvalidChars are forbidden inside a defined name.
const definedNameInvalidChars = ",/[]'\":*"

// CheckDefinedName validates a defined name: it must not start with a
// digit, contain a space, or contain any of `,/[]'":*`.
func CheckDefinedName(name string) error {
	if name == "" {
		return newErr(ErrParameter, "defined name cannot be blank")
	}
	if len(name) > MaxDefinedNameLength {
		return newErr(ErrParameter, "defined name exceeds %d characters", MaxDefinedNameLength)
	}
	if r := rune(name[0]); r >= '0' && r <= '9' {
		return newErr(ErrParameter, "defined name cannot start with a digit: %s", name)
	}
	if strings.ContainsAny(name, " "+definedNameInvalidChars) {
		return newErr(ErrParameter, "defined name contains invalid character: %s", name)
	}
	return nil
}
