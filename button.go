// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "strconv"

// ObjectMovement controls how a worksheet object anchors to its underlying
// cells when they're inserted, deleted, resized, or sorted.
type ObjectMovement int

const (
	// MoveAndSizeWithCells anchors both corners to the grid, Excel's default
	// for a button inserted from the Developer tab.
	MoveAndSizeWithCells ObjectMovement = iota
	// MoveWithCells anchors the top-left corner only; the button keeps its
	// own size as rows and columns resize.
	MoveWithCells
	// DontMoveOrSizeWithCells pins the button to an absolute sheet position.
	DontMoveOrSizeWithCells
)

// Button is a worksheet form-control push button, rendered through the
// same legacy VML drawing part as cell comments. Excel never evaluates a
// button's macro itself; clicking one just invokes a VBA procedure already
// present in the workbook (see Workbook.AddVBAProject), so Macro only needs
// to name that procedure.
type Button struct {
	Cell string // anchor cell, top-left corner

	Caption string // button face text; defaults to the cell reference
	Macro   string // name of the VBA procedure to run on click
	AltText string

	Width, Height         int // pixels; NewButton sets 64x20, the default cell size
	ScaleWidth, ScaleHeight float64

	ObjectMovement ObjectMovement
}

// NewButton constructs a Button anchored at cell.
func NewButton(cell string) *Button {
	return &Button{Cell: cell, Width: 64, Height: 20}
}

func (b *Button) caption() string {
	if b.Caption != "" {
		return b.Caption
	}
	return b.Cell
}

func (b *Button) scaledWidth() int {
	if b.ScaleWidth > 0 {
		return int(float64(b.Width) * b.ScaleWidth)
	}
	return b.Width
}

func (b *Button) scaledHeight() int {
	if b.ScaleHeight > 0 {
		return int(float64(b.Height) * b.ScaleHeight)
	}
	return b.Height
}

// buttonVMLShape writes one button's <v:shape> into b, the ClientData
// ObjectType="Button" counterpart to commentVMLShape's ObjectType="Note".
func buttonVMLShape(b *xmlBuilder, btn *Button, id int) error {
	col, row, err := CellNameToCoordinates(btn.Cell)
	if err != nil {
		return err
	}
	w, h := btn.scaledWidth(), btn.scaledHeight()
	b.WriteString(`<v:shape id="_x0000_s` + strconv.Itoa(id) + `" type="#_xbtn_shapetype" style="position:absolute;margin-left:59.25pt;margin-top:1.5pt;width:` +
		strconv.Itoa(w) + `pt;height:` + strconv.Itoa(h) + `pt;z-index:1" o:insetmode="auto" fillcolor="buttonFace [67]" strokecolor="windowText [64]">`)
	b.WriteString(`<v:textbox style="mso-direction-alt:auto"><div style="text-align:center"><font face="Calibri">` + escapeXMLText(btn.caption()) + `</font></div></v:textbox>`)
	b.WriteString(`<x:ClientData ObjectType="Button">`)
	b.WriteString(`<x:Anchor>` + strconv.Itoa(col+1) + `, 15, ` + strconv.Itoa(row) + `, 10, ` + strconv.Itoa(col+3) + `, 15, ` + strconv.Itoa(row+2) + `, 4</x:Anchor>`)
	switch btn.ObjectMovement {
	case MoveWithCells:
		b.WriteString(`<x:MoveWithCells/>`)
	case DontMoveOrSizeWithCells:
		// neither MoveWithCells nor SizeWithCells emitted: absolute position
	default:
		b.WriteString(`<x:MoveWithCells/><x:SizeWithCells/>`)
	}
	if btn.Macro != "" {
		b.WriteString(`<x:FmlaMacro>` + escapeXMLText(btn.Macro) + `</x:FmlaMacro>`)
	}
	b.WriteString(`<x:TextHAlign>Center</x:TextHAlign><x:TextVAlign>Center</x:TextVAlign>`)
	b.WriteString(`</x:ClientData>`)
	b.WriteString(`</v:shape>`)
	return nil
}
