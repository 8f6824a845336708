// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"strconv"
)

// Comment is a worksheet cell note: a small pop-up annotation anchored to
// a cell, shown either always or only on hover, rendered through the
// legacy VML drawing format Excel still uses for notes.
type Comment struct {
	Cell      string
	Author    string
	Text      string
	Runs      []RichTextRun
	Width     int
	Height    int
	Visible   bool
	Format    *Format

	authorID int
}

// NewComment constructs a Comment anchored at cell with plain text. Width
// and Height default to Excel's own note size, 128x74 pixels.
func NewComment(cell, text string) *Comment {
	return &Comment{Cell: cell, Text: text, Width: 128, Height: 74}
}

// commentsNS is the namespace xl/comments{N}.xml lives in.
const commentsNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

type xlsxComments struct {
	XMLName xml.Name        `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main comments"`
	Authors xlsxAuthors     `xml:"authors"`
	List    xlsxCommentList `xml:"commentList"`
}

type xlsxAuthors struct {
	Author []string `xml:"author"`
}

type xlsxCommentList struct {
	Comment []xlsxComment `xml:"comment"`
}

type xlsxComment struct {
	Ref      string    `xml:"ref,attr"`
	AuthorID int       `xml:"authorId,attr"`
	Text     xlsxSI    `xml:"text"`
}

// buildCommentsXML renders xl/comments{N}.xml for the given comments,
// deduplicating authors workbook-wide and emitting them in first-seen
// order. authors is the running, shared author table; it is mutated in
// place as new authors are seen.
func buildCommentsXML(comments []*Comment, authors *commentAuthorTable) ([]byte, error) {
	cmts := &xlsxComments{}
	for _, c := range comments {
		c.authorID = authors.intern(c.Author)
		entry := xlsxComment{Ref: c.Cell, AuthorID: c.authorID}
		if len(c.Runs) > 0 {
			entry.Text = richStringItem(c.Runs)
		} else {
			entry.Text = plainStringItem(c.Text)
		}
		cmts.List.Comment = append(cmts.List.Comment, entry)
	}
	cmts.Authors.Author = authors.names
	body, err := xml.Marshal(cmts)
	if err != nil {
		return nil, newErr(ErrIO, "marshal comments: %v", err)
	}
	return append([]byte(XMLHeader), body...), nil
}

// commentAuthorTable deduplicates comment authors workbook-wide, assigning
// each a stable index in first-seen order, the order <authors> lists them
// in.
type commentAuthorTable struct {
	names []string
	index map[string]int
}

func newCommentAuthorTable() *commentAuthorTable {
	return &commentAuthorTable{index: make(map[string]int)}
}

func (t *commentAuthorTable) intern(name string) int {
	if idx, ok := t.index[name]; ok {
		return idx
	}
	idx := len(t.names)
	t.names = append(t.names, name)
	t.index[name] = idx
	return idx
}

// vmlShapeIDBase is the starting shape id legacy-drawing VML shapes count
// up from; Excel reserves lower ids for its own bookkeeping shapes.
const vmlShapeIDBase = 1024

// commentVMLShape writes one comment's <v:shape> into b using shape id id;
// the caller advances the id for the next shape.
func commentVMLShape(b *xmlBuilder, c *Comment, id int) error {
	col, row, err := CellNameToCoordinates(c.Cell)
	if err != nil {
		return err
	}
	visibility := "hidden"
	if c.Visible {
		visibility = "visible"
	}
	fill := "#ffffe1"
	if c.Format != nil && c.Format.Fill.Foreground.IsSet() {
		fill = c.Format.Fill.Foreground.VMLHex()
	}
	b.WriteString(`<v:shape id="_x0000_s` + strconv.Itoa(id) + `" type="#_xcmt_shapetype" style="position:absolute;margin-left:59.25pt;margin-top:1.5pt;width:` +
		strconv.Itoa(c.Width) + `pt;height:` + strconv.Itoa(c.Height) +
		`pt;z-index:1;visibility:` + visibility + `" fillcolor="` + fill + `" o:insetmode="auto">`)
	b.WriteString(`<v:fill color2="` + fill + `"/>`)
	b.WriteString(`<v:shadow on="t" color="black" obscured="t"/>`)
	b.WriteString(`<v:path o:connecttype="none"/>`)
	b.WriteString(`<v:textbox><div style="text-align:left"></div></v:textbox>`)
	b.WriteString(`<x:ClientData ObjectType="Note"><x:MoveWithCells/><x:SizeWithCells/>`)
	b.WriteString(`<x:Anchor>` + strconv.Itoa(col+1) + `, 15, ` + strconv.Itoa(row) + `, 10, ` + strconv.Itoa(col+3) + `, 15, ` + strconv.Itoa(row+4) + `, 4</x:Anchor>`)
	b.WriteString(`<x:AutoFill>False</x:AutoFill>`)
	if c.Visible {
		b.WriteString(`<x:Visible/>`)
	}
	b.WriteString(`<x:Row>` + strconv.Itoa(row) + `</x:Row><x:Column>` + strconv.Itoa(col) + `</x:Column></x:ClientData>`)
	b.WriteString(`</v:shape>`)
	return nil
}

// buildLegacyDrawingVML renders a worksheet's xl/drawings/vmlDrawing{N}.vml
// part: one VML shape per comment positioned over its anchor cell with
// Excel's note fill color, shown or hidden per Comment.Visible, followed by
// one VML shape per button (see button.go). Both shape kinds share the
// same `<xml>` document, each with its own shapetype, because Excel allows
// only one legacyDrawing part per worksheet.
func buildLegacyDrawingVML(comments []*Comment, buttons []*Button) ([]byte, error) {
	var b xmlBuilder
	b.WriteString(`<xml xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel">`)
	b.WriteString(`<o:shapelayout v:ext="edit"><o:idmap v:ext="edit" data="1"/></o:shapelayout>`)
	b.WriteString(`<v:shapetype id="_xcmt_shapetype" coordsize="21600,21600" o:spt="202" path="m,l,21600r21600,l21600,xe"><v:stroke joinstyle="miter"/><v:path gradientshapeok="t" o:connecttype="rect"/></v:shapetype>`)
	if len(buttons) > 0 {
		b.WriteString(`<v:shapetype id="_xbtn_shapetype" coordsize="21600,21600" o:spt="201" path="m,l,21600r21600,l21600,xe"><v:stroke joinstyle="miter"/><v:path shadowok="f" o:extrusionok="f" strokeok="f" fillok="f" o:connecttype="rect"/><o:lock v:ext="edit" rotation="t" cropping="t" text="t" shapetype="t"/></v:shapetype>`)
	}

	id := vmlShapeIDBase
	for _, c := range comments {
		if err := commentVMLShape(&b, c, id); err != nil {
			return nil, err
		}
		id++
	}
	for _, btn := range buttons {
		if err := buttonVMLShape(&b, btn, id); err != nil {
			return nil, err
		}
		id++
	}
	b.WriteString(`</xml>`)
	return []byte(XMLHeader + b.String()), nil
}
