// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "encoding/xml"

// sharedStringsNS is the namespace every sst/si/r/t element below lives in.
const sharedStringsNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// xlsxSST is the root of xl/sharedStrings.xml: an indexed, deduplicated
// table of every plain string written to the workbook. Rich strings (runs
// with per-character formatting) are not deduplicated against plain
// strings that happen to share the same text, since their XML differs.
type xlsxSST struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main sst"`
	Count       int      `xml:"count,attr"`
	UniqueCount int      `xml:"uniqueCount,attr"`
	SI          []xlsxSI `xml:"si"`
}

type xlsxSI struct {
	T *xlsxT  `xml:"t,omitempty"`
	R []xlsxR `xml:"r,omitempty"`
}

type xlsxT struct {
	Space xml.Attr `xml:"xml:space,attr,omitempty"`
	Val   string   `xml:",chardata"`
}

type xlsxR struct {
	RPr *xlsxRunProps `xml:"rPr"`
	T   xlsxT         `xml:"t"`
}

// xlsxRunProps is the character-level subset of font formatting a rich
// string run can carry; it mirrors the relevant fields of Font.
type xlsxRunProps struct {
	B      *struct{}  `xml:"b"`
	I      *struct{}  `xml:"i"`
	Strike *struct{}  `xml:"strike"`
	U      *attrValString `xml:"u"`
	Sz     *attrValFloat  `xml:"sz"`
	Color  *xlsxColor `xml:"color"`
	RFont  *attrValString `xml:"rFont"`
	Family *attrValInt    `xml:"family"`
	Scheme *attrValString `xml:"scheme"`
}

// RichTextRun is one run of a rich (per-character-formatted) string: a
// span of text sharing one Font.
type RichTextRun struct {
	Font *Font
	Text string
}

// sharedStringMode selects how a worksheet's string cells are stored.
type sharedStringMode int

const (
	// sharedStringPooled interns every plain string into xl/sharedStrings.xml
	// and writes only its table index (`t="s"`) into the cell; this is the
	// default and gives the best size for workbooks with repeated values.
	sharedStringPooled sharedStringMode = iota
	// sharedStringInline writes each string directly into the cell body
	// (`t="inlineStr"`) with no shared table entry, trading file size for
	// the ability to emit a row without retaining every prior string.
	sharedStringInline
)

// sstEntry is one slot in the shared-string table: either a plain string
// (dedup-eligible) or a rich-text run list (never deduplicated, since two
// occurrences of visually-identical runs would still need independent
// `<r>` formatting if either is edited later).
type sstEntry struct {
	rich bool
	text string
	runs []RichTextRun
}

// sharedStringTable interns plain strings in first-use order and hands
// back a stable index for each; rich strings are appended as their own
// entry on every call, since they are never pool-deduplicated.
type sharedStringTable struct {
	index   map[string]int
	entries []sstEntry
	total   int // count including every repeated reference, not just uniques
}

func newSharedStringTable() *sharedStringTable {
	return &sharedStringTable{index: make(map[string]int)}
}

// Intern returns the shared-string index for s, adding it to the table on
// first use. It enforces the 32767-character cell string length limit.
func (t *sharedStringTable) Intern(s string) (int, error) {
	if n := len([]rune(s)); n > MaxStringLength {
		return 0, newErr(ErrMaxStringLength, "string of %d characters exceeds the %d character limit", n, MaxStringLength)
	}
	t.total++
	if idx, ok := t.index[s]; ok {
		return idx, nil
	}
	idx := len(t.entries)
	t.index[s] = idx
	t.entries = append(t.entries, sstEntry{text: s})
	return idx, nil
}

// InternRich appends a rich-text run list as a new table entry and returns
// its index. Unlike Intern, this never dedups: a second cell with the same
// runs still gets its own entry.
func (t *sharedStringTable) InternRich(runs []RichTextRun) (int, error) {
	var total int
	for _, r := range runs {
		total += len([]rune(r.Text))
	}
	if total > MaxStringLength {
		return 0, newErr(ErrMaxStringLength, "rich string of %d characters exceeds the %d character limit", total, MaxStringLength)
	}
	t.total++
	idx := len(t.entries)
	t.entries = append(t.entries, sstEntry{rich: true, runs: runs})
	return idx, nil
}

// UniqueCount returns the number of distinct table entries interned so far.
func (t *sharedStringTable) UniqueCount() int { return len(t.entries) }

// Count returns the total number of Intern/InternRich calls, including repeats.
func (t *sharedStringTable) Count() int { return t.total }

// buildXML renders the table into its xl/sharedStrings.xml part.
func (t *sharedStringTable) buildXML() *xlsxSST {
	sst := &xlsxSST{Count: t.total, UniqueCount: len(t.entries), SI: make([]xlsxSI, len(t.entries))}
	for i, e := range t.entries {
		if e.rich {
			sst.SI[i] = richStringItem(e.runs)
		} else {
			sst.SI[i] = plainStringItem(e.text)
		}
	}
	return sst
}

func plainStringItem(s string) xlsxSI {
	t := xlsxT{Val: s}
	if needsXMLSpacePreserve(s) {
		t.Space = xml.Attr{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}
	}
	return xlsxSI{T: &t}
}

// richStringItem renders a RichTextRun slice into an <si> containing one
// <r> per run.
func richStringItem(runs []RichTextRun) xlsxSI {
	si := xlsxSI{R: make([]xlsxR, len(runs))}
	for i, run := range runs {
		t := xlsxT{Val: run.Text}
		if needsXMLSpacePreserve(run.Text) {
			t.Space = xml.Attr{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}
		}
		si.R[i] = xlsxR{RPr: runPropsFromFont(run.Font), T: t}
	}
	return si
}

func runPropsFromFont(f *Font) *xlsxRunProps {
	if f == nil {
		return nil
	}
	rpr := &xlsxRunProps{}
	if f.Bold {
		rpr.B = &struct{}{}
	}
	if f.Italic {
		rpr.I = &struct{}{}
	}
	if f.Strikeout {
		rpr.Strike = &struct{}{}
	}
	if f.Underline != UnderlineNone {
		rpr.U = &attrValString{Val: f.Underline.xmlValue()}
	}
	if f.Size > 0 {
		rpr.Sz = &attrValFloat{Val: f.Size}
	}
	if f.Color.IsSet() {
		rpr.Color = colorToXML(f.Color)
	}
	if f.Name != "" {
		rpr.RFont = &attrValString{Val: f.Name}
	}
	return rpr
}
