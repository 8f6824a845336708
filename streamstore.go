// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strconv"
)

// spillChunk is the in-memory buffer size threshold past which
// bufferedSink starts spilling to a temp file instead of growing the
// buffer unboundedly.
const spillChunk = 1 << 24

// bufferedSink accumulates a worksheet's streamed XML in memory and spills
// to a temp file once the in-memory buffer crosses spillChunk, so a
// constant-memory worksheet does not actually require the whole sheet to
// fit in RAM. dir, if non-empty, is the caller-configured temp directory
// (Workbook.SetTempDir); empty means os.TempDir().
type bufferedSink struct {
	dir string
	tmp *os.File
	buf bytes.Buffer
}

func (b *bufferedSink) WriteString(s string) {
	b.buf.WriteString(s)
}

// Sync spills the in-memory buffer to a temp file once it has grown past
// spillChunk. Unlike flush this is a no-op below the threshold, so callers
// can call it after every row without forcing disk I/O for small sheets.
func (b *bufferedSink) Sync() error {
	if b.buf.Len() < spillChunk {
		return nil
	}
	if b.tmp == nil {
		f, err := os.CreateTemp(b.dir, "xlsxwriter-")
		if err != nil {
			// Local storage unavailable: keep accumulating in memory
			// rather than failing the write.
			return nil
		}
		b.tmp = f
	}
	return b.flush()
}

func (b *bufferedSink) flush() error {
	if b.tmp == nil {
		return nil
	}
	if _, err := b.buf.WriteTo(b.tmp); err != nil {
		return err
	}
	b.buf.Reset()
	return nil
}

// Bytes returns the sink's entire accumulated content.
func (b *bufferedSink) Bytes() ([]byte, error) {
	if b.tmp == nil {
		return b.buf.Bytes(), nil
	}
	if err := b.flush(); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if fi, err := b.tmp.Stat(); err == nil {
		out.Grow(int(fi.Size()))
	}
	if _, err := b.tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := out.ReadFrom(b.tmp); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Close releases the temp file, if one was created.
func (b *bufferedSink) Close() error {
	b.buf.Reset()
	if b.tmp == nil {
		return nil
	}
	name := b.tmp.Name()
	err := b.tmp.Close()
	os.Remove(name)
	return err
}

// streamStore is the row-streaming (variant 2) worksheet backing store
// described by the cell store contract: exactly one "current row" is held
// at a time; writing past it flushes the current row (and any intervening
// empty-but-propertied rows) to sink and advances; writing behind it is a
// protocol error.
type streamStore struct {
	sink       *bufferedSink
	current    int
	started    bool
	cells      map[int]Cell
	rowProps   map[int]RowProperties // properties keyed by row, emitted when that row is flushed
	styles     *styleRegistry
	strings    *sharedStringTable
	stringMode sharedStringMode

	usedAny              bool
	minRow, maxRow       int
	minCol, maxCol       int
}

func newStreamStore(sink *bufferedSink, styles *styleRegistry, strings *sharedStringTable, mode sharedStringMode) *streamStore {
	return &streamStore{
		sink: sink, styles: styles, strings: strings, stringMode: mode,
		cells: make(map[int]Cell), rowProps: make(map[int]RowProperties),
	}
}

// Put writes cell at (row, col). Per the contract: row == current row
// updates the pending row; row > current row flushes and advances; row <
// current row is an order violation.
func (s *streamStore) Put(row, col int, cell Cell) error {
	if !s.started {
		s.started = true
		s.current = row
	} else if row > s.current {
		if err := s.advanceTo(row); err != nil {
			return err
		}
	} else if row < s.current {
		return newErr(ErrRowColumnOrder, "write to row %d precedes current streaming row %d", row, s.current)
	}
	s.cells[col] = cell
	s.trackUsed(row, col)
	return nil
}

// trackUsed widens the store's observed used range, for the worksheet
// assembler's `<dimension>` element.
func (s *streamStore) trackUsed(row, col int) {
	if !s.usedAny {
		s.usedAny = true
		s.minRow, s.maxRow = row, row
		s.minCol, s.maxCol = col, col
		return
	}
	if row < s.minRow {
		s.minRow = row
	}
	if row > s.maxRow {
		s.maxRow = row
	}
	if col < s.minCol {
		s.minCol = col
	}
	if col > s.maxCol {
		s.maxCol = col
	}
}

// UsedRange returns the overall (minRow, minCol, maxRow, maxCol) observed
// so far, and ok=false if no cell has ever been written.
func (s *streamStore) UsedRange() (minRow, minCol, maxRow, maxCol int, ok bool) {
	if !s.usedAny {
		return 0, 0, 0, 0, false
	}
	return s.minRow, s.minCol, s.maxRow, s.maxCol, true
}

// PutRowProperties records properties for row. If row is the current row
// they apply immediately; if it is ahead of the current row, the current
// row is flushed and the store advances to row first, so a later write to
// any earlier row is an order violation. An otherwise-empty row with only
// properties still gets a `<row>` element on flush.
func (s *streamStore) PutRowProperties(row int, props RowProperties) error {
	if !s.started {
		s.started = true
		s.current = row
	} else if row > s.current {
		if err := s.advanceTo(row); err != nil {
			return err
		}
	} else if row < s.current {
		return newErr(ErrRowColumnOrder, "row properties for row %d precede current streaming row %d", row, s.current)
	}
	s.rowProps[row] = props
	return nil
}

// advanceTo flushes the current row and every intervening row up to (but
// not including) target, emitting empty `<row r="N" .../>` elements for
// any intervening row that was given properties, then begins a new
// current row at target.
func (s *streamStore) advanceTo(target int) error {
	if err := s.flushCurrent(); err != nil {
		return err
	}
	for r := s.current + 1; r < target; r++ {
		if props, ok := s.rowProps[r]; ok {
			s.writeEmptyRow(r, props)
			delete(s.rowProps, r)
		}
	}
	s.current = target
	s.cells = make(map[int]Cell)
	return nil
}

// Finish flushes whatever row is still pending. Called once by the
// worksheet assembler after the caller's last write.
func (s *streamStore) Finish() error {
	if !s.started {
		return nil
	}
	return s.flushCurrent()
}

func (s *streamStore) flushCurrent() error {
	if len(s.cells) == 0 {
		if props, ok := s.rowProps[s.current]; ok {
			s.writeEmptyRow(s.current, props)
			delete(s.rowProps, s.current)
		}
		return nil
	}
	cols := make([]int, 0, len(s.cells))
	for c := range s.cells {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	var b xmlBuilder
	rowAttrs := rowOpenAttrs(s.current, mustCellRangeSpan(cols[0], cols[len(cols)-1]), s.rowProps[s.current])
	b.openTagAll("row", rowAttrs...)
	for _, col := range cols {
		ref := mustCellName(col, s.current)
		if err := writeStreamCell(&b, ref, s.cells[col], s.styles, s.strings, s.stringMode); err != nil {
			return err
		}
	}
	b.closeTag("row")
	s.sink.WriteString(b.String())
	delete(s.rowProps, s.current)
	return s.sink.Sync()
}

func (s *streamStore) writeEmptyRow(row int, props RowProperties) {
	var b xmlBuilder
	b.emptyTag("row", rowOpenAttrs(row, "", props)...)
	s.sink.WriteString(b.String())
}

func rowOpenAttrs(row int, spans string, props RowProperties) [][2]string {
	attrs := [][2]string{{"r", strconv.Itoa(row + 1)}}
	if spans != "" {
		attrs = append(attrs, [2]string{"spans", spans})
	}
	if props.HasHeight {
		attrs = append(attrs, [2]string{"ht", strconv.FormatFloat(props.Height, 'f', -1, 64)}, [2]string{"customHeight", "1"})
	}
	if props.Hidden {
		attrs = append(attrs, [2]string{"hidden", "1"})
	}
	if props.OutlineLevel > 0 {
		attrs = append(attrs, [2]string{"outlineLevel", strconv.Itoa(props.OutlineLevel)})
	}
	if props.Collapsed {
		attrs = append(attrs, [2]string{"collapsed", "1"})
	}
	return attrs
}

// writeStreamCell appends one cell's raw `<c>` XML to b, following the
// encoding rules for every Cell kind. A nil Format omits the `s` attribute.
func writeStreamCell(b *xmlBuilder, ref string, cell Cell, styles *styleRegistry, strings *sharedStringTable, mode sharedStringMode) error {
	var styleAttr string
	if cell.Format != nil {
		xf, err := styles.AddFormat(cell.Format)
		if err != nil {
			return err
		}
		styleAttr = strconv.Itoa(xf)
	}
	base := [][2]string{{"r", ref}, {"s", styleAttr}}

	switch cell.Kind {
	case CellBlank:
		if cell.Format == nil {
			return nil
		}
		b.emptyTag("c", base...)
		return nil

	case CellNumber, CellDate:
		b.openTag("c", base...)
		b.openTag("v")
		b.WriteString(strconv.FormatFloat(cell.Number, 'g', -1, 64))
		b.closeTag("v")
		b.closeTag("c")
		return nil

	case CellBoolean:
		attrs := append(base, [2]string{"t", "b"})
		b.openTag("c", attrs...)
		if cell.Bool {
			b.WriteString("<v>1</v>")
		} else {
			b.WriteString("<v>0</v>")
		}
		b.closeTag("c")
		return nil

	case CellString, CellURL:
		if mode == sharedStringInline {
			attrs := append(base, [2]string{"t", "inlineStr"})
			b.openTag("c", attrs...)
			b.WriteString("<is>")
			writeInlineText(b, cell.Text)
			b.WriteString("</is>")
			b.closeTag("c")
			return nil
		}
		idx, err := strings.Intern(cell.Text)
		if err != nil {
			return err
		}
		attrs := append(base, [2]string{"t", "s"})
		b.openTag("c", attrs...)
		b.openTag("v")
		b.WriteString(strconv.Itoa(idx))
		b.closeTag("v")
		b.closeTag("c")
		return nil

	case CellInlineString:
		attrs := append(base, [2]string{"t", "inlineStr"})
		b.openTag("c", attrs...)
		b.WriteString("<is>")
		writeInlineText(b, cell.Text)
		b.WriteString("</is>")
		b.closeTag("c")
		return nil

	case CellRichString:
		idx, err := strings.InternRich(cell.Runs)
		if err != nil {
			return err
		}
		attrs := append(base, [2]string{"t", "s"})
		b.openTag("c", attrs...)
		b.openTag("v")
		b.WriteString(strconv.Itoa(idx))
		b.closeTag("v")
		b.closeTag("c")
		return nil

	case CellFormula:
		b.openTag("c", base...)
		if cell.IsDynamicArray {
			b.openTagAll("f", [2]string{"t", "array"}, [2]string{"ref", cell.SpillRange})
		} else {
			b.openTag("f")
		}
		b.text(cell.FormulaText)
		b.closeTag("f")
		b.openTag("v")
		b.WriteString(strconv.FormatFloat(cell.FormulaCached, 'g', -1, 64))
		b.closeTag("v")
		b.closeTag("c")
		return nil
	}
	return nil
}

func writeInlineText(b *xmlBuilder, s string) {
	if needsXMLSpacePreserve(s) {
		b.openTagAll("t", [2]string{"xml:space", "preserve"})
	} else {
		b.openTag("t")
	}
	b.text(s)
	b.closeTag("t")
}
