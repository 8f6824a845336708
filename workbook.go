// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"archive/zip"
	"bytes"
	"os"
	"strconv"
	"strings"
)

// DefinedName is a named range or formula, scoped either to the whole
// workbook (SheetIndex < 0) or to a single worksheet.
type DefinedName struct {
	Name       string
	Formula    string
	SheetIndex int
}

// DocumentProperties holds the docProps/core.xml and docProps/app.xml
// metadata fields a workbook can carry.
type DocumentProperties struct {
	Title          string
	Subject        string
	Author         string
	Manager        string
	Company        string
	Category       string
	Keywords       string
	Comments       string
	Status         string
	Created        string
	Modified       string
	Custom         map[string]string
}

// Workbook is the top-level facade: a collection of worksheets sharing one
// style registry and shared-string table, plus workbook-level state
// (defined names, document properties, VBA project) that the packager
// folds into the final archive.
type Workbook struct {
	Worksheets []*Worksheet

	styles  *styleRegistry
	strings *sharedStringTable

	sheetNames map[string]int

	DefinedNames []DefinedName

	Properties          DocumentProperties
	ReadOnlyRecommended bool

	vbaProject   []byte
	vbaSignature []byte
	vbaCodeName  string

	// ThemeXML is a pre-built theme1.xml blob. Theme XML internals are out
	// of this package's scope; nil means "use the built-in default blob"
	// (defaultThemeXML in theme.go).
	ThemeXML []byte

	tempDir string
}

// NewWorkbook constructs an empty Workbook with a fresh style registry and
// shared-string table.
func NewWorkbook() *Workbook {
	return &Workbook{
		styles:     newStyleRegistry(),
		strings:    newSharedStringTable(),
		sheetNames: make(map[string]int),
	}
}

// SetTempDir configures the directory streaming worksheets spill to once
// their in-memory buffer crosses the spill threshold. Empty means
// os.TempDir().
func (wb *Workbook) SetTempDir(dir string) {
	wb.tempDir = dir
}

func (wb *Workbook) addWorksheet(name string, mode WorksheetMode) (*Worksheet, error) {
	if name == "" {
		name = wb.nextDefaultSheetName()
	}
	if err := CheckSheetName(name); err != nil {
		return nil, err
	}
	key := strings.ToLower(name)
	if _, reused := wb.sheetNames[key]; reused {
		return nil, newErr(ErrSheetNameReused, "sheet name already in use: %s", name)
	}
	w := newWorksheet(name, len(wb.Worksheets), mode, wb.styles, wb.strings, wb.tempDir)
	wb.sheetNames[key] = len(wb.Worksheets)
	wb.Worksheets = append(wb.Worksheets, w)
	return w, nil
}

func (wb *Workbook) nextDefaultSheetName() string {
	for i := len(wb.Worksheets) + 1; ; i++ {
		name := "Sheet" + strconv.Itoa(i)
		if _, ok := wb.sheetNames[strings.ToLower(name)]; !ok {
			return name
		}
	}
}

// AddWorksheet appends a new random-access worksheet, the mode that
// buffers the whole sheet's cells in memory and allows writes in any
// order. An empty name is assigned the next "SheetN" default.
func (wb *Workbook) AddWorksheet(name string) (*Worksheet, error) {
	return wb.addWorksheet(name, ModeRandomAccess)
}

// AddWorksheetWithConstantMemory appends a streaming worksheet that holds
// only one row in memory at a time; writes must proceed top-to-bottom.
func (wb *Workbook) AddWorksheetWithConstantMemory(name string) (*Worksheet, error) {
	return wb.addWorksheet(name, ModeConstantMemory)
}

// AddWorksheetWithLowMemory is AddWorksheetWithConstantMemory but additionally
// pools strings through the shared-string table instead of writing them
// inline, trading some write-time CPU for a smaller file.
func (wb *Workbook) AddWorksheetWithLowMemory(name string) (*Worksheet, error) {
	return wb.addWorksheet(name, ModeLowMemory)
}

// WorksheetFromName returns the worksheet registered under name, or an
// error if none exists.
func (wb *Workbook) WorksheetFromName(name string) (*Worksheet, error) {
	idx, ok := wb.sheetNames[strings.ToLower(name)]
	if !ok {
		return nil, newErr(ErrParameter, "no worksheet named %s", name)
	}
	return wb.Worksheets[idx], nil
}

// DefineName registers a workbook-scoped named range or formula. name is
// validated against Excel's defined-name rules (CheckDefinedName).
func (wb *Workbook) DefineName(name, formula string) error {
	if err := CheckDefinedName(name); err != nil {
		return err
	}
	wb.DefinedNames = append(wb.DefinedNames, DefinedName{Name: name, Formula: formula, SheetIndex: -1})
	return nil
}

// DefineSheetName registers a worksheet-scoped named range or formula.
func (wb *Workbook) DefineSheetName(sheetIndex int, name, formula string) error {
	if err := CheckDefinedName(name); err != nil {
		return err
	}
	wb.DefinedNames = append(wb.DefinedNames, DefinedName{Name: name, Formula: formula, SheetIndex: sheetIndex})
	return nil
}

// SetProperties replaces the workbook's document properties.
func (wb *Workbook) SetProperties(p DocumentProperties) {
	wb.Properties = p
}

// ReadOnlyRecommend marks the workbook to open with Excel's "read-only
// recommended" prompt.
func (wb *Workbook) ReadOnlyRecommend() {
	wb.ReadOnlyRecommended = true
}

// AddVBAProject embeds a pre-built vbaProject.bin blob, consumed as an
// opaque byte stream (VBA binary internals are out of this package's
// scope), and switches the saved workbook's content type to the
// macro-enabled (.xlsm) form. Save writes to the path it is given; it does
// not change the file extension.
func (wb *Workbook) AddVBAProject(data []byte) error {
	if len(data) == 0 {
		return newErr(ErrParameter, "vba project data is empty")
	}
	if err := validateVBAProject(data); err != nil {
		return err
	}
	wb.vbaProject = data
	return nil
}

// AddVBAProjectWithSignature embeds a VBA project together with its
// digital-signature blob.
func (wb *Workbook) AddVBAProjectWithSignature(data, signature []byte) error {
	if err := wb.AddVBAProject(data); err != nil {
		return err
	}
	wb.vbaSignature = signature
	return nil
}

// SetVBAName sets the workbook's VBA code name, emitted as
// workbookPr/@codeName.
func (wb *Workbook) SetVBAName(name string) {
	wb.vbaCodeName = name
}

// HasVBA reports whether a VBA project has been attached, which determines
// whether Save defaults to a .xlsm-flavored content type.
func (wb *Workbook) HasVBA() bool {
	return len(wb.vbaProject) > 0
}

// SaveToBuffer assembles the workbook into a deflate-compressed ZIP
// archive and returns its bytes. The workbook is left usable afterward,
// though worksheets in a streaming mode can no longer accept writes once
// finalized.
func (wb *Workbook) SaveToBuffer() ([]byte, error) {
	return wb.saveWith(PackOptions{})
}

// Save assembles the workbook and writes it to path.
func (wb *Workbook) Save(path string) error {
	data, err := wb.SaveToBuffer()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapErr(ErrIO, err, "write %s", path)
	}
	return nil
}

func (wb *Workbook) saveWith(opts PackOptions) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	p := newPackager(wb, opts)
	if err := p.write(zw); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, wrapErr(ErrIO, err, "close zip archive")
	}
	return buf.Bytes(), nil
}
