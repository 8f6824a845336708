// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// TotalRowFunction selects the SUBTOTAL aggregate a table's total row
// computes for a column.
type TotalRowFunction int

const (
	TotalNone TotalRowFunction = iota
	TotalAverage
	TotalCount
	TotalCountNums
	TotalMax
	TotalMin
	TotalStdDev
	TotalSum
	TotalVar
	TotalCustom
)

var totalRowFunctionNames = map[TotalRowFunction]string{
	TotalAverage:   "average",
	TotalCount:     "count",
	TotalCountNums: "countNums",
	TotalMax:       "max",
	TotalMin:       "min",
	TotalStdDev:    "stdDev",
	TotalSum:       "sum",
	TotalVar:       "var",
	TotalCustom:    "custom",
}

// subtotalFuncNum is the SUBTOTAL() function_num argument for each
// aggregate, in the 100+ "ignore hidden rows" range Excel writes for its
// own table total rows.
var subtotalFuncNum = map[TotalRowFunction]int{
	TotalAverage:   101,
	TotalCount:     103,
	TotalCountNums: 102,
	TotalMax:       104,
	TotalMin:       105,
	TotalStdDev:    107,
	TotalSum:       109,
	TotalVar:       110,
}

// TableColumn is one column definition within a Table.
type TableColumn struct {
	Name             string
	TotalRowLabel    string
	TotalRowFunction TotalRowFunction
	TotalRowFormula  string // SUBTOTAL text computed by buildXML, or user text when TotalCustom
	Formula          string // per-row calculated-column formula, without leading '='
	Format           *Format
	HeaderFormat     *Format
	Width            float64
	HasWidth         bool
}

// Table is a worksheet table (an Excel "ListObject"): a bordered,
// filterable, optionally striped range with named columns and an optional
// total row.
type Table struct {
	Name           string
	Range          string // e.g. "C3:F13"
	StyleName      string
	HeaderRowShown bool
	TotalRowShown  bool
	BandedRows     bool
	BandedColumns  bool
	FirstColumn    bool
	LastColumn     bool
	AutoFilter     bool
	Columns        []TableColumn

	// index is the workbook-wide table sequence number (1-based),
	// assigned by the packager when the workbook is saved.
	index int
}

// NewTable returns a Table over rng with Excel's usual defaults: a shown
// header row, medium banded-row style, and autofilter enabled.
func NewTable(name, rng string) *Table {
	return &Table{
		Name: name, Range: rng, StyleName: "TableStyleMedium9",
		HeaderRowShown: true, BandedRows: true, AutoFilter: true,
	}
}

// validate enforces the table invariants: unique case-insensitive column
// headers, and (if a total row is requested) that the range has room for
// at least one data row below the header and above the total row.
func (t *Table) validate() error {
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		key := strings.ToLower(c.Name)
		if key != "" && seen[key] {
			return newErr(ErrTable, "table %q has duplicate column header %q", t.Name, c.Name)
		}
		seen[key] = true
	}
	_, minRow, _, maxRow, err := ParseCellRange(t.Range)
	if err != nil {
		return err
	}
	headerRows, totalRows := 0, 0
	if t.HeaderRowShown {
		headerRows = 1
	}
	if t.TotalRowShown {
		totalRows = 1
	}
	if maxRow-minRow+1 < headerRows+totalRows+1 {
		return newErr(ErrTable, "table %q range %s has no room for a data row", t.Name, t.Range)
	}
	return nil
}

// xlsxTable is the root of xl/tables/table{N}.xml.
type xlsxTable struct {
	XMLName        xml.Name            `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main table"`
	ID             int                 `xml:"id,attr"`
	Name           string              `xml:"name,attr"`
	DisplayName    string              `xml:"displayName,attr"`
	Ref            string              `xml:"ref,attr"`
	TotalsRowCount *int                `xml:"totalsRowCount,attr,omitempty"`
	TotalsRowShown *int                `xml:"totalsRowShown,attr,omitempty"`
	AutoFilter     *xlsxAutoFilter     `xml:"autoFilter,omitempty"`
	TableColumns   xlsxTableColumns    `xml:"tableColumns"`
	TableStyleInfo *xlsxTableStyleInfo `xml:"tableStyleInfo,omitempty"`
}

type xlsxAutoFilter struct {
	Ref string `xml:"ref,attr"`
}

type xlsxTableColumns struct {
	Count int               `xml:"count,attr"`
	Items []xlsxTableColumn `xml:"tableColumn"`
}

type xlsxTableColumn struct {
	ID                      int              `xml:"id,attr"`
	Name                    string           `xml:"name,attr"`
	TotalsRowFunction       string           `xml:"totalsRowFunction,attr,omitempty"`
	TotalsRowLabel          string           `xml:"totalsRowLabel,attr,omitempty"`
	CalculatedColumnFormula *xlsxFormulaText `xml:"calculatedColumnFormula,omitempty"`
	TotalsRowFormula        *xlsxFormulaText `xml:"totalsRowFormula,omitempty"`
}

type xlsxFormulaText struct {
	Val string `xml:",chardata"`
}

type xlsxTableStyleInfo struct {
	Name              string `xml:"name,attr,omitempty"`
	ShowFirstColumn   int    `xml:"showFirstColumn,attr"`
	ShowLastColumn    int    `xml:"showLastColumn,attr"`
	ShowRowStripes    int    `xml:"showRowStripes,attr"`
	ShowColumnStripes int    `xml:"showColumnStripes,attr"`
}

// buildXML renders t into its xl/tables/table{N}.xml part and stores each
// total-row column's SUBTOTAL formula text in the column's TotalRowFormula.
// The worksheet assembler does not write that formula, or a total-row
// label, into the total-row cells; a table carries no cell values of its
// own.
func (t *Table) buildXML() (*xlsxTable, error) {
	minCol, minRow, maxCol, maxRow, err := ParseCellRange(t.Range)
	if err != nil {
		return nil, err
	}
	dataFirstRow := minRow
	if t.HeaderRowShown {
		dataFirstRow = minRow + 1
	}
	dataLastRow := maxRow
	if t.TotalRowShown {
		dataLastRow = maxRow - 1
	}

	out := &xlsxTable{
		ID:          t.index,
		Name:        t.Name,
		DisplayName: strings.ReplaceAll(t.Name, " ", "_"),
		Ref:         t.Range,
	}
	if t.TotalRowShown {
		out.TotalsRowCount = intPtr(1)
	} else {
		out.TotalsRowShown = intPtr(0)
	}
	if t.AutoFilter {
		filterRange := t.Range
		if t.TotalRowShown {
			filterRange, err = CellRange(minCol, minRow, maxCol, dataLastRow)
			if err != nil {
				return nil, err
			}
		}
		out.AutoFilter = &xlsxAutoFilter{Ref: filterRange}
	}
	out.TableStyleInfo = &xlsxTableStyleInfo{Name: t.StyleName}
	if t.FirstColumn {
		out.TableStyleInfo.ShowFirstColumn = 1
	}
	if t.LastColumn {
		out.TableStyleInfo.ShowLastColumn = 1
	}
	if t.BandedRows {
		out.TableStyleInfo.ShowRowStripes = 1
	}
	if t.BandedColumns {
		out.TableStyleInfo.ShowColumnStripes = 1
	}

	out.TableColumns.Count = len(t.Columns)
	for i := range t.Columns {
		col := &t.Columns[i]
		name := col.Name
		if name == "" {
			name = "Column" + strconv.Itoa(i+1)
			col.Name = name
		}
		tc := xlsxTableColumn{ID: i + 1, Name: name, TotalsRowLabel: col.TotalRowLabel}
		if col.Formula != "" {
			tc.CalculatedColumnFormula = &xlsxFormulaText{Val: col.Formula}
		}
		if col.TotalRowFunction != TotalNone && t.TotalRowShown {
			tc.TotalsRowFunction = totalRowFunctionNames[col.TotalRowFunction]
			formula, ferr := totalRowFormula(*col, dataFirstRow, dataLastRow, minCol+i)
			if ferr != nil {
				return nil, ferr
			}
			col.TotalRowFormula = formula
			if col.TotalRowFunction == TotalCustom {
				tc.TotalsRowFormula = &xlsxFormulaText{Val: formula}
			}
		}
		out.TableColumns.Items = append(out.TableColumns.Items, tc)
	}
	return out, nil
}

// totalRowFormula returns the SUBTOTAL formula text a table's total row
// writes for col, or col.TotalRowFormula verbatim when the column uses a
// custom total-row formula.
func totalRowFormula(col TableColumn, dataFirstRow, dataLastRow, colIndex int) (string, error) {
	if col.TotalRowFunction == TotalNone {
		return "", nil
	}
	if col.TotalRowFunction == TotalCustom {
		return col.TotalRowFormula, nil
	}
	num, ok := subtotalFuncNum[col.TotalRowFunction]
	if !ok {
		return "", nil
	}
	colName, err := ColumnNumberToName(colIndex)
	if err != nil {
		return "", err
	}
	rng := colName + strconv.Itoa(dataFirstRow+1) + ":" + colName + strconv.Itoa(dataLastRow+1)
	return "SUBTOTAL(" + strconv.Itoa(num) + "," + rng + ")", nil
}
