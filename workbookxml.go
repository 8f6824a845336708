// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"encoding/xml"
	"sort"
	"strings"
)

const workbookNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// xlsxWorkbook is the root of xl/workbook.xml.
type xlsxWorkbook struct {
	XMLName       xml.Name            `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main workbook"`
	XmlnsR        string              `xml:"xmlns:r,attr"`
	FileVersion   *xlsxFileVersion    `xml:"fileVersion,omitempty"`
	WorkbookPr    *xlsxWorkbookPr     `xml:"workbookPr,omitempty"`
	BookViews     *xlsxBookViews      `xml:"bookViews,omitempty"`
	Sheets        xlsxSheetsEl        `xml:"sheets"`
	DefinedNames  *xlsxDefinedNames   `xml:"definedNames,omitempty"`
	CalcPr        *xlsxCalcPr         `xml:"calcPr,omitempty"`
}

type xlsxFileVersion struct {
	AppName      string `xml:"appName,attr"`
	LastEdited   string `xml:"lastEdited,attr,omitempty"`
	LowestEdited string `xml:"lowestEdited,attr,omitempty"`
	RupBuild     string `xml:"rupBuild,attr,omitempty"`
}

type xlsxWorkbookPr struct {
	CodeName     string `xml:"codeName,attr,omitempty"`
	Date1904     bool   `xml:"date1904,attr,omitempty"`
	DefaultThemeVersion string `xml:"defaultThemeVersion,attr,omitempty"`
}

type xlsxBookViews struct {
	WorkbookView []xlsxWorkbookView `xml:"workbookView"`
}

type xlsxWorkbookView struct {
	XWindow      int  `xml:"xWindow,attr"`
	YWindow      int  `xml:"yWindow,attr"`
	WindowWidth  int  `xml:"windowWidth,attr"`
	WindowHeight int  `xml:"windowHeight,attr"`
	MinimizedRecommended int  `xml:"minimized,attr,omitempty"`
}

type xlsxSheetsEl struct {
	Sheet []xlsxSheetEl `xml:"sheet"`
}

type xlsxSheetEl struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	State   string `xml:"state,attr,omitempty"`
	RID     string `xml:"r:id,attr"`
}

type xlsxDefinedNames struct {
	DefinedName []xlsxDefinedNameEl `xml:"definedName"`
}

type xlsxDefinedNameEl struct {
	Name          string `xml:"name,attr"`
	LocalSheetID  *int   `xml:"localSheetId,attr,omitempty"`
	Formula       string `xml:",chardata"`
}

type xlsxCalcPr struct {
	CalcID      string `xml:"calcId,attr"`
	FullCalcOnLoad bool `xml:"fullCalcOnLoad,attr,omitempty"`
}

// buildWorkbookXML renders xl/workbook.xml. sheetRIDs maps each worksheet's
// index (creation order) to the relationship id the packager assigned it.
func buildWorkbookXML(wb *Workbook, sheetRIDs []string, readOnly bool) ([]byte, error) {
	minimized := 0
	if readOnly {
		minimized = 1
	}
	out := &xlsxWorkbook{
		XmlnsR: relationshipsNS,
		FileVersion: &xlsxFileVersion{AppName: "xlsxwriter"},
		WorkbookPr: &xlsxWorkbookPr{
			CodeName:            wb.vbaCodeName,
			DefaultThemeVersion: "124226",
		},
		BookViews: &xlsxBookViews{
			WorkbookView: []xlsxWorkbookView{{WindowWidth: 28800, WindowHeight: 16800, MinimizedRecommended: minimized}},
		},
		CalcPr: &xlsxCalcPr{CalcID: "999999", FullCalcOnLoad: true},
	}

	for i, sheet := range wb.Worksheets {
		state := ""
		if sheet.Hidden {
			state = "hidden"
		}
		out.Sheets.Sheet = append(out.Sheets.Sheet, xlsxSheetEl{
			Name:    sheet.Name,
			SheetID: i + 1,
			State:   state,
			RID:     sheetRIDs[i],
		})
	}

	if len(wb.DefinedNames) > 0 {
		names := make([]DefinedName, len(wb.DefinedNames))
		copy(names, wb.DefinedNames)
		sort.SliceStable(names, func(i, j int) bool {
			bi, bj := strings.HasPrefix(names[i].Name, "_xlnm."), strings.HasPrefix(names[j].Name, "_xlnm.")
			if bi != bj {
				return bi
			}
			return false
		})
		dn := &xlsxDefinedNames{}
		for _, n := range names {
			el := xlsxDefinedNameEl{Name: n.Name, Formula: n.Formula}
			if n.SheetIndex >= 0 {
				id := n.SheetIndex
				el.LocalSheetID = &id
			}
			dn.DefinedName = append(dn.DefinedName, el)
		}
		out.DefinedNames = dn
	}

	body, err := xml.Marshal(out)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal xl/workbook.xml")
	}
	return append([]byte(XMLHeader), body...), nil
}
