// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "encoding/xml"

// SparklineType selects the chart shape a sparkline group renders.
type SparklineType int

const (
	SparklineLine SparklineType = iota
	SparklineColumn
	SparklineWinLoss
)

func (t SparklineType) xmlValue() string {
	switch t {
	case SparklineColumn:
		return "column"
	case SparklineWinLoss:
		return "stacked"
	default:
		return "line"
	}
}

// Sparkline is one sparkline group: a shared style applied to a list of
// (location cell, data range) pairs, matching how Excel lets a single
// "Insert Sparklines" action fill several cells from several ranges at
// once.
type Sparkline struct {
	Locations []string // cell refs, one per Ranges entry
	Ranges    []string // `Sheet!A1:J1`-style data ranges, one per Locations entry
	Type      SparklineType

	ShowHigh, ShowLow, ShowFirst, ShowLast, ShowNegative, ShowMarkers, ShowAxis bool
	RightToLeft                                                                 bool

	// SeriesColor, NegativeColor, MarkersColor, FirstColor, LastColor,
	// HighColor, LowColor are "RRGGBB" strings; empty means Excel's default
	// palette for the group.
	SeriesColor, NegativeColor, MarkersColor string
	FirstColor, LastColor, HighColor, LowColor string
}

func (s *Sparkline) validate() error {
	if len(s.Locations) == 0 {
		return newErr(ErrParameter, "sparkline requires at least one location")
	}
	if len(s.Locations) != len(s.Ranges) {
		return newErr(ErrParameter, "sparkline has %d locations but %d ranges", len(s.Locations), len(s.Ranges))
	}
	return nil
}

const sparklineGroupsExtURI = "{05C60535-1F16-4fd2-B633-F4F36F0B64E0}"
const x14NS = "http://schemas.microsoft.com/office/spreadsheetml/2009/9/main"
const xmNS = "http://schemas.microsoft.com/office/excel/2006/main"

type xlsxExtLst struct {
	Ext []xlsxExt `xml:"ext"`
}

type xlsxExt struct {
	URI      string `xml:"uri,attr"`
	XmlnsX14 string `xml:"xmlns:x14,attr,omitempty"`
	Content  string `xml:",innerxml"`
}

type xlsxX14SparklineGroups struct {
	XMLName xml.Name               `xml:"x14:sparklineGroups"`
	XmlnsXM string                 `xml:"xmlns:xm,attr"`
	Groups  []*xlsxX14SparklineGroup `xml:"x14:sparklineGroup"`
}

type xlsxX14SparklineGroup struct {
	Type                string           `xml:"type,attr,omitempty"`
	DisplayEmptyCellsAs string           `xml:"displayEmptyCellsAs,attr,omitempty"`
	High                bool             `xml:"high,attr,omitempty"`
	Low                 bool             `xml:"low,attr,omitempty"`
	First               bool             `xml:"first,attr,omitempty"`
	Last                bool             `xml:"last,attr,omitempty"`
	Negative            bool             `xml:"negative,attr,omitempty"`
	Markers             bool             `xml:"markers,attr,omitempty"`
	DisplayXAxis        bool             `xml:"displayXAxis,attr,omitempty"`
	RightToLeft         bool             `xml:"rightToLeft,attr,omitempty"`
	ColorSeries         *xlsxSparkColor  `xml:"x14:colorSeries,omitempty"`
	ColorNegative       *xlsxSparkColor  `xml:"x14:colorNegative,omitempty"`
	ColorAxis           *xlsxSparkColor  `xml:"x14:colorAxis,omitempty"`
	ColorMarkers        *xlsxSparkColor  `xml:"x14:colorMarkers,omitempty"`
	ColorFirst          *xlsxSparkColor  `xml:"x14:colorFirst,omitempty"`
	ColorLast           *xlsxSparkColor  `xml:"x14:colorLast,omitempty"`
	ColorHigh           *xlsxSparkColor  `xml:"x14:colorHigh,omitempty"`
	ColorLow            *xlsxSparkColor  `xml:"x14:colorLow,omitempty"`
	Sparklines          xlsxX14Sparklines `xml:"x14:sparklines"`
}

type xlsxSparkColor struct {
	RGB string `xml:"rgb,attr,omitempty"`
}

type xlsxX14Sparklines struct {
	Sparkline []xlsxX14Sparkline `xml:"x14:sparkline"`
}

type xlsxX14Sparkline struct {
	F     string `xml:"xm:f"`
	Sqref string `xml:"xm:sqref"`
}

func sparkColor(rgb string) *xlsxSparkColor {
	if rgb == "" {
		return nil
	}
	return &xlsxSparkColor{RGB: "FF" + rgb}
}

func (s *Sparkline) buildGroup() *xlsxX14SparklineGroup {
	g := &xlsxX14SparklineGroup{
		Type:                s.Type.xmlValue(),
		DisplayEmptyCellsAs: "gap",
		High:                s.ShowHigh,
		Low:                 s.ShowLow,
		First:               s.ShowFirst,
		Last:                s.ShowLast,
		Negative:            s.ShowNegative,
		Markers:             s.ShowMarkers,
		DisplayXAxis:        s.ShowAxis,
		RightToLeft:         s.RightToLeft,
		ColorSeries:         sparkColor(s.SeriesColor),
		ColorNegative:       sparkColor(s.NegativeColor),
		ColorMarkers:        sparkColor(s.MarkersColor),
		ColorFirst:          sparkColor(s.FirstColor),
		ColorLast:           sparkColor(s.LastColor),
		ColorHigh:           sparkColor(s.HighColor),
		ColorLow:            sparkColor(s.LowColor),
	}
	for i, loc := range s.Locations {
		g.Sparklines.Sparkline = append(g.Sparklines.Sparkline, xlsxX14Sparkline{F: s.Ranges[i], Sqref: loc})
	}
	return g
}

// buildSparklineExtLst folds every sparkline group registered on a
// worksheet into the single `<extLst>` child ECMA-376 reserves for
// post-2007 extensions. A worksheet with no sparklines gets no `<extLst>`
// at all.
func buildSparklineExtLst(sparklines []*Sparkline) (*xlsxExtLst, error) {
	if len(sparklines) == 0 {
		return nil, nil
	}
	groups := &xlsxX14SparklineGroups{XmlnsXM: xmNS}
	for _, s := range sparklines {
		groups.Groups = append(groups.Groups, s.buildGroup())
	}
	body, err := xml.Marshal(groups)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "marshal sparkline groups")
	}
	return &xlsxExtLst{Ext: []xlsxExt{{
		URI:      sparklineGroupsExtURI,
		XmlnsX14: x14NS,
		Content:  string(body),
	}}}, nil
}
