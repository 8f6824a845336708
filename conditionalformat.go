// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

// ConditionalFormatCellCriteria selects the comparison a
// ConditionalFormatCell rule applies.
type ConditionalFormatCellCriteria int

const (
	CellEqualTo ConditionalFormatCellCriteria = iota
	CellNotEqualTo
	CellGreaterThan
	CellGreaterThanOrEqualTo
	CellLessThan
	CellLessThanOrEqualTo
	CellBetween
	CellNotBetween
)

func (c ConditionalFormatCellCriteria) xmlValue() string {
	switch c {
	case CellEqualTo:
		return "equal"
	case CellNotEqualTo:
		return "notEqual"
	case CellGreaterThan:
		return "greaterThan"
	case CellGreaterThanOrEqualTo:
		return "greaterThanOrEqual"
	case CellLessThan:
		return "lessThan"
	case CellLessThanOrEqualTo:
		return "lessThanOrEqual"
	case CellBetween:
		return "between"
	case CellNotBetween:
		return "notBetween"
	}
	return ""
}

// AverageCriteria selects the variant of an above/below-average rule.
type AverageCriteria int

const (
	AboveAverage AverageCriteria = iota
	BelowAverage
	EqualOrAboveAverage
	EqualOrBelowAverage
	OneStdDevAbove
	OneStdDevBelow
	TwoStdDevAbove
	TwoStdDevBelow
	ThreeStdDevAbove
	ThreeStdDevBelow
)

func (c AverageCriteria) xmlType() string {
	switch c {
	case BelowAverage, EqualOrBelowAverage, OneStdDevBelow, TwoStdDevBelow, ThreeStdDevBelow:
		return "belowAverage"
	default:
		return "aboveAverage"
	}
}

func (c AverageCriteria) stdDev() int {
	switch c {
	case OneStdDevAbove, OneStdDevBelow:
		return 1
	case TwoStdDevAbove, TwoStdDevBelow:
		return 2
	case ThreeStdDevAbove, ThreeStdDevBelow:
		return 3
	}
	return 0
}

func (c AverageCriteria) equalOrStrict() bool {
	return c == EqualOrAboveAverage || c == EqualOrBelowAverage
}

// TextCriteria selects the substring test a text rule applies.
type TextCriteria int

const (
	TextContains TextCriteria = iota
	TextNotContains
	TextBeginsWith
	TextEndsWith
)

// TimePeriod selects a rolling calendar window for a time-period rule.
type TimePeriod int

const (
	PeriodYesterday TimePeriod = iota
	PeriodToday
	PeriodTomorrow
	PeriodLast7Days
	PeriodLastWeek
	PeriodThisWeek
	PeriodNextWeek
	PeriodLastMonth
	PeriodThisMonth
	PeriodNextMonth
)

var timePeriodNames = map[TimePeriod]string{
	PeriodYesterday: "yesterday", PeriodToday: "today", PeriodTomorrow: "tomorrow",
	PeriodLast7Days: "last7Days", PeriodLastWeek: "lastWeek", PeriodThisWeek: "thisWeek",
	PeriodNextWeek: "nextWeek", PeriodLastMonth: "lastMonth", PeriodThisMonth: "thisMonth",
	PeriodNextMonth: "nextMonth",
}

// IconSetStyle selects an icon-set rule's glyph family.
type IconSetStyle int

const (
	IconSet3TrafficLights IconSetStyle = iota
	IconSet3Arrows
	IconSet3Flags
	IconSet3Symbols
	IconSet4Arrows
	IconSet4RedToBlack
	IconSet5Arrows
	IconSet5Ratings
)

var iconSetNames = map[IconSetStyle]string{
	IconSet3TrafficLights: "3TrafficLights1", IconSet3Arrows: "3Arrows",
	IconSet3Flags: "3Flags", IconSet3Symbols: "3Symbols",
	IconSet4Arrows: "4Arrows", IconSet4RedToBlack: "4RedToBlack",
	IconSet5Arrows: "5Arrows", IconSet5Ratings: "5Ratings",
}

// ConditionalFormatRule is the sum type of every conditional-format rule
// kind a worksheet range can carry. The kind field selects the rule kind;
// value fields are populated depending on which constructor produced it.
type ConditionalFormatRule struct {
	kind string // discriminant: "cell", "duplicateValues", "uniqueValues", "average", ...

	cellCriteria ConditionalFormatCellCriteria
	minimum      string
	maximum      string

	averageCriteria AverageCriteria

	topBottomPercent bool
	topBottomBottom  bool
	topBottomRank    int

	textCriteria TextCriteria
	textValue    string

	timePeriod TimePeriod

	formula string

	scaleMin, scaleMid, scaleMax *colorScalePoint

	dataBarColor Color
	dataBarMin   string
	dataBarMax   string

	iconStyle   IconSetStyle
	iconReverse bool

	Format      *Format
	StopIfTrue  bool
	MultiRange  string
}

type colorScalePoint struct {
	cfvoType string // "min", "max", "percentile", "percent", "num", "formula"
	value    string
	color    Color
}

func NewCellRule(criteria ConditionalFormatCellCriteria, value string, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "cell", cellCriteria: criteria, minimum: value, Format: f}
}

func NewCellBetweenRule(criteria ConditionalFormatCellCriteria, min, max string, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "cell", cellCriteria: criteria, minimum: min, maximum: max, Format: f}
}

func NewDuplicateRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "duplicateValues", Format: f}
}

func NewUniqueRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "uniqueValues", Format: f}
}

func NewAverageRule(criteria AverageCriteria, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "average", averageCriteria: criteria, Format: f}
}

func NewTopRule(rank int, percent bool, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "top10", topBottomRank: rank, topBottomPercent: percent, Format: f}
}

func NewBottomRule(rank int, percent bool, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "top10", topBottomRank: rank, topBottomPercent: percent, topBottomBottom: true, Format: f}
}

func NewTextRule(criteria TextCriteria, value string, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "text", textCriteria: criteria, textValue: value, Format: f}
}

func NewBlanksRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "containsBlanks", Format: f}
}

func NewNoBlanksRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "notContainsBlanks", Format: f}
}

func NewErrorsRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "containsErrors", Format: f}
}

func NewNoErrorsRule(f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "notContainsErrors", Format: f}
}

func NewTimePeriodRule(period TimePeriod, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "timePeriod", timePeriod: period, Format: f}
}

func NewFormulaRule(formula string, f *Format) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "expression", formula: formula, Format: f}
}

// NewColorScale2 builds a 2-color-scale rule interpolating minColor at the
// lowest value to maxColor at the highest.
func NewColorScale2(minColor, maxColor Color) ConditionalFormatRule {
	return ConditionalFormatRule{
		kind:     "colorScale",
		scaleMin: &colorScalePoint{cfvoType: "min", color: minColor},
		scaleMax: &colorScalePoint{cfvoType: "max", color: maxColor},
	}
}

// NewColorScale3 builds a 3-color-scale rule with a midpoint at the 50th
// percentile.
func NewColorScale3(minColor, midColor, maxColor Color) ConditionalFormatRule {
	return ConditionalFormatRule{
		kind:     "colorScale",
		scaleMin: &colorScalePoint{cfvoType: "min", color: minColor},
		scaleMid: &colorScalePoint{cfvoType: "percentile", value: "50", color: midColor},
		scaleMax: &colorScalePoint{cfvoType: "max", color: maxColor},
	}
}

// NewDataBarRule builds a data-bar rule spanning the range's min/max.
func NewDataBarRule(color Color) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "dataBar", dataBarColor: color}
}

// NewIconSetRule builds an icon-set rule. reverse flips the icon order.
func NewIconSetRule(style IconSetStyle, reverse bool) ConditionalFormatRule {
	return ConditionalFormatRule{kind: "iconSet", iconStyle: style, iconReverse: reverse}
}

// buildCfRule renders one rule into its `<cfRule>` XML element, assigning
// it dxfID via reg when it carries a Format. priority is the ascending,
// worksheet-unique rank the assembler hands out in insertion order.
func (r *ConditionalFormatRule) buildCfRule(reg *styleRegistry, priority int) (*xlsxCfRule, error) {
	cf := &xlsxCfRule{Type: r.kind, Priority: priority}
	if r.StopIfTrue {
		cf.StopIfTrue = boolPtr(true)
	}
	if r.Format != nil {
		id, err := reg.AddDxf(r.Format)
		if err != nil {
			return nil, err
		}
		cf.DxfID = &id
	}

	switch r.kind {
	case "cell":
		cf.Operator = r.cellCriteria.xmlValue()
		cf.Formula = append(cf.Formula, r.minimum)
		if r.cellCriteria == CellBetween || r.cellCriteria == CellNotBetween {
			cf.Formula = append(cf.Formula, r.maximum)
		}

	case "average":
		cf.Type = r.averageCriteria.xmlType()
		if n := r.averageCriteria.stdDev(); n > 0 {
			cf.StdDev = intPtr(n)
		}
		if r.averageCriteria.equalOrStrict() {
			cf.EqualAverage = boolPtr(true)
		}

	case "top10":
		if r.topBottomBottom {
			cf.Bottom = boolPtr(true)
		}
		cf.Rank = intPtr(r.topBottomRank)
		if r.topBottomPercent {
			cf.Percent = boolPtr(true)
		}

	case "text":
		switch r.textCriteria {
		case TextContains:
			cf.Type, cf.Operator = "containsText", "containsText"
		case TextNotContains:
			cf.Type, cf.Operator = "notContainsText", "notContains"
		case TextBeginsWith:
			cf.Type, cf.Operator = "beginsWith", "beginsWith"
		case TextEndsWith:
			cf.Type, cf.Operator = "endsWith", "endsWith"
		}
		cf.Text = r.textValue

	case "timePeriod":
		cf.TimePeriod = timePeriodNames[r.timePeriod]

	case "expression":
		cf.Formula = append(cf.Formula, r.formula)

	case "colorScale":
		cf.ColorScale = buildColorScale(r)

	case "dataBar":
		cf.DataBar = &xlsxDataBar{
			Cfvo: []xlsxCfvo{{Type: "min"}, {Type: "max"}},
			Color: []xlsxColor{*colorToXML(r.dataBarColor)},
		}

	case "iconSet":
		cf.IconSet = &xlsxIconSet{IconSet: iconSetNames[r.iconStyle], Reverse: r.iconReverse}
	}
	return cf, nil
}

func buildColorScale(r *ConditionalFormatRule) *xlsxColorScale {
	points := []*colorScalePoint{r.scaleMin}
	if r.scaleMid != nil {
		points = append(points, r.scaleMid)
	}
	points = append(points, r.scaleMax)
	cs := &xlsxColorScale{}
	for _, p := range points {
		cs.Cfvo = append(cs.Cfvo, xlsxCfvo{Type: p.cfvoType, Val: p.value})
		cs.Color = append(cs.Color, *colorToXML(p.color))
	}
	return cs
}

// xlsxConditionalFormatting is one `<conditionalFormatting sqref="...">`
// block of `<cfRule>` children grouped by primary range.
type xlsxConditionalFormatting struct {
	SQRef string        `xml:"sqref,attr"`
	Rules []*xlsxCfRule `xml:"cfRule"`
}

type xlsxCfRule struct {
	Type         string          `xml:"type,attr"`
	DxfID        *int            `xml:"dxfId,attr,omitempty"`
	Priority     int             `xml:"priority,attr"`
	StopIfTrue   *bool           `xml:"stopIfTrue,attr,omitempty"`
	Operator     string          `xml:"operator,attr,omitempty"`
	Text         string          `xml:"text,attr,omitempty"`
	TimePeriod   string          `xml:"timePeriod,attr,omitempty"`
	Rank         *int            `xml:"rank,attr,omitempty"`
	Bottom       *bool           `xml:"bottom,attr,omitempty"`
	Percent      *bool           `xml:"percent,attr,omitempty"`
	StdDev       *int            `xml:"stdDev,attr,omitempty"`
	EqualAverage *bool           `xml:"equalAverage,attr,omitempty"`
	Formula      []string        `xml:"formula,omitempty"`
	ColorScale   *xlsxColorScale `xml:"colorScale,omitempty"`
	DataBar      *xlsxDataBar    `xml:"dataBar,omitempty"`
	IconSet      *xlsxIconSet    `xml:"iconSet,omitempty"`
}

type xlsxColorScale struct {
	Cfvo  []xlsxCfvo  `xml:"cfvo"`
	Color []xlsxColor `xml:"color"`
}

type xlsxDataBar struct {
	Cfvo  []xlsxCfvo  `xml:"cfvo"`
	Color []xlsxColor `xml:"color"`
}

type xlsxIconSet struct {
	IconSet string `xml:"iconSet,attr,omitempty"`
	Reverse bool   `xml:"reverse,attr,omitempty"`
	Cfvo    []xlsxCfvo `xml:"cfvo"`
}

type xlsxCfvo struct {
	Type string `xml:"type,attr"`
	Val  string `xml:"val,attr,omitempty"`
}

// conditionalFormatGroup is one range's ordered rule list, as tracked by
// the worksheet before finalization assigns ascending priorities.
type conditionalFormatGroup struct {
	Range string
	Rules []ConditionalFormatRule
}

// buildConditionalFormatting renders every group into its XML blocks,
// assigning priorities in insertion order across the whole worksheet (not
// restarting per range), per the "ascending priority" invariant.
func buildConditionalFormatting(groups []conditionalFormatGroup, reg *styleRegistry) ([]*xlsxConditionalFormatting, error) {
	var out []*xlsxConditionalFormatting
	priority := 1
	for _, g := range groups {
		block := &xlsxConditionalFormatting{SQRef: g.Range}
		for i := range g.Rules {
			rule, err := g.Rules[i].buildCfRule(reg, priority)
			if err != nil {
				return nil, err
			}
			block.Rules = append(block.Rules, rule)
			priority++
		}
		out = append(out, block)
	}
	return out, nil
}
