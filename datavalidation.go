// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

// DataValidationType selects the class of value a validation rule
// constrains, or List/Custom/Any for the non-numeric forms Excel also
// supports.
type DataValidationType int

const (
	ValidateAny DataValidationType = iota
	ValidateWhole
	ValidateDecimal
	ValidateList
	ValidateDate
	ValidateTime
	ValidateTextLength
	ValidateCustom
)

func (t DataValidationType) xmlValue() string {
	switch t {
	case ValidateWhole:
		return "whole"
	case ValidateDecimal:
		return "decimal"
	case ValidateList:
		return "list"
	case ValidateDate:
		return "date"
	case ValidateTime:
		return "time"
	case ValidateTextLength:
		return "textLength"
	case ValidateCustom:
		return "custom"
	default:
		return ""
	}
}

// DataValidationOperator selects the comparison a validation rule applies
// between the cell value and formula1 (and formula2 for the Between
// variants).
type DataValidationOperator int

const (
	ValidationBetween DataValidationOperator = iota
	ValidationNotBetween
	ValidationEqualTo
	ValidationNotEqualTo
	ValidationGreaterThan
	ValidationGreaterThanOrEqualTo
	ValidationLessThan
	ValidationLessThanOrEqualTo
)

func (o DataValidationOperator) xmlValue() string {
	switch o {
	case ValidationBetween:
		return "between"
	case ValidationNotBetween:
		return "notBetween"
	case ValidationEqualTo:
		return "equal"
	case ValidationNotEqualTo:
		return "notEqual"
	case ValidationGreaterThan:
		return "greaterThan"
	case ValidationGreaterThanOrEqualTo:
		return "greaterThanOrEqual"
	case ValidationLessThan:
		return "lessThan"
	case ValidationLessThanOrEqualTo:
		return "lessThanOrEqual"
	}
	return ""
}

// DataValidationErrorStyle selects the dialog Excel shows on a rejected
// entry.
type DataValidationErrorStyle int

const (
	ErrorStyleStop DataValidationErrorStyle = iota
	ErrorStyleWarning
	ErrorStyleInformation
)

func (e DataValidationErrorStyle) xmlValue() string {
	switch e {
	case ErrorStyleWarning:
		return "warning"
	case ErrorStyleInformation:
		return "information"
	default:
		return "stop"
	}
}

// DataValidation is one worksheet data-validation rule, applied to one or
// more ranges (sqref).
type DataValidation struct {
	Sqref        string
	Type         DataValidationType
	Operator     DataValidationOperator
	Formula1     string
	Formula2     string
	IgnoreBlank  bool
	ShowDropDown bool // List type: show in-cell dropdown arrow
	InputTitle   string
	InputMessage string
	ShowInput    bool
	ErrorTitle   string
	ErrorMessage string
	ErrorStyle   DataValidationErrorStyle
	ShowError    bool
}

// NewDataValidation returns a DataValidation defaulting to ignore-blank and
// stop-on-error, matching Excel's own dialog defaults.
func NewDataValidation(sqref string) *DataValidation {
	return &DataValidation{Sqref: sqref, IgnoreBlank: true, ErrorStyle: ErrorStyleStop}
}

// SetRange configures a numeric/date/time/text-length range rule.
func (d *DataValidation) SetRange(typ DataValidationType, op DataValidationOperator, formula1, formula2 string) {
	d.Type = typ
	d.Operator = op
	d.Formula1 = formula1
	d.Formula2 = formula2
}

// SetList configures a dropdown-list rule. If source looks like a range
// reference it's used as-is (an external formula reference); otherwise it
// is taken to be a literal comma-separated list and quoted per the OOXML
// inline-list convention.
func (d *DataValidation) SetList(source string, showDropDown bool) {
	d.Type = ValidateList
	d.ShowDropDown = showDropDown
	if isCellRangeRef(source) {
		d.Formula1 = source
	} else {
		d.Formula1 = `"` + source + `"`
	}
}

// SetCustom configures an arbitrary boolean-formula rule.
func (d *DataValidation) SetCustom(formula string) {
	d.Type = ValidateCustom
	d.Formula1 = formula
}

// isCellRangeRef is a permissive heuristic: true when s looks like a cell
// or range reference (optionally sheet-qualified) rather than a literal
// value list.
func isCellRangeRef(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '$', r == ':', r == '!', r == '\'':
		default:
			return false
		}
	}
	return true
}

// xlsxDataValidations is the `<dataValidations>` child of a worksheet,
// holding every rule in user-insertion order.
type xlsxDataValidations struct {
	Count int                     `xml:"count,attr"`
	Items []*xlsxDataValidation   `xml:"dataValidation"`
}

type xlsxDataValidation struct {
	Type             string   `xml:"type,attr,omitempty"`
	Operator         string   `xml:"operator,attr,omitempty"`
	AllowBlank       int      `xml:"allowBlank,attr"`
	ShowDropDown     int      `xml:"showDropDown,attr,omitempty"`
	ShowInputMessage int      `xml:"showInputMessage,attr,omitempty"`
	ShowErrorMessage int      `xml:"showErrorMessage,attr,omitempty"`
	ErrorStyle       string   `xml:"errorStyle,attr,omitempty"`
	ErrorTitle       string   `xml:"errorTitle,attr,omitempty"`
	Error            string   `xml:"error,attr,omitempty"`
	PromptTitle      string   `xml:"promptTitle,attr,omitempty"`
	Prompt           string   `xml:"prompt,attr,omitempty"`
	Sqref            string   `xml:"sqref,attr"`
	Formula1         string   `xml:"formula1,omitempty"`
	Formula2         string   `xml:"formula2,omitempty"`
}

// buildDataValidations renders every rule into the worksheet's
// `<dataValidations>` block. Note that the `showDropDown` attribute is
// inverted in OOXML: the attribute means "suppress the arrow," so a rule
// that wants the dropdown visible (the common case) omits it, and a List
// rule with ShowDropDown=false must set it to 1.
func buildDataValidations(rules []*DataValidation) *xlsxDataValidations {
	if len(rules) == 0 {
		return nil
	}
	out := &xlsxDataValidations{Count: len(rules)}
	for _, d := range rules {
		item := &xlsxDataValidation{
			Type:     d.Type.xmlValue(),
			Sqref:    d.Sqref,
			Formula1: d.Formula1,
			Formula2: d.Formula2,
		}
		if d.IgnoreBlank {
			item.AllowBlank = 1
		}
		if d.Type == ValidateList && !d.ShowDropDown {
			item.ShowDropDown = 1
		}
		if d.Operator != ValidationBetween || d.Formula2 != "" {
			item.Operator = d.Operator.xmlValue()
		}
		if d.ShowInput {
			item.ShowInputMessage = 1
			item.PromptTitle = d.InputTitle
			item.Prompt = d.InputMessage
		}
		if d.ShowError {
			item.ShowErrorMessage = 1
			item.ErrorStyle = d.ErrorStyle.xmlValue()
			item.ErrorTitle = d.ErrorTitle
			item.Error = d.ErrorMessage
		}
		out.Items = append(out.Items, item)
	}
	return out
}
