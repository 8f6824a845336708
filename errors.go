// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "fmt"

// ErrorKind classifies an XlsxError so callers can branch with errors.Is
// without string-matching messages.
type ErrorKind int

// Error kinds, one per class of recoverable failure this package surfaces.
const (
	ErrUnknown ErrorKind = iota
	ErrSheetNameBlank
	ErrSheetNameLength
	ErrSheetNameInvalidChar
	ErrSheetNameApostrophe
	ErrSheetNameReused
	ErrRowColumnLimit
	ErrRowColumnOrder
	ErrMergeRangeSingleCell
	ErrMergeRangeOverlap
	ErrMaxStringLength
	ErrMaxURLLength
	ErrUnknownURLType
	ErrParameter
	ErrDateTimeRange
	ErrDateTimeParse
	ErrTable
	ErrTableNameReused
	ErrTheme
	ErrConditionalFormat
	ErrDataValidation
	ErrChart
	ErrIO
	ErrVBAProject
)

var errorKindNames = map[ErrorKind]string{
	ErrUnknown:              "unknown",
	ErrSheetNameBlank:       "SheetnameCannotBeBlank",
	ErrSheetNameLength:      "SheetnameLengthExceeded",
	ErrSheetNameInvalidChar: "SheetnameContainsInvalidCharacter",
	ErrSheetNameApostrophe:  "SheetnameStartsOrEndsWithApostrophe",
	ErrSheetNameReused:      "SheetnameReused",
	ErrRowColumnLimit:       "RowColumnLimitError",
	ErrRowColumnOrder:       "RowColumnOrderError",
	ErrMergeRangeSingleCell: "MergeRangeSingleCell",
	ErrMergeRangeOverlap:    "MergeRangeOverlaps",
	ErrMaxStringLength:      "MaxStringLengthExceeded",
	ErrMaxURLLength:         "MaxUrlLengthExceeded",
	ErrUnknownURLType:       "UnknownUrlType",
	ErrParameter:            "ParameterError",
	ErrDateTimeRange:        "DateTimeRangeError",
	ErrDateTimeParse:        "DateTimeParseError",
	ErrTable:                "TableError",
	ErrTableNameReused:      "TableNameReused",
	ErrTheme:                "ThemeError",
	ErrConditionalFormat:    "ConditionalFormatError",
	ErrDataValidation:       "DataValidationError",
	ErrChart:                "ChartError",
	ErrIO:                   "IOError",
	ErrVBAProject:           "VBAProjectError",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// XlsxError is the error type returned at the API boundary for every
// recoverable failure. It carries a Kind so callers can use errors.Is
// against the sentinel values below instead of matching on message text.
type XlsxError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *XlsxError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *XlsxError) Unwrap() error { return e.Err }

// Is reports whether target is an *XlsxError with the same Kind, so
// errors.Is(err, ErrSheetNameBlankErr) works against the sentinels below.
func (e *XlsxError) Is(target error) bool {
	t, ok := target.(*XlsxError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, format string, args ...interface{}) *XlsxError {
	return &XlsxError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapErr(kind ErrorKind, err error, format string, args ...interface{}) *XlsxError {
	return &XlsxError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Sentinel values usable with errors.Is(err, xlsxwriter.ErrSheetNameBlankErr).
var (
	ErrSheetNameBlankErr       = &XlsxError{Kind: ErrSheetNameBlank}
	ErrSheetNameLengthErr      = &XlsxError{Kind: ErrSheetNameLength}
	ErrSheetNameInvalidCharErr = &XlsxError{Kind: ErrSheetNameInvalidChar}
	ErrSheetNameApostropheErr  = &XlsxError{Kind: ErrSheetNameApostrophe}
	ErrSheetNameReusedErr      = &XlsxError{Kind: ErrSheetNameReused}
	ErrRowColumnLimitErr       = &XlsxError{Kind: ErrRowColumnLimit}
	ErrRowColumnOrderErr       = &XlsxError{Kind: ErrRowColumnOrder}
	ErrMergeRangeSingleCellErr = &XlsxError{Kind: ErrMergeRangeSingleCell}
	ErrMergeRangeOverlapErr    = &XlsxError{Kind: ErrMergeRangeOverlap}
	ErrMaxStringLengthErr      = &XlsxError{Kind: ErrMaxStringLength}
	ErrMaxURLLengthErr         = &XlsxError{Kind: ErrMaxURLLength}
	ErrUnknownURLTypeErr       = &XlsxError{Kind: ErrUnknownURLType}
	ErrTableNameReusedErr      = &XlsxError{Kind: ErrTableNameReused}
)
