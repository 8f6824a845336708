// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strings"

	"github.com/xuri/efp"
)

// Formula is a normalized formula string ready to be written into a `<f>`
// element: the leading `=` and any `{...}` array wrapper stripped, future
// functions given their `_xlfn.` (or `_xlfn._xlws.`) prefix, and table
// `[@...]` current-row references rewritten to their stored form.
type Formula struct {
	Text           string
	IsDynamicArray bool
}

// NewFormula parses a user-supplied formula string into its stored form,
// first rejecting one that fails ValidateFormulaSyntax.
// `_xlpm.` parameter markers inside LAMBDA bodies are not synthesized here:
// Excel requires the caller to spell LAMBDA parameter references with that
// prefix directly, the same way it requires a raw `_xlfn.` prefix on an
// already-escaped future function, so both are left untouched wherever they
// already appear in the input.
func NewFormula(raw string) (Formula, error) {
	s := raw
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	if err := ValidateFormulaSyntax(s); err != nil {
		return Formula{}, err
	}

	s = strings.TrimPrefix(s, "=")

	s, dynamic := escapeFutureFunctions(s)
	s = escapeTableFunctions(s)

	return Formula{Text: s, IsDynamicArray: dynamic}, nil
}

// ValidateFormulaSyntax runs raw through an Excel-grammar tokenizer and
// reports a malformed formula (unbalanced parentheses, a stray operator,
// an unterminated string) before it reaches a cell. It only classifies
// tokens; evaluating the formula is recalculation, out of this package's
// scope.
func ValidateFormulaSyntax(raw string) error {
	tokens := efp.ExcelParser().Parse(strings.TrimPrefix(raw, "="))
	for _, t := range tokens {
		if t.TType == efp.TokTypeUnknown {
			return newErr(ErrParameter, "formula contains an unrecognized token: %q", t.TValue)
		}
	}
	return nil
}

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.'
}

// escapeFutureFunctions walks s outside of quoted string literals, looking
// for bare function names that need an `_xlfn.` (or, for the two functions
// Excel moved into their own namespace, `_xlfn._xlws.`) prefix. A name
// already carrying a prefix reads back as a single identifier token (since
// `.` is part of the identifier character class) and therefore never
// matches the bare-name tables again, which makes the rewrite idempotent.
func escapeFutureFunctions(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s) + 16)
	dynamic := false
	n := len(s)
	i := 0
	for i < n {
		c := s[i]
		if c == '"' {
			j := skipStringLiteral(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if isIdentStart(c) {
			j := i
			for j < n && isIdentPart(s[j]) {
				j++
			}
			name := s[i:j]
			k := j
			for k < n && s[k] == ' ' {
				k++
			}
			if k < n && s[k] == '(' {
				upper := strings.ToUpper(name)
				switch {
				case dynamicArrayFunctions[upper]:
					dynamic = true
					if xlwsFunctions[upper] {
						b.WriteString("_xlfn._xlws.")
					} else {
						b.WriteString("_xlfn.")
					}
				case futureFunctions[upper]:
					b.WriteString("_xlfn.")
				}
			}
			b.WriteString(name)
			i = j
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), dynamic
}

// skipStringLiteral returns the index just past the double-quoted string
// literal starting at s[start] (which must be '"'), honoring Excel's `""`
// escaped-quote convention.
func skipStringLiteral(s string, start int) int {
	n := len(s)
	j := start + 1
	for j < n {
		if s[j] == '"' {
			if j+1 < n && s[j+1] == '"' {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return n
}

// escapeTableFunctions rewrites structured-table current-row references:
// `[@]` becomes `[#This Row],`, `[@Col]` becomes `[[#This Row],Col]`, and a
// bare `@` with no enclosing bracket becomes `[#This Row],` on its own.
// Occurrences inside quoted string literals are left untouched.
func escapeTableFunctions(s string) string {
	if !strings.Contains(s, "@") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	n := len(s)
	i := 0
	for i < n {
		c := s[i]
		if c == '"' {
			j := skipStringLiteral(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if c == '[' && i+1 < n && s[i+1] == '@' {
			end := matchTableRowRef(s, i)
			inner := s[i+2 : end-1]
			if inner == "" {
				b.WriteString("[#This Row],")
			} else {
				b.WriteString("[[#This Row],")
				b.WriteString(inner)
				b.WriteByte(']')
			}
			i = end
			continue
		}
		if c == '@' {
			b.WriteString("[#This Row],")
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// matchTableRowRef returns the index just past the `]` that closes the
// `[@` opening at s[start:start+2], honoring nested `[...]` column specs
// such as `[@[Column1]:[Column3]]`.
func matchTableRowRef(s string, start int) int {
	depth := 1
	n := len(s)
	i := start + 2
	for i < n {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return n
}

// dynamicArrayFunctions mark a formula as a dynamic-array formula (spilling,
// `cm="1"` cell metadata, `t="array"` on the stored `<f>`) in addition to
// getting the `_xlfn.` prefix.
var dynamicArrayFunctions = map[string]bool{
	"SEQUENCE": true, "SINGLE": true, "UNIQUE": true, "SORT": true,
	"RANDARRAY": true, "ANCHORARRAY": true, "SORTBY": true, "FILTER": true,
	"XMATCH": true, "XLOOKUP": true, "LAMBDA": true, "BYCOL": true,
	"BYROW": true, "CHOOSECOLS": true, "CHOOSEROWS": true, "DROP": true,
	"EXPAND": true, "HSTACK": true, "MAKEARRAY": true, "MAP": true,
	"REDUCE": true, "SCAN": true, "SWITCH": true, "TAKE": true,
	"TEXTSPLIT": true, "TOCOL": true, "TOROW": true, "VSTACK": true,
	"WRAPCOLS": true, "WRAPROWS": true,
}

// xlwsFunctions is the subset of dynamicArrayFunctions Excel moved into the
// `_xlws` sub-namespace instead of plain `_xlfn`.
var xlwsFunctions = map[string]bool{
	"FILTER": true,
	"SORT":   true,
}

// futureFunctions get the `_xlfn.` prefix but are not dynamic-array
// functions: they don't spill and carry no array metadata. A handful of
// similarly-named functions Excel shipped before the `_xlfn` scheme existed
// (ISO.CEILING, ECMA.CEILING, WORKDAY.INTL, NETWORKDAYS.INTL) are
// deliberately absent from this table.
var futureFunctions = map[string]bool{
	"COT": true, "CSC": true, "IFS": true, "LET": true, "PHI": true,
	"RRI": true, "SEC": true, "XOR": true, "ACOT": true, "BASE": true,
	"COTH": true, "CSCH": true, "DAYS": true, "IFNA": true, "SECH": true,
	"ACOTH": true, "BITOR": true, "F.INV": true, "GAMMA": true, "GAUSS": true,
	"IMAGE": true, "IMCOT": true, "IMCSC": true, "IMSEC": true, "IMTAN": true,
	"MUNIT": true, "SHEET": true, "T.INV": true, "VAR.P": true, "VAR.S": true,
	"ARABIC": true, "BITAND": true, "BITXOR": true, "CONCAT": true,
	"F.DIST": true, "F.TEST": true, "IMCOSH": true, "IMCSCH": true,
	"IMSECH": true, "IMSINH": true, "MAXIFS": true, "MINIFS": true,
	"SHEETS": true, "SKEW.P": true, "T.DIST": true, "T.TEST": true,
	"Z.TEST": true, "COMBINA": true, "DECIMAL": true,
	"RANK.EQ": true, "STDEV.P": true, "STDEV.S": true, "UNICHAR": true,
	"UNICODE": true, "BETA.INV": true, "F.INV.RT": true, "NORM.INV": true,
	"RANK.AVG": true, "T.INV.2T": true, "TEXTJOIN": true, "AGGREGATE": true,
	"BETA.DIST": true, "BINOM.INV": true, "BITLSHIFT": true,
	"BITRSHIFT": true, "CHISQ.INV": true, "F.DIST.RT": true,
	"FILTERXML": true, "GAMMA.INV": true, "ISFORMULA": true,
	"MODE.MULT": true, "MODE.SNGL": true, "NORM.DIST": true,
	"PDURATION": true, "T.DIST.2T": true, "T.DIST.RT": true,
	"ISOMITTED": true, "TEXTAFTER": true, "BINOM.DIST": true,
	"CHISQ.DIST": true, "CHISQ.TEST": true, "EXPON.DIST": true,
	"FLOOR.MATH": true, "GAMMA.DIST": true, "ISOWEEKNUM": true,
	"NORM.S.INV": true, "WEBSERVICE": true, "TEXTBEFORE": true,
	"ERF.PRECISE": true, "FORMULATEXT": true, "LOGNORM.INV": true,
	"NORM.S.DIST": true, "NUMBERVALUE": true, "QUERYSTRING": true,
	"ARRAYTOTEXT": true, "VALUETOTEXT": true, "CEILING.MATH": true,
	"CHISQ.INV.RT": true, "CONFIDENCE.T": true, "COVARIANCE.P": true,
	"COVARIANCE.S": true, "ERFC.PRECISE": true, "FORECAST.ETS": true,
	"HYPGEOM.DIST": true, "LOGNORM.DIST": true, "PERMUTATIONA": true,
	"POISSON.DIST": true, "QUARTILE.EXC": true, "QUARTILE.INC": true,
	"WEIBULL.DIST": true, "CHISQ.DIST.RT": true, "FLOOR.PRECISE": true,
	"NEGBINOM.DIST": true, "PERCENTILE.EXC": true, "PERCENTILE.INC": true,
	"CEILING.PRECISE": true, "CONFIDENCE.NORM": true,
	"FORECAST.LINEAR": true, "GAMMALN.PRECISE": true,
	"PERCENTRANK.EXC": true, "PERCENTRANK.INC": true,
	"BINOM.DIST.RANGE": true, "FORECAST.ETS.STAT": true,
	"FORECAST.ETS.CONFINT": true, "FORECAST.ETS.SEASONALITY": true,
}
