// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import "github.com/xuri/nfp"

// ValidateNumberFormatSyntax runs a custom number format code through a
// section parser and reports one that failed to parse into any section
// (unbalanced quoted literals, a dangling escape) before it is registered
// on a Format. Built-in codes never need this: they round-trip through
// builtinNumFmts by exact string match.
func ValidateNumberFormatSyntax(code string) error {
	if code == "" || code == "General" {
		return nil
	}
	if _, ok := builtinNumFmts[code]; ok {
		return nil
	}
	tokens := nfp.NewNumberFormatParser().Parse(code)
	if len(tokens) == 0 {
		return newErr(ErrParameter, "number format code %q did not parse into any sections", code)
	}
	return nil
}
