// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"bytes"
	"io"

	"github.com/richardlehane/mscfb"
)

// validateVBAProject confirms data is a structurally valid OLE2/Compound
// File Binary container, the format vbaProject.bin is stored in. It walks
// the container's stream directory without interpreting any VBA module
// bytes; parsing macro source or p-code is out of this package's scope.
func validateVBAProject(data []byte) error {
	r, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return newErr(ErrVBAProject, "vba project is not a valid OLE2 container: %v", err)
	}
	for {
		_, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return newErr(ErrVBAProject, "vba project stream directory is corrupt: %v", err)
		}
	}
}
