// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVBAProjectRejectsGarbage(t *testing.T) {
	assert.Error(t, validateVBAProject([]byte("not an ole2 container")))
	assert.Error(t, validateVBAProject(nil))
}

func TestValidateVBAProjectRejectsHeaderOnlyCFB(t *testing.T) {
	// Just the 512-byte header with the OLE2 magic signature and no
	// directory sectors: the signature alone does not make a readable
	// stream directory, so validation fails.
	header := make([]byte, 512)
	copy(header, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	err := validateVBAProject(header)
	assert.Error(t, err, "a header-only blob with no directory sector is still structurally incomplete")
}
