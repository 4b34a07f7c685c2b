// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// xzDecompress decompresses an XZ/LZMA2 stream, grounded on
// mantle's util/xz.go, which already uses github.com/ulikunitz/xz for the
// same job against a file rather than an in-memory buffer.
func xzDecompress(compressed []byte, expected int) ([]byte, error) {
	r, err := xz.NewReader(newByteReader(compressed))
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	return readExact(r, expected)
}
