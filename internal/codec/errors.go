// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "errors"

// Failure modes from spec §4.4.
var (
	ErrUnsupportedOperation = errors.New("codec: unsupported operation type")
	ErrDecompressionFailed  = errors.New("codec: decompression failed")
	ErrSizeMismatch         = errors.New("codec: produced size does not match expected size")
)
