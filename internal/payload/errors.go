// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import "errors"

// Failure modes from spec §4.3.
var (
	ErrInvalidMagic       = errors.New("payload: invalid magic")
	ErrUnsupportedVersion = errors.New("payload: unsupported version")
	ErrTruncatedHeader    = errors.New("payload: truncated header")
	ErrManifestDecode     = errors.New("payload: manifest decode failed")
	ErrUnexpectedBlock    = errors.New("payload: unexpected block size")
)
