// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// zstdDecompress decompresses a ZSTD operation's frame, grounded on
// github.com/klauspost/compress (already in the retrieval pack's
// glycerine-rpc25519 dependency set) rather than a cgo binding.
func zstdDecompress(compressed []byte, expected int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	defer dec.Close()

	out, err := dec.DecodeAll(compressed, make([]byte, 0, expected))
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	if len(out) != expected {
		return nil, errors.Wrapf(ErrSizeMismatch, "got %d bytes, want %d", len(out), expected)
	}
	return out, nil
}
