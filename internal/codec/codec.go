// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec dispatches a compressed operation buffer to the
// decompressor named by its InstallOperation type (spec §4.4's table) and
// enforces that the decompressed size matches the destination extents'
// declared size exactly.
package codec

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/flatcar/payload-extract/internal/metadata"
)

// Decompress produces exactly `expected` bytes of plaintext from compressed
// according to opType, or an error. ZERO is not handled here: the executor
// never reads input bytes for a ZERO operation (spec §4.4 step 2).
func Decompress(opType metadata.InstallOperation_Type, compressed []byte, expected int) ([]byte, error) {
	switch opType {
	case metadata.InstallOperation_REPLACE:
		return replaceIdentity(compressed, expected)
	case metadata.InstallOperation_REPLACE_XZ:
		return xzDecompress(compressed, expected)
	case metadata.InstallOperation_REPLACE_BZ:
		return bzip2Decompress(compressed, expected)
	case metadata.InstallOperation_ZSTD:
		return zstdDecompress(compressed, expected)
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s", opType)
	}
}

func replaceIdentity(compressed []byte, expected int) ([]byte, error) {
	if len(compressed) != expected {
		return nil, errors.Wrapf(ErrSizeMismatch, "REPLACE: got %d bytes, want %d", len(compressed), expected)
	}
	return compressed, nil
}

// readExact fully drains r into a buffer of exactly `expected` bytes and
// confirms no trailing bytes remain, so a short or over-long decompression
// is always reported as ErrSizeMismatch rather than silently truncated.
func readExact(r io.Reader, expected int) ([]byte, error) {
	out := make([]byte, expected)
	n, err := io.ReadFull(r, out)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	if n != expected {
		return nil, errors.Wrapf(ErrSizeMismatch, "got %d bytes, want %d", n, expected)
	}

	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return nil, errors.Wrapf(ErrSizeMismatch, "decompressed output exceeds %d bytes", expected)
	}
	return out, nil
}

func newByteReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
