// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package executor reads, decompresses, hash-verifies, and places one
// install operation's output into its destination extents (spec §4.4).
package executor

import (
	"os"

	"github.com/pkg/errors"

	"github.com/flatcar/payload-extract/internal/codec"
	"github.com/flatcar/payload-extract/internal/digest"
	"github.com/flatcar/payload-extract/internal/ioreader"
	"github.com/flatcar/payload-extract/internal/metadata"
	"github.com/flatcar/payload-extract/internal/payload"
)

// Run executes one InstallOperation against dst, reading compressed source
// bytes from backend at dataOffset+op.DataOffset. verify gates both hash
// computation (spec step 3: "unless hash verification is disabled") and
// the final comparison.
func Run(backend ioreader.Backend, dataOffset uint64, op *metadata.InstallOperation, dst *os.File, verify bool) error {
	extents := op.GetDstExtents()
	if len(extents) == 0 {
		return errors.Wrap(ErrInvalidOperation, "no destination extents")
	}
	expected := extentsByteLength(extents)

	if op.GetType() == metadata.InstallOperation_ZERO {
		return writeZero(dst, extents, expected)
	}

	length := op.GetDataLength()
	compressed := make([]byte, length)
	absolute := dataOffset + op.GetDataOffset()
	if err := ioreader.ReadFull(backend, absolute, compressed); err != nil {
		return errors.Wrap(err, "executor: read operation data")
	}

	var hasher *digest.Hasher
	if verify {
		hasher = digest.New()
		hasher.Update(compressed)
	}

	out, err := codec.Decompress(op.GetType(), compressed, int(expected))
	if err != nil {
		return errors.Wrap(err, "executor: decompress operation")
	}
	if uint64(len(out)) != expected {
		return errors.Wrapf(codec.ErrSizeMismatch, "got %d bytes, want %d", len(out), expected)
	}

	if hasher != nil && len(op.GetDataSha256Hash()) == digest.Size {
		sum := hasher.Finalize()
		want := op.GetDataSha256Hash()
		if !bytesEqual(sum[:], want) {
			return errors.Wrapf(ErrHashMismatch, "got %x, want %x", sum, want)
		}
	}

	return writeExtents(dst, extents, out)
}

func extentsByteLength(extents []*metadata.Extent) uint64 {
	var total uint64
	for _, e := range extents {
		total += e.GetNumBlocks() * payload.BlockSize
	}
	return total
}

// writeExtents splits data sequentially across extents in manifest order
// (spec §4.4 step 7 / design note on multi-extent output).
func writeExtents(dst *os.File, extents []*metadata.Extent, data []byte) error {
	var off uint64
	for _, e := range extents {
		n := e.GetNumBlocks() * payload.BlockSize
		if _, err := dst.WriteAt(data[off:off+n], int64(e.GetStartBlock()*payload.BlockSize)); err != nil {
			return errors.Wrap(err, "executor: write extent")
		}
		off += n
	}
	return nil
}

func writeZero(dst *os.File, extents []*metadata.Extent, expected uint64) error {
	zero := make([]byte, expected)
	return writeExtents(dst, extents, zero)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
