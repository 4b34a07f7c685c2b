// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive finds the stored payload.bin entry inside an archive
// backend and exposes it as a logical byte range, grounded on the
// stored-entry-only extraction path other_examples/nekohasekai-payload-dumper-go
// uses (zip.NewReader + the stored entry's raw byte range).
package archive

import (
	"archive/zip"
	"io"

	"github.com/pkg/errors"

	"github.com/flatcar/payload-extract/internal/ioreader"
)

// PayloadEntryName is the only archive member this package ever looks for.
const PayloadEntryName = "payload.bin"

// ErrEntryMissing is returned when the archive has no payload.bin member.
var ErrEntryMissing = errors.New("archive: payload.bin not found")

// ErrUnsupportedCompression is returned when payload.bin is present but not
// stored (method 0). Random-access extraction requires stored entries.
var ErrUnsupportedCompression = errors.New("archive: payload.bin is not stored uncompressed")

// readerAtShim adapts an ioreader.Backend to io.ReaderAt so the stdlib
// archive/zip reader can parse the central directory over any of our three
// backend kinds, including ranged HTTP.
type readerAtShim struct {
	backend ioreader.Backend
}

func (s readerAtShim) ReadAt(buf []byte, off int64) (int, error) {
	n, err := s.backend.ReadAt(uint64(off), buf)
	if err != nil {
		return n, err
	}
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

// Locate parses backend as a ZIP archive and returns an I/O backend scoped
// to the named stored entry's byte range.
func Locate(backend ioreader.Backend, name string) (*ioreader.ArchiveMemberBackend, error) {
	size := backend.Size()
	zr, err := zip.NewReader(readerAtShim{backend}, int64(size))
	if err != nil {
		return nil, errors.Wrap(err, "archive: parse central directory")
	}

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, errors.Wrapf(ErrEntryMissing, "looking for %q", name)
	}
	if entry.Method != zip.Store {
		return nil, errors.Wrapf(ErrUnsupportedCompression, "%q has compression method %d", name, entry.Method)
	}

	offset, err := entry.DataOffset()
	if err != nil {
		return nil, errors.Wrapf(err, "archive: locate %q data", name)
	}

	return ioreader.NewArchiveMemberBackend(backend, uint64(offset), entry.CompressedSize64), nil
}
