// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package ioreader

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileBackend is a Backend over an on-disk file. os.File.ReadAt is a
// positional pread(2) under the hood, so concurrent calls from multiple
// workers are safe and independent without any extra locking.
type FileBackend struct {
	f    *os.File
	size uint64
}

// OpenFile opens path and stats its size.
func OpenFile(path string) (*FileBackend, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ioreader: open file")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "ioreader: stat file")
	}
	return &FileBackend{f: f, size: uint64(info.Size())}, nil
}

func (b *FileBackend) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset >= b.size {
		return 0, nil
	}
	n, err := b.f.ReadAt(buf, int64(offset))
	if err == io.EOF {
		err = nil
	}
	return n, err
}

func (b *FileBackend) Size() uint64 { return b.size }

func (b *FileBackend) Close() error { return b.f.Close() }
