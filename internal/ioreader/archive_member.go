// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package ioreader

// ArchiveMemberBackend rewrites offsets into the absolute byte range of a
// stored (uncompressed) entry inside an archive backend. It inherits
// concurrent-safety from the backend it wraps.
type ArchiveMemberBackend struct {
	inner  Backend
	offset uint64
	size   uint64
}

// NewArchiveMemberBackend returns a Backend whose offset 0 corresponds to
// absolute offset `offset` in inner, and whose Size() is `size`. The
// archive locator (internal/archive) computes offset and size from the
// entry's local file header.
func NewArchiveMemberBackend(inner Backend, offset, size uint64) *ArchiveMemberBackend {
	return &ArchiveMemberBackend{inner: inner, offset: offset, size: size}
}

func (b *ArchiveMemberBackend) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset >= b.size {
		return 0, nil
	}
	want := buf
	if offset+uint64(len(buf)) > b.size {
		want = buf[:b.size-offset]
	}
	n, err := b.inner.ReadAt(b.offset+offset, want)
	return n, err
}

func (b *ArchiveMemberBackend) Size() uint64 { return b.size }

// Close is a no-op: the inner backend is owned and closed by its creator,
// not by the member view onto it.
func (b *ArchiveMemberBackend) Close() error { return nil }
