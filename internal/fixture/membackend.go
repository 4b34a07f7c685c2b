// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package fixture

// MemBackend is an ioreader.Backend over an in-memory byte slice, standing
// in for FileBackend/HTTPBackend/ArchiveMemberBackend in tests that don't
// need a real file, archive, or HTTP server.
type MemBackend struct {
	Data []byte
}

func (b *MemBackend) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset >= uint64(len(b.Data)) {
		return 0, nil
	}
	n := copy(buf, b.Data[offset:])
	return n, nil
}

func (b *MemBackend) Size() uint64 { return uint64(len(b.Data)) }

func (b *MemBackend) Close() error { return nil }
