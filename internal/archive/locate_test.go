// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package archive_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatcar/payload-extract/internal/archive"
	"github.com/flatcar/payload-extract/internal/fixture"
)

func buildZip(t *testing.T, entries map[string][]byte, compress bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		method := zip.Store
		if compress {
			method = zip.Deflate
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLocateFindsStoredPayload(t *testing.T) {
	payloadBytes := bytes.Repeat([]byte("PAYLOADCONTENT"), 100)
	zipBytes := buildZip(t, map[string][]byte{
		"metadata":    []byte("some metadata"),
		"payload.bin": payloadBytes,
	}, false)

	backend := &fixture.MemBackend{Data: zipBytes}
	member, err := archive.Locate(backend, archive.PayloadEntryName)
	require.NoError(t, err)
	require.Equal(t, uint64(len(payloadBytes)), member.Size())

	got := make([]byte, len(payloadBytes))
	n, err := member.ReadAt(0, got)
	require.NoError(t, err)
	require.Equal(t, len(payloadBytes), n)
	require.Equal(t, payloadBytes, got)
}

func TestLocateMissingEntry(t *testing.T) {
	zipBytes := buildZip(t, map[string][]byte{"other.bin": []byte("x")}, false)
	backend := &fixture.MemBackend{Data: zipBytes}

	_, err := archive.Locate(backend, archive.PayloadEntryName)
	require.ErrorIs(t, err, archive.ErrEntryMissing)
}

func TestLocateRejectsCompressedEntry(t *testing.T) {
	zipBytes := buildZip(t, map[string][]byte{
		"payload.bin": bytes.Repeat([]byte("compressible data "), 200),
	}, true)
	backend := &fixture.MemBackend{Data: zipBytes}

	_, err := archive.Locate(backend, archive.PayloadEntryName)
	require.ErrorIs(t, err, archive.ErrUnsupportedCompression)
}
