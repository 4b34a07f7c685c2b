// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package ioreader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatcar/payload-extract/internal/ioreader"
)

func TestFileBackendReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := []byte("0123456789abcdef")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	b, err := ioreader.OpenFile(path)
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, uint64(len(content)), b.Size())

	buf := make([]byte, 4)
	n, err := b.ReadAt(4, buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("4567"), buf)
}

func TestFileBackendReadAtPastEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	b, err := ioreader.OpenFile(path)
	require.NoError(t, err)
	defer b.Close()

	buf := make([]byte, 4)
	n, err := b.ReadAt(100, buf)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestFileBackendShortReadNearEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	b, err := ioreader.OpenFile(path)
	require.NoError(t, err)
	defer b.Close()

	buf := make([]byte, 10)
	err = ioreader.ReadFull(b, 2, buf)
	require.ErrorIs(t, err, ioreader.ErrShortRead)
}
