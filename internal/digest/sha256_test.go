// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum256KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	}

	for _, tc := range cases {
		sum := Sum256([]byte(tc.in))
		require.Equal(t, tc.want, hex.EncodeToString(sum[:]), "input %q", tc.in)
	}
}

func TestUpdateSplitIndependence(t *testing.T) {
	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte(i)
	}

	whole := Sum256(data)

	for _, chunkSize := range []int{1, 7, 64, 65, 1000} {
		h := New()
		for off := 0; off < len(data); off += chunkSize {
			end := off + chunkSize
			if end > len(data) {
				end = len(data)
			}
			h.Update(data[off:end])
		}
		require.Equal(t, whole, h.Finalize(), "chunk size %d", chunkSize)
	}
}
