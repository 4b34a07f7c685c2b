// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package ioreader_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatcar/payload-extract/internal/ioreader"
)

func rangeServer(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-Ranges", "bytes")
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Length", strconv.Itoa(len(data)))
			w.WriteHeader(http.StatusOK)
			return
		}

		rng := r.Header.Get("Range")
		if rng == "" {
			w.Header().Set("Content-Length", strconv.Itoa(len(data)))
			w.Write(data)
			return
		}

		var start, end int
		_, err := fmt.Sscanf(rng, "bytes=%d-%d", &start, &end)
		require.NoError(t, err)
		chunk := data[start : end+1]
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(data)))
		w.Header().Set("Content-Length", strconv.Itoa(len(chunk)))
		w.WriteHeader(http.StatusPartialContent)
		w.Write(chunk)
	}))
}

func TestHTTPBackendOpenReadsSize(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	srv := rangeServer(t, data)
	defer srv.Close()

	b, err := ioreader.OpenHTTP(srv.URL, "")
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, uint64(len(data)), b.Size())
}

func TestHTTPBackendReadAtRange(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	srv := rangeServer(t, data)
	defer srv.Close()

	b, err := ioreader.OpenHTTP(srv.URL, "custom-agent/1.0")
	require.NoError(t, err)
	defer b.Close()

	buf := make([]byte, 5)
	n, err := b.ReadAt(4, buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("quick"), buf)
	require.Equal(t, uint64(5), b.BytesDownloaded())
}

func TestHTTPBackendReadAtPastEnd(t *testing.T) {
	data := []byte("short")
	srv := rangeServer(t, data)
	defer srv.Close()

	b, err := ioreader.OpenHTTP(srv.URL, "")
	require.NoError(t, err)
	defer b.Close()

	buf := make([]byte, 4)
	n, err := b.ReadAt(100, buf)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestHTTPBackendOpenFailsOnNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ioreader.OpenHTTP(srv.URL, "")
	require.ErrorIs(t, err, ioreader.ErrTransport)
}
