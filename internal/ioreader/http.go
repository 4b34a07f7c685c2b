// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package ioreader

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/pkg/errors"
)

var plog = capnslog.NewPackageLogger("github.com/flatcar/payload-extract", "ioreader")

const (
	// RequestTimeout bounds a single ranged GET (spec §5: default 600s).
	RequestTimeout = 600 * time.Second
	// ConnectTimeout bounds the TCP handshake (spec §5: default 30s).
	ConnectTimeout = 30 * time.Second
	// MaxRedirects is the cap on followed redirects (spec §5: up to 10).
	MaxRedirects = 10

	// DefaultUserAgent identifies this tool when none is configured.
	DefaultUserAgent = "payload-extract/1.0"
)

// HTTPBackend is a Backend over a byte-range-addressable HTTP(S) resource.
// It holds at most one in-flight request: the embedded mutex serializes
// ReadAt so that callers never need to coordinate externally, at the cost
// of effectively serializing extraction on the wire when W > 1 (spec §5).
type HTTPBackend struct {
	mu sync.Mutex

	client    *http.Client
	url       string
	userAgent string
	size      uint64

	bytesDownloaded atomic.Uint64
}

// OpenHTTP issues a HEAD request to learn the resource's size and confirm
// the origin supports ranged GETs, per spec §6's HTTP contract.
func OpenHTTP(url, userAgent string) (*HTTPBackend, error) {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	b := &HTTPBackend{
		url:       url,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: ConnectTimeout}).DialContext,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("ioreader: stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		},
	}

	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ioreader: build HEAD request")
	}
	b.setCommonHeaders(req)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "HEAD %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrTransport, "HEAD %s: unexpected status %s", url, resp.Status)
	}
	if resp.ContentLength < 0 {
		return nil, errors.Wrapf(ErrTransport, "HEAD %s: missing Content-Length", url)
	}
	if resp.Header.Get("Accept-Ranges") != "bytes" {
		return nil, errors.Wrapf(ErrTransport, "HEAD %s: origin does not advertise Accept-Ranges: bytes", url)
	}

	b.size = uint64(resp.ContentLength)
	return b, nil
}

func (b *HTTPBackend) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("User-Agent", b.userAgent)
}

// ReadAt issues a ranged GET under the backend's mutex.
func (b *HTTPBackend) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset >= b.size {
		return 0, nil
	}
	length := uint64(len(buf))
	if offset+length > b.size {
		length = b.size - offset
		buf = buf[:length]
	}
	if length == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	req, err := http.NewRequest(http.MethodGet, b.url, nil)
	if err != nil {
		return 0, errors.Wrap(err, "ioreader: build GET request")
	}
	b.setCommonHeaders(req)
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", offset, offset+length-1))

	resp, err := b.client.Do(req)
	if err != nil {
		return 0, errors.Wrapf(ErrTransport, "GET %s: %v", b.url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
		// expected case.
	case http.StatusOK:
		if !(offset == 0 && length == b.size) {
			return 0, errors.Wrapf(ErrTransport, "GET %s: got 200 for a partial range", b.url)
		}
	default:
		return 0, errors.Wrapf(ErrTransport, "GET %s: unexpected status %s", b.url, resp.Status)
	}

	n, err := io.ReadFull(resp.Body, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return n, errors.Wrapf(ErrTransport, "GET %s: %v", b.url, err)
	}
	b.bytesDownloaded.Add(uint64(n))
	if uint64(n) != length {
		return n, ErrShortRead
	}
	return n, nil
}

func (b *HTTPBackend) Size() uint64 { return b.size }

// BytesDownloaded returns the cumulative count of response bytes read so
// far. It remains readable after Close.
func (b *HTTPBackend) BytesDownloaded() uint64 { return b.bytesDownloaded.Load() }

func (b *HTTPBackend) Close() error {
	if t, ok := b.client.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}
