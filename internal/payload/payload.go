// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload decodes the payload.bin container: the fixed header, the
// protobuf manifest, and the optional metadata signature block, and
// exposes the absolute data offset operations are read relative to.
package payload

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pkg/errors"

	"github.com/flatcar/payload-extract/internal/ioreader"
	"github.com/flatcar/payload-extract/internal/metadata"
)

var plog = capnslog.NewPackageLogger("github.com/flatcar/payload-extract", "payload")

// Payload is a parsed payload.bin: a manifest plus the backend and data
// offset operations are read against.
type Payload struct {
	Backend    ioreader.Backend
	Manifest   *metadata.DeltaArchiveManifest
	Signatures *metadata.Signatures
	DataOffset uint64
}

// Open reads and decodes the header and manifest from backend. The backend
// is retained on the returned Payload and is not closed here; the caller
// owns its lifetime (spec §3 "Lifecycle").
func Open(backend ioreader.Backend) (*Payload, error) {
	hdrBuf := make([]byte, HeaderSize)
	if err := ioreader.ReadFull(backend, 0, hdrBuf); err != nil {
		return nil, errors.Wrap(ErrTruncatedHeader, err.Error())
	}
	hdr, err := decodeHeader(hdrBuf)
	if err != nil {
		return nil, err
	}

	manifestBuf := make([]byte, hdr.manifestLen)
	if err := ioreader.ReadFull(backend, HeaderSize, manifestBuf); err != nil {
		return nil, errors.Wrap(err, "payload: read manifest bytes")
	}

	manifest := &metadata.DeltaArchiveManifest{}
	if err := manifest.Unmarshal(manifestBuf); err != nil {
		return nil, errors.Wrap(ErrManifestDecode, err.Error())
	}
	if manifest.GetBlockSize() != BlockSize {
		return nil, errors.Wrapf(ErrUnexpectedBlock, "got %d, want %d", manifest.GetBlockSize(), BlockSize)
	}

	metadataSize := uint64(HeaderSize) + hdr.manifestLen
	p := &Payload{
		Backend:    backend,
		Manifest:   manifest,
		DataOffset: metadataSize + uint64(hdr.metadataSignatureLen),
	}

	if hdr.metadataSignatureLen > 0 {
		sigBuf := make([]byte, hdr.metadataSignatureLen)
		if err := ioreader.ReadFull(backend, metadataSize, sigBuf); err != nil {
			return nil, errors.Wrap(err, "payload: read metadata signature bytes")
		}
		sig := &metadata.Signatures{}
		if err := sig.Unmarshal(sigBuf); err != nil {
			// The signature block is read but never used to gate
			// extraction (spec §4.3, design note "No metadata-signature
			// verification"), so a malformed signature block is logged
			// and otherwise ignored rather than failing the parse.
			plog.Warningf("ignoring unparsable metadata signature block: %v", err)
		} else {
			p.Signatures = sig
		}
	}

	return p, nil
}

// Partitions returns the manifest's partition list.
func (p *Payload) Partitions() []*metadata.PartitionUpdate {
	return p.Manifest.GetPartitions()
}
