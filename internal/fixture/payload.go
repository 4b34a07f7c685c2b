// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package fixture

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/flatcar/payload-extract/internal/digest"
	"github.com/flatcar/payload-extract/internal/metadata"
)

// Extent is one contiguous destination block run, mirroring
// metadata.Extent.
type Extent struct {
	StartBlock uint64
	NumBlocks  uint64
}

// Op describes one synthetic install operation: Plaintext is compressed
// according to Type (ignored for ZERO) and placed in the payload's data
// region. StartBlock/NumBlocks describe its single destination extent; set
// Extents instead to build an operation spanning more than one, in which
// case StartBlock/NumBlocks are ignored and Plaintext is split across the
// extents in order, the same way executor.writeExtents lays decompressed
// data back out.
type Op struct {
	Type       metadata.InstallOperation_Type
	Plaintext  []byte
	StartBlock uint64
	NumBlocks  uint64
	Extents    []Extent
	// CorruptHash, if true, flips a byte of the stored digest so tests
	// can exercise the hash-mismatch path (spec §8 S4).
	CorruptHash bool
	// OmitHash skips storing a digest at all.
	OmitHash bool
}

// Partition describes one synthetic partition update.
type Partition struct {
	Name string
	Ops  []Op
}

// Payload is a built payload ready to be read back through internal/payload.
type Payload struct {
	Bytes      []byte
	Partitions map[string][]byte // partition name -> expected output image
}

// Build assembles a raw CrAU payload (no metadata signature block) from
// the given partitions.
func Build(partitions []Partition) (*Payload, error) {
	manifest := &metadata.DeltaArchiveManifest{}
	blockSize := uint32(4096)
	manifest.BlockSize = &blockSize

	var data bytes.Buffer
	expected := make(map[string][]byte)

	for _, part := range partitions {
		pu := &metadata.PartitionUpdate{}
		name := part.Name
		pu.PartitionName = &name

		var image bytes.Buffer
		for _, op := range part.Ops {
			iop := &metadata.InstallOperation{}
			t := op.Type
			iop.Type = &t

			extents := op.Extents
			if len(extents) == 0 {
				extents = []Extent{{StartBlock: op.StartBlock, NumBlocks: op.NumBlocks}}
			}

			var end uint64
			for _, e := range extents {
				iop.DstExtents = append(iop.DstExtents, &metadata.Extent{
					StartBlock: protoUint64(e.StartBlock),
					NumBlocks:  protoUint64(e.NumBlocks),
				})
				if e2 := (e.StartBlock + e.NumBlocks) * uint64(blockSize); e2 > end {
					end = e2
				}
			}
			if uint64(image.Len()) < end {
				image.Write(make([]byte, end-uint64(image.Len())))
			}

			if op.Type == metadata.InstallOperation_ZERO {
				for _, e := range extents {
					start := e.StartBlock * uint64(blockSize)
					stop := start + e.NumBlocks*uint64(blockSize)
					copy(image.Bytes()[start:stop], make([]byte, e.NumBlocks*uint64(blockSize)))
				}
				pu.Operations = append(pu.Operations, iop)
				continue
			}

			compressed, err := compress(op.Type, op.Plaintext)
			if err != nil {
				return nil, err
			}

			offset := uint64(data.Len())
			length := uint64(len(compressed))
			data.Write(compressed)

			iop.DataOffset = &offset
			iop.DataLength = &length

			if !op.OmitHash {
				sum := digest.Sum256(compressed)
				if op.CorruptHash {
					sum[0] ^= 0xff
				}
				iop.DataSha256Hash = append([]byte(nil), sum[:]...)
			}

			var poff uint64
			for _, e := range extents {
				start := e.StartBlock * uint64(blockSize)
				n := e.NumBlocks * uint64(blockSize)
				copy(image.Bytes()[start:start+n], op.Plaintext[poff:poff+n])
				poff += n
			}

			pu.Operations = append(pu.Operations, iop)
		}

		pu.NewPartitionInfo = &metadata.PartitionInfo{}
		size := uint64(image.Len())
		pu.NewPartitionInfo.Size = &size

		manifest.Partitions = append(manifest.Partitions, pu)
		expected[name] = image.Bytes()
	}

	manifestBytes, err := manifest.Marshal()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString("CrAU")
	binary.Write(&out, binary.BigEndian, uint64(2))
	binary.Write(&out, binary.BigEndian, uint64(len(manifestBytes)))
	binary.Write(&out, binary.BigEndian, uint32(0)) // no metadata signature
	out.Write(manifestBytes)
	out.Write(data.Bytes())

	return &Payload{Bytes: out.Bytes(), Partitions: expected}, nil
}

func protoUint64(v uint64) *uint64 { return &v }

func compress(t metadata.InstallOperation_Type, plaintext []byte) ([]byte, error) {
	switch t {
	case metadata.InstallOperation_REPLACE:
		return plaintext, nil
	case metadata.InstallOperation_REPLACE_XZ:
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(plaintext); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case metadata.InstallOperation_REPLACE_BZ:
		return bzip2Compress(plaintext)
	case metadata.InstallOperation_ZSTD:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(plaintext, nil), nil
	default:
		return plaintext, nil
	}
}
