// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }
func u32(v uint32) *uint32 { return &v }
func str(v string) *string { return &v }
func opType(v InstallOperation_Type) *InstallOperation_Type { return &v }

func TestManifestRoundTrip(t *testing.T) {
	want := &DeltaArchiveManifest{
		BlockSize: u32(4096),
		Partitions: []*PartitionUpdate{
			{
				PartitionName: str("boot"),
				NewPartitionInfo: &PartitionInfo{
					Size: u64(8192),
				},
				Operations: []*InstallOperation{
					{
						Type:       opType(InstallOperation_REPLACE),
						DataOffset: u64(0),
						DataLength: u64(8192),
						DstExtents: []*Extent{
							{StartBlock: u64(0), NumBlocks: u64(2)},
						},
						DataSha256Hash: []byte{1, 2, 3, 4},
					},
				},
			},
		},
	}

	raw, err := want.Marshal()
	require.NoError(t, err)

	got := &DeltaArchiveManifest{}
	require.NoError(t, got.Unmarshal(raw))

	require.Equal(t, want.GetBlockSize(), got.GetBlockSize())
	require.Len(t, got.Partitions, 1)
	require.Equal(t, "boot", got.Partitions[0].GetPartitionName())
	require.Equal(t, uint64(8192), got.Partitions[0].GetNewPartitionInfo().GetSize())
	require.Len(t, got.Partitions[0].Operations, 1)
	op := got.Partitions[0].Operations[0]
	require.Equal(t, InstallOperation_REPLACE, op.GetType())
	require.Equal(t, uint64(8192), op.GetDataLength())
	require.Len(t, op.DstExtents, 1)
	require.Equal(t, uint64(2), op.DstExtents[0].GetNumBlocks())
	require.Equal(t, []byte{1, 2, 3, 4}, op.GetDataSha256Hash())
}

func TestUnknownFieldSkipped(t *testing.T) {
	e := &Extent{StartBlock: u64(1), NumBlocks: u64(1)}
	raw, err := e.Marshal()
	require.NoError(t, err)

	// Append an unrecognized length-delimited field (number 99).
	raw = encodeLenDelim(raw, 99, []byte("future-proofing"))

	got := &Extent{}
	require.NoError(t, got.Unmarshal(raw))
	require.Equal(t, uint64(1), got.GetStartBlock())
}
