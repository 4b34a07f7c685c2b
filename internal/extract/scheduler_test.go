// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatcar/payload-extract/internal/executor"
	"github.com/flatcar/payload-extract/internal/extract"
	"github.com/flatcar/payload-extract/internal/fixture"
	"github.com/flatcar/payload-extract/internal/metadata"
	"github.com/flatcar/payload-extract/internal/payload"
	"github.com/flatcar/payload-extract/internal/progress"
)

func samplePlaintext(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(int(seed) + i)
	}
	return b
}

func TestSelectFiltersAndPreservesOrder(t *testing.T) {
	all := []*metadata.PartitionUpdate{
		fixtureUpdate("boot"),
		fixtureUpdate("system"),
		fixtureUpdate("vendor"),
	}

	got, err := extract.Select(all, []string{"vendor", "boot"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "boot", got[0].GetPartitionName())
	require.Equal(t, "vendor", got[1].GetPartitionName())
}

func TestSelectEmptyNamesReturnsAll(t *testing.T) {
	all := []*metadata.PartitionUpdate{fixtureUpdate("boot"), fixtureUpdate("system")}
	got, err := extract.Select(all, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSelectUnknownNameFails(t *testing.T) {
	all := []*metadata.PartitionUpdate{fixtureUpdate("boot")}
	_, err := extract.Select(all, []string{"nonexistent"})
	require.ErrorIs(t, err, extract.ErrNoPartitionsSelected)
}

func fixtureUpdate(name string) *metadata.PartitionUpdate {
	n := name
	return &metadata.PartitionUpdate{PartitionName: &n}
}

func TestRunExtractsAllPartitionsConcurrently(t *testing.T) {
	built, err := fixture.Build([]fixture.Partition{
		{
			Name: "boot",
			Ops: []fixture.Op{
				{Type: metadata.InstallOperation_REPLACE, Plaintext: samplePlaintext(8192, 1), StartBlock: 0, NumBlocks: 2},
			},
		},
		{
			Name: "system",
			Ops: []fixture.Op{
				{Type: metadata.InstallOperation_REPLACE, Plaintext: samplePlaintext(4096, 2), StartBlock: 0, NumBlocks: 1},
				{Type: metadata.InstallOperation_ZERO, StartBlock: 1, NumBlocks: 1},
			},
		},
	})
	require.NoError(t, err)

	backend := &fixture.MemBackend{Data: built.Bytes}
	p, err := payload.Open(backend)
	require.NoError(t, err)

	parts, err := extract.Select(p.Partitions(), nil)
	require.NoError(t, err)

	dir := t.TempDir()
	err = extract.Run(backend, p.DataOffset, parts, dir, extract.Options{Concurrency: 2, Verify: true}, progress.Noop{})
	require.NoError(t, err)

	for name, want := range built.Partitions {
		got, err := os.ReadFile(filepath.Join(dir, name+".img"))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRunDrainsQueueAfterError(t *testing.T) {
	built, err := fixture.Build([]fixture.Partition{
		{
			Name: "good",
			Ops: []fixture.Op{
				{Type: metadata.InstallOperation_REPLACE, Plaintext: samplePlaintext(4096, 3), StartBlock: 0, NumBlocks: 1},
			},
		},
		{
			Name: "bad",
			Ops: []fixture.Op{
				{Type: metadata.InstallOperation_REPLACE, Plaintext: samplePlaintext(4096, 4), StartBlock: 0, NumBlocks: 1, CorruptHash: true},
			},
		},
	})
	require.NoError(t, err)

	backend := &fixture.MemBackend{Data: built.Bytes}
	p, err := payload.Open(backend)
	require.NoError(t, err)

	dir := t.TempDir()
	err = extract.Run(backend, p.DataOffset, p.Partitions(), dir, extract.Options{Concurrency: 2, Verify: true}, progress.Noop{})
	require.Error(t, err)
	require.ErrorIs(t, err, executor.ErrHashMismatch)

	// The good partition must still have been fully written even though the
	// bad one failed (the scheduler keeps draining the queue, spec §4.5).
	got, err := os.ReadFile(filepath.Join(dir, "good.img"))
	require.NoError(t, err)
	require.Equal(t, built.Partitions["good"], got)
}
