// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package progress is the extraction progress collaborator (spec §6):
// init/update/finalize, internally synchronized and non-blocking relative
// to extraction.
package progress

// Collector receives extraction progress notifications. Implementations
// must be safe for concurrent calls to Update from multiple workers.
type Collector interface {
	// Init is called once with the selected partition names and each
	// partition's total operation count, in the same order.
	Init(names []string, opCounts []int)

	// Update reports that `completed` of `total` operations have finished
	// for partition name. Callers coalesce calls per spec §4.5 step 5
	// (on completion and every max(1, total/20) steps); Collector itself
	// does not need to coalesce further.
	Update(name string, completed, total int)

	// Finalize is called once after all workers have joined.
	Finalize()
}

// Noop discards all progress notifications; used by tests.
type Noop struct{}

func (Noop) Init([]string, []int)    {}
func (Noop) Update(string, int, int) {}
func (Noop) Finalize()               {}
