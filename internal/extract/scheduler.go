// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package extract is the extraction scheduler (spec §4.5): it fans
// partitions across workers, aggregates the first error, and drives the
// progress collaborator.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/coreos/pkg/capnslog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/flatcar/payload-extract/internal/executor"
	"github.com/flatcar/payload-extract/internal/ioreader"
	"github.com/flatcar/payload-extract/internal/metadata"
	"github.com/flatcar/payload-extract/internal/progress"
)

var plog = capnslog.NewPackageLogger("github.com/flatcar/payload-extract", "extract")

// Options configures a Run call.
type Options struct {
	// Concurrency is the number of workers (partitions in flight at
	// once). Zero means DefaultConcurrency().
	Concurrency int
	// Verify gates per-operation SHA-256 checking (spec §8's
	// --no-verify scenario).
	Verify bool
}

// DefaultConcurrency is the number of hardware threads, or 4 if that can't
// be determined (spec §4.5).
func DefaultConcurrency() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 4
}

// Select filters manifest partitions down to the requested names, in
// manifest order. An empty names list selects everything. An empty result
// is ErrNoPartitionsSelected.
func Select(all []*metadata.PartitionUpdate, names []string) ([]*metadata.PartitionUpdate, error) {
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []*metadata.PartitionUpdate
	for _, p := range all {
		if want[p.GetPartitionName()] {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoPartitionsSelected
	}
	return out, nil
}

type queue struct {
	mu    sync.Mutex
	items []*metadata.PartitionUpdate
}

func (q *queue) pop() *metadata.PartitionUpdate {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	p := q.items[0]
	q.items = q.items[1:]
	return p
}

// firstError captures only the first error reported to it; later errors
// are logged (by the caller) but never overwrite it (spec §7).
type firstError struct {
	mu  sync.Mutex
	err error
}

func (f *firstError) set(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
}

func (f *firstError) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Run extracts the selected partitions from backend into targetDir.
// partitions should already be the output of Select. It creates targetDir
// if absent, fans work across opts.Concurrency (or DefaultConcurrency())
// workers, and returns the first operation failure encountered, if any,
// after every worker has joined (spec §4.5 step 4).
func Run(backend ioreader.Backend, dataOffset uint64, partitions []*metadata.PartitionUpdate, targetDir string, opts Options, prog progress.Collector) error {
	if len(partitions) == 0 {
		return ErrNoPartitionsSelected
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return errors.Wrap(err, "extract: create target directory")
	}

	names := make([]string, len(partitions))
	opCounts := make([]int, len(partitions))
	for i, p := range partitions {
		names[i] = p.GetPartitionName()
		opCounts[i] = len(p.GetOperations())
	}
	prog.Init(names, opCounts)
	defer prog.Finalize()

	w := opts.Concurrency
	if w <= 0 {
		w = DefaultConcurrency()
	}

	q := &queue{items: append([]*metadata.PartitionUpdate(nil), partitions...)}
	failed := &firstError{}

	// errgroup is used purely for its goroutine/Wait bookkeeping: worker
	// always returns nil to the group so errgroup never cancels siblings
	// mid-drain. Actual failures are recorded in `failed`, per spec §4.5
	// step 4 ("continues draining the queue until empty" on any error).
	var eg errgroup.Group
	for i := 0; i < w; i++ {
		eg.Go(func() error {
			for {
				p := q.pop()
				if p == nil {
					return nil
				}
				if err := extractPartition(backend, dataOffset, p, targetDir, opts.Verify, prog); err != nil {
					wrapped := errors.Wrapf(err, "partition %s", p.GetPartitionName())
					if failed.get() == nil {
						plog.Errorf("%v", wrapped)
					} else {
						plog.Errorf("%v (additional failure)", wrapped)
					}
					failed.set(wrapped)
				}
			}
		})
	}
	_ = eg.Wait()

	return failed.get()
}

func extractPartition(backend ioreader.Backend, dataOffset uint64, p *metadata.PartitionUpdate, targetDir string, verify bool, prog progress.Collector) error {
	name := p.GetPartitionName()
	path := filepath.Join(targetDir, fmt.Sprintf("%s.img", name))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return errors.Wrapf(ErrOutputCreateFailed, "%s: %v", path, err)
	}
	defer f.Close()

	ops := p.GetOperations()
	total := len(ops)
	step := total / 20
	if step < 1 {
		step = 1
	}

	for i, op := range ops {
		if err := executor.Run(backend, dataOffset, op, f, verify); err != nil {
			return errors.Wrapf(err, "operation %d", i)
		}
		if i+1 == total || (i+1)%step == 0 {
			prog.Update(name, i+1, total)
		}
	}
	return nil
}
