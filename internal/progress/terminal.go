// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/coreos/ioprogress"
)

// Terminal is a Collector that draws one progress bar line per partition,
// redrawn in place. It adapts mantle's util.CopyProgress, which wraps a
// byte-oriented io.Reader in an ioprogress.Reader; here there is no byte
// stream to wrap, so the same ioprogress drawing primitives are driven
// directly from Update's operation counts instead.
type Terminal struct {
	out io.Writer

	mu    sync.Mutex
	draws map[string]ioprogress.DrawFunc
}

// NewTerminal returns a Collector that writes to os.Stderr.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stderr, draws: make(map[string]ioprogress.DrawFunc)}
}

func (t *Terminal) Init(names []string, opCounts []int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, name := range names {
		prefix := name
		barSize := int64(60 - len(prefix))
		if barSize < 8 {
			barSize = 8
		}
		bar := ioprogress.DrawTextFormatBarForW(barSize, t.out)
		n := name
		total := opCounts[i]
		fmtfunc := func(progress, _ int64) string {
			return fmt.Sprintf("%s: %s %d/%d ops", n, bar(progress, int64(total)), progress, total)
		}
		t.draws[name] = ioprogress.DrawTerminalf(t.out, fmtfunc)
	}
}

func (t *Terminal) Update(name string, completed, total int) {
	t.mu.Lock()
	draw := t.draws[name]
	t.mu.Unlock()

	if draw != nil {
		draw(int64(completed), int64(total))
	}
}

func (t *Terminal) Finalize() {
	fmt.Fprintln(t.out)
}
