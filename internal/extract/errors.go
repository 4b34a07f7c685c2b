// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import "errors"

// Failure modes from spec §7's SchedulerError.
var (
	ErrNoPartitionsSelected = errors.New("extract: no partitions selected")
	ErrOutputCreateFailed   = errors.New("extract: output file create failed")
)
