// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package executor

import "errors"

// Failure modes from spec §7's OperationError.
var (
	ErrInvalidOperation = errors.New("executor: invalid operation")
	ErrHashMismatch     = errors.New("executor: hash mismatch")
)
