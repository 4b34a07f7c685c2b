// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixture builds small in-memory CrAU payloads for tests, the
// mirror image of internal/payload's parser. bzip2Compress is adapted from
// mantle's update/generator/bzip2.go, which shells out to an external
// compressor since Go's compress/bzip2 is decode-only.
package fixture

import (
	"bytes"
	"os"
	"os/exec"
)

// ErrCompressorNotFound is returned when neither lbzip2 nor bzip2 is on
// PATH; callers should skip the affected test rather than fail it.
var ErrCompressorNotFound = exec.ErrNotFound

func bzip2Compress(data []byte) ([]byte, error) {
	zipper, err := exec.LookPath("lbzip2")
	if err != nil {
		zipper, err = exec.LookPath("bzip2")
		if err != nil {
			return nil, ErrCompressorNotFound
		}
	}

	cmd := exec.Command(zipper, "-c")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}
