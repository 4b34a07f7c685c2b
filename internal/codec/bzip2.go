// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "compress/bzip2"

// bzip2Decompress decompresses a REPLACE_BZ operation's buffer. The stdlib
// decoder (used the same way in mantle's util.Bunzip2) is the right tool
// here: Go ships no third-party bzip2 decoder in the retrieved examples,
// and compress/bzip2 is read-only, which is all this direction needs (see
// DESIGN.md).
func bzip2Decompress(compressed []byte, expected int) ([]byte, error) {
	r := bzip2.NewReader(newByteReader(compressed))
	return readExact(r, expected)
}
