// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest is a from-scratch streaming SHA-256 implementation per
// FIPS 180-4. crypto/sha256 is deliberately not used: this package's whole
// job is implementing the standardized algorithm the spec names
// byte-for-byte (32-bit state, 64-byte block, big-endian bit-length
// suffix), so hand-rolling it is the one place in this repo where the
// domain itself is "implement this hash function" rather than "consume a
// library that already does."
package digest

import "encoding/binary"

// Size is the size, in bytes, of a SHA-256 checksum.
const Size = 32

const blockSize = 64

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Hasher is a streaming SHA-256 state. The zero value is not valid; use
// New.
type Hasher struct {
	state  [8]uint32
	buf    [blockSize]byte
	buflen int
	length uint64 // total bytes written, for the length suffix
}

// New returns a fresh Hasher.
func New() *Hasher {
	h := &Hasher{state: initState}
	return h
}

// Update feeds data into the hash. The result is identical regardless of
// how the input is split across calls.
func (h *Hasher) Update(data []byte) {
	h.length += uint64(len(data))

	if h.buflen > 0 {
		n := copy(h.buf[h.buflen:], data)
		h.buflen += n
		data = data[n:]
		if h.buflen == blockSize {
			h.block(h.buf[:])
			h.buflen = 0
		}
	}

	for len(data) >= blockSize {
		h.block(data[:blockSize])
		data = data[blockSize:]
	}

	if len(data) > 0 {
		h.buflen = copy(h.buf[:], data)
	}
}

// Finalize pads the message and returns the 32-byte digest. The Hasher
// must not be reused afterward.
func (h *Hasher) Finalize() [Size]byte {
	totalBits := h.length * 8

	// Append 0x80, then zero-pad so the length leaves exactly 8 bytes in
	// the last block(s), then the 64-bit big-endian bit length.
	h.Update([]byte{0x80})
	for h.buflen != blockSize-8 {
		h.Update([]byte{0})
	}
	// h.buflen == blockSize-8 here; append the 64-bit big-endian bit
	// length directly and process the final block, bypassing Update's
	// length accounting (the length has already been captured above).
	binary.BigEndian.PutUint64(h.buf[blockSize-8:], totalBits)
	h.block(h.buf[:])

	var out [Size]byte
	for i, s := range h.state {
		binary.BigEndian.PutUint32(out[i*4:], s)
	}
	return out
}

func rotr(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

// block processes exactly one 64-byte block, per FIPS 180-4 §6.2.2.
func (h *Hasher) block(p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h.state[0], h.state[1], h.state[2], h.state[3], h.state[4], h.state[5], h.state[6], h.state[7]

	for i := 0; i < 64; i++ {
		s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + k[i] + w[i]
		s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h.state[0] += a
	h.state[1] += b
	h.state[2] += c
	h.state[3] += d
	h.state[4] += e
	h.state[5] += f
	h.state[6] += g
	h.state[7] += hh
}

// Sum256 hashes data in one shot.
func Sum256(data []byte) [Size]byte {
	h := New()
	h.Update(data)
	return h.Finalize()
}
