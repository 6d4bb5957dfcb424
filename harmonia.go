// Copyright (C) 2024 The HARMONIA-NG Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package harmonia implements HARMONIA-NG, a 256-bit ARX (Add/Rotate/Xor)
// Merkle-Damgard hash function built from a dual-stream, ChaCha-shaped
// quarter-round permutation with a Davies-Meyer feedforward. It has no
// cryptanalytic security claim; the contract it makes is reproducibility:
// for any input, the digest is bit-identical across platforms, endianness
// and the scalar/4-lane backends.
//
// Digest implements the standard library's hash.Hash shape and is safe to
// use anywhere a crypto/sha256-style streaming hash is expected:
//
//	d := harmonia.New()
//	d.Write(part1)
//	d.Write(part2)
//	sum := d.Sum(nil)
//
// Sum256 is the one-shot equivalent. Sum256X4 computes the digests of 4
// equal-length messages at once, using the lane-parallel backend in
// internal/lanes; it is a pure reorganization of the scalar algorithm, not
// a distinct primitive, and always agrees with Sum256 lane for lane.
package harmonia

import (
	"github.com/harmonia-ng/harmonia/internal/harmonia"
	"github.com/harmonia-ng/harmonia/internal/lanes"
)

// Size is the length, in bytes, of a HARMONIA-NG digest.
const Size = harmonia.Size

// BlockSize is HARMONIA-NG's block length, in bytes.
const BlockSize = harmonia.BlockSize

// Sum256 returns the HARMONIA-NG digest of data. It is equivalent to, but
// faster than, New().Write(data).Sum(nil).
func Sum256(data []byte) [Size]byte {
	g, c := harmonia.IV_G, harmonia.IV_C
	n := len(data)

	for len(data) >= BlockSize {
		var block [BlockSize]byte
		copy(block[:], data[:BlockSize])
		harmonia.Compress(&g, &c, &block)
		data = data[BlockSize:]
	}

	var buf [BlockSize]byte
	nbuf := copy(buf[:], data)
	buf[nbuf] = 0x80
	for i := nbuf + 1; i < BlockSize; i++ {
		buf[i] = 0
	}
	if nbuf+1 > BlockSize-8 {
		harmonia.Compress(&g, &c, &buf)
		buf = [BlockSize]byte{}
	}
	bitLen := uint64(n) * 8
	for i := 0; i < 8; i++ {
		buf[BlockSize-8+i] = byte(bitLen >> uint(56-8*i))
	}
	harmonia.Compress(&g, &c, &buf)

	var out [Size]byte
	harmonia.Finalize(g, c, &out)
	return out
}

// Sum256X4 computes the digests of 4 messages of equal length, lane by
// lane, in a single pass over the 4-way backend. It panics if the inputs
// are not all the same length: the lane-parallel backend only ever
// handles one shared padding and length field across all four lanes, and
// the infallible core pushes that validation to its caller (see the
// package's streaming front end for the scalar equivalent, which has no
// such restriction).
func Sum256X4(msgs [4][]byte) [4][Size]byte {
	n := len(msgs[0])
	total := n
	for _, m := range msgs {
		if len(m) != n {
			panic("harmonia: Sum256X4 requires all four messages to have equal length")
		}
	}

	state := lanes.InitState4()
	data := msgs

	for n >= BlockSize {
		var blocks [4]*[BlockSize]byte
		var storage [4][BlockSize]byte
		for k := 0; k < 4; k++ {
			copy(storage[k][:], data[k][:BlockSize])
			blocks[k] = &storage[k]
			data[k] = data[k][BlockSize:]
		}
		lanes.Compress4(&state, blocks)
		n -= BlockSize
	}

	var bufs [4][BlockSize]byte
	var blocks [4]*[BlockSize]byte
	for k := 0; k < 4; k++ {
		nbuf := copy(bufs[k][:], data[k])
		bufs[k][nbuf] = 0x80
		for i := nbuf + 1; i < BlockSize; i++ {
			bufs[k][i] = 0
		}
		blocks[k] = &bufs[k]
	}
	if n+1 > BlockSize-8 {
		lanes.Compress4(&state, blocks)
		bufs = [4][BlockSize]byte{} // blocks[k] still points at bufs[k], now zeroed
	}
	bitLen := uint64(total) * 8
	for k := 0; k < 4; k++ {
		for i := 0; i < 8; i++ {
			bufs[k][BlockSize-8+i] = byte(bitLen >> uint(56-8*i))
		}
	}
	lanes.Compress4(&state, blocks)

	var out [4][Size]byte
	var outPtrs [4]*[Size]byte
	for k := range out {
		outPtrs[k] = &out[k]
	}
	lanes.Finalize4(state, outPtrs)
	return out
}
