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

package harmonia

import "github.com/harmonia-ng/harmonia/internal/harmonia"

// Digest is the streaming HARMONIA-NG context: init, then any number of
// incremental writes, then one final sum. It implements the standard
// library's hash.Hash shape (Write/Sum/Reset/Size/BlockSize) so it drops
// into any code that already consumes a crypto/sha256-style hash.
//
// A Digest is exclusively owned by its caller during Write/Sum: distinct
// Digest values are fully independent and may be driven concurrently from
// separate goroutines without synchronization.
type Digest struct {
	g, c   [8]uint32
	buf    [harmonia.BlockSize]byte
	nbuf   int
	length uint64
}

// New returns a Digest initialized to HARMONIA-NG's starting state.
func New() *Digest {
	d := &Digest{}
	d.Reset()
	return d
}

// Reset restores the Digest to its initial state, discarding any bytes
// already written.
func (d *Digest) Reset() {
	d.g = harmonia.IV_G
	d.c = harmonia.IV_C
	d.nbuf = 0
	d.length = 0
}

// Size returns the number of bytes Sum will append: 32.
func (d *Digest) Size() int { return harmonia.Size }

// BlockSize returns HARMONIA-NG's block size: 64.
func (d *Digest) BlockSize() int { return harmonia.BlockSize }

// Write absorbs p into the running hash. It never returns an error: the
// core is infallible for any byte sequence below the 2^61-byte length
// limit, beyond which the 64-bit bit-length field wraps.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.length += uint64(n)

	if d.nbuf > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf < harmonia.BlockSize {
			return n, nil
		}
		harmonia.Compress(&d.g, &d.c, &d.buf)
		d.nbuf = 0
	}

	for len(p) >= harmonia.BlockSize {
		var block [harmonia.BlockSize]byte
		copy(block[:], p[:harmonia.BlockSize])
		harmonia.Compress(&d.g, &d.c, &block)
		p = p[harmonia.BlockSize:]
	}

	d.nbuf = copy(d.buf[:], p)
	return n, nil
}

// Sum appends the current digest to b and returns the resulting slice. It
// does not mutate the receiver: callers may keep writing afterward.
func (d *Digest) Sum(b []byte) []byte {
	dup := *d
	var out [harmonia.Size]byte
	dup.final(&out)
	return append(b, out[:]...)
}

// final runs the padding, length encoding and finalization steps on a copy
// of the Digest's state. The receiver is consumed in the sense that its
// buffer no longer reflects a valid partial block afterward — callers only
// ever invoke this on the throwaway copy Sum makes.
func (d *Digest) final(out *[harmonia.Size]byte) {
	bitLen := d.length * 8

	d.buf[d.nbuf] = 0x80
	for i := d.nbuf + 1; i < harmonia.BlockSize; i++ {
		d.buf[i] = 0
	}
	if d.nbuf+1 > harmonia.BlockSize-8 {
		harmonia.Compress(&d.g, &d.c, &d.buf)
		for i := range d.buf {
			d.buf[i] = 0
		}
	}

	for i := 0; i < 8; i++ {
		d.buf[harmonia.BlockSize-8+i] = byte(bitLen >> uint(56-8*i))
	}
	harmonia.Compress(&d.g, &d.c, &d.buf)

	harmonia.Finalize(d.g, d.c, out)
}
