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

package lanes

import "github.com/harmonia-ng/harmonia/internal/harmonia"

// State4 is the lane-parallel equivalent of a pair of 8-word streams: for
// each of the 8 positions, one Vec4 carries the word for all 4 messages.
type State4 struct {
	G [8]Vec4
	C [8]Vec4
}

// InitState4 sets every lane of G and C to the scalar initial values.
func InitState4() State4 {
	var s State4
	for i := 0; i < 8; i++ {
		s.G[i] = Broadcast(harmonia.IV_G[i])
		s.C[i] = Broadcast(harmonia.IV_C[i])
	}
	return s
}

var rotationPatterns = func() [8][4]uint32 {
	// Mirrors internal/harmonia's rotationPatterns table; duplicated here
	// only because the lane variant needs the quadruple as plain uint32s
	// rather than the scalar package's unexported rotQuad struct. Values
	// must stay byte-for-byte identical to internal/harmonia.
	return [8][4]uint32{
		{12, 8, 16, 7},
		{11, 9, 13, 5},
		{8, 16, 7, 12},
		{16, 7, 12, 8},
		{7, 12, 8, 16},
		{13, 5, 11, 9},
		{9, 13, 5, 11},
		{5, 11, 9, 13},
	}
}()

var roundPattern = [harmonia.Rounds]uint8{
	0, 1, 2, 3, 1, 4, 1, 0,
	2, 5, 0, 4, 1, 0, 6, 3,
	0, 7, 0, 1, 2, 3, 1, 4,
	0, 1, 2, 5, 0, 4, 1, 0,
}

// Schedule4 parses and expands 4 equal-length 64-byte blocks, one per lane,
// into the 32-word lane schedule.
func Schedule4(blocks [4]*[harmonia.BlockSize]byte, w *[harmonia.ScheduleWords]Vec4) {
	for i := 0; i < 16; i++ {
		j := i * 4
		var v Vec4
		for k := 0; k < 4; k++ {
			b := blocks[k]
			v[k] = uint32(b[j])<<24 | uint32(b[j+1])<<16 | uint32(b[j+2])<<8 | uint32(b[j+3])
		}
		w[i] = v
	}

	for i := 16; i < harmonia.ScheduleWords; i++ {
		r1 := uint32(7 + i%5)
		r2 := uint32(17 + i%4)
		sigma0 := w[i-15].Rotr(r1).Xor(w[i-15].Rotr(r1 + 11)).Xor(w[i-15].Shr(3))
		sigma1 := w[i-2].Rotr(r2).Xor(w[i-2].Rotr(r2 + 2)).Xor(w[i-2].Shr(10))
		w[i] = w[i-16].Add(sigma0).Add(w[i-7]).Add(sigma1).Add(Broadcast(harmonia.FIB[i%12]))
	}
}

func quarterRound4(a, b, c, d *Vec4, q [4]uint32) {
	*a = a.Add(*b)
	*d = d.Xor(*a).Rotl(q[0])

	*c = c.Add(*d)
	*b = b.Xor(*c).Rotl(q[1])

	*a = a.Add(*b)
	*d = d.Xor(*a).Rotl(q[2])

	*c = c.Add(*d)
	*b = b.Xor(*c).Rotl(q[3])
}

func roundKernel4(s *[8]Vec4, q [4]uint32) {
	quarterRound4(&s[0], &s[1], &s[2], &s[3], q)
	quarterRound4(&s[4], &s[5], &s[6], &s[7], q)
	quarterRound4(&s[0], &s[5], &s[2], &s[7], q)
	quarterRound4(&s[4], &s[1], &s[6], &s[3], q)
}

// edgeProtect4 is the lane-parallel form of internal/harmonia.EdgeProtect.
func edgeProtect4(s *[8]Vec4, r int) {
	fib := Broadcast(harmonia.FIB[r%12] * 0x9E3779B9)
	s[0] = s[0].Rotr(7).Xor(fib)
	s[7] = s[7].Rotl(13).Xor(fib.Not())
	inter := s[0].Xor(s[7]).Shr(16)
	s[0] = s[0].Add(inter)
	s[7] = s[7].Add(inter)
}

// crossDiffuse4 is the lane-parallel form of internal/harmonia.CrossDiffuse.
func crossDiffuse4(g, c *[8]Vec4) {
	for i := 0; i < 8; i++ {
		t := g[i].Xor(c[(i+3)%8])
		g[i] = g[i].Add(t.Rotr(11))
		c[i] = c[i].Xor(t.Rotl(11))
	}
}

func round4(g, c *[8]Vec4, w *[harmonia.ScheduleWords]Vec4, r int) {
	q := rotationPatterns[roundPattern[r]]

	g[0] = g[0].Add(w[r])
	c[0] = c[0].Add(w[harmonia.ScheduleWords-1-r])

	g[4] = g[4].Xor(Broadcast(harmonia.PHI[r%16]))
	c[4] = c[4].Xor(Broadcast(harmonia.RECIP[r%16]))

	roundKernel4(g, q)
	roundKernel4(c, q)

	if (r+1)%4 == 0 {
		crossDiffuse4(g, c)
	}
	if (r+1)%8 == 0 {
		edgeProtect4(g, r)
		edgeProtect4(c, r)
	}
}

// Compress4 runs the 32-round ARX permutation over one 64-byte block from
// each of 4 messages, lane-parallel, folding the result back into state
// via Davies-Meyer feedforward — the vectorized twin of
// internal/harmonia.Compress.
func Compress4(state *State4, blocks [4]*[harmonia.BlockSize]byte) {
	var w [harmonia.ScheduleWords]Vec4
	Schedule4(blocks, &w)

	wg, wc := state.G, state.C
	for r := 0; r < harmonia.Rounds; r++ {
		round4(&wg, &wc, &w, r)
	}

	for i := 0; i < 8; i++ {
		state.G[i] = state.G[i].Add(wg[i])
		state.C[i] = state.C[i].Add(wc[i])
	}
}

// Finalize4 is the lane-parallel twin of internal/harmonia.Finalize: it
// applies the closing edge protection and fusion independently per lane,
// scattering each lane's 32 bytes into the corresponding digest.
func Finalize4(state State4, digests [4]*[harmonia.Size]byte) {
	g, c := state.G, state.C
	edgeProtect4(&g, 32)
	edgeProtect4(&c, 33)

	for i := 0; i < 8; i++ {
		rot := uint32((i*3+5)%16) + 1
		fused := g[i].Rotr(rot).Xor(c[i].Rotl(rot)).Add(Broadcast(harmonia.PHI[i]))
		for k := 0; k < 4; k++ {
			d := digests[k]
			d[4*i] = byte(fused[k] >> 24)
			d[4*i+1] = byte(fused[k] >> 16)
			d[4*i+2] = byte(fused[k] >> 8)
			d[4*i+3] = byte(fused[k])
		}
	}
}
