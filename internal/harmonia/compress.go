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

// round executes one of the 32 ARX rounds on the working streams g and c,
// given the expanded message schedule w.
func round(g, c *[8]uint32, w *[ScheduleWords]uint32, r int) {
	q := rotationPatterns[roundPattern[r]]

	g[0] += w[r]
	c[0] += w[ScheduleWords-1-r]

	g[4] ^= PHI[r%16]
	c[4] ^= RECIP[r%16]

	roundKernel(g, q)
	roundKernel(c, q)

	if (r+1)%4 == 0 {
		CrossDiffuse(g, c)
	}
	if (r+1)%8 == 0 {
		EdgeProtect(g, r)
		EdgeProtect(c, r)
	}
}

// Compress runs the 32-round ARX permutation over one 64-byte block and
// folds it back into (G,C) via Davies-Meyer feedforward.
func Compress(g, c *[8]uint32, block *[BlockSize]byte) {
	var w [ScheduleWords]uint32
	Schedule(block, &w)

	wg, wc := *g, *c
	for r := 0; r < Rounds; r++ {
		round(&wg, &wc, &w, r)
	}

	for i := 0; i < 8; i++ {
		g[i] += wg[i]
		c[i] += wc[i]
	}
}
