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

// Finalize applies the closing edge protection and per-word fusion to
// (G,C), emitting the 32-byte digest. It must only be called once, after
// the last block has been folded in by Compress.
func Finalize(g, c [8]uint32, digest *[Size]byte) {
	EdgeProtect(&g, 32)
	EdgeProtect(&c, 33)

	for i := 0; i < 8; i++ {
		rot := uint32((i*3+5)%16) + 1
		fused := rotr32(g[i], rot) ^ rotl32(c[i], rot) + PHI[i]
		digest[4*i] = byte(fused >> 24)
		digest[4*i+1] = byte(fused >> 16)
		digest[4*i+2] = byte(fused >> 8)
		digest[4*i+3] = byte(fused)
	}
}
