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

// EdgeProtect perturbs a stream's end words, keyed by a Fibonacci-scaled
// golden constant selected by round index r. It runs every 8 rounds during
// compression and twice more, back to back on g then c, during
// finalization (with r=32 and r=33 respectively).
func EdgeProtect(s *[8]uint32, r int) {
	fib := FIB[r%12] * goldenConst32
	s[0] = rotr32(s[0], edgeRotLeft) ^ fib
	s[7] = rotl32(s[7], edgeRotRight) ^ ^fib
	inter := (s[0] ^ s[7]) >> 16
	s[0] += inter
	s[7] += inter
}
