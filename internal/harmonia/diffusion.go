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

// CrossDiffuse couples the golden and complementary streams, run every 4
// rounds. For each position i, t is g[i] XOR the 3-positions-offset word
// of c; g[i] is then incremented by t rotated right and c[i] is XORed with
// t rotated left.
func CrossDiffuse(g, c *[8]uint32) {
	for i := 0; i < 8; i++ {
		t := g[i] ^ c[(i+3)%8]
		g[i] += rotr32(t, crossRot)
		c[i] ^= rotl32(t, crossRot)
	}
}
