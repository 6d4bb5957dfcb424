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

// quarterRound is ChaCha's quarter-round shape, parameterized by the four
// rotation amounts the caller's round selects from rotationPatterns.
func quarterRound(a, b, c, d *uint32, q rotQuad) {
	*a += *b
	*d ^= *a
	*d = rotl32(*d, q.r1)

	*c += *d
	*b ^= *c
	*b = rotl32(*b, q.r2)

	*a += *b
	*d ^= *a
	*d = rotl32(*d, q.r3)

	*c += *d
	*b ^= *c
	*b = rotl32(*b, q.r4)
}

// roundKernel runs the four column quarter-rounds followed by the four
// diagonal quarter-rounds over one 8-word stream.
func roundKernel(s *[8]uint32, q rotQuad) {
	quarterRound(&s[0], &s[1], &s[2], &s[3], q)
	quarterRound(&s[4], &s[5], &s[6], &s[7], q)
	quarterRound(&s[0], &s[5], &s[2], &s[7], q)
	quarterRound(&s[4], &s[1], &s[6], &s[3], q)
}
