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

// Package lanes lays out "one vector per word index, one lane per message"
// the way a real 4-way SIMD backend would: every state or schedule word is
// a Vec4, lane k holding the word belonging to message k. Every ARX
// primitive lifts elementwise; no operation here ever crosses lanes except
// the final digest scatter Finalize4 performs once finalization is done.
// On real 4-lane hardware this is the layout a compiler can map directly
// onto packed 128-bit (4x32) vector registers; here it is a portable
// software emulation.
package lanes

import "fmt"

// Vec4 holds one 32-bit word per lane, for 4 independent messages.
type Vec4 [4]uint32

// Broadcast returns a vector with x in every lane.
func Broadcast(x uint32) Vec4 { return Vec4{x, x, x, x} }

func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

func (v Vec4) Xor(u Vec4) Vec4 {
	return Vec4{v[0] ^ u[0], v[1] ^ u[1], v[2] ^ u[2], v[3] ^ u[3]}
}

func (v Vec4) Not() Vec4 {
	return Vec4{^v[0], ^v[1], ^v[2], ^v[3]}
}

// Rotl rotates every lane left by the same compile-time-constant-style
// amount n. n must be in [1,31].
func (v Vec4) Rotl(n uint32) Vec4 {
	return Vec4{
		v[0]<<n | v[0]>>(32-n),
		v[1]<<n | v[1]>>(32-n),
		v[2]<<n | v[2]>>(32-n),
		v[3]<<n | v[3]>>(32-n),
	}
}

// Rotr rotates every lane right by n, n in [1,31].
func (v Vec4) Rotr(n uint32) Vec4 {
	return Vec4{
		v[0]>>n | v[0]<<(32-n),
		v[1]>>n | v[1]<<(32-n),
		v[2]>>n | v[2]<<(32-n),
		v[3]>>n | v[3]<<(32-n),
	}
}

// Shr is an unsigned logical right shift, used by the message-schedule
// sigma functions.
func (v Vec4) Shr(n uint32) Vec4 {
	return Vec4{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

func (v Vec4) String() string {
	return fmt.Sprintf("{%08x, %08x, %08x, %08x}", v[0], v[1], v[2], v[3])
}
