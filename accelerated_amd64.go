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

//go:build amd64
// +build amd64

package harmonia

import "golang.org/x/sys/cpu"

// Accelerated reports whether the host exposes wide-enough SIMD registers
// (AVX2) to make batching messages into groups of 4 for Sum256X4
// worthwhile. Sum256X4 always runs the same portable Go lane code
// regardless of this value — HARMONIA-NG has no AES-NI-style instruction
// to dispatch onto — so this is advisory only, for callers deciding
// whether to bother batching at all.
func Accelerated() bool {
	return cpu.X86.HasAVX2
}
