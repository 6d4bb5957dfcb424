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

// Package harmonia implements the HARMONIA-NG compression function: the
// two-stream ARX permutation, message schedule, edge protection,
// cross-stream diffusion, and finalization shared by the scalar driver in
// this package and the 4-lane driver in internal/lanes. The IVs, PHI,
// RECIP and FIB tables below are defined exactly once and internal/lanes
// reads them from here; the only tables internal/lanes keeps its own copy
// of are rotationPatterns and roundPattern, which must stay identical.
package harmonia

// Size is the digest length, in bytes, produced by a HARMONIA-NG hash.
const Size = 32

// BlockSize is the block length, in bytes, HARMONIA-NG consumes per
// compression call.
const BlockSize = 64

// Rounds is the number of ARX rounds the compression function executes
// per block, on each of the two streams.
const Rounds = 32

// IV_G and IV_C are the initial values of the golden and complementary
// streams. They must never share storage.
var IV_G = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var IV_C = [8]uint32{
	0x9E3779B9, 0x7F4A7C15, 0xF39CC060, 0x5CEDC834,
	0x2FE12A6D, 0x4786B47C, 0xC8A5E2F0, 0x3A8D6B7F,
}

// PHI holds the golden-ratio-derived per-round keys injected into the
// golden stream; RECIP holds the reciprocal-golden-ratio keys for the
// complementary stream. Round r uses PHI[r%16] / RECIP[r%16].
var PHI = [16]uint32{
	0x9E37605A, 0xDAC1E0F2, 0xF287A338, 0xFA8CFC04,
	0xFD805AA6, 0xCCF29760, 0xFF8184C3, 0xFF850D11,
	0xCC32476B, 0x98767486, 0xFFF82080, 0x30E4E2F3,
	0xFCC3ACC1, 0xE5216F38, 0xF30E4CC9, 0x948395F6,
}

var RECIP = [16]uint32{
	0x7249217F, 0x5890EB7C, 0x4786B47C, 0x4C51DBE8,
	0x4E4DA61B, 0x4F76650C, 0x4F2F1A2A, 0x4F6CE289,
	0x4F1ADF40, 0x4E84BABC, 0x4F22D993, 0x497FA704,
	0x4F514F19, 0x4E8F43B8, 0x508E2FD9, 0x4B5F94A4,
}

// FIB holds the first 12 Fibonacci numbers (F0=1, F1=1), used both by the
// message schedule's expansion step and by edge protection.
var FIB = [12]uint32{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

// goldenConst32 is the golden constant edge protection scales by a
// Fibonacci number: it uses FIB[r%12] * goldenConst32, mod 2^32.
const goldenConst32 = 0x9E3779B9

// edgeRotLeft, edgeRotRight and crossRot are the fixed rotation amounts
// edge protection and cross-stream diffusion use.
const (
	edgeRotLeft  = 7
	edgeRotRight = 13
	crossRot     = 11
)

// rotQuad is one of the eight rotation-amount quadruples a quarter-round
// round may use.
type rotQuad struct{ r1, r2, r3, r4 uint32 }

// rotationPatterns enumerates the eight rotation quadruples selectable per
// round by roundPattern.
var rotationPatterns = [8]rotQuad{
	{12, 8, 16, 7},
	{11, 9, 13, 5},
	{8, 16, 7, 12},
	{16, 7, 12, 8},
	{7, 12, 8, 16},
	{13, 5, 11, 9},
	{9, 13, 5, 11},
	{5, 11, 9, 13},
}

// roundPattern selects, for each of the 32 rounds, which of the eight
// rotationPatterns entries that round's quarter-rounds use.
var roundPattern = [Rounds]uint8{
	0, 1, 2, 3, 1, 4, 1, 0,
	2, 5, 0, 4, 1, 0, 6, 3,
	0, 7, 0, 1, 2, 3, 1, 4,
	0, 1, 2, 5, 0, 4, 1, 0,
}

func rotl32(x uint32, n uint32) uint32 { return x<<n | x>>(32-n) }
func rotr32(x uint32, n uint32) uint32 { return x>>n | x<<(32-n) }
