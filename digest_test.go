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

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"
)

// lengthBoundaries covers the input lengths that exercise every padding
// and block-boundary edge case: empty, single byte, just-fits-in-one-block,
// forces-an-extra-block, and the block/two-block boundaries themselves.
var lengthBoundaries = []int{0, 1, 55, 56, 63, 64, 65, 119, 120, 128}

func TestOneShotVsStreaming(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range lengthBoundaries {
		data := make([]byte, n)
		r.Read(data)

		one := Sum256(data)

		d := New()
		d.Write(data)
		streamed := d.Sum(nil)

		if !bytes.Equal(one[:], streamed) {
			t.Errorf("len=%d: one-shot %x != streamed %x", n, one, streamed)
		}
	}
}

func TestBlockBoundaryInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	data := make([]byte, 3*BlockSize+17)
	r.Read(data)

	whole := Sum256(data)

	byteAtATime := New()
	for _, b := range data {
		byteAtATime.Write([]byte{b})
	}
	gotByte := byteAtATime.Sum(nil)
	if !bytes.Equal(whole[:], gotByte) {
		t.Errorf("byte-at-a-time = %x, want %x", gotByte, whole)
	}

	chunked := New()
	for off := 0; off < len(data); {
		n := 1 + r.Intn(37)
		if off+n > len(data) {
			n = len(data) - off
		}
		chunked.Write(data[off : off+n])
		off += n
	}
	gotChunked := chunked.Sum(nil)
	if !bytes.Equal(whole[:], gotChunked) {
		t.Errorf("random-chunked = %x, want %x", gotChunked, whole)
	}
}

func TestMegabyteThreeWaysAgree(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 1<<20)

	whole := Sum256(data)

	chunked := New()
	for off := 0; off < len(data); off += 16 * 1024 {
		end := off + 16*1024
		if end > len(data) {
			end = len(data)
		}
		chunked.Write(data[off:end])
	}
	gotChunked := chunked.Sum(nil)

	if !bytes.Equal(whole[:], gotChunked) {
		t.Errorf("16KiB-chunked megabyte = %x, want %x", gotChunked, whole)
	}

	byteAtATime := New()
	for _, b := range data {
		byteAtATime.Write([]byte{b})
	}
	gotByte := byteAtATime.Sum(nil)
	if !bytes.Equal(whole[:], gotByte) {
		t.Errorf("byte-at-a-time megabyte = %x, want %x", gotByte, whole)
	}
}

func TestConcurrentDigestsIndependent(t *testing.T) {
	a := bytes.Repeat([]byte{0x11}, 200)
	b := bytes.Repeat([]byte{0x22}, 311)

	wantA := Sum256(a)
	wantB := Sum256(b)

	var wg sync.WaitGroup
	var gotA, gotB [Size]byte
	wg.Add(2)
	go func() {
		defer wg.Done()
		d := New()
		d.Write(a)
		copy(gotA[:], d.Sum(nil))
	}()
	go func() {
		defer wg.Done()
		d := New()
		d.Write(b)
		copy(gotB[:], d.Sum(nil))
	}()
	wg.Wait()

	if gotA != wantA {
		t.Errorf("concurrent A = %x, want %x", gotA, wantA)
	}
	if gotB != wantB {
		t.Errorf("concurrent B = %x, want %x", gotB, wantB)
	}
}

func popcount(b []byte) int {
	n := 0
	for _, v := range b {
		for v != 0 {
			n += int(v & 1)
			v >>= 1
		}
	}
	return n
}

func TestAvalancheSanity(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const trials = 1000
	total := 0

	for i := 0; i < trials; i++ {
		base := make([]byte, 32)
		r.Read(base)
		h1 := Sum256(base)

		flipped := make([]byte, 32)
		copy(flipped, base)
		bit := r.Intn(256)
		flipped[bit/8] ^= 1 << uint(bit%8)
		h2 := Sum256(flipped)

		diff := make([]byte, Size)
		for i := range diff {
			diff[i] = h1[i] ^ h2[i]
		}
		total += popcount(diff)
	}

	avg := float64(total) / float64(trials)
	if avg < 96 {
		t.Errorf("average avalanche bit difference %.1f < 96 over %d trials", avg, trials)
	}
}
