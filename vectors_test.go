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
	"encoding/hex"
	"testing"
)

var fixedVectors = []struct {
	input string
	digest string
}{
	{"", "f0861e3ad1a2a438b4ceea78d14f21074dcd712b073917b28d7ae7fad8f6a562"},
	{"Harmonia", "11cd23650f8fd4818848bc6f09da18b06403ed6f5250447c5d1036730cb8987c"},
	{"The quick brown fox jumps over the lazy dog", "05a015d792c2146a00d941ba342e0dbb219ff7ef6da48d05caf8310d3c844172"},
	{"HARMONIA-NG", "6d310650be2092be611cf35ea8dcc46b8199a3f6299398fa68dcf73f80f8a334"},
}

func TestFixedVectors(t *testing.T) {
	for _, v := range fixedVectors {
		want, err := hex.DecodeString(v.digest)
		if err != nil {
			t.Fatalf("bad fixture hex: %v", err)
		}
		got := Sum256([]byte(v.input))
		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Errorf("Sum256(%q) = %x, want %x", v.input, got, want)
		}
	}
}

func TestEndToEndEmptyStreaming(t *testing.T) {
	d := New()
	sum := d.Sum(nil)
	want := fixedVectors[0].digest
	if hex.EncodeToString(sum) != want {
		t.Errorf("empty streaming sum = %x, want %s", sum, want)
	}
}

func TestEndToEndSplitUpdate(t *testing.T) {
	d := New()
	d.Write([]byte("Harm"))
	d.Write([]byte("onia"))
	sum := d.Sum(nil)
	want := fixedVectors[1].digest
	if hex.EncodeToString(sum) != want {
		t.Errorf("split update sum = %x, want %s", sum, want)
	}
}

func TestSum256X4AllEmpty(t *testing.T) {
	out := Sum256X4([4][]byte{nil, nil, nil, nil})
	want := fixedVectors[0].digest
	for k, d := range out {
		if hex.EncodeToString(d[:]) != want {
			t.Errorf("lane %d = %x, want %s", k, d, want)
		}
	}
}
