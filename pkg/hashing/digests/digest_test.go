// Copyright 2025 The Project Bullrun Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digests

import "testing"

func TestNewDigest_CopiesValue(t *testing.T) {
	raw := []byte{0xab, 0xcd}
	d := NewDigest("sha256", raw)

	raw[0] = 0x00
	if got := d.Hex(); got != "abcd" {
		t.Errorf("Hex() = %q after caller mutation, want %q", got, "abcd")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"lowercase", "deadbeef", "deadbeef", false},
		{"uppercase normalized", "DEADBEEF", "deadbeef", false},
		{"not hex", "zzzz", "", true},
		{"odd length", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseHex("sha256", tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.Hex() != tt.want {
				t.Errorf("Hex() = %q, want %q", d.Hex(), tt.want)
			}
		})
	}
}

func TestDigest_String(t *testing.T) {
	d := NewDigest("sha256", []byte{0x01, 0x02})
	if got := d.String(); got != "sha256:0102" {
		t.Errorf("String() = %q, want %q", got, "sha256:0102")
	}
}

func TestDigest_Equal(t *testing.T) {
	a := NewDigest("sha256", []byte{0x01})
	b := NewDigest("sha256", []byte{0x01})
	c := NewDigest("sha512", []byte{0x01})
	d := NewDigest("sha256", []byte{0x02})

	if !a.Equal(b) {
		t.Error("Equal() = false for identical digests")
	}
	if a.Equal(c) {
		t.Error("Equal() = true across different algorithms")
	}
	if a.Equal(d) {
		t.Error("Equal() = true for different values")
	}
}
