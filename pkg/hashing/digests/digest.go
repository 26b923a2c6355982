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

// Package digests provides the value type for computed cryptographic digests.
//
// A Digest pairs the algorithm name with the raw hash bytes. The type is
// effectively immutable: fields are unexported and the constructor copies
// the value slice so later mutations by the caller cannot leak in.
package digests

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest is a computed cryptographic hash digest.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm name and raw hash bytes.
// The value slice is copied to preserve immutability.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// ParseHex creates a Digest from a hexadecimal string. The input is accepted
// case-insensitively; the stored value always renders back as lowercase hex.
// Returns an error if the string is not valid hexadecimal.
func ParseHex(algorithm, hexValue string) (Digest, error) {
	raw, err := hex.DecodeString(strings.ToLower(hexValue))
	if err != nil {
		return Digest{}, fmt.Errorf("invalid hex digest %q: %w", hexValue, err)
	}
	return Digest{algorithm: algorithm, value: raw}, nil
}

// Algorithm returns the name of the hash algorithm that produced this digest.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Hex returns the lowercase hexadecimal encoding of the digest value.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String renders the digest as "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and value.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm || len(d.value) != len(other.value) {
		return false
	}

	for i := range d.value {
		if d.value[i] != other.value[i] {
			return false
		}
	}
	return true
}
