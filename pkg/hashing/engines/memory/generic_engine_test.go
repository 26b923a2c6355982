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

package memory

import (
	"crypto/sha256"
	"testing"

	hashengines "github.com/harshatech2012/project-bullrun/pkg/hashing/engines"
)

func TestGenericEngine_ImplementsStreamingHashEngine(t *testing.T) {
	var _ hashengines.StreamingHashEngine = (*GenericEngine)(nil)
}

func newSHA256(t *testing.T) *GenericEngine {
	t.Helper()
	e, err := NewGenericEngine("sha256", sha256.Size, plain(sha256.New), nil)
	if err != nil {
		t.Fatalf("NewGenericEngine() error = %v", err)
	}
	return e
}

func TestGenericEngine_UpdateThenCompute(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e := newSHA256(t)
	e.Update([]byte("abcd"))

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := d.Hex(); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}

func TestGenericEngine_ResetAndRecompute(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e := newSHA256(t)
	e.Update([]byte("junk"))
	e.Reset(nil)
	e.Update([]byte("abcd"))

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := d.Hex(); got != want {
		t.Errorf("Compute() after Reset() = %q, want %q", got, want)
	}
}

func TestGenericEngine_ResetWithInitialData(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	e := newSHA256(t)
	e.Reset([]byte("abcd"))

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := d.Hex(); got != want {
		t.Errorf("Compute() after Reset(initial) = %q, want %q", got, want)
	}
}

func TestGenericEngine_DigestMetadata(t *testing.T) {
	e := newSHA256(t)

	if got := e.DigestName(); got != "sha256" {
		t.Errorf("DigestName() = %q, want %q", got, "sha256")
	}
	if got := e.DigestSize(); got != sha256.Size {
		t.Errorf("DigestSize() = %d, want %d", got, sha256.Size)
	}

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d.Size() != e.DigestSize() {
		t.Errorf("digest size %d does not match DigestSize() %d", d.Size(), e.DigestSize())
	}
}

func TestDefaultEngines_Registered(t *testing.T) {
	algorithms := []string{
		"md5", "sha1", "sha224", "sha256", "sha384", "sha512",
		"sha3-256", "sha3-512", "blake2b-256", "blake2b-512",
	}

	for _, algo := range algorithms {
		t.Run(algo, func(t *testing.T) {
			if !hashengines.IsSupported(algo) {
				t.Fatalf("IsSupported(%q) = false, want true", algo)
			}

			engine, err := hashengines.Create(algo)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", algo, err)
			}

			d, err := engine.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if d.Size() != engine.DigestSize() {
				t.Errorf("digest size %d does not match DigestSize() %d", d.Size(), engine.DigestSize())
			}
		})
	}
}
