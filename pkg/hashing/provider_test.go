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

package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hashengines "github.com/harshatech2012/project-bullrun/pkg/hashing/engines"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestComputeFileDigest_SHA256(t *testing.T) {
	const content = "hello, bullrun"
	sum := sha256.Sum256([]byte(content))
	want := hex.EncodeToString(sum[:])

	path := writeTempFile(t, content)
	provider := NewFileDigestProvider()

	got, err := provider.ComputeFileDigest(path, "sha256")
	if err != nil {
		t.Fatalf("ComputeFileDigest() error = %v", err)
	}
	if got != want {
		t.Errorf("ComputeFileDigest() = %q, want %q", got, want)
	}
	if got != strings.ToLower(got) {
		t.Errorf("ComputeFileDigest() = %q, want lowercase", got)
	}
}

func TestComputeFileDigest_AliasedName(t *testing.T) {
	path := writeTempFile(t, "same bytes")
	provider := NewFileDigestProvider()

	canonical, err := provider.ComputeFileDigest(path, "sha256")
	if err != nil {
		t.Fatalf("ComputeFileDigest(sha256) error = %v", err)
	}

	aliased, err := provider.ComputeFileDigest(path, "SHA-256")
	if err != nil {
		t.Fatalf("ComputeFileDigest(SHA-256) error = %v", err)
	}

	if canonical != aliased {
		t.Errorf("aliased digest %q differs from canonical %q", aliased, canonical)
	}
}

func TestComputeFileDigest_Deterministic(t *testing.T) {
	path := writeTempFile(t, "determinism")
	provider := NewFileDigestProvider()

	first, err := provider.ComputeFileDigest(path, "blake2b-512")
	if err != nil {
		t.Fatalf("ComputeFileDigest() error = %v", err)
	}
	second, err := provider.ComputeFileDigest(path, "blake2b-512")
	if err != nil {
		t.Fatalf("ComputeFileDigest() error = %v", err)
	}

	if first != second {
		t.Errorf("digests differ across runs: %q vs %q", first, second)
	}
}

func TestComputeFileDigest_DigestLength(t *testing.T) {
	path := writeTempFile(t, "length check")
	provider := NewFileDigestProvider()

	for _, algo := range provider.SupportedAlgorithms() {
		t.Run(algo, func(t *testing.T) {
			engine, err := hashengines.Create(algo)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", algo, err)
			}

			digest, err := provider.ComputeFileDigest(path, algo)
			if err != nil {
				t.Fatalf("ComputeFileDigest() error = %v", err)
			}

			if want := engine.DigestSize() * 2; len(digest) != want {
				t.Errorf("digest length = %d, want %d", len(digest), want)
			}
		})
	}
}

func TestComputeFileDigest_MissingFile(t *testing.T) {
	provider := NewFileDigestProvider()

	_, err := provider.ComputeFileDigest(filepath.Join(t.TempDir(), "gone.txt"), "sha256")
	if err == nil {
		t.Fatal("ComputeFileDigest() of missing file returned nil error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestComputeFileDigest_UnsupportedAlgorithm(t *testing.T) {
	path := writeTempFile(t, "irrelevant")
	provider := NewFileDigestProvider()

	_, err := provider.ComputeFileDigest(path, "crc32")
	if !errors.Is(err, hashengines.ErrUnsupportedAlgorithm) {
		t.Errorf("error %v does not wrap ErrUnsupportedAlgorithm", err)
	}

	if provider.Supports("crc32") {
		t.Error("Supports(crc32) = true, want false")
	}
}
