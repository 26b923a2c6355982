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

// Package hashing exposes the digest capability used by the checksum core:
// answering whether an algorithm is supported and computing file digests.
package hashing

import (
	"fmt"
	"io"
	"os"

	"github.com/harshatech2012/project-bullrun/pkg/hashing/digests"
	hashengines "github.com/harshatech2012/project-bullrun/pkg/hashing/engines"

	// Register the default in-memory engines.
	_ "github.com/harshatech2012/project-bullrun/pkg/hashing/engines/memory"
)

// defaultChunkSize is the read size used when streaming file contents into
// an engine. Files are never loaded into memory whole.
const defaultChunkSize = 1 << 20

// FileDigestProvider computes file digests using the engine registry. It is
// an explicitly constructed capability object: callers pass it into the
// checksum pipeline rather than reaching for package-level state, which keeps
// test doubles substitutable.
type FileDigestProvider struct {
	chunkSize int
}

// NewFileDigestProvider returns a provider streaming files in 1 MiB chunks.
func NewFileDigestProvider() *FileDigestProvider {
	return &FileDigestProvider{chunkSize: defaultChunkSize}
}

// Supports reports whether the algorithm name resolves to a registered
// engine. Names are matched case-insensitively with common aliases
// ("SHA-256" resolves to "sha256").
func (p *FileDigestProvider) Supports(algorithm string) bool {
	return hashengines.IsSupported(algorithm)
}

// SupportedAlgorithms returns the sorted canonical names of all algorithms
// this provider can compute.
func (p *FileDigestProvider) SupportedAlgorithms() []string {
	return hashengines.SupportedAlgorithms()
}

// ComputeFileDigest hashes the contents of the file at path with the named
// algorithm and returns the lowercase hexadecimal digest.
//
// The file handle is opened, fully consumed and closed before returning.
// Open errors are wrapped so callers can distinguish a vanished file
// (errors.Is(err, fs.ErrNotExist)) from other failures; unknown algorithm
// names surface as hashengines.ErrUnsupportedAlgorithm.
func (p *FileDigestProvider) ComputeFileDigest(path, algorithm string) (string, error) {
	d, err := p.computeDigest(path, algorithm)
	if err != nil {
		return "", err
	}
	return d.Hex(), nil
}

func (p *FileDigestProvider) computeDigest(path, algorithm string) (digests.Digest, error) {
	engine, err := hashengines.Create(algorithm)
	if err != nil {
		return digests.Digest{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, p.chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return digests.Digest{}, fmt.Errorf("read file %q: %w", path, err)
		}
	}

	d, err := engine.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	return d, nil
}
