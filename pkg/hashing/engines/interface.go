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

// Package hashengines defines the hash engine interfaces and the registry of
// supported algorithms.
//
// Engines are registered under canonical lowercase names ("sha256",
// "blake2b-512"). Lookup is tolerant of the spellings users actually type:
// names are lowercased and common dashed aliases such as "SHA-256" resolve
// to their canonical form.
package hashengines

import (
	"github.com/harshatech2012/project-bullrun/pkg/hashing/digests"
)

// HashEngine is the core interface for computing cryptographic hashes.
type HashEngine interface {
	// Compute finalizes the hash computation and returns the resulting digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the hash algorithm. The name
	// is carried into the algorithm field of the Digest returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the interface for incrementally feeding data to a hash engine.
// It is kept separate from HashEngine so one-shot implementations stay small.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental use.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
