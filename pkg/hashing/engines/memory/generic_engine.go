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

// Package memory provides in-memory streaming hash engines backed by the
// standard library and golang.org/x/crypto implementations.
package memory

import (
	"hash"

	"github.com/harshatech2012/project-bullrun/pkg/hashing/digests"
	hashengines "github.com/harshatech2012/project-bullrun/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericEngine)(nil)

// HashFactoryFunc creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericEngine adapts any hash.Hash implementation to the
// StreamingHashEngine interface. All concrete algorithms in this package are
// instances of this one wrapper, which keeps per-algorithm code to a single
// registration line.
type GenericEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericEngine creates an engine named name producing size-byte digests
// from hash.Hash instances built by factory. If initialData is non-empty it
// is written into the hash immediately.
func NewGenericEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

// Update appends more bytes into the hash state.
func (e *GenericEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *GenericEngine) Reset(data []byte) {
	// The factory already succeeded once during construction.
	h, _ := e.factory()
	e.h = h

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a Digest value.
func (e *GenericEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical algorithm identifier.
func (e *GenericEngine) DigestName() string {
	return e.name
}

// DigestSize returns the byte length of the produced digest.
func (e *GenericEngine) DigestSize() int {
	return e.size
}
