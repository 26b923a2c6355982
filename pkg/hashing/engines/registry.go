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

package hashengines

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedAlgorithm is wrapped by Create when no engine is registered
// under the requested name.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// EngineFactory creates a new hash engine instance.
type EngineFactory func() (StreamingHashEngine, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]EngineFactory)
)

// aliases maps the dashed spellings users commonly type to canonical
// registry names. Keys and values are lowercase.
var aliases = map[string]string{
	"md-5":    "md5",
	"sha-1":   "sha1",
	"sha-224": "sha224",
	"sha-256": "sha256",
	"sha-384": "sha384",
	"sha-512": "sha512",
	"blake2b": "blake2b-512",
	"sha3":    "sha3-256",
}

// Canonical normalizes an algorithm name to its canonical registry form.
// Names are lowercased and trimmed; known dashed aliases are resolved.
func Canonical(algorithm string) string {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Register registers an engine factory under the given canonical name.
// Registering an empty name, a nil factory, or a duplicate name is an error.
func Register(algorithm string, factory EngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	name := Canonical(algorithm)
	if _, exists := registry[name]; exists {
		return fmt.Errorf("hash algorithm %q already registered", name)
	}

	registry[name] = factory
	return nil
}

// MustRegister registers an engine factory or panics. Intended for package
// init, where a registration failure is a programming error.
func MustRegister(algorithm string, factory EngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create instantiates a new engine for the given algorithm name. The name is
// canonicalized before lookup. The returned error wraps
// ErrUnsupportedAlgorithm when the algorithm is unknown.
func Create(algorithm string) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[Canonical(algorithm)]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s (supported: %v)",
			ErrUnsupportedAlgorithm, algorithm, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", algorithm, err)
	}

	return engine, nil
}

// IsSupported reports whether an engine is registered for the algorithm name.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[Canonical(algorithm)]
	return exists
}

// SupportedAlgorithms returns the sorted canonical names of all registered
// engines.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// Unregister removes a registered engine. Primarily useful in tests.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	name := Canonical(algorithm)
	if _, exists := registry[name]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", name)
	}

	delete(registry, name)
	return nil
}
