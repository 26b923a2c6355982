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

package checksum

import (
	"sort"
	"strings"
)

// Task is the atomic unit of computation: one (file, algorithm) pair.
// Ordering across the task list is irrelevant; duplicates are tolerated and
// simply computed twice.
type Task struct {
	// Path is the resolved absolute path of the file to hash.
	Path string
	// Algorithm is the hash algorithm name as supplied by the caller.
	Algorithm string
}

// Verification is the tri-state outcome of checking a computed digest
// against the expected set.
type Verification int

const (
	// VerificationNone means no expected digest set was supplied, so the
	// digest was not checked at all.
	VerificationNone Verification = iota
	// VerificationPassed means the digest was found in (or consumed from)
	// the expected set.
	VerificationPassed
	// VerificationFailed means checking was requested but the digest was not
	// found in the expected set.
	VerificationFailed
)

// String returns a display form of the verification state.
func (v Verification) String() string {
	switch v {
	case VerificationPassed:
		return "passed"
	case VerificationFailed:
		return "failed"
	default:
		return "not checked"
	}
}

// Record is the result entity produced by execution: one per task,
// immutable once created.
type Record struct {
	// FileName is the base name of the hashed file, not the full path.
	FileName string
	// Algorithm is the algorithm name, uppercased for display.
	Algorithm string
	// Digest is the lowercase hexadecimal digest value.
	Digest string
	// Verified is the tri-state verification outcome.
	Verified Verification
}

// DigestSet is a set of lowercase hexadecimal digest strings the caller
// wants computed digests checked against. All inserts are normalized to
// lowercase, so membership tests are effectively case-insensitive.
type DigestSet struct {
	members map[string]struct{}
}

// NewDigestSet creates a DigestSet seeded with the given values.
func NewDigestSet(values ...string) *DigestSet {
	s := &DigestSet{members: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a digest value, normalized to lowercase.
func (s *DigestSet) Add(value string) {
	s.members[strings.ToLower(value)] = struct{}{}
}

// Contains reports membership without mutating the set.
func (s *DigestSet) Contains(value string) bool {
	_, ok := s.members[strings.ToLower(value)]
	return ok
}

// Remove deletes the value from the set and reports whether it was present.
func (s *DigestSet) Remove(value string) bool {
	key := strings.ToLower(value)
	_, ok := s.members[key]
	if ok {
		delete(s.members, key)
	}
	return ok
}

// Len returns the number of distinct digests in the set.
func (s *DigestSet) Len() int {
	return len(s.members)
}

// Values returns the members in sorted order.
func (s *DigestSet) Values() []string {
	values := make([]string, 0, len(s.members))
	for v := range s.members {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// MatchingPolicy controls how computed digests are checked against the
// expected set.
//
// Under the lenient default, a match is a pure membership test: the set is
// not mutated, so repeated identical digests each verify independently.
// Under strict matching every match consumes its expected value, enforcing
// one-expected-value-per-task accounting; whether a lenient match should
// also consume is an explicit knob rather than an implicit behavior.
type MatchingPolicy struct {
	// Strict requires at least as many expected digests as tasks (enforced
	// by pipeline validation) and consumes each matched value.
	Strict bool
	// ConsumeOnMatch removes matched values from the expected set even when
	// Strict is false. Ignored (always on) under Strict.
	ConsumeOnMatch bool
}

// LenientPolicy returns the default non-consuming membership policy.
func LenientPolicy() MatchingPolicy {
	return MatchingPolicy{}
}

// StrictPolicy returns the consuming one-match-per-expected-value policy.
func StrictPolicy() MatchingPolicy {
	return MatchingPolicy{Strict: true, ConsumeOnMatch: true}
}

// Verify checks a computed digest against the expected set under this
// policy and returns the resulting verification state. A nil expected set
// means checking was never requested.
func (p MatchingPolicy) Verify(digest string, expected *DigestSet) Verification {
	if expected == nil {
		return VerificationNone
	}

	if p.Strict || p.ConsumeOnMatch {
		if expected.Remove(digest) {
			return VerificationPassed
		}
		return VerificationFailed
	}

	if expected.Contains(digest) {
		return VerificationPassed
	}
	return VerificationFailed
}
