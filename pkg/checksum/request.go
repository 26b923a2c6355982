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

// Package checksum implements the request validation and execution pipeline
// that turns raw command inputs into verified checksum records.
package checksum

import "fmt"

// Raw option names a Request may carry. These are the reserved names: their
// values are supplied by the caller at construction and are write-once.
const (
	// OptionAlgorithms is the list of hash algorithm names.
	OptionAlgorithms = "algorithms"
	// OptionFiles is the list of file paths to hash.
	OptionFiles = "files"
	// OptionCheck is the list of expected-digest sources: literal hash
	// values or paths of files containing them.
	OptionCheck = "check"
	// OptionOneToOne selects element-wise file/algorithm pairing instead of
	// the default cross product.
	OptionOneToOne = "one-to-one"
	// OptionStrictCheck enables the strict consuming matching policy.
	OptionStrictCheck = "strict-check"
	// OptionOmitHash requests omitting the digest column from output.
	OptionOmitHash = "omit-hash"
)

// Derived parameter names written by the pipeline stages. A derived name
// must never collide with a raw option name.
const (
	// ParamAlgorithms is the validated algorithm list ([]string).
	ParamAlgorithms = "validated-algorithms"
	// ParamResolvedFiles is the canonical absolute path list ([]string).
	ParamResolvedFiles = "resolved-files"
	// ParamTasks is the expanded (file, algorithm) task list ([]Task).
	ParamTasks = "tasks"
	// ParamExpectedDigests is the extracted expected set (*DigestSet).
	ParamExpectedDigests = "expected-digests"
	// ParamMatchingPolicy is the active matching policy (MatchingPolicy).
	ParamMatchingPolicy = "matching-policy"
)

// Request is the shared mutable context the pipeline stages operate on.
//
// It separates two categories of named values: raw option values supplied by
// the caller up front, and derived values written by pipeline stages to pass
// intermediate state forward. Raw values are write-once; an attempt to
// overwrite one through Set fails loudly instead of silently corrupting the
// caller's input with derived data that happens to reuse a similar name.
type Request struct {
	reserved map[string]struct{}
	raw      map[string]any
	derived  map[string]any
}

// NewRequest constructs a Request from the list of raw option names and
// their values.
//
// The option name list is a mandatory structural parameter: a nil list is a
// configuration error, as is any listed option missing from values. An empty
// (non-nil) list is allowed for callers that have no reserved names.
func NewRequest(optionNames []string, values map[string]any) (*Request, error) {
	if optionNames == nil {
		return nil, NewInputError("mandatory parameter missing: raw option name list")
	}

	reserved := make(map[string]struct{}, len(optionNames))
	for _, name := range optionNames {
		if _, ok := values[name]; !ok {
			return nil, NewInputError("raw option %q has no value", name)
		}
		reserved[name] = struct{}{}
	}

	raw := make(map[string]any, len(values))
	for name, value := range values {
		raw[name] = value
	}

	return &Request{
		reserved: reserved,
		raw:      raw,
		derived:  make(map[string]any),
	}, nil
}

// Set stores a derived value under name. Writing to a reserved raw option
// name is an invalid operation and returns an error; derived names may be
// overwritten freely.
func (r *Request) Set(name string, value any) error {
	if _, ok := r.reserved[name]; ok {
		return fmt.Errorf("reserved parameter %q cannot be overwritten", name)
	}
	r.derived[name] = value
	return nil
}

// Get returns the value stored under name, derived values shadowing raw
// ones, and whether it was present. Absent names are not an error.
func (r *Request) Get(name string) (any, bool) {
	if v, ok := r.derived[name]; ok {
		return v, true
	}
	v, ok := r.raw[name]
	return v, ok
}

// Has reports whether a value is stored under name.
func (r *Request) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// mustSet writes a derived value and converts a reserved-name collision into
// an InvariantError: the derived parameter names are compile-time constants,
// so a collision is a programming bug, not user input.
func (r *Request) mustSet(name string, value any) error {
	if err := r.Set(name, value); err != nil {
		return NewInvariantError("derived parameter collides with raw option: %v", err)
	}
	return nil
}

// stringsParam fetches a []string parameter, failing with an InvariantError
// when the stored value has the wrong shape.
func (r *Request) stringsParam(name string) ([]string, error) {
	v, ok := r.Get(name)
	if !ok {
		return nil, NewInvariantError("required parameter %q not set", name)
	}
	s, ok := v.([]string)
	if !ok {
		return nil, NewInvariantError("parameter %q is %T, expected []string", name, v)
	}
	return s, nil
}

// tasksParam fetches the []Task parameter written by task expansion.
func (r *Request) tasksParam(name string) ([]Task, error) {
	v, ok := r.Get(name)
	if !ok {
		return nil, NewInvariantError("required parameter %q not set", name)
	}
	tasks, ok := v.([]Task)
	if !ok {
		return nil, NewInvariantError("parameter %q is %T, expected []Task", name, v)
	}
	return tasks, nil
}
