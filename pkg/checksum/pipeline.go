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
	"os"
	"path/filepath"

	"github.com/harshatech2012/project-bullrun/pkg/logging"
)

// DigestProvider is the capability the pipeline needs from the hashing
// layer: a support check and file digest computation. The concrete provider
// lives in pkg/hashing; tests substitute doubles.
type DigestProvider interface {
	// Supports reports whether the algorithm name is available.
	Supports(algorithm string) bool
	// ComputeFileDigest returns the lowercase hex digest of the file at
	// path computed with the named algorithm.
	ComputeFileDigest(path, algorithm string) (string, error)
}

// stage is one tagged validation function in the fixed pipeline order.
type stage struct {
	name string
	run  func(*Request) error
}

// Pipeline validates a Request through a fixed ordered chain of stages and
// then executes the resulting plan. Order matters: later stages consume
// derived state written by earlier ones.
//
// Any stage failure is terminal. The Request is left in whatever partial
// derived state existed, but execution never runs after a failed stage and
// nothing is retried.
type Pipeline struct {
	provider DigestProvider
	logger   logging.Logger
	stages   []stage
}

// NewPipeline builds a pipeline around the given digest provider. A nil
// logger falls back to the default logger.
func NewPipeline(provider DigestProvider, logger logging.Logger) *Pipeline {
	p := &Pipeline{
		provider: provider,
		logger:   logging.EnsureLogger(logger),
	}
	p.stages = []stage{
		{name: "algorithm-validation", run: p.validateAlgorithms},
		{name: "file-resolution", run: p.resolveFiles},
		{name: "task-expansion", run: p.expandTasks},
		{name: "expected-digest-extraction", run: p.extractExpectedDigests},
		{name: "strict-check-validation", run: p.validateStrictCheck},
		{name: "display-policy-validation", run: p.validateDisplayPolicy},
	}
	return p
}

// Run validates the request through every stage in order and, if all stages
// pass, executes the plan and returns the unordered record set.
func (p *Pipeline) Run(req *Request) ([]Record, error) {
	for _, s := range p.stages {
		p.logger.Debug("pipeline stage %q", s.name)
		if err := s.run(req); err != nil {
			p.logger.Debug("pipeline stage %q failed: %v", s.name, err)
			return nil, err
		}
	}
	return p.execute(req)
}

// validateAlgorithms checks every raw algorithm name against the provider
// and writes the validated list.
func (p *Pipeline) validateAlgorithms(req *Request) error {
	algorithms, err := req.stringsParam(OptionAlgorithms)
	if err != nil {
		return err
	}

	for _, algo := range algorithms {
		if !p.provider.Supports(algo) {
			return NewInputError("unsupported algorithm: %s", algo)
		}
	}

	return req.mustSet(ParamAlgorithms, algorithms)
}

// resolveFiles canonicalizes every raw file path to an absolute, verified
// path. A missing file is a user input error naming the path; any other
// resolution failure is an environment error, since retrying the same input
// will not help.
func (p *Pipeline) resolveFiles(req *Request) error {
	files, err := req.stringsParam(OptionFiles)
	if err != nil {
		return err
	}

	resolved := make([]string, len(files))
	for i, path := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			return NewEnvironmentError(
				"cannot resolve %q: ensure the application has the necessary privileges: %v", path, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return NewInputError("file not found: %s", path)
			}
			return NewEnvironmentError(
				"cannot access %q: ensure the application has the necessary privileges: %v", path, err)
		}
		if info.IsDir() {
			return NewInputError("not a file: %s", path)
		}

		real, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return NewEnvironmentError(
				"cannot resolve %q: ensure the application has the necessary privileges: %v", path, err)
		}
		resolved[i] = real
	}

	return req.mustSet(ParamResolvedFiles, resolved)
}

// expandTasks produces the (file, algorithm) task list, either element-wise
// under one-to-one or as the cross product of distinct files and distinct
// algorithms.
func (p *Pipeline) expandTasks(req *Request) error {
	files, err := req.stringsParam(ParamResolvedFiles)
	if err != nil {
		return err
	}
	algorithms, err := req.stringsParam(ParamAlgorithms)
	if err != nil {
		return err
	}

	var tasks []Task
	if req.Has(OptionOneToOne) {
		if len(files) != len(algorithms) {
			return NewInputError(
				"cannot establish one-to-one mapping between file(s) and algorithm(s): "+
					"file [%d] and algorithm [%d] counts don't match",
				len(files), len(algorithms))
		}

		tasks = make([]Task, len(files))
		for i := range files {
			tasks[i] = Task{Path: files[i], Algorithm: algorithms[i]}
		}
	} else {
		distinctFiles := distinct(files)
		distinctAlgorithms := distinct(algorithms)

		tasks = make([]Task, 0, len(distinctFiles)*len(distinctAlgorithms))
		for _, f := range distinctFiles {
			for _, a := range distinctAlgorithms {
				tasks = append(tasks, Task{Path: f, Algorithm: a})
			}
		}
	}

	p.logger.Debug("expanded %d task(s)", len(tasks))
	return req.mustSet(ParamTasks, tasks)
}

// validateStrictCheck enforces the strict-check preconditions and writes the
// active matching policy. Without strict checking, a lenient non-consuming
// policy is recorded whenever checking was requested at all.
func (p *Pipeline) validateStrictCheck(req *Request) error {
	if !req.Has(OptionStrictCheck) {
		if req.Has(OptionCheck) {
			return req.mustSet(ParamMatchingPolicy, LenientPolicy())
		}
		return nil
	}

	expected, ok := req.Get(ParamExpectedDigests)
	if !ok {
		return NewInputError("strict-check requires check values: supply --check")
	}
	set, ok := expected.(*DigestSet)
	if !ok {
		return NewInvariantError("parameter %q is %T, expected *DigestSet", ParamExpectedDigests, expected)
	}

	tasks, err := req.tasksParam(ParamTasks)
	if err != nil {
		return err
	}

	if set.Len() < len(tasks) {
		return NewInputError(
			"cannot check strictly: hashes [%d] more than checks [%d]",
			len(tasks), set.Len())
	}

	return req.mustSet(ParamMatchingPolicy, StrictPolicy())
}

// validateDisplayPolicy rejects omit-hash without checking: dropping the
// digest column only makes sense when a verification column replaces it.
func (p *Pipeline) validateDisplayPolicy(req *Request) error {
	if req.Has(OptionOmitHash) && !req.Has(OptionCheck) {
		return NewInputError("omit-hash can only be used together with check")
	}
	return nil
}

// distinct collapses duplicates while preserving first-occurrence order.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
