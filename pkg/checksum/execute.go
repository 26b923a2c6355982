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
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// execute consumes the fully validated request: it computes the digest for
// every task, applies the matching policy, and produces one Record per task.
//
// A failure in any task aborts the whole execution; no partial record set is
// ever returned.
func (p *Pipeline) execute(req *Request) ([]Record, error) {
	tasks, err := req.tasksParam(ParamTasks)
	if err != nil {
		return nil, err
	}

	var expected *DigestSet
	if v, ok := req.Get(ParamExpectedDigests); ok {
		expected, ok = v.(*DigestSet)
		if !ok {
			return nil, NewInvariantError("parameter %q is %T, expected *DigestSet", ParamExpectedDigests, v)
		}
	}

	policy := LenientPolicy()
	if v, ok := req.Get(ParamMatchingPolicy); ok {
		policy, ok = v.(MatchingPolicy)
		if !ok {
			return nil, NewInvariantError("parameter %q is %T, expected MatchingPolicy", ParamMatchingPolicy, v)
		}
	}

	records := make([]Record, 0, len(tasks))
	for _, task := range tasks {
		digest, err := p.provider.ComputeFileDigest(task.Path, task.Algorithm)
		if err != nil {
			return nil, p.classifyComputeError(task, err)
		}
		digest = strings.ToLower(digest)

		records = append(records, Record{
			FileName:  filepath.Base(task.Path),
			Algorithm: strings.ToUpper(task.Algorithm),
			Digest:    digest,
			Verified:  policy.Verify(digest, expected),
		})
	}

	p.logger.Debug("computed %d checksum record(s)", len(records))
	return records, nil
}

// classifyComputeError maps a digest computation failure to the error
// taxonomy. File resolution already ran, so a not-found here means the file
// vanished in between; an algorithm the provider no longer supports means
// validator and provider disagree, which is a broken invariant rather than
// bad input.
func (p *Pipeline) classifyComputeError(task Task, err error) error {
	if !p.provider.Supports(task.Algorithm) {
		return NewInvariantError(
			"algorithm %q passed validation but failed at computation time: %v", task.Algorithm, err)
	}

	if errors.Is(err, fs.ErrNotExist) {
		return NewRaceError(
			"file not found: %s: the file disappeared after validation (time-of-check/time-of-use)", task.Path)
	}

	return NewEnvironmentError("computing %s digest of %q: %v", task.Algorithm, task.Path, err)
}
