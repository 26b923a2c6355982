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
	"bufio"
	"fmt"
	"os"
	"regexp"
)

// The smallest supported digest is 64 bits, so hexadecimal runs shorter than
// 16 characters are never candidate digests.
var (
	literalHexPattern = regexp.MustCompile(`^[0-9a-fA-F]{16,}$`)
	hexRunPattern     = regexp.MustCompile(`[0-9a-fA-F]{16,}`)
)

// extractExpectedDigests builds the expected-digest set from the check
// sources, when any were supplied.
//
// A source token that is a hexadecimal run over its entire length is taken
// as a literal digest. Anything else is treated as a file path: the file is
// scanned line by line and every hex run of at least 16 characters on a line
// contributes a candidate digest. All values are normalized to lowercase.
func (p *Pipeline) extractExpectedDigests(req *Request) error {
	if !req.Has(OptionCheck) {
		return nil
	}

	sources, err := req.stringsParam(OptionCheck)
	if err != nil {
		return err
	}

	expected := NewDigestSet()
	for _, source := range sources {
		if literalHexPattern.MatchString(source) {
			expected.Add(source)
			continue
		}

		if err := scanDigestFile(source, expected); err != nil {
			return NewInputError("file not found: %s", source)
		}
	}

	p.logger.Debug("extracted %d expected digest(s)", expected.Len())
	return req.mustSet(ParamExpectedDigests, expected)
}

// scanDigestFile reads the file at path and adds every candidate digest to
// the set. The handle is closed before returning on every path.
func scanDigestFile(path string, set *DigestSet) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, match := range hexRunPattern.FindAllString(scanner.Text(), -1) {
			set.Add(match)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	return nil
}
