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

package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshatech2012/project-bullrun/pkg/checksum"
)

func TestNewRequest_RequiresOptionNameList(t *testing.T) {
	t.Parallel()

	_, err := checksum.NewRequest(nil, map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "option name list")
}

func TestNewRequest_EmptyListIsAllowed(t *testing.T) {
	t.Parallel()

	req, err := checksum.NewRequest([]string{}, map[string]any{})

	require.NoError(t, err)
	assert.NotNil(t, req)
}

func TestNewRequest_MissingOptionValue(t *testing.T) {
	t.Parallel()

	_, err := checksum.NewRequest(
		[]string{checksum.OptionAlgorithms, checksum.OptionFiles},
		map[string]any{checksum.OptionAlgorithms: []string{"sha256"}},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), checksum.OptionFiles)
}

func TestRequest_RawOptionsAreWriteOnce(t *testing.T) {
	t.Parallel()

	req, err := checksum.NewRequest(
		[]string{checksum.OptionFiles},
		map[string]any{checksum.OptionFiles: []string{"a.txt"}},
	)
	require.NoError(t, err)

	err = req.Set(checksum.OptionFiles, []string{"overwritten.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")

	// The original value must be untouched.
	v, ok := req.Get(checksum.OptionFiles)
	require.True(t, ok)
	assert.Equal(t, []string{"a.txt"}, v)
}

func TestRequest_DerivedValuesAreRewritable(t *testing.T) {
	t.Parallel()

	req, err := checksum.NewRequest([]string{}, map[string]any{})
	require.NoError(t, err)

	require.NoError(t, req.Set(checksum.ParamTasks, []checksum.Task{{Path: "/a", Algorithm: "sha256"}}))
	require.NoError(t, req.Set(checksum.ParamTasks, []checksum.Task{}))

	v, ok := req.Get(checksum.ParamTasks)
	require.True(t, ok)
	assert.Empty(t, v)
}

func TestRequest_AbsentNameIsNotAnError(t *testing.T) {
	t.Parallel()

	req, err := checksum.NewRequest([]string{}, map[string]any{})
	require.NoError(t, err)

	v, ok := req.Get("never-set")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, req.Has("never-set"))
}
