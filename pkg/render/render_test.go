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

package render_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshatech2012/project-bullrun/pkg/checksum"
	"github.com/harshatech2012/project-bullrun/pkg/render"
)

func sampleRecords() []checksum.Record {
	return []checksum.Record{
		{FileName: "b.txt", Algorithm: "SHA256", Digest: "2222222222222222", Verified: checksum.VerificationFailed},
		{FileName: "a.txt", Algorithm: "SHA256", Digest: "1111111111111111", Verified: checksum.VerificationPassed},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    render.Format
		wantErr bool
	}{
		{"", render.FormatTable, false},
		{"table", render.FormatTable, false},
		{"PLAIN", render.FormatPlain, false},
		{" json ", render.FormatJSON, false},
		{"template", render.FormatTemplate, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := render.ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseFormat(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDefaultFormat_NonTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.FormatPlain, render.DefaultFormat(&bytes.Buffer{}))
}

func TestRecords_TableSortsByFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Records(&buf, sampleRecords(), render.Options{
		Format:         render.FormatTable,
		CheckRequested: true,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "VERIFIED")
	assert.Contains(t, lines[1], "a.txt")
	assert.Contains(t, lines[1], "passed")
	assert.Contains(t, lines[2], "b.txt")
	assert.Contains(t, lines[2], "failed")
}

func TestRecords_TableOmitsDigestColumn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Records(&buf, sampleRecords(), render.Options{
		Format:         render.FormatTable,
		CheckRequested: true,
		OmitDigest:     true,
	})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "HASH")
	assert.NotContains(t, buf.String(), "1111111111111111")
}

func TestRecords_Plain(t *testing.T) {
	t.Parallel()

	records := []checksum.Record{
		{FileName: "a.txt", Algorithm: "SHA256", Digest: "1111111111111111"},
	}

	var buf bytes.Buffer
	err := render.Records(&buf, records, render.Options{Format: render.FormatPlain})
	require.NoError(t, err)

	assert.Equal(t, "1111111111111111  a.txt (SHA256)\n", buf.String())
}

func TestRecords_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Records(&buf, sampleRecords(), render.Options{
		Format:         render.FormatJSON,
		CheckRequested: true,
	})
	require.NoError(t, err)

	var out []struct {
		File      string `json:"file"`
		Algorithm string `json:"algorithm"`
		Digest    string `json:"digest"`
		Verified  *bool  `json:"verified"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "a.txt", out[0].File)
	require.NotNil(t, out[0].Verified)
	assert.True(t, *out[0].Verified)
	require.NotNil(t, out[1].Verified)
	assert.False(t, *out[1].Verified)
}

func TestRecords_JSONUncheckedHasNoVerifiedField(t *testing.T) {
	t.Parallel()

	records := []checksum.Record{
		{FileName: "a.txt", Algorithm: "SHA256", Digest: "1111111111111111"},
	}

	var buf bytes.Buffer
	err := render.Records(&buf, records, render.Options{Format: render.FormatJSON})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "verified")
}

func TestRecords_Template(t *testing.T) {
	t.Parallel()

	records := []checksum.Record{
		{FileName: "a.txt", Algorithm: "SHA256", Digest: "1111111111111111", Verified: checksum.VerificationPassed},
	}

	var buf bytes.Buffer
	err := render.Records(&buf, records, render.Options{
		Format:   render.FormatTemplate,
		Template: "{digest} {file} [{algorithm}] {verified}",
	})
	require.NoError(t, err)

	assert.Equal(t, "1111111111111111 a.txt [SHA256] passed\n", buf.String())
}

func TestRecords_TemplateUnknownPlaceholder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Records(&buf, sampleRecords(), render.Options{
		Format:   render.FormatTemplate,
		Template: "{nope}",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRecords_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, render.Records(&buf, records, render.Options{Format: render.FormatPlain}))

	assert.Equal(t, "b.txt", records[0].FileName)
	assert.Equal(t, "a.txt", records[1].FileName)
}
