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

// Package render formats checksum records for display. The checksum core
// hands over an unordered record set plus the display-affecting flags; all
// presentation decisions live here.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"
	"golang.org/x/term"

	"github.com/harshatech2012/project-bullrun/pkg/checksum"
)

// Format selects the output representation.
type Format string

const (
	// FormatTable renders an aligned column table.
	FormatTable Format = "table"
	// FormatPlain renders one "digest  file" line per record, in the style
	// of the coreutils checksum tools.
	FormatPlain Format = "plain"
	// FormatJSON renders a JSON array of record objects.
	FormatJSON Format = "json"
	// FormatTemplate renders one line per record from a user template.
	FormatTemplate Format = "template"
)

// ParseFormat parses a format name. The empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "plain":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	case "template":
		return FormatTemplate, nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: table, plain, json, template)", s)
	}
}

// DefaultFormat picks the format to use when the user did not choose one:
// an aligned table on a terminal, plain checksum lines when piped.
func DefaultFormat(w io.Writer) Format {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatTable
	}
	return FormatPlain
}

// Options carries the display-affecting flags alongside the chosen format.
type Options struct {
	// Format selects the output representation.
	Format Format
	// Template is the line template used with FormatTemplate. Placeholders:
	// {file}, {algorithm}, {digest}, {verified}.
	Template string
	// CheckRequested adds the verification column.
	CheckRequested bool
	// OmitDigest drops the digest column. Only valid with CheckRequested,
	// which the pipeline enforces before records exist.
	OmitDigest bool
}

// Records writes the record set to w in the requested format. The input
// slice is not modified; rows are displayed sorted by file then algorithm so
// output is deterministic even though the record set is unordered.
func Records(w io.Writer, records []checksum.Record, opts Options) error {
	sorted := make([]checksum.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FileName != sorted[j].FileName {
			return sorted[i].FileName < sorted[j].FileName
		}
		return sorted[i].Algorithm < sorted[j].Algorithm
	})

	switch opts.Format {
	case FormatJSON:
		return renderJSON(w, sorted, opts)
	case FormatTemplate:
		return renderTemplate(w, sorted, opts)
	case FormatPlain:
		return renderPlain(w, sorted, opts)
	default:
		return renderTable(w, sorted, opts)
	}
}

func renderTable(w io.Writer, records []checksum.Record, opts Options) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	headers := []string{"FILE", "ALGORITHM"}
	if !opts.OmitDigest {
		headers = append(headers, "HASH")
	}
	if opts.CheckRequested {
		headers = append(headers, "VERIFIED")
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range records {
		cols := []string{r.FileName, r.Algorithm}
		if !opts.OmitDigest {
			cols = append(cols, r.Digest)
		}
		if opts.CheckRequested {
			cols = append(cols, r.Verified.String())
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}

	return tw.Flush()
}

func renderPlain(w io.Writer, records []checksum.Record, opts Options) error {
	for _, r := range records {
		switch {
		case opts.OmitDigest:
			fmt.Fprintf(w, "%s (%s): %s\n", r.FileName, r.Algorithm, r.Verified)
		case opts.CheckRequested:
			fmt.Fprintf(w, "%s  %s (%s): %s\n", r.Digest, r.FileName, r.Algorithm, r.Verified)
		default:
			fmt.Fprintf(w, "%s  %s (%s)\n", r.Digest, r.FileName, r.Algorithm)
		}
	}
	return nil
}

// jsonRecord is the serialization shape for JSON output. Digest is dropped
// under omit-hash and Verified is only present when checking was requested.
type jsonRecord struct {
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest,omitempty"`
	Verified  *bool  `json:"verified,omitempty"`
}

func renderJSON(w io.Writer, records []checksum.Record, opts Options) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		jr := jsonRecord{
			File:      r.FileName,
			Algorithm: r.Algorithm,
		}
		if !opts.OmitDigest {
			jr.Digest = r.Digest
		}
		if r.Verified != checksum.VerificationNone {
			verified := r.Verified == checksum.VerificationPassed
			jr.Verified = &verified
		}
		out = append(out, jr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderTemplate(w io.Writer, records []checksum.Record, opts Options) error {
	tpl, err := fasttemplate.NewTemplate(opts.Template, "{", "}")
	if err != nil {
		return fmt.Errorf("invalid output template: %w", err)
	}

	for _, r := range records {
		line, err := tpl.ExecuteFuncStringWithErr(func(tw io.Writer, tag string) (int, error) {
			switch tag {
			case "file":
				return tw.Write([]byte(r.FileName))
			case "algorithm":
				return tw.Write([]byte(r.Algorithm))
			case "digest":
				return tw.Write([]byte(r.Digest))
			case "verified":
				return tw.Write([]byte(r.Verified.String()))
			default:
				return 0, fmt.Errorf("unknown template placeholder %q", tag)
			}
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
