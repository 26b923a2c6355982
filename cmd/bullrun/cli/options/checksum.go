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

package options

import (
	"github.com/spf13/cobra"
)

// ChecksumOptions contains the flags of the checksum subcommand.
type ChecksumOptions struct {
	// Algorithms lists the hash algorithms to compute. Falls back to the
	// configured default_algorithms when omitted.
	Algorithms []string
	// Files lists the files whose digests are required.
	Files []string
	// Check lists expected-hash sources: literal hash values or files
	// containing hash values.
	Check []string
	// OneToOne pairs files and algorithms element-wise instead of computing
	// the full cross product.
	OneToOne bool
	// StrictCheck requires at least as many expected hashes as computed
	// ones and consumes each matched value.
	StrictCheck bool
	// OmitHash drops the hash column from the output. Only valid together
	// with Check.
	OmitHash bool
	// Output selects the output format (table, plain, json, template).
	Output string
	// Template is the per-record line template used with the template
	// output format.
	Template string
}

var _ FlagAdder = (*ChecksumOptions)(nil)

// AddFlags adds the checksum flags to the cobra command.
func (o *ChecksumOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.Algorithms, "algorithms", "a", nil,
		"algorithm(s) for computing hash values")

	cmd.Flags().StringSliceVarP(&o.Files, "files", "f", nil,
		"file(s) whose hash is required")
	_ = cmd.MarkFlagRequired("files")
	_ = cmd.MarkFlagFilename("files")

	cmd.Flags().StringSliceVarP(&o.Check, "check", "c", nil,
		"hash values to compare against: a list of hash value(s) or file(s) containing hash values")

	cmd.Flags().BoolVar(&o.OneToOne, "one-to-one", false,
		"pair file(s) and algorithm(s) element-wise; requires equal counts")

	cmd.Flags().BoolVar(&o.StrictCheck, "strict-check", false,
		"perform strict verification; requires at least as many hash values to check against as to compute")

	cmd.Flags().BoolVar(&o.OmitHash, "omit-hash", false,
		"omit hash values from output; only valid together with --check")

	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"output format: table, plain, json or template (default: table on a terminal, plain otherwise)")

	cmd.Flags().StringVar(&o.Template, "template", "",
		"per-record output template, e.g. '{digest}  {file}' (implies --output template)")
}
