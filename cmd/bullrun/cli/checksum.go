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

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshatech2012/project-bullrun/cmd/bullrun/cli/options"
	"github.com/harshatech2012/project-bullrun/pkg/checksum"
	"github.com/harshatech2012/project-bullrun/pkg/config"
	"github.com/harshatech2012/project-bullrun/pkg/hashing"
	"github.com/harshatech2012/project-bullrun/pkg/render"
	"github.com/harshatech2012/project-bullrun/pkg/tracing"
)

// NewChecksum creates the checksum subcommand, the tool's core module.
func NewChecksum() *cobra.Command {
	o := &options.ChecksumOptions{}

	long := `Compute cryptographic digests of files and optionally verify them.

By default every file is hashed with every algorithm (the cross product of
both lists). With --one-to-one, files and algorithms are paired element-wise
and both lists must have the same length.

Expected hashes given via --check may be literal hash values or paths of
files containing hash values; every hexadecimal run of at least 16
characters found in such a file counts. With --strict-check each expected
value can confirm at most one computed digest.`

	cmd := &cobra.Command{
		Use:   "checksum [OPTIONS]",
		Short: "Compute and verify file checksums.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecksum(cmd, o)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runChecksum(cmd *cobra.Command, o *options.ChecksumOptions) error {
	cfg, err := ro.LoadConfig()
	if err != nil {
		return err
	}
	logger := ro.NewLogger(cmd, cfg)

	algorithms := o.Algorithms
	if len(algorithms) == 0 {
		algorithms = cfg.DefaultAlgorithms
	}
	if len(algorithms) == 0 {
		return checksum.NewInputError(
			"no algorithms specified: pass --algorithms or set default_algorithms in the config file")
	}
	if len(o.Files) == 0 {
		return checksum.NewInputError("no files specified: pass --files")
	}

	req, err := buildRequest(o, algorithms)
	if err != nil {
		return err
	}

	provider := hashing.NewFileDigestProvider()
	pipeline := checksum.NewPipeline(provider, logger)

	var records []checksum.Record
	attrs := map[string]any{
		"bullrun.algorithms": strings.Join(algorithms, ","),
		"bullrun.file_count": len(o.Files),
		"bullrun.checked":    len(o.Check) > 0,
		"bullrun.strict":     o.StrictCheck,
	}
	err = tracing.Run(cmd.Context(), "Checksum", attrs, func(_ context.Context) error {
		var err error
		records, err = pipeline.Run(req)
		return err
	})
	if err != nil {
		return err
	}

	opts, err := renderOptions(o, cfg, cmd)
	if err != nil {
		return err
	}
	return render.Records(cmd.OutOrStdout(), records, opts)
}

// buildRequest maps the parsed flags onto a core Request. Only options the
// user actually supplied are listed as raw option names, mirroring how
// boolean flags act as presence markers in the pipeline.
func buildRequest(o *options.ChecksumOptions, algorithms []string) (*checksum.Request, error) {
	names := []string{checksum.OptionAlgorithms, checksum.OptionFiles}
	values := map[string]any{
		checksum.OptionAlgorithms: algorithms,
		checksum.OptionFiles:      o.Files,
	}

	if len(o.Check) > 0 {
		names = append(names, checksum.OptionCheck)
		values[checksum.OptionCheck] = o.Check
	}
	if o.OneToOne {
		names = append(names, checksum.OptionOneToOne)
		values[checksum.OptionOneToOne] = true
	}
	if o.StrictCheck {
		names = append(names, checksum.OptionStrictCheck)
		values[checksum.OptionStrictCheck] = true
	}
	if o.OmitHash {
		names = append(names, checksum.OptionOmitHash)
		values[checksum.OptionOmitHash] = true
	}

	return checksum.NewRequest(names, values)
}

func renderOptions(o *options.ChecksumOptions, cfg *config.Config, cmd *cobra.Command) (render.Options, error) {
	name := o.Output
	if name == "" && o.Template != "" {
		name = string(render.FormatTemplate)
	}
	if name == "" {
		name = cfg.Output
	}

	var format render.Format
	if name == "" {
		format = render.DefaultFormat(cmd.OutOrStdout())
	} else {
		var err error
		format, err = render.ParseFormat(name)
		if err != nil {
			return render.Options{}, err
		}
	}

	if format == render.FormatTemplate && o.Template == "" {
		return render.Options{}, fmt.Errorf("output format %q requires --template", format)
	}

	return render.Options{
		Format:         format,
		Template:       o.Template,
		CheckRequested: len(o.Check) > 0,
		OmitDigest:     o.OmitHash,
	}, nil
}
