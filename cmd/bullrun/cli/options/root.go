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

// Package options defines the command-line flag groups for the bullrun CLI.
package options

import (
	"github.com/spf13/cobra"

	"github.com/harshatech2012/project-bullrun/pkg/config"
	"github.com/harshatech2012/project-bullrun/pkg/logging"
)

// FlagAdder is implemented by any flag group that can register itself on a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// AddAllFlags registers multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}

// RootOptions defines the global flags available on every subcommand.
type RootOptions struct {
	// OutputFile redirects standard output to a file.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// ConfigFile is an explicit configuration file path.
	ConfigFile string
}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds the root-level persistent flags.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"redirect command output to a file")
	_ = cmd.MarkFlagFilename("output-file")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "",
		"path to a configuration file (default: $XDG_CONFIG_HOME/bullrun/config.yaml)")
	_ = cmd.MarkFlagFilename("config", "yaml", "yml")
}

// LoadConfig loads the explicit config file when --config was given,
// otherwise the optional file at the conventional location.
func (o *RootOptions) LoadConfig() (*config.Config, error) {
	if o.ConfigFile != "" {
		return config.Load(o.ConfigFile)
	}
	return config.LoadDefault()
}

// NewLogger builds a logger from the root flags, letting config fill in
// values the user did not set on the command line.
func (o *RootOptions) NewLogger(cmd *cobra.Command, cfg *config.Config) logging.Logger {
	level := o.LogLevel
	if cfg != nil && cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		level = cfg.LogLevel
	}

	format := o.LogFormat
	if cfg != nil && cfg.LogFormat != "" && !cmd.Flags().Changed("log-format") {
		format = cfg.LogFormat
	}

	return logging.NewLogger(logging.Options{
		Level:  logging.ParseLogLevel(level),
		Format: logging.ParseLogFormat(format),
	})
}
