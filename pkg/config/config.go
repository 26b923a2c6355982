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

// Package config loads the optional YAML application configuration.
// Command-line flags always take precedence over configured values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds defaults a user may persist instead of repeating flags.
type Config struct {
	// DefaultAlgorithms is used when no --algorithms flag is given.
	DefaultAlgorithms []string `yaml:"default_algorithms"`
	// LogLevel is the default log level (debug, info, warn, error, silent).
	LogLevel string `yaml:"log_level"`
	// LogFormat is the default log format (text, json).
	LogFormat string `yaml:"log_format"`
	// Output is the default output format (table, plain, json, template).
	Output string `yaml:"output"`
}

// Load reads the configuration file at path. An explicitly requested file
// that does not exist or does not parse is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/bullrun/config.yaml (falling back to ~/.config).
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "bullrun", "config.yaml")
}

// LoadDefault loads the configuration from the conventional location. A
// missing file is not an error: defaults are optional, so an empty Config is
// returned instead.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}
