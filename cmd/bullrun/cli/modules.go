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
	"github.com/spf13/cobra"
)

// NewGPG creates the placeholder for the signature verification module.
func NewGPG() *cobra.Command {
	return &cobra.Command{
		Use:   "gpg",
		Short: "Verify files using GPG signatures (not yet available).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("Oh! Still under development.")
			return nil
		},
	}
}

// NewGUI creates the placeholder for the graphical interface module.
func NewGUI() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical interface (not yet available).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("Oh! Still under development.")
			return nil
		},
	}
}
