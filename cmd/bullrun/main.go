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

package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/harshatech2012/project-bullrun/cmd/bullrun/cli"
	"github.com/harshatech2012/project-bullrun/pkg/tracing"
)

// ExitCoder lets errors carry their process exit code. The checksum error
// taxonomy implements it.
type ExitCoder interface {
	error
	ExitCode() int
}

func main() {
	log.SetFlags(0)

	if err := tracing.InitFromEnv(); err != nil {
		log.Fatalf("error initializing tracing: %v", err)
	}
	defer func() {
		_ = tracing.Shutdown(context.Background())
	}()

	if err := cli.New().Execute(); err != nil {
		var ec ExitCoder
		if errors.As(err, &ec) {
			log.Printf("error during command execution: %v", err)
			_ = tracing.Shutdown(context.Background())
			os.Exit(ec.ExitCode())
		}

		_ = tracing.Shutdown(context.Background())
		log.Fatalf("error during command execution: %v", err)
	}
}
