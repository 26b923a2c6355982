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

import "fmt"

// The error taxonomy of the checksum core. Every failure is terminal and
// propagates unchanged to the caller; nothing in this package retries, since
// integrity verification must not silently mask transient conditions.
//
// Each class carries a process exit code so the command entry point can map
// failures without inspecting messages:
//
//   - InputError: bad user input (unsupported algorithm, missing file,
//     invalid flag combination). Exit code 1.
//   - EnvironmentError: the input may be fine but the environment is not
//     (permissions, unreadable paths). Exit code 2.
//   - RaceError: a file vanished between validation and computation
//     (time-of-check/time-of-use). Exit code 1.
//   - InvariantError: provider/validator disagreement or corrupted pipeline
//     state. Not a user problem; fatal. Exit code 3.

// InputError reports invalid user input. The offending value is always named
// in the message.
type InputError struct {
	err error
}

// NewInputError builds an InputError from a printf-style message.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{err: fmt.Errorf(format, args...)}
}

func (e *InputError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error chain.
func (e *InputError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for input errors.
func (e *InputError) ExitCode() int { return 1 }

// EnvironmentError reports a failure caused by the execution environment
// rather than by user input, e.g. insufficient privileges while resolving a
// path. The message should suggest an actionable fix.
type EnvironmentError struct {
	err error
}

// NewEnvironmentError builds an EnvironmentError from a printf-style message.
func NewEnvironmentError(format string, args ...any) *EnvironmentError {
	return &EnvironmentError{err: fmt.Errorf(format, args...)}
}

func (e *EnvironmentError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error chain.
func (e *EnvironmentError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for environment errors.
func (e *EnvironmentError) ExitCode() int { return 2 }

// RaceError reports that a file disappeared between resolution and digest
// computation. It is kept distinct from the not-found input error so users
// understand the validation was not at fault.
type RaceError struct {
	err error
}

// NewRaceError builds a RaceError from a printf-style message.
func NewRaceError(format string, args ...any) *RaceError {
	return &RaceError{err: fmt.Errorf(format, args...)}
}

func (e *RaceError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error chain.
func (e *RaceError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for race errors.
func (e *RaceError) ExitCode() int { return 1 }

// InvariantError reports a broken programming invariant, such as an
// algorithm accepted by validation but rejected by the provider at
// computation time. Callers should treat it as fatal and terminate.
type InvariantError struct {
	err error
}

// NewInvariantError builds an InvariantError from a printf-style message.
func NewInvariantError(format string, args ...any) *InvariantError {
	return &InvariantError{err: fmt.Errorf(format, args...)}
}

func (e *InvariantError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error chain.
func (e *InvariantError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for invariant violations.
func (e *InvariantError) ExitCode() int { return 3 }
