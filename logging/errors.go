// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import "errors"

var (
	// ErrInvalidLevel indicates a level name that is not one of TRACE,
	// DEBUG, INFO, WARN, ERROR or OFF.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidStream indicates a "stream" property that is neither "out",
	// "err" nor "err@<LEVEL>". It is reported through [Diagnostics] and
	// never returned from [New].
	ErrInvalidStream = errors.New("invalid stream")

	// ErrInvalidFormat indicates a format pattern with an unknown
	// placeholder.
	ErrInvalidFormat = errors.New("invalid format pattern")

	// ErrNilWriter indicates a nil output was passed to [WithStdout] or
	// [WithStderr]. This is a programmer error and fails [New].
	ErrNilWriter = errors.New("output writer cannot be nil")

	// ErrNilRenderer indicates a nil renderer was passed to [WithRenderer].
	ErrNilRenderer = errors.New("renderer cannot be nil")
)
