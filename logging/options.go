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

import (
	"io"
	"time"

	"rivaas.dev/logmask/mask"
)

// Option configures a [Writer].
type Option func(*Writer)

// WithStdout sets the standard output sink. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(wr *Writer) { wr.stdoutW = w }
}

// WithStderr sets the error output sink. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(wr *Writer) { wr.stderrW = w }
}

// WithOutput sends both sinks to w. Writes to w are serialized by a single
// lock.
func WithOutput(w io.Writer) Option {
	return func(wr *Writer) {
		wr.stdoutW = w
		wr.stderrW = w
	}
}

// WithRenderer replaces the pattern renderer built from the "format"
// property.
func WithRenderer(r Renderer) Option {
	return func(wr *Writer) {
		wr.renderer = r
		wr.customRenderer = true
	}
}

// WithDiagnostics sets where configuration problems are reported.
// Defaults to a text logger on os.Stderr.
func WithDiagnostics(d Diagnostics) Option {
	return func(wr *Writer) { wr.diag = d }
}

// WithEngine replaces the mask engine built from the mask properties.
func WithEngine(e *mask.Engine) Option {
	return func(wr *Writer) { wr.engine = e }
}

// WithMaskRules adds rules that run after the configured ones.
func WithMaskRules(rules ...mask.Rule) Option {
	return func(wr *Writer) {
		wr.extraRules = append(wr.extraRules, rules...)
	}
}

// WithLocation sets the time zone of rendered dates. It takes precedence
// over the "timezone" property.
func WithLocation(loc *time.Location) Option {
	return func(wr *Writer) { wr.location = loc }
}
