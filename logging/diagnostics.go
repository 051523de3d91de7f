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
	"context"
	"io"
	"log/slog"
	"os"
)

// Diagnostics receives problems found while configuring a writer, such as
// an invalid stream or a mask rule that does not compile. It plays the role
// of the framework's internal logger and must be safe for concurrent use.
type Diagnostics interface {
	Log(level Level, msg string)
}

// DiagnosticsFunc adapts a function to [Diagnostics].
type DiagnosticsFunc func(level Level, msg string)

// Log calls f(level, msg).
func (f DiagnosticsFunc) Log(level Level, msg string) {
	f(level, msg)
}

type slogDiagnostics struct {
	logger *slog.Logger
}

// NewDiagnostics returns diagnostics that write key=value lines to w
// through a [slog.TextHandler], tagged with component=logmask.
func NewDiagnostics(w io.Writer) Diagnostics {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevelTrace})
	return &slogDiagnostics{logger: slog.New(h).With("component", "logmask")}
}

func (d *slogDiagnostics) Log(level Level, msg string) {
	d.logger.Log(context.Background(), level.Slog(), msg)
}

// DiscardDiagnostics returns diagnostics that drop everything.
func DiscardDiagnostics() Diagnostics {
	return DiagnosticsFunc(func(Level, string) {})
}

func defaultDiagnostics() Diagnostics {
	return NewDiagnostics(os.Stderr)
}

// report logs err at ERROR level. A nil diag is allowed.
func report(diag Diagnostics, err error) {
	if diag != nil {
		diag.Log(LevelError, err.Error())
	}
}
