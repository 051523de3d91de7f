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
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rivaas.dev/logmask/config"
)

// TestFormat renders the level and the message only, so test output does
// not depend on the clock.
const TestFormat = "{level}: {message}{attrs}"

// Diagnostic is one recorded configuration problem.
type Diagnostic struct {
	Level   Level
	Message string
}

// DiagnosticsRecorder collects diagnostics for test assertions.
// Thread-safe: can be used concurrently by multiple goroutines.
type DiagnosticsRecorder struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// Log implements [Diagnostics].
func (d *DiagnosticsRecorder) Log(level Level, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = append(d.entries, Diagnostic{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (d *DiagnosticsRecorder) Entries() []Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]Diagnostic(nil), d.entries...)
}

// Len returns the number of recorded diagnostics.
func (d *DiagnosticsRecorder) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.entries)
}

// TestHelper provides a [Writer] backed by in-memory sinks.
type TestHelper struct {
	Writer      *Writer
	Stdout      *bytes.Buffer
	Stderr      *bytes.Buffer
	Diagnostics *DiagnosticsRecorder
}

// NewTestHelper creates a [TestHelper] for props. Unless props sets
// "format", records render with [TestFormat]. Additional [Option] values
// are applied after the in-memory sinks.
func NewTestHelper(t *testing.T, props config.Properties, opts ...Option) *TestHelper {
	t.Helper()

	if _, ok := props.String(PropertyFormat); !ok {
		props = props.Clone()
		props[PropertyFormat] = TestFormat
	}

	th := &TestHelper{
		Stdout:      &bytes.Buffer{},
		Stderr:      &bytes.Buffer{},
		Diagnostics: &DiagnosticsRecorder{},
	}

	defaultOpts := []Option{
		WithStdout(th.Stdout),
		WithStderr(th.Stderr),
		WithDiagnostics(th.Diagnostics),
	}
	defaultOpts = append(defaultOpts, opts...)

	w, err := New(props, defaultOpts...)
	require.NoError(t, err, "failed to create writer")
	th.Writer = w

	return th
}

// Write writes a record with the given level, message and attributes.
func (th *TestHelper) Write(t *testing.T, level Level, msg string, args ...any) {
	t.Helper()

	r := slog.NewRecord(time.Now(), level.Slog(), msg, 0)
	r.Add(args...)
	require.NoError(t, th.Writer.Write(r))
}

// Logger returns a slog logger writing through the helper's writer.
func (th *TestHelper) Logger() *slog.Logger {
	return NewLogger(th.Writer)
}

// StdoutLines returns the lines written to standard output.
func (th *TestHelper) StdoutLines() []string {
	return splitLines(th.Stdout.String())
}

// StderrLines returns the lines written to error output.
func (th *TestHelper) StderrLines() []string {
	return splitLines(th.Stderr.String())
}

// Reset clears both sinks and the recorded diagnostics.
func (th *TestHelper) Reset() {
	th.Stdout.Reset()
	th.Stderr.Reset()
	th.Diagnostics.mu.Lock()
	th.Diagnostics.entries = nil
	th.Diagnostics.mu.Unlock()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// MockWriter is an io.Writer that records every write for test assertions.
// Setting Err makes every write fail with it.
//
// Thread-safe: can be used concurrently by multiple goroutines.
type MockWriter struct {
	Err error

	mu     sync.Mutex
	writes []string
}

// Write implements io.Writer.
func (mw *MockWriter) Write(p []byte) (int, error) {
	if mw.Err != nil {
		return 0, mw.Err
	}

	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.writes = append(mw.writes, string(p))
	return len(p), nil
}

// WriteCount returns the number of write calls.
func (mw *MockWriter) WriteCount() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	return len(mw.writes)
}

// Writes returns a copy of all recorded writes.
func (mw *MockWriter) Writes() []string {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	return append([]string(nil), mw.writes...)
}
