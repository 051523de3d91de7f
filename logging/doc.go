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

// Package logging writes log records to standard output or standard error
// after removing sensitive text from them.
//
// A [Writer] handles each record in four steps: it renders the record to
// text with a [Renderer], masks the text with a [mask.Engine], picks a sink
// from the record level and writes the result in a single Write call.
//
// # Basic Usage
//
//	w := logging.MustNew(config.Properties{
//	    "stream":   "err@INFO",
//	    "maskRule": `password=(\S+)->full`,
//	})
//	slog.SetDefault(logging.NewLogger(w))
//	slog.Info("login password=hunter2 ok")
//	// stderr: 2025-01-02 15:04:05 INFO: login password=**** ok
//
// # Stream Routing
//
// The "stream" property sets the error threshold. Records at or above it go
// to standard error and everything below it goes to standard output:
//
//	(unset)      WARN and ERROR to stderr
//	out          everything to stdout
//	err          everything to stderr
//	err@INFO     INFO, WARN and ERROR to stderr
//
// An invalid value is reported through [Diagnostics] and the WARN default
// is kept. Configuration problems never stop a Writer from being built.
//
// # Masking
//
// Mask rules come from the "mask" and "mask.<n>" properties, followed by
// the "maskRule" and "maskRule.<n>" alias family. See [mask.ParseSpec] for
// the rule syntax. Masking runs on the fully rendered line, so attribute
// values and the date are covered as well as the message.
//
// # Format
//
// The "format" property holds a [PatternRenderer] pattern and "timezone" an
// IANA zone name:
//
//	format: "{date:15:04:05.000} [{level}] {source} {message}{attrs}"
//	timezone: UTC
//
// # Testing
//
// [NewTestHelper] builds a Writer over in-memory sinks and records
// diagnostics:
//
//	th := logging.NewTestHelper(t, config.Properties{"stream": "err"})
//	th.Write(t, logging.LevelInfo, "hello")
//	assert.Equal(t, []string{"INFO: hello"}, th.StderrLines())
package logging
