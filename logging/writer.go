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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"rivaas.dev/logmask/config"
	"rivaas.dev/logmask/mask"
)

// Properties read by [New] besides [PropertyStream] and the mask rules.
const (
	PropertyFormat   = "format"
	PropertyTimezone = "timezone"
)

// renderOptions binds the renderer properties.
type renderOptions struct {
	Format   string `config:"format"`
	Timezone string `config:"timezone"`
}

// Writer renders log records, masks the rendered text and writes it to
// standard or error output depending on the record level.
//
// All fields are set by [New] and never change afterwards, so a Writer is
// safe for concurrent use. Each record reaches its sink in one Write call.
type Writer struct {
	// Set by options, consumed by New.
	stdoutW        io.Writer
	stderrW        io.Writer
	diag           Diagnostics
	location       *time.Location
	extraRules     []mask.Rule
	customRenderer bool

	routing  RoutingConfig
	engine   *mask.Engine
	renderer Renderer
	stdout   *lockedWriter
	stderr   *lockedWriter
}

func defaultWriter() *Writer {
	return &Writer{
		stdoutW: os.Stdout,
		stderrW: os.Stderr,
	}
}

// New creates a Writer configured from props and opts.
//
// Recognized properties:
//
//	stream           out | err | err@<LEVEL>, default threshold WARN
//	mask, mask.<k>   mask rules, see [mask.ParseSpec]
//	maskRule.<k>     alias family for mask rules
//	format           render pattern, see [PatternRenderer]
//	timezone         IANA zone name for {date}
//
// Invalid property values are reported through [Diagnostics] and replaced
// by defaults. New only fails on programmer errors such as a nil output.
func New(props config.Properties, opts ...Option) (*Writer, error) {
	w := defaultWriter()

	for _, opt := range opts {
		opt(w)
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	w.initialize(props)
	return w, nil
}

// MustNew creates a new Writer or panics on error.
func MustNew(props config.Properties, opts ...Option) *Writer {
	w, err := New(props, opts...)
	if err != nil {
		panic("logging initialization failed: " + err.Error())
	}
	return w
}

// Validate checks if the configuration is valid.
func (w *Writer) Validate() error {
	var errs []error
	if w.stdoutW == nil {
		errs = append(errs, fmt.Errorf("stdout: %w", ErrNilWriter))
	}
	if w.stderrW == nil {
		errs = append(errs, fmt.Errorf("stderr: %w", ErrNilWriter))
	}
	if w.customRenderer && w.renderer == nil {
		errs = append(errs, ErrNilRenderer)
	}
	return errors.Join(errs...)
}

func (w *Writer) initialize(props config.Properties) {
	if w.diag == nil {
		w.diag = defaultDiagnostics()
	}

	w.routing = Configure(props, w.diag)

	if w.engine == nil {
		w.engine = mask.FromProperties(props, func(err error) {
			report(w.diag, err)
		})
	}
	if len(w.extraRules) > 0 {
		w.engine = mask.NewEngine(append(w.engine.Rules(), w.extraRules...)...)
	}

	if !w.customRenderer {
		w.renderer = w.patternRenderer(props)
	}

	w.stdout, w.stderr = newSinks(w.stdoutW, w.stderrW)
}

// patternRenderer builds the renderer from the format properties, falling
// back to [DefaultFormat] and the local zone on invalid values.
func (w *Writer) patternRenderer(props config.Properties) Renderer {
	var ro renderOptions
	if err := config.Decode(props, &ro); err != nil {
		report(w.diag, err)
	}

	loc := w.location
	if loc == nil && ro.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(ro.Timezone); err != nil {
			report(w.diag, fmt.Errorf("invalid %s %q: %w", PropertyTimezone, ro.Timezone, err))
			loc = nil
		}
	}

	if ro.Format != "" {
		r, err := NewPatternRenderer(ro.Format, loc)
		if err == nil {
			return r
		}
		report(w.diag, err)
	}

	r, err := NewPatternRenderer(DefaultFormat, loc)
	if err != nil {
		panic(err) // DefaultFormat always compiles
	}
	return r
}

// Write renders r, masks the result and writes it to the sink selected by
// the record level. Sink errors are returned unchanged.
func (w *Writer) Write(r slog.Record) error {
	text := w.engine.Mask(w.renderer.Render(r))

	if w.routing.Route(LevelFromSlog(r.Level)) == SinkStderr {
		return w.stderr.writeString(text)
	}
	return w.stdout.writeString(text)
}

// Flush does nothing; every Write goes straight to its sink.
func (w *Writer) Flush() error {
	return nil
}

// Close does nothing. The sinks belong to the caller.
func (w *Writer) Close() error {
	return nil
}

// RequiredValues reports the record fields the writer reads. The level is
// always needed for routing.
func (w *Writer) RequiredValues() Values {
	return w.renderer.RequiredValues() | ValueLevel
}

// Threshold returns the lowest level written to the error output.
func (w *Writer) Threshold() Level {
	return w.routing.ErrorThreshold
}

// Route returns the sink a record of level l is written to.
func (w *Writer) Route(l Level) Sink {
	return w.routing.Route(l)
}

// Engine returns the mask engine in use.
func (w *Writer) Engine() *mask.Engine {
	return w.engine
}
