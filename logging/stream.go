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
	"fmt"
	"strings"

	"rivaas.dev/logmask/config"
)

// PropertyStream is the property that selects the output stream.
const PropertyStream = "stream"

// DefaultErrorThreshold is the lowest level routed to the error sink when
// no valid stream is configured.
const DefaultErrorThreshold = LevelWarn

// Sink identifies one of the two outputs of a [Writer].
type Sink int

const (
	// SinkStdout is the standard output sink.
	SinkStdout Sink = iota
	// SinkStderr is the error output sink.
	SinkStderr
)

// String returns "out" or "err".
func (s Sink) String() string {
	if s == SinkStderr {
		return "err"
	}
	return "out"
}

// RoutingConfig is the routing policy derived from the "stream" property.
type RoutingConfig struct {
	// ErrorThreshold is the inclusive lower bound for the error sink.
	ErrorThreshold Level
	// Stream is the trimmed property value, empty when it was not set.
	Stream string
}

// Route picks the sink for a record of the given level. Records below the
// threshold go to standard output, everything else to the error output.
func (c RoutingConfig) Route(l Level) Sink {
	if l < c.ErrorThreshold {
		return SinkStdout
	}
	return SinkStderr
}

// Configure derives the routing policy from props.
//
//	(absent)     threshold WARN
//	out          threshold OFF, everything goes to standard output
//	err          threshold TRACE, everything goes to the error output
//	err@<LEVEL>  threshold <LEVEL>
//
// "out" and "err" are matched case-insensitively. In the err@<LEVEL> form
// the name must be exactly "err"; any other name is reported but the level
// still applies. An unparsable level is reported and WARN is kept. Any
// other value is reported and WARN is kept. Configure never fails.
func Configure(props config.Properties, diag Diagnostics) RoutingConfig {
	cfg := RoutingConfig{ErrorThreshold: DefaultErrorThreshold}

	stream, ok := props.String(PropertyStream)
	if !ok {
		return cfg
	}
	stream = strings.TrimSpace(stream)
	cfg.Stream = stream

	if name, levelName, hasLevel := strings.Cut(stream, "@"); hasLevel {
		if level, err := ParseLevel(levelName); err != nil {
			report(diag, fmt.Errorf("%w: %q: %w", ErrInvalidStream, stream, err))
		} else {
			cfg.ErrorThreshold = level
		}
		if name != SinkStderr.String() {
			report(diag, fmt.Errorf("%w: stream with level must be %q, %q is an invalid name",
				ErrInvalidStream, SinkStderr, name))
		}
		return cfg
	}

	switch {
	case strings.EqualFold(stream, SinkStderr.String()):
		cfg.ErrorThreshold = LevelTrace
	case strings.EqualFold(stream, SinkStdout.String()):
		cfg.ErrorThreshold = LevelOff
	default:
		report(diag, fmt.Errorf("%w: stream must be %q or %q, %q is an invalid stream name",
			ErrInvalidStream, SinkStdout, SinkStderr, stream))
	}

	return cfg
}
