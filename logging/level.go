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
	"log/slog"
	"math"
	"strings"
)

// Level is the severity of a record as seen by the writer. Levels are
// totally ordered: TRACE < DEBUG < INFO < WARN < ERROR < OFF.
//
// OFF is never attached to a record; it only appears as a threshold that
// nothing reaches.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

// slogLevelTrace is the slog level used for TRACE records.
const slogLevelTrace = slog.LevelDebug - 4

// String returns the upper-case level name.
func (l Level) String() string {
	if l >= LevelTrace && l <= LevelOff {
		return levelNames[l]
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelOff
}

// ParseLevel parses a level name, ignoring case and surrounding spaces.
func ParseLevel(s string) (Level, error) {
	name := strings.TrimSpace(s)
	for l, n := range levelNames {
		if strings.EqualFold(n, name) {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// LevelFromSlog maps a slog level onto the writer's levels. Levels between
// the named slog levels round down, so slog.LevelInfo+2 is INFO.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return LevelTrace
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// Slog returns the slog level that maps back onto l. OFF maps to the
// highest possible slog level.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelTrace:
		return slogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.Level(math.MaxInt)
	}
}
