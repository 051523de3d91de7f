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
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultFormat is the pattern used when no "format" property is set.
const DefaultFormat = "{date} {level}: {message}{attrs}"

// DefaultDateLayout is the layout of a bare {date} placeholder.
const DefaultDateLayout = "2006-01-02 15:04:05"

// Values is a set of record fields a renderer reads. The [Handler] uses it
// to skip work for fields nobody renders.
type Values uint8

const (
	ValueDate Values = 1 << iota
	ValueLevel
	ValueMessage
	ValueSource
	ValueAttrs
)

var valueNames = []struct {
	v    Values
	name string
}{
	{ValueDate, "date"},
	{ValueLevel, "level"},
	{ValueMessage, "message"},
	{ValueSource, "source"},
	{ValueAttrs, "attrs"},
}

// Has reports whether all of o is contained in v.
func (v Values) Has(o Values) bool {
	return v&o == o
}

// String lists the contained values separated by '|'.
func (v Values) String() string {
	var names []string
	for _, n := range valueNames {
		if v.Has(n.v) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Renderer turns a record into the text written to a sink. The returned
// text includes the trailing newline. Implementations must be safe for
// concurrent use.
type Renderer interface {
	Render(r slog.Record) string
	RequiredValues() Values
}

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokDate
	tokLevel
	tokMessage
	tokFile
	tokLine
	tokSource
	tokAttrs
	tokAttr
)

type token struct {
	kind tokenKind
	text string // literal text, date layout or attribute key
}

var placeholders = map[string]struct {
	kind   tokenKind
	values Values
}{
	"date":    {tokDate, ValueDate},
	"level":   {tokLevel, ValueLevel},
	"message": {tokMessage, ValueMessage},
	"file":    {tokFile, ValueSource},
	"line":    {tokLine, ValueSource},
	"source":  {tokSource, ValueSource},
	"attrs":   {tokAttrs, ValueAttrs},
	"attr":    {tokAttr, ValueAttrs},
}

var renderBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// PatternRenderer renders records through a format pattern made of literal
// text and placeholders:
//
//	{date}          record time, layout 2006-01-02 15:04:05
//	{date:<layout>} record time in a Go time layout
//	{level}         TRACE, DEBUG, INFO, WARN or ERROR
//	{message}       record message
//	{file} {line}   caller file name and line
//	{source}        file:line
//	{attrs}         all attributes as key=value, preceded by a space
//	{attr:<key>}    value of one attribute; dots address groups
//
// A '{' without a closing '}' is literal text. Every rendering ends with a
// newline.
type PatternRenderer struct {
	pattern string
	tokens  []token
	values  Values
	loc     *time.Location
}

// NewPatternRenderer compiles pattern. Times are converted to loc before
// formatting; a nil loc keeps the record's own location.
func NewPatternRenderer(pattern string, loc *time.Location) (*PatternRenderer, error) {
	tokens, values, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &PatternRenderer{
		pattern: pattern,
		tokens:  tokens,
		values:  values,
		loc:     loc,
	}, nil
}

// MustPatternRenderer is like [NewPatternRenderer] but panics on error.
func MustPatternRenderer(pattern string) *PatternRenderer {
	p, err := NewPatternRenderer(pattern, nil)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePattern(pattern string) ([]token, Values, error) {
	var (
		tokens []token
		values Values
	)

	literal := func(s string) {
		if s != "" {
			tokens = append(tokens, token{kind: tokLiteral, text: s})
		}
	}

	rest := pattern
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			literal(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			literal(rest)
			break
		}
		end += open

		literal(rest[:open])

		name, arg, hasArg := strings.Cut(rest[open+1:end], ":")
		name = strings.ToLower(strings.TrimSpace(name))
		p, ok := placeholders[name]
		if !ok {
			return nil, 0, fmt.Errorf("%w: unknown placeholder %q", ErrInvalidFormat, rest[open:end+1])
		}

		t := token{kind: p.kind, text: arg}
		switch p.kind {
		case tokDate:
			if !hasArg || arg == "" {
				t.text = DefaultDateLayout
			}
		case tokAttr:
			t.text = strings.TrimSpace(arg)
			if t.text == "" {
				return nil, 0, fmt.Errorf("%w: %q needs an attribute key", ErrInvalidFormat, rest[open:end+1])
			}
		}
		tokens = append(tokens, t)
		values |= p.values

		rest = rest[end+1:]
	}

	return tokens, values, nil
}

// Pattern returns the source pattern.
func (p *PatternRenderer) Pattern() string {
	return p.pattern
}

// RequiredValues reports the record fields used by the pattern.
func (p *PatternRenderer) RequiredValues() Values {
	return p.values
}

// Render formats r.
func (p *PatternRenderer) Render(r slog.Record) string {
	b := renderBuilderPool.Get().(*strings.Builder)
	b.Reset()
	defer renderBuilderPool.Put(b)

	var file string
	var line int
	if p.values.Has(ValueSource) {
		file, line = recordSource(r.PC)
	}

	for _, t := range p.tokens {
		switch t.kind {
		case tokLiteral:
			b.WriteString(t.text)
		case tokDate:
			if !r.Time.IsZero() {
				ts := r.Time
				if p.loc != nil {
					ts = ts.In(p.loc)
				}
				b.WriteString(ts.Format(t.text))
			}
		case tokLevel:
			b.WriteString(LevelFromSlog(r.Level).String())
		case tokMessage:
			b.WriteString(r.Message)
		case tokFile:
			b.WriteString(file)
		case tokLine:
			if line > 0 {
				b.WriteString(strconv.Itoa(line))
			}
		case tokSource:
			if file != "" {
				b.WriteString(file)
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(line))
			}
		case tokAttrs:
			r.Attrs(func(a slog.Attr) bool {
				appendAttr(b, "", a)
				return true
			})
		case tokAttr:
			if v, ok := findAttr(r, t.text); ok {
				appendValue(b, v)
			}
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// appendAttr writes " key=value", expanding groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, groupPrefix, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	appendValue(b, a.Value)
}

func appendValue(b *strings.Builder, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		b.WriteString(v.String())
	case slog.KindInt64:
		b.WriteString(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		b.WriteString(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		b.WriteString(strconv.FormatFloat(v.Float64(), 'f', -1, 64))
	case slog.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case slog.KindDuration:
		b.WriteString(v.Duration().String())
	case slog.KindTime:
		b.WriteString(v.Time().Format(time.RFC3339))
	default:
		if err, ok := v.Any().(error); ok {
			b.WriteString(err.Error())
			return
		}
		// Only use fmt.Sprint as last resort
		b.WriteString(fmt.Sprint(v.Any()))
	}
}

// findAttr looks up an attribute by key. A dotted key walks into groups.
func findAttr(r slog.Record, key string) (slog.Value, bool) {
	var (
		found slog.Value
		ok    bool
	)
	r.Attrs(func(a slog.Attr) bool {
		found, ok = lookupAttr(a, key)
		return !ok
	})
	return found, ok
}

func lookupAttr(a slog.Attr, key string) (slog.Value, bool) {
	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		if a.Key == key {
			return v, true
		}
		return slog.Value{}, false
	}

	rest := key
	if a.Key != "" {
		var found bool
		if rest, found = strings.CutPrefix(key, a.Key+"."); !found {
			return slog.Value{}, false
		}
	}
	for _, ga := range v.Group() {
		if gv, ok := lookupAttr(ga, rest); ok {
			return gv, true
		}
	}
	return slog.Value{}, false
}

// recordSource resolves a program counter to a file base name and line.
func recordSource(pc uintptr) (string, int) {
	if pc == 0 {
		return "", 0
	}
	fs := runtime.CallersFrames([]uintptr{pc})
	f, _ := fs.Next()
	if f.File == "" {
		return "", 0
	}
	return filepath.Base(f.File), f.Line
}
