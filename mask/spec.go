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

package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// ruleSeparator splits a rule string into pattern and mode. The last
// occurrence wins so patterns may contain "->" themselves.
const ruleSeparator = "->"

// Spec is the uncompiled description of a rule, as found in configuration.
type Spec struct {
	// Key is the property key the spec was read from, empty for specs
	// built in code.
	Key string `mapstructure:"-"`

	Pattern     string `mapstructure:"pattern"`
	Mode        string `mapstructure:"mode"`
	Placeholder string `mapstructure:"placeholder"`
	Keep        int    `mapstructure:"keep"`
	Char        string `mapstructure:"char"`
}

// ParseSpec parses a rule string of the form "<pattern>-><mode>".
//
// Recognized modes (names are case-insensitive):
//
//	full                      replace with "****"
//	full(<placeholder>)       replace with <placeholder>
//	partial-keep-suffix(n)    keep last n runes, fill the rest with '*'
//	partial-keep-suffix(n,c)  keep last n runes, fill the rest with c
//	literal                   <pattern> is a literal token, replace with "****"
//	literal(<replacement>)    <pattern> is a literal token, replace with <replacement>
//
// A string without "->" is a full rule.
func ParseSpec(value string) (Spec, error) {
	idx := strings.LastIndex(value, ruleSeparator)
	if idx < 0 {
		return Spec{Pattern: value, Mode: ModeFull.String()}, nil
	}

	spec := Spec{Pattern: value[:idx]}
	mode := strings.TrimSpace(value[idx+len(ruleSeparator):])

	name, args, hasArgs := strings.Cut(mode, "(")
	name = strings.ToLower(strings.TrimSpace(name))
	if hasArgs {
		var ok bool
		args, ok = strings.CutSuffix(args, ")")
		if !ok {
			return Spec{}, fmt.Errorf("%w: missing ')' in %q", ErrInvalidMode, mode)
		}
	}
	spec.Mode = name

	switch name {
	case ModeFull.String(), ModeLiteral.String():
		spec.Placeholder = args
	case ModePartialKeepSuffix.String():
		if !hasArgs {
			return Spec{}, fmt.Errorf("%w: %s needs a keep count", ErrInvalidMode, name)
		}
		count, char, hasChar := strings.Cut(args, ",")
		keep, err := cast.ToIntE(strings.TrimSpace(count))
		if err != nil {
			return Spec{}, fmt.Errorf("%w: keep count %q: %w", ErrInvalidMode, count, err)
		}
		spec.Keep = keep
		if hasChar {
			spec.Char = strings.TrimSpace(char)
		}
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	return spec, nil
}

// DecodeSpec builds a [Spec] from a structured configuration value such as
// a YAML mapping. Values are weakly typed, so keep: "4" is accepted.
func DecodeSpec(input map[string]any) (Spec, error) {
	var spec Spec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Spec{}, err
	}
	if err = decoder.Decode(input); err != nil {
		return Spec{}, fmt.Errorf("decode mask rule: %w", err)
	}
	if spec.Mode == "" {
		spec.Mode = ModeFull.String()
	}
	return spec, nil
}

// Rule compiles the spec.
func (s Spec) Rule() (Rule, error) {
	switch strings.ToLower(s.Mode) {
	case "", ModeFull.String():
		return NewFullRule(s.Pattern, s.Placeholder)
	case ModeLiteral.String():
		return NewLiteralRule(s.Pattern, s.Placeholder)
	case ModePartialKeepSuffix.String():
		fill := rune(0)
		if s.Char != "" {
			if utf8.RuneCountInString(s.Char) != 1 {
				return Rule{}, fmt.Errorf("%w: fill %q must be a single character", ErrInvalidMode, s.Char)
			}
			fill, _ = utf8.DecodeRuneInString(s.Char)
		}
		return NewPartialRule(s.Pattern, s.Keep, fill)
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
	}
}

// String renders the spec as a rule string.
func (s Spec) String() string {
	switch strings.ToLower(s.Mode) {
	case ModePartialKeepSuffix.String():
		if s.Char != "" {
			return fmt.Sprintf("%s->%s(%d,%s)", s.Pattern, ModePartialKeepSuffix, s.Keep, s.Char)
		}
		return fmt.Sprintf("%s->%s(%d)", s.Pattern, ModePartialKeepSuffix, s.Keep)
	case ModeLiteral.String():
		if s.Placeholder != "" {
			return fmt.Sprintf("%s->%s(%s)", s.Pattern, ModeLiteral, s.Placeholder)
		}
		return s.Pattern + ruleSeparator + ModeLiteral.String()
	default:
		if s.Placeholder != "" {
			return fmt.Sprintf("%s->%s(%s)", s.Pattern, ModeFull, s.Placeholder)
		}
		return s.Pattern + ruleSeparator + ModeFull.String()
	}
}
