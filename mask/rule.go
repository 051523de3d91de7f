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
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"
)

// DefaultPlaceholder replaces spans masked by full and literal rules when no
// placeholder is configured.
const DefaultPlaceholder = "****"

// DefaultFill is the rune used by partial-keep-suffix rules when no fill
// character is configured.
const DefaultFill = '*'

// Mode selects how a matched span is replaced.
type Mode int

const (
	// ModeFull replaces the whole span with a placeholder.
	ModeFull Mode = iota
	// ModePartialKeepSuffix replaces all but the last N runes with a fill rune.
	ModePartialKeepSuffix
	// ModeLiteral replaces a literal token with a placeholder.
	ModeLiteral
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModePartialKeepSuffix:
		return "partial-keep-suffix"
	case ModeLiteral:
		return "literal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Rule is a compiled masking rule. The zero value matches nothing.
// Rules are immutable and safe for concurrent use.
//
// A capturing group inside a repetition only reports its last iteration,
// so for patterns such as (?:(\w+),)+ the whole match is masked instead of
// the groups.
type Rule struct {
	pattern     *regexp.Regexp
	token       string // raw token of literal rules
	mode        Mode
	placeholder string
	keep        int
	fill        rune
	wholeMatch  bool
}

// NewFullRule compiles a rule that replaces every match of pattern (or each
// of its capturing groups) with placeholder. An empty placeholder selects
// [DefaultPlaceholder].
func NewFullRule(pattern, placeholder string) (Rule, error) {
	re, err := compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return Rule{
		pattern:     re,
		mode:        ModeFull,
		placeholder: placeholder,
		wholeMatch:  repeatsCapture(re),
	}, nil
}

// NewPartialRule compiles a rule that keeps the last keep runes of every
// masked span and replaces the rest with fill. Spans no longer than keep are
// left untouched.
func NewPartialRule(pattern string, keep int, fill rune) (Rule, error) {
	if keep < 0 {
		return Rule{}, fmt.Errorf("%w: keep count %d is negative", ErrInvalidMode, keep)
	}
	re, err := compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	if fill == 0 {
		fill = DefaultFill
	}
	return Rule{
		pattern:    re,
		mode:       ModePartialKeepSuffix,
		keep:       keep,
		fill:       fill,
		wholeMatch: repeatsCapture(re),
	}, nil
}

// NewLiteralRule builds a rule that replaces every occurrence of token with
// replacement. The token is matched verbatim, not as a regular expression.
func NewLiteralRule(token, replacement string) (Rule, error) {
	if token == "" {
		return Rule{}, ErrEmptyPattern
	}
	if replacement == "" {
		replacement = DefaultPlaceholder
	}
	return Rule{
		pattern:     regexp.MustCompile(regexp.QuoteMeta(token)),
		token:       token,
		mode:        ModeLiteral,
		placeholder: replacement,
	}, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}

// repeatsCapture reports whether a capturing group of re sits inside a
// repetition that can match more than once.
func repeatsCapture(re *regexp.Regexp) bool {
	tree, err := syntax.Parse(re.String(), syntax.Perl)
	if err != nil {
		return false
	}
	return captureInRepeat(tree, false)
}

func captureInRepeat(re *syntax.Regexp, repeated bool) bool {
	switch re.Op {
	case syntax.OpCapture:
		if repeated {
			return true
		}
	case syntax.OpStar, syntax.OpPlus:
		repeated = true
	case syntax.OpRepeat:
		if re.Max < 0 || re.Max > 1 {
			repeated = true
		}
	}
	for _, sub := range re.Sub {
		if captureInRepeat(sub, repeated) {
			return true
		}
	}
	return false
}

// Mode returns the replacement mode.
func (r Rule) Mode() Mode {
	return r.mode
}

// Pattern returns the source of the compiled pattern. For literal rules
// this is the escaped token.
func (r Rule) Pattern() string {
	if r.pattern == nil {
		return ""
	}
	return r.pattern.String()
}

// String renders the rule back into its "<pattern>-><mode>" form, which
// [ParseSpec] turns into an equivalent rule. Literal rules show the raw
// token.
func (r Rule) String() string {
	switch r.mode {
	case ModePartialKeepSuffix:
		return fmt.Sprintf("%s->%s(%d,%c)", r.Pattern(), r.mode, r.keep, r.fill)
	case ModeLiteral:
		return fmt.Sprintf("%s->%s(%s)", r.token, r.mode, r.placeholder)
	default:
		return fmt.Sprintf("%s->%s(%s)", r.Pattern(), r.mode, r.placeholder)
	}
}

// Apply masks every non-overlapping match of the rule in s, scanning s once
// from left to right. Text outside the masked spans is copied unchanged.
func (r Rule) Apply(s string) string {
	if r.pattern == nil || s == "" {
		return s
	}

	matches := r.pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		groups := len(m)/2 - 1
		if groups == 0 || r.wholeMatch || !groupsInOrder(m) {
			last = r.replaceSpan(&b, s, last, m[0], m[1])
			continue
		}
		for g := 1; g <= groups; g++ {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				// Group did not participate in this match.
				continue
			}
			last = r.replaceSpan(&b, s, last, start, end)
		}
	}
	b.WriteString(s[last:])

	return b.String()
}

// groupsInOrder reports whether the participating groups of match m are
// laid out left to right, each one either nested in the previous masked
// span or starting at or after its end.
func groupsInOrder(m []int) bool {
	spanStart, spanEnd := -1, -1
	for g := 2; g+1 < len(m); g += 2 {
		start, end := m[g], m[g+1]
		if start < 0 || start == end {
			continue
		}
		switch {
		case start >= spanEnd:
			spanStart, spanEnd = start, end
		case start >= spanStart && end <= spanEnd:
			// nested
		default:
			return false
		}
	}
	return true
}

// replaceSpan copies s[last:start] and the masked form of s[start:end] into
// b and returns the new copy position. Empty spans and spans nested inside
// an already replaced group are skipped.
func (r Rule) replaceSpan(b *strings.Builder, s string, last, start, end int) int {
	if start == end || start < last {
		return last
	}
	b.WriteString(s[last:start])
	b.WriteString(r.replace(s[start:end]))
	return end
}

func (r Rule) replace(span string) string {
	switch r.mode {
	case ModePartialKeepSuffix:
		return keepSuffix(span, r.keep, r.fill)
	default:
		return r.placeholder
	}
}

// keepSuffix replaces all but the last keep runes of span with fill.
func keepSuffix(span string, keep int, fill rune) string {
	n := utf8.RuneCountInString(span)
	if n <= keep {
		return span
	}

	masked := n - keep
	var b strings.Builder
	b.Grow(len(span))
	for range masked {
		b.WriteRune(fill)
	}

	// Skip the masked runes and keep the tail byte-for-byte.
	i := 0
	for j := range span {
		if i == masked {
			b.WriteString(span[j:])
			break
		}
		i++
	}

	return b.String()
}
