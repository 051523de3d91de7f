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

//go:build !integration

package mask

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullRule_ReplacesEveryOccurrence(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule("T", "<x>")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no occurrence", input: "abc", want: "abc"},
		{name: "empty input", input: "", want: ""},
		{name: "single", input: "aTb", want: "a<x>b"},
		{name: "adjacent", input: "TTT", want: "<x><x><x>"},
		{name: "spread", input: "T and T or T.", want: "<x> and <x> or <x>."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rule.Apply(tt.input))
		})
	}
}

func TestFullRule_DefaultPlaceholder(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`secret-\d+`, "")
	require.NoError(t, err)

	assert.Equal(t, "id=**** done", rule.Apply("id=secret-42 done"))
}

func TestFullRule_MasksCaptureGroupsOnly(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`password=(\S+)`, "")
	require.NoError(t, err)

	assert.Equal(t, "login password=**** ok", rule.Apply("login password=hunter2 ok"))
	assert.Equal(t, "password=**** password=****", rule.Apply("password=a password=bb"))
}

func TestFullRule_MultipleAndOptionalGroups(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`user=(\w+)(?: pin=(\d+))?`, "#")
	require.NoError(t, err)

	assert.Equal(t, "user=# pin=#", rule.Apply("user=bob pin=1234"))
	assert.Equal(t, "user=# done", rule.Apply("user=bob done"))
}

func TestFullRule_NestedGroupsMaskOuterSpan(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`key=((\d+)-(\d+))`, "X")
	require.NoError(t, err)

	assert.Equal(t, "key=X;", rule.Apply("key=12-34;"))
}

func TestFullRule_RepeatedGroupMasksWholeMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		input   string
		want    string
	}{
		{
			name:    "alternation inside plus",
			pattern: `key=(?:(a+)|(b+),)+`,
			input:   "key=bbb,aa",
			want:    "****",
		},
		{
			name:    "group inside plus",
			pattern: `(?:(\w+),)+`,
			input:   "a,bb,ccc, tail",
			want:    "**** tail",
		},
		{
			name:    "group inside bounded repeat",
			pattern: `ids=(?:(\d+);){2}`,
			input:   "ids=12;34; end",
			want:    "**** end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, err := NewFullRule(tt.pattern, "")
			require.NoError(t, err)

			got := rule.Apply(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "bbb")
		})
	}
}

func TestFullRule_OptionalGroupKeepsGroupMasking(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`pin(?:=(\d+))?`, "")
	require.NoError(t, err)

	assert.Equal(t, "pin=**** pin", rule.Apply("pin=1234 pin"))
}

func TestPartialRule_RepeatedGroupMasksWholeMatch(t *testing.T) {
	t.Parallel()

	rule, err := NewPartialRule(`(?:(\d+)-)+`, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, "********4-", rule.Apply("1111-2224-"))
}

func TestFullRule_EmptyMatchesLeaveTextUnchanged(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`x*`, "")
	require.NoError(t, err)

	assert.Equal(t, "a****b", rule.Apply("axxb"))
	assert.Equal(t, "abc", rule.Apply("abc"))
}

func TestPartialRule_KeepSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		keep  int
		input string
		want  string
	}{
		{name: "longer than keep", keep: 4, input: "4111111111111111", want: "************1111"},
		{name: "equal to keep", keep: 4, input: "1234", want: "1234"},
		{name: "shorter than keep", keep: 4, input: "12", want: "12"},
		{name: "keep zero", keep: 0, input: "abc", want: "***"},
		{name: "multibyte runes", keep: 2, input: "äöüß", want: "**üß"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, err := NewPartialRule(`\S+`, tt.keep, '*')
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.Apply(tt.input))
		})
	}
}

func TestPartialRule_LengthProperty(t *testing.T) {
	t.Parallel()

	const keep = 3
	rule, err := NewPartialRule(`[a-z]+`, keep, '*')
	require.NoError(t, err)

	for l := 1; l <= 12; l++ {
		span := strings.Repeat("a", l-1) + "z"
		got := rule.Apply(span)
		if l <= keep {
			assert.Equal(t, span, got, "length %d", l)
			continue
		}
		assert.Equal(t, strings.Repeat("*", l-keep)+span[l-keep:], got, "length %d", l)
	}
}

func TestPartialRule_CustomFillInGroup(t *testing.T) {
	t.Parallel()

	rule, err := NewPartialRule(`card=(\d+)`, 4, '#')
	require.NoError(t, err)

	assert.Equal(t, "card=############4242 ok", rule.Apply("card=4242424242424242 ok"))
}

func TestPartialRule_NegativeKeep(t *testing.T) {
	t.Parallel()

	_, err := NewPartialRule(`\d+`, -1, '*')
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestLiteralRule_IgnoresRegexMetacharacters(t *testing.T) {
	t.Parallel()

	rule, err := NewLiteralRule("a.b", "[hidden]")
	require.NoError(t, err)

	assert.Equal(t, "[hidden] axb [hidden]", rule.Apply("a.b axb a.b"))
	assert.Equal(t, ModeLiteral, rule.Mode())
}

func TestLiteralRule_EmptyToken(t *testing.T) {
	t.Parallel()

	_, err := NewLiteralRule("", "x")
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestRule_StableWhenPlaceholderCannotMatch(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`token=(\w+)`, "****")
	require.NoError(t, err)

	once := rule.Apply("a token=abc b token=xyz")
	assert.Equal(t, once, rule.Apply(once))
}

func TestRule_SinglePassWithSelfMatchingPlaceholder(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`a`, "aa")
	require.NoError(t, err)

	assert.Equal(t, "aaxaa", rule.Apply("axa"))
}

func TestRule_ZeroValueMatchesNothing(t *testing.T) {
	t.Parallel()

	var rule Rule
	assert.Equal(t, "password=x", rule.Apply("password=x"))
	assert.Empty(t, rule.Pattern())
}

func TestNewFullRule_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewFullRule(`(unclosed`, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	_, err = NewFullRule("", "")
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "full", ModeFull.String())
	assert.Equal(t, "partial-keep-suffix", ModePartialKeepSuffix.String())
	assert.Equal(t, "literal", ModeLiteral.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestRule_String(t *testing.T) {
	t.Parallel()

	full, err := NewFullRule(`pw=(\S+)`, "")
	require.NoError(t, err)
	assert.Equal(t, `pw=(\S+)->full(****)`, full.String())

	partial, err := NewPartialRule(`\d+`, 2, '#')
	require.NoError(t, err)
	assert.Equal(t, `\d+->partial-keep-suffix(2,#)`, partial.String())

	literal, err := NewLiteralRule("s3cr3t.x", "")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t.x->literal(****)", literal.String())
}

func TestRule_StringParsesBack(t *testing.T) {
	t.Parallel()

	for _, value := range []string{
		`pw=(\S+)->full([pw])`,
		`\b(\d{16})\b->partial-keep-suffix(4,#)`,
		`s3cr3t.x->literal(****)`,
	} {
		spec, err := ParseSpec(value)
		require.NoError(t, err, value)
		rule, err := spec.Rule()
		require.NoError(t, err, value)
		assert.Equal(t, value, rule.String())
	}
}
