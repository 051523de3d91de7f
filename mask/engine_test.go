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
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_AppliesRulesSequentially(t *testing.T) {
	t.Parallel()

	first, err := NewLiteralRule("alice", "USER")
	require.NoError(t, err)
	second, err := NewFullRule("USER", "[user]")
	require.NoError(t, err)

	e := NewEngine(first, second)
	assert.Equal(t, "hello [user]", e.Mask("hello alice"))

	reversed := NewEngine(second, first)
	assert.Equal(t, "hello USER", reversed.Mask("hello alice"))
}

func TestEngine_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilEngine *Engine
	assert.Equal(t, "x", nilEngine.Mask("x"))
	assert.Equal(t, 0, nilEngine.Len())
	assert.Nil(t, nilEngine.Rules())

	assert.Equal(t, "x", NewEngine().Mask("x"))
}

func TestEngine_RulesReturnsCopy(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule("a", "b")
	require.NoError(t, err)
	e := NewEngine(rule)

	rules := e.Rules()
	rules[0] = Rule{}
	assert.Equal(t, "b", e.Mask("a"))
}

func TestCompile_SkipsInvalidSpecs(t *testing.T) {
	t.Parallel()

	var reported []error
	e := Compile([]Spec{
		{Pattern: `pw=(\S+)`, Mode: "full"},
		{Pattern: `(broken`, Mode: "full"},
		{Pattern: `\d+`, Mode: "wipe"},
		{Pattern: `\d{4}`, Mode: "partial-keep-suffix", Keep: 2},
	}, func(err error) { reported = append(reported, err) })

	assert.Equal(t, 2, e.Len())
	require.Len(t, reported, 2)
	assert.ErrorIs(t, reported[0], ErrInvalidPattern)
	assert.ErrorIs(t, reported[1], ErrInvalidMode)

	var ruleErr *RuleError
	require.True(t, errors.As(reported[0], &ruleErr))
	assert.Empty(t, ruleErr.Key)

	assert.Equal(t, "pw=**** pin **34", e.Mask("pw=abc pin 1234"))
}

func TestFromProperties(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"maskRule": `password=(\S+)->full`,
		"mask.2":   `\d{12}(\d{4})->partial-keep-suffix(2)`,
		"mask.10":  `(broken->full`,
		"stream":   "err",
	}

	var reported []error
	e := FromProperties(props, func(err error) { reported = append(reported, err) })

	assert.Equal(t, 2, e.Len())
	require.Len(t, reported, 1)

	var ruleErr *RuleError
	require.True(t, errors.As(reported[0], &ruleErr))
	assert.Equal(t, "mask.10", ruleErr.Key)
	assert.Contains(t, ruleErr.Error(), "mask.10")

	got := e.Mask("login password=hunter2 card 4111111111111111")
	assert.Equal(t, "login password=**** card 411111111111**11", got)
}

func TestFromProperties_NilReport(t *testing.T) {
	t.Parallel()

	e := FromProperties(map[string]string{"mask": "(x"}, nil)
	assert.Equal(t, 0, e.Len())
}

func TestRuleKeys_Order(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"maskRule.0": "",
		"maskrule.1": "",
		"mask.card":  "",
		"mask.10":    "",
		"mask":       "",
		"mask.2":     "",
		"maskRule":   "",
		"mask.1":     "",
		"masking":    "",
		"format":     "",
	}

	assert.Equal(t,
		[]string{"mask", "mask.1", "mask.2", "mask.10", "mask.card", "maskRule", "maskRule.0", "maskrule.1"},
		RuleKeys(props),
	)
}

func TestFromProperties_StructuredRules(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"mask.0.pattern": `password=(\S+)`,
		"mask.0.mode":    "full",
		"mask.1.pattern": `\b(\d{16})\b`,
		"mask.1.mode":    "partial-keep-suffix",
		"mask.1.keep":    "4",
		"mask.1.char":    "#",
	}

	var reported []error
	e := FromProperties(props, func(err error) { reported = append(reported, err) })

	require.Empty(t, reported)
	require.Equal(t, 2, e.Len())
	assert.Equal(t, `password=(\S+)->full(****)`, e.Rules()[0].String())
	assert.Equal(t, `\b(\d{16})\b->partial-keep-suffix(4,#)`, e.Rules()[1].String())

	got := e.Mask("full backup password=hunter2 card 4111111111111111")
	assert.Equal(t, "full backup password=**** card ############1111", got)
}

func TestFromProperties_StructuredFieldNamesIgnoreCase(t *testing.T) {
	t.Parallel()

	e := FromProperties(map[string]string{
		"mask.card.Pattern":     `card=(\d+)`,
		"mask.card.PLACEHOLDER": "[card]",
	}, nil)

	require.Equal(t, 1, e.Len())
	assert.Equal(t, "card=[card]", e.Mask("card=4111"))
}

func TestFromProperties_StructuredRuleErrors(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"mask.0.pattern": `(broken`,
		"mask.0.mode":    "full",
		"mask.1.pattern": `x`,
		"mask.1.colour":  "red",
		"mask.2.pattern": `pin=(\d+)`,
	}

	var reported []error
	e := FromProperties(props, func(err error) { reported = append(reported, err) })

	require.Equal(t, 1, e.Len())
	assert.Equal(t, "pin=****", e.Mask("pin=1234"))
	require.Len(t, reported, 2)

	keys := make([]string, 0, len(reported))
	for _, err := range reported {
		var ruleErr *RuleError
		require.True(t, errors.As(err, &ruleErr))
		keys = append(keys, ruleErr.Key)
	}
	assert.ElementsMatch(t, []string{"mask.0", "mask.1"}, keys)
}

func TestFromProperties_RuleStringAndFieldsUnderSameKey(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"mask.0":         `token=(\S+)->full`,
		"mask.0.pattern": `password=(\S+)`,
	}

	var reported []error
	e := FromProperties(props, func(err error) { reported = append(reported, err) })

	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], ErrDuplicateRule)
	assert.Contains(t, reported[0].Error(), "mask.0")

	require.Equal(t, 1, e.Len())
	assert.Equal(t, "token=**** password=hunter2", e.Mask("token=abc password=hunter2"))
}

func TestRuleKeys_Structured(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"mask.10.pattern": "",
		"mask.2.pattern":  "",
		"mask.2.mode":     "",
		"mask":            "",
		"maskRule.0.mode": "",
	}

	assert.Equal(t, []string{"mask", "mask.2", "mask.10", "maskRule.0"}, RuleKeys(props))
}

func TestWriter_MasksEachWrite(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`token=(\w+)`, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf, NewEngine(rule))

	n, err := w.Write([]byte("token=abcdef\n"))
	require.NoError(t, err)
	assert.Equal(t, len("token=abcdef\n"), n)
	assert.Equal(t, "token=****\n", buf.String())
}

func TestWriter_Concurrent(t *testing.T) {
	t.Parallel()

	rule, err := NewFullRule(`id=(\d+)`, "#")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf, NewEngine(rule))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = fmt.Fprintf(w, "line id=%d\n", i)
		}()
	}
	wg.Wait()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Equal(t, "line id=#", string(line))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_PropagatesError(t *testing.T) {
	t.Parallel()

	w := NewWriter(failingWriter{}, NewEngine())
	n, err := w.Write([]byte("x"))
	require.Error(t, err)
	assert.Zero(t, n)
}
