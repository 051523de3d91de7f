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
	"slices"
	"strconv"
	"strings"
)

// Property key families that hold rule strings. Keys are either the bare
// family name or "<family>.<suffix>".
var ruleKeyFamilies = []string{"mask", "maskRule"}

// Engine applies an ordered set of rules to text.
//
// Thread-safety: an Engine is immutable after construction and safe for
// concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine that applies rules in the given order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: slices.Clone(rules)}
}

// Compile builds an engine from specs. Specs that fail to compile are
// passed to report as [*RuleError] values and left out of the engine.
// report may be nil.
func Compile(specs []Spec, report func(error)) *Engine {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := spec.Rule()
		if err != nil {
			notify(report, &RuleError{Key: spec.Key, Rule: spec.String(), Err: err})
			continue
		}
		rules = append(rules, rule)
	}
	return &Engine{rules: rules}
}

// FromProperties builds an engine from the rules found in a flat property
// map. A rule is either a rule string (see [ParseSpec]) or a group of field
// keys such as mask.0.pattern and mask.0.mode, the flattened form of a
// structured rule in a YAML or TOML list (see [DecodeSpec]). See [RuleKeys]
// for the keys that are read and their order. Malformed rules are reported
// and skipped.
func FromProperties(props map[string]string, report func(error)) *Engine {
	entries := ruleEntries(props)
	specs := make([]Spec, 0, len(entries))
	for _, e := range entries {
		spec, err := e.spec()
		if err != nil {
			notify(report, &RuleError{Key: e.key, Rule: e.describe(), Err: err})
			continue
		}
		if e.value != nil && len(e.fields) > 0 {
			notify(report, fmt.Errorf("mask rule %s: %w", e.key, ErrDuplicateRule))
		}
		spec.Key = e.key
		specs = append(specs, spec)
	}
	return Compile(specs, report)
}

func notify(report func(error), err error) {
	if report != nil {
		report(err)
	}
}

// ruleEntry is one rule found in a property map: a rule string stored
// under key, fields stored under key.<field>, or both.
type ruleEntry struct {
	key    string
	value  *string
	fields map[string]any
}

// spec parses the entry. A rule string wins over fields.
func (e *ruleEntry) spec() (Spec, error) {
	if e.value != nil {
		return ParseSpec(*e.value)
	}
	return DecodeSpec(e.fields)
}

// describe renders the entry for error messages.
func (e *ruleEntry) describe() string {
	if e.value != nil {
		return *e.value
	}
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, e.fields[name]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ruleEntries groups the rule keys of props into entries, ordered as
// described on [RuleKeys].
func ruleEntries(props map[string]string) []*ruleEntry {
	var entries []*ruleEntry
	for _, family := range ruleKeyFamilies {
		byKey := make(map[string]*ruleEntry)
		entry := func(key string) *ruleEntry {
			e, ok := byKey[key]
			if !ok {
				e = &ruleEntry{key: key}
				byKey[key] = e
			}
			return e
		}

		for key, value := range props {
			if !inFamily(key, family) {
				continue
			}
			if id, field, ok := fieldKey(key[len(family):]); ok {
				e := entry(key[:len(family)] + "." + id)
				if e.fields == nil {
					e.fields = make(map[string]any)
				}
				e.fields[strings.ToLower(field)] = value
				continue
			}
			entry(key).value = &value
		}

		group := make([]*ruleEntry, 0, len(byKey))
		for _, e := range byKey {
			group = append(group, e)
		}
		slices.SortFunc(group, func(a, b *ruleEntry) int {
			return compareRuleKeys(family, a.key, b.key)
		})
		entries = append(entries, group...)
	}
	return entries
}

// fieldKey splits a key suffix of the form ".<id>.<field>". Suffixes with a
// single segment name rule strings.
func fieldKey(suffix string) (id, field string, ok bool) {
	rest, found := strings.CutPrefix(suffix, ".")
	if !found {
		return "", "", false
	}
	id, field, ok = strings.Cut(rest, ".")
	if !ok || id == "" || field == "" {
		return "", "", false
	}
	return id, field, true
}

// RuleKeys returns the keys of the rules in props, in application order.
// For a structured rule the key is the common prefix of its fields, so
// mask.0.pattern and mask.0.mode yield mask.0. Family names are matched
// case-insensitively, so environment variables that arrive lower-cased
// still count. The "mask" family comes before the "maskRule" family.
// Within a family the bare key comes first, then keys with numeric
// suffixes in ascending numeric order, then the remaining suffixes in
// lexical order.
//
//	mask, mask.1, mask.2, mask.10, mask.card, maskRule, maskRule.0
func RuleKeys(props map[string]string) []string {
	entries := ruleEntries(props)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.key)
	}
	return keys
}

// inFamily reports whether key is family or family.<suffix>, ignoring case
// in the family name.
func inFamily(key, family string) bool {
	if len(key) < len(family) || !strings.EqualFold(key[:len(family)], family) {
		return false
	}
	return len(key) == len(family) || key[len(family)] == '.'
}

func compareRuleKeys(family, a, b string) int {
	sa, sb := a[len(family):], b[len(family):]
	if sa == "" && sb == "" {
		return strings.Compare(a, b)
	}
	if sa == "" || sb == "" {
		// The bare key sorts first.
		return len(sa) - len(sb)
	}
	sa, sb = sa[1:], sb[1:]

	na, errA := strconv.Atoi(sa)
	nb, errB := strconv.Atoi(sb)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na - nb
		}
		return strings.Compare(sa, sb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(sa, sb)
	}
}

// Mask returns s with every rule applied in order. It never fails; a rule
// that does not match leaves the text unchanged.
func (e *Engine) Mask(s string) string {
	if e == nil {
		return s
	}
	for _, rule := range e.rules {
		s = rule.Apply(s)
	}
	return s
}

// Rules returns a copy of the engine's rules in application order.
func (e *Engine) Rules() []Rule {
	if e == nil {
		return nil
	}
	return slices.Clone(e.rules)
}

// Len returns the number of active rules.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return len(e.rules)
}
