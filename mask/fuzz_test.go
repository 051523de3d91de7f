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
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParseSpec checks that any rule string either fails cleanly or yields
// a rule that can be applied without panicking.
func FuzzParseSpec(f *testing.F) {
	f.Add(`password=(\S+)->full`, "login password=hunter2 ok")
	f.Add(`\d{4}->partial-keep-suffix(2,#)`, "card 1234 5678")
	f.Add(`a.b->literal(x)`, "a.b axb")
	f.Add(`->->`, "")
	f.Add(`(()|x)*->full()`, "xxxx")

	f.Fuzz(func(t *testing.T, value, input string) {
		spec, err := ParseSpec(value)
		if err != nil {
			return
		}
		rule, err := spec.Rule()
		if err != nil {
			return
		}
		_ = rule.Apply(input)
	})
}

// FuzzPartialRule checks the keep-suffix length property on valid UTF-8.
func FuzzPartialRule(f *testing.F) {
	f.Add("secret", 2)
	f.Add("ab", 5)
	f.Add("héllo wörld", 3)

	f.Fuzz(func(t *testing.T, token string, keep int) {
		if token == "" || keep < 0 || keep > 64 || !utf8.ValidString(token) {
			return
		}
		rule, err := NewPartialRule("^"+regexp.QuoteMeta(token)+"$", keep, '*')
		if err != nil {
			return
		}

		got := rule.Apply(token)
		n := utf8.RuneCountInString(token)
		if n <= keep {
			if got != token {
				t.Fatalf("short span changed: %q -> %q", token, got)
			}
			return
		}
		if utf8.RuneCountInString(got) != n {
			t.Fatalf("rune length changed: %q -> %q", token, got)
		}
		runes := []rune(token)
		want := strings.Repeat("*", n-keep) + string(runes[n-keep:])
		if got != want {
			t.Fatalf("Apply(%q) = %q, want %q", token, got, want)
		}
	})
}
