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

// Package mask redacts sensitive substrings from rendered log text.
//
// An [Engine] holds an ordered list of [Rule] values. Each rule pairs a
// regular expression (or a literal token) with a replacement mode:
//
//   - full: the matched span becomes a fixed placeholder ("****" by default)
//   - partial-keep-suffix(n, c): all but the last n runes become c
//   - literal: a fixed token is replaced wherever it appears
//
// When a pattern contains capturing groups, only the groups are masked and
// the text around them is kept. A group inside a repetition only reports
// its last iteration, so such patterns mask the whole match instead. This
// lets a rule such as
//
//	password=(\S+)->full
//
// turn "login password=hunter2 ok" into "login password=**** ok".
//
// Rules are applied one after another: rule k+1 sees the output of rule k.
// Within a single rule the input is scanned once, so a placeholder that
// happens to match its own pattern is never masked again.
//
// # Rule Strings
//
// Rules are usually configured as flat strings of the form
// "<pattern>-><mode>":
//
//	mask.0 = \b(\d{16})\b->partial-keep-suffix(4)
//	mask.1 = (?i)bearer\s+(\S+)->full([token])
//	mask.2 = s3cr3t->literal
//
// See [ParseSpec] for the grammar and [RuleKeys] for the key ordering.
//
// Structured rules from YAML or TOML arrive flattened as field keys and
// are decoded with [DecodeSpec]:
//
//	mask:
//	  - pattern: 'password=(\S+)'
//	    mode: full
//	  - pattern: '\b(\d{16})\b'
//	    mode: partial-keep-suffix
//	    keep: 4
//
// # Failure Handling
//
// A malformed rule never stops the engine from being built. [Compile] and
// [FromProperties] report the problem through a callback and skip the rule.
package mask
