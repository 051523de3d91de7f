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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern indicates a rule pattern that does not compile as a
	// regular expression.
	ErrInvalidPattern = errors.New("invalid mask pattern")

	// ErrEmptyPattern indicates a rule without a pattern.
	ErrEmptyPattern = errors.New("empty mask pattern")

	// ErrInvalidMode indicates an unknown replacement mode or malformed mode
	// arguments.
	ErrInvalidMode = errors.New("invalid mask mode")

	// ErrDuplicateRule indicates a property key holding a rule string while
	// field keys below it describe a structured rule. The rule string is
	// used and the fields are ignored.
	ErrDuplicateRule = errors.New("rule string and rule fields under the same key")
)

// RuleError describes a rule that was dropped while building an [Engine].
type RuleError struct {
	Key  string // Property key the rule came from (empty for programmatic specs)
	Rule string // Raw rule text
	Err  error  // Underlying error
}

// Error returns a formatted error message with the rule's origin.
func (e *RuleError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("mask rule %s=%q skipped: %v", e.Key, e.Rule, e.Err)
	}
	return fmt.Sprintf("mask rule %q skipped: %v", e.Rule, e.Err)
}

// Unwrap returns the underlying error.
func (e *RuleError) Unwrap() error {
	return e.Err
}
