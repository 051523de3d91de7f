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
	"io"
	"reflect"
	"sync"
)

// lockedWriter serializes writes so that the text of one record reaches
// the underlying writer in a single, uninterrupted Write call.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) writeString(s string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := io.WriteString(l.w, s)
	return err
}

// newSinks wraps out and errOut. When both are the same writer they share
// one lock, so records bound for different sinks cannot interleave either.
func newSinks(out, errOut io.Writer) (stdout, stderr *lockedWriter) {
	stdout = &lockedWriter{w: out}
	if sameWriter(out, errOut) {
		return stdout, stdout
	}
	return stdout, &lockedWriter{w: errOut}
}

// sameWriter compares writers without panicking on non-comparable types.
func sameWriter(a, b io.Writer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
