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
	"io"
	"sync"
)

// Writer wraps an [io.Writer] and masks every chunk before passing it on.
// Each Write call is masked on its own, so a secret split across two writes
// is not detected; callers should write whole lines.
//
// Thread-safe: can be used concurrently by multiple goroutines.
type Writer struct {
	underlying io.Writer
	engine     *Engine
	mu         sync.Mutex
}

// NewWriter creates a masking writer.
func NewWriter(w io.Writer, e *Engine) *Writer {
	return &Writer{
		underlying: w,
		engine:     e,
	}
}

// Write implements io.Writer. On success it reports len(p) even when the
// masked text has a different length.
func (w *Writer) Write(p []byte) (int, error) {
	masked := []byte(w.engine.Mask(string(p)))

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.underlying.Write(masked); err != nil {
		return 0, err
	}
	return len(p), nil
}
