// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
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

package source

import (
	"context"
	"os"
	"strings"

	"rivaas.dev/logmask/config/codec"
)

// OSEnvVar loads properties from environment variables sharing a prefix.
// With prefix "LOGMASK_", LOGMASK_STREAM becomes "stream" and
// LOGMASK_MASK_0 becomes "mask.0" once flattened.
type OSEnvVar struct {
	prefix string
	codec  codec.EnvVarCodec
}

// NewOSEnvVar creates an environment source. Only variables starting with
// prefix are read and the prefix is stripped.
func NewOSEnvVar(prefix string) *OSEnvVar {
	return &OSEnvVar{prefix: prefix}
}

// Load reads the matching variables.
func (e *OSEnvVar) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []string
	for _, env := range os.Environ() {
		if rest, ok := strings.CutPrefix(env, e.prefix); ok {
			entries = append(entries, rest)
		}
	}

	return e.codec.DecodeEntries(entries), nil
}

// String names the source in error messages.
func (e *OSEnvVar) String() string {
	return "env:" + e.prefix
}
