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

package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// TypeEnvVar identifies KEY=VALUE lines as found in the environment or in
// .env files.
const TypeEnvVar Type = "env_var"

func init() {
	RegisterDecoder(TypeEnvVar, EnvVarCodec{})
}

// EnvVarCodec decodes KEY=VALUE lines into a nested map. Keys are
// lower-cased and split on underscores, so MASK_0=x becomes
// {"mask": {"0": "x"}}. Blank lines, lines starting with '#' and lines
// without '=' are ignored. Keys are trimmed, values are kept as written.
type EnvVarCodec struct{}

// Decode decodes env lines into v, which must be a *map[string]any.
func (c EnvVarCodec) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarCodec.Decode: expected *map[string]any, got %T", v)
	}

	var entries []string
	for line := range bytes.SplitSeq(data, []byte("\n")) {
		text := strings.TrimSuffix(string(line), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries = append(entries, text)
	}

	*ptr = c.DecodeEntries(entries)
	return nil
}

// DecodeEntries decodes KEY=VALUE entries as returned by [os.Environ].
// Values may span several lines.
func (EnvVarCodec) DecodeEntries(entries []string) map[string]any {
	conf := make(map[string]any)
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}

		parts := splitEnvKey(key)
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, isMap := current[part].(map[string]any)
			if !isMap {
				// A scalar set earlier under the same prefix is replaced.
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = value
	}
	return conf
}

// splitEnvKey lower-cases key and splits it on underscores, dropping empty
// parts.
func splitEnvKey(key string) []string {
	raw := strings.Split(strings.ToLower(strings.TrimSpace(key)), "_")
	parts := raw[:0]
	for _, part := range raw {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
