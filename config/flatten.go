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

package config

import (
	"strconv"

	"github.com/spf13/cast"
)

// Flatten converts a decoded property tree into flat properties. Nested
// maps join their keys with '.', list elements use their index as key and
// scalars are converted to strings. Nil values are dropped.
func Flatten(tree map[string]any) (Properties, error) {
	out := make(Properties)
	if err := flattenInto(out, "", tree); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out Properties, key string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, child := range v {
			if err := flattenInto(out, joinKey(key, k), child); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, child := range v {
			ks, err := cast.ToStringE(k)
			if err != nil {
				return NewFieldError("tree", key, "flatten", err)
			}
			if err = flattenInto(out, joinKey(key, ks), child); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range v {
			if err := flattenInto(out, joinKey(key, strconv.Itoa(i)), child); err != nil {
				return err
			}
		}
	case []map[string]any:
		for i, child := range v {
			if err := flattenInto(out, joinKey(key, strconv.Itoa(i)), child); err != nil {
				return err
			}
		}
	case []string:
		for i, child := range v {
			out[joinKey(key, strconv.Itoa(i))] = child
		}
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return NewFieldError("tree", key, "flatten", err)
		}
		out[key] = s
	}
	return nil
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
