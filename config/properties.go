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
	"errors"
	"maps"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/cast"
)

// ErrKeyNotFound is returned by the typed getters for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Properties is a flat configuration map from keys to string values.
// A nil Properties is empty and safe to read.
type Properties map[string]string

// String returns the value stored under key. An exact match wins;
// otherwise the first key equal to key under Unicode case folding is used,
// in sorted key order.
func (p Properties) String(key string) (string, bool) {
	if v, ok := p[key]; ok {
		return v, true
	}
	for _, k := range p.Keys("") {
		if strings.EqualFold(k, key) {
			return p[k], true
		}
	}
	return "", false
}

// StringOr returns the value for key, or def when the key is absent.
func (p Properties) StringOr(key, def string) string {
	if v, ok := p.String(key); ok {
		return v
	}
	return def
}

// Int returns the value for key converted to an int. Surrounding spaces
// are ignored.
func (p Properties) Int(key string) (int, error) {
	v, ok := p.String(key)
	if !ok {
		return 0, NewFieldError("properties", key, "get", ErrKeyNotFound)
	}
	i, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil {
		return 0, NewFieldError("properties", key, "get", err)
	}
	return i, nil
}

// Bool returns the value for key converted to a bool. Accepted values are
// those of strconv.ParseBool.
func (p Properties) Bool(key string) (bool, error) {
	v, ok := p.String(key)
	if !ok {
		return false, NewFieldError("properties", key, "get", ErrKeyNotFound)
	}
	b, err := cast.ToBoolE(strings.TrimSpace(v))
	if err != nil {
		return false, NewFieldError("properties", key, "get", err)
	}
	return b, nil
}

// Keys returns the sorted keys starting with prefix. An empty prefix
// returns every key.
func (p Properties) Keys(prefix string) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a copy of p that can be modified independently.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	maps.Copy(out, p)
	return out
}

// Merge combines layers into a new map. Later layers override earlier
// ones.
func Merge(layers ...Properties) (Properties, error) {
	out := make(map[string]string)
	for i, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&out, map[string]string(layer), mergo.WithOverride); err != nil {
			return nil, NewError(layerName(i), "merge", err)
		}
	}
	return Properties(out), nil
}
