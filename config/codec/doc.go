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

// Package codec decodes property files into nested maps.
//
// Each format registers a [Decoder] under a [Type] at init time. Callers
// look decoders up by type with [GetDecoder] or by file name with
// [ForPath].
//
//	dec, err := codec.ForPath("logmask.yaml")
//	var raw map[string]any
//	err = dec.Decode(data, &raw)
//
// Supported formats: YAML (goccy/go-yaml), TOML (BurntSushi/toml), JSON
// (encoding/json) and environment-variable lines.
package codec
