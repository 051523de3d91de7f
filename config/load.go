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
	"context"
	"fmt"

	"rivaas.dev/logmask/config/codec"
	"rivaas.dev/logmask/config/source"
)

// Source loads a property tree. Implementations live in the source
// package; [StaticSource] wraps an existing [Properties] value.
//
// Load must be safe to call concurrently.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// Load reads every source in order, flattens the results and merges them,
// later sources overriding earlier ones.
func Load(ctx context.Context, sources ...Source) (Properties, error) {
	layers := make([]Properties, 0, len(sources))
	for i, src := range sources {
		name := sourceName(i, src)

		tree, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(name, "load", err)
		}

		layer, err := Flatten(tree)
		if err != nil {
			return nil, NewError(name, "flatten", err)
		}
		layers = append(layers, layer)
	}
	return Merge(layers...)
}

// FileSource returns a source for path, choosing the decoder from the file
// extension (.yaml, .yml, .json, .toml, .env).
func FileSource(path string) (Source, error) {
	decoder, err := codec.ForPath(path)
	if err != nil {
		return nil, NewError("file:"+path, "detect", err)
	}
	return source.NewFile(path, decoder), nil
}

// MustFileSource is like [FileSource] but panics on an unknown extension.
func MustFileSource(path string) Source {
	src, err := FileSource(path)
	if err != nil {
		panic(err)
	}
	return src
}

// ContentSource returns a source over in-memory content of the given type.
func ContentSource(data []byte, typ codec.Type) (Source, error) {
	decoder, err := codec.GetDecoder(typ)
	if err != nil {
		return nil, NewError("content", "detect", err)
	}
	return source.NewFileContent(data, decoder), nil
}

// EnvSource returns a source over environment variables starting with
// prefix.
func EnvSource(prefix string) Source {
	return source.NewOSEnvVar(prefix)
}

// StaticSource returns a source that yields p unchanged. It is used to
// layer explicit overrides, such as command-line flags, over loaded files.
func StaticSource(p Properties) Source {
	return staticSource(p)
}

type staticSource Properties

func (s staticSource) Load(context.Context) (map[string]any, error) {
	tree := make(map[string]any, len(s))
	for k, v := range s {
		tree[k] = v
	}
	return tree, nil
}

func sourceName(i int, src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return layerName(i)
}

func layerName(i int) string {
	return fmt.Sprintf("source[%d]", i)
}
