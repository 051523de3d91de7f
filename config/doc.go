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

// Package config provides the flat property map consumed by log writers.
//
// Writers are configured through string keys and string values, the same
// shape as a Java properties file:
//
//	stream = err@INFO
//	format = {date} {level}: {message}
//	mask.0 = password=(\S+)->full
//
// [Properties] is that map together with lookup helpers. It can be built
// by hand or loaded from files and the environment with [Load]:
//
//	props, err := config.Load(ctx,
//	    config.MustFileSource("logmask.yaml"),
//	    config.EnvSource("LOGMASK_"),
//	)
//
// Sources are merged in order and later sources override earlier ones.
// Nested maps become dot-separated keys and lists become indexed keys, so
// the YAML document
//
//	mask:
//	  - 'password=(\S+)->full'
//
// yields the property mask.0. Key lookups through [Properties.String] fall
// back to a case-insensitive match.
//
// # Error Handling
//
// Loading errors are returned as [*Error] values that name the failing
// source and operation:
//
//	var cfgErr *config.Error
//	if errors.As(err, &cfgErr) {
//	    fmt.Println(cfgErr.Source, cfgErr.Operation)
//	}
package config
