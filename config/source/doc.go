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

// Package source loads raw property trees from files and the environment.
//
// Sources return nested maps exactly as decoded; the parent config package
// flattens them into dot-separated property keys.
//
//	decoder, _ := codec.ForPath("logmask.yaml")
//	raw, err := source.NewFile("logmask.yaml", decoder).Load(ctx)
//
//	raw, err = source.NewOSEnvVar("LOGMASK_").Load(ctx)
package source
