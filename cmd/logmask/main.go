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

// Package main provides the logmask command.
//
// logmask reads log lines from standard input, masks sensitive text and
// writes each line to standard output or standard error depending on its
// level.
//
// Usage:
//
//	app | logmask --stream err@WARN --mask 'password=(\S+)'
//	logmask check --config logmask.yaml
//
// See --help for all available options.
package main

func main() {
	Execute()
}
