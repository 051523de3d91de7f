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

// Package main loads writer properties from YAML and the environment.
//
// Run with LOGMASK_STREAM=out to send every record to stdout.
package main

import (
	"context"
	"log"

	"rivaas.dev/logmask/config"
	"rivaas.dev/logmask/config/codec"
	"rivaas.dev/logmask/logging"
)

const settings = `
stream: err@WARN
format: "{date:2006-01-02T15:04:05Z07:00} {level} {message}{attrs}"
timezone: UTC
mask:
  - 'password=(\S+)->full'
  - 'token=(\w+)->partial-keep-suffix(4)'
maskRule:
  iban: '[A-Z]{2}\d{2}[A-Z0-9]{11,30}->full(<iban>)'
`

func main() {
	ctx := context.Background()

	yamlSource, err := config.ContentSource([]byte(settings), codec.TypeYAML)
	if err != nil {
		log.Fatalf("yaml source: %v", err)
	}

	// Environment variables such as LOGMASK_STREAM override the YAML.
	props, err := config.Load(ctx, yamlSource, config.EnvSource("LOGMASK_"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	w := logging.MustNew(props)
	logger := logging.NewLogger(w)

	logger.Info("api call", "token", "tok_9f8e7d6c5b4a")
	logger.Warn("refund sent", "iban", "DE89370400440532013000")
	logger.Error("login failed password=hunter2", "user", "alice")
}
