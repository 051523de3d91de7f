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

// Package main shows masking and stream routing with inline properties.
package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"rivaas.dev/logmask/config"
	"rivaas.dev/logmask/logging"
)

func main() {
	// INFO and above go to stderr; set LOG_ALL_STDOUT=true to keep
	// everything on stdout.
	stream := "err@INFO"
	if strings.EqualFold(os.Getenv("LOG_ALL_STDOUT"), "true") {
		stream = "out"
	}

	w := logging.MustNew(config.Properties{
		"stream":   stream,
		"format":   "{date:15:04:05} {level} {source} {message}{attrs}",
		"mask.0":   `password=(\S+)->full`,
		"mask.1":   `\b(\d{16})\b->partial-keep-suffix(4,#)`,
		"maskRule": `alice@example.com->literal(<email>)`,
	})
	logger := logging.NewLogger(w)

	logger.Debug("connecting", "dsn", "postgres://app:password=s3cret@db/app")
	logger.Info("user login", "email", "alice@example.com", "mfa_enabled", true)

	// The card number is masked inside the attribute value
	logger.Info("payment accepted",
		"card", "4111111111111111",
		"amount_cents", 2599,
	)

	if err := processPayment(); err != nil {
		logger.Error("payment processing failed", "error", err)
	}

	// Groups qualify attribute keys
	logger.WithGroup("request").Warn("slow request", "path", "/api/payments", "ms", 812)

	slog.SetDefault(logger)
	slog.Info("default logger is masked too", "password", "hunter2")
}

func processPayment() error {
	return errors.New("card declined for password=hunter2")
}
