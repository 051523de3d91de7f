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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rivaas.dev/logmask/logging"
)

// NewCheckCmd creates the check command, which prints the effective
// routing and mask rules without reading any input.
func NewCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print the effective routing and mask rules",
		Long: `Load the configuration the same way the root command does and print
the error threshold, the sink of every level and the mask rules in the
order they are applied. Configuration problems are reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := newWriter(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "threshold: %s\n", w.Threshold())
			for _, l := range []logging.Level{
				logging.LevelTrace, logging.LevelDebug, logging.LevelInfo,
				logging.LevelWarn, logging.LevelError,
			} {
				fmt.Fprintf(out, "  %-5s -> %s\n", l, w.Route(l))
			}

			rules := w.Engine().Rules()
			fmt.Fprintf(out, "rules: %d\n", len(rules))
			for i, r := range rules {
				fmt.Fprintf(out, "  %d. %s\n", i+1, r)
			}
			return nil
		},
	}
}
