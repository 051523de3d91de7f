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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rivaas.dev/logmask/config"
	"rivaas.dev/logmask/logging"
	"rivaas.dev/logmask/mask"
)

const (
	defaultEnvPrefix = "LOGMASK_"
	maxLineSize      = 1 << 20
)

// rootOptions holds the flags shared by the root and check commands.
type rootOptions struct {
	configFile string
	envPrefix  string
	stream     string
	format     string
	level      string
	masks      []string
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "logmask",
		Short: "Mask sensitive text in log lines and route them by level",
		Long: `logmask reads log lines from standard input, masks sensitive text and
writes each line to standard output or standard error.

A line starting with a level name (TRACE, DEBUG, INFO, WARN, ERROR) is
logged at that level; other lines use --level. Lines at or above the
stream threshold go to standard error:

  --stream out          everything to stdout
  --stream err          everything to stderr
  --stream err@INFO     INFO and above to stderr (default threshold WARN)

Properties are read from --config, then from environment variables with
the --env-prefix prefix, then from flags.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipe(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "property file (.yaml, .yml, .json, .toml, .env)")
	flags.StringVar(&opts.envPrefix, "env-prefix", defaultEnvPrefix, "prefix of environment properties, empty to disable")
	flags.StringVarP(&opts.stream, "stream", "s", "", "output stream: out, err or err@<LEVEL>")
	flags.StringVarP(&opts.format, "format", "f", "", "render pattern, e.g. '{date} {level}: {message}'")
	flags.StringArrayVarP(&opts.masks, "mask", "m", nil, "mask rule '<pattern>[-><mode>]', repeatable")
	cmd.Flags().StringVarP(&opts.level, "level", "l", logging.LevelInfo.String(), "level of lines without a level prefix")

	cmd.AddCommand(NewCheckCmd(opts))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "logmask:", err)
		os.Exit(1)
	}
}

// loadProperties layers the config file, the environment and the flags.
func loadProperties(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (config.Properties, error) {
	var sources []config.Source

	if opts.configFile != "" {
		src, err := config.FileSource(opts.configFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if opts.envPrefix != "" {
		sources = append(sources, config.EnvSource(opts.envPrefix))
	}

	overrides := config.Properties{}
	if cmd.Flags().Changed("stream") {
		overrides[logging.PropertyStream] = opts.stream
	}
	if cmd.Flags().Changed("format") {
		overrides[logging.PropertyFormat] = opts.format
	}
	sources = append(sources, config.StaticSource(overrides))

	return config.Load(ctx, sources...)
}

// flagRules compiles the --mask flags. Unlike property rules, a bad flag
// is a usage error.
func flagRules(values []string) ([]mask.Rule, error) {
	rules := make([]mask.Rule, 0, len(values))
	for _, v := range values {
		spec, err := mask.ParseSpec(v)
		if err != nil {
			return nil, fmt.Errorf("--mask %q: %w", v, err)
		}
		rule, err := spec.Rule()
		if err != nil {
			return nil, fmt.Errorf("--mask %q: %w", v, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// newWriter builds the writer shared by the root and check commands.
func newWriter(cmd *cobra.Command, opts *rootOptions) (*logging.Writer, error) {
	props, err := loadProperties(cmd.Context(), cmd, opts)
	if err != nil {
		return nil, err
	}

	rules, err := flagRules(opts.masks)
	if err != nil {
		return nil, err
	}

	return logging.New(props,
		logging.WithStdout(cmd.OutOrStdout()),
		logging.WithStderr(cmd.ErrOrStderr()),
		logging.WithDiagnostics(maskedDiagnostics(cmd.ErrOrStderr(), props, rules)),
		logging.WithMaskRules(rules...),
	)
}

// maskedDiagnostics returns diagnostics whose output passes through every
// valid rule. Diagnostics quote property values, which may hold the very
// text the rules protect.
func maskedDiagnostics(w io.Writer, props config.Properties, extra []mask.Rule) logging.Diagnostics {
	rules := append(mask.FromProperties(props, nil).Rules(), extra...)
	return logging.NewDiagnostics(mask.NewWriter(w, mask.NewEngine(rules...)))
}

func runPipe(cmd *cobra.Command, opts *rootOptions) error {
	defaultLevel, err := logging.ParseLevel(opts.level)
	if err != nil || defaultLevel == logging.LevelOff {
		return fmt.Errorf("--level %q: %w", opts.level, logging.ErrInvalidLevel)
	}

	w, err := newWriter(cmd, opts)
	if err != nil {
		return err
	}
	defer w.Close()

	return pipe(cmd.InOrStdin(), w, defaultLevel)
}

// pipe writes every line of r through w.
func pipe(r io.Reader, w *logging.Writer, defaultLevel logging.Level) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		level, msg := splitLevel(sc.Text(), defaultLevel)
		rec := slog.NewRecord(time.Now(), level.Slog(), msg, 0)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return w.Flush()
}

// splitLevel takes a leading level token, optionally followed by ':', off
// line. OFF is not a record level and stays part of the message.
func splitLevel(line string, def logging.Level) (logging.Level, string) {
	token, rest, _ := strings.Cut(line, " ")
	level, err := logging.ParseLevel(strings.TrimSuffix(token, ":"))
	if err != nil || level == logging.LevelOff {
		return def, line
	}
	return level, strings.TrimLeft(rest, " ")
}
