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

//go:build !integration

package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/logmask/config"
)

func TestHandler_GroupsAndAttrs(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, config.Properties{"stream": "err"})
	logger := th.Logger().
		With("svc", "api").
		WithGroup("req").
		With("id", 7).
		WithGroup("user")

	logger.Info("login", "name", "alice")

	assert.Equal(t, []string{"INFO: login svc=api req.id=7 req.user.name=alice"}, th.StderrLines())
}

func TestHandler_EmptyGroupIsDropped(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, config.Properties{"stream": "err"})
	th.Logger().WithGroup("empty").Warn("nothing")

	assert.Equal(t, []string{"WARN: nothing"}, th.StderrLines())
}

func TestHandler_MasksAttributeValues(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, config.Properties{"mask": `password=(\S+)`})
	th.Logger().Info("login", "password", "hunter2")

	assert.Equal(t, []string{"INFO: login password=****"}, th.StdoutLines())
}

func TestHandler_Level(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, nil)

	all := NewHandler(th.Writer, nil)
	assert.True(t, all.Enabled(context.Background(), LevelTrace.Slog()))

	h := NewHandler(th.Writer, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Error("shown")

	assert.Empty(t, th.StdoutLines())
	assert.Equal(t, []string{"ERROR: shown"}, th.StderrLines())
}

func TestHandler_TraceCorrelation(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	th := NewTestHelper(t, config.Properties{"stream": "err"})
	th.Logger().InfoContext(ctx, "traced")
	th.Logger().InfoContext(context.Background(), "untraced")

	assert.Equal(t, []string{
		"INFO: traced trace_id=4bf92f3577b34da6a3ce929d0e0e4736 span_id=00f067aa0ba902b7",
		"INFO: untraced",
	}, th.StderrLines())
}

func TestHandler_TraceIDPlaceholder(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(),
		trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID}))

	th := NewTestHelper(t, config.Properties{
		"stream": "err",
		"format": "[{attr:trace_id}] {message}",
	})
	th.Logger().InfoContext(ctx, "hi")

	assert.Equal(t, []string{"[0af7651916cd43dd8448eb211c80319c] hi"}, th.StderrLines())
}

func TestHandler_DropsUnrenderedFields(t *testing.T) {
	t.Parallel()

	var seen slog.Record
	r := recordingRenderer{values: ValueMessage, seen: &seen}

	th := NewTestHelper(t, nil, WithRenderer(r))
	th.Logger().Info("msg", "k", "v")

	assert.Zero(t, seen.PC)
	assert.Zero(t, seen.NumAttrs())
	assert.Equal(t, "msg", seen.Message)
}

type recordingRenderer struct {
	values Values
	seen   *slog.Record
}

func (r recordingRenderer) Render(rec slog.Record) string {
	*r.seen = rec.Clone()
	return rec.Message + "\n"
}

func (r recordingRenderer) RequiredValues() Values { return r.values }

func TestHandler_WithAttrsDoesNotShareState(t *testing.T) {
	t.Parallel()

	th := NewTestHelper(t, config.Properties{"stream": "err"})
	base := th.Logger().With("a", 1)

	base.With("b", 2).Info("first")
	base.With("c", 3).Info("second")

	assert.Equal(t, []string{"INFO: first a=1 b=2", "INFO: second a=1 c=3"}, th.StderrLines())
}
