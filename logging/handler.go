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

package logging

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// Attribute keys added for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// Handler is a [slog.Handler] that writes through a [Writer]. Use it to
// make the masked, routed output the process default:
//
//	slog.SetDefault(slog.New(logging.NewHandler(w, nil)))
//
// When the context passed to a log call carries a valid OpenTelemetry span,
// trace_id and span_id attributes are added to the record.
type Handler struct {
	w     *Writer
	level slog.Leveler
	goas  []groupOrAttrs
}

// groupOrAttrs is either a group name or a list of attributes, in the order
// WithGroup and WithAttrs were called.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// NewHandler returns a handler writing to w. Only opts.Level is used; a nil
// opts or level enables every record from TRACE up.
func NewHandler(w *Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w, level: LevelTrace.Slog()}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// NewLogger is shorthand for slog.New(NewHandler(w, nil)).
func NewLogger(w *Writer) *slog.Logger {
	return slog.New(NewHandler(w, nil))
}

// Enabled reports whether level reaches the handler's minimum level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle rebuilds r with the handler's groups and attributes and passes it
// to the writer. Fields the writer does not render are dropped early.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	need := h.w.RequiredValues()

	pc := r.PC
	if !need.Has(ValueSource) {
		pc = 0
	}
	out := slog.NewRecord(r.Time, r.Level, r.Message, pc)

	if need.Has(ValueAttrs) {
		out.AddAttrs(h.collectAttrs(r)...)
		if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
			sc := span.SpanContext()
			out.AddAttrs(
				slog.String(fieldTraceID, sc.TraceID().String()),
				slog.String(fieldSpanID, sc.SpanID().String()),
			)
		}
	}

	return h.w.Write(out)
}

// collectAttrs nests the record attributes inside the open groups, from the
// innermost group outwards. Empty groups are dropped.
func (h *Handler) collectAttrs(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	for i := len(h.goas) - 1; i >= 0; i-- {
		goa := h.goas[i]
		if goa.group == "" {
			attrs = append(slices.Clone(goa.attrs), attrs...)
			continue
		}
		if len(attrs) == 0 {
			continue
		}
		attrs = []slog.Attr{{Key: goa.group, Value: slog.GroupValue(attrs...)}}
	}
	return attrs
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(groupOrAttrs{attrs: slices.Clone(attrs)})
}

// WithGroup returns a handler that qualifies later attributes with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(groupOrAttrs{group: name})
}

func (h *Handler) with(goa groupOrAttrs) *Handler {
	h2 := *h
	h2.goas = append(slices.Clip(h.goas), goa)
	return &h2
}
