// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// newLogger returns a logger writing to w with short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// charmHandler forwards slog records from the layout packages to a
// charm logger.
type charmHandler struct {
	l      *log.Logger
	attrs  []any
	prefix string
}

func newCharmHandler(l *log.Logger) *charmHandler {
	return &charmHandler{l: l}
}

func (h *charmHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.l.GetLevel() <= log.Level(level)
}

func (h *charmHandler) Handle(_ context.Context, r slog.Record) error {
	kv := slices.Clip(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		kv = h.appendAttr(kv, h.prefix, a)
		return true
	})
	h.l.Log(log.Level(r.Level), r.Message, kv...)
	return nil
}

func (h *charmHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = slices.Clip(h.attrs)
	for _, a := range as {
		h2.attrs = h.appendAttr(h2.attrs, h.prefix, a)
	}
	return &h2
}

func (h *charmHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *charmHandler) appendAttr(kv []any, prefix string, a slog.Attr) []any {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			kv = h.appendAttr(kv, prefix, ga)
		}
		return kv
	}
	if a.Key == "" {
		return kv
	}
	return append(kv, prefix+a.Key, v.Any())
}
