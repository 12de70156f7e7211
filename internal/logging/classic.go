// Package logging provides a slog.Handler that prints the classic
// console format:
//
//	2025-08-23 14:03:01,512 - WARNING - credit check failed ...
//
// i.e. "<timestamp> - <LEVEL> - <message>". The demo binary uses it so
// its output reads like a traditional course-registration log; the API
// server sticks with slog's standard text/JSON handlers.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// timeLayout matches the traditional "asctime" shape, milliseconds
// separated by a comma.
const timeLayout = "2006-01-02 15:04:05,000"

// ClassicHandler implements slog.Handler. Attributes are rendered as
// trailing key=value pairs inside the message section, so every line
// still has exactly three " - "-separated fields.
type ClassicHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level

	// attrs accumulated via WithAttrs, already rendered.
	attrs string
	// group prefix accumulated via WithGroup, e.g. "req.".
	prefix string
}

// NewClassicHandler writes records at or above level to w.
func NewClassicHandler(w io.Writer, level slog.Level) *ClassicHandler {
	return &ClassicHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *ClassicHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// levelName maps slog levels to the classic spellings — notably WARN
// prints as WARNING.
func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func (h *ClassicHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(r.Time.Format(timeLayout))
	b.WriteString(" - ")
	b.WriteString(levelName(r.Level))
	b.WriteString(" - ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s%s=%v", h.prefix, a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *ClassicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s%s=%v", h.prefix, a.Key, a.Value)
	}
	h2.attrs = b.String()
	return &h2
}

func (h *ClassicHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}
