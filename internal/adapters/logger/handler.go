package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/limbus/internal/ui/output"
	"go.trai.ch/limbus/internal/ui/style"
)

var _ slog.Handler = (*consoleHandler)(nil)

// consoleHandler renders records as one line each: an optional glyph, the
// message, then key=value pairs in a muted color. Clones share the writer
// lock so lines from derived handlers never interleave.
type consoleHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	groups []string
	// preset holds attributes added through WithAttrs, already rendered.
	preset string
}

func newConsoleHandler(w io.Writer, level slog.Leveler) *consoleHandler {
	return &consoleHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// tone picks the glyph for a level. Info lines carry none.
func tone(level slog.Level) (style.Tone, bool) {
	switch {
	case level >= slog.LevelError:
		return style.Failed, true
	case level >= slog.LevelWarn:
		return style.Notice, true
	case level < slog.LevelInfo:
		return style.Idle, true
	default:
		return style.Tone{}, false
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler passes records by value
func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if t, ok := tone(r.Level); ok {
		b.WriteString(t.Mark(h.out))
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	var attrs strings.Builder
	attrs.WriteString(h.preset)
	prefix := h.keyPrefix()
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&attrs, prefix, a)
		return true
	})
	if attrs.Len() > 0 {
		b.WriteString(style.Paint(h.out, style.Muted, attrs.String()))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.preset)
	prefix := h.keyPrefix()
	for _, a := range attrs {
		appendAttr(&b, prefix, a)
	}
	clone := *h
	clone.preset = b.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func (h *consoleHandler) keyPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// appendAttr writes " key=value", flattening nested groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, inner, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
