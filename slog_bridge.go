package zlog

import (
	"context"
	"log/slog"
	"strings"
)

// slogHandler routes log/slog records through the dispatcher, so code
// logging via the stdlib facade participates in scope filtering. The
// record's source package becomes its scope.
type slogHandler struct {
	attrs []slog.Attr
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return isPossiblyEnabledLevel(levelFromSlog(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	lvl := levelFromSlog(r.Level)
	modulePath := unknownModulePath
	if r.PC != 0 {
		modulePath = moduleForPC(r.PC)
	}
	scope := newScope(CrateName(modulePath))
	if !isScopeEnabled(scope, modulePath, lvl) {
		return nil
	}
	submit(Record{
		Scope:      scope,
		Level:      lvl,
		Message:    appendAttrs(r.Message, h.attrs, r),
		ModulePath: modulePath,
	})
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	if len(attrs) > 0 {
		nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	}
	return &nh
}

// WithGroup returns the handler unchanged; this core carries formatted
// message strings, not grouped fields.
func (h *slogHandler) WithGroup(string) slog.Handler {
	return h
}

// appendAttrs flattens slog attributes into the message text, keeping the
// record a plain string on its way through the sink boundary.
func appendAttrs(msg string, base []slog.Attr, r slog.Record) string {
	if len(base) == 0 && r.NumAttrs() == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, a := range base {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(a.String())
		return true
	})
	return b.String()
}

func levelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return TraceLevel
	case l < slog.LevelInfo:
		return DebugLevel
	case l < slog.LevelWarn:
		return InfoLevel
	case l < slog.LevelError:
		return WarnLevel
	default:
		return ErrorLevel
	}
}
