package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged by a logger obtained from Get, the attributes are
// extracted and written next to the error.
//
// Example:
//
//	return logger.AnnotateError(err, "key", key, "type", fmt.Sprintf("%T", value))
//
// Returns nil if err is nil. The wrapper unwraps to err, so errors.Is and
// errors.As keep working.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{err: err, attrs: attrs}
}

// ErrorAttrs returns the attributes attached by AnnotateError anywhere in
// err's chain, outermost first.
func ErrorAttrs(err error) []slog.Attr {
	var out []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		out = append(out, se.attrs...)
		err = se.err
	}

	return out
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that expands annotated errors
// into their attributes before delegating to the inner handler.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

// withErrorAttrs decorates h unless it is already decorated.
func withErrorAttrs(h slog.Handler) slog.Handler {
	if _, ok := h.(*slogErrorLogger); ok {
		return h
	}

	return &slogErrorLogger{inner: h}
}

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			if extra := ErrorAttrs(err); len(extra) > 0 {
				errAttrs = append(errAttrs, extra...)
			}
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
