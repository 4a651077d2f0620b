// Package logger wires log/slog for the mapsort packages: global
// configuration, context-scoped loggers, and muting.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// DefaultSubsystem is the subsystem attached to log records when neither
// ConfigureLoggingWithOptions nor WithSubsystem has set one.
const DefaultSubsystem = "mapsort"

// subsystem is the process-wide default set by ConfigureLoggingWithOptions.
var subsystem atomic.String //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	var handler slog.Handler

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	// Annotated errors carry their own attributes, surface them.
	logger := slog.New(&slogErrorLogger{inner: handler})

	slog.SetDefault(logger)

	if opts.Subsystem != "" {
		subsystem.Store(opts.Subsystem)
	}

	return logger
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed (no log output will be produced).
func WithMuted(ctx context.Context, muted bool) context.Context {
	return context.WithValue(ctx, contextKey("muted"), muted)
}

// isMuted checks if the context has the muted flag set to true.
func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("muted")).(bool)

	return ok && muted
}

// WithSubsystem adds a subsystem to the context, overriding the configured default.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the configured default is used.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := ctx.Value(contextKey("subsystem")).(string); ok && sub != "" {
		return sub
	}

	if sub := subsystem.Load(); sub != "" {
		return sub
	}

	return DefaultSubsystem
}

// WithLogger attaches a base logger to the context. Get uses it in place of
// slog.Default, which lets callers (and tests) direct library logs
// somewhere specific without touching global state.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey("logger"), logger)
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

// getValues retrieves logger values from the context that were added via With.
func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(contextKey("loggerValues")).([]any)
	if !ok {
		return nil
	}

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// nullHandler is a slog.Handler implementation that discards all log output.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// getRealContext extracts the first non-nil context from a variadic list.
// If no context is provided or all are nil, it returns context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// Get returns a logger carrying the subsystem and any values added with With.
// A muted context yields a logger that discards everything.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(contextKey("logger")).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	logger = slog.New(withErrorAttrs(logger.Handler()))

	logger = logger.With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
