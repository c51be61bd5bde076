// Package log wraps log/slog with a component field and request-scoped
// loggers.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a slog.Logger bound to a component.
type Logger struct {
	*slog.Logger
	base      *slog.Logger // without the component attribute
	component string
}

func newLogger(base *slog.Logger, component string) *Logger {
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Format    string // "text" or "json"
	Component string
	Writer    io.Writer
}

// DefaultConfig logs text at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Component: ComponentApp,
		Writer:    os.Stderr,
	}
}

// ParseLevel converts a configured level name.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return lvl, nil
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}
	return newLogger(slog.New(handler), component)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return newLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), ComponentApp)
}

// With returns a logger with extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return newLogger(l.base.With(args...), l.component)
}

// WithComponent returns a logger reporting under another component.
func (l *Logger) WithComponent(component string) *Logger {
	return newLogger(l.base, component)
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the slog default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}

type contextKey struct{}

// NewContext returns ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or one wrapping the slog
// default.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}
	return newLogger(slog.Default(), "unknown")
}
