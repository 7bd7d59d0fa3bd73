// Package logger is the structured, context-aware logger used across the
// simulation. It is a thin layer over log/slog.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// getCaller -> log -> Info/Warn/... -> caller
const callerSkipFrames = 3

// Logger defines the logging interface.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Fatal(ctx context.Context, msg string, fields ...Field)

	// Named groups subsequent fields under name.
	Named(name string) Logger
	// With returns a logger that always carries fields.
	With(fields ...Field) Logger
}

// Field is a structured key/value pair.
type Field struct {
	Key   string
	Value any
}

// Field constructors.
func String(key, val string) Field                 { return Field{Key: key, Value: val} }
func Int(key string, val int) Field                { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field        { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field              { return Field{Key: key, Value: val} }
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }
func Any(key string, val any) Field                { return Field{Key: key, Value: val} }
func Error(err error) Field                        { return Field{Key: "error", Value: err} }

type slogLogger struct {
	l *slog.Logger
}

// New builds a Logger writing text records to w at the given level.
func New(w io.Writer, level slog.Leveler) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// NewJSON builds a Logger writing JSON records to w.
func NewJSON(w io.Writer, level slog.Leveler) Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// Nop discards everything.
func Nop() Logger {
	return New(io.Discard, slog.LevelError+1)
}

func (s *slogLogger) Named(name string) Logger {
	return &slogLogger{l: s.l.WithGroup(name)}
}

func (s *slogLogger) With(fields ...Field) Logger {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return &slogLogger{l: s.l.With(args...)}
}

func (s *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelInfo, msg, fields)
}

func (s *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelError, msg, fields)
}

func (s *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelDebug, msg, fields)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelWarn, msg, fields)
}

func (s *slogLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelError, msg, fields)
	os.Exit(1)
}

func (s *slogLogger) log(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.l.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	attrs = append(attrs, slog.String("source", getCaller()))
	s.l.LogAttrs(ctx, level, msg, attrs...)
}

// getCaller returns dir/file.go:line of the logging call site.
func getCaller() string {
	_, file, line, ok := runtime.Caller(callerSkipFrames)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(file)), filepath.Base(file), line)
}

var (
	mu       sync.RWMutex
	global   Logger
	levelVar slog.LevelVar
)

// Option configures the global logger.
type Option func(*options)

type options struct {
	w    io.Writer
	json bool
}

// WithWriter sends global output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.w = w }
}

// WithJSON switches the global logger to JSON records.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// Init initializes the global logger at info level.
func Init(opts ...Option) error {
	o := options{w: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	levelVar.Set(slog.LevelInfo)

	mu.Lock()
	defer mu.Unlock()
	if o.json {
		global = NewJSON(o.w, &levelVar)
	} else {
		global = New(o.w, &levelVar)
	}
	return nil
}

// Get returns the global logger. It panics if Init was not called.
func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		panic("logger not initialized: call logger.Init first")
	}
	return global
}

// Named creates a named logger from the global one.
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync flushes buffered log entries. slog does not buffer.
func Sync() error {
	return nil
}

// SetLevel updates the global logging level.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive).
// An empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// SetLevelString parses and sets the global logging level.
func SetLevelString(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetLevel(l)
	return nil
}
