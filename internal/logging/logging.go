// Package logging wraps zerolog for jester. The TUI owns stdout, so the
// dashboard logs to a file; the MCP server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// Writer receives log output. When nil, Path is opened instead; when
	// both are empty logs are discarded.
	Writer io.Writer
	Path   string
}

// Logger wraps zerolog with a small API. A nil *Logger discards everything.
type Logger struct {
	base   zerolog.Logger
	closer io.Closer
}

// New creates a configured Logger. Every logger carries a fresh session id so
// lines from one run can be grouped.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	writer := opts.Writer
	var closer io.Closer
	if writer == nil {
		if strings.TrimSpace(opts.Path) == "" {
			writer = io.Discard
		} else {
			file, err := openLogFile(opts.Path)
			if err != nil {
				return nil, err
			}
			writer = file
			closer = file
		}
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.NoColor = true
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return &Logger{base: base, closer: closer}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Debug writes a debug-level entry with optional fields.
func (l *Logger) Debug(msg string, fields ...Field) {
	if l == nil {
		return
	}
	apply(l.base.Debug(), fields).Msg(msg)
}

// Info writes an informational entry with optional fields.
func (l *Logger) Info(msg string, fields ...Field) {
	if l == nil {
		return
	}
	apply(l.base.Info(), fields).Msg(msg)
}

// Warn writes a warning entry with optional fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	if l == nil {
		return
	}
	apply(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error entry including err.
func (l *Logger) Error(err error, msg string, fields ...Field) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	apply(event, fields).Msg(msg)
}

// Field is a single structured key/value.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func apply(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

func openLogFile(path string) (*os.File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
