// Package logger is the zerolog front end shared by brandkit commands.
package logger

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps routine command runs quiet; --verbose lowers it to debug.
const DefaultLevel = zerolog.WarnLevel

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level names a zerolog level. Empty means DefaultLevel, or debug when
	// Verbose is set.
	Level   string
	Verbose bool
	// HumanReadable switches from JSON lines to zerolog's console format.
	HumanReadable bool
	// NoColor strips ANSI colours from console output.
	NoColor bool
	// Writer defaults to stderr so command output on stdout stays machine readable.
	Writer io.Writer
}

// Logger wraps zerolog with the few calls commands make. A nil *Logger
// discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := resolveLevel(opts)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if opts.HumanReadable {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	return &Logger{base: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, nil
}

func resolveLevel(opts Options) (zerolog.Level, error) {
	switch {
	case opts.Level != "":
		return zerolog.ParseLevel(strings.ToLower(opts.Level))
	case opts.Verbose:
		return zerolog.DebugLevel, nil
	default:
		return DefaultLevel, nil
	}
}

// Nop returns a logger that discards everything. Commands hold one until
// the real logger is configured from flags.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied
// fields, added in key order so JSON output is stable.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	ctx := l.base.With()
	for _, key := range keys {
		ctx = ctx.Interface(key, fields[key])
	}
	return &Logger{base: ctx.Logger()}
}

// With is shorthand for a single-field WithFields.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l != nil && l.base.GetLevel() <= level && level != zerolog.Disabled
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error writes msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
