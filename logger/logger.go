package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

type Fields map[string]interface{}

// Logger is a small wrapper around zerolog.Logger so callers get a fixed
// msg+fields API regardless of the configured output.
type Logger struct {
	Z zerolog.Logger
}

// New returns a plain JSON logger writing to out.
func New(out io.Writer, level Level) *Logger {
	l := zerolog.New(out).With().Timestamp().Logger().Level(level)
	return &Logger{Z: l}
}

// NewConsole creates a ConsoleWriter-backed logger with short level codes
// and "3:04PM" timestamps. When color is true output uses ANSI colors.
func NewConsole(out io.Writer, level Level, color bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "3:04PM", NoColor: !color}

	colorWrap := func(s string, code string) string {
		if !color {
			return s
		}
		return "\x1b[" + code + "m" + s + "\x1b[0m"
	}

	cw.FormatLevel = func(i interface{}) string {
		lvl := zerolog.NoLevel
		switch v := i.(type) {
		case string:
			if parsed, err := zerolog.ParseLevel(v); err == nil {
				lvl = parsed
			}
		case zerolog.Level:
			lvl = v
		}
		switch lvl {
		case zerolog.DebugLevel:
			return colorWrap("DBG", "36")
		case zerolog.InfoLevel:
			return colorWrap("INF", "32")
		case zerolog.WarnLevel:
			return colorWrap("WRN", "33")
		case zerolog.ErrorLevel:
			return colorWrap("ERR", "31")
		default:
			return ""
		}
	}

	cw.FormatTimestamp = func(i interface{}) string {
		switch v := i.(type) {
		case time.Time:
			return colorWrap(v.Format("3:04PM"), "2")
		case string:
			return colorWrap(v, "2")
		default:
			return ""
		}
	}

	l := zerolog.New(cw).With().Timestamp().Logger().Level(level)
	return &Logger{Z: l}
}

// NewNop returns a no-op Logger instance.
func NewNop() *Logger {
	return &Logger{Z: zerolog.Nop()}
}

func (l *Logger) Debug(msg string, f Fields) {
	l.emit(l.Z.Debug(), msg, f)
}

func (l *Logger) Info(msg string, f Fields) {
	l.emit(l.Z.Info(), msg, f)
}

func (l *Logger) Warn(msg string, f Fields) {
	l.emit(l.Z.Warn(), msg, f)
}

func (l *Logger) Error(msg string, f Fields) {
	l.emit(l.Z.Error(), msg, f)
}

func (l *Logger) emit(e *zerolog.Event, msg string, f Fields) {
	if f != nil {
		e = e.Fields(map[string]interface{}(f))
	}
	e.Msg(msg)
}
