package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger wraps zerolog for structured logging.
type logger struct {
	z zerolog.Logger
}

// newLogger creates a logger with console output on stderr.
func newLogger(level string) *logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return newLoggerTo(out, level)
}

// newLoggerTo creates a logger writing to w at the given level.
// Unknown levels fall back to info.
func newLoggerTo(w io.Writer, level string) *logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &logger{z: zl}
}

// nopLogger discards everything.
func nopLogger() *logger {
	return &logger{z: zerolog.Nop()}
}

func (l *logger) setLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil && lvl != zerolog.NoLevel {
		l.z = l.z.Level(lvl)
	}
}

func (l *logger) debug(msg string) { l.z.Debug().Msg(msg) }
func (l *logger) info(msg string)  { l.z.Info().Msg(msg) }
func (l *logger) err(msg string)   { l.z.Error().Msg(msg) }

func (l *logger) debugf(format string, args ...any) { l.debug(fmt.Sprintf(format, args...)) }
func (l *logger) infof(format string, args ...any)  { l.info(fmt.Sprintf(format, args...)) }
func (l *logger) errf(format string, args ...any)   { l.err(fmt.Sprintf(format, args...)) }
