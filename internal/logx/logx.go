// Package logx is a small leveled wrapper around the standard log.Logger:
// debug output is gated by a single boolean rather than a level threshold,
// matching the single config.Debug knob both binaries expose.
package logx

import (
	"log"
	"os"
)

// Logger gates Debugf on a boolean instead of a level, since this project
// has exactly one verbosity knob.
type Logger struct {
	debug bool
	std   *log.Logger
}

// New builds a Logger that writes to stderr with the given prefix.
func New(prefix string, debug bool) *Logger {
	return &Logger{
		debug: debug,
		std:   log.New(os.Stderr, prefix, log.LstdFlags),
	}
}

// Debugf logs only when the logger was built with debug=true.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.std.Printf(format, args...)
	}
}

// Infof always logs; used for connection and game-over narration that
// operators want to see regardless of the debug flag.
func (l *Logger) Infof(format string, args ...any) {
	l.std.Printf(format, args...)
}

// Errorf always logs, with an "ERROR: " prefix; used for emergency kills,
// failed sends and the binaries' fatal startup errors.
func (l *Logger) Errorf(format string, args ...any) {
	l.std.Printf("ERROR: "+format, args...)
}
