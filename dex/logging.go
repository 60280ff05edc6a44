// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
)

// Logger is a slog.Logger that can spawn child loggers. Every client
// constructor accepts a Logger, and all logging should take place through it.
type Logger interface {
	slog.Logger
	// SubLogger creates a new Logger for the subsystem "parent[name]", sharing
	// the parent's backend and level.
	SubLogger(name string) Logger
}

type logger struct {
	slog.Logger
	name    string
	backend *slog.Backend
}

// SubLogger creates a new Logger for the subsystem with the given name. The
// new logger inherits the level of its parent.
func (lggr *logger) SubLogger(name string) Logger {
	return newLogger(lggr.backend, fmt.Sprintf("%s[%s]", lggr.name, name), lggr.Level())
}

func newLogger(backend *slog.Backend, name string, lvl slog.Level) Logger {
	lggr := backend.Logger(name)
	lggr.SetLevel(lvl)
	return &logger{
		Logger:  lggr,
		name:    name,
		backend: backend,
	}
}

// Disabled is a Logger that will never output anything.
var Disabled Logger = &logger{
	Logger:  slog.Disabled,
	backend: slog.NewBackend(io.Discard),
}

// NewLogger creates a Logger that writes to w with the given subsystem name
// and level.
func NewLogger(name string, lvl slog.Level, w io.Writer) Logger {
	return newLogger(slog.NewBackend(w), name, lvl)
}

// StdOutLogger creates a Logger with the provided name with lvl as the log
// level that prints to standard out.
func StdOutLogger(name string, lvl slog.Level) Logger {
	return NewLogger(name, lvl, os.Stdout)
}

// LoggerMaker allows creation of new log subsystems with predefined levels.
type LoggerMaker struct {
	*slog.Backend
	DefaultLevel slog.Level
	Levels       map[string]slog.Level
}

// NewLoggerMaker parses the debug level string into a new LoggerMaker. The
// debugLevel may be a single level, e.g. "debug", or a comma-separated list of
// subsystem=level pairs, e.g. "info,XRPC=trace,ENDP=debug".
func NewLoggerMaker(writer io.Writer, debugLevel string) (*LoggerMaker, error) {
	lm := &LoggerMaker{
		Backend:      slog.NewBackend(writer),
		DefaultLevel: slog.LevelInfo,
		Levels:       make(map[string]slog.Level),
	}
	if err := lm.parseDebugLevel(debugLevel); err != nil {
		return nil, err
	}
	return lm, nil
}

// SubLogger creates a Logger with a subsystem name "parent[name]", using any
// known log level for the parent subsystem, defaulting to the DefaultLevel if
// the parent does not have an explicitly set level.
func (lm *LoggerMaker) SubLogger(parent, name string) Logger {
	// Use the parent logger's log level, if set.
	level, ok := lm.Levels[parent]
	if !ok {
		level = lm.DefaultLevel
	}
	return newLogger(lm.Backend, fmt.Sprintf("%s[%s]", parent, name), level)
}

// NewLogger creates a new Logger for the subsystem with the given name. If a
// log level is specified, it is used for the Logger. Otherwise the level set
// for the subsystem, or the DefaultLevel, is used.
func (lm *LoggerMaker) NewLogger(name string, level ...slog.Level) Logger {
	lvl, ok := lm.Levels[name]
	if !ok {
		lvl = lm.DefaultLevel
	}
	if len(level) > 0 {
		lvl = level[0]
	}
	return newLogger(lm.Backend, name, lvl)
}
