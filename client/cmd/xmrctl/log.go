// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"decred.org/xmrrpc/dex"
	"github.com/fatih/color"
	"github.com/jrick/logrotate/rotator"
)

const maxLogRolls = 8

// logWriter implements an io.Writer that outputs to a rotating log file, and
// in color to stdout if stdout is set.
type logWriter struct {
	*rotator.Rotator
	stdout *color.Color
}

// Write writes the data in p to the log file.
func (w logWriter) Write(p []byte) (n int, err error) {
	if w.stdout != nil {
		w.stdout.Fprint(os.Stdout, string(p))
	}
	return w.Rotator.Write(p)
}

// initLogging creates the log rotator for logFilename and a LoggerMaker
// writing to it. Close the rotator with the returned function.
func initLogging(logFilename, lvl string, stdout bool) (*dex.LoggerMaker, func(), error) {
	if err := os.MkdirAll(filepath.Dir(logFilename), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFilename, 32*1024, false, maxLogRolls)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file rotator: %w", err)
	}
	w := logWriter{Rotator: r}
	if stdout {
		w.stdout = color.New(color.FgGreen)
	}
	lm, err := dex.NewLoggerMaker(w, lvl)
	if err != nil {
		r.Close()
		return nil, nil, fmt.Errorf("failed to create custom logger: %w", err)
	}
	return lm, func() { r.Close() }, nil
}
