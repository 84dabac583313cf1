package main

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger receives progress messages from commands.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// cliLogger implements Logger with colored terminal output.
// Infof is only printed when verbose.
type cliLogger struct {
	out     io.Writer
	verbose bool
}

func newLogger(out io.Writer, verbose bool) *cliLogger {
	return &cliLogger{out: out, verbose: verbose}
}

func (l *cliLogger) Infof(format string, args ...any) {
	if !l.verbose {
		return
	}
	color.New(color.FgCyan).Fprintf(l.out, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
}

// logger is replaced once flags are parsed.
var logger Logger = newLogger(os.Stderr, false)
