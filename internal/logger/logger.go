// Package logger prints operator-facing messages with colored levels.
package logger

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger is a simple logger with colored outputs.
type Logger struct {
	out  io.Writer
	std  *log.Logger
	warn *color.Color
	err  *color.Color
}

// New returns a Logger writing to out. Colors are dropped automatically
// when the process output is not a terminal.
func New(out io.Writer) *Logger {
	return &Logger{
		out:  out,
		std:  log.New(out, "", log.LstdFlags),
		warn: color.New(color.FgYellow),
		err:  color.New(color.FgRed),
	}
}

// Discard returns a Logger that prints nothing.
func Discard() *Logger {
	return New(io.Discard)
}

// Info logs a plain message.
func (l *Logger) Info(f string, v ...interface{}) {
	l.std.Print(fmt.Sprintf(f, v...))
}

// Warn logs a yellow message.
func (l *Logger) Warn(f string, v ...interface{}) {
	l.std.Print(l.warn.Sprintf(f, v...))
}

// Error logs a red message.
func (l *Logger) Error(f string, v ...interface{}) {
	l.std.Print(l.err.Sprintf(f, v...))
}

// Request echoes raw request bytes verbatim, without a timestamp.
func (l *Logger) Request(raw []byte) {
	fmt.Fprintf(l.out, "Received request:\n%s\n", raw)
}
