//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package utils implements the diagnostics output of the digest
// tools.
package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements the digest tools' logging facility.
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
	}
}

// Errorf logs an error message and returns its first line as an
// error.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := l.printf(loc, "", format, a...)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.printf(loc, "warning: ", format, a...)
}

// Infof logs an informational message if the logger is verbose.
func (l *Logger) Infof(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	fmt.Fprint(l.out, msg)
}

func (l *Logger) printf(loc Point, prefix, format string,
	a ...interface{}) string {

	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s%s", loc.Source, prefix, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s%s", loc, prefix, msg)
	}
	return msg
}
