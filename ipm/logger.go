// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"fmt"
	"io"
)

// LogLevel controls the frequency and type of logger output.
type LogLevel int

const (
	// LogNoop no output is generated.
	LogNoop LogLevel = iota - 1
	// LogError unrecoverable conditions only.
	LogError
	// LogWarning recoverable but noteworthy events.
	LogWarning
	// LogSummary one line per major event.
	LogSummary
	// LogDetailed per-iteration and per-phase detail.
	LogDetailed
	// LogVector full vector dumps.
	LogVector
)

// Logger is a level-gated message sink. The algorithm never depends on log
// output for control flow, so a nil Logger or a nil writer simply discards.
// The writer must be safe for the caller's own concurrency discipline.
type Logger struct {
	Level LogLevel
	Msg   io.Writer
}

// Enabled reports whether messages at the given level are produced.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && l.Msg != nil && l.Level >= level
}

// Printf writes a formatted message if the level is enabled.
func (l *Logger) Printf(level LogLevel, format string, a ...any) {
	if !l.Enabled(level) {
		return
	}
	if len(a) > 0 {
		_, _ = fmt.Fprintf(l.Msg, format, a...)
	} else {
		_, _ = fmt.Fprint(l.Msg, format)
	}
}
