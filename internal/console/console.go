// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package console echoes log entries to a human-readable sink. The manager
// only uses it in the test and stage environments.
//
// Each manager owns its Console. Nothing is registered globally, so building
// several managers in one process (as tests do) never duplicates output.
package console

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level is the console severity.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Console writes one entry at a time.
type Console interface {
	Write(level Level, text string)
}

// Zerolog renders entries with zerolog's ConsoleWriter:
//
//	15:04:05 INF main.run main.go:42 label=MTLoggingManager
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog writes to w, tagging every line with label. Colour is enabled
// only for os.Stdout and os.Stderr.
func NewZerolog(w io.Writer, label string) *Zerolog {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    w != os.Stdout && w != os.Stderr,
	}
	return &Zerolog{logger: zerolog.New(out).With().Timestamp().Str("label", label).Logger()}
}

// Write implements Console. The trailing newline of a formatted entry is
// dropped since ConsoleWriter adds its own.
func (z *Zerolog) Write(level Level, text string) {
	zl := zerolog.InfoLevel
	if level == LevelError {
		zl = zerolog.ErrorLevel
	}
	z.logger.WithLevel(zl).Msg(strings.TrimRight(text, "\n"))
}

// Discard drops everything.
type Discard struct{}

// Write implements Console.
func (Discard) Write(Level, string) {}

// Entry is one recorded console write.
type Entry struct {
	Level Level
	Text  string
}

// Recorder keeps console writes in memory for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Write implements Console.
func (r *Recorder) Write(level Level, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Text: text})
}

// Entries returns a copy of the recorded writes.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}
