// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/movista-travel/mt-logging-manager/internal/loggable"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

// Writer appends timestamped entries to the daily log file.
//
// Each write resolves the directory, computes today's file name and opens,
// appends and closes the file. Nothing is cached between calls, so a day
// rollover mid-process starts a new file on the next write. No lock guards the
// file: concurrent appends rely on O_APPEND writes being atomic, which holds
// for local filesystems but not for every network filesystem.
type Writer struct {
	resolver Resolver
	report   DirectReporter
	clock    Clock
	loc      *time.Location
}

// NewWriter creates a Writer. Failures go to report, never back to a Writer.
// A nil clock uses time.Now; a nil loc uses time.Local.
func NewWriter(resolver Resolver, report DirectReporter, clock Clock, loc *time.Location) *Writer {
	if clock == nil {
		clock = time.Now
	}
	return &Writer{
		resolver: resolver,
		report:   report,
		clock:    clock,
		loc:      locationOrLocal(loc),
	}
}

// Entry is a timestamped entry ready to be written. Time picks the file.
type Entry struct {
	Time time.Time
	Text string
}

// Stamp prefixes formatted with the current timestamp and a space.
func (w *Writer) Stamp(formatted string) Entry {
	now := w.clock()
	return Entry{Time: now, Text: Timestamp(now, w.loc) + " " + formatted}
}

// Append writes "<timestamp> <formatted>" to today's file. It never returns
// an error: failures are reported with code 5000 or 5001.
func (w *Writer) Append(formatted string) {
	w.Write(w.Stamp(formatted))
}

// Write appends an entry produced by Stamp to the file for its day.
func (w *Writer) Write(entry Entry) {
	dir, ok := w.resolver.Resolve()
	if !ok {
		w.report.report(loggable.NewError(loggable.ErrMissingFolder, loggable.CodeWriteDirUnresolved, loggable.Here()))
		return
	}

	if err := appendEntry(dir, FileName(entry.Time, w.loc), []byte(entry.Text)); err != nil {
		w.report.report(loggable.NewError(err, loggable.CodeWriteFailed, loggable.Here()))
	}
}

// appendEntry creates dir and the file lazily, then appends data in a single
// write call.
func appendEntry(dir, name string, data []byte) error {
	start := time.Now()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_APPEND|os.O_WRONLY, 0o644)
	switch {
	case err == nil:
		metrics.FilesCreated.Inc()
	case errors.Is(err, fs.ErrExist):
		f, err = os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	n, writeErr := f.Write(data)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("append log entry: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close log file: %w", closeErr)
	}

	metrics.RecordWrite(n, time.Since(start))
	return nil
}
