// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/movista-travel/mt-logging-manager/internal/loggable"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

// SweepResult lists what a sweep did. Names are directory entry names.
// Skipped holds subdirectories, which the sweep never touches.
type SweepResult struct {
	Deleted  []string
	Retained []string
	Skipped  []string
}

// Sweeper deletes daily files older than RetentionWindow and any file whose
// name does not parse as a date. Subdirectories are left alone.
type Sweeper struct {
	resolver Resolver
	log      ErrorLogger
	clock    Clock
	loc      *time.Location
}

// NewSweeper creates a Sweeper. Failures are routed through log.
// A nil clock uses time.Now; a nil loc uses time.Local.
func NewSweeper(resolver Resolver, log ErrorLogger, clock Clock, loc *time.Location) *Sweeper {
	if clock == nil {
		clock = time.Now
	}
	return &Sweeper{
		resolver: resolver,
		log:      log,
		clock:    clock,
		loc:      locationOrLocal(loc),
	}
}

// Sweep runs one retention pass.
//
// An unresolved directory is reported as 5003 and nothing is created. Failure
// to create or list the directory is reported as 5002 and aborts the pass.
// A failed deletion does not stop the pass; all deletion failures are joined
// into a single 5002 report once every entry has been visited.
func (s *Sweeper) Sweep() SweepResult {
	var result SweepResult
	metrics.RetentionSweeps.Inc()

	dir, ok := s.resolver.Resolve()
	if !ok {
		s.log.log(loggable.NewError(loggable.ErrMissingFolder, loggable.CodeSweepDirUnresolved, loggable.Here()))
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.log(loggable.NewError(fmt.Errorf("create log directory: %w", err), loggable.CodeSweepFailed, loggable.Here()))
		return result
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.log(loggable.NewError(fmt.Errorf("list log directory: %w", err), loggable.CodeSweepFailed, loggable.Here()))
		return result
	}

	now := s.clock()
	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		reason, expired := s.classify(name, now)
		if !expired {
			result.Retained = append(result.Retained, name)
			continue
		}

		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", name, err))
			continue
		}

		metrics.RecordRetentionDeletion(reason)
		result.Deleted = append(result.Deleted, name)
		logging.Debug().
			Str("file", name).
			Str("reason", reason).
			Msg("Deleted log file")
	}

	if len(errs) > 0 {
		s.log.log(loggable.NewError(errors.Join(errs...), loggable.CodeSweepFailed, loggable.Here()))
	}

	return result
}

// classify reports whether name should be deleted and why.
func (s *Sweeper) classify(name string, now time.Time) (reason string, expired bool) {
	day, err := ParseFileName(name, s.loc)
	if err != nil {
		return metrics.RetentionUnparseable, true
	}
	if now.Sub(day) > RetentionWindow {
		return metrics.RetentionExpired, true
	}
	return "", false
}
