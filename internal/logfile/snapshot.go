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

	"github.com/movista-travel/mt-logging-manager/internal/loggable"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

// Snapshotter reads the whole log directory into memory.
//
// The result is a point-in-time copy, not a stream. Log volume is a few days
// of text, so holding it in memory is acceptable; it is not meant for
// directories measured in gigabytes.
type Snapshotter struct {
	resolver Resolver
	log      ErrorLogger
}

// NewSnapshotter creates a Snapshotter. Failures are routed through log.
func NewSnapshotter(resolver Resolver, log ErrorLogger) *Snapshotter {
	return &Snapshotter{resolver: resolver, log: log}
}

// Snapshot maps each file name in the log directory to its contents.
//
// An unresolved directory is reported as 5004 and yields an empty map. A
// listing failure, including a directory that does not exist, is reported as
// 5005 and yields an empty map. Read failures are reported once as 5005; the
// files that could be read are still returned. Subdirectories are skipped.
func (s *Snapshotter) Snapshot() map[string][]byte {
	logs := make(map[string][]byte)

	dir, ok := s.resolver.Resolve()
	if !ok {
		s.log.log(loggable.NewError(loggable.ErrMissingFolder, loggable.CodeSnapshotDirUnresolved, loggable.Here()))
		return logs
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.log(loggable.NewError(fmt.Errorf("list log directory: %w", err), loggable.CodeSnapshotReadFailed, loggable.Here()))
		return logs
	}

	var (
		errs  []error
		total int64
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", entry.Name(), err))
			continue
		}
		logs[entry.Name()] = data
		total += int64(len(data))
	}

	if len(errs) > 0 {
		s.log.log(loggable.NewError(errors.Join(errs...), loggable.CodeSnapshotReadFailed, loggable.Here()))
	}

	metrics.RecordSnapshot(len(logs), total)
	return logs
}
