// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"github.com/movista-travel/mt-logging-manager/internal/loggable"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

// DirectReporter delivers a failure straight to the remote sink (and console).
// Implementations must never call back into a Writer: the Writer uses this
// path for its own failures (5000, 5001).
type DirectReporter func(err *loggable.Error)

// ErrorLogger routes a failure through the full logging path, which persists
// it with a Writer. Only the Sweeper and Snapshotter use it.
type ErrorLogger func(err *loggable.Error)

func (r DirectReporter) report(err *loggable.Error) {
	metrics.RecordFailure(int(err.Code()))
	if r != nil {
		r(err)
	}
}

func (l ErrorLogger) log(err *loggable.Error) {
	metrics.RecordFailure(int(err.Code()))
	if l != nil {
		l(err)
	}
}
