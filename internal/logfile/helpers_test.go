// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"sync"
	"time"

	"github.com/movista-travel/mt-logging-manager/internal/loggable"
)

// testNow is a fixed midday instant so whole-day arithmetic never straddles midnight.
var testNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// failures collects errors passed to DirectReporter or ErrorLogger callbacks.
type failures struct {
	mu   sync.Mutex
	errs []*loggable.Error
}

func (f *failures) direct() DirectReporter {
	return func(err *loggable.Error) { f.add(err) }
}

func (f *failures) logger() ErrorLogger {
	return func(err *loggable.Error) { f.add(err) }
}

func (f *failures) add(err *loggable.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *failures) codes() []loggable.Code {
	f.mu.Lock()
	defer f.mu.Unlock()
	codes := make([]loggable.Code, len(f.errs))
	for i, err := range f.errs {
		codes[i] = err.Code()
	}
	return codes
}

func unresolved() Resolver {
	return ResolverFunc(func() (string, bool) { return "", false })
}
