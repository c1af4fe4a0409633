// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package report

import (
	"context"
	"sync"
)

// Recorder keeps every report in memory. Err, if set, is returned from
// Report after the report is recorded.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
	Err     error
}

// Report implements Reporter.
func (r *Recorder) Report(_ context.Context, rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
	return r.Err
}

// Reports returns a copy of the recorded reports.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Codes returns the code of every recorded report, in order.
func (r *Recorder) Codes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	codes := make([]int, len(r.reports))
	for i, rep := range r.reports {
		codes[i] = rep.Code
	}
	return codes
}

// Count returns how many reports carried code.
func (r *Recorder) Count(code int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rep := range r.reports {
		if rep.Code == code {
			n++
		}
	}
	return n
}
