// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package mtlogging

import (
	"time"
)

// Option customizes a Manager.
type Option func(*options)

type options struct {
	reporter Reporter
	console  Console
	clock    func() time.Time
	resolver Resolver
}

// WithReporter sets the error backend. It is still wrapped by the rate
// limiter and circuit breaker configured in cfg.Report.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithConsole sets the console used in stage and test.
func WithConsole(c Console) Option {
	return func(o *options) {
		o.console = c
	}
}

// WithClock replaces time.Now for timestamps, file names and retention.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithResolver overrides the log directory derived from cfg.Storage.
func WithResolver(r Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}
