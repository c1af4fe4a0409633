// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package report delivers errors to the remote crash-reporting backend.
//
// A [Report] carries the domain/code/message triple the backend expects plus
// an ID the backend can use to drop duplicates. [Reporter] is the sink
// interface. Implementations:
//
//   - [HTTPReporter] posts reports as JSON.
//   - [LogReporter] writes reports to the diagnostics logger; used when no
//     endpoint is configured.
//   - [Guarded] wraps another Reporter with a rate limit, a per-report
//     timeout and a circuit breaker.
//   - [Recorder] keeps reports in memory for tests.
//
// Reporters never write to the daily log file. The manager relies on this to
// report log-write failures without recursing into the writer.
package report
