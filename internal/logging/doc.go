// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package logging provides the zerolog-based diagnostic logger used inside the
// manager itself.
//
// This is not the daily log file. Entries written to the daily files go
// through internal/logfile; this package covers the library's own structured
// output: sweep summaries, reporter outcomes, supervisor events, and the
// debug trail that helps when a log directory misbehaves.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Debug().Str("file", name).Msg("Deleted log file")
//	logging.Warn().Err(err).Msg("Error report not delivered")
//
// # Configuration
//
// Environment Variables (read through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Component Loggers
//
//	log := logging.WithComponent("sweeper")
//	log.Debug().Str("file", name).Msg("Deleted log file")
//
// # slog Adapter
//
// suture reports supervisor events through log/slog. [NewSlogLogger] returns
// an slog.Logger whose records land in the same zerolog output.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// guarded by a sync.RWMutex so Init may be called while other goroutines log.
package logging
