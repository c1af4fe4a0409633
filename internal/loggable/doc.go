// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package loggable builds the text blocks that the logging facility persists
// and reports.
//
// Every entry carries an explicit call site (function, file, line) followed by
// the body and a fixed separator line:
//
//	main.startServer server.go:42
//	listening on :8080
//	----------------
//
// Call sites are never captured implicitly. Callers pass one in, usually by
// calling [Here] at the point of logging:
//
//	msg := loggable.NewMessage("boot ok", loggable.Here())
//	err := loggable.NewError(ioErr, 6001, loggable.Here())
//
// # Error Codes
//
// Codes 5000 through 5005 are reserved for failures inside the facility itself
// and identify which internal operation failed (not why it failed):
//
//	5000  write attempted but log directory unresolved
//	5001  write failed after the directory was resolved
//	5002  startup retention sweep failed
//	5003  startup sweep found the directory unresolved
//	5004  snapshot requested but directory unresolved
//	5005  snapshot read failed partway
//
// Applications are free to use any other code for their own errors.
package loggable
