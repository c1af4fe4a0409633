// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package validation checks configuration structs with go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after first use. Besides the built-in tags it registers:
//
//	loglevel  - a level understood by internal/logging
//	timezone  - "Local", "UTC" or an IANA zone name
//	groupid   - empty, or a single path segment usable as a directory name
//
// Failures come back as a *ConfigError listing every offending field by its
// namespaced name (for example "Report.Timeout").
package validation
