// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package report

import (
	"context"

	"github.com/rs/zerolog"
)

// LogReporter writes reports to a zerolog logger at warn level.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a LogReporter.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report implements Reporter. It never fails.
func (l *LogReporter) Report(_ context.Context, r Report) error {
	event := l.logger.Warn().
		Str("report_id", r.ID.String()).
		Str("domain", r.Domain).
		Int("code", r.Code)
	for k, v := range r.Metadata {
		if k == MetaMessage {
			continue
		}
		event = event.Str(k, v)
	}
	event.Msg(r.Message)
	return nil
}
