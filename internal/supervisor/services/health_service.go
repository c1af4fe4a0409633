// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package services

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/movista-travel/mt-logging-manager/internal/logging"
)

// SnapshotFunc returns the current log files by name.
type SnapshotFunc func() map[string][]byte

// HealthCheckService periodically logs a summary of the log directory so a
// test run shows at a glance that files are being written and expired.
type HealthCheckService struct {
	snapshot SnapshotFunc
	interval time.Duration
	name     string
}

// NewHealthCheckService creates a health check service.
func NewHealthCheckService(snapshot SnapshotFunc, interval time.Duration) *HealthCheckService {
	return &HealthCheckService{
		snapshot: snapshot,
		interval: interval,
		name:     "log-health-check",
	}
}

// Serve implements suture.Service.
func (h *HealthCheckService) Serve(ctx context.Context) error {
	h.check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *HealthCheckService) check(ctx context.Context) {
	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())
	logs := h.snapshot()

	names := make([]string, 0, len(logs))
	for name := range logs {
		names = append(names, name)
	}
	slices.Sort(names)

	sizes := zerolog.Dict()
	var total int
	for _, name := range names {
		sizes.Int(name, len(logs[name]))
		total += len(logs[name])
	}

	logging.Ctx(ctx).Info().
		Str("service", h.name).
		Int("files", len(names)).
		Int("bytes", total).
		Dict("sizes", sizes).
		Msg("Log health check")
}

// String implements fmt.Stringer. Suture uses it in event logs.
func (h *HealthCheckService) String() string {
	return h.name
}
