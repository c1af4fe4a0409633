// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package services

import (
	"context"
	"time"

	"github.com/movista-travel/mt-logging-manager/internal/logfile"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
)

// Sweeper runs one retention pass. Satisfied by *logfile.Sweeper.
type Sweeper interface {
	Sweep() logfile.SweepResult
}

// SweepService repeats the retention sweep on a fixed interval.
type SweepService struct {
	sweeper  Sweeper
	interval time.Duration
	name     string
}

// NewSweepService creates a sweep service.
func NewSweepService(sweeper Sweeper, interval time.Duration) *SweepService {
	return &SweepService{
		sweeper:  sweeper,
		interval: interval,
		name:     "retention-sweep",
	}
}

// Serve implements suture.Service.
func (s *SweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *SweepService) sweepOnce(ctx context.Context) {
	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())
	start := time.Now()

	result := s.sweeper.Sweep()

	logging.Ctx(ctx).Info().
		Str("service", s.name).
		Int("deleted", len(result.Deleted)).
		Int("retained", len(result.Retained)).
		Int("skipped", len(result.Skipped)).
		Dur("duration", time.Since(start)).
		Msg("Retention sweep complete")
}

// String implements fmt.Stringer. Suture uses it in event logs.
func (s *SweepService) String() string {
	return s.name
}
