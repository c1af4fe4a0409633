// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

var (
	// ErrDropped is returned when a report exceeds the reporting budget.
	ErrDropped = errors.New("report dropped: rate limit exceeded")

	// ErrRejected is returned while the circuit breaker is open.
	ErrRejected = errors.New("report rejected: circuit breaker open")
)

// GuardConfig configures a Guarded reporter.
type GuardConfig struct {
	// RatePerSecond and Burst size the token bucket.
	RatePerSecond float64
	Burst         int

	// Timeout bounds a single delivery attempt.
	Timeout time.Duration

	// BreakerFailures consecutive failures open the breaker for BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Guarded protects a Reporter from floods and from a dead backend.
//
// Reports beyond the token budget are dropped, not queued: an error storm
// must not pile up goroutines waiting on the backend. Consecutive delivery
// failures open a circuit breaker, after which reports are rejected without
// a network call until the breaker half-opens.
type Guarded struct {
	next    Reporter
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
}

// NewGuarded wraps next.
func NewGuarded(next Reporter, cfg GuardConfig) *Guarded {
	g := &Guarded{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		timeout: cfg.Timeout,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 1
	}
	g.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "report",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.ReporterBreakerState.Set(float64(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Reporter circuit breaker changed state")
		},
	})
	return g
}

// Report delivers r through the limiter and the breaker.
func (g *Guarded) Report(ctx context.Context, r Report) error {
	if !g.limiter.Allow() {
		metrics.RecordReport(metrics.ReportDropped)
		return ErrDropped
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, g.next.Report(ctx, r)
	})
	switch {
	case err == nil:
		metrics.RecordReport(metrics.ReportSent)
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordReport(metrics.ReportRejected)
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		metrics.RecordReport(metrics.ReportFailed)
		return fmt.Errorf("deliver report %s: %w", r.ID, err)
	}
}

// State returns the breaker state.
func (g *Guarded) State() gobreaker.State {
	return g.breaker.State()
}
