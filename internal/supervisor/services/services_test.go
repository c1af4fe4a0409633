// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/movista-travel/mt-logging-manager/internal/logfile"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
)

var (
	_ suture.Service = (*SweepService)(nil)
	_ suture.Service = (*HealthCheckService)(nil)
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// capture returns a context whose logger writes into a buffer.
func capture() (context.Context, *syncBuffer) {
	buf := &syncBuffer{}
	return logging.ContextWithLogger(context.Background(), logging.NewTestLogger(buf)), buf
}

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep() logfile.SweepResult {
	c.calls.Add(1)
	return logfile.SweepResult{Deleted: []string{"10_10_2026.txt"}, Retained: []string{"18_10_2026.txt", "17_10_2026.txt"}, Skipped: []string{"archive"}}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSweepService(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	ctx, cancel := context.WithCancel(ctx)

	sweeper := &countingSweeper{}
	svc := NewSweepService(sweeper, 10*time.Millisecond)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitFor(t, func() bool { return sweeper.calls.Load() >= 2 })
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}

	out := buf.String()
	for _, want := range []string{`"deleted":1`, `"retained":2`, `"skipped":1`, `"run_id":"`, `"service":"retention-sweep"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
	if svc.String() != "retention-sweep" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestSweepServiceWaitsForFirstTick(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}
	svc := NewSweepService(sweeper, time.Hour)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-errCh

	if got := sweeper.calls.Load(); got != 0 {
		t.Errorf("sweeps = %d, want 0 before the first interval", got)
	}
}

func TestHealthCheckService(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	ctx, cancel := context.WithCancel(ctx)

	var calls atomic.Int32
	snapshot := func() map[string][]byte {
		calls.Add(1)
		return map[string][]byte{
			"17_10_2026.txt": []byte("abc"),
			"18_10_2026.txt": []byte("hello"),
		}
	}
	svc := NewHealthCheckService(snapshot, time.Hour)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitFor(t, func() bool { return calls.Load() >= 1 })
	waitFor(t, func() bool { return strings.Contains(buf.String(), "Log health check") })
	cancel()
	<-errCh

	out := buf.String()
	for _, want := range []string{`"files":2`, `"bytes":8`, `"17_10_2026.txt":3`, `"18_10_2026.txt":5`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
	if svc.String() != "log-health-check" {
		t.Errorf("String() = %q", svc.String())
	}
}
