// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

// Package dispatch runs fire-and-forget background tasks.
//
// Submit never blocks: each task gets its own goroutine, which then waits for
// one of a fixed number of slots before running. Tasks are unordered. A
// panicking task is recovered and logged; it never takes the process down.
package dispatch

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
)

// Pool bounds how many submitted tasks run at once.
type Pool struct {
	sem    chan struct{}
	wg     sync.WaitGroup
	logger zerolog.Logger
}

// New creates a pool running at most workers tasks concurrently.
// workers below 1 is treated as 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		sem:    make(chan struct{}, workers),
		logger: logging.WithComponent("dispatch"),
	}
}

// Submit schedules task and returns immediately.
func (p *Pool) Submit(task func()) {
	if task == nil {
		return
	}
	p.wg.Add(1)
	metrics.TrackTask(true)
	go func() {
		defer p.wg.Done()
		defer metrics.TrackTask(false)

		p.sem <- struct{}{}
		defer func() { <-p.sem }()

		p.run(task)
	}()
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			metrics.TaskPanics.Inc()
			p.logger.Error().
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("Background task panicked")
		}
	}()
	task()
}

// Wait blocks until every task submitted so far has finished. Tasks
// submitted by a running task are waited for as well; tasks submitted from
// outside while Wait is blocked may or may not be.
func (p *Pool) Wait() {
	p.wg.Wait()
}
