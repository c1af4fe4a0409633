// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package services provides suture.Service wrappers for the manager's periodic
maintenance.

Each service is a ticker loop: Serve blocks until its context is canceled,
does one unit of work per tick, and returns ctx.Err() on shutdown. A panic in
the work function is left to suture, which logs it and restarts the service
under the tree's backoff policy.

# Available Services

SweepService:
  - Runs a retention sweep every interval
  - The first sweep waits a full interval; the manager already sweeps at
    construction

HealthCheckService:
  - Takes a snapshot every interval and logs file names and sizes
  - Runs immediately on start, then every interval
  - Only registered in the test environment

Every run carries a short run_id in its log lines.
*/
package services
