// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package metrics provides Prometheus instrumentation for the logging facility.

All collectors are registered with the default registry through promauto, so
a host process that already serves /metrics exposes them without extra wiring.

# Available Metrics

Write path:
  - mtlog_entries_written_total: entries appended (counter)
  - mtlog_bytes_written_total: bytes appended (counter)
  - mtlog_files_created_total: daily files materialized (counter)
  - mtlog_write_duration_seconds: open-append-close latency (histogram)
  - mtlog_internal_failures_total: internal failures (counter)
    Labels: code (5000-5005)

Retention:
  - mtlog_retention_sweeps_total: sweeps started (counter)
  - mtlog_retention_deletions_total: files deleted (counter)
    Labels: reason (expired, unparseable)

Snapshot:
  - mtlog_snapshot_files / mtlog_snapshot_bytes: size of the last snapshot (gauges)

Remote reporting:
  - mtlog_reports_total: report attempts (counter)
    Labels: outcome (sent, failed, dropped, rejected)
  - mtlog_reporter_breaker_state: 0=closed, 1=half-open, 2=open (gauge)

Background dispatch:
  - mtlog_tasks_in_flight: dispatched tasks not yet finished (gauge)
  - mtlog_task_panics_total: recovered task panics (counter)

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
