// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report outcomes used as the "outcome" label of ReportsTotal.
const (
	ReportSent     = "sent"
	ReportFailed   = "failed"
	ReportDropped  = "dropped"  // over the reporting budget
	ReportRejected = "rejected" // circuit breaker open
)

// Retention deletion reasons used as the "reason" label of RetentionDeletions.
const (
	RetentionExpired     = "expired"
	RetentionUnparseable = "unparseable"
)

var (
	// Write path

	EntriesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtlog_entries_written_total",
			Help: "Total number of entries appended to daily log files",
		},
	)

	BytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtlog_bytes_written_total",
			Help: "Total number of bytes appended to daily log files",
		},
	)

	FilesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtlog_files_created_total",
			Help: "Total number of daily log files materialized by the writer",
		},
	)

	WriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mtlog_write_duration_seconds",
			Help:    "Duration of a single open-append-close cycle",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Failures by internal error code (5000-5005)
	Failures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtlog_internal_failures_total",
			Help: "Total number of internal logging failures by error code",
		},
		[]string{"code"},
	)

	// Retention

	RetentionDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtlog_retention_deletions_total",
			Help: "Total number of log files deleted by the retention sweep",
		},
		[]string{"reason"}, // "expired", "unparseable"
	)

	RetentionSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtlog_retention_sweeps_total",
			Help: "Total number of retention sweeps started",
		},
	)

	// Snapshot

	SnapshotFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mtlog_snapshot_files",
			Help: "Number of files returned by the most recent snapshot",
		},
	)

	SnapshotBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mtlog_snapshot_bytes",
			Help: "Total bytes returned by the most recent snapshot",
		},
	)

	// Remote reporting

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtlog_reports_total",
			Help: "Total number of remote error reports by outcome",
		},
		[]string{"outcome"}, // "sent", "failed", "dropped", "rejected"
	)

	ReporterBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mtlog_reporter_breaker_state",
			Help: "Remote reporter circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Background dispatch

	TasksInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mtlog_tasks_in_flight",
			Help: "Current number of dispatched background tasks not yet finished",
		},
	)

	TaskPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtlog_task_panics_total",
			Help: "Total number of background tasks that panicked",
		},
	)
)

// RecordWrite records a successful append of n bytes.
func RecordWrite(n int, duration time.Duration) {
	EntriesWritten.Inc()
	BytesWritten.Add(float64(n))
	WriteDuration.Observe(duration.Seconds())
}

// RecordFailure records an internal failure by its numeric code.
func RecordFailure(code int) {
	Failures.WithLabelValues(strconv.Itoa(code)).Inc()
}

// RecordRetentionDeletion records a file removed by the sweep.
func RecordRetentionDeletion(reason string) {
	RetentionDeletions.WithLabelValues(reason).Inc()
}

// RecordSnapshot records the size of the most recent snapshot.
func RecordSnapshot(files int, bytes int64) {
	SnapshotFiles.Set(float64(files))
	SnapshotBytes.Set(float64(bytes))
}

// RecordReport records the outcome of a remote report attempt.
func RecordReport(outcome string) {
	ReportsTotal.WithLabelValues(outcome).Inc()
}

// TrackTask adjusts the in-flight task gauge.
func TrackTask(inc bool) {
	if inc {
		TasksInFlight.Inc()
	} else {
		TasksInFlight.Dec()
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
