// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordWrite(t *testing.T) {
	entriesBefore := testutil.ToFloat64(EntriesWritten)
	bytesBefore := testutil.ToFloat64(BytesWritten)

	RecordWrite(128, 2*time.Millisecond)
	RecordWrite(64, time.Millisecond)

	if got := testutil.ToFloat64(EntriesWritten) - entriesBefore; got != 2 {
		t.Errorf("entries written delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(BytesWritten) - bytesBefore; got != 192 {
		t.Errorf("bytes written delta = %v, want 192", got)
	}
}

func TestRecordFailure(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"write dir unresolved", 5000},
		{"write failed", 5001},
		{"sweep failed", 5002},
		{"snapshot read failed", 5005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := Failures.WithLabelValues(strconv.Itoa(tt.code))
			before := testutil.ToFloat64(counter)
			RecordFailure(tt.code)
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("failures[%d] delta = %v, want 1", tt.code, got)
			}
		})
	}
}

func TestRecordRetentionDeletion(t *testing.T) {
	for _, reason := range []string{RetentionExpired, RetentionUnparseable} {
		counter := RetentionDeletions.WithLabelValues(reason)
		before := testutil.ToFloat64(counter)
		RecordRetentionDeletion(reason)
		if got := testutil.ToFloat64(counter) - before; got != 1 {
			t.Errorf("deletions[%s] delta = %v, want 1", reason, got)
		}
	}
}

func TestRecordSnapshot(t *testing.T) {
	RecordSnapshot(3, 4096)

	if got := testutil.ToFloat64(SnapshotFiles); got != 3 {
		t.Errorf("snapshot files = %v, want 3", got)
	}
	if got := testutil.ToFloat64(SnapshotBytes); got != 4096 {
		t.Errorf("snapshot bytes = %v, want 4096", got)
	}
}

func TestRecordReport(t *testing.T) {
	outcomes := []string{ReportSent, ReportFailed, ReportDropped, ReportRejected}
	for _, outcome := range outcomes {
		counter := ReportsTotal.WithLabelValues(outcome)
		before := testutil.ToFloat64(counter)
		RecordReport(outcome)
		if got := testutil.ToFloat64(counter) - before; got != 1 {
			t.Errorf("reports[%s] delta = %v, want 1", outcome, got)
		}
	}
}

func TestTrackTaskConcurrent(t *testing.T) {
	before := testutil.ToFloat64(TasksInFlight)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackTask(true)
			TrackTask(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(TasksInFlight); got != before {
		t.Errorf("tasks in flight = %v, want %v", got, before)
	}
}

func TestHandler(t *testing.T) {
	RecordWrite(10, time.Millisecond)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	for _, name := range []string{"mtlog_entries_written_total", "mtlog_bytes_written_total", "mtlog_task_panics_total"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
