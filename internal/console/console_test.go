// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestZerolog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
		text  string
		want  []string
	}{
		{"info", LevelInfo, "main.run main.go:42\nboot ok\n----------------\n", []string{"INF", "boot ok", "label=MTLoggingManager"}},
		{"error", LevelError, "disk full\n", []string{"ERR", "disk full"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewZerolog(&buf, "MTLoggingManager").Write(tt.level, tt.text)

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("buffer output should not be coloured: %q", out)
			}
		})
	}
}

func TestZerologInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	NewZerolog(&a, "first").Write(LevelInfo, "only first")
	NewZerolog(&b, "second")

	if strings.Count(a.String(), "only first") != 1 {
		t.Errorf("first console = %q", a.String())
	}
	if b.Len() != 0 {
		t.Errorf("second console should be empty, got %q", b.String())
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	r.Write(LevelInfo, "a")
	r.Write(LevelError, "b")

	entries := r.Entries()
	if len(entries) != 2 || entries[0] != (Entry{LevelInfo, "a"}) || entries[1] != (Entry{LevelError, "b"}) {
		t.Errorf("Entries() = %v", entries)
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	if LevelInfo.String() != "info" || LevelError.String() != "error" {
		t.Errorf("String() = %s/%s", LevelInfo, LevelError)
	}
	Discard{}.Write(LevelError, "dropped")
}
