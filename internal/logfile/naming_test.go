// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestFileNameRoundTrip(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)
	days := []time.Time{
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 18, 0, 0, 0, 0, moscow),
	}

	for _, day := range days {
		t.Run(day.Format(time.DateOnly), func(t *testing.T) {
			t.Parallel()
			name := FileName(day, day.Location())
			if want := day.Format("02_01_2006") + ".txt"; name != want {
				t.Fatalf("FileName() = %q, want %q", name, want)
			}
			parsed, err := ParseFileName(name, day.Location())
			if err != nil {
				t.Fatalf("ParseFileName(%q) error = %v", name, err)
			}
			if !parsed.Equal(day) {
				t.Errorf("ParseFileName(%q) = %v, want %v", name, parsed, day)
			}
		})
	}
}

func TestFileNameUsesLocation(t *testing.T) {
	t.Parallel()

	// 23:30 UTC is already the next day three hours east.
	instant := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)
	moscow := time.FixedZone("MSK", 3*60*60)

	if got := FileName(instant, time.UTC); got != "18_10_2026.txt" {
		t.Errorf("FileName(UTC) = %q, want 18_10_2026.txt", got)
	}
	if got := FileName(instant, moscow); got != "19_10_2026.txt" {
		t.Errorf("FileName(MSK) = %q, want 19_10_2026.txt", got)
	}
}

func TestParseFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"plain", "18_10_2026.txt", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), false},
		{"no extension", "18_10_2026", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), false},
		{"extra suffix", "18_10_2026.txt.bak", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), false},
		{"other extension", "01_02_2026.log", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "garbage.txt", time.Time{}, true},
		{"hidden file", ".DS_Store", time.Time{}, true},
		{"iso date", "2026-10-18.txt", time.Time{}, true},
		{"single digit day", "1_10_2026.txt", time.Time{}, true},
		{"impossible date", "31_02_2026.txt", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFileName(tt.input, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseFileName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{4}$`)

	got := Timestamp(testNow, time.UTC)
	if got != "2026-10-18T12:00:00+0000" {
		t.Errorf("Timestamp(UTC) = %q, want 2026-10-18T12:00:00+0000", got)
	}

	got = Timestamp(testNow, time.FixedZone("MSK", 3*60*60))
	if got != "2026-10-18T15:00:00+0300" {
		t.Errorf("Timestamp(MSK) = %q, want 2026-10-18T15:00:00+0300", got)
	}
	if !pattern.MatchString(got) {
		t.Errorf("Timestamp() = %q does not match %s", got, pattern)
	}
}

func TestGroupContainerResolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	regularFile := filepath.Join(root, "not-a-dir")
	if err := os.WriteFile(regularFile, nil, 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name   string
		g      GroupContainer
		want   string
		wantOK bool
	}{
		{"resolves", GroupContainer{Root: root, GroupID: "group.travel"}, filepath.Join(root, "group.travel", "Logs"), true},
		{"empty group", GroupContainer{Root: root}, "", false},
		{"empty root", GroupContainer{GroupID: "group.travel"}, "", false},
		{"missing root", GroupContainer{Root: filepath.Join(root, "missing"), GroupID: "g"}, "", false},
		{"root is a file", GroupContainer{Root: regularFile, GroupID: "g"}, "", false},
		{"group with separator", GroupContainer{Root: root, GroupID: "a/b"}, "", false},
		{"parent traversal", GroupContainer{Root: root, GroupID: ".."}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.g.Resolve()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDirResolve(t *testing.T) {
	t.Parallel()

	if _, ok := Dir("").Resolve(); ok {
		t.Error("empty Dir should be unresolved")
	}
	if got, ok := Dir("/var/log/app").Resolve(); !ok || got != "/var/log/app" {
		t.Errorf("Resolve() = (%q, %v), want (/var/log/app, true)", got, ok)
	}
}
