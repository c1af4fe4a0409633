// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"fmt"
	"strings"
	"time"
)

const (
	// FolderName is the fixed subfolder under the shared container.
	FolderName = "Logs"

	// Extension is appended to every daily file name.
	Extension = ".txt"

	// DateLayout is dd_MM_yyyy.
	DateLayout = "02_01_2006"

	// TimestampLayout is yyyy-MM-dd'T'HH:mm:ssZ with an RFC 822 numeric zone.
	TimestampLayout = "2006-01-02T15:04:05-0700"

	// RetentionWindow is how long a daily file survives the sweep.
	RetentionWindow = 4 * 24 * time.Hour
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// FileName returns the daily file name for t in loc.
func FileName(t time.Time, loc *time.Location) string {
	return t.In(locationOrLocal(loc)).Format(DateLayout) + Extension
}

// ParseFileName returns the calendar day encoded in a file name.
//
// Everything from the first '.' on is ignored, so "18_10_2026.txt" and
// "18_10_2026.txt.bak" both parse to 18 October 2026. The result is midnight
// of that day in loc.
func ParseFileName(name string, loc *time.Location) (time.Time, error) {
	candidate := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		candidate = name[:i]
	}
	day, err := time.ParseInLocation(DateLayout, candidate, locationOrLocal(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse log file date %q: %w", candidate, err)
	}
	return day, nil
}

// Timestamp renders the entry prefix for t in loc.
func Timestamp(t time.Time, loc *time.Location) string {
	return t.In(locationOrLocal(loc)).Format(TimestampLayout)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
