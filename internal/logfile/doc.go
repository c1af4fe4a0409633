// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package logfile persists log entries into one text file per calendar day and
keeps the directory tidy.

# Layout

	<shared root>/<group id>/Logs/
	    16_10_2026.txt
	    17_10_2026.txt
	    18_10_2026.txt

File names are the day formatted as dd_MM_yyyy plus ".txt". Each file is a
flat UTF-8 stream of entries, each prefixed with a yyyy-MM-dd'T'HH:mm:ssZ
timestamp and a space:

	2026-10-18T09:15:02+0300 main.run main.go:42
	boot ok
	----------------

# Components

  - [Writer]: appends one entry per call, creating the directory and today's
    file on first use.
  - [Sweeper]: deletes files older than [RetentionWindow] (4 days) and files
    whose names are not dates. Subdirectories are never removed.
  - [Snapshotter]: reads every file into a name-to-bytes map.

# Failure Paths

No operation returns an error. Failures are wrapped in a loggable.Error with a
code from the 5000-5005 range and handed to one of two callbacks:

  - [DirectReporter] for Writer failures. It must not write to the log.
  - [ErrorLogger] for Sweeper and Snapshotter failures. It may write to the log,
    which is safe because a Writer failure always ends at a DirectReporter.

# Thread Safety

Writer, Sweeper and Snapshotter hold no mutable state and are safe for
concurrent use. Concurrent appends are serialized by the operating system's
O_APPEND semantics only; this is not safe across processes on some network
filesystems.
*/
package logfile
