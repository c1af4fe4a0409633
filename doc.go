// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package mtlogging is an embedded logging facility: it persists log entries to
one text file per day, mirrors errors to a remote error-reporting backend and,
outside production, echoes entries to a console.

# Quick Start

	cfg, err := mtlogging.LoadConfig()
	if err != nil {
		return err
	}
	mtlogging.ConfigureLogging(cfg)

	logs, err := mtlogging.New(cfg)
	if err != nil {
		return err
	}
	go logs.Serve(ctx) // periodic retention sweep

	logs.LogMessage(mtlogging.NewMessage("boot ok", mtlogging.Here()))
	logs.LogError(mtlogging.NewError(err, 7001, mtlogging.Here()))

Construct one Manager at startup and pass it to whatever needs it. There is
no package-level instance.

# Environments

	production  errors: report + file          messages: dropped
	stage       errors: report + file + echo   messages: file + echo
	test        same as stage, plus a periodic health check under Serve

# Failure Handling

LogError, LogMessage and Logs never return errors, never panic and never
block on I/O. Work runs on a bounded background pool. Failures of the
facility itself are reported with codes 5000-5005:

	5000  write attempted, log directory unresolved
	5001  write failed
	5002  retention sweep failed
	5003  retention sweep found the directory unresolved
	5004  snapshot requested, directory unresolved
	5005  snapshot read failed

Write failures (5000, 5001) go to the reporting backend and console only.
They are never written to the log, so a broken disk cannot cause a loop.
*/
package mtlogging
