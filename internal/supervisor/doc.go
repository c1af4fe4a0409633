// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package supervisor runs the manager's long-lived maintenance work under a
suture v4 supervisor tree.

# Tree Layout

	mtlogging (root)
	├── retention      periodic sweep of expired daily files
	└── diagnostics    health check (test environment only)

The layers isolate failures: a health check that keeps panicking backs off
without delaying the next retention sweep.

# Events

Supervisor events (service failures, restarts, backoff) are logged through
sutureslog, bridged into zerolog by logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddRetentionService(services.NewSweepService(sweeper, 24*time.Hour))
	return tree.Serve(ctx)
*/
package supervisor
