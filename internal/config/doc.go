// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

/*
Package config loads the manager's static configuration.

Configuration is layered with koanf. Later layers override earlier ones:

 1. Struct defaults ([Default])
 2. An optional YAML file: $CONFIG_PATH, then mtlogging.yaml, mtlogging.yml,
    /etc/mtlogging/config.yaml
 3. Environment variables

# Environment Variables

	ENVIRONMENT              production, stage or test (default: production)
	LOG_STORAGE_ROOT         shared storage root (default: user cache dir)
	LOG_GROUP_ID             group identifier under the root
	LOG_DIR                  explicit log directory; bypasses root and group
	LOG_TIMEZONE             zone used for file names and timestamps (default: Local)
	LOG_SWEEP_INTERVAL       retention sweep period under Serve (default: 24h)
	LOG_WORKERS              concurrent background tasks (default: 4)
	REPORT_DOMAIN            error domain sent with reports (default: MTLoggingManager)
	REPORT_ENDPOINT          HTTP endpoint for reports; empty logs them locally
	REPORT_TIMEOUT           per-report timeout (default: 10s)
	REPORT_RATE_PER_SECOND   report budget (default: 5)
	REPORT_BURST             report burst (default: 20)
	REPORT_BREAKER_FAILURES  consecutive failures that open the breaker (default: 5)
	REPORT_BREAKER_TIMEOUT   how long the breaker stays open (default: 30s)
	HEALTH_CHECK_INTERVAL    test-environment health check period (default: 30s)
	LOG_LEVEL                diagnostics level (default: info)
	LOG_FORMAT               json or console (default: json)
	LOG_CALLER               include caller in diagnostics (default: false)

The environment is fixed once the configuration is loaded. An empty group
identifier is valid: it leaves the log directory unresolved, which the manager
reports at runtime instead of failing to start.
*/
package config
