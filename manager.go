// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package mtlogging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/movista-travel/mt-logging-manager/internal/config"
	"github.com/movista-travel/mt-logging-manager/internal/console"
	"github.com/movista-travel/mt-logging-manager/internal/dispatch"
	"github.com/movista-travel/mt-logging-manager/internal/logfile"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/report"
	"github.com/movista-travel/mt-logging-manager/internal/supervisor"
	"github.com/movista-travel/mt-logging-manager/internal/supervisor/services"
)

// Manager is the logging facility. It is safe for concurrent use.
type Manager struct {
	env    string
	domain string
	clock  func() time.Time

	pool     *dispatch.Pool
	reporter Reporter
	console  Console
	logger   zerolog.Logger

	writer      *logfile.Writer
	sweeper     *logfile.Sweeper
	snapshotter *logfile.Snapshotter

	sweepInterval  time.Duration
	healthInterval time.Duration
}

var (
	_ LoggingManager = (*Manager)(nil)
	_ LogsProvider   = (*Manager)(nil)
)

// New validates cfg, builds a Manager and dispatches the startup retention
// sweep. A nil cfg uses DefaultConfig.
//
// The error is only ever a configuration problem. An unresolvable log
// directory is not an error here; it surfaces later as 5000, 5003 or 5004
// reports.
//
// New only runs the startup sweep. The periodic sweep and, in the test
// environment, the health check run under Serve; a host that never calls
// Serve gets neither.
func New(cfg *Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	o := options{
		clock:    time.Now,
		resolver: cfg.Resolver(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.resolver == nil {
		return nil, errors.New("mtlogging: nil resolver")
	}
	if o.reporter == nil {
		o.reporter = defaultReporter(cfg)
	}
	if o.console == nil {
		o.console = defaultConsole(cfg)
	}

	m := &Manager{
		env:    cfg.Environment,
		domain: cfg.Report.Domain,
		clock:  o.clock,
		pool:   dispatch.New(cfg.Dispatch.Workers),
		reporter: report.NewGuarded(o.reporter, report.GuardConfig{
			RatePerSecond:   cfg.Report.RatePerSecond,
			Burst:           cfg.Report.Burst,
			Timeout:         cfg.Report.Timeout,
			BreakerFailures: cfg.Report.BreakerFailures,
			BreakerTimeout:  cfg.Report.BreakerTimeout,
		}),
		console:        o.console,
		logger:         logging.WithComponent("manager"),
		sweepInterval:  cfg.Retention.SweepInterval,
		healthInterval: cfg.HealthCheck.Interval,
	}

	// Writer failures take the direct path; everything else may be logged.
	m.writer = logfile.NewWriter(o.resolver, m.reportDirect, o.clock, loc)
	m.sweeper = logfile.NewSweeper(o.resolver, m.LogError, o.clock, loc)
	m.snapshotter = logfile.NewSnapshotter(o.resolver, m.LogError)

	m.pool.Submit(func() {
		m.sweeper.Sweep()
	})

	return m, nil
}

func defaultReporter(cfg *Config) Reporter {
	if cfg.Report.Endpoint != "" {
		return report.NewHTTPReporter(cfg.Report.Endpoint, nil)
	}
	return report.NewLogReporter(logging.WithComponent("report"))
}

func defaultConsole(cfg *Config) Console {
	if cfg.IsProduction() {
		return console.Discard{}
	}
	return console.NewZerolog(os.Stdout, cfg.Report.Domain)
}

// LogError reports err to the error backend, persists it and, in stage and
// test, echoes the same timestamped entry to the console. It returns immediately; a nil err is
// ignored.
func (m *Manager) LogError(err *Error) {
	if err == nil {
		return
	}
	m.pool.Submit(func() {
		m.send(err)
		entry := m.writer.Stamp(err.Error())
		if m.echoes() {
			m.console.Write(console.LevelError, entry.Text)
		}
		m.writer.Write(entry)
	})
}

// LogMessage persists msg and echoes the timestamped entry to the console in
// stage and test.
// In production it does nothing.
func (m *Manager) LogMessage(msg Message) {
	if !m.echoes() {
		return
	}
	m.pool.Submit(func() {
		entry := m.writer.Stamp(msg.String())
		m.console.Write(console.LevelInfo, entry.Text)
		m.writer.Write(entry)
	})
}

// Logs returns every log file's name and contents. Entries still queued on
// the background pool may be missing; call Wait first if that matters.
func (m *Manager) Logs() map[string][]byte {
	return m.snapshotter.Snapshot()
}

// Wait blocks until all dispatched work has finished, including follow-up
// work those tasks dispatch themselves (such as persisting a sweep failure).
func (m *Manager) Wait() {
	m.pool.Wait()
}

// Serve runs periodic maintenance until ctx is canceled: the retention sweep
// every Retention.SweepInterval and, in the test environment, a health check
// every HealthCheck.Interval. Serve implements suture.Service so a host can
// supervise the Manager directly.
func (m *Manager) Serve(ctx context.Context) error {
	tree, err := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddRetentionService(services.NewSweepService(m.sweeper, m.sweepInterval))
	if m.env == config.EnvTest {
		tree.AddDiagnosticsService(services.NewHealthCheckService(m.Logs, m.healthInterval))
	}

	m.logger.Info().
		Str("environment", m.env).
		Dur("sweep_interval", m.sweepInterval).
		Msg("Starting log maintenance")

	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		m.logger.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return err
}

// String implements fmt.Stringer.
func (m *Manager) String() string {
	return "mtlogging"
}

// reportDirect handles writer failures. It must never write to the log.
func (m *Manager) reportDirect(err *Error) {
	m.send(err)
	if m.echoes() {
		m.console.Write(console.LevelError, err.Error())
	}
}

func (m *Manager) send(err *Error) {
	r := report.New(m.domain, err, m.clock())
	if sendErr := m.reporter.Report(context.Background(), r); sendErr != nil {
		m.logger.Warn().
			Err(sendErr).
			Int("code", r.Code).
			Str("report_id", r.ID.String()).
			Msg("Error report not delivered")
	}
}

func (m *Manager) echoes() bool {
	return m.env != config.EnvProduction
}
