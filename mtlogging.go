// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package mtlogging

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/movista-travel/mt-logging-manager/internal/config"
	"github.com/movista-travel/mt-logging-manager/internal/console"
	"github.com/movista-travel/mt-logging-manager/internal/logfile"
	"github.com/movista-travel/mt-logging-manager/internal/loggable"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/metrics"
	"github.com/movista-travel/mt-logging-manager/internal/report"
)

type (
	// CallSite identifies the function, file and line an entry came from.
	CallSite = loggable.CallSite
	// Code is a numeric error code.
	Code = loggable.Code
	// Error is a loggable error envelope.
	Error = loggable.Error
	// Message is a formatted informational entry.
	Message = loggable.Message

	Config = config.Config

	// Report is one record sent to the error backend.
	Report = report.Report
	// Reporter delivers reports to the error backend.
	Reporter = report.Reporter
	// ReporterFunc adapts a function to Reporter.
	ReporterFunc = report.ReporterFunc

	// Console receives echoed entries in stage and test.
	Console = console.Console
	// Level is a console severity.
	Level = console.Level

	// Resolver locates the log directory.
	Resolver = logfile.Resolver
	// ResolverFunc adapts a function to Resolver.
	ResolverFunc = logfile.ResolverFunc
	// Dir is a fixed log directory.
	Dir = logfile.Dir
	// GroupContainer resolves <Root>/<GroupID>/Logs.
	GroupContainer = logfile.GroupContainer
)

// Facility error codes.
const (
	CodeWriteDirUnresolved    = loggable.CodeWriteDirUnresolved
	CodeWriteFailed           = loggable.CodeWriteFailed
	CodeSweepFailed           = loggable.CodeSweepFailed
	CodeSweepDirUnresolved    = loggable.CodeSweepDirUnresolved
	CodeSnapshotDirUnresolved = loggable.CodeSnapshotDirUnresolved
	CodeSnapshotReadFailed    = loggable.CodeSnapshotReadFailed
)

// Environments.
const (
	EnvProduction = config.EnvProduction
	EnvStage      = config.EnvStage
	EnvTest       = config.EnvTest
)

// Console levels.
const (
	LevelInfo  = console.LevelInfo
	LevelError = console.LevelError
)

// ErrMissingFolder is the cause of 5000, 5003 and 5004 reports.
var ErrMissingFolder = loggable.ErrMissingFolder

// DiscardConsole drops every echoed entry.
var DiscardConsole Console = console.Discard{}

// LoggingManager is the write side of a Manager, for consumers that only log.
type LoggingManager interface {
	LogError(err *Error)
	LogMessage(msg Message)
}

// LogsProvider exposes the persisted log files, e.g. for upload.
type LogsProvider interface {
	Logs() map[string][]byte
}

// Here returns the call site of its caller.
func Here() CallSite {
	return loggable.Caller(1)
}

// NewError wraps err with code at site.
func NewError(err error, code Code, site CallSite) *Error {
	return loggable.NewError(err, code, site)
}

// NewMessage formats body at site.
func NewMessage(body string, site CallSite) Message {
	return loggable.NewMessage(body, site)
}

// Format renders an entry without timestamp:
//
//	"<function> <basename>:<line>\n<body>\n----------------\n"
func Format(body, functionName, filePath string, lineNumber int) string {
	return loggable.Format(body, functionName, filePath, lineNumber)
}

// NewConsole returns a human-readable console writing to w.
func NewConsole(w io.Writer, label string) Console {
	return console.NewZerolog(w, label)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads defaults, the config file and the environment.
// See internal/config for the lookup order.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// LoadConfigFile is LoadConfig with an explicit file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}

// ConfigureLogging applies cfg.Logging to the facility's own diagnostics.
// New does not call it; the host decides whether the process-wide logger
// should follow this configuration.
func ConfigureLogging(cfg *Config) {
	logging.Init(cfg.LoggingOptions())
}

// UseLogger sends the facility's own diagnostics to logger, for hosts that
// already run zerolog. Managers built earlier keep their previous output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func UseLogger(logger zerolog.Logger) {
	logging.SetLogger(logger)
}

// MetricsHandler serves the facility's Prometheus metrics. Mount it on the
// host's own mux; the facility never listens on a port.
func MetricsHandler() http.Handler {
	return metrics.Handler()
}
