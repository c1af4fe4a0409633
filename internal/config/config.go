// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package config

import (
	"fmt"
	"time"

	"github.com/movista-travel/mt-logging-manager/internal/logfile"
	"github.com/movista-travel/mt-logging-manager/internal/logging"
	"github.com/movista-travel/mt-logging-manager/internal/validation"
)

// Environments.
const (
	EnvProduction = "production"
	EnvStage      = "stage"
	EnvTest       = "test"
)

// Config is the complete manager configuration.
type Config struct {
	Environment string            `koanf:"environment" validate:"required,oneof=production stage test"`
	Storage     StorageConfig     `koanf:"storage"`
	Retention   RetentionConfig   `koanf:"retention"`
	Dispatch    DispatchConfig    `koanf:"dispatch"`
	Report      ReportConfig      `koanf:"report"`
	HealthCheck HealthCheckConfig `koanf:"health_check"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// StorageConfig locates the log directory: <Root>/<GroupID>/Logs, unless Dir
// names the directory outright.
type StorageConfig struct {
	Root     string `koanf:"root"`
	GroupID  string `koanf:"group_id" validate:"groupid"`
	Dir      string `koanf:"dir"`
	Timezone string `koanf:"timezone" validate:"timezone"`
}

// RetentionConfig controls the periodic sweep run under Serve. The startup
// sweep always runs.
type RetentionConfig struct {
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"gt=0"`
}

// DispatchConfig sizes the background task pool.
type DispatchConfig struct {
	Workers int `koanf:"workers" validate:"min=1,max=256"`
}

// ReportConfig configures the remote error-reporting sink.
type ReportConfig struct {
	Domain          string        `koanf:"domain" validate:"required"`
	Endpoint        string        `koanf:"endpoint" validate:"omitempty,url"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	RatePerSecond   float64       `koanf:"rate_per_second" validate:"gt=0"`
	Burst           int           `koanf:"burst" validate:"min=1"`
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

// HealthCheckConfig configures the test-environment health check.
type HealthCheckConfig struct {
	Interval time.Duration `koanf:"interval" validate:"gt=0"`
}

// LoggingConfig configures the manager's own diagnostics.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks every field. The returned error is a
// *validation.ConfigError.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

// IsProduction reports whether informational messages are dropped.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Location returns the zone used for file names and timestamps.
func (c *Config) Location() (*time.Location, error) {
	if c.Storage.Timezone == "" || c.Storage.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Storage.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Storage.Timezone, err)
	}
	return loc, nil
}

// Resolver returns the log directory resolver described by Storage.
func (c *Config) Resolver() logfile.Resolver {
	if c.Storage.Dir != "" {
		return logfile.Dir(c.Storage.Dir)
	}
	return logfile.GroupContainer{Root: c.Storage.Root, GroupID: c.Storage.GroupID}
}

// LoggingOptions converts the Logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
