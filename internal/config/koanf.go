// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"mtlogging.yaml",
	"mtlogging.yml",
	"/etc/mtlogging/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Default returns the built-in configuration.
func Default() *Config {
	root, err := os.UserCacheDir()
	if err != nil {
		root = ""
	}
	return &Config{
		Environment: EnvProduction,
		Storage: StorageConfig{
			Root:     root,
			Timezone: "Local",
		},
		Retention: RetentionConfig{
			SweepInterval: 24 * time.Hour,
		},
		Dispatch: DispatchConfig{
			Workers: 4,
		},
		Report: ReportConfig{
			Domain:          "MTLoggingManager",
			Timeout:         10 * time.Second,
			RatePerSecond:   5,
			Burst:           20,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		HealthCheck: HealthCheckConfig{
			Interval: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var envMappings = map[string]string{
	"environment": "environment",

	"log_storage_root":   "storage.root",
	"log_group_id":       "storage.group_id",
	"log_dir":            "storage.dir",
	"log_timezone":       "storage.timezone",
	"log_sweep_interval": "retention.sweep_interval",
	"log_workers":        "dispatch.workers",

	"report_domain":           "report.domain",
	"report_endpoint":         "report.endpoint",
	"report_timeout":          "report.timeout",
	"report_rate_per_second":  "report.rate_per_second",
	"report_burst":            "report.burst",
	"report_breaker_failures": "report.breaker_failures",
	"report_breaker_timeout":  "report.breaker_timeout",

	"health_check_interval": "health_check.interval",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
