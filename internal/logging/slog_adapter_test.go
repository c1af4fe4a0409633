// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandlerLevels(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

	tests := []struct {
		name  string
		log   func(*slog.Logger)
		level string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, "debug"},
		{"info", func(l *slog.Logger) { l.Info("m") }, "info"},
		{"warn", func(l *slog.Logger) { l.Warn("m") }, "warn"},
		{"error", func(l *slog.Logger) { l.Error("m") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(slog.New(NewSlogHandler(zerolog.New(&buf).Level(zerolog.TraceLevel))))
			if want := `"level":"` + tt.level + `"`; !strings.Contains(buf.String(), want) {
				t.Errorf("output %s missing %s", buf.String(), want)
			}
		})
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn logger")
	}
}

func TestSlogHandlerAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("supervisor", "maintenance").
		WithGroup("event")

	logger.Warn("Service failed",
		"service", "sweep",
		"restarts", 3,
		"backoff", 2*time.Second,
		"terminal", false,
		"err", errors.New("boom"),
		slog.Group("detail", "code", 5002),
	)

	out := buf.String()
	for _, want := range []string{
		`"supervisor":"maintenance"`,
		`"event.service":"sweep"`,
		`"event.restarts":3`,
		`"event.terminal":false`,
		`"event.err":"boom"`,
		`"event.detail.code":5002`,
		`"message":"Service failed"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandlerAttrsAfterGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(NewSlogHandler(zerolog.New(&buf))).
		WithGroup("service").
		With("name", "sweep").
		Info("Service started")

	if !strings.Contains(buf.String(), `"service.name":"sweep"`) {
		t.Errorf("grouped attr missing: %s", buf.String())
	}
}

func TestSlogHandlerEmptyGroup(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil))
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestNewSlogLogger(t *testing.T) {
	buf := captureGlobal(t)

	NewSlogLogger("supervisor").Info("Service started", "service", "sweep")

	out := buf.String()
	if !strings.Contains(out, `"component":"supervisor"`) || !strings.Contains(out, `"service":"sweep"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
