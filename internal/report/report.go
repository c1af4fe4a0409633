// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package report

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/movista-travel/mt-logging-manager/internal/loggable"
)

// Metadata keys.
const (
	MetaMessage  = "message"
	MetaFunction = "function"
	MetaFile     = "file"
	MetaLine     = "line"
)

// Report is one error record sent to the backend.
type Report struct {
	ID       uuid.UUID         `json:"id"`
	Domain   string            `json:"domain"`
	Code     int               `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Time     time.Time         `json:"time"`
}

// Reporter sends reports to an error backend.
type Reporter interface {
	Report(ctx context.Context, r Report) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, r Report) error

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, r Report) error {
	return f(ctx, r)
}

// New builds a report for err. Message is the underlying failure; the
// formatted envelope goes into Metadata["message"].
func New(domain string, err *loggable.Error, now time.Time) Report {
	site := err.CallSite()
	return Report{
		ID:      uuid.New(),
		Domain:  domain,
		Code:    int(err.Code()),
		Message: err.Cause(),
		Metadata: map[string]string{
			MetaMessage:  err.Error(),
			MetaFunction: site.Function,
			MetaFile:     site.File,
			MetaLine:     strconv.Itoa(site.Line),
		},
		Time: now.UTC(),
	}
}
