// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("report endpoint returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPReporter posts each report as a JSON document.
//
// The report ID is also sent as the Idempotency-Key header so the backend can
// discard duplicates after a retry.
type HTTPReporter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPReporter creates a reporter for endpoint. A nil client uses
// http.DefaultClient; timeouts come from the caller's context.
func NewHTTPReporter(endpoint string, client *http.Client) *HTTPReporter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPReporter{endpoint: endpoint, client: client}
}

// Report implements Reporter.
func (h *HTTPReporter) Report(ctx context.Context, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", r.ID.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
