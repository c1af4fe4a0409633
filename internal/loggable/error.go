// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package loggable

import (
	"errors"
	"strconv"
)

// Code identifies the operation that failed.
type Code int

// Internal error taxonomy. Codes identify the failing operation, not the cause.
const (
	// CodeWriteDirUnresolved: write attempted but the log directory is unresolved.
	CodeWriteDirUnresolved Code = 5000
	// CodeWriteFailed: directory resolved, but file creation or append failed.
	CodeWriteFailed Code = 5001
	// CodeSweepFailed: startup retention sweep failed (directory creation, listing or deletion).
	CodeSweepFailed Code = 5002
	// CodeSweepDirUnresolved: startup sweep found the directory unresolved.
	CodeSweepDirUnresolved Code = 5003
	// CodeSnapshotDirUnresolved: snapshot requested but the directory is unresolved.
	CodeSnapshotDirUnresolved Code = 5004
	// CodeSnapshotReadFailed: snapshot read failed partway.
	CodeSnapshotReadFailed Code = 5005
)

// String returns the decimal code.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Internal reports whether c belongs to the facility's own taxonomy.
func (c Code) Internal() bool {
	return c >= CodeWriteDirUnresolved && c <= CodeSnapshotReadFailed
}

// ErrMissingFolder is the cause recorded when the log directory cannot be resolved.
var ErrMissingFolder = errors.New("missing logs folder")

// Error wraps a failure with a call-site header and a numeric code. It is
// itself loggable: Error() returns the formatted entry text.
type Error struct {
	err  error
	code Code
	site CallSite
	text string
}

// NewError wraps err with code at the given call site. A nil err is recorded
// as an "unknown error" so the envelope is always printable.
func NewError(err error, code Code, site CallSite) *Error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &Error{
		err:  err,
		code: code,
		site: site,
		text: Format(err.Error(), site.Function, site.File, site.Line),
	}
}

// Error returns the formatted entry text.
func (e *Error) Error() string {
	return e.text
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the numeric error code.
func (e *Error) Code() Code {
	return e.code
}

// CallSite returns where the error was wrapped.
func (e *Error) CallSite() CallSite {
	return e.site
}

// Cause returns the description of the underlying failure without the
// call-site header.
func (e *Error) Cause() string {
	return e.err.Error()
}
