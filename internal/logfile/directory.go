// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package logfile

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates the log directory. Resolution is repeated on every
// operation; an unresolved directory is a normal runtime condition.
type Resolver interface {
	Resolve() (dir string, ok bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func() (string, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve() (string, bool) {
	return f()
}

// GroupContainer resolves <Root>/<GroupID>/Logs.
//
// Root is the shared-storage location and must already exist as a directory;
// GroupID must be a single path segment. Resolution never creates Root or
// falls back to another location.
type GroupContainer struct {
	Root    string
	GroupID string
}

// Resolve implements Resolver.
func (g GroupContainer) Resolve() (string, bool) {
	if g.Root == "" || !validGroupID(g.GroupID) {
		return "", false
	}
	info, err := os.Stat(g.Root)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return filepath.Join(g.Root, g.GroupID, FolderName), true
}

func validGroupID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// Dir resolves to a fixed directory. Useful when the host already knows
// where logs live.
type Dir string

// Resolve implements Resolver. An empty Dir is unresolved.
func (d Dir) Resolve() (string, bool) {
	return string(d), d != ""
}
