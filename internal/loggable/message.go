// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package loggable

import (
	"runtime"
	"strconv"
	"strings"
)

// Separator terminates every formatted entry.
const Separator = "----------------"

// CallSite identifies where an entry was produced.
type CallSite struct {
	Function string
	File     string
	Line     int
}

// Here returns the call site of its caller.
//
// The result is only as good as the runtime's frame information; if the frame
// cannot be resolved the zero CallSite is returned.
func Here() CallSite {
	return Caller(1)
}

// Caller returns the call site skip frames above the caller of Caller.
// Caller(0) is the function that invoked Caller.
func Caller(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	site := CallSite{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
	}
	return site
}

// Format renders body with the call-site header and trailing separator:
//
//	"<function> <basename>:<line>\n<body>\n----------------\n"
//
// The basename is the last slash-separated segment of filePath, or filePath
// itself when it contains no slash.
func Format(body, functionName, filePath string, lineNumber int) string {
	var b strings.Builder
	b.Grow(len(functionName) + len(filePath) + len(body) + len(Separator) + 16)
	b.WriteString(functionName)
	b.WriteByte(' ')
	b.WriteString(baseName(filePath))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(lineNumber))
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	return b.String()
}

// baseName returns the last non-empty slash-separated segment of filePath.
// Unlike path.Base it never returns "." or "/" for degenerate input; those
// are passed through verbatim.
func baseName(filePath string) string {
	trimmed := strings.TrimRight(filePath, "/")
	if trimmed == "" {
		return filePath
	}
	return trimmed[strings.LastIndexByte(trimmed, '/')+1:]
}

// Message is an informational entry ready to be handed to the facility.
type Message struct {
	text string
}

// NewMessage formats body at the given call site.
func NewMessage(body string, site CallSite) Message {
	return Message{text: Format(body, site.Function, site.File, site.Line)}
}

// String returns the formatted entry text.
func (m Message) String() string {
	return m.text
}
