// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entry lines
	nameWidth   = 35 // Base width for filename
	destWidth   = 15 // Width for destination folder
)

// 🏷️ EntryStatus is what happened to a directory entry
type EntryStatus string

const (
	StatusMoved   EntryStatus = "moved"
	StatusPlanned EntryStatus = "planned"
	StatusSkipped EntryStatus = "skipped"
)

// 🎯 EntryOperation represents a decision about one directory entry
type EntryOperation struct {
	Name        string      // Entry name inside the target directory
	Destination string      // Destination folder, empty when skipped
	Status      EntryStatus // What happened to the entry
	Fallback    bool        // Whether the destination is the fallback folder
	Reason      string      // Why the entry was skipped
	Size        int64       // File size in bytes
}

// 📦 RunSummary is printed once a pass over the target is finished
type RunSummary struct {
	Target  string
	Moved   int
	Skipped int
	Bytes   int64
	DryRun  bool
}

// 🎯 Logger writes human notices to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEntryOperation formats an entry operation for display
func (l *Logger) formatEntryOperation(op EntryOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Status == StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.Status == StatusPlanned:
		symbol = '→'
		symbolColor = color.FgBlue
	case op.Fallback:
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	dest := op.Reason
	if op.Status != StatusSkipped {
		dest = op.Destination + "/"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Name),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", destWidth, dest)),
		string(op.Status))
}

// 📝 LogEntryOperation logs a decision about one entry
func (l *Logger) LogEntryOperation(ctx context.Context, op EntryOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatEntryOperation(op))

	ev := l.zlog.Info()
	if op.Status == StatusSkipped {
		ev = l.zlog.Debug()
	}
	ev.Str("entry", op.Name).
		Str("status", string(op.Status)).
		Str("destination", op.Destination).
		Str("reason", op.Reason).
		Bool("fallback", op.Fallback).
		Int64("size", op.Size).
		Msg("entry processed")
}

// 📝 LogSummary logs the end-of-run summary
func (l *Logger) LogSummary(ctx context.Context, s RunSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	verb := "moved"
	if s.DryRun {
		verb = "would move"
	}

	fmt.Fprintf(l.console, "\n%s %d files (%s), skipped %d\n",
		color.New(color.Bold).Sprint(verb),
		s.Moved,
		humanize.Bytes(uint64(s.Bytes)),
		s.Skipped)

	l.zlog.Info().
		Str("target", s.Target).
		Int("moved", s.Moved).
		Int("skipped", s.Skipped).
		Int64("bytes", s.Bytes).
		Bool("dry_run", s.DryRun).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("sortrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

