// Package report implements the three-severity error-reporting sink spec
// §6/§7 describes: errors are signalled to a global sink rather than
// unwound through the call stack, so one malformed sub-tree does not abort
// an entire model load. Call sites still return ordinary Go errors alongside
// a Report call, so callers that prefer errors.Is keep working.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Severity classifies a reported condition.
type Severity int

const (
	// Warning indicates a recoverable argument or I/O error; the caller
	// receives a defensive value and execution continues.
	Warning Severity = iota
	// Fatal indicates an unrecoverable condition; the caller should abort.
	Fatal
	// Corrupt indicates a data-structure invariant was violated; abort with
	// diagnostic.
	Corrupt
)

// String renders the severity for log output.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "WARNING"
	case Fatal:
		return "FATAL"
	case Corrupt:
		return "CORRUPT"
	default:
		return "UNKNOWN"
	}
}

// Sink receives reports. Implementations must be safe for concurrent use;
// the kernel is single-threaded per spec §5, but a sink may be shared
// across independently-partitioned model subtrees.
type Sink interface {
	Report(sev Severity, site string, msg string)
}

// slogSink adapts a *slog.Logger to the Sink interface.
type slogSink struct {
	logger *slog.Logger
}

// Report logs the condition at a level matching its severity.
func (s slogSink) Report(sev Severity, site string, msg string) {
	level := slog.LevelWarn
	if sev == Fatal || sev == Corrupt {
		level = slog.LevelError
	}
	s.logger.Log(context.Background(), level, msg, "severity", sev.String(), "site", site)
}

var (
	mu      sync.RWMutex
	current Sink = slogSink{logger: slog.Default()}
)

// Default returns a Sink backed by slog.Default().
func Default() Sink { return slogSink{logger: slog.Default()} }

// SetDefault replaces the process-wide default sink used by Warn/
// FatalReport/CorruptReport. Intended for tests and for hosts that want structured output
// routed elsewhere.
func SetDefault(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

func active() Sink {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Warn reports a recoverable argument or I/O error at the given call site.
func Warn(site, format string, args ...any) {
	active().Report(Warning, site, fmt.Sprintf(format, args...))
}

// CorruptReport reports a data-structure invariant violation.
func CorruptReport(site, format string, args ...any) {
	active().Report(Corrupt, site, fmt.Sprintf(format, args...))
}

// FatalReport reports an unrecoverable condition.
func FatalReport(site, format string, args ...any) {
	active().Report(Fatal, site, fmt.Sprintf(format, args...))
}
