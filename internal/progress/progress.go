// Package progress reports structured progress events for the two slow
// phases of table generation (ID enumeration, table assembly). The
// original prints `\r`-carriage-return progress to a terminal; since this
// generator is meant to run non-interactively (logged, piped, scheduled),
// progress is instead emitted as throttled zerolog events, at roughly the
// cadence `cmd/pokerforbots/simple_progress.go` uses for its own dot
// throttling, just as structured log lines rather than printed dots.
package progress

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event describes a single progress update. Not every field applies to
// every stage; zero values are omitted from the log line.
type Event struct {
	Stage     string // "enumerate", "assemble" or "verify"
	Automaton string // "flush-suits", "flush-ranks", "no-flush"
	Depth     int    // current generation depth, for "enumerate"
	Generated int    // ids produced this step
	Processed int    // ids or combinations processed so far, for "assemble" and "verify"
	Total     int    // running total / target total
}

// Reporter receives progress events. Calling Progress on a nil Reporter
// panics; pass the package-level Noop to discard events.
type Reporter interface {
	Progress(Event)
}

// Noop discards every event, for callers that don't want reporting.
var Noop Reporter = noopReporter{}

type noopReporter struct{}

func (noopReporter) Progress(Event) {}

// Logger reports progress as structured zerolog events, throttled to at
// most one log line per interval for each Stage+Automaton pair so
// generating hundreds of millions of ids doesn't flood the log. The first
// event of each pair is always logged; later events, including the final
// one, are dropped when they arrive within the interval. A single Logger is shared across the concurrent per-automaton
// goroutines of both generation phases, so Progress guards lastLog with
// a mutex rather than assuming single-threaded access.
type Logger struct {
	log      zerolog.Logger
	interval time.Duration

	mu      sync.Mutex
	lastLog map[string]time.Time
}

// NewLogger builds a Logger that throttles each distinct
// Stage+Automaton pair independently.
func NewLogger(log zerolog.Logger, interval time.Duration) *Logger {
	return &Logger{log: log, interval: interval, lastLog: map[string]time.Time{}}
}

func (l *Logger) Progress(ev Event) {
	key := ev.Stage + "/" + ev.Automaton
	now := time.Now()

	l.mu.Lock()
	if last, ok := l.lastLog[key]; ok && now.Sub(last) < l.interval {
		l.mu.Unlock()
		return
	}
	l.lastLog[key] = now
	l.mu.Unlock()

	entry := l.log.Info().Str("stage", ev.Stage)
	if ev.Automaton != "" {
		entry = entry.Str("automaton", ev.Automaton)
	}
	if ev.Depth != 0 {
		entry = entry.Int("depth", ev.Depth)
	}
	if ev.Generated != 0 {
		entry = entry.Int("generated", ev.Generated)
	}
	if ev.Processed != 0 {
		entry = entry.Int("processed", ev.Processed)
	}
	if ev.Total != 0 {
		entry = entry.Int("total", ev.Total)
	}
	entry.Msg("progress")
}
