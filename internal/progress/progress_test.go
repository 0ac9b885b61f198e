package progress

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopDiscardsEvents(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		Noop.Progress(Event{Stage: "enumerate", Depth: 3})
	})
}

func TestLoggerThrottlesWithinInterval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	l := NewLogger(log, time.Hour)

	l.Progress(Event{Stage: "enumerate", Automaton: "no-flush", Depth: 1, Total: 10})
	l.Progress(Event{Stage: "enumerate", Automaton: "no-flush", Depth: 2, Total: 20})

	lines := countLines(buf.String())
	require.Equal(t, 1, lines, "second event within the interval should be suppressed")
}

func TestLoggerTracksStagesIndependently(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	l := NewLogger(log, time.Hour)

	l.Progress(Event{Stage: "enumerate", Automaton: "flush-suits", Depth: 1})
	l.Progress(Event{Stage: "enumerate", Automaton: "no-flush", Depth: 1})
	l.Progress(Event{Stage: "assemble", Automaton: "flush-suits", Processed: 1, Total: 2})

	assert.Equal(t, 3, countLines(buf.String()), "distinct stage/automaton pairs throttle independently")
}

// TestLoggerProgressIsSafeForConcurrentCallers models
// Generator.Build/verify.Run's shared-Logger-across-goroutines usage:
// many automata/shards all calling Progress on the one Logger at once.
// Run with -race, this catches a reintroduced unsynchronized map
// access; without -race it still exercises the lock without deadlocking.
func TestLoggerProgressIsSafeForConcurrentCallers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	l := NewLogger(log, time.Microsecond)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		automaton := []string{"flush-suits", "flush-ranks", "no-flush"}[g%3]
		wg.Add(1)
		go func(automaton string) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.Progress(Event{Stage: "assemble", Automaton: automaton, Processed: i, Total: 200})
			}
		}(automaton)
	}
	wg.Wait()
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	if s[len(s)-1] == '\n' {
		n--
	}
	return n
}
