package zlog

import (
	"sync"
	"testing"
)

// captureSink records everything submitted to it; tests swap it in for the
// active sink.
type captureSink struct {
	mu      sync.Mutex
	records []Record
	flushes int
}

func (c *captureSink) Submit(r Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
}

func (c *captureSink) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++
}

func (c *captureSink) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Record(nil), c.records...)
}

func (c *captureSink) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}

// installCaptureSink swaps in a fresh capture sink for the test's duration.
func installCaptureSink(t testing.TB) *captureSink {
	t.Helper()
	prev := activeSink.Load()
	c := &captureSink{}
	SetSink(c)
	t.Cleanup(func() { activeSink.Store(prev) })
	return c
}

// resetFilterState clears the filter table and opens the global gate, then
// restores the same blank state when the test finishes.
func resetFilterState(t testing.TB) {
	t.Helper()
	blank := func() {
		refreshMu.Lock()
		settingsEntries = nil
		envEntries = nil
		envDefault = nil
		configuredDefault = DefaultLevel
		refreshMu.Unlock()
		filterState.Store(nil)
		SetMaxLevel(TraceLevel)
	}
	blank()
	t.Cleanup(blank)
}
