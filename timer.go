package zlog

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
)

// timerClock is process-wide so tests can substitute a mock clock.
var timerClock clock.Clock = clock.New()

// Timer measures wall-clock time between its creation and its completion,
// then emits one record through its Logger: a trace record with the elapsed
// time, or a single warn record when an armed threshold was exceeded.
// Completion runs exactly once, on whichever of an explicit End or a
// deferred End happens first; the other is a no-op.
//
// The measurement deliberately includes time the goroutine spends blocked or
// descheduled: the point is observed latency, including scheduling delays,
// not pure computation cost.
type Timer struct {
	logger           Logger
	name             string
	start            time.Time
	warnIfLongerThan time.Duration
	done             atomic.Bool
}

// Time starts a Timer named name bound to l. Callers typically write
//
//	defer l.Time("load worktree").End()
//
// or keep the Timer and End it explicitly on the paths they care about.
func (l Logger) Time(name string) *Timer {
	return &Timer{
		logger: l,
		name:   name,
		start:  timerClock.Now(),
	}
}

// Time starts a Timer bound to the calling package's default logger.
func Time(name string) *Timer {
	return defaultLogger(1).Time(name)
}

// WarnIfGT arms a threshold: when the measured elapsed time exceeds limit,
// completion emits a single warn record carrying both the elapsed time and
// the limit, and no trace record.
func (t *Timer) WarnIfGT(limit time.Duration) *Timer {
	t.warnIfLongerThan = limit
	return t
}

// End completes the timer. Second and later calls, including a deferred End
// racing an explicit one, are no-ops.
func (t *Timer) End() {
	if t == nil || !t.done.CompareAndSwap(false, true) {
		return
	}
	elapsed := timerClock.Since(t.start)
	if t.warnIfLongerThan > 0 && elapsed > t.warnIfLongerThan {
		t.logger.Warn("Timer '%s' took %v. Which was longer than the expected limit of %v",
			t.name, elapsed, t.warnIfLongerThan)
		return
	}
	t.logger.Trace("Timer '%s' finished in %v", t.name, elapsed)
}
