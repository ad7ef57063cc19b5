package zlog

import (
	"io"
	"testing"
)

// benchSetup points the sink at a discard writer and configures the gates.
// It bypasses Init to focus on pure dispatch overhead.
func benchSetup(b *testing.B, max Level, entries map[string]Level) {
	b.Helper()
	prev := activeSink.Load()
	SetSink(newZerologSink(io.Discard, nil))
	b.Cleanup(func() { activeSink.Store(prev) })
	SetMaxLevel(max)
	b.Cleanup(func() { SetMaxLevel(TraceLevel) })
	Refresh(entries)
	b.Cleanup(func() { Refresh(nil) })
}

func BenchmarkEmitDisabledByGlobalGate(b *testing.B) {
	benchSetup(b, ErrorLevel, map[string]Level{"zed": TraceLevel})
	logger := Default()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Trace("disabled %d", i)
	}
}

func BenchmarkEmitDisabledByScopeMatch(b *testing.B) {
	benchSetup(b, TraceLevel, map[string]Level{"zed": ErrorLevel})
	logger := Default()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("disabled %d", i)
	}
}

func BenchmarkEmitEnabled(b *testing.B) {
	benchSetup(b, TraceLevel, map[string]Level{"zed": TraceLevel})
	logger := Default().Scoped("bench")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("message %d", i)
	}
}

func BenchmarkEmitEnabledParallel(b *testing.B) {
	benchSetup(b, TraceLevel, map[string]Level{"zed": TraceLevel})
	logger := Default().Scoped("bench")
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("hi")
		}
	})
}

func BenchmarkIsScopeEnabled(b *testing.B) {
	benchSetup(b, TraceLevel, map[string]Level{"zed": InfoLevel, "zed.net": TraceLevel})
	scope := newScope("zed", "net", "conn")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		isScopeEnabled(scope, "zed", TraceLevel)
	}
}
