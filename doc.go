// Package zlog is a scope-aware logging facility: thousands of call sites
// emit formatted records, and an operator dials verbosity up or down per
// subsystem at runtime without restarting the process.
//
// Key features
//   - Hierarchical scopes: every Logger carries a fixed-depth scope
//     (component, then up to three nested sub-scopes) that filter entries
//     match against
//   - Two-stage enablement: a single atomic level gate first, scope matching
//     only for records that survive it; message formatting is deferred until
//     both gates pass
//   - Runtime-swappable filter table: Refresh replaces the table atomically,
//     concurrent readers always see a complete snapshot
//   - Filter expressions from ZED_LOG / GO_LOG at startup
//     ("editor=trace,worktree=warn" or a bare default level)
//   - Timers that log how long an operation took, with an optional
//     warn-if-slower-than threshold
//   - Output via zerolog to stderr, stdout, or a rotating file (lumberjack),
//     and a log/slog bridge so stdlib logging participates in the same
//     filtering
//
// Typical usage
//
//	func main() {
//		zlog.Init()
//		defer zlog.Flush()
//
//		logger := zlog.Scoped("startup")
//		logger.Info("listening on %s", addr)
//
//		defer zlog.Time("load-workspace").WarnIfGT(time.Second).End()
//	}
package zlog
