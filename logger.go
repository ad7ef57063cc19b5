package zlog

import "fmt"

// Logger is an immutable handle on one logging Scope. Loggers are plain
// values: copy them freely, compare them by value; two Loggers with the same
// Scope are interchangeable. Deriving a child never mutates the parent.
type Logger struct {
	scope Scope
}

// Default returns the default logger for the calling package: a Logger whose
// scope holds only the owning component name, derived from the call site's
// module path.
func Default() Logger {
	return defaultLogger(1)
}

func defaultLogger(skip int) Logger {
	return Logger{scope: newScope(CrateName(callerModulePath(skip + 1)))}
}

// Scope returns the logger's scope.
func (l Logger) Scope() Scope {
	return l.scope
}

// Scoped derives a child logger with name filled into the next nested
// segment. The child stays inside the parent's filter domain; it does not
// create a new top-level entry in the filter table.
func (l Logger) Scoped(name string) Logger {
	return Logger{scope: l.scope.withSegment(name)}
}

// Scoped derives a child of the calling package's default logger.
func Scoped(name string) Logger {
	return defaultLogger(1).Scoped(name)
}

// Trace logs a formatted message at trace level through l.
func (l Logger) Trace(format string, args ...any) {
	l.log(TraceLevel, format, args)
}

// Debug logs a formatted message at debug level through l.
func (l Logger) Debug(format string, args ...any) {
	l.log(DebugLevel, format, args)
}

// Info logs a formatted message at info level through l.
func (l Logger) Info(format string, args ...any) {
	l.log(InfoLevel, format, args)
}

// Warn logs a formatted message at warn level through l.
func (l Logger) Warn(format string, args ...any) {
	l.log(WarnLevel, format, args)
}

// Error logs a formatted message at error level through l.
func (l Logger) Error(format string, args ...any) {
	l.log(ErrorLevel, format, args)
}

// log is the dispatcher: the global gate first (one atomic load, taken on
// every call), then the scope match, and only past both does the message get
// formatted and the record submitted. Emission never returns an error and
// never blocks beyond the sink's Submit.
func (l Logger) log(lvl Level, format string, args []any) {
	if !isPossiblyEnabledLevel(lvl) {
		return
	}
	modulePath := callerModulePath(2)
	if !isScopeEnabled(l.scope, modulePath, lvl) {
		return
	}
	submit(Record{
		Scope:      l.scope,
		Level:      lvl,
		Message:    formatMessage(format, args),
		ModulePath: modulePath,
	})
}

// Trace logs through the calling package's default logger.
func Trace(format string, args ...any) {
	emitDefault(TraceLevel, format, args)
}

// Debug logs through the calling package's default logger.
func Debug(format string, args ...any) {
	emitDefault(DebugLevel, format, args)
}

// Info logs through the calling package's default logger.
func Info(format string, args ...any) {
	emitDefault(InfoLevel, format, args)
}

// Warn logs through the calling package's default logger.
func Warn(format string, args ...any) {
	emitDefault(WarnLevel, format, args)
}

// Error logs through the calling package's default logger.
func Error(format string, args ...any) {
	emitDefault(ErrorLevel, format, args)
}

// emitDefault is the default-logger call shape: identical to Logger.log once
// the scope is resolved, the only difference being that the scope comes from
// the call site.
func emitDefault(lvl Level, format string, args []any) {
	if !isPossiblyEnabledLevel(lvl) {
		return
	}
	modulePath := callerModulePath(2)
	scope := newScope(CrateName(modulePath))
	if !isScopeEnabled(scope, modulePath, lvl) {
		return
	}
	submit(Record{
		Scope:      scope,
		Level:      lvl,
		Message:    formatMessage(format, args),
		ModulePath: modulePath,
	})
}

// formatMessage defers fmt work to past the enablement gates; a bare format
// string with no args passes through untouched.
func formatMessage(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
