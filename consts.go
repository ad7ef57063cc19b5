package zlog

const (
	// ScopeDepthMax is the maximum number of nested segments in a Scope.
	// Deriving a child logger beyond this depth drops the new segment.
	ScopeDepthMax = 4

	// EnvLogFilter and EnvLogFilterFallback are the environment variables
	// consulted, in order, for the initial filter expression. The first one
	// that is set wins.
	EnvLogFilter         = "ZED_LOG"
	EnvLogFilterFallback = "GO_LOG"

	scopeSep      = "."
	modulePathSep = "::"

	unknownModulePath = "*unknown*"
	emptyString       = ""
)
