//go:build !debugasserts

package zlog

// debugAssert is a no-op unless the debugasserts build tag is set; see
// assert_debug.go.
func debugAssert(cond bool, format string, args ...any) {}
