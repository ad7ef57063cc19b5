//go:build debugasserts

package zlog

import "fmt"

// debugAssert panics when cond is false. The debugasserts build tag is meant
// for development and test builds, where misuse that production builds
// tolerate silently should fail loudly.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
