package zlog

import (
	"runtime"
	"strings"
)

// Scope identifies a hierarchical logging domain: an ordered sequence of up
// to ScopeDepthMax segments, unused trailing slots empty. Segment 0 is the
// owning component name; later segments are nested sub-scopes added through
// child-logger derivation. Scope is a plain comparable value.
type Scope [ScopeDepthMax]string

// newScope builds a Scope from up to ScopeDepthMax leading segments.
func newScope(segments ...string) Scope {
	var s Scope
	n := len(segments)
	if n > ScopeDepthMax {
		n = ScopeDepthMax
	}
	copy(s[:], segments[:n])
	return s
}

// depth returns the number of populated leading segments.
func (s Scope) depth() int {
	for i, seg := range s {
		if seg == emptyString {
			return i
		}
	}
	return ScopeDepthMax
}

// path returns the dot-joined scope path, e.g. "editor.completion.fetch".
func (s Scope) path() string {
	switch s.depth() {
	case 0:
		return emptyString
	case 1:
		return s[0]
	default:
		return strings.Join(s[:s.depth()], scopeSep)
	}
}

// withSegment returns a copy of s with name in the first empty slot.
// Segment 0 always belongs to the owning component, so the search starts at
// slot 1. At full depth the new segment is dropped; under the debugasserts
// build tag that is an assertion failure instead.
func (s Scope) withSegment(name string) Scope {
	for i := 1; i < ScopeDepthMax; i++ {
		if s[i] == emptyString {
			s[i] = name
			return s
		}
	}
	debugAssert(false, "scope overflow adding %q to %q, segment dropped", name, s.path())
	return s
}

// CrateName returns the leading segment of a "::"-separated module path: the
// owning component name. Only a complete two-character "::" marker is a
// boundary, and the first one wins; a path without one is returned
// unchanged, which also makes the operation idempotent.
func CrateName(modulePath string) string {
	for i := 0; i+1 < len(modulePath); i++ {
		if modulePath[i] == ':' && modulePath[i+1] == ':' {
			return modulePath[:i]
		}
	}
	return modulePath
}

// callerModulePath returns the logical module path of the frame skip levels
// above the caller.
func callerModulePath(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return unknownModulePath
	}
	return moduleForPC(pcs[0])
}

// moduleForPC resolves a return-address PC (from runtime.Callers or a
// slog.Record) to the logical module path of the function that contains the
// call. CallersFrames applies the return-address correction and expands
// inlined frames, so attribution lands on the real call site rather than on
// whichever function happened to be inlined at it.
func moduleForPC(pc uintptr) string {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == emptyString {
		return unknownModulePath
	}
	return modulePathFromFunc(frame.Function)
}

// modulePathFromFunc converts a runtime function name such as
// "github.com/timoguin/zed/editor/buffer.(*Map).Insert" into the logical
// module path "editor::buffer". Hosted import paths carry a
// domain/owner/repo prefix that is not a logging domain, so those three
// segments are stripped; for a package at the repo root the repo name is the
// component.
func modulePathFromFunc(fnName string) string {
	pkg := fnName
	// Everything after the last slash up to the first dot is the package
	// name; the rest is the function and receiver.
	if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
		head, tail := pkg[:i+1], pkg[i+1:]
		if j := strings.IndexByte(tail, '.'); j >= 0 {
			tail = tail[:j]
		}
		pkg = head + tail
	} else if j := strings.IndexByte(pkg, '.'); j >= 0 {
		pkg = pkg[:j]
	}
	segments := strings.Split(pkg, "/")
	if strings.ContainsRune(segments[0], '.') {
		if len(segments) > 3 {
			segments = segments[3:]
		} else {
			segments = segments[len(segments)-1:]
		}
	}
	return strings.Join(segments, modulePathSep)
}
