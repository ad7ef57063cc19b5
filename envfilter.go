package zlog

import (
	"fmt"
	"os"
	"strings"
)

// envFilter is the parsed form of a ZED_LOG / GO_LOG expression.
type envFilter struct {
	entries      map[string]Level
	defaultLevel *Level
}

// lookupEnvConfig returns the first set filter expression among the
// recognized environment variables.
func lookupEnvConfig() (string, bool) {
	for _, name := range []string{EnvLogFilter, EnvLogFilterFallback} {
		if value, ok := os.LookupEnv(name); ok && value != emptyString {
			return value, true
		}
	}
	return emptyString, false
}

// parseEnvFilter parses a comma-separated filter expression. Each directive
// is either "scope-path=level" or a bare "level" that sets the default.
//
//	debug
//	editor=trace,worktree=warn
//	warn,editor::completion=trace
func parseEnvFilter(expr string) (envFilter, error) {
	f := envFilter{entries: make(map[string]Level)}
	for _, directive := range strings.Split(expr, ",") {
		directive = strings.TrimSpace(directive)
		if directive == emptyString {
			continue
		}
		key, value, found := strings.Cut(directive, "=")
		if !found {
			lvl, err := ParseLevel(directive)
			if err != nil {
				return envFilter{}, fmt.Errorf("bad directive %q: %w", directive, err)
			}
			f.defaultLevel = &lvl
			continue
		}
		key = strings.TrimSpace(key)
		if key == emptyString {
			return envFilter{}, fmt.Errorf("bad directive %q: empty scope path", directive)
		}
		lvl, err := ParseLevel(value)
		if err != nil {
			return envFilter{}, fmt.Errorf("bad directive %q: %w", directive, err)
		}
		f.entries[key] = lvl
	}
	return f, nil
}

// processEnv loads the environment filter expression, if any, into the
// filter table. A parse failure is reported to stderr and otherwise ignored:
// logging proceeds with the default table.
func processEnv() {
	expr, ok := lookupEnvConfig()
	if !ok {
		return
	}
	f, err := parseEnvFilter(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log filter: %v\n", err)
		return
	}
	initEnvFilter(f)
}
