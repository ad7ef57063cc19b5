package zlog

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// DefaultLevel is the minimum level applied to scopes without a matching
// filter entry.
const DefaultLevel = InfoLevel

// filterTable is one immutable filter snapshot. Keys are normalized
// dot-joined scope paths. Readers load the current snapshot through
// filterState and never mutate it; every update builds a fresh table and
// swaps the pointer, so a reader sees either the old table or the new one in
// full.
type filterTable struct {
	entries      map[string]Level
	defaultLevel Level
}

var (
	// maxLevel is the stage-one global gate: one atomic load and an integer
	// compare, no string work. TraceLevel lets everything through to stage
	// two.
	maxLevel = atomic.NewInt32(int32(TraceLevel))

	filterState atomic.Pointer[filterTable]

	// Writer-side state. Env-derived entries are kept apart from settings
	// entries so they survive every Refresh; refreshMu serializes the rare
	// writers.
	refreshMu         sync.Mutex
	settingsEntries   map[string]Level
	envEntries        map[string]Level
	envDefault        *Level
	configuredDefault = DefaultLevel
)

// SetMaxLevel sets the global maximum-verbosity gate. Records whose level is
// below lvl are rejected before any scope matching; SetMaxLevel(TraceLevel)
// defers all filtering to the scope match.
func SetMaxLevel(lvl Level) {
	maxLevel.Store(int32(lvl))
}

// isPossiblyEnabledLevel is the dispatcher's stage-one check.
func isPossiblyEnabledLevel(lvl Level) bool {
	return int32(lvl) >= maxLevel.Load()
}

// SetDefaultLevel sets the level used for scopes with no matching filter
// entry. A bare-level directive in the environment expression overrides it.
func SetDefaultLevel(lvl Level) {
	refreshMu.Lock()
	defer refreshMu.Unlock()
	configuredDefault = lvl
	rebuildLocked()
}

// Refresh atomically replaces the filter table's settings entries with the
// given scope-path to minimum-level mapping. Concurrent readers observe
// either the previous table or the new one, never a mixture. Entries parsed
// from the environment expression persist across Refresh and win on key
// clash.
func Refresh(entries map[string]Level) {
	refreshMu.Lock()
	defer refreshMu.Unlock()
	settingsEntries = make(map[string]Level, len(entries))
	for key, lvl := range entries {
		settingsEntries[key] = lvl
	}
	rebuildLocked()
}

// RefreshFromSettings is Refresh for a generic string-keyed settings map.
// Entries whose level fails to parse are skipped and reported to stderr.
func RefreshFromSettings(settings map[string]string) {
	entries := make(map[string]Level, len(settings))
	for key, value := range settings {
		lvl, err := ParseLevel(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zlog: ignoring filter entry %q: %v\n", key, err)
			continue
		}
		entries[key] = lvl
	}
	Refresh(entries)
}

// initEnvFilter installs the entries parsed from the environment filter
// expression.
func initEnvFilter(f envFilter) {
	refreshMu.Lock()
	defer refreshMu.Unlock()
	envEntries = f.entries
	envDefault = f.defaultLevel
	rebuildLocked()
}

// rebuildLocked builds a fresh snapshot from the writer-side state and swaps
// it in. Callers hold refreshMu.
func rebuildLocked() {
	t := &filterTable{
		entries:      make(map[string]Level, len(settingsEntries)+len(envEntries)),
		defaultLevel: configuredDefault,
	}
	for key, lvl := range settingsEntries {
		t.entries[normalizeScopeKey(key)] = lvl
	}
	for key, lvl := range envEntries {
		t.entries[normalizeScopeKey(key)] = lvl
	}
	if envDefault != nil {
		t.defaultLevel = *envDefault
	}
	filterState.Store(t)
}

// normalizeScopeKey brings a filter key or module path into the table's key
// vocabulary: "::" becomes ".", surrounding whitespace and separators go.
func normalizeScopeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ReplaceAll(key, modulePathSep, scopeSep)
	return strings.Trim(key, scopeSep)
}

// isScopeEnabled is the dispatcher's stage-two check: whether a record at
// lvl for the given scope and originating module path passes the filter
// table. Safe to call before any table is installed; with no table or no
// matching entry the default level applies.
func isScopeEnabled(scope Scope, modulePath string, lvl Level) bool {
	t := filterState.Load()
	if t == nil {
		return lvl >= DefaultLevel
	}
	min, ok := t.resolve(scope, modulePath)
	if !ok {
		min = t.defaultLevel
	}
	return lvl >= min
}

// resolve finds the most specific entry matching either the logger's scope
// path or the caller's module path. Longest matching prefix wins; on an
// exact length tie the module-path entry wins.
func (t *filterTable) resolve(scope Scope, modulePath string) (Level, bool) {
	if len(t.entries) == 0 {
		return Disabled, false
	}
	best := Disabled
	bestLen := -1
	if lvl, n, ok := t.longestPrefix(scope.path()); ok && n > bestLen {
		best, bestLen = lvl, n
	}
	if modulePath != emptyString {
		if lvl, n, ok := t.longestPrefix(normalizeScopeKey(modulePath)); ok && n >= bestLen {
			best, bestLen = lvl, n
		}
	}
	return best, bestLen >= 0
}

// longestPrefix looks up key and then each shorter dot-prefix of it,
// returning the first hit and the matched length.
func (t *filterTable) longestPrefix(key string) (Level, int, bool) {
	for key != emptyString {
		if lvl, ok := t.entries[key]; ok {
			return lvl, len(key), true
		}
		i := strings.LastIndex(key, scopeSep)
		if i < 0 {
			break
		}
		key = key[:i]
	}
	return Disabled, 0, false
}
