//go:build !debugasserts

package zlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without the debugasserts tag, deriving past the maximum depth drops the
// new segment: the child is indistinguishable from its parent.
func TestScopeOverflowDropsSegment(t *testing.T) {
	full := Logger{scope: newScope("a", "b", "c", "d")}
	child := full.Scoped("e")
	assert.Equal(t, full.Scope(), child.Scope())
	assert.Equal(t, full, child)
}

func TestScopeOverflowStillEmits(t *testing.T) {
	resetFilterState(t)
	sink := installCaptureSink(t)

	full := Logger{scope: newScope("a", "b", "c", "d")}
	full.Scoped("e").Info("degraded but alive")

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, newScope("a", "b", "c", "d"), records[0].Scope)
}
