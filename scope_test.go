package zlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrateName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"alpha::beta::gamma", "alpha"},
		{"alpha", "alpha"},
		{"alpha:?:beta", "alpha:?:beta"},
		{"alpha_::beta", "alpha_"},
		{"a:b::c", "a:b"},
		{"::beta", ""},
		{"", ""},
		{"trailing:", "trailing:"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CrateName(tc.in), "input %q", tc.in)
	}
}

func TestCrateNameIdempotent(t *testing.T) {
	paths := []string{
		"alpha::beta::gamma",
		"alpha",
		"alpha:?:beta",
		"a::b::c::d",
		"",
	}
	for _, p := range paths {
		once := CrateName(p)
		assert.Equal(t, once, CrateName(once), "input %q", p)
	}
}

func TestModulePathFromFunc(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"github.com/timoguin/zed/editor/buffer.(*Map).Insert", "editor::buffer"},
		{"github.com/timoguin/zed/editor.glob..func1", "editor"},
		{"github.com/timoguin/zed.TestSomething", "zed"},
		{"main.main", "main"},
		{"mypkg.Do", "mypkg"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, modulePathFromFunc(tc.in), "input %q", tc.in)
	}
}

func TestCallerModulePathResolvesCaller(t *testing.T) {
	assert.Equal(t, "zed", callerModulePath(0))
}

func TestDefaultLoggerScope(t *testing.T) {
	logger := Default()
	assert.Equal(t, newScope("zed"), logger.Scope())
}

func TestScopedDerivationDoesNotMutateParent(t *testing.T) {
	parent := Default()
	child := parent.Scoped("net")
	grandchild := child.Scoped("conn")

	assert.Equal(t, newScope("zed"), parent.Scope())
	assert.Equal(t, newScope("zed", "net"), child.Scope())
	assert.Equal(t, newScope("zed", "net", "conn"), grandchild.Scope())
}

func TestLoggersWithSameScopeAreEqual(t *testing.T) {
	assert.Equal(t, Default().Scoped("x"), Default().Scoped("x"))
}

func TestScopePath(t *testing.T) {
	assert.Equal(t, "", newScope().path())
	assert.Equal(t, "a", newScope("a").path())
	assert.Equal(t, "a.b", newScope("a", "b").path())
	assert.Equal(t, "a.b.c.d", newScope("a", "b", "c", "d").path())
}

func TestNewScopeTruncates(t *testing.T) {
	assert.Equal(t, newScope("a", "b", "c", "d"), newScope("a", "b", "c", "d", "e"))
}
