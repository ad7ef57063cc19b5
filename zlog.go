package zlog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/atomic"
)

// ErrAlreadyInitialized is returned by TryInit when the logging backend has
// already been installed. The process keeps logging through the existing
// backend.
var ErrAlreadyInitialized = errors.New("zlog: logging backend already installed")

var installed = atomic.NewBool(false)

// TryInit installs the dispatcher as the process's active log backend: the
// default log/slog logger is routed through scope filtering, the global gate
// is opened fully (real filtering happens in the two-stage check), and the
// filter table is seeded from the environment filter expression when one is
// present, empty otherwise. A second call returns ErrAlreadyInitialized.
func TryInit() error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	slog.SetDefault(slog.New(&slogHandler{}))
	SetMaxLevel(TraceLevel)
	if activeSink.Load() == nil {
		InitOutputStderr()
	}
	processEnv()
	RefreshFromSettings(map[string]string{})
	return nil
}

// Init is TryInit with the non-fatal error policy: a failure is reported to
// stderr and the process keeps its current backend.
func Init() {
	if err := TryInit(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// InitTest initializes logging for tests, but only when a filter expression
// is present in the environment; output goes to stdout so it interleaves
// with test output.
func InitTest() {
	if _, ok := lookupEnvConfig(); !ok {
		return
	}
	if TryInit() == nil {
		InitOutputStdout()
	}
}
