// internal/runutil/runutil.go
package runutil

import (
	"context"
	"errors"
	"os"
	"runtime"
)

// Exit codes shared by the command and its tests.
const (
	ExitOK       = 0
	ExitNoMatch  = 1 // default; overridable with --no-match-exit-code
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// EffectiveThreads resolves a --threads value: 0 (or less) means all CPUs,
// and there is never more than one worker per input file.
func EffectiveThreads(requested, nfiles int) int {
	thr := requested
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if nfiles > 0 && thr > nfiles {
		thr = nfiles
	}
	if thr < 1 {
		thr = 1
	}
	return thr
}

// ExitCode maps a run error to the process exit code. A nil error is
// ExitOK; the no-match case is decided by the caller.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	default:
		return ExitIO
	}
}

// IsNotExist reports a missing input file.
func IsNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }
