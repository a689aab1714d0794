// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"sixframe-core/gencode"
	"sixframe-core/orf"
	"sixframe/internal/cmdutil"
	"sixframe/internal/pipeline"
	"sixframe/internal/runutil"
	"sixframe/internal/writers"
)

type Options struct {
	SeqFiles []string

	Code        *gencode.Code
	RequireInit bool
	Forward     bool
	Reverse     bool
	MinLength   int
	Window      int

	Threads int

	NoMatchExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- *orf.ORF, <-chan error)
}

// errWriterStopped marks a send abandoned because the writer returned early.
var errWriterStopped = errors.New("writer stopped")

// Run translates o.SeqFiles, streams every ORF to the writer from wf and
// returns the process exit code.
func Run(
	parent context.Context,
	stdout io.Writer,
	logger *log.Logger,
	o Options,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)
	thr := runutil.EffectiveThreads(o.Threads, len(o.SeqFiles))
	logger.Debug("starting", "files", len(o.SeqFiles), "threads", thr, "table", o.Code.ID(),
		"min_length", o.MinLength, "window", o.Window)

	inCh, writeErr := wf.Start(outw, thr*4)

	// A writer that fails before its input is closed (closed pipe, full
	// disk) stops reading; watch for that so senders cannot block.
	var werr error
	failed := make(chan struct{})
	go func() {
		werr = <-writeErr
		close(failed)
	}()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream(ctx,
		pipeline.Config{
			Threads:     thr,
			Code:        o.Code,
			RequireInit: o.RequireInit,
			Forward:     o.Forward,
			Reverse:     o.Reverse,
			MinLength:   o.MinLength,
			Window:      o.Window,
			Logger:      logger,
		},
		o.SeqFiles,
		func(x *orf.ORF) error {
			select {
			case inCh <- x:
				return nil
			case <-failed:
				return errWriterStopped
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	<-failed

	if writers.IsBrokenPipe(werr) {
		return runutil.ExitOK
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return runutil.ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return runutil.ExitOK
	} else if e != nil {
		logger.Error("write failed", "err", e)
		return runutil.ExitIO
	}

	if perr != nil && !errors.Is(perr, errWriterStopped) {
		code := runutil.ExitCode(perr)
		switch {
		case code == runutil.ExitCanceled:
			logger.Warn("interrupted", "orfs", total)
		case runutil.IsNotExist(perr):
			logger.Error("cannot open sequence file", "err", perr)
		default:
			logger.Error("translation failed", "err", perr)
		}
		return code
	}
	logger.Info("done", "orfs", total)
	if total == 0 {
		return o.NoMatchExitCode
	}
	return runutil.ExitOK
}
