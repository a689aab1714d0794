// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"sixframe-core/orf"
)

// Options carries the presentation knobs shared by all formats.
type Options struct {
	Header    bool // text: print TSVHeader
	LineWidth int  // fasta: residues per line, 0 = no wrapping
}

// StartFunc spins up a writer goroutine consuming ORFs until the channel
// is closed, then reports its result on the error channel.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- *orf.ORF, <-chan error)

// Writer registry (format → starter). Formats register in init() blocks.
var registry = map[string]StartFunc{}

// Register is idempotent last-wins.
func Register(format string, fn StartFunc) { registry[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the writer registered for format. An unknown format
// still returns a usable channel; the error arrives on the error channel.
func Start(out io.Writer, format string, opt Options, bufSize int) (chan<- *orf.ORF, <-chan error) {
	if fn, ok := registry[format]; ok {
		return fn(out, opt, bufSize)
	}
	return goWriter(bufSize, func(in <-chan *orf.ORF) error {
		for range in {
		}
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	})
}

// goWriter runs write over a fresh channel in its own goroutine.
func goWriter(bufSize int, write func(<-chan *orf.ORF) error) (chan<- *orf.ORF, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan *orf.ORF, bufSize)
	errCh := make(chan error, 1)
	go func() { errCh <- write(in) }()
	return in, errCh
}
