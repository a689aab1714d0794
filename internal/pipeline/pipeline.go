// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"sixframe-core/alphabet"
	"sixframe-core/gencode"
	"sixframe-core/orf"
	"sixframe-core/seqwin"
)

// Config controls the translation pipeline.
type Config struct {
	Threads     int           // number of worker goroutines (>=1)
	Code        *gencode.Code // shared, read-only
	RequireInit bool
	Forward     bool
	Reverse     bool
	MinLength   int
	Window      int // nucleotides per window read
	Buffer      int // ORFs buffered per file ahead of the collector

	Logger *log.Logger // optional
}

// ForEachORF translates seqFiles with one orf.Reader per file and calls
// visit for every ORF, in file order and, within a file, in reader order,
// whatever the thread count. ORFs are renumbered 1.. across all files and
// carry their SourceFile. It returns the first error encountered
// (including context cancellation); remaining files are abandoned.
func ForEachORF(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	visit func(*orf.ORF) error,
) error {
	if cfg.Code == nil {
		return orf.ErrNoCode
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Buffer < 1 {
		cfg.Buffer = 256
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type slot struct {
		orfs chan *orf.ORF
		err  error // written before orfs is closed
	}
	slots := make([]*slot, len(seqFiles))
	for i := range slots {
		slots[i] = &slot{orfs: make(chan *orf.ORF, cfg.Buffer)}
	}

	// Workers take files in order, so the file the collector waits on has
	// always been picked up already.
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := slots[i]
				s.err = translateFile(ctx, cfg, seqFiles[i], s.orfs)
				close(s.orfs)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range seqFiles {
			select {
			case jobs <- i:
			case <-ctx.Done():
				// unclaimed files still need closing for the collector
				for _, s := range slots[i:] {
					s.err = ctx.Err()
					close(s.orfs)
				}
				return
			}
		}
	}()

	var (
		firstErr error
		num      int64
	)
collect:
	for i, s := range slots {
		for o := range s.orfs {
			num++
			o.Num = num
			if err := visit(o); err != nil {
				firstErr = err
				break collect
			}
		}
		if s.err != nil {
			firstErr = s.err
			break
		}
		if cfg.Logger != nil {
			cfg.Logger.Debug("file done", "file", seqFiles[i], "orfs_so_far", num)
		}
	}

	cancel()
	// drain so blocked workers can exit
	for _, s := range slots {
		for range s.orfs {
		}
	}
	wg.Wait()

	if firstErr == nil {
		firstErr = parent.Err()
	}
	return firstErr
}

// translateFile runs one reader over path and sends its ORFs to out.
func translateFile(ctx context.Context, cfg Config, path string, out chan<- *orf.ORF) error {
	src, err := seqwin.Open(path, alphabet.New(alphabet.DNA))
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	r, err := orf.NewReader(src, cfg.Code)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	r.Forward = cfg.Forward
	r.Reverse = cfg.Reverse
	r.RequireInit = cfg.RequireInit
	r.MinLength = cfg.MinLength
	if cfg.Window > 0 {
		r.Window = cfg.Window
	}

	for {
		o, err := r.Read(ctx)
		if err != nil {
			if err == io.EOF {
				break
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%s: %w", path, err)
		}
		o.SourceFile = path
		select {
		case out <- o:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("translated", "file", path, "orfs", r.Count())
	}
	return nil
}
