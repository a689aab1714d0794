package appcore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sixframe-core/alphabet"
	"sixframe-core/gencode"
	"sixframe-core/orf"
	"sixframe/internal/logging"
	"sixframe/internal/runutil"
)

func writeFASTA(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func opts(t *testing.T, files ...string) Options {
	t.Helper()
	gc, err := gencode.New(alphabet.New(alphabet.DNA), 1)
	if err != nil {
		t.Fatal(err)
	}
	return Options{SeqFiles: files, Code: gc, Forward: true, Reverse: true, MinLength: 1, Window: 1000, Threads: 1, NoMatchExitCode: 7}
}

func TestRun_WritesFASTA(t *testing.T) {
	p := writeFASTA(t, ">chr7\nATGGCCTAAGG\n")
	var out bytes.Buffer
	code := Run(context.Background(), &out, logging.Discard(), opts(t, p), NewORFWriterFactory("fasta", false, 60))
	if code != runutil.ExitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out.String(), ">orf1 source=chr7 coords=1..6 length=2 frame=1") {
		t.Fatalf("out:\n%s", out.String())
	}
}

func TestRun_NoMatchExitCode(t *testing.T) {
	p := writeFASTA(t, ">s\nTAATAATAA\n")
	o := opts(t, p)
	o.MinLength = 50
	if code := Run(context.Background(), io.Discard, logging.Discard(), o, NewORFWriterFactory("text", true, 0)); code != 7 {
		t.Fatalf("want no-match code 7, got %d", code)
	}
}

func TestRun_MissingFileIsIOError(t *testing.T) {
	o := opts(t, filepath.Join(t.TempDir(), "nope.fa"))
	if code := Run(context.Background(), io.Discard, logging.Discard(), o, NewORFWriterFactory("fasta", false, 60)); code != runutil.ExitIO {
		t.Fatalf("want %d, got %d", runutil.ExitIO, code)
	}
}

func TestRun_Canceled(t *testing.T) {
	p := writeFASTA(t, ">s\nATGGCCTAAGG\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := Run(ctx, io.Discard, logging.Discard(), opts(t, p), NewORFWriterFactory("fasta", false, 60)); code != runutil.ExitCanceled {
		t.Fatalf("want 130, got %d", code)
	}
}

// failingFactory starts a writer that gives up after the first ORF.
type failingFactory struct{ err error }

func (f failingFactory) Start(_ io.Writer, _ int) (chan<- *orf.ORF, <-chan error) {
	in := make(chan *orf.ORF)
	done := make(chan error, 1)
	go func() {
		<-in
		done <- f.err
	}()
	return in, done
}

func TestRun_WriterFailureDoesNotHang(t *testing.T) {
	p := writeFASTA(t, ">s\n"+strings.Repeat("ATGGCCTAAGG", 200)+"\n")
	code := Run(context.Background(), io.Discard, logging.Discard(), opts(t, p), failingFactory{errors.New("disk full")})
	if code != runutil.ExitIO {
		t.Fatalf("want %d, got %d", runutil.ExitIO, code)
	}
}

func TestRun_BrokenPipeIsSuccess(t *testing.T) {
	p := writeFASTA(t, ">s\n"+strings.Repeat("ATGGCCTAAGG", 200)+"\n")
	code := Run(context.Background(), io.Discard, logging.Discard(), opts(t, p), failingFactory{io.ErrClosedPipe})
	if code != runutil.ExitOK {
		t.Fatalf("want 0, got %d", code)
	}
}
