// core/seqwin/open.go
package seqwin

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"sixframe-core/alphabet"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles gzip and "-" (stdin).
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Detect gzip by magic number (1F 8B) or by .gz suffix.
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Open opens a FASTA file (plain or gzipped, "-" for stdin) for windowed
// reading in alphabet abc.
func Open(path string, abc *alphabet.Alphabet) (*Reader, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(rc, abc)
	r.closer = rc
	r.source = path
	return r, nil
}
