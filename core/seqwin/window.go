// core/seqwin/window.go
package seqwin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"sixframe-core/alphabet"
)

// ErrEndOfSequence is returned by ReadWindow once per record, after its last
// window. The Window then holds no residues and L is the record length.
var ErrEndOfSequence = errors.New("end of sequence")

// FormatError reports input that is not FASTA.
type FormatError struct {
	Source string
	Line   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: not FASTA: sequence data before first header: %q", e.Source, e.Line)
}

// Window is one overlapped chunk of a record.
// Seq[0..Context-1] is retained from the previous window; Seq[Context:] is new.
type Window struct {
	Name    string
	Desc    string
	Start   int64 // 1-based coordinate of Seq[0] in the record
	Context int
	Seq     []alphabet.Code
	Final   bool  // no more windows for this record
	L       int64 // record length; valid after ErrEndOfSequence
}

// End is the 1-based coordinate of the last residue in w.
func (w *Window) End() int64 { return w.Start + int64(len(w.Seq)) - 1 }

func (w *Window) reset() {
	w.Name, w.Desc = "", ""
	w.Start, w.Context, w.L = 0, 0, 0
	w.Seq = w.Seq[:0]
	w.Final = false
}

type state int

const (
	betweenRecords state = iota
	firstWindow
	inRecord
	exhausted
)

// Reader streams FASTA records as windows of digital residues.
type Reader struct {
	abc    *alphabet.Alphabet
	br     *bufio.Reader
	closer io.Closer
	source string

	st   state
	name string
	desc string
	pos  int64 // residues of the current record delivered so far
	bol  bool  // at beginning of a line
}

// NewReader wraps r.
func NewReader(r io.Reader, abc *alphabet.Alphabet) *Reader {
	return &Reader{abc: abc, br: bufio.NewReaderSize(r, 64*1024), source: "-", bol: true}
}

func (r *Reader) Alphabet() *alphabet.Alphabet { return r.abc }

// Source is the path the reader was opened on, or "-".
func (r *Reader) Source() string { return r.source }

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// ReadWindow refills w with the next window of up to width new residues,
// keeping the last overlap residues of the previous window of the same
// record as leading context. width <= 0 reads the rest of the record.
//
// It returns nil with a window, ErrEndOfSequence at the end of each record,
// io.EOF when no records remain, or an input error.
func (r *Reader) ReadWindow(ctx context.Context, overlap, width int, w *Window) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if overlap < 0 {
		overlap = 0
	}
	switch r.st {
	case exhausted:
		w.reset()
		return io.EOF
	case betweenRecords:
		ok, err := r.readHeader()
		if err != nil {
			return err
		}
		if !ok {
			r.st = exhausted
			w.reset()
			return io.EOF
		}
		r.st = firstWindow
	}

	keep := 0
	if r.st == firstWindow {
		w.reset()
		w.Name, w.Desc = r.name, r.desc
	} else {
		keep = min(overlap, len(w.Seq))
		copy(w.Seq, w.Seq[len(w.Seq)-keep:])
		w.Seq = w.Seq[:keep]
	}

	got := 0
	for width <= 0 || got < width {
		sym, ok, err := r.residue()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		c, err := r.abc.Digitize(sym)
		if err != nil {
			var ire *alphabet.InvalidResidueError
			if errors.As(err, &ire) {
				ire.Pos = r.pos + int64(got) + 1
			}
			return err
		}
		w.Seq = append(w.Seq, c)
		got++
	}

	if got == 0 {
		w.L = r.pos
		w.Seq = w.Seq[:0]
		w.Context = 0
		w.Start = r.pos + 1
		w.Final = true
		r.st = betweenRecords
		return ErrEndOfSequence
	}

	w.Context = keep
	w.Start = r.pos + 1 - int64(keep)
	r.pos += int64(got)
	r.st = inRecord
	end, err := r.atRecordEnd()
	if err != nil {
		return err
	}
	w.Final = end
	return nil
}

// readHeader advances to the next '>' line. ok is false at end of input.
func (r *Reader) readHeader() (bool, error) {
	for {
		line, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("%s: %w", r.source, err)
		}
		text := strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(text, ">"):
			r.name, r.desc = parseHeader(text[1:])
			r.pos = 0
			r.bol = true
			return true, nil
		case strings.TrimSpace(text) != "":
			return false, &FormatError{Source: r.source, Line: text}
		}
		if err == io.EOF {
			return false, nil
		}
	}
}

// residue returns the next sequence symbol of the current record, skipping
// whitespace and digits; ok is false at the record's end. A '>' opening the next header is left unread.
func (r *Reader) residue() (byte, bool, error) {
	for {
		b, err := r.br.ReadByte()
		if err == io.EOF {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", r.source, err)
		}
		switch b {
		case '\n':
			r.bol = true
			continue
		case '\r', ' ', '\t':
			continue
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			// GenBank-style position numbers
			r.bol = false
			continue
		case '>':
			if r.bol {
				_ = r.br.UnreadByte()
				return 0, false, nil
			}
		}
		r.bol = false
		return b, true, nil
	}
}

// atRecordEnd skips whitespace and reports whether the current record has
// no residues left.
func (r *Reader) atRecordEnd() (bool, error) {
	sym, ok, err := r.residue()
	if err != nil || !ok {
		return !ok, err
	}
	_ = sym
	if err := r.br.UnreadByte(); err != nil {
		return false, err
	}
	return false, nil
}

func parseHeader(hdr string) (name, desc string) {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i], strings.TrimSpace(hdr[i+1:])
	}
	return hdr, ""
}
