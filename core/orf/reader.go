// core/orf/reader.go
package orf

import (
	"context"
	"errors"
	"fmt"
	"io"

	"sixframe-core/alphabet"
	"sixframe-core/gencode"
	"sixframe-core/seqwin"
)

// Defaults for a new Reader.
const (
	DefaultMinLength = 20
	DefaultWindow    = 1000000
)

// contextOverlap keeps the last two residues of a window so codons spanning
// the window boundary are still seen whole.
const contextOverlap = 2

var (
	ErrNotNucleic = errors.New("orf: sequence source is not nucleic acid")
	ErrNoCode     = errors.New("orf: no genetic code")
)

// WindowSource supplies overlapped windows of digital nucleic acid.
// *seqwin.Reader implements it.
type WindowSource interface {
	Alphabet() *alphabet.Alphabet
	ReadWindow(ctx context.Context, overlap, width int, w *seqwin.Window) error
}

/* ---------- frame state ---------- */

// frame is the ORF being built in one reading frame. ia is the coordinate
// of the leftmost nucleotide and ib of the rightmost; 0 means unset.
// Once finished and accepted, the exported fields are filled in and the
// frame waits in the queue until Read hands it out.
type frame struct {
	ia, ib int64
	aa     []byte

	num        int64
	start, end int64
	source     string
	sourceDesc string
}

/* ---------- Reader ---------- */

// Reader translates a nucleic acid source in all six frames and returns
// ORFs in the order their stop codon or sequence end is reached.
//
// The exported fields may be changed only before the first call to Read.
type Reader struct {
	Forward     bool // report frames 1-3
	Reverse     bool // report frames 4-6
	RequireInit bool // ORFs start at an initiator codon instead of after a stop
	MinLength   int  // in amino acids
	Window      int  // new residues per window read; <= 0 reads whole records

	src WindowSource
	gc  *gencode.Code
	abc *alphabet.Alphabet

	win    seqwin.Window
	j      int // next codon start, 0-based in win.Seq
	codons codonTracker
	frames [6]frame
	done   queue
	norfs  int64

	eof bool
	err error
}

// NewReader returns a Reader with default options over src, translating
// with gc. Neither is owned by the Reader.
func NewReader(src WindowSource, gc *gencode.Code) (*Reader, error) {
	if gc == nil {
		return nil, ErrNoCode
	}
	abc := src.Alphabet()
	if abc == nil {
		return nil, ErrNotNucleic
	}
	if !abc.IsNucleic() {
		return nil, fmt.Errorf("%w: got %s alphabet", ErrNotNucleic, abc.Kind())
	}
	return &Reader{
		Forward:   true,
		Reverse:   true,
		MinLength: DefaultMinLength,
		Window:    DefaultWindow,
		src:       src,
		gc:        gc,
		abc:       abc,
		codons:    codonTracker{abc: abc},
	}, nil
}

// Count is the number of ORFs accepted so far.
func (r *Reader) Count() int64 { return r.norfs }

// Read returns the next ORF, or io.EOF once the source is exhausted.
// Errors from the source are returned unchanged, and returned again by
// every later call.
func (r *Reader) Read(ctx context.Context) (*ORF, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.Window > 0 && r.Window < 3 {
		r.err = fmt.Errorf("orf: window %d is shorter than a codon", r.Window)
		return nil, r.err
	}

	for r.done.n == 0 {
		if r.eof {
			return nil, io.EOF
		}
		fresh := len(r.win.Seq) == 0
		if r.j >= len(r.win.Seq)-2 {
			err := r.src.ReadWindow(ctx, contextOverlap, r.Window, &r.win)
			switch {
			case err == nil:
			case errors.Is(err, seqwin.ErrEndOfSequence):
				r.flush(r.win.L)
				r.win.Seq = r.win.Seq[:0]
			case errors.Is(err, io.EOF):
				r.eof = true
				return nil, io.EOF
			default:
				r.err = err
				return nil, err
			}
			r.j = 0
		}
		if fresh && len(r.win.Seq) >= 3 {
			r.codons.reset(r.win.Seq[0], r.win.Seq[1])
		}
		r.scan()
	}
	return r.next(), nil
}

// scan translates codons of the current window until one ORF is finished
// and accepted or the window runs out.
func (r *Reader) scan() {
	seq := r.win.Seq
	j := r.j
	for ; j+2 < len(seq) && r.done.n == 0; j++ {
		x, y, z := seq[j], seq[j+1], seq[j+2]
		r.codons.advance(z)
		tr := r.codons.translate(r.gc, x, y, z)

		pos := r.win.Start + int64(j) // first nucleotide of the codon
		f := int((pos - 1) % 3)
		r.forward(f, pos, tr.aaf, tr.initf)
		r.reverse(f+3, pos, tr.aar, tr.initr)
	}
	r.j = j
}

func (r *Reader) forward(f int, pos int64, aa byte, init bool) {
	fr := &r.frames[f]
	if gencode.IsStop(aa) {
		r.finish(f)
		return
	}
	fr.ib = pos + 2
	// leftmost start wins
	if fr.ia == 0 && (!r.RequireInit || init) {
		fr.ia = pos
	}
	if fr.ia > 0 {
		fr.aa = append(fr.aa, aa)
	}
}

// reverse extends the frame f ORF, read right to left. The buffer grows in
// genome order and is turned around when the ORF finishes; with RequireInit
// it can run past the rightmost initiator and is cut back then.
func (r *Reader) reverse(f int, pos int64, aa byte, init bool) {
	fr := &r.frames[f]
	if gencode.IsStop(aa) {
		r.finish(f)
		return
	}
	if fr.ia == 0 {
		fr.ia = pos
	}
	if !r.RequireInit || init {
		fr.ib = pos + 2
	}
	fr.aa = append(fr.aa, aa)
}

// flush finishes every frame at the end of a sequence of length L, in the
// order of each frame's last codon; the forward frame goes before the
// reverse frame sharing that codon.
func (r *Reader) flush(L int64) {
	first := int(((L+1)%3 + 3) % 3)
	for k := 0; k < 3; k++ {
		f := (first + k) % 3
		r.finish(f)
		r.finish(f + 3)
	}
}

// finish ends the ORF in frame f, queueing it if it passes the filters.
// ia/ib are cleared either way.
func (r *Reader) finish(f int) {
	fr := &r.frames[f]
	ia, ib := fr.ia, fr.ib
	fr.ia, fr.ib = 0, 0

	n := (ib - ia + 1) / 3
	if ia == 0 || ib == 0 || n < int64(r.MinLength) || !r.strandOn(f) || n > int64(len(fr.aa)) {
		fr.aa = fr.aa[:0]
		return
	}

	r.norfs++
	fr.aa = fr.aa[:n]
	if f < 3 {
		fr.start, fr.end = ia, ib
	} else {
		fr.start, fr.end = ib, ia
		for i, k := 0, len(fr.aa)-1; i < k; i, k = i+1, k-1 {
			fr.aa[i], fr.aa[k] = fr.aa[k], fr.aa[i]
		}
	}
	if r.RequireInit && n > 0 {
		fr.aa[0] = gencode.StartAmino
	}
	fr.num = r.norfs
	fr.source = r.win.Name
	fr.sourceDesc = r.win.Desc
	r.done.push(f)
}

func (r *Reader) strandOn(f int) bool {
	if f < 3 {
		return r.Forward
	}
	return r.Reverse
}

// next dequeues a finished frame and hands its ORF to the caller.
func (r *Reader) next() *ORF {
	f := r.done.pop()
	fr := &r.frames[f]
	o := &ORF{
		Seq:        append([]byte(nil), fr.aa...),
		Num:        fr.num,
		Source:     fr.source,
		SourceDesc: fr.sourceDesc,
		Start:      fr.start,
		End:        fr.end,
		Frame:      f + 1,
	}
	fr.aa = fr.aa[:0]
	return o
}
