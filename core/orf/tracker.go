// core/orf/tracker.go
package orf

import (
	"sixframe-core/alphabet"
	"sixframe-core/gencode"
)

// codonTracker keeps the last three residues packed base-4 for both strands.
// fwd holds XYZ as 16x+4y+z; rev holds the reverse complement (ZYX)'.
// ambig counts the codons still overlapping a non-canonical residue; while
// it is nonzero fwd/rev are stale and translation takes the slow path.
type codonTracker struct {
	abc   *alphabet.Alphabet
	fwd   int
	rev   int
	ambig int
}

// reset primes the tracker with the first two residues of a sequence.
func (t *codonTracker) reset(x, y alphabet.Code) {
	t.fwd, t.rev, t.ambig = 0, 0, 0
	switch {
	case !t.abc.IsCanonical(y):
		t.ambig = 3 // y sits in the first two codons
	case !t.abc.IsCanonical(x):
		t.ambig = 2
		t.fwd = int(y)
		t.rev = int(t.abc.Complement(y)) * 16
	default:
		t.fwd = int(x)*4 + int(y)
		t.rev = int(t.abc.Complement(y))*16 + int(t.abc.Complement(x))*4
	}
}

// advance shifts residue z into the tracker.
func (t *codonTracker) advance(z alphabet.Code) {
	if !t.abc.IsCanonical(z) {
		t.ambig = 3
		return
	}
	t.fwd = (t.fwd%16)*4 + int(z)
	t.rev = t.rev/4 + int(t.abc.Complement(z))*16
	if t.ambig > 0 {
		t.ambig--
	}
}

// translation of the codon x y z just advanced over, on both strands.
type translation struct {
	aaf, aar     byte
	initf, initr bool
}

func (t *codonTracker) translate(gc *gencode.Code, x, y, z alphabet.Code) translation {
	if t.ambig == 0 {
		return translation{
			aaf:   gc.Translate(t.fwd),
			aar:   gc.Translate(t.rev),
			initf: gc.IsInitiator(t.fwd),
			initr: gc.IsInitiator(t.rev),
		}
	}
	cx, cy, cz := t.abc.Complement(z), t.abc.Complement(y), t.abc.Complement(x)
	return translation{
		aaf:   gc.TranslateTriplet(x, y, z),
		aar:   gc.TranslateTriplet(cx, cy, cz),
		initf: gc.IsInitiatorTriplet(x, y, z),
		initr: gc.IsInitiatorTriplet(cx, cy, cz),
	}
}

// queue is a FIFO of frame indices whose ORFs are finished and accepted.
// At most six can be pending, one per frame.
type queue struct {
	slot [6]int
	head int
	n    int
}

func (q *queue) push(f int) {
	if q.n == len(q.slot) {
		panic("orf: finished-ORF queue overflow")
	}
	q.slot[(q.head+q.n)%len(q.slot)] = f
	q.n++
}

func (q *queue) pop() int {
	if q.n == 0 {
		panic("orf: finished-ORF queue underflow")
	}
	f := q.slot[q.head]
	q.head = (q.head + 1) % len(q.slot)
	q.n--
	return f
}
