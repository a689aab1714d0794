// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
)

// Kind of residues an Alphabet digitizes.
type Kind int

const (
	DNA Kind = iota
	RNA
	Amino
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Amino:
		return "amino"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code is a digitized residue.
type Code uint8

// Canonical nucleotide codes. Degenerate codes follow them.
const (
	A Code = iota
	C
	G
	T
	R
	Y
	M
	K
	S
	W
	H
	B
	V
	D
	N

	nNucleic = int(N) + 1
)

// ErrInvalidResidue is matched by every *InvalidResidueError.
var ErrInvalidResidue = errors.New("invalid residue")

// InvalidResidueError reports a symbol outside the alphabet. Pos is the
// 1-based coordinate in the record when known, else 0.
type InvalidResidueError struct {
	Symbol byte
	Pos    int64
	Kind   Kind
}

func (e *InvalidResidueError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("invalid %s residue %q at position %d", e.Kind, e.Symbol, e.Pos)
	}
	return fmt.Sprintf("invalid %s residue %q", e.Kind, e.Symbol)
}

func (e *InvalidResidueError) Is(target error) bool { return target == ErrInvalidResidue }

/* -------------------------- IUPAC lookup tables ------------------------- */

// bit0=A bit1=C bit2=G bit3=T
var nucleicMask = [nNucleic]uint8{
	A: 1, C: 2, G: 4, T: 8,
	R: 1 | 4, Y: 2 | 8, M: 1 | 2, K: 4 | 8,
	S: 2 | 4, W: 1 | 8,
	H: 1 | 2 | 8, B: 2 | 4 | 8, V: 1 | 2 | 4, D: 1 | 4 | 8,
	N: 1 | 2 | 4 | 8,
}

var nucleicComplement = [nNucleic]Code{
	A: T, C: G, G: C, T: A,
	R: Y, Y: R, M: K, K: M,
	S: S, W: W,
	H: D, D: H, B: V, V: B,
	N: N,
}

const (
	dnaSymbols   = "ACGTRYMKSWHBVDN"
	rnaSymbols   = "ACGURYMKSWHBVDN"
	aminoSymbols = "ACDEFGHIKLMNPQRSTVWYBJZOUX*"
)

// Alphabet digitizes and reports on residues of one Kind.
type Alphabet struct {
	kind    Kind
	symbols string
	inmap   [256]int16 // -1 = invalid
}

// New returns the alphabet for kind.
func New(kind Kind) *Alphabet {
	a := &Alphabet{kind: kind}
	for i := range a.inmap {
		a.inmap[i] = -1
	}
	switch kind {
	case DNA:
		a.symbols = dnaSymbols
	case RNA:
		a.symbols = rnaSymbols
	default:
		a.symbols = aminoSymbols
	}
	for i := 0; i < len(a.symbols); i++ {
		a.set(a.symbols[i], Code(i))
	}
	if a.IsNucleic() {
		// T and U are interchangeable on input
		a.set('T', T)
		a.set('U', T)
	}
	return a
}

func (a *Alphabet) set(sym byte, c Code) {
	a.inmap[sym] = int16(c)
	if sym >= 'A' && sym <= 'Z' {
		a.inmap[sym+'a'-'A'] = int16(c)
	}
}

func (a *Alphabet) Kind() Kind { return a.kind }

// IsNucleic reports whether a is a DNA or RNA alphabet.
func (a *Alphabet) IsNucleic() bool { return a.kind == DNA || a.kind == RNA }

// Size is the number of distinct codes, canonical and degenerate.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Digitize converts one input symbol.
func (a *Alphabet) Digitize(sym byte) (Code, error) {
	c := a.inmap[sym]
	if c < 0 {
		return 0, &InvalidResidueError{Symbol: sym, Kind: a.kind}
	}
	return Code(c), nil
}

// DigitizeString digitizes s, reporting 1-based positions on error.
func (a *Alphabet) DigitizeString(s string) ([]Code, error) {
	out := make([]Code, len(s))
	for i := 0; i < len(s); i++ {
		c := a.inmap[s[i]]
		if c < 0 {
			return nil, &InvalidResidueError{Symbol: s[i], Pos: int64(i + 1), Kind: a.kind}
		}
		out[i] = Code(c)
	}
	return out, nil
}

// Symbol returns the upper-case text symbol for c.
func (a *Alphabet) Symbol(c Code) byte {
	if int(c) >= len(a.symbols) {
		return '?'
	}
	return a.symbols[c]
}

// Textize converts digital residues back to text.
func (a *Alphabet) Textize(dsq []Code) string {
	b := make([]byte, len(dsq))
	for i, c := range dsq {
		b[i] = a.Symbol(c)
	}
	return string(b)
}

// IsCanonical reports whether c is exactly one of the four bases.
// Only meaningful for nucleic alphabets.
func (a *Alphabet) IsCanonical(c Code) bool { return c < R }

// Complement returns the Watson-Crick complement of c, including IUPAC codes.
func (a *Alphabet) Complement(c Code) Code {
	if int(c) >= nNucleic {
		return N
	}
	return nucleicComplement[c]
}

// Expand lists the canonical codes c may stand for, in A,C,G,T order.
func (a *Alphabet) Expand(c Code) []Code {
	if int(c) >= nNucleic {
		return nil
	}
	m := nucleicMask[c]
	out := make([]Code, 0, 4)
	for x := A; x <= T; x++ {
		if m&(1<<x) != 0 {
			out = append(out, x)
		}
	}
	return out
}

// Includes reports whether degenerate code c includes canonical base x.
func Includes(c, x Code) bool {
	return int(c) < nNucleic && x <= T && nucleicMask[c]&(1<<x) != 0
}
