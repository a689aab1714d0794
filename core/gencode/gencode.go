// core/gencode/gencode.go
package gencode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bebop/poly/synthesis/codon"

	"sixframe-core/alphabet"
)

// Translation sentinels.
const (
	Stop       byte = '*'
	Unknown    byte = 'X'
	StartAmino byte = 'M'
)

// NumCodons is the number of canonical codons.
const NumCodons = 64

var ErrNotNucleic = errors.New("genetic code requires a nucleic acid alphabet")

// Code is a genetic code over a digital nucleic alphabet. Canonical codons
// are packed base-4, 16*x + 4*y + z, with A=0 C=1 G=2 T=3.
type Code struct {
	id        int
	nt        *alphabet.Alphabet
	basic     [NumCodons]byte
	initiator [NumCodons]bool
}

// New builds NCBI translation table <table> (1 = standard) for nt.
func New(nt *alphabet.Alphabet, table int) (*Code, error) {
	if nt == nil || !nt.IsNucleic() {
		return nil, ErrNotNucleic
	}
	tt, err := codon.NewTranslationTable(table)
	if err != nil {
		return nil, fmt.Errorf("genetic code %d: %w", table, err)
	}
	gc := &Code{id: table, nt: nt}

	stops := make(map[string]bool, len(tt.StopCodons))
	for _, s := range tt.StopCodons {
		stops[strings.ToUpper(s)] = true
	}
	starts := make(map[string]bool, len(tt.StartCodons))
	for _, s := range tt.StartCodons {
		starts[strings.ToUpper(s)] = true
	}

	for c := 0; c < NumCodons; c++ {
		triplet := Triplet(c)
		gc.initiator[c] = starts[triplet]
		if stops[triplet] {
			gc.basic[c] = Stop
			continue
		}
		// ATG leads so that any first-codon start handling in the table
		// never touches the codon we are asking about.
		aa, err := tt.Translate("ATG" + triplet)
		if err != nil {
			return nil, fmt.Errorf("genetic code %d: translate %s: %w", table, triplet, err)
		}
		if len(aa) < 2 {
			return nil, fmt.Errorf("genetic code %d: no translation for %s", table, triplet)
		}
		gc.basic[c] = strings.ToUpper(aa)[1]
	}
	return gc, nil
}

// Triplet returns the DNA text of packed canonical codon c.
func Triplet(c int) string {
	const bases = "ACGT"
	return string([]byte{bases[(c>>4)&3], bases[(c>>2)&3], bases[c&3]})
}

// Pack packs three canonical codes. Callers must check canonicity.
func Pack(x, y, z alphabet.Code) int { return int(x)<<4 | int(y)<<2 | int(z) }

func (gc *Code) ID() int { return gc.id }

func (gc *Code) Name() string { return fmt.Sprintf("NCBI table %d", gc.id) }

// Alphabet is the nucleic alphabet the code was built for.
func (gc *Code) Alphabet() *alphabet.Alphabet { return gc.nt }

// Translate is the fast path for a packed canonical codon.
func (gc *Code) Translate(c int) byte { return gc.basic[c] }

// IsInitiator is the fast path for a packed canonical codon.
func (gc *Code) IsInitiator(c int) bool { return gc.initiator[c] }

// IsStop reports whether aa is the stop sentinel.
func IsStop(aa byte) bool { return aa == Stop }

// TranslateTriplet translates a possibly degenerate codon. If every
// canonical codon consistent with it gives the same amino acid (or all
// stop), that is the answer; otherwise Unknown. GGN is G, TAR is stop,
// NNN is X.
func (gc *Code) TranslateTriplet(x, y, z alphabet.Code) byte {
	if gc.nt.IsCanonical(x) && gc.nt.IsCanonical(y) && gc.nt.IsCanonical(z) {
		return gc.basic[Pack(x, y, z)]
	}
	var aa byte
	seen := false
	for _, a := range gc.nt.Expand(x) {
		for _, b := range gc.nt.Expand(y) {
			for _, c := range gc.nt.Expand(z) {
				t := gc.basic[Pack(a, b, c)]
				if !seen {
					aa, seen = t, true
				} else if t != aa {
					return Unknown
				}
			}
		}
	}
	if !seen {
		return Unknown
	}
	return aa
}

// IsInitiatorTriplet reports whether every canonical codon consistent with
// a possibly degenerate codon is an initiator. Stops never initiate, so NNN
// never does.
func (gc *Code) IsInitiatorTriplet(x, y, z alphabet.Code) bool {
	n := 0
	for _, a := range gc.nt.Expand(x) {
		for _, b := range gc.nt.Expand(y) {
			for _, c := range gc.nt.Expand(z) {
				if !gc.initiator[Pack(a, b, c)] {
					return false
				}
				n++
			}
		}
	}
	return n > 0
}

// SetInitiatorOnlyATG restricts initiators to ATG. The standard NCBI code
// also allows CTG and TTG.
func (gc *Code) SetInitiatorOnlyATG() {
	for c := range gc.initiator {
		gc.initiator[c] = false
	}
	gc.initiator[Pack(alphabet.A, alphabet.T, alphabet.G)] = true
}

// Initiators lists the initiator codons as DNA text.
func (gc *Code) Initiators() []string {
	var out []string
	for c, ok := range gc.initiator {
		if ok {
			out = append(out, Triplet(c))
		}
	}
	return out
}
