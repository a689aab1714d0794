// core/orf/orf.go
package orf

import "fmt"

// ORF is one translated open reading frame. The caller owns it.
type ORF struct {
	Seq        []byte // amino acids, N to C
	Num        int64  // 1-based, increasing per accepted ORF
	Source     string // source sequence name
	SourceDesc string
	Start      int64 // 1-based; Start > End on the reverse strand
	End        int64
	Frame      int // 1..3 forward, 4..6 reverse

	SourceFile string // set by callers that read more than one file
}

// Name is "orf<Num>".
func (o *ORF) Name() string { return fmt.Sprintf("orf%d", o.Num) }

// Len is the length in amino acids.
func (o *ORF) Len() int { return len(o.Seq) }

// Strand is '+' for frames 1-3 and '-' for 4-6.
func (o *ORF) Strand() byte {
	if o.Frame > 3 {
		return '-'
	}
	return '+'
}

// Desc is the description line written after the ORF name in FASTA output.
func (o *ORF) Desc() string {
	return fmt.Sprintf("source=%s coords=%d..%d length=%d frame=%d desc=%s",
		o.Source, o.Start, o.End, len(o.Seq), o.Frame, o.SourceDesc)
}
