// internal/output/json.go
package output

import (
	"io"

	"sixframe-core/orf"
	"sixframe/internal/jsonutil"
	"sixframe/pkg/api"
)

// ToAPIORF converts a domain ORF to the stable wire schema (v1).
func ToAPIORF(o *orf.ORF) api.ORFV1 {
	return api.ORFV1{
		Name:       o.Name(),
		Num:        o.Num,
		Source:     o.Source,
		SourceDesc: o.SourceDesc,
		SourceFile: o.SourceFile,
		Start:      o.Start,
		End:        o.End,
		Frame:      o.Frame,
		Strand:     string(o.Strand()),
		Length:     o.Len(),
		Seq:        string(o.Seq),
	}
}

// WriteJSON writes ORFs as one indented JSON array.
func WriteJSON(w io.Writer, list []*orf.ORF) error {
	out := make([]api.ORFV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIORF(o))
	}
	return jsonutil.EncodePretty(w, out)
}

// StreamJSON writes the same array as WriteJSON without holding it in memory.
func StreamJSON(w io.Writer, in <-chan *orf.ORF) error {
	return jsonutil.StreamArray(w, in, ToAPIORF)
}
