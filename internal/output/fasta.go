// internal/output/fasta.go
package output

import (
	"bufio"
	"io"

	"sixframe-core/orf"
)

// WriteFASTARecord writes one ORF as ">name desc" followed by its residues
// in lines of width (0 = one line).
func WriteFASTARecord(w *bufio.Writer, o *orf.ORF, width int) error {
	w.WriteByte('>')
	w.WriteString(o.Name())
	w.WriteByte(' ')
	w.WriteString(o.Desc())
	w.WriteByte('\n')

	seq := o.Seq
	if width <= 0 {
		width = len(seq)
	}
	for len(seq) > 0 {
		n := min(width, len(seq))
		w.Write(seq[:n])
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// StreamFASTA streams FASTA records from a channel to the writer.
func StreamFASTA(out io.Writer, in <-chan *orf.ORF, width int) error {
	bw := bufio.NewWriter(out)
	for o := range in {
		if err := WriteFASTARecord(bw, o, width); err != nil {
			return err
		}
	}
	return bw.Flush()
}
