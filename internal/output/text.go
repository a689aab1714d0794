// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"sixframe-core/orf"
)

// FormatRowTSV returns the TSV columns for o (no trailing newline).
func FormatRowTSV(o *orf.ORF) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%c\t%d\t%d\t%d\t%s",
		o.SourceFile, o.Source, o.Name(), o.Frame, o.Strand(),
		o.Start, o.End, o.Len(), o.Seq,
	)
}

// StreamText writes one TSV row per ORF as they arrive.
func StreamText(w io.Writer, in <-chan *orf.ORF, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for o := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
			return err
		}
	}
	return nil
}
