// internal/writers/orf.go
package writers

import (
	"io"

	"sixframe-core/orf"
	"sixframe/internal/output"
)

func init() {
	Register(output.FormatFASTA, StartFASTAWriter)
	Register(output.FormatText, StartTextWriter)
	Register(output.FormatJSON, StartJSONWriter)
	Register(output.FormatJSONL, StartJSONLWriter)
}

// StartFASTAWriter streams ">orfN desc" records wrapped at opt.LineWidth.
func StartFASTAWriter(out io.Writer, opt Options, bufSize int) (chan<- *orf.ORF, <-chan error) {
	return goWriter(bufSize, func(in <-chan *orf.ORF) error {
		return output.StreamFASTA(out, in, opt.LineWidth)
	})
}

// StartTextWriter streams TSV rows.
func StartTextWriter(out io.Writer, opt Options, bufSize int) (chan<- *orf.ORF, <-chan error) {
	return goWriter(bufSize, func(in <-chan *orf.ORF) error {
		return output.StreamText(out, in, opt.Header)
	})
}

// StartJSONWriter streams one indented JSON array (v1).
func StartJSONWriter(out io.Writer, _ Options, bufSize int) (chan<- *orf.ORF, <-chan error) {
	return goWriter(bufSize, func(in <-chan *orf.ORF) error {
		return output.StreamJSON(out, in)
	})
}
