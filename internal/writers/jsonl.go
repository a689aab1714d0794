// internal/writers/jsonl.go
package writers

import (
	"io"

	"sixframe-core/orf"
	"sixframe/internal/jsonlutil"
	"sixframe/internal/output"
)

// StartJSONLWriter streams each ORF as one JSON line (v1).
func StartJSONLWriter(out io.Writer, _ Options, bufSize int) (chan<- *orf.ORF, <-chan error) {
	return jsonlutil.Start(out, bufSize, output.ToAPIORF, IsBrokenPipe)
}
