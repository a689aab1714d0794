// internal/jsonutil/json.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StreamArray writes the values received on in as one indented JSON array,
// converting each with conv. The output matches EncodePretty of the
// collected slice.
func StreamArray[T, W any](w io.Writer, in <-chan T, conv func(T) W) error {
	bw := bufio.NewWriter(w)
	n := 0
	for v := range in {
		b, err := json.MarshalIndent(conv(v), "  ", "  ")
		if err != nil {
			return err
		}
		if n == 0 {
			bw.WriteString("[\n  ")
		} else {
			bw.WriteString(",\n  ")
		}
		if _, err := bw.Write(b); err != nil {
			return err
		}
		n++
	}
	if n == 0 {
		bw.WriteString("[]\n")
	} else {
		bw.WriteString("\n]\n")
	}
	return bw.Flush()
}
