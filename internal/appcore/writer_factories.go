package appcore

import (
	"io"

	"sixframe-core/orf"
	"sixframe/internal/writers"
)

// ORFWriterFactory starts the registered writer for Format.
type ORFWriterFactory struct {
	Format string
	Opt    writers.Options
}

func NewORFWriterFactory(format string, header bool, lineWidth int) ORFWriterFactory {
	return ORFWriterFactory{Format: format, Opt: writers.Options{Header: header, LineWidth: lineWidth}}
}

func (w ORFWriterFactory) Start(out io.Writer, bufSize int) (chan<- *orf.ORF, <-chan error) {
	return writers.Start(out, w.Format, w.Opt, bufSize)
}
