package cmdutil

import (
	"context"

	"sixframe-core/orf"
	"sixframe/internal/pipeline"
)

// RunStream runs the shared pipeline and streams every ORF via send.
// It returns the number of ORFs sent and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	send func(*orf.ORF) error,
) (int64, error) {
	var total int64
	err := pipeline.ForEachORF(ctx, cfg, seqFiles, func(o *orf.ORF) error {
		if err := send(o); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
