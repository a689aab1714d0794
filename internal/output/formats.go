// internal/output/formats.go
package output

// Output formats.
const (
	FormatFASTA = "fasta"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsource\tname\tframe\tstrand\tstart\tend\tlength\tseq"

// DefaultLineWidth is the FASTA residue line width.
const DefaultLineWidth = 60
