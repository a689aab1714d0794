// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"sixframe/internal/version"
)

// PrintUsage writes the grouped help screen for fs.
func PrintUsage(out io.Writer, name string, fs *pflag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – six-frame ORF translation of nucleotide FASTA\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s [flags] <seqfile>...\n", name)
	fmt.Fprintf(out, "  %s -l 50 --watson -o jsonl genome.fa.gz\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable, globs ok) or '-' for STDIN")

	fmt.Fprintln(out, "\nTranslation:")
	fmt.Fprintf(out, "  -l, --min-length int        Minimum ORF length in amino acids [%s]\n", def("min-length"))
	fmt.Fprintln(out, "  -m, --atg-only              ORFs must start with ATG")
	fmt.Fprintln(out, "  -M, --require-init          ORFs must start with an initiator of the genetic code")
	fmt.Fprintln(out, "      --watson                Forward strand only (frames 1-3)")
	fmt.Fprintln(out, "      --crick                 Reverse strand only (frames 4-6)")
	fmt.Fprintf(out, "      --table int             NCBI genetic code table [%s]\n", def("table"))
	fmt.Fprintf(out, "      --window int            Nucleotides read per window [%s]\n", def("window"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: fasta | text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --line-width int        FASTA line width (0=no wrapping) [%s]\n", def("line-width"))
	fmt.Fprintln(out, "      --no-header             Suppress header line in text output")
	fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no ORFs are found [%s]\n", def("no-match-exit-code"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "  -q, --quiet                 Only log errors")
	fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
	fmt.Fprintln(out, "      --config file           Config file (default ./sixframe.yaml if present)")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

	fmt.Fprintln(out, "\nEvery long flag can also be set as SIXFRAME_<NAME> in the environment")
	fmt.Fprintln(out, "(dashes become underscores) or as a key in the config file.")
}
