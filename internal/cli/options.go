// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"sixframe/internal/cliutil"
	"sixframe/internal/config"
)

// Register wires every flag onto fs with its default from config.Defaults.
// Long names double as config-file and environment keys.
func Register(fs *pflag.FlagSet) {
	d := config.Defaults()

	// Input
	fs.StringSliceP("sequences", "s", nil, "FASTA file(s) (repeatable, globs ok) or '-' for STDIN")

	// Translation
	fs.IntP("min-length", "l", d.MinLength, "minimum ORF length in amino acids")
	fs.BoolP("atg-only", "m", false, "ORFs must start with ATG")
	fs.BoolP("require-init", "M", false, "ORFs must start with an initiator of the genetic code")
	fs.Bool("watson", false, "translate the forward strand only (frames 1-3)")
	fs.Bool("crick", false, "translate the reverse strand only (frames 4-6)")
	fs.Int("table", d.Table, "NCBI genetic code table")
	fs.Int("window", d.Window, "nucleotides read per window (>= 3)")

	// Performance
	fs.IntP("threads", "t", 0, "worker threads (0=all CPUs)")

	// Output
	fs.StringP("output", "o", d.Output, "output: fasta | text | json | jsonl")
	fs.Int("line-width", d.LineWidth, "FASTA line width (0=no wrapping)")
	fs.Bool("no-header", false, "suppress header line in text output")
	fs.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when no ORFs are found")

	// Misc
	fs.BoolP("quiet", "q", false, "only log errors")
	fs.String("log-level", d.LogLevel, "log level: debug | info | warn | error")
	fs.String("config", "", "config file (YAML, TOML or JSON; default ./sixframe.yaml if present)")
}

// AfterParse merges positional inputs into c.Sequences, expanding globs,
// then validates.
func AfterParse(c *config.Config, posArgs []string) error {
	files, err := cliutil.ExpandInputs(c.Sequences, posArgs)
	if err != nil {
		return err
	}
	c.Sequences = files
	return Validate(c)
}

// Validate applies the CLI invariants. Messages name the offending flag.
func Validate(c *config.Config) error {
	if len(c.Sequences) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.MinLength < 0 {
		return errors.New("--min-length must be ≥ 0")
	}
	if c.ATGOnly && c.RequireInit {
		return errors.New("--atg-only conflicts with --require-init")
	}
	if c.Watson && c.Crick {
		return errors.New("--watson conflicts with --crick")
	}
	if c.Table < 1 {
		return fmt.Errorf("invalid --table %d", c.Table)
	}
	if c.Window < 3 {
		return errors.New("--window must be ≥ 3")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "fasta", "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.LineWidth < 0 {
		return errors.New("--line-width must be ≥ 0")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
