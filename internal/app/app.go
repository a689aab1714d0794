// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sixframe-core/alphabet"
	"sixframe-core/gencode"
	"sixframe/internal/appcore"
	"sixframe/internal/cli"
	"sixframe/internal/config"
	"sixframe/internal/logging"
	"sixframe/internal/runutil"
	"sixframe/internal/version"
)

const name = "sixframe"

// RunContext executes the command line argv and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		fs := cli.NewFlagSet(name)
		cli.PrintUsage(stdout, name, fs)
		return runutil.ExitOK
	}

	code := runutil.ExitOK
	v := viper.New()
	cmd := &cobra.Command{
		Use:           name + " [flags] <seqfile>...",
		Short:         "Six-frame ORF translation of nucleotide FASTA",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code = run(cmd.Context(), v, cmd.Flags(), args, stdout, stderr)
			return nil
		},
	}
	cli.Register(cmd.Flags())
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		cli.PrintUsage(c.OutOrStdout(), name, c.Flags())
	})

	if err := cmd.ExecuteContext(parent); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return runutil.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, v *viper.Viper, fs *pflag.FlagSet, args []string, stdout, stderr io.Writer) int {
	file, _ := fs.GetString("config")
	if file == "" {
		file = os.Getenv(config.EnvPrefix + "_CONFIG")
	}
	c, err := config.Load(v, fs, file)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return runutil.ExitUsage
	}
	if err := cli.AfterParse(&c, args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return runutil.ExitUsage
	}

	logger := logging.New(stderr, c.LogLevel, c.Quiet)
	if used := config.Used(v); used != "" {
		logger.Debug("config file", "path", used)
	}

	gc, err := gencode.New(alphabet.New(alphabet.DNA), c.Table)
	if err != nil {
		logger.Error("bad genetic code", "table", c.Table, "err", err)
		return runutil.ExitUsage
	}
	if c.ATGOnly {
		gc.SetInitiatorOnlyATG()
	}
	logger.Debug("genetic code", "name", gc.Name(), "initiators", gc.Initiators())

	o := appcore.Options{
		SeqFiles:        c.Sequences,
		Code:            gc,
		RequireInit:     c.ATGOnly || c.RequireInit,
		Forward:         c.Forward(),
		Reverse:         c.Reverse(),
		MinLength:       c.MinLength,
		Window:          c.Window,
		Threads:         c.Threads,
		NoMatchExitCode: c.NoMatchExitCode,
	}
	wf := appcore.NewORFWriterFactory(c.Output, !c.NoHeader, c.LineWidth)
	return appcore.Run(ctx, stdout, logger, o, wf)
}
