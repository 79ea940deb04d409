// Package cli implements the lvmsa command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmsa/fasta"
	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/internal/logging"
	"github.com/katalvlaran/lvmsa/msa"
)

// Exit codes.
const (
	ExitSuccess  = 0
	ExitFailure  = 1 // I/O, parse and other errors
	ExitInput    = 2 // invalid configuration or sequences
	ExitTooLarge = 3 // lattice above the cell limit
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// RootOptions holds the persistent flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Matrix     string
	GapSymbol  string
	Format     string
	LogLevel   string
}

// NewRootCommand creates the root command for the lvmsa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "lvmsa",
		Short: "Exact multiple sequence alignment",
		Long: `lvmsa aligns a handful of sequences exactly, maximizing the
sum-of-pairs substitution score over an N-dimensional lattice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&opts.Matrix, "matrix", "m", def.Matrix, `scoring matrix: "blosum62" or a matrix file`)
	pf.StringVar(&opts.GapSymbol, "gap-symbol", def.GapSymbol, "gap symbol of the scoring matrix")
	pf.StringVarP(&opts.Format, "format", "f", def.Format, "output format (text|fasta|json)")
	pf.StringVar(&opts.LogLevel, "log-level", def.LogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(NewAlignCommand(opts))
	cmd.AddCommand(NewPairwiseCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolve loads the config file (if any), then applies every flag the user
// set explicitly, then validates.
func (o *RootOptions) resolve(cmd *cobra.Command, local func(*config.Config)) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("matrix") {
		cfg.Matrix = o.Matrix
	}
	if flags.Changed("gap-symbol") {
		cfg.GapSymbol = o.GapSymbol
	}
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if local != nil {
		local(&cfg)
	}

	return cfg, cfg.Validate()
}

// logger builds the stderr logger for cfg, tagged with a fresh run id.
func logger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.LogLevel)

	return logging.New(cmd.ErrOrStderr(), level).With(slog.String("run", uuid.NewString()))
}

// stdout wraps the command output so text renderings can use color on a
// terminal. Non-terminal writers get the plain profile.
func stdout(cmd *cobra.Command) io.Writer {
	return termenv.NewOutput(cmd.OutOrStdout())
}

// readRecords concatenates the records of every FASTA path.
func readRecords(paths []string) ([]fasta.Record, error) {
	var out []fasta.Record
	for _, p := range paths {
		recs, err := fasta.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}

	return out, nil
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, msa.ErrLatticeTooLarge):
		return ExitTooLarge
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, msa.ErrInvalidInput),
		errors.Is(err, msa.ErrDegenerateInput),
		errors.Is(err, fasta.ErrNoHeader),
		errors.Is(err, fasta.ErrNoRecords):
		return ExitInput
	default:
		return ExitFailure
	}
}

// NewVersionCommand prints the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvmsa version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lvmsa %s\n", Version)
			return err
		},
	}
}
