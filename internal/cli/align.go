package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/internal/metrics"
	"github.com/katalvlaran/lvmsa/internal/output"
	"github.com/katalvlaran/lvmsa/msa"
)

// AlignOptions holds the align-only flags.
type AlignOptions struct {
	GapMarker  string
	EndGaps    string
	Traceback  string
	MaxCells   int
	MaxWork    int
	MetricsOut string
}

// NewAlignCommand creates the align command.
func NewAlignCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AlignOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "align <fasta>...",
		Short: "Align every record of the given FASTA files",
		Long: `Align all records of the given FASTA files (use "-" for stdin,
".gz" files are decompressed) as one exact multiple alignment.

The cost grows as the product of (length+1) over all sequences times 2^N;
problems above --max-cells or --max-work are rejected before any
allocation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, rootOpts, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.GapMarker, "gap-marker", def.GapMarker, "gap character in output rows")
	f.StringVar(&opts.EndGaps, "end-gaps", def.EndGaps, "end-gap policy (scored|free)")
	f.StringVar(&opts.Traceback, "traceback", def.Traceback, "traceback policy (predecessor|consistent)")
	f.IntVar(&opts.MaxCells, "max-cells", def.MaxCells, "lattice cell limit")
	f.IntVar(&opts.MaxWork, "max-work", def.MaxWork, "fill work limit (cells × moves × pairs)")
	f.StringVar(&opts.MetricsOut, "metrics-out", "", "write Prometheus metrics to this file")

	return cmd
}

func runAlign(cmd *cobra.Command, rootOpts *RootOptions, opts *AlignOptions, paths []string) error {
	cfg, err := rootOpts.resolve(cmd, func(c *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("gap-marker") {
			c.GapMarker = opts.GapMarker
		}
		if flags.Changed("end-gaps") {
			c.EndGaps = opts.EndGaps
		}
		if flags.Changed("traceback") {
			c.Traceback = opts.Traceback
		}
		if flags.Changed("max-cells") {
			c.MaxCells = opts.MaxCells
		}
		if flags.Changed("max-work") {
			c.MaxWork = opts.MaxWork
		}
		if flags.Changed("metrics-out") {
			c.MetricsOut = opts.MetricsOut
		}
	})
	if err != nil {
		return err
	}
	log := logger(cmd, cfg)

	m, err := cfg.LoadMatrix()
	if err != nil {
		return err
	}
	recs, err := readRecords(paths)
	if err != nil {
		return err
	}
	ids := make([]string, len(recs))
	seqs := make([]msa.Sequence, len(recs))
	lengths := make([]int, len(recs))
	for i, r := range recs {
		ids[i], seqs[i], lengths[i] = r.ID, r, r.Len()
	}
	log.Info("aligning",
		slog.Int("sequences", len(recs)),
		slog.Any("lengths", lengths),
		slog.String("end_gaps", cfg.EndGaps),
		slog.String("traceback", cfg.Traceback))

	eng, err := msa.NewEngine(m, append(cfg.EngineOptions(), msa.WithLogger(log))...)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	start := time.Now()
	aln, err := eng.Align(seqs...)
	rec.Observe(aln, err, time.Since(start))
	if cfg.MetricsOut != "" {
		if werr := rec.WriteFile(cfg.MetricsOut); werr != nil {
			log.Warn("metrics not written", slog.String("path", cfg.MetricsOut), slog.Any("error", werr))
		}
	}
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}
	log.Info("aligned", slog.Int("score", aln.Score), slog.Int("columns", aln.Columns))

	return output.Write(stdout(cmd), output.Format(cfg.Format), ids, aln)
}
