package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmsa/internal/config"
	"github.com/katalvlaran/lvmsa/internal/output"
	"github.com/katalvlaran/lvmsa/msa"
	"github.com/katalvlaran/lvmsa/pairwise"
)

// NewPairwiseCommand creates the pairwise command.
func NewPairwiseCommand(rootOpts *RootOptions) *cobra.Command {
	var marker string

	cmd := &cobra.Command{
		Use:   "pairwise <fasta>",
		Short: "Needleman–Wunsch alignment of the first two records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.resolve(cmd, func(c *config.Config) {
				if cmd.Flags().Changed("gap-marker") {
					c.GapMarker = marker
				}
			})
			if err != nil {
				return err
			}
			m, err := cfg.LoadMatrix()
			if err != nil {
				return err
			}
			recs, err := readRecords(args)
			if err != nil {
				return err
			}
			if len(recs) < 2 {
				return fmt.Errorf("pairwise: need two records, got %d: %w", len(recs), msa.ErrDegenerateInput)
			}

			res, err := pairwise.Global(m, recs[0].Seq, recs[1].Seq,
				pairwise.WithGapMarker(cfg.GapMarker[0]))
			if err != nil {
				return fmt.Errorf("%w: %w", msa.ErrInvalidInput, err)
			}
			aln := &msa.Alignment{
				Rows:    []string{res.A, res.B},
				Score:   res.Score,
				Columns: len(res.A),
			}

			return output.Write(stdout(cmd), output.Format(cfg.Format),
				[]string{recs[0].ID, recs[1].ID}, aln)
		},
	}
	cmd.Flags().StringVar(&marker, "gap-marker", config.Default().GapMarker, "gap character in output rows")

	return cmd
}
