package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMatrixCommand prints the effective scoring matrix.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the scoring matrix in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.resolve(cmd, nil)
			if err != nil {
				return err
			}
			m, err := cfg.LoadMatrix()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())

			return err
		},
	}
}
