// Command lvmsa computes exact multiple sequence alignments.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmsa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
