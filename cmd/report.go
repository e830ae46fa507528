package cmd

import (
	"github.com/spf13/cobra"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Check that every snippet block has a matching example",
		Long: `Resolve every snippet block against the examples directory and list the
outcome per block. All blocks are checked; the command fails afterwards if
any block could not be matched.

` + blockFormatHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, m.ModeReport)
		},
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
