package cmd

import (
	"github.com/spf13/cobra"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// substituteCmd represents the substitute command.
var substituteCmd = newSubstituteCmd()

func newSubstituteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substitute",
		Short: "Print the spec with every snippet block filled from the examples",
		Long: `Replace the content of every snippet block with the tagged region of its
example file and print the merged spec. The first block that cannot be
matched aborts the run and nothing is printed.

` + blockFormatHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, m.ModeSubstitute)
		},
	}
}

func init() {
	rootCmd.AddCommand(substituteCmd)
}
