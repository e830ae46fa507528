package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the snipcomp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(versionString(debug.ReadBuildInfo()))
		},
	}
}

func versionString(info *debug.BuildInfo, ok bool) string {
	if !ok || info.Main.Version == "" {
		return "snipcomp version unknown"
	}

	return "snipcomp " + info.Main.Version + " (" + info.GoVersion + ")"
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
