package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default snipcomp.yaml configuration file",
		Long: `Create a snipcomp.yaml in the current working directory holding the spec
and example paths plus the current defaults, so later runs need no flags.
An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				return fmt.Errorf("write %s: %w", configPath, err)
			}

			cmd.Printf("wrote %s\n", configPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
