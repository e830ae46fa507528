// Package cmd provides the root command and CLI setup for snipcomp.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snipcomp.dev/pkg/snipcomp/internal/adapter"
	"snipcomp.dev/pkg/snipcomp/internal/controller"
	"snipcomp.dev/pkg/snipcomp/internal/domain"
	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// workflowFactory builds the workflow for a command invocation. Tests replace
// it to inject a mock.
var workflowFactory = newDefaultWorkflow

const blockFormatHelp = `Snippets in the spec are fenced blocks opened by a line of the form
` + "```yaml #sN" + ` where N is a decimal identifier, and closed by ` + "```" + `.
Examples live in files named after the identifier, e.g. s1.yaml, and mark
the snippet with the comment lines # tag::s1[] and # end::s1[].`

const rootLongDescription = `Parse a spec file for YAML snippet blocks and either substitute the
matching snippet from the examples directory (merged spec on stdout) or
report whether every referenced snippet exists.

` + blockFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snipcomp",
		Short: "Keep YAML snippets in a spec in sync with example files",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, m.Mode(viper.GetString(outputKey)))
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(specPathFlagName, "s", viper.GetString(specPathKey), "path to the spec file")
	bindFlagToConfig(flags.Lookup(specPathFlagName), specPathKey)

	flags.StringP(examplePathFlagName, "e", viper.GetString(examplePathKey), "path to the example directory")
	bindFlagToConfig(flags.Lookup(examplePathFlagName), examplePathKey)

	flags.Bool(strictTagsFlagName, viper.GetBool(tagsStrictKey), "require a space between '#' and the tag keyword in example files")
	bindFlagToConfig(flags.Lookup(strictTagsFlagName), tagsStrictKey)

	flags.String(outFlagName, viper.GetString(outKey), "write the merged spec to this file instead of stdout")
	bindFlagToConfig(flags.Lookup(outFlagName), outKey)

	flags.StringP(formatFlagName, "f", viper.GetString(reportFormatKey), "report format: text, table or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), reportFormatKey)

	flags.Bool(diffFlagName, viper.GetBool(reportDiffKey), "show a unified diff for blocks that differ from their snippet")
	bindFlagToConfig(flags.Lookup(diffFlagName), reportDiffKey)

	flags.Bool(strictFlagName, viper.GetBool(reportStrictKey), "fail the report when a block differs from its snippet")
	bindFlagToConfig(flags.Lookup(strictFlagName), reportStrictKey)

	flags.String(reportFileFlagName, viper.GetString(reportFileKey), "also store the report as YAML in this file")
	bindFlagToConfig(flags.Lookup(reportFileFlagName), reportFileKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(outputKey), "output mode: substitute or report")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runMode validates the shared arguments and dispatches to the workflow.
func runMode(cmd *cobra.Command, mode m.Mode) error {
	specPath := m.Path(viper.GetString(specPathKey))
	examplePath := m.Path(viper.GetString(examplePathKey))

	if specPath == "" {
		return fmt.Errorf("required flag \"%s\" not set", specPathFlagName)
	}

	if examplePath == "" {
		return fmt.Errorf("required flag \"%s\" not set", examplePathFlagName)
	}

	if mode != m.ModeSubstitute && mode != m.ModeReport {
		return fmt.Errorf("unknown output mode %q (want %s or %s)", mode, m.ModeSubstitute, m.ModeReport)
	}

	// Arguments are valid; failures from here on are not usage errors.
	cmd.SilenceUsage = true

	wf, err := workflowFactory(cmd)
	if err != nil {
		return err
	}

	if mode == m.ModeReport {
		return wf.Report(cmd.Context(), domain.ReportArgs{
			Spec:       specPath,
			Examples:   examplePath,
			ReportFile: m.Path(viper.GetString(reportFileKey)),
			Strict:     viper.GetBool(reportStrictKey),
		})
	}

	return wf.Substitute(cmd.Context(), domain.SubstituteArgs{
		Spec:     specPath,
		Examples: examplePath,
		Out:      m.Path(viper.GetString(outKey)),
	})
}

func newDefaultWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	ui, err := controller.NewUI(cmd,
		m.Format(viper.GetString(reportFormatKey)),
		controller.WithDiff(viper.GetBool(reportDiffKey)),
	)
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	locator := domain.NewLocator(fsAdapter, domain.WithStrictTags(viper.GetBool(tagsStrictKey)))

	return domain.NewWorkflow(fsAdapter, adapter.NewReportStore(fsAdapter), ui, locator), nil
}
