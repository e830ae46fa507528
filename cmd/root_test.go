package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snipcomp.dev/pkg/snipcomp/internal/domain"
	domainmocks "snipcomp.dev/pkg/snipcomp/internal/domain/mocks"
	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// newTestRootCmd builds a root command with all subcommands, logging into a
// temp dir.
func newTestRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newSubstituteCmd(), newReportCmd(), newInitCmd(), newVersionCmd())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	require.NoError(t, cmd.PersistentFlags().Set(logFileFlagName, filepath.Join(t.TempDir(), "snipcomp.log")))

	return cmd, stdout, stderr
}

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalFactory := workflowFactory
	workflowFactory = func(*cobra.Command) (domain.Workflow, error) { return mockWorkflow, nil }

	t.Cleanup(func() { workflowFactory = originalFactory })

	return mockWorkflow
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "snipcomp", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("s"))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("e"))
	assert.NotNil(t, cmd.Flags().ShorthandLookup("o"))
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "tag::s1[]")
}

func TestRootCmd_UnknownFlagPrintsUsage(t *testing.T) {
	cmd, _, stderr := newTestRootCmd(t)
	cmd.SetArgs([]string{"-x", "notthere"})

	require.Error(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Contains(t, stderr.String(), "--spec-path")
}

func TestRootCmd_MissingPaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no spec", []string{"-e", "examples"}, `required flag "spec-path" not set`},
		{"no examples", []string{"-s", "spec.md"}, `required flag "example-path" not set`},
		{"bad mode", []string{"-s", "spec.md", "-e", "examples", "-o", "print"}, `unknown output mode "print"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			cmd, _, stderr := newTestRootCmd(t)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, stderr.String(), "Usage:")
			mockWorkflow.AssertNotCalled(t, "Substitute", mock.Anything, mock.Anything)
		})
	}
}

func TestRootCmd_SubstituteByDefault(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Substitute(mock.Anything, domain.SubstituteArgs{
		Spec:     "spec.md",
		Examples: "examples",
	}).Return(nil)

	cmd.SetArgs([]string{"-s", "spec.md", "-e", "examples"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ReportMode(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, stderr := newTestRootCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, domain.ReportArgs{
		Spec:     "spec.md",
		Examples: "examples",
	}).Return(fmt.Errorf("%w: 1 of 3 block(s) failed", domain.ErrUnmatchedBlocks))

	cmd.SetArgs([]string{"--spec-path", "spec.md", "--example-path", "examples", "-o", "report"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnmatchedBlocks)
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestReportCmd_PassesOptions(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Report(mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Spec == m.Path("spec.md") &&
			args.Examples == m.Path("examples") &&
			args.ReportFile == m.Path("out/report.yaml") &&
			args.Strict
	})).Return(nil)

	cmd.SetArgs([]string{"report", "-s", "spec.md", "-e", "examples", "--report-file", "out/report.yaml", "--strict"})
	require.NoError(t, cmd.Execute())
}

func TestSubstituteCmd_OutFile(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Substitute(mock.Anything, domain.SubstituteArgs{
		Spec:     "spec.md",
		Examples: "examples",
		Out:      "merged.md",
	}).Return(nil)

	cmd.SetArgs([]string{"substitute", "-s", "spec.md", "-e", "examples", "--out", "merged.md"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_WorkflowFactoryError(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"report", "-s", "spec.md", "-e", "examples", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report format "xml"`)
}

func TestRootCmd_Substitute_EndToEnd(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"-s", "testdata/onematch.md", "-e", "testdata/examples"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"# Spec\n\n```yaml #s1\ntosca_definitions_version: tosca_2_0\ndescription: minimal template\n```\n",
		stdout.String(),
	)
}

func TestRootCmd_Substitute_EndToEnd_FailureWritesNothing(t *testing.T) {
	cmd, stdout, stderr := newTestRootCmd(t)
	cmd.SetArgs([]string{"-s", "testdata/testspec.md", "-e", "testdata/examples"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExampleFileNotFound)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), filepath.Join("testdata", "examples", "s2.yaml"))
}

func TestRootCmd_SpecFileMissing_EndToEnd(t *testing.T) {
	cmd, _, stderr := newTestRootCmd(t)
	cmd.SetArgs([]string{"-s", "testdata/not_there.md", "-e", "testdata/examples"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSpecFileNotFound))
	assert.Contains(t, stderr.String(), "testdata/not_there")
}

func TestRootCmd_Report_EndToEnd(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"-s", "testdata/testspec.md", "-e", "testdata/examples", "-o", "report"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnmatchedBlocks)
	assert.Contains(t, stdout.String(), "Matched block: 1 (content differs from s1.yaml)\n")
	assert.Contains(t, stdout.String(), "Unable to match block: 2: error opening file")
	assert.Contains(t, stdout.String(), "2 block(s): 1 matched, 1 unmatched, 1 out of sync")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.NotNil(t, workflowFactory)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup(specPathFlagName))

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"substitute", "report", "init", "version"})
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	// Create a mock command that succeeds
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not panic or exit
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		// This runs in the subprocess
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	// Parent process: spawn subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
