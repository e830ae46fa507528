package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func sampleReport() m.Report {
	return m.Report{
		Spec:     "spec.md",
		Examples: "examples",
		Results: []m.MatchResult{
			{
				Block:   m.Block{ID: "1", StartLine: 2},
				Example: "examples/s1.yaml",
				Snippet: &m.Snippet{ID: "1"},
				InSync:  true,
			},
			{
				Block:   m.Block{ID: "2", StartLine: 7},
				Example: "examples/s2.yaml",
				Snippet: &m.Snippet{ID: "2"},
				Diff:    "--- a\n+++ b\n-old\n+new\n",
			},
			{
				Block:   m.Block{ID: "30", StartLine: 12},
				Example: "examples/s30.yaml",
				Err:     errors.New("snippet 30 not found in file examples/s30.yaml"),
			},
		},
	}
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCmd()

	tests := []struct {
		format m.Format
		want   interface{}
	}{
		{m.FormatText, &SimpleUI{}},
		{"", &SimpleUI{}},
		{m.FormatTable, &TableUI{}},
		{m.FormatYAML, &YAMLUI{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			ui, err := NewUI(cmd, tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.want, ui)
		})
	}

	_, err := NewUI(cmd, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report format "xml"`)
}

func TestDisplayDocument(t *testing.T) {
	for _, format := range []m.Format{m.FormatText, m.FormatTable, m.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			cmd, out := newTestCmd()
			ui, err := NewUI(cmd, format)
			require.NoError(t, err)

			require.NoError(t, ui.DisplayDocument(context.Background(), []string{"# Title", "```yaml #s1", "a: b", "```"}))
			assert.Equal(t, "# Title\n```yaml #s1\na: b\n```\n", out.String())
		})
	}
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd, Config{})

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))

	want := "Matched block: 1\n" +
		"Matched block: 2 (content differs from s2.yaml)\n" +
		"Unable to match block: 30: snippet 30 not found in file examples/s30.yaml\n" +
		"\n3 block(s): 2 matched, 1 unmatched, 1 out of sync\n"
	assert.Equal(t, want, out.String())
}

func TestSimpleUI_DisplayReport_WithDiff(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd, Config{showDiff: true})

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))
	assert.Contains(t, out.String(), "Matched block: 2 (content differs from s2.yaml)\n    --- a\n    +++ b\n    -old\n    +new\n")
}

func TestSimpleUI_DisplayReport_CanceledContext(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewSimpleUI(cmd, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayReport(ctx, sampleReport()), context.Canceled)
	assert.Empty(t, out.String())
}

func TestTableUI_DisplayReport(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewTableUI(cmd, Config{})

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))

	rendered := out.String()
	assert.Contains(t, rendered, "BLOCK")
	assert.Contains(t, rendered, "STATUS")
	assert.Contains(t, rendered, "s30")
	assert.Contains(t, rendered, "unmatched")
	assert.Contains(t, rendered, "drifted")
	assert.Contains(t, rendered, "snippet 30 not found in file examples/s30.yaml")
	assert.NotContains(t, rendered, "+new")
}

func TestTableUI_DisplayReport_WithDiff(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewTableUI(cmd, Config{showDiff: true})

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))
	assert.Contains(t, out.String(), "-old\n+new\n")
}

func TestYAMLUI_DisplayReport(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewYAMLUI(cmd)

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))

	var doc m.ReportDocument
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, m.Path("spec.md"), doc.Spec)
	assert.Equal(t, 1, doc.Unmatched)
	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, m.Identifier("30"), doc.Blocks[2].ID)
	assert.Equal(t, 13, doc.Blocks[2].Line)
	assert.Equal(t, m.Unmatched, doc.Blocks[2].Status)
}
