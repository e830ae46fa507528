package controller

import (
	"context"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// YAMLUI implements UI encoding reports as YAML for other tools.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

// DisplayDocument prints the merged document.
func (y *YAMLUI) DisplayDocument(ctx context.Context, lines []string) error {
	return writeDocument(ctx, y.cmd, lines)
}

// DisplayReport encodes the report document.
func (y *YAMLUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(report.Document()); err != nil {
		return err
	}

	return encoder.Close()
}
