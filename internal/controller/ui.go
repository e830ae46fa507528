// Package controller renders snipcomp results for the user.
package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// UI defines how results leave the process.
// Implementations differ only in how reports are rendered.
type UI interface {
	// DisplayDocument writes the merged spec document.
	DisplayDocument(ctx context.Context, lines []string) error
	// DisplayReport writes the outcome of a report-mode run.
	DisplayReport(ctx context.Context, report m.Report) error
}

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds rendering settings shared by all UIs.
type Config struct {
	showDiff bool
}

// WithDiff prints a unified diff under every drifted block.
func WithDiff(show bool) Option {
	return func(c *Config) {
		c.showDiff = show
	}
}

// NewUI returns the UI for format, writing to the command's output streams.
func NewUI(cmd *cobra.Command, format m.Format, options ...Option) (UI, error) {
	cfg := Config{}
	for _, option := range options {
		option(&cfg)
	}

	switch format {
	case m.FormatText, "":
		return NewSimpleUI(cmd, cfg), nil
	case m.FormatTable:
		return NewTableUI(cmd, cfg), nil
	case m.FormatYAML:
		return NewYAMLUI(cmd), nil
	}

	return nil, fmt.Errorf("unknown report format %q (want %s, %s or %s)", format, m.FormatText, m.FormatTable, m.FormatYAML)
}

// writeDocument is shared by every UI: the merged document is always plain
// text on stdout.
func writeDocument(ctx context.Context, cmd *cobra.Command, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), m.JoinLines(lines))

	return err
}
