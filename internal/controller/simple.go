package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// SimpleUI implements UI with one plain text line per block.
type SimpleUI struct {
	cmd *cobra.Command
	cfg Config
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, cfg Config) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: cfg}
}

// DisplayDocument prints the merged document.
func (s *SimpleUI) DisplayDocument(ctx context.Context, lines []string) error {
	return writeDocument(ctx, s.cmd, lines)
}

// DisplayReport prints a confirmation or failure line for every block,
// followed by a summary.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, result := range report.Results {
		if err := s.outPrintf("%s\n", resultLine(result)); err != nil {
			return err
		}

		if s.cfg.showDiff && result.Status() == m.Drifted && result.Diff != "" {
			if err := s.outPrintf("%s", indent(result.Diff, "    ")); err != nil {
				return err
			}
		}
	}

	return s.outPrintf("\n%s\n", summaryLine(report))
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func resultLine(result m.MatchResult) string {
	switch result.Status() {
	case m.Unmatched:
		return fmt.Sprintf("Unable to match block: %s: %v", result.Block.ID, result.Err)
	case m.Drifted:
		return fmt.Sprintf("Matched block: %s (content differs from %s)", result.Block.ID, filepath.Base(string(result.Example)))
	case m.Matched:
	}

	return fmt.Sprintf("Matched block: %s", result.Block.ID)
}

func summaryLine(report m.Report) string {
	return fmt.Sprintf("%d block(s): %d matched, %d unmatched, %d out of sync",
		len(report.Results), report.Matched(), report.Unmatched(), report.Drifted())
}

func indent(text, prefix string) string {
	var b strings.Builder

	for _, line := range m.SplitLines(text) {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
