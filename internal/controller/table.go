package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// TableUI implements UI rendering reports as a table.
type TableUI struct {
	cmd *cobra.Command
	cfg Config
}

// NewTableUI creates a new TableUI.
func NewTableUI(cmd *cobra.Command, cfg Config) *TableUI {
	return &TableUI{cmd: cmd, cfg: cfg}
}

// DisplayDocument prints the merged document.
func (t *TableUI) DisplayDocument(ctx context.Context, lines []string) error {
	return writeDocument(ctx, t.cmd, lines)
}

// DisplayReport renders one row per block with a totals footer.
func (t *TableUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := t.cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "\n%s", renderReportTable(report)); err != nil {
		return err
	}

	if !t.cfg.showDiff {
		return nil
	}

	for _, result := range report.Results {
		if result.Status() != m.Drifted || result.Diff == "" {
			continue
		}

		if _, err := fmt.Fprintf(out, "\n%s", result.Diff); err != nil {
			return err
		}
	}

	return nil
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Block", "Line", "Status", "Example", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, result := range report.Results {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		}

		table.Append([]string{
			"s" + string(result.Block.ID),
			fmt.Sprintf("%d", result.Block.StartLine+1),
			string(result.Status()),
			string(result.Example),
			detail,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Results)),
		"",
		fmt.Sprintf("%d matched", report.Matched()),
		fmt.Sprintf("%d unmatched", report.Unmatched()),
		fmt.Sprintf("%d out of sync", report.Drifted()),
	})

	table.Render()

	return tableBuffer.String()
}
