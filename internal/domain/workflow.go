// Package domain holds the block scanner, the snippet locator and the
// workflow that drives them in substitute or report mode.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"snipcomp.dev/pkg/snipcomp/internal/adapter"
	"snipcomp.dev/pkg/snipcomp/internal/controller"
	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const outputFilePerm = 0o644

// SubstituteArgs contains the arguments for a substitute-mode run.
type SubstituteArgs struct {
	Spec     m.Path
	Examples m.Path
	// Out receives the merged document instead of the UI when set.
	Out m.Path
}

// ReportArgs contains the arguments for a report-mode run.
type ReportArgs struct {
	Spec     m.Path
	Examples m.Path
	// ReportFile additionally stores the report as YAML when set.
	ReportFile m.Path
	// Strict fails the run when a found snippet differs from its block.
	Strict bool
}

// Workflow runs one of the two modes over a spec document.
type Workflow interface {
	Substitute(ctx context.Context, args SubstituteArgs) error
	Report(ctx context.Context, args ReportArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Locator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	locator Locator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Locator:         locator,
	}
}

// Substitute splices every block's snippet into the spec and emits the
// result once. The first failure aborts the run and nothing is emitted.
func (w *workflow) Substitute(ctx context.Context, args SubstituteArgs) error {
	doc, err := w.readSpec(args.Spec)
	if err != nil {
		return err
	}

	merged, err := w.merge(ctx, doc, args.Examples)
	if err != nil {
		slog.Error("substitution failed", "spec", args.Spec, "error", err)
		return err
	}

	if args.Out != "" {
		if err := w.WriteFile(args.Out, []byte(m.JoinLines(merged)), outputFilePerm); err != nil {
			return fmt.Errorf("write output %s: %w", args.Out, err)
		}

		slog.Info("merged document written", "spec", args.Spec, "out", args.Out)

		return nil
	}

	if err := w.DisplayDocument(ctx, merged); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) merge(ctx context.Context, doc m.Document, examples m.Path) ([]string, error) {
	merged := make([]string, 0, len(doc.Lines))
	next := 0

	for block, err := range Blocks(doc) {
		if err != nil {
			return nil, err
		}

		snippet, err := w.Locate(ctx, examples, block.ID)
		if err != nil {
			return nil, err
		}

		merged = append(merged, doc.Lines[next:block.StartLine+1]...)
		merged = append(merged, snippet.Body...)
		merged = append(merged, doc.Lines[block.EndLine])
		next = block.EndLine + 1

		slog.Debug("block substituted", "id", block.ID, "line", block.StartLine+1, "lines", len(snippet.Body))
	}

	return append(merged, doc.Lines[next:]...), nil
}

// Report resolves every block, renders the full report and only then fails
// if any block was left unmatched.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	doc, err := w.readSpec(args.Spec)
	if err != nil {
		return err
	}

	report, err := w.collect(ctx, doc, args.Examples)
	if err != nil {
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		slog.Error("Failed to display report", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.ReportFile != "" {
		if err := w.SaveReport(args.ReportFile, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	slog.Info("report complete",
		"spec", args.Spec,
		"blocks", len(report.Results),
		"unmatched", report.Unmatched(),
		"drifted", report.Drifted(),
	)

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d block(s) failed", ErrUnmatchedBlocks, report.Unmatched(), len(report.Results))
	}

	if args.Strict && report.Drifted() > 0 {
		return fmt.Errorf("%w: %d block(s)", ErrDriftedBlocks, report.Drifted())
	}

	return nil
}

// collect records a result per block. Lookup failures are recorded and the
// scan continues; a structural error is recorded against the open block and
// ends the scan.
func (w *workflow) collect(ctx context.Context, doc m.Document, examples m.Path) (m.Report, error) {
	report := m.Report{Spec: doc.Path, Examples: examples, Results: []m.MatchResult{}}

	for block, err := range Blocks(doc) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		if err != nil {
			var unclosed *UnclosedBlockError
			if errors.As(err, &unclosed) {
				block = unclosed.Open
			}

			report.Results = append(report.Results, m.MatchResult{Block: block, Err: err})

			break
		}

		result, err := w.resolve(ctx, examples, block)
		if err != nil {
			return report, err
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (w *workflow) resolve(ctx context.Context, examples m.Path, block m.Block) (m.MatchResult, error) {
	result := m.MatchResult{Block: block, Example: w.ExamplePath(examples, block.ID)}

	snippet, err := w.Locate(ctx, examples, block.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		slog.Debug("unable to match block", "id", block.ID, "line", block.StartLine+1, "error", err)
		result.Err = err

		return result, nil
	}

	inSync, diff, err := compareBlock(block, snippet)
	if err != nil {
		return result, err
	}

	result.Snippet = &snippet
	result.InSync = inSync
	result.Diff = diff

	return result, nil
}

func (w *workflow) readSpec(path m.Path) (m.Document, error) {
	data, err := w.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read spec file", "path", path, "error", err)
		return m.Document{}, &SpecFileNotFoundError{Path: path, Err: err}
	}

	doc := m.NewDocument(path, string(data))
	slog.Debug("spec loaded", "path", path, "lines", len(doc.Lines))

	return doc, nil
}
