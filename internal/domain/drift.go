package domain

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const diffContextLines = 3

// compareBlock reports whether the block still holds the snippet body and,
// when it does not, a unified diff from the block to the snippet.
func compareBlock(block m.Block, snippet m.Snippet) (bool, string, error) {
	if slices.Equal(block.Content, snippet.Body) {
		return true, "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(m.JoinLines(block.Content)),
		B:        difflib.SplitLines(snippet.Text()),
		FromFile: fmt.Sprintf("block #s%s (line %d)", block.ID, block.StartLine+1),
		ToFile:   string(snippet.Path),
		Context:  diffContextLines,
	})
	if err != nil {
		return false, "", fmt.Errorf("diff block #s%s: %w", block.ID, err)
	}

	return false, diff, nil
}
