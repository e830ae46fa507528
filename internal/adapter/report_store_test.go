package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "reports", "snipcomp.yaml"))

	report := m.Report{
		Spec:     "spec.md",
		Examples: "examples",
		Results: []m.MatchResult{
			{
				Block:   m.Block{ID: "1", StartLine: 2, EndLine: 4},
				Example: "examples/s1.yaml",
				Snippet: &m.Snippet{ID: "1", Body: []string{"a: b"}},
				InSync:  true,
			},
			{
				Block:   m.Block{ID: "2", StartLine: 8, EndLine: 9},
				Example: "examples/s2.yaml",
				Err:     errors.New("snippet 2 not found in file examples/s2.yaml"),
			},
		},
	}

	require.NoError(t, store.SaveReport(path, report))

	doc, err := store.LoadReport(path)
	require.NoError(t, err)

	assert.Equal(t, m.Path("spec.md"), doc.Spec)
	assert.Equal(t, 1, doc.Matched)
	assert.Equal(t, 1, doc.Unmatched)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, m.ReportEntry{ID: "1", Line: 3, Status: m.Matched, Example: "examples/s1.yaml"}, doc.Blocks[0])
	assert.Equal(t, m.Unmatched, doc.Blocks[1].Status)
	assert.Contains(t, doc.Blocks[1].Reason, "snippet 2 not found")
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore(NewLocalSourceFSAdapter())

	_, err := store.LoadReport(m.Path(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReportStore_LoadInvalidYAML(t *testing.T) {
	store := NewReportStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, path, "blocks: [unterminated\n")

	_, err := store.LoadReport(m.Path(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}
