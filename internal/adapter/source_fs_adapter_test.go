package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	t.Run("returns contents", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "s1.yaml")
		writeTestFile(t, path, "# tag::s1[]\nkey: value\n# end::s1[]\n")

		data, err := adapter.ReadFile(m.Path(path))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(data) != "# tag::s1[]\nkey: value\n# end::s1[]\n" {
			t.Fatalf("ReadFile() = %q", data)
		}
	})

	t.Run("missing file reports not exist", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
		if !os.IsNotExist(err) {
			t.Fatalf("ReadFile() error = %v, want not-exist", err)
		}
	})
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	target := filepath.Join(t.TempDir(), "out", "nested", "merged.md")
	if err := adapter.WriteFile(m.Path(target), []byte("merged\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	if string(data) != "merged\n" {
		t.Fatalf("written content = %q", data)
	}
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	got := adapter.JoinPath("examples", "s007.yaml")
	if got != m.Path(filepath.Join("examples", "s007.yaml")) {
		t.Fatalf("JoinPath() = %s", got)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
