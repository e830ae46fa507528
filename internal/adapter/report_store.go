package adapter

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const reportFilePerm = 0o644

// ReportStore persists report-mode results.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.ReportDocument, error)
}

type yamlReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore that keeps reports as YAML files.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

// SaveReport encodes the report as YAML and writes it to path.
func (s *yamlReportStore) SaveReport(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(report.Document())
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := s.fs.WriteFile(path, data, reportFilePerm); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Debug("saved report", "path", path, "blocks", len(report.Results))

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *yamlReportStore) LoadReport(path m.Path) (m.ReportDocument, error) {
	var doc m.ReportDocument

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read report %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode report %s: %w", path, err)
	}

	return doc, nil
}
