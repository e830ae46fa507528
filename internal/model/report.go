package model

// Mode selects what a run produces.
type Mode string

const (
	// ModeSubstitute splices snippet bodies into the spec document.
	ModeSubstitute Mode = "substitute"
	// ModeReport validates every block and lists the outcome.
	ModeReport Mode = "report"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatText prints one line per block.
	FormatText Format = "text"
	// FormatTable renders the report as a table.
	FormatTable Format = "table"
	// FormatYAML encodes the report as YAML.
	FormatYAML Format = "yaml"
)

// MatchStatus is the outcome of resolving one block.
type MatchStatus string

const (
	// Matched means the snippet was found and equals the block content.
	Matched MatchStatus = "matched"
	// Drifted means the snippet was found but the block content differs.
	Drifted MatchStatus = "drifted"
	// Unmatched means the example file or the tagged region is missing.
	Unmatched MatchStatus = "unmatched"
)

// MatchResult represents the result of resolving a block against the
// examples directory.
type MatchResult struct {
	Block   Block
	Example Path     // example file that was consulted
	Snippet *Snippet // nil when Err is set
	Err     error
	InSync  bool   // snippet body equals the block content
	Diff    string // unified diff when the block drifted
}

// Found reports whether the snippet was located.
func (r MatchResult) Found() bool {
	return r.Err == nil && r.Snippet != nil
}

// Status classifies the result.
func (r MatchResult) Status() MatchStatus {
	switch {
	case !r.Found():
		return Unmatched
	case !r.InSync:
		return Drifted
	default:
		return Matched
	}
}

// Report collects the results of a report-mode run in document order.
type Report struct {
	Spec     Path
	Examples Path
	Results  []MatchResult
}

// Matched returns the number of blocks whose snippet was found.
func (r Report) Matched() int {
	count := 0

	for _, result := range r.Results {
		if result.Found() {
			count++
		}
	}

	return count
}

// Unmatched returns the number of blocks that could not be resolved.
func (r Report) Unmatched() int {
	return len(r.Results) - r.Matched()
}

// Drifted returns the number of found snippets that differ from the block.
func (r Report) Drifted() int {
	count := 0

	for _, result := range r.Results {
		if result.Status() == Drifted {
			count++
		}
	}

	return count
}

// OK is true when every block was matched.
func (r Report) OK() bool {
	return r.Unmatched() == 0
}

// ReportEntry is the serializable form of a MatchResult.
type ReportEntry struct {
	ID      Identifier  `yaml:"id"`
	Line    int         `yaml:"line"`
	Status  MatchStatus `yaml:"status"`
	Example Path        `yaml:"example,omitempty"`
	Reason  string      `yaml:"reason,omitempty"`
}

// ReportDocument is the serializable form of a Report.
type ReportDocument struct {
	Spec      Path          `yaml:"spec"`
	Examples  Path          `yaml:"examples"`
	Matched   int           `yaml:"matched"`
	Unmatched int           `yaml:"unmatched"`
	Drifted   int           `yaml:"drifted"`
	Blocks    []ReportEntry `yaml:"blocks"`
}

// Document converts the report into its serializable form. Line numbers are
// one-based.
func (r Report) Document() ReportDocument {
	entries := make([]ReportEntry, 0, len(r.Results))

	for _, result := range r.Results {
		entry := ReportEntry{
			ID:      result.Block.ID,
			Line:    result.Block.StartLine + 1,
			Status:  result.Status(),
			Example: result.Example,
		}
		if result.Err != nil {
			entry.Reason = result.Err.Error()
		}

		entries = append(entries, entry)
	}

	return ReportDocument{
		Spec:      r.Spec,
		Examples:  r.Examples,
		Matched:   r.Matched(),
		Unmatched: r.Unmatched(),
		Drifted:   r.Drifted(),
		Blocks:    entries,
	}
}
