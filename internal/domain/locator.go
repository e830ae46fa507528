package domain

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"snipcomp.dev/pkg/snipcomp/internal/adapter"
	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const (
	examplePrefix = "s"
	exampleSuffix = ".yaml"
)

// Locator finds the tagged region for a snippet identifier inside the
// examples directory.
type Locator interface {
	// ExamplePath returns the conventional example file for id.
	ExamplePath(root m.Path, id m.Identifier) m.Path
	// Locate reads the example file for id and extracts its tagged region.
	Locate(ctx context.Context, root m.Path, id m.Identifier) (m.Snippet, error)
}

// LocatorOption configures a Locator.
type LocatorOption func(*locator)

// WithStrictTags requires at least one space between '#' and the tag
// keyword. By default any amount of whitespace, including none, is accepted.
func WithStrictTags(strict bool) LocatorOption {
	return func(l *locator) {
		l.strict = strict
	}
}

type locator struct {
	fs     adapter.SourceFSAdapter
	strict bool
}

// NewLocator constructs a Locator reading example files through fs.
func NewLocator(fs adapter.SourceFSAdapter, opts ...LocatorOption) Locator {
	l := &locator{fs: fs}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *locator) ExamplePath(root m.Path, id m.Identifier) m.Path {
	return l.fs.JoinPath(string(root), examplePrefix+string(id)+exampleSuffix)
}

func (l *locator) Locate(ctx context.Context, root m.Path, id m.Identifier) (m.Snippet, error) {
	if err := ctx.Err(); err != nil {
		return m.Snippet{}, err
	}

	path := l.ExamplePath(root, id)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		slog.Debug("example file not readable", "id", id, "path", path, "error", err)
		return m.Snippet{}, &ExampleFileNotFoundError{Path: path, Err: err}
	}

	body, cause, ok := ExtractSnippet(string(data), id, l.strict)
	if !ok {
		slog.Debug("snippet not found", "id", id, "path", path, "cause", cause.String())
		return m.Snippet{}, &SnippetNotFoundError{ID: id, Path: path, Cause: cause}
	}

	slog.Debug("snippet located", "id", id, "path", path, "lines", len(body))

	return m.Snippet{ID: id, Path: path, Body: body}, nil
}

// ExtractSnippet returns the lines between the start and end tags for id.
// Tag lines are excluded and the scan stops at the first end tag. ok is false
// when no complete, non-blank region exists; cause then says why.
func ExtractSnippet(content string, id m.Identifier, strict bool) (body []string, cause SnippetCause, ok bool) {
	start, end := tagPatterns(id, strict)

	var capturing, started, ended bool

	body = []string{}

	for _, line := range m.SplitLines(content) {
		trimmed := strings.TrimSpace(line)

		if start.MatchString(trimmed) {
			capturing = true
			started = true

			continue
		}

		if end.MatchString(trimmed) {
			ended = true
			break
		}

		if capturing {
			body = append(body, line)
		}
	}

	switch {
	case !started:
		return nil, CauseStartTagMissing, false
	case !ended:
		return nil, CauseEndTagMissing, false
	case isBlank(body):
		return nil, CauseEmptyRegion, false
	}

	return body, 0, true
}

func tagPatterns(id m.Identifier, strict bool) (start, end *regexp.Regexp) {
	gap := `\s*`
	if strict {
		gap = ` +`
	}

	name := `s` + regexp.QuoteMeta(string(id)) + `\[\]`

	return regexp.MustCompile(`#` + gap + `tag::` + name),
		regexp.MustCompile(`#` + gap + `end::` + name)
}

func isBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}

	return true
}
