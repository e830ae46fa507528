package domain

import (
	"errors"
	"fmt"
	"io/fs"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

// Error kinds. The typed errors below unwrap to these so callers can test
// with errors.Is without caring about the payload.
var (
	ErrSpecFileNotFound    = errors.New("spec file not found")
	ErrUnclosedBlock       = errors.New("unclosed yaml block")
	ErrExampleFileNotFound = errors.New("example file not found")
	ErrSnippetNotFound     = errors.New("snippet not found")
	ErrUnmatchedBlocks     = errors.New("unable to match all blocks")
	ErrDriftedBlocks       = errors.New("blocks out of sync with examples")
)

// SpecFileNotFoundError reports a spec document that could not be read.
type SpecFileNotFoundError struct {
	Path m.Path
	Err  error
}

func (e *SpecFileNotFoundError) Error() string {
	return fmt.Sprintf("error opening spec file '%s': %v", e.Path, osCause(e.Err))
}

func (e *SpecFileNotFoundError) Unwrap() []error {
	return []error{ErrSpecFileNotFound, e.Err}
}

// UnclosedBlockError reports a block that was still open when another start
// marker or the end of the document was reached.
type UnclosedBlockError struct {
	// Open is the block that was never closed.
	Open m.Block
	// Line is the offending start marker; empty when AtEOF is set.
	Line       string
	LineNumber int // one-based
	AtEOF      bool
}

func (e *UnclosedBlockError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("unclosed yaml block #s%s before end of file", e.Open.ID)
	}

	return fmt.Sprintf("unclosed yaml block #s%s before text '%s' (line %d)", e.Open.ID, e.Line, e.LineNumber)
}

func (e *UnclosedBlockError) Unwrap() error {
	return ErrUnclosedBlock
}

// ExampleFileNotFoundError reports an example file that could not be read.
type ExampleFileNotFoundError struct {
	Path m.Path
	Err  error
}

func (e *ExampleFileNotFoundError) Error() string {
	return fmt.Sprintf("error opening file '%s': %v", e.Path, osCause(e.Err))
}

func (e *ExampleFileNotFoundError) Unwrap() []error {
	return []error{ErrExampleFileNotFound, e.Err}
}

// SnippetCause tells apart the ways a tagged region can be missing. It is not
// part of the error message, which stays the same for every cause.
type SnippetCause int

const (
	// CauseStartTagMissing means no start tag was found.
	CauseStartTagMissing SnippetCause = iota
	// CauseEndTagMissing means the start tag was found but the file ended
	// before the end tag.
	CauseEndTagMissing
	// CauseEmptyRegion means both tags were found around blank lines only.
	CauseEmptyRegion
)

func (c SnippetCause) String() string {
	switch c {
	case CauseStartTagMissing:
		return "start tag missing"
	case CauseEndTagMissing:
		return "end tag missing"
	case CauseEmptyRegion:
		return "empty region"
	}

	return "unknown"
}

// SnippetNotFoundError reports an example file without a usable tagged region.
type SnippetNotFoundError struct {
	ID    m.Identifier
	Path  m.Path
	Cause SnippetCause
}

func (e *SnippetNotFoundError) Error() string {
	return fmt.Sprintf("snippet %s not found in file %s", e.ID, e.Path)
}

func (e *SnippetNotFoundError) Unwrap() error {
	return ErrSnippetNotFound
}

// osCause drops the *fs.PathError wrapper, whose path the callers already
// print.
func osCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
