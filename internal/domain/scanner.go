package domain

import (
	"iter"
	"regexp"
	"strings"

	m "snipcomp.dev/pkg/snipcomp/internal/model"
)

const closingFence = "```"

// startPattern matches the trimmed opening fence of a snippet block. Anything
// after the digits is ignored.
var startPattern = regexp.MustCompile("^```yaml #s(\\d+)")

// scanState is the block scanner state: outside any block, or inside the
// block held in block.
type scanState struct {
	inside bool
	block  m.Block
}

// step folds one line into the state. done is set when the line closed a
// block.
func (s scanState) step(index int, line string) (next scanState, done *m.Block, err error) {
	trimmed := strings.TrimSpace(line)

	if id, ok := matchStart(trimmed); ok {
		if s.inside {
			return s, nil, &UnclosedBlockError{Open: s.block, Line: line, LineNumber: index + 1}
		}

		return scanState{
			inside: true,
			block:  m.Block{ID: id, StartLine: index, Fence: line, Content: []string{}},
		}, nil, nil
	}

	if !s.inside {
		return s, nil, nil
	}

	if trimmed == closingFence {
		closed := s.block
		closed.EndLine = index

		return scanState{}, &closed, nil
	}

	s.block.Content = append(s.block.Content, line)

	return s, nil, nil
}

func matchStart(trimmed string) (m.Identifier, bool) {
	match := startPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", false
	}

	return m.Identifier(match[1]), true
}

// Blocks yields the snippet blocks of doc in document order. A structural
// error is yielded once as the last element.
func Blocks(doc m.Document) iter.Seq2[m.Block, error] {
	return func(yield func(m.Block, error) bool) {
		state := scanState{}

		for index, line := range doc.Lines {
			next, done, err := state.step(index, line)
			if err != nil {
				yield(m.Block{}, err)
				return
			}

			state = next

			if done != nil && !yield(*done, nil) {
				return
			}
		}

		if state.inside {
			yield(m.Block{}, &UnclosedBlockError{Open: state.block, AtEOF: true})
		}
	}
}

// Scan returns every block of doc, or the first structural error.
func Scan(doc m.Document) ([]m.Block, error) {
	blocks := []m.Block{}

	for block, err := range Blocks(doc) {
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}
