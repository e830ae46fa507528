package model

// Block is one fenced region of a spec document.
type Block struct {
	ID Identifier
	// StartLine and EndLine are zero-based indices of the opening and
	// closing fence lines.
	StartLine int
	EndLine   int
	Fence     string   // opening fence line, verbatim
	Content   []string // raw lines between the fences
}

// Snippet is the tagged region extracted from an example file.
type Snippet struct {
	ID   Identifier
	Path Path
	Body []string
}

// Text renders the snippet body with a newline after every line.
func (s Snippet) Text() string {
	return JoinLines(s.Body)
}
