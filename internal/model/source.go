// Package model defines the data structures shared by the scanner, the
// snippet locator and the output layers.
package model

import "strings"

// Path represents a file system path.
type Path string

// Identifier names a snippet. It is kept as the exact digit string found in
// the spec so that leading zeros survive into example file names.
type Identifier string

// Document is a spec file split into lines without terminators.
type Document struct {
	Path  Path
	Lines []string
}

// NewDocument splits content into lines. A trailing newline does not produce
// an extra empty line and a single trailing carriage return is dropped from
// each line.
func NewDocument(path Path, content string) Document {
	return Document{Path: path, Lines: SplitLines(content)}
}

// SplitLines breaks text on '\n', tolerating CRLF endings.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// JoinLines renders lines with a '\n' after every line, including the last.
func JoinLines(lines []string) string {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
