package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(start, end Position) Location {
	return Location{Start: start, End: end}
}

func (l Location) String() string {
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// SplitLines splits source content into lines without their terminators.
// A trailing newline does not produce an extra empty line.
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
