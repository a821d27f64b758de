package source

import "fmt"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code (1-based).
	Column int // Column number in the source code (1-based, counted in runes).
	Index  int // Byte offset in the source code.
}

// Start is the position of the first character of any source text.
func Start() Position {
	return Position{Line: 1, Column: 1}
}

// Advance moves the Position past the text in toSkip.
// Every rune advances the column by one; a newline increments the line and
// restarts the column, so after a multi-line match the column is relative to
// the text following the last line break. Index advances by bytes.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += len(string(char))
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
