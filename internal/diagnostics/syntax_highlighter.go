package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"minilang/colors"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

// SyntaxHighlighter colors minilang source lines shown in diagnostics
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Token represents a highlighted token
type Token struct {
	Text  string
	Color colors.COLOR
}

// Highlight splits line into colored pieces
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	if !sh.enabled {
		return []Token{{Text: line, Color: colors.WHITE}}
	}

	var pieces []Token
	i := 0

	for i < len(line) {
		c := rune(line[i])

		if unicode.IsSpace(c) {
			start := i
			for i < len(line) && unicode.IsSpace(rune(line[i])) {
				i++
			}
			pieces = append(pieces, Token{Text: line[start:i], Color: colors.WHITE})
			continue
		}

		if unicode.IsDigit(c) {
			start := i
			for i < len(line) && unicode.IsDigit(rune(line[i])) {
				i++
			}
			pieces = append(pieces, Token{Text: line[start:i], Color: colors.YELLOW})
			continue
		}

		if unicode.IsLetter(c) || c == '_' {
			start := i
			for i < len(line) && (unicode.IsLetter(rune(line[i])) || unicode.IsDigit(rune(line[i])) || line[i] == '_') {
				i++
			}
			word := line[start:i]

			color := colors.WHITE
			if types.IsDeclarable(types.FromKeyword(word)) {
				color = colors.ORANGE
			} else if tokens.IsKeyword(word) {
				color = colors.PURPLE
			}
			pieces = append(pieces, Token{Text: word, Color: color})
			continue
		}

		if strings.HasPrefix(line[i:], "//") {
			pieces = append(pieces, Token{Text: line[i:], Color: colors.GREY})
			break
		}

		pieces = append(pieces, Token{Text: line[i : i+1], Color: colors.WHITE})
		i++
	}

	return pieces
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	var result strings.Builder
	sh.HighlightWithColor(line, &result)
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	if !sh.enabled {
		fmt.Fprint(writer, line)
		return
	}
	for _, piece := range sh.Highlight(line) {
		piece.Color.Fprint(writer, piece.Text)
	}
}
