package lexer

import (
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/source"
)

// LexicalError reports a character no token pattern accepts.
type LexicalError struct {
	Char   rune
	Pos    source.Position
	Reason string
}

func (e *LexicalError) Error() string {
	msg := fmt.Sprintf("unexpected character %q at line %d, column %d", e.Char, e.Pos.Line, e.Pos.Column)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Diagnostic converts the error for rendering against filepath.
func (e *LexicalError) Diagnostic(filepath string) *diagnostics.Diagnostic {
	end := e.Pos
	end.Advance(string(e.Char))
	label := "not valid here"
	if e.Reason != "" {
		label = e.Reason
	}
	return diagnostics.NewError(fmt.Sprintf("unexpected character %q", e.Char)).
		WithCode(diagnostics.ErrUnexpectedCharacter).
		WithPrimaryLabel(filepath, source.NewLocation(e.Pos, end), label)
}
