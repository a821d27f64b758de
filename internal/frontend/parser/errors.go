package parser

import (
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/source"
	"minilang/internal/tokens"
)

// SyntaxError reports the first point where the token stream stopped
// matching the grammar.
type SyntaxError struct {
	Expected string // token kind or construct ("expression", "statement")
	Found    string // offending token kind, or tokens.EOF_TOKEN
	Lexeme   string // offending source text, empty at end of input
	Pos      source.Position
	AtEOF    bool
	Code     string
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("expected %s, found %s", describe(e.Expected), tokens.EOF_TOKEN)
	}
	return fmt.Sprintf("expected %s, found %s at line %d, column %d", describe(e.Expected), e.found(), e.Pos.Line, e.Pos.Column)
}

func (e *SyntaxError) found() string {
	if e.Lexeme != "" && e.Lexeme != e.Found {
		return fmt.Sprintf("%s %q", e.Found, e.Lexeme)
	}
	return describe(e.Found)
}

// Diagnostic converts the error for rendering against filepath.
func (e *SyntaxError) Diagnostic(filepath string) *diagnostics.Diagnostic {
	end := e.Pos
	end.Advance(e.Lexeme)
	label := "unexpected " + e.found()
	if e.AtEOF {
		label = "input ends here"
	}
	diag := diagnostics.NewError(fmt.Sprintf("expected %s, found %s", describe(e.Expected), e.foundOrEOF())).
		WithCode(e.Code).
		WithPrimaryLabel(filepath, source.NewLocation(e.Pos, end), label)
	if e.Expected == string(tokens.SEMICOLON_TOKEN) {
		diag.WithHelp("statements end with ';'")
	}
	return diag
}

func (e *SyntaxError) foundOrEOF() string {
	if e.AtEOF {
		return string(tokens.EOF_TOKEN)
	}
	return e.found()
}

// describe quotes kinds that are spelled as they appear in source.
func describe(kind string) string {
	switch tokens.TOKEN(kind) {
	case tokens.IDENTIFIER_TOKEN, tokens.NUMBER_TOKEN, tokens.BOOLEAN_TOKEN, tokens.EOF_TOKEN:
		return kind
	}
	if kind == exprExpected || kind == stmtExpected || kind == intRangeExpected {
		return kind
	}
	return "'" + kind + "'"
}

const (
	exprExpected     = "expression"
	stmtExpected     = "statement"
	intRangeExpected = "integer within 64-bit range"
)
