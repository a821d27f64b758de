package lexer

import (
	"io"
	"regexp"
	"unicode/utf8"

	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/utils/numeric"
)

// regexHandler consumes match, which is known to be the longest match at the
// current position.
type regexHandler func(lex *Lexer, match string) error

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	Tokens     []tokens.Token
	Position   source.Position
	sourceCode string
	patterns   []regexPattern
	FilePath   string
	// Trace receives one line per token after a successful scan. Nil disables it.
	Trace io.Writer
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

// patterns is shared by every Lexer; a compiled Regexp is safe for concurrent use.
// Order only matters between patterns that match the same length.
var patterns = []regexPattern{
	{anchored(`\s+`), skipHandler},                                     // whitespace
	{anchored(`//[^\n]*`), skipHandler},                                // line comments
	{anchored(`/\*([^*]|\*+[^*/])*\*+/`), skipHandler},                 // block comments
	{anchored(`/\*`), unterminatedCommentHandler},                      // block comment without */
	{anchored(`[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler},            // identifiers and keywords
	{anchored(numeric.DecNumber), defaultHandler(tokens.NUMBER_TOKEN)}, // integers
	{anchored(`&&`), defaultHandler(tokens.AND_TOKEN)},
	{anchored(`\|\|`), defaultHandler(tokens.OR_TOKEN)},
	{anchored(`==`), defaultHandler(tokens.DOUBLE_EQUAL_TOKEN)},
	{anchored(`!=`), defaultHandler(tokens.NOT_EQUAL_TOKEN)},
	{anchored(`<=`), defaultHandler(tokens.LESS_EQUAL_TOKEN)},
	{anchored(`>=`), defaultHandler(tokens.GREATER_EQUAL_TOKEN)},
	{anchored(`=`), defaultHandler(tokens.EQUALS_TOKEN)},
	{anchored(`!`), defaultHandler(tokens.NOT_TOKEN)},
	{anchored(`<`), defaultHandler(tokens.LESS_TOKEN)},
	{anchored(`>`), defaultHandler(tokens.GREATER_TOKEN)},
	{anchored(`\+`), defaultHandler(tokens.PLUS_TOKEN)},
	{anchored(`-`), defaultHandler(tokens.MINUS_TOKEN)},
	{anchored(`\*`), defaultHandler(tokens.MUL_TOKEN)},
	{anchored(`/`), defaultHandler(tokens.DIV_TOKEN)},
	{anchored(`\(`), defaultHandler(tokens.OPEN_PAREN)},
	{anchored(`\)`), defaultHandler(tokens.CLOSE_PAREN)},
	{anchored(`\{`), defaultHandler(tokens.OPEN_CURLY)},
	{anchored(`\}`), defaultHandler(tokens.CLOSE_CURLY)},
	{anchored(`;`), defaultHandler(tokens.SEMICOLON_TOKEN)},
	{anchored(`,`), defaultHandler(tokens.COMMA_TOKEN)},
}

func New(filepath, content string) *Lexer {
	return &Lexer{
		sourceCode: content,
		Tokens:     make([]tokens.Token, 0),
		Position:   source.Start(),
		patterns:   patterns,
		FilePath:   filepath,
	}
}

func defaultHandler(kind tokens.TOKEN) regexHandler {
	return func(lex *Lexer, match string) error {
		start := lex.Position
		lex.advance(match)
		lex.push(tokens.NewToken(kind, match, start, lex.Position))
		return nil
	}
}

func identifierHandler(lex *Lexer, match string) error {
	start := lex.Position
	lex.advance(match)
	kind := tokens.IDENTIFIER_TOKEN
	if keyword, ok := tokens.Keyword(match); ok {
		kind = keyword
	}
	lex.push(tokens.NewToken(kind, match, start, lex.Position))
	return nil
}

// skipHandler consumes text that produces no token.
func skipHandler(lex *Lexer, match string) error {
	lex.advance(match)
	return nil
}

func unterminatedCommentHandler(lex *Lexer, _ string) error {
	return &LexicalError{Char: '/', Pos: lex.Position, Reason: "unterminated block comment"}
}

// longestMatch returns the pattern with the longest match at the current
// position. Ties go to the pattern listed first.
func (lex *Lexer) longestMatch() (regexPattern, string, bool) {
	rest := lex.remainder()
	var best regexPattern
	bestMatch := ""
	found := false
	for _, pattern := range lex.patterns {
		match := pattern.regex.FindString(rest)
		if match == "" {
			continue
		}
		if !found || len(match) > len(bestMatch) {
			best, bestMatch, found = pattern, match, true
		}
	}
	return best, bestMatch, found
}

// Tokenize scans the whole input. The returned slice always ends with an
// EOF token. The first unrecognized character aborts the scan with a
// *LexicalError.
func (lex *Lexer) Tokenize() ([]tokens.Token, error) {
	for !lex.atEOF() {
		pattern, match, ok := lex.longestMatch()
		if !ok {
			char, _ := utf8.DecodeRuneInString(lex.remainder())
			return nil, &LexicalError{Char: char, Pos: lex.Position}
		}
		if err := pattern.handler(lex, match); err != nil {
			return nil, err
		}
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "", lex.Position, lex.Position))

	if lex.Trace != nil {
		for _, token := range lex.Tokens {
			token.Debug(lex.Trace, lex.FilePath)
		}
	}

	return lex.Tokens, nil
}

// Tokenize scans src in one call.
func Tokenize(src string) ([]tokens.Token, error) {
	return New("", src).Tokenize()
}
