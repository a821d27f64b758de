package parser

import (
	"minilang/internal/frontend/ast"
	"minilang/internal/frontend/lexer"
	"minilang/internal/source"
	"minilang/internal/tokens"
)

// Parser holds the cursor over a single token stream.
type Parser struct {
	tokens  []tokens.Token
	current int
}

// Parse builds the AST for a complete token stream ending in EOF.
// The first mismatch aborts with a *SyntaxError and no tree.
func Parse(toks []tokens.Token) (*ast.Program, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF_TOKEN {
		end := source.Start()
		if len(toks) > 0 {
			end = toks[len(toks)-1].End
		}
		toks = append(toks[:len(toks):len(toks)], tokens.NewToken(tokens.EOF_TOKEN, "", end, end))
	}
	p := &Parser{tokens: toks}
	return p.parseProgram()
}

// ParseSource scans and parses src.
func ParseSource(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	program := &ast.Program{Functions: []*ast.Function{}}
	start := p.peek().Start

	for p.match(tokens.FUNCTION_TOKEN) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, fn)
	}

	if !p.isAtEnd() {
		// anything left over at top level is not a function
		return nil, p.errorAt(p.peek(), string(tokens.FUNCTION_TOKEN), codeUnexpectedToken)
	}

	program.Location = source.NewLocation(start, p.peek().End)
	return program, nil
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	start, err := p.expect(tokens.FUNCTION_TOKEN)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Name:     name.Value,
		Body:     body,
		Location: p.makeLocation(start.Start),
	}, nil
}

// parseBlock parses "{" statement* "}"
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(tokens.OPEN_CURLY); err != nil {
		return nil, err
	}

	stmts := []ast.Statement{}
	for !p.match(tokens.CLOSE_CURLY) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(tokens.CLOSE_CURLY); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF_TOKEN
}

func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if tok.Kind != tokens.EOF_TOKEN {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}
	return tokens.Token{}, p.errorAt(p.peek(), string(kind), codeExpectedToken)
}

func (p *Parser) errorAt(tok tokens.Token, expected string, code string) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Found:    string(tok.Kind),
		Lexeme:   tok.Value,
		Pos:      tok.Start,
		AtEOF:    tok.Kind == tokens.EOF_TOKEN,
		Code:     code,
	}
}

// makeLocation spans from start to the end of the last consumed token.
func (p *Parser) makeLocation(start source.Position) source.Location {
	return source.NewLocation(start, p.previous().End)
}
