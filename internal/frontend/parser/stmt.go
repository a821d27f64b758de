package parser

import (
	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

const (
	codeUnexpectedToken   = diagnostics.ErrUnexpectedToken
	codeExpectedToken     = diagnostics.ErrExpectedToken
	codeInvalidExpression = diagnostics.ErrInvalidExpression
	codeInvalidStatement  = diagnostics.ErrInvalidStatement
	codeInvalidNumber     = diagnostics.ErrInvalidNumber
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case tokens.INT_TOKEN, tokens.BOOL_TOKEN:
		return p.parseDeclaration()
	case tokens.IDENTIFIER_TOKEN:
		return p.parseAssignment()
	case tokens.IF_TOKEN:
		return p.parseIfStmt()
	case tokens.WHILE_TOKEN:
		return p.parseWhileStmt()
	case tokens.DO_TOKEN:
		return p.parseDoWhileStmt()
	case tokens.FOR_TOKEN:
		return p.parseForStmt()
	case tokens.RETURN_TOKEN:
		return p.parseReturnStmt()
	default:
		return nil, p.errorAt(p.peek(), stmtExpected, codeInvalidStatement)
	}
}

// parseDeclaration parses: ("int"|"bool") ID ["=" expression] ";"
func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	typeTok := p.advance()
	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}

	decl := &ast.Declaration{
		VarType: types.FromKeyword(typeTok.Value),
		Name:    name.Value,
	}

	if p.match(tokens.EQUALS_TOKEN) {
		p.advance()
		decl.Init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}
	decl.Location = p.makeLocation(typeTok.Start)
	return decl, nil
}

// parseAssignment parses: ID "=" expression ";"
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	assign, err := p.parseSimpleAssign()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}
	assign.Location = p.makeLocation(assign.Location.Start)
	return assign, nil
}

// parseSimpleAssign parses ID "=" expression without the terminator; it is
// the step clause of a for loop, where the terminator is optional.
func (p *Parser) parseSimpleAssign() (*ast.Assignment, error) {
	target, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.EQUALS_TOKEN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Target:   target.Value,
		Value:    value,
		Location: p.makeLocation(target.Start),
	}, nil
}

// parseCondition parses "(" expression ")"
func (p *Parser) parseCondition() (ast.Expression, error) {
	if _, err := p.expect(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start := p.advance().Start

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Body: body, Else: []ast.Statement{}}
	if p.match(tokens.ELSE_TOKEN) {
		p.advance()
		stmt.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	stmt.Location = p.makeLocation(start)
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	start := p.advance().Start

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		Cond:     cond,
		Body:     body,
		Location: p.makeLocation(start),
	}, nil
}

// parseDoWhileStmt parses: "do" block "while" "(" expression ")" ";"
func (p *Parser) parseDoWhileStmt() (*ast.DoWhileStmt, error) {
	start := p.advance().Start

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.WHILE_TOKEN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}

	return &ast.DoWhileStmt{
		Body:     body,
		Cond:     cond,
		Location: p.makeLocation(start),
	}, nil
}

// parseForStmt parses:
// "for" "(" [declaration | assignment | ";"] [expression] ";" [simpleAssign] ")" block
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	start := p.advance().Start
	if _, err := p.expect(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}

	stmt := &ast.ForStmt{}
	var err error

	// init clauses consume their own ';'
	switch p.peek().Kind {
	case tokens.INT_TOKEN, tokens.BOOL_TOKEN:
		stmt.Init, err = p.parseDeclaration()
	case tokens.IDENTIFIER_TOKEN:
		stmt.Init, err = p.parseAssignment()
	default:
		_, err = p.expect(tokens.SEMICOLON_TOKEN)
	}
	if err != nil {
		return nil, err
	}

	if !p.match(tokens.SEMICOLON_TOKEN) {
		stmt.Cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}

	if !p.match(tokens.CLOSE_PAREN) {
		stmt.Step, err = p.parseSimpleAssign()
		if err != nil {
			return nil, err
		}
		// the step may keep its statement terminator: "i = i + 1;)"
		if p.match(tokens.SEMICOLON_TOKEN) {
			p.advance()
		}
	}
	if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
		return nil, err
	}

	stmt.Body, err = p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Location = p.makeLocation(start)
	return stmt, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	start := p.advance().Start

	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		Result:   result,
		Location: p.makeLocation(start),
	}, nil
}
