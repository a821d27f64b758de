package parser

import (
	"errors"

	"minilang/internal/frontend/ast"
	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/utils/numeric"
)

// binaryLevels lists operator groups from lowest to highest precedence.
var binaryLevels = [][]tokens.TOKEN{
	{tokens.OR_TOKEN},
	{tokens.AND_TOKEN},
	{tokens.DOUBLE_EQUAL_TOKEN, tokens.NOT_EQUAL_TOKEN},
	{tokens.LESS_TOKEN, tokens.GREATER_TOKEN, tokens.LESS_EQUAL_TOKEN, tokens.GREATER_EQUAL_TOKEN},
	{tokens.PLUS_TOKEN, tokens.MINUS_TOKEN},
	{tokens.MUL_TOKEN, tokens.DIV_TOKEN},
}

func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseBinary(0)
}

// parseBinary parses one left-associative precedence level.
func (p *Parser) parseBinary(level int) (ast.Expression, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for p.match(binaryLevels[level]...) {
		op := p.advance()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op.Kind,
			Y:        right,
			Location: source.NewLocation(left.Loc().Start, right.Loc().End),
		}
	}

	return left, nil
}

// parseUnary takes at most one prefix operator; "--x" needs parentheses.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.match(tokens.NOT_TOKEN, tokens.MINUS_TOKEN) {
		op := p.advance()
		if op.Kind == tokens.MINUS_TOKEN && p.match(tokens.NUMBER_TOKEN) {
			if lit, ok, err := p.parseMinInt(op); ok || err != nil {
				return lit, err
			}
		}
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Op:       op.Kind,
			X:        x,
			Location: source.NewLocation(op.Start, x.Loc().End),
		}, nil
	}
	return p.parsePrimary()
}

// parseMinInt folds "-" and a literal whose magnitude only fits negated,
// the one int64 value with no positive counterpart.
func (p *Parser) parseMinInt(minus tokens.Token) (ast.Expression, bool, error) {
	tok := p.peek()
	if _, err := numeric.StringToInteger(tok.Value); !errors.Is(err, numeric.ErrOutOfRange) {
		return nil, false, nil
	}
	value, err := numeric.StringToNegatedInteger(tok.Value)
	if err != nil {
		return nil, false, p.errorAt(tok, intRangeExpected, codeInvalidNumber)
	}
	p.advance()
	return &ast.IntLit{Value: value, Location: source.NewLocation(minus.Start, tok.End)}, true, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case tokens.IDENTIFIER_TOKEN:
		p.advance()
		if p.match(tokens.OPEN_PAREN) {
			p.advance()
			if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
				return nil, err
			}
			return &ast.CallExpr{Name: tok.Value, Location: p.makeLocation(tok.Start)}, nil
		}
		return &ast.IdentifierExpr{Name: tok.Value, Location: tok.Loc()}, nil

	case tokens.NUMBER_TOKEN:
		value, err := numeric.StringToInteger(tok.Value)
		if err != nil {
			return nil, p.errorAt(tok, intRangeExpected, codeInvalidNumber)
		}
		p.advance()
		return &ast.IntLit{Value: value, Location: tok.Loc()}, nil

	case tokens.BOOLEAN_TOKEN:
		p.advance()
		return &ast.BoolLit{Value: tok.Value == "true", Location: tok.Loc()}, nil

	case tokens.OPEN_PAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, p.errorAt(tok, exprExpected, codeInvalidExpression)
}
