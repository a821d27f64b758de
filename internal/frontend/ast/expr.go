package ast

import (
	"minilang/internal/source"
	"minilang/internal/tokens"
)

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X        Expression   // left operand
	Op       tokens.TOKEN // operator
	Y        Expression   // right operand
	Location source.Location
}

func (b *BinaryExpr) node()                {}
func (b *BinaryExpr) exprNode()            {}
func (b *BinaryExpr) Loc() source.Location { return b.Location }

// UnaryExpr represents ! or unary - applied to X
type UnaryExpr struct {
	Op       tokens.TOKEN
	X        Expression
	Location source.Location
}

func (u *UnaryExpr) node()                {}
func (u *UnaryExpr) exprNode()            {}
func (u *UnaryExpr) Loc() source.Location { return u.Location }

// IdentifierExpr represents an identifier
type IdentifierExpr struct {
	Name     string
	Location source.Location
}

func (i *IdentifierExpr) node()                {}
func (i *IdentifierExpr) exprNode()            {}
func (i *IdentifierExpr) Loc() source.Location { return i.Location }

// CallExpr is a call with an empty argument list, name().
type CallExpr struct {
	Name     string
	Location source.Location
}

func (c *CallExpr) node()                {}
func (c *CallExpr) exprNode()            {}
func (c *CallExpr) Loc() source.Location { return c.Location }
