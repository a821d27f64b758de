package ast

import (
	"minilang/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	node()
	Loc() source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	exprNode()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	stmtNode()
}

// Program is a whole source file: functions in source order.
type Program struct {
	Functions []*Function
	Location  source.Location
}

func (p *Program) node()                {}
func (p *Program) Loc() source.Location { return p.Location }

// Function is a parameterless procedure.
type Function struct {
	Name     string
	Body     []Statement
	Location source.Location
}

func (f *Function) node()                {}
func (f *Function) Loc() source.Location { return f.Location }
