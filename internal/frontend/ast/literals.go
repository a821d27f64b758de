package ast

import (
	"minilang/internal/source"
)

type IntLit struct {
	Value    int64
	Location source.Location
}

func (i *IntLit) node()                {}
func (i *IntLit) exprNode()            {}
func (i *IntLit) Loc() source.Location { return i.Location }

type BoolLit struct {
	Value    bool
	Location source.Location
}

func (b *BoolLit) node()                {}
func (b *BoolLit) exprNode()            {}
func (b *BoolLit) Loc() source.Location { return b.Location }
