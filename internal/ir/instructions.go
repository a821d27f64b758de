package ir

import (
	"minilang/internal/tokens"
)

// Instr is the base interface for IR instructions.
type Instr interface {
	irInstr()
}

// Assign copies Src into a source variable.
type Assign struct {
	Dest Var
	Src  Operand
}

func (a *Assign) irInstr() {}

// BinOp computes Left Op Right into Dest.
type BinOp struct {
	Dest  Temp
	Op    tokens.TOKEN
	Left  Operand
	Right Operand
}

func (b *BinOp) irInstr() {}

// UnOp computes Op X into Dest.
type UnOp struct {
	Dest Temp
	Op   tokens.TOKEN
	X    Operand
}

func (u *UnOp) irInstr() {}

// Call invokes a parameterless procedure and stores its result in Dest.
type Call struct {
	Dest Temp
	Name string
}

func (c *Call) irInstr() {}

// Label marks a jump target.
type Label struct {
	ID LabelID
}

func (l *Label) irInstr() {}

type Goto struct {
	Target LabelID
}

func (g *Goto) irInstr() {}

// IfFalseGoto jumps to Target when Cond is false.
type IfFalseGoto struct {
	Cond   Operand
	Target LabelID
}

func (i *IfFalseGoto) irInstr() {}

// IfGoto jumps to Target when Cond is true.
type IfGoto struct {
	Cond   Operand
	Target LabelID
}

func (i *IfGoto) irInstr() {}

type Return struct {
	Value Operand
}

func (r *Return) irInstr() {}

// ProcBegin opens the body of procedure Name.
type ProcBegin struct {
	Name string
}

func (p *ProcBegin) irInstr() {}

type ProcEnd struct{}

func (p *ProcEnd) irInstr() {}
