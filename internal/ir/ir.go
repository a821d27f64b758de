package ir

import (
	"fmt"
	"strconv"
)

// Operand is a value an instruction reads. The set is closed.
type Operand interface {
	operand()
	String() string
}

// Temp is a generator-allocated temporary, rendered tN.
type Temp int

// Var is a source-level variable.
type Var string

type IntConst int64

type BoolConst bool

func (Temp) operand()      {}
func (Var) operand()       {}
func (IntConst) operand()  {}
func (BoolConst) operand() {}

func (t Temp) String() string      { return fmt.Sprintf("t%d", int(t)) }
func (v Var) String() string       { return string(v) }
func (c IntConst) String() string  { return strconv.FormatInt(int64(c), 10) }
func (c BoolConst) String() string { return strconv.FormatBool(bool(c)) }

// LabelID names a jump target, rendered LN.
type LabelID int

func (l LabelID) String() string { return fmt.Sprintf("L%d", int(l)) }

// Program is a flat instruction list. Procedures are delimited by
// ProcBegin and ProcEnd.
type Program struct {
	Instrs []Instr
}

func (p *Program) Emit(instr Instr) {
	p.Instrs = append(p.Instrs, instr)
}

func (p *Program) String() string {
	return Format(p)
}
