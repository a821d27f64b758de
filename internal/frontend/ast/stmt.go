package ast

import (
	"minilang/internal/source"
	"minilang/internal/types"
)

// Declaration introduces a variable, optionally initialized.
type Declaration struct {
	VarType  types.TYPE_NAME
	Name     string
	Init     Expression // nil when absent
	Location source.Location
}

func (d *Declaration) node()                {}
func (d *Declaration) stmtNode()            {}
func (d *Declaration) Loc() source.Location { return d.Location }

type Assignment struct {
	Target   string
	Value    Expression
	Location source.Location
}

func (a *Assignment) node()                {}
func (a *Assignment) stmtNode()            {}
func (a *Assignment) Loc() source.Location { return a.Location }

// IfStmt has an empty (not nil) Else when no else branch was written.
type IfStmt struct {
	Cond     Expression
	Body     []Statement
	Else     []Statement
	Location source.Location
}

func (i *IfStmt) node()                {}
func (i *IfStmt) stmtNode()            {}
func (i *IfStmt) Loc() source.Location { return i.Location }

type WhileStmt struct {
	Cond     Expression
	Body     []Statement
	Location source.Location
}

func (w *WhileStmt) node()                {}
func (w *WhileStmt) stmtNode()            {}
func (w *WhileStmt) Loc() source.Location { return w.Location }

// DoWhileStmt runs Body once before testing Cond.
type DoWhileStmt struct {
	Body     []Statement
	Cond     Expression
	Location source.Location
}

func (d *DoWhileStmt) node()                {}
func (d *DoWhileStmt) stmtNode()            {}
func (d *DoWhileStmt) Loc() source.Location { return d.Location }

// ForStmt clauses are all optional. Init is a *Declaration or *Assignment.
type ForStmt struct {
	Init     Statement
	Cond     Expression
	Step     *Assignment
	Body     []Statement
	Location source.Location
}

func (f *ForStmt) node()                {}
func (f *ForStmt) stmtNode()            {}
func (f *ForStmt) Loc() source.Location { return f.Location }

type ReturnStmt struct {
	Result   Expression
	Location source.Location
}

func (r *ReturnStmt) node()                {}
func (r *ReturnStmt) stmtNode()            {}
func (r *ReturnStmt) Loc() source.Location { return r.Location }
