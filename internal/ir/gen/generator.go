package gen

import (
	"fmt"

	"minilang/internal/frontend/ast"
	"minilang/internal/ir"
)

// Generator lowers an AST to three-address IR. Temp and label numbers are
// per instance and never reused.
type Generator struct {
	out    *ir.Program
	temps  int
	labels int
}

func New() *Generator {
	return &Generator{out: &ir.Program{}}
}

// Generate lowers prog with a fresh Generator.
func Generate(prog *ast.Program) *ir.Program {
	return New().Generate(prog)
}

// Generate lowers every function of prog in source order.
func (g *Generator) Generate(prog *ast.Program) *ir.Program {
	g.out = &ir.Program{}
	for _, fn := range prog.Functions {
		g.lowerFunction(fn)
	}
	return g.out
}

func (g *Generator) emit(instr ir.Instr) {
	g.out.Emit(instr)
}

func (g *Generator) newTemp() ir.Temp {
	t := ir.Temp(g.temps)
	g.temps++
	return t
}

func (g *Generator) newLabel() ir.LabelID {
	l := ir.LabelID(g.labels)
	g.labels++
	return l
}

func (g *Generator) lowerFunction(fn *ast.Function) {
	g.emit(&ir.ProcBegin{Name: fn.Name})
	g.lowerBlock(fn.Body)
	g.emit(&ir.ProcEnd{})
}

func (g *Generator) lowerBlock(stmts []ast.Statement) {
	for _, stmt := range stmts {
		g.lowerStmt(stmt)
	}
}

func (g *Generator) lowerStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		if s.Init != nil {
			g.emit(&ir.Assign{Dest: ir.Var(s.Name), Src: g.lowerExpr(s.Init)})
		}
	case *ast.Assignment:
		g.lowerAssignment(s)
	case *ast.IfStmt:
		g.lowerIf(s)
	case *ast.WhileStmt:
		g.lowerWhile(s)
	case *ast.DoWhileStmt:
		g.lowerDoWhile(s)
	case *ast.ForStmt:
		g.lowerFor(s)
	case *ast.ReturnStmt:
		g.emit(&ir.Return{Value: g.lowerExpr(s.Result)})
	default:
		panic(fmt.Sprintf("INTERNAL COMPILER ERROR: unexpected statement %T", stmt))
	}
}

func (g *Generator) lowerAssignment(s *ast.Assignment) {
	g.emit(&ir.Assign{Dest: ir.Var(s.Target), Src: g.lowerExpr(s.Value)})
}

// lowerIf emits:
//
//	IF_FALSE c GOTO else; body; GOTO end; else: elseBody; end:
func (g *Generator) lowerIf(s *ast.IfStmt) {
	cond := g.lowerExpr(s.Cond)
	elseLabel := g.newLabel()
	endLabel := g.newLabel()

	g.emit(&ir.IfFalseGoto{Cond: cond, Target: elseLabel})
	g.lowerBlock(s.Body)
	g.emit(&ir.Goto{Target: endLabel})
	g.emit(&ir.Label{ID: elseLabel})
	g.lowerBlock(s.Else)
	g.emit(&ir.Label{ID: endLabel})
}

func (g *Generator) lowerWhile(s *ast.WhileStmt) {
	start := g.newLabel()
	end := g.newLabel()

	g.emit(&ir.Label{ID: start})
	cond := g.lowerExpr(s.Cond)
	g.emit(&ir.IfFalseGoto{Cond: cond, Target: end})
	g.lowerBlock(s.Body)
	g.emit(&ir.Goto{Target: start})
	g.emit(&ir.Label{ID: end})
}

func (g *Generator) lowerDoWhile(s *ast.DoWhileStmt) {
	start := g.newLabel()

	g.emit(&ir.Label{ID: start})
	g.lowerBlock(s.Body)
	cond := g.lowerExpr(s.Cond)
	g.emit(&ir.IfGoto{Cond: cond, Target: start})
}

// lowerFor treats a missing condition as always true: no exit branch is
// emitted, but the end label still is.
func (g *Generator) lowerFor(s *ast.ForStmt) {
	start := g.newLabel()
	end := g.newLabel()

	if s.Init != nil {
		g.lowerStmt(s.Init)
	}
	g.emit(&ir.Label{ID: start})
	if s.Cond != nil {
		cond := g.lowerExpr(s.Cond)
		g.emit(&ir.IfFalseGoto{Cond: cond, Target: end})
	}
	g.lowerBlock(s.Body)
	if s.Step != nil {
		g.lowerAssignment(s.Step)
	}
	g.emit(&ir.Goto{Target: start})
	g.emit(&ir.Label{ID: end})
}

// lowerExpr emits the instructions computing e and returns the operand
// holding its value. Leaves produce no instructions.
func (g *Generator) lowerExpr(e ast.Expression) ir.Operand {
	switch e := e.(type) {
	case *ast.IdentifierExpr:
		return ir.Var(e.Name)
	case *ast.IntLit:
		return ir.IntConst(e.Value)
	case *ast.BoolLit:
		return ir.BoolConst(e.Value)
	case *ast.BinaryExpr:
		left := g.lowerExpr(e.X)
		right := g.lowerExpr(e.Y)
		dest := g.newTemp()
		g.emit(&ir.BinOp{Dest: dest, Op: e.Op, Left: left, Right: right})
		return dest
	case *ast.UnaryExpr:
		x := g.lowerExpr(e.X)
		dest := g.newTemp()
		g.emit(&ir.UnOp{Dest: dest, Op: e.Op, X: x})
		return dest
	case *ast.CallExpr:
		dest := g.newTemp()
		g.emit(&ir.Call{Dest: dest, Name: e.Name})
		return dest
	}
	panic(fmt.Sprintf("INTERNAL COMPILER ERROR: unexpected expression %T", e))
}
