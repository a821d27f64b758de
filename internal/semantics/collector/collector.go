package collector

import (
	"errors"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/semantics/symbols"
	"minilang/internal/semantics/table"
	"minilang/internal/source"
	"minilang/internal/types"
)

// Entry records one declaration made during collection.
type Entry struct {
	Function string // enclosing function, empty for functions themselves
	Depth    int    // scope depth the symbol was declared at
	Symbol   *symbols.Symbol
}

// Shadow records a block variable that hides one from an enclosing scope.
type Shadow struct {
	Name  string
	Loc   source.Location
	Outer *symbols.Symbol
}

// Diagnostic renders the shadowing as a warning against filepath.
func (s Shadow) Diagnostic(filepath string) *diagnostics.Diagnostic {
	return diagnostics.ShadowedSymbol(filepath, s.Loc, s.Outer.Location, s.Name)
}

// Collector walks a program and mirrors its scoping in a SymbolTable.
// It performs no type checking.
type Collector struct {
	Table   *table.SymbolTable
	Entries []Entry
	Shadows []Shadow
	fn      string
}

func New() *Collector {
	return &Collector{Table: table.New()}
}

// Collect declares every function in the root scope and every variable in
// the scope of the block that declares it. Collection stops at the first
// redeclaration.
func Collect(prog *ast.Program) (*Collector, error) {
	c := New()
	if err := c.CollectProgram(prog); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collector) CollectProgram(prog *ast.Program) error {
	// register all functions first so bodies may refer to later ones
	for _, fn := range prog.Functions {
		sym, err := c.Table.RegisterFunction(fn.Name, types.TYPE_VOID, nil, table.WithLocation(fn.Loc()))
		if err != nil {
			return withLoc(err, fn.Loc())
		}
		c.record(sym)
	}

	for _, fn := range prog.Functions {
		c.fn = fn.Name
		if err := c.collectBlock(fn.Body); err != nil {
			return err
		}
	}
	c.fn = ""
	return nil
}

func (c *Collector) record(sym *symbols.Symbol) {
	c.Entries = append(c.Entries, Entry{Function: c.fn, Depth: c.Table.Depth(), Symbol: sym})
}

// collectBlock runs stmts in a fresh scope.
func (c *Collector) collectBlock(stmts []ast.Statement) (err error) {
	c.Table.EnterScope()
	defer c.exitScope(&err)
	for _, stmt := range stmts {
		if err := c.collectStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// exitScope pops the scope entered by the caller even when it failed.
func (c *Collector) exitScope(err *error) {
	if exitErr := c.Table.ExitScope(); *err == nil {
		*err = exitErr
	}
}

func (c *Collector) collectStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return c.collectDeclaration(s)
	case *ast.Assignment:
		return c.collectAssignment(s)
	case *ast.IfStmt:
		if err := c.collectBlock(s.Body); err != nil {
			return err
		}
		return c.collectBlock(s.Else)
	case *ast.WhileStmt:
		return c.collectBlock(s.Body)
	case *ast.DoWhileStmt:
		return c.collectBlock(s.Body)
	case *ast.ForStmt:
		return c.collectFor(s)
	}
	return nil
}

func (c *Collector) collectDeclaration(decl *ast.Declaration) error {
	opts := []table.Option{table.WithLocation(decl.Loc())}
	if value, ok := literalValue(decl.Init); ok {
		opts = append(opts, table.WithValue(value))
	}
	outer, _ := c.Table.Lookup(decl.Name)
	sym, err := c.Table.AddSymbol(decl.Name, decl.VarType, opts...)
	if err != nil {
		return withLoc(err, decl.Loc())
	}
	if outer != nil && outer.Kind == symbols.SymbolVariable {
		c.Shadows = append(c.Shadows, Shadow{Name: decl.Name, Loc: decl.Loc(), Outer: outer})
	}
	c.record(sym)
	return nil
}

// collectAssignment tracks literal values of known names. Unknown targets
// are left for a later checker.
func (c *Collector) collectAssignment(assign *ast.Assignment) error {
	value, ok := literalValue(assign.Value)
	if !ok {
		return nil
	}
	if err := c.Table.UpdateSymbol(assign.Target, value); err != nil {
		var symErr *table.SymbolError
		if errors.As(err, &symErr) && !symErr.Redeclared() {
			return nil
		}
		return err
	}
	return nil
}

// collectFor gives the init clause its own scope around the body's scope.
// The step runs after the body, as it does at run time.
func (c *Collector) collectFor(loop *ast.ForStmt) (err error) {
	c.Table.EnterScope()
	defer c.exitScope(&err)
	if loop.Init != nil {
		if err := c.collectStmt(loop.Init); err != nil {
			return err
		}
	}
	if err := c.collectBlock(loop.Body); err != nil {
		return err
	}
	if loop.Step != nil {
		return c.collectAssignment(loop.Step)
	}
	return nil
}

func literalValue(expr ast.Expression) (any, bool) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return e.Value, true
	case *ast.BoolLit:
		return e.Value, true
	}
	return nil, false
}

func withLoc(err error, loc source.Location) error {
	var symErr *table.SymbolError
	if errors.As(err, &symErr) {
		symErr.Loc = loc
	}
	return err
}
