package table

import (
	"errors"
	"testing"

	"minilang/internal/semantics/symbols"
	"minilang/internal/source"
	"minilang/internal/types"
)

func TestNewSymbolTable(t *testing.T) {
	st := New()
	if st.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", st.Depth())
	}
	if len(st.Current()) != 0 {
		t.Error("Expected root scope to be empty")
	}
}

func TestAddAndLookup(t *testing.T) {
	st := New()
	sym, err := st.AddSymbol("x", types.TYPE_INT, WithValue(int64(5)))
	if err != nil {
		t.Fatalf("AddSymbol failed: %v", err)
	}

	got, err := st.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got != sym {
		t.Error("Lookup returned wrong symbol")
	}
	if got.Kind != symbols.SymbolVariable || got.Type != types.TYPE_INT || got.Value != int64(5) {
		t.Errorf("Unexpected symbol %s", got)
	}
}

func TestAddSymbolOptions(t *testing.T) {
	st := New()
	fn, err := st.AddSymbol("f", types.TYPE_FUNC, AsFunction())
	if err != nil {
		t.Fatal(err)
	}
	if fn.Kind != symbols.SymbolFunction {
		t.Errorf("Expected function kind, got %s", fn.Kind)
	}

	c, err := st.AddSymbol("limit", types.TYPE_INT, AsConstant(), WithValue(int64(3)))
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsConstant || c.Value != int64(3) {
		t.Errorf("Expected constant with value 3, got %s", c)
	}
}

func TestRedeclareInSameScope(t *testing.T) {
	st := New()
	if _, err := st.AddSymbol("x", types.TYPE_INT); err != nil {
		t.Fatal(err)
	}

	_, err := st.AddSymbol("x", types.TYPE_BOOL)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("Expected *SymbolError, got %v", err)
	}
	if symErr.Op != OpAdd || symErr.Name != "x" || !symErr.Redeclared() {
		t.Errorf("Unexpected error %+v", symErr)
	}

	// the first binding is untouched
	got, _ := st.Lookup("x")
	if got.Type != types.TYPE_INT {
		t.Errorf("Expected original int binding, got %s", got.Type)
	}
	if symErr.Previous != got {
		t.Errorf("Expected the error to point at the first binding, got %v", symErr.Previous)
	}
}

func TestRegisterFunction(t *testing.T) {
	st := New()
	params := []symbols.Param{{Name: "n", Type: types.TYPE_INT}}
	fn, err := st.RegisterFunction("fact", types.TYPE_INT, params)
	if err != nil {
		t.Fatal(err)
	}
	if fn.Kind != symbols.SymbolFunction || fn.ReturnType != types.TYPE_INT || len(fn.Parameters) != 1 {
		t.Errorf("Unexpected function symbol %s", fn)
	}

	_, err = st.RegisterFunction("fact", types.TYPE_VOID, nil)
	var symErr *SymbolError
	if !errors.As(err, &symErr) || symErr.Op != OpRegister {
		t.Errorf("Expected register SymbolError, got %v", err)
	}
}

func TestShadowing(t *testing.T) {
	st := New()
	outer, _ := st.AddSymbol("x", types.TYPE_INT, WithValue(int64(1)))

	st.EnterScope()
	inner, err := st.AddSymbol("x", types.TYPE_BOOL, WithValue(true))
	if err != nil {
		t.Fatalf("Expected shadowing to be allowed, got %v", err)
	}

	got, _ := st.Lookup("x")
	if got != inner {
		t.Error("Expected innermost binding from Lookup")
	}

	if err := st.ExitScope(); err != nil {
		t.Fatal(err)
	}
	got, _ = st.Lookup("x")
	if got != outer {
		t.Error("Expected outer binding after ExitScope")
	}
}

func TestLookupEnclosingScope(t *testing.T) {
	st := New()
	sym, _ := st.AddSymbol("total", types.TYPE_INT)
	st.EnterScope()
	st.EnterScope()

	got, err := st.Lookup("total")
	if err != nil || got != sym {
		t.Errorf("Expected to find total two scopes out, got %v", err)
	}
}

func TestLookupUndeclared(t *testing.T) {
	st := New()
	st.EnterScope()
	_, _ = st.AddSymbol("y", types.TYPE_INT)
	_ = st.ExitScope()

	_, err := st.Lookup("y")
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("Expected *SymbolError, got %v", err)
	}
	if symErr.Op != OpLookup || symErr.Redeclared() {
		t.Errorf("Unexpected error %+v", symErr)
	}
	if err.Error() != `lookup "y": undeclared` {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestUpdateSymbol(t *testing.T) {
	st := New()
	outer, _ := st.AddSymbol("x", types.TYPE_INT, WithValue(int64(1)))
	st.EnterScope()

	if err := st.UpdateSymbol("x", int64(42)); err != nil {
		t.Fatal(err)
	}
	if outer.Value != int64(42) {
		t.Errorf("Expected outer x updated in place, got %v", outer.Value)
	}

	err := st.UpdateSymbol("missing", int64(1))
	var symErr *SymbolError
	if !errors.As(err, &symErr) || symErr.Op != OpUpdate {
		t.Errorf("Expected update SymbolError, got %v", err)
	}
}

func TestExitRootScope(t *testing.T) {
	st := New()
	st.EnterScope()
	if err := st.ExitScope(); err != nil {
		t.Fatalf("Expected nested scope to pop, got %v", err)
	}
	if err := st.ExitScope(); !errors.Is(err, ErrRootScope) {
		t.Errorf("Expected ErrRootScope, got %v", err)
	}
	if st.Depth() != 0 {
		t.Errorf("Expected root scope to remain, depth %d", st.Depth())
	}

	// root still usable
	if _, err := st.AddSymbol("z", types.TYPE_INT); err != nil {
		t.Errorf("Expected root scope usable after refused exit, got %v", err)
	}
}

func TestStringDump(t *testing.T) {
	st := New()
	_, _ = st.RegisterFunction("main", types.TYPE_VOID, nil)
	st.EnterScope()
	_, _ = st.AddSymbol("y", types.TYPE_BOOL)
	_, _ = st.AddSymbol("x", types.TYPE_INT, WithValue(int64(10)))

	expected := "scope 0:\n  main: function() -> void\nscope 1:\n  x: int = 10\n  y: bool\n"
	if got := st.String(); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}

	current := st.Current()
	if len(current) != 2 || current[0].Name != "x" || current[1].Name != "y" {
		t.Errorf("Expected current scope [x y], got %v", current)
	}
}

func TestSymbolErrorDiagnostic(t *testing.T) {
	redeclared := (&SymbolError{Op: OpAdd, Name: "x", Reason: reasonRedeclared}).Diagnostic("a.ml")
	if redeclared.Code != "T0003" {
		t.Errorf("Expected T0003, got %s", redeclared.Code)
	}
	if len(redeclared.Labels) != 1 {
		t.Errorf("Expected no secondary label without a previous binding, got %d labels", len(redeclared.Labels))
	}

	first := source.NewLocation(source.Position{Line: 2, Column: 5}, source.Position{Line: 2, Column: 15})
	st := New()
	if _, err := st.AddSymbol("x", types.TYPE_INT, WithLocation(first)); err != nil {
		t.Fatal(err)
	}
	_, err := st.AddSymbol("x", types.TYPE_INT)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("Expected *SymbolError, got %v", err)
	}
	withFirst := symErr.Diagnostic("a.ml")
	if len(withFirst.Labels) != 2 || withFirst.Labels[1].Location != first || withFirst.Labels[1].Message != "first declared here" {
		t.Errorf("Expected a secondary label at the first declaration, got %+v", withFirst.Labels)
	}

	undefined := (&SymbolError{Op: OpLookup, Name: "y", Reason: reasonUndeclared}).Diagnostic("a.ml")
	if undefined.Code != "T0002" {
		t.Errorf("Expected T0002, got %s", undefined.Code)
	}
}
