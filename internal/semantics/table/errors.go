package table

import (
	"errors"
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/semantics/symbols"
	"minilang/internal/source"
)

// ErrRootScope is returned by ExitScope when only the root scope is left.
var ErrRootScope = errors.New("cannot exit the root scope")

// Operations that can fail with a SymbolError.
const (
	OpAdd      = "add"
	OpRegister = "register"
	OpLookup   = "lookup"
	OpUpdate   = "update"
)

const (
	reasonRedeclared = "already declared in this scope"
	reasonUndeclared = "undeclared"
)

// SymbolError reports a redeclaration or a reference to an unknown name.
type SymbolError struct {
	Op     string
	Name   string
	Reason string
	// Loc is filled in by callers that know where the name appeared.
	Loc source.Location
	// Previous is the binding a redeclaration collided with.
	Previous *symbols.Symbol
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Name, e.Reason)
}

// Redeclared reports whether the error is a duplicate in one scope.
func (e *SymbolError) Redeclared() bool {
	return e.Reason == reasonRedeclared
}

// Diagnostic converts the error for rendering against filepath.
func (e *SymbolError) Diagnostic(filepath string) *diagnostics.Diagnostic {
	if e.Redeclared() {
		var first source.Location
		if e.Previous != nil {
			first = e.Previous.Location
		}
		return diagnostics.RedeclaredSymbol(filepath, e.Loc, first, e.Name)
	}
	return diagnostics.UndefinedSymbol(filepath, e.Loc, e.Name)
}
