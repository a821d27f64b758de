package diagnostics

import (
	"minilang/internal/source"
)

// UndefinedSymbol creates a diagnostic for a name missing from every scope
func UndefinedSymbol(filepath string, loc source.Location, name string) *Diagnostic {
	return NewError("undefined symbol: "+name).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(filepath, loc, "not found in this scope").
		WithHelp("declare the variable before using it")
}

// RedeclaredSymbol creates a diagnostic for a name declared twice in one scope.
// first is the earlier declaration; a zero location leaves it unlabeled.
func RedeclaredSymbol(filepath string, loc, first source.Location, name string) *Diagnostic {
	diag := NewError(name+" is already declared in this scope").
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(filepath, loc, "redeclared here")
	if first.Start.Line > 0 {
		diag.WithSecondaryLabel(filepath, first, "first declared here")
	}
	return diag.WithHelp("use a different name or declare it in a nested block")
}

// ShadowedSymbol creates a warning for a block variable hiding an outer one
func ShadowedSymbol(filepath string, loc, outer source.Location, name string) *Diagnostic {
	diag := NewWarning(name+" shadows a variable from an enclosing scope").
		WithCode(WarnShadowedSymbol).
		WithPrimaryLabel(filepath, loc, "shadows the outer "+name)
	if outer.Start.Line > 0 {
		diag.WithSecondaryLabel(filepath, outer, "outer declaration")
	}
	return diag.WithNote("the outer " + name + " is hidden until this block ends")
}
