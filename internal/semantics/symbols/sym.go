package symbols

import (
	"fmt"
	"strings"

	"minilang/internal/source"
	"minilang/internal/types"
)

// Symbol represents a declared variable or function
type Symbol struct {
	Name       string
	Kind       SymbolKind
	Type       types.TYPE_NAME
	Value      any // last assigned int64 or bool; nil when never assigned
	IsConstant bool
	ReturnType types.TYPE_NAME // functions only
	Parameters []Param         // functions only
	Location   source.Location // declaring site; zero when unknown
}

// Param is one declared function parameter
type Param struct {
	Name string
	Type types.TYPE_NAME
}

// SymbolKind categorizes symbols
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	default:
		return "unknown"
	}
}

func (s *Symbol) HasValue() bool {
	return s.Value != nil
}

// String renders the symbol as a single line, e.g. "x: int = 10" or
// "main: function() -> void".
func (s *Symbol) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString(": ")

	if s.Kind == SymbolFunction {
		params := make([]string, len(s.Parameters))
		for i, p := range s.Parameters {
			params[i] = p.Name + " " + p.Type.String()
		}
		fmt.Fprintf(&b, "function(%s) -> %s", strings.Join(params, ", "), s.ReturnType)
		return b.String()
	}

	if s.IsConstant {
		b.WriteString("const ")
	}
	b.WriteString(s.Type.String())
	if s.HasValue() {
		fmt.Fprintf(&b, " = %v", s.Value)
	}
	return b.String()
}
