package table

import (
	"fmt"
	"sort"
	"strings"

	"minilang/internal/semantics/symbols"
	"minilang/internal/source"
	"minilang/internal/types"
)

// SymbolTable is a stack of lexical scopes. The root scope at the bottom
// is never popped.
type SymbolTable struct {
	scopes []map[string]*symbols.Symbol
}

// New returns a table holding only the root scope.
func New() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*symbols.Symbol{make(map[string]*symbols.Symbol)},
	}
}

func (st *SymbolTable) innermost() map[string]*symbols.Symbol {
	return st.scopes[len(st.scopes)-1]
}

// EnterScope pushes an empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, make(map[string]*symbols.Symbol))
}

// ExitScope pops the innermost scope.
func (st *SymbolTable) ExitScope() error {
	if len(st.scopes) == 1 {
		return ErrRootScope
	}
	st.scopes[len(st.scopes)-1] = nil
	st.scopes = st.scopes[:len(st.scopes)-1]
	return nil
}

// Depth is the number of scopes above the root.
func (st *SymbolTable) Depth() int {
	return len(st.scopes) - 1
}

// Option configures a symbol created by AddSymbol.
type Option func(*symbols.Symbol)

// WithValue records an initial value.
func WithValue(value any) Option {
	return func(s *symbols.Symbol) { s.Value = value }
}

// WithLocation records where the symbol was declared.
func WithLocation(loc source.Location) Option {
	return func(s *symbols.Symbol) { s.Location = loc }
}

func AsFunction() Option {
	return func(s *symbols.Symbol) { s.Kind = symbols.SymbolFunction }
}

func AsConstant() Option {
	return func(s *symbols.Symbol) { s.IsConstant = true }
}

// AddSymbol declares name in the innermost scope. Names in enclosing scopes
// may be shadowed; a name already in the innermost scope is rejected.
func (st *SymbolTable) AddSymbol(name string, typ types.TYPE_NAME, opts ...Option) (*symbols.Symbol, error) {
	sym := &symbols.Symbol{Name: name, Kind: symbols.SymbolVariable, Type: typ}
	for _, opt := range opts {
		opt(sym)
	}
	if err := st.declare(sym, OpAdd); err != nil {
		return nil, err
	}
	return sym, nil
}

// RegisterFunction declares a function in the innermost scope.
func (st *SymbolTable) RegisterFunction(name string, returnType types.TYPE_NAME, params []symbols.Param, opts ...Option) (*symbols.Symbol, error) {
	sym := &symbols.Symbol{
		Name:       name,
		Kind:       symbols.SymbolFunction,
		Type:       types.TYPE_FUNC,
		ReturnType: returnType,
		Parameters: params,
	}
	for _, opt := range opts {
		opt(sym)
	}
	if err := st.declare(sym, OpRegister); err != nil {
		return nil, err
	}
	return sym, nil
}

func (st *SymbolTable) declare(sym *symbols.Symbol, op string) error {
	scope := st.innermost()
	if prev, exists := scope[sym.Name]; exists {
		return &SymbolError{Op: op, Name: sym.Name, Reason: reasonRedeclared, Previous: prev}
	}
	scope[sym.Name] = sym
	return nil
}

// Lookup finds the nearest binding of name, innermost scope first.
func (st *SymbolTable) Lookup(name string) (*symbols.Symbol, error) {
	if sym, ok := st.find(name); ok {
		return sym, nil
	}
	return nil, &SymbolError{Op: OpLookup, Name: name, Reason: reasonUndeclared}
}

// UpdateSymbol sets the value of the nearest binding of name in place.
func (st *SymbolTable) UpdateSymbol(name string, value any) error {
	sym, ok := st.find(name)
	if !ok {
		return &SymbolError{Op: OpUpdate, Name: name, Reason: reasonUndeclared}
	}
	sym.Value = value
	return nil
}

func (st *SymbolTable) find(name string) (*symbols.Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Current returns the symbols of the innermost scope sorted by name.
func (st *SymbolTable) Current() []*symbols.Symbol {
	return sortedSymbols(st.innermost())
}

func sortedSymbols(scope map[string]*symbols.Symbol) []*symbols.Symbol {
	syms := make([]*symbols.Symbol, 0, len(scope))
	for _, sym := range scope {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].Name < syms[j].Name })
	return syms
}

// String dumps every open scope, root first, names sorted.
func (st *SymbolTable) String() string {
	var b strings.Builder
	for depth, scope := range st.scopes {
		fmt.Fprintf(&b, "scope %d:\n", depth)
		for _, sym := range sortedSymbols(scope) {
			fmt.Fprintf(&b, "  %s\n", sym)
		}
	}
	return b.String()
}
