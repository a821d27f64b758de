package pipeline

import (
	"minilang/internal/frontend/ast"
	"minilang/internal/ir"
	"minilang/internal/phase"
	"minilang/internal/semantics/collector"
	"minilang/internal/tokens"
)

// Unit is one source file and everything the pipeline derives from it.
// Fields are filled in phase order; a nil field means its phase has not run.
type Unit struct {
	FilePath string
	Content  string

	Tokens  []tokens.Token
	AST     *ast.Program
	Symbols *collector.Collector
	IR      *ir.Program

	Phase phase.ModulePhase
}

// NewUnit creates a unit for in-memory source. filepath is only used for diagnostics.
func NewUnit(filepath, content string) *Unit {
	return &Unit{
		FilePath: filepath,
		Content:  content,
		Phase:    phase.PhaseNotStarted,
	}
}
