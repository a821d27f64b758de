package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"minilang/colors"
	"minilang/internal/diagnostics"
	"minilang/internal/frontend/lexer"
	"minilang/internal/frontend/parser"
	"minilang/internal/ir/gen"
	"minilang/internal/phase"
	"minilang/internal/semantics/collector"
)

// ErrCompilationFailed is returned by Run once a stage error has been reported
// to the diagnostic bag.
var ErrCompilationFailed = errors.New("compilation failed with errors")

// Config selects which optional stages run and how.
type Config struct {
	// Debug prints a phase trace to Trace.
	Debug bool
	// Trace receives the debug trace. Defaults to os.Stderr.
	Trace io.Writer
	// Collect runs the symbol collector between parsing and IR generation.
	Collect bool
	// Workers > 0 lowers functions concurrently with at most that many goroutines.
	Workers int
	// StopAfter ends the run once the unit reaches this phase.
	// PhaseNotStarted means run to completion.
	StopAfter phase.ModulePhase
}

// Pipeline coordinates the compilation of a single unit
type Pipeline struct {
	unit *Unit
	diag *diagnostics.DiagnosticBag
	cfg  Config
}

// diagnoser is implemented by every stage error that can describe itself to the user.
type diagnoser interface {
	Diagnostic(filepath string) *diagnostics.Diagnostic
}

// New creates a new compilation pipeline
func New(unit *Unit, diag *diagnostics.DiagnosticBag, cfg Config) *Pipeline {
	if cfg.Trace == nil {
		cfg.Trace = os.Stderr
	}
	diag.AddSourceContent(unit.FilePath, unit.Content)
	return &Pipeline{
		unit: unit,
		diag: diag,
		cfg:  cfg,
	}
}

// Run executes the pipeline. The first stage error is added to the diagnostic bag
// and Run returns ErrCompilationFailed.
func (p *Pipeline) Run(ctx context.Context) error {
	p.tracef(colors.CYAN, "\n[Phase 1] Lex\n")
	if err := p.runLexPhase(); err != nil {
		return err
	}
	if p.done() {
		return p.finish()
	}

	p.tracef(colors.CYAN, "\n[Phase 2] Parse\n")
	if err := p.runParsePhase(); err != nil {
		return err
	}
	if p.done() {
		return p.finish()
	}

	if p.cfg.Collect {
		p.tracef(colors.CYAN, "\n[Phase 3] Symbol Collection\n")
		if err := p.runCollectorPhase(); err != nil {
			return err
		}
		if p.done() {
			return p.finish()
		}
	}

	p.tracef(colors.CYAN, "\n[Phase 4] IR Generation\n")
	if err := p.runIRPhase(ctx); err != nil {
		return err
	}
	return p.finish()
}

func (p *Pipeline) runLexPhase() error {
	lex := lexer.New(p.unit.FilePath, p.unit.Content)
	if p.cfg.Debug {
		lex.Trace = p.cfg.Trace
	}
	toks, err := lex.Tokenize()
	if err != nil {
		return p.fail(err)
	}
	p.unit.Tokens = toks
	return p.advance(phase.PhaseLexed)
}

func (p *Pipeline) runParsePhase() error {
	prog, err := parser.Parse(p.unit.Tokens)
	if err != nil {
		return p.fail(err)
	}
	p.unit.AST = prog
	p.tracef(colors.GREY, "  %d function(s)\n", len(prog.Functions))
	return p.advance(phase.PhaseParsed)
}

func (p *Pipeline) runCollectorPhase() error {
	c, err := collector.Collect(p.unit.AST)
	if err != nil {
		return p.fail(err)
	}
	p.unit.Symbols = c
	for _, shadow := range c.Shadows {
		p.diag.Add(shadow.Diagnostic(p.diag.FilePath()))
	}
	p.tracef(colors.GREY, "  %d symbol(s), %d shadowed\n", len(c.Entries), len(c.Shadows))
	return p.advance(phase.PhaseCollected)
}

func (p *Pipeline) runIRPhase(ctx context.Context) error {
	if p.cfg.Workers > 0 {
		prog, err := gen.GenerateConcurrent(ctx, p.unit.AST, p.cfg.Workers)
		if err != nil {
			return fmt.Errorf("generate IR: %w", err)
		}
		p.unit.IR = prog
	} else {
		p.unit.IR = gen.Generate(p.unit.AST)
	}
	p.tracef(colors.GREY, "  %d instruction(s)\n", len(p.unit.IR.Instrs))
	return p.advance(phase.PhaseIRGenerated)
}

// advance moves the unit to next, refusing out-of-order transitions.
func (p *Pipeline) advance(next phase.ModulePhase) error {
	if !phase.CanAdvance(p.unit.Phase, next) {
		return fmt.Errorf("invalid phase transition %s -> %s", p.unit.Phase, next)
	}
	p.unit.Phase = next
	return nil
}

func (p *Pipeline) done() bool {
	return p.cfg.StopAfter != phase.PhaseNotStarted && p.unit.Phase >= p.cfg.StopAfter
}

func (p *Pipeline) finish() error {
	if p.diag.HasErrors() {
		return ErrCompilationFailed
	}
	p.tracef(colors.GREEN, "\n✓ Compilation successful! (reached %s)\n", p.unit.Phase)
	if n := p.diag.WarningCount(); n > 0 {
		p.tracef(colors.ORANGE, "  %d warning(s)\n", n)
	}
	return nil
}

// fail records err in the diagnostic bag and stops the run.
func (p *Pipeline) fail(err error) error {
	var d diagnoser
	if errors.As(err, &d) {
		p.diag.Add(d.Diagnostic(p.diag.FilePath()))
	} else {
		p.diag.Add(diagnostics.NewError(err.Error()))
	}
	return fmt.Errorf("%w: %w", ErrCompilationFailed, err)
}

func (p *Pipeline) tracef(c colors.COLOR, format string, args ...any) {
	if p.cfg.Debug {
		c.Fprintf(p.cfg.Trace, format, args...)
	}
}
