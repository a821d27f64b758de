package compiler

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"

	"minilang/colors"
	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/ir"
	"minilang/internal/phase"
	"minilang/internal/pipeline"
	"minilang/internal/semantics/collector"
	"minilang/internal/tokens"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// InMemoryName is the file name diagnostics use for Options.Code.
const InMemoryName = "<input>"

// Options for compilation
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation (-e and WASM)
	Code string
	// Debug output
	Debug bool
	// Trace receives the debug output. Defaults to os.Stderr.
	Trace io.Writer
	// Output format: ANSI or HTML
	LogFormat FORMAT

	// Dumps to include in Result.Output. With none set, the IR is dumped.
	DumpTokens  bool
	DumpAST     bool
	DumpSymbols bool
	DumpIR      bool

	// Workers > 0 generates IR for functions concurrently.
	Workers int
}

// Result of compilation. On failure Output holds the rendered diagnostics,
// otherwise the requested dumps in tokens, AST, symbols, IR order.
// Warnings holds rendered warnings from a successful run.
type Result struct {
	Success  bool
	Output   string
	Warnings string

	Tokens  string
	AST     string
	Symbols string
	IR      string
}

// Compile compiles minilang code and returns the result
func Compile(in *Options) Result {
	opts := *in
	filePath := InMemoryName
	content := opts.Code

	if opts.EntryFile != "" {
		filePath = opts.EntryFile
		data, err := os.ReadFile(opts.EntryFile)
		if err != nil {
			bag := diagnostics.NewDiagnosticBag(filePath)
			bag.Add(diagnostics.NewError(fmt.Sprintf("cannot read %s: %v", filePath, err)).
				WithCode(diagnostics.ErrUnreadableInput))
			return Result{Success: false, Output: render(bag, opts.LogFormat)}
		}
		content = string(data)
	}

	if !opts.DumpTokens && !opts.DumpAST && !opts.DumpSymbols && !opts.DumpIR {
		opts.DumpIR = true
	}

	bag := diagnostics.NewDiagnosticBag(filePath)
	unit := pipeline.NewUnit(filePath, content)
	p := pipeline.New(unit, bag, pipeline.Config{
		Debug:     opts.Debug,
		Trace:     opts.Trace,
		Collect:   opts.DumpSymbols,
		Workers:   opts.Workers,
		StopAfter: stopAfter(&opts),
	})

	if err := p.Run(context.Background()); err != nil {
		if !bag.HasErrors() {
			bag.Add(diagnostics.NewError(err.Error()))
		}
		return Result{Success: false, Output: render(bag, opts.LogFormat)}
	}

	if opts.Debug {
		trace := opts.Trace
		if trace == nil {
			trace = os.Stderr
		}
		p.PrintSummary(trace)
	}

	res := Result{Success: true}
	if bag.WarningCount() > 0 {
		res.Warnings = render(bag, opts.LogFormat)
	}
	var out strings.Builder
	if opts.DumpTokens {
		res.Tokens = FormatTokens(unit.Tokens)
		out.WriteString(res.Tokens)
	}
	if opts.DumpAST {
		res.AST = FormatAST(unit.AST)
		out.WriteString(res.AST)
	}
	if opts.DumpSymbols {
		res.Symbols = FormatSymbols(unit.Symbols)
		out.WriteString(res.Symbols)
	}
	if opts.DumpIR {
		res.IR = ir.Format(unit.IR)
		out.WriteString(res.IR)
	}
	res.Output = out.String()
	if opts.LogFormat == HTML {
		res.Output = colors.ConvertANSIToHTML(res.Output)
	}
	return res
}

// stopAfter returns the last phase any requested dump needs.
func stopAfter(opts *Options) phase.ModulePhase {
	switch {
	case opts.DumpIR:
		return phase.PhaseIRGenerated
	case opts.DumpSymbols:
		return phase.PhaseCollected
	case opts.DumpAST:
		return phase.PhaseParsed
	default:
		return phase.PhaseLexed
	}
}

func render(bag *diagnostics.DiagnosticBag, format FORMAT) string {
	if format == HTML {
		return bag.EmitAllToHTML()
	}
	return bag.EmitAllToString()
}

// FormatTokens renders one token per line, end of input included.
func FormatTokens(toks []tokens.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatAST pretty-prints the tree as a Go value.
func FormatAST(prog *ast.Program) string {
	return pretty.Sprint(prog) + "\n"
}

// FormatSymbols lists functions first, then each function's declarations
// indented by scope depth.
func FormatSymbols(c *collector.Collector) string {
	if c == nil {
		return ""
	}

	var b strings.Builder
	current := ""
	for _, e := range c.Entries {
		if e.Function == "" {
			fmt.Fprintf(&b, "%s\n", e.Symbol)
			continue
		}
		if e.Function != current {
			current = e.Function
			fmt.Fprintf(&b, "in %s:\n", current)
		}
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", e.Depth), e.Symbol)
	}
	return b.String()
}
