package pipeline

import (
	"fmt"
	"io"

	"minilang/colors"
	"minilang/internal/utils/strings"
)

// PrintSummary writes a summary of the compilation to w
func (p *Pipeline) PrintSummary(w io.Writer) {
	u := p.unit

	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "        COMPILATION SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	fmt.Fprintf(w, "File: %s\n", u.FilePath)
	fmt.Fprintf(w, "Phase: %s\n\n", u.Phase)

	if u.Tokens != nil {
		fmt.Fprintf(w, " - %d %s\n", len(u.Tokens), strings.Pluralize("token", "tokens", len(u.Tokens)))
	}
	if u.AST != nil {
		n := len(u.AST.Functions)
		fmt.Fprintf(w, " - %d %s\n", n, strings.Pluralize("function", "functions", n))
	}
	if u.Symbols != nil {
		n := len(u.Symbols.Entries)
		fmt.Fprintf(w, " - %d %s\n", n, strings.Pluralize("symbol", "symbols", n))
	}
	if u.IR != nil {
		n := len(u.IR.Instrs)
		fmt.Fprintf(w, " - %d %s\n", n, strings.Pluralize("instruction", "instructions", n))
	}
	if n := p.diag.WarningCount(); n > 0 {
		colors.ORANGE.Fprintf(w, " - %d %s\n", n, strings.Pluralize("warning", "warnings", n))
	}
}
