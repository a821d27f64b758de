package ir

import (
	"fmt"
	"strings"

	"github.com/kr/text"
)

const bodyIndent = "    "

// Format renders the program one instruction per line, with procedure
// bodies indented under their PROC header.
func Format(prog *Program) string {
	if prog == nil {
		return ""
	}

	var out, body strings.Builder
	inProc := false

	for _, instr := range prog.Instrs {
		switch instr.(type) {
		case *ProcBegin:
			inProc = true
			out.WriteString(FormatInstr(instr) + "\n")
		case *ProcEnd:
			out.WriteString(text.Indent(body.String(), bodyIndent))
			body.Reset()
			inProc = false
			out.WriteString(FormatInstr(instr) + "\n")
		default:
			if inProc {
				body.WriteString(FormatInstr(instr) + "\n")
			} else {
				out.WriteString(FormatInstr(instr) + "\n")
			}
		}
	}

	// unterminated procedure
	out.WriteString(text.Indent(body.String(), bodyIndent))
	return out.String()
}

// FormatInstr renders a single instruction without indentation.
func FormatInstr(instr Instr) string {
	switch i := instr.(type) {
	case *Assign:
		return fmt.Sprintf("%s = %s", i.Dest, i.Src)
	case *BinOp:
		return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Left, i.Op, i.Right)
	case *UnOp:
		return fmt.Sprintf("%s = %s%s", i.Dest, i.Op, i.X)
	case *Call:
		return fmt.Sprintf("%s = CALL %s", i.Dest, i.Name)
	case *Label:
		return fmt.Sprintf("%s:", i.ID)
	case *Goto:
		return fmt.Sprintf("GOTO %s", i.Target)
	case *IfFalseGoto:
		return fmt.Sprintf("IF_FALSE %s GOTO %s", i.Cond, i.Target)
	case *IfGoto:
		return fmt.Sprintf("IF %s GOTO %s", i.Cond, i.Target)
	case *Return:
		return fmt.Sprintf("RETURN %s", i.Value)
	case *ProcBegin:
		return fmt.Sprintf("PROC %s:", i.Name)
	case *ProcEnd:
		return "ENDP"
	default:
		return "instr <unknown>"
	}
}
