package ir

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"minilang/internal/tokens"
)

func sampleBody() []Instr {
	return []Instr{
		&ProcBegin{Name: "f"},
		&Label{ID: 0},
		&BinOp{Dest: 0, Op: tokens.LESS_TOKEN, Left: Var("i"), Right: IntConst(3)},
		&IfFalseGoto{Cond: Temp(0), Target: 1},
		&UnOp{Dest: 1, Op: tokens.MINUS_TOKEN, X: Var("i")},
		&Call{Dest: 2, Name: "g"},
		&Assign{Dest: "i", Src: Temp(1)},
		&Goto{Target: 0},
		&Label{ID: 1},
		&IfGoto{Cond: Temp(2), Target: 0},
		&Return{Value: Temp(2)},
		&ProcEnd{},
	}
}

func TestCounts(t *testing.T) {
	temps, labels := Counts(sampleBody())
	if temps != 3 || labels != 2 {
		t.Errorf("Expected 3 temps and 2 labels, got %d and %d", temps, labels)
	}

	temps, labels = Counts([]Instr{&Assign{Dest: "x", Src: IntConst(1)}})
	if temps != 0 || labels != 0 {
		t.Errorf("Expected no temps or labels, got %d and %d", temps, labels)
	}
}

func TestRenumber(t *testing.T) {
	body := sampleBody()
	got := Renumber(body, 5, 2)

	want := []Instr{
		&ProcBegin{Name: "f"},
		&Label{ID: 2},
		&BinOp{Dest: 5, Op: tokens.LESS_TOKEN, Left: Var("i"), Right: IntConst(3)},
		&IfFalseGoto{Cond: Temp(5), Target: 3},
		&UnOp{Dest: 6, Op: tokens.MINUS_TOKEN, X: Var("i")},
		&Call{Dest: 7, Name: "g"},
		&Assign{Dest: "i", Src: Temp(6)},
		&Goto{Target: 2},
		&Label{ID: 3},
		&IfGoto{Cond: Temp(7), Target: 2},
		&Return{Value: Temp(7)},
		&ProcEnd{},
	}

	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("Renumber mismatch:\n%s", strings.Join(diff, "\n"))
	}

	// input untouched
	if diff := pretty.Diff(sampleBody(), body); len(diff) > 0 {
		t.Errorf("Renumber modified its input:\n%s", strings.Join(diff, "\n"))
	}
}

func TestRenumberZeroOffsetIsIdentity(t *testing.T) {
	body := sampleBody()
	if Format(&Program{Instrs: Renumber(body, 0, 0)}) != Format(&Program{Instrs: body}) {
		t.Error("Expected zero offsets to preserve rendering")
	}
}
