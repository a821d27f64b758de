package gen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"minilang/internal/frontend/ast"
	"minilang/internal/frontend/parser"
	"minilang/internal/ir"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource(src)
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	return prog
}

func section(archive *txtar.Archive, name string) (string, bool) {
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}
	return "", false
}

// TestGolden lowers every testdata/*.txtar input and compares the rendered
// IR with its ir section.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			input, ok := section(archive, "input.ml")
			if !ok {
				t.Fatal("missing input.ml section")
			}
			want, ok := section(archive, "ir")
			if !ok {
				t.Fatal("missing ir section")
			}

			prog := mustParse(t, input)

			if got := ir.Format(Generate(prog)); got != want {
				t.Errorf("Generate mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
			}

			concurrent, err := GenerateConcurrent(context.Background(), prog, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got := ir.Format(concurrent); got != want {
				t.Errorf("GenerateConcurrent mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
			}
		})
	}
}

func countInstrs(prog *ir.Program) map[string]int {
	counts := map[string]int{}
	for _, instr := range prog.Instrs {
		counts[fmt.Sprintf("%T", instr)]++
	}
	return counts
}

func TestIfElseShape(t *testing.T) {
	prog := Generate(mustParse(t, "function f() { if (a < b) { return a; } else { return b; } }"))
	counts := countInstrs(prog)

	expected := map[string]int{
		"*ir.Label":       2,
		"*ir.IfFalseGoto": 1,
		"*ir.Goto":        1,
		"*ir.Return":      2,
		"*ir.BinOp":       1,
		"*ir.ProcBegin":   1,
		"*ir.ProcEnd":     1,
	}
	if diff := pretty.Diff(expected, counts); len(diff) > 0 {
		t.Errorf("Instruction counts differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestExactInstructions(t *testing.T) {
	prog := Generate(mustParse(t, "function f() { int y = -x * 2; }"))

	want := &ir.Program{Instrs: []ir.Instr{
		&ir.ProcBegin{Name: "f"},
		&ir.UnOp{Dest: 0, Op: "-", X: ir.Var("x")},
		&ir.BinOp{Dest: 1, Op: "*", Left: ir.Temp(0), Right: ir.IntConst(2)},
		&ir.Assign{Dest: "y", Src: ir.Temp(1)},
		&ir.ProcEnd{},
	}}
	if diff := pretty.Diff(want, prog); len(diff) > 0 {
		t.Errorf("IR mismatch:\n%s", strings.Join(diff, "\n"))
	}
}

func TestTempsAreUnique(t *testing.T) {
	src := `function f() {
    int a = (1 + 2) * (3 + 4);
    while (a > 0) { a = a - 1 - 1; }
}
function g() { return 1 + 2 + 3; }`
	prog := Generate(mustParse(t, src))

	seen := map[ir.Temp]bool{}
	for _, instr := range prog.Instrs {
		var dest ir.Temp
		switch i := instr.(type) {
		case *ir.BinOp:
			dest = i.Dest
		case *ir.UnOp:
			dest = i.Dest
		case *ir.Call:
			dest = i.Dest
		default:
			continue
		}
		if seen[dest] {
			t.Errorf("temp %s assigned twice", dest)
		}
		seen[dest] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 temps, got %d", len(seen))
	}
}

func TestGeneratorCountersPerInstance(t *testing.T) {
	prog := mustParse(t, "function f() { while (x) { x = x + 1; } }")

	first := New()
	if temps, labels := ir.Counts(first.Generate(prog).Instrs); temps != 1 || labels != 2 {
		t.Errorf("Expected 1 temp and 2 labels, got %d and %d", temps, labels)
	}

	// a fresh generator starts from zero
	if got, want := ir.Format(New().Generate(prog)), ir.Format(Generate(prog)); got != want {
		t.Errorf("Expected independent generators to agree:\n%s\n%s", got, want)
	}

	// reusing one keeps counting
	again := ir.Format(first.Generate(prog))
	if !strings.Contains(again, "t1 = x + 1") || !strings.Contains(again, "L2:") {
		t.Errorf("Expected counters to continue on reuse, got:\n%s", again)
	}
}

func TestConcurrentMatchesSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "function f%d() { int i = %d; while (i > 0) { if (i == 3) { i = i - 2; } else { i = i - 1; } } return -i; }\n", i, i)
	}
	prog := mustParse(t, b.String())
	want := Generate(prog)

	for _, limit := range []int{0, 1, 3, 64} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			got, err := GenerateConcurrent(context.Background(), prog, limit)
			if err != nil {
				t.Fatal(err)
			}
			if diff := pretty.Diff(want, got); len(diff) > 0 {
				t.Errorf("Concurrent IR differs:\n%s", strings.Join(diff[:min(len(diff), 10)], "\n"))
			}
		})
	}
}

func TestConcurrentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prog := mustParse(t, "function f() { } function g() { }")
	if _, err := GenerateConcurrent(ctx, prog, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestEmptyProgram(t *testing.T) {
	prog := Generate(&ast.Program{})
	if len(prog.Instrs) != 0 {
		t.Errorf("Expected no instructions, got %d", len(prog.Instrs))
	}
}
