package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect Position
	}{
		{"empty", "", Position{Line: 1, Column: 1, Index: 0}},
		{"single line", "function", Position{Line: 1, Column: 9, Index: 8}},
		{"tab counts as one column", "\tx", Position{Line: 1, Column: 3, Index: 2}},
		{"one break", "ab\ncd", Position{Line: 2, Column: 3, Index: 5}},
		{"trailing break", "ab\n", Position{Line: 2, Column: 1, Index: 3}},
		{"several breaks", "\n\n  x", Position{Line: 3, Column: 4, Index: 5}},
		{"multibyte rune", "ñx", Position{Line: 1, Column: 3, Index: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Start()
			pos.Advance(tt.text)
			if pos != tt.expect {
				t.Errorf("Expected %+v, got %+v", tt.expect, pos)
			}
		})
	}
}

func TestAdvanceIsCumulative(t *testing.T) {
	pos := Start()
	pos.Advance("int x")
	pos.Advance(";\n")
	pos.Advance("  y")
	if pos.Line != 2 || pos.Column != 4 {
		t.Errorf("Expected 2:4, got %s", pos)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\n\nc\n")
	want := []string{"a", "b", "", "c"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i+1, want[i], lines[i])
		}
	}
	if len(SplitLines("")) != 0 {
		t.Error("Expected no lines for empty content")
	}
}
