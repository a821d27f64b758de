package tokens

import (
	"bytes"
	"testing"

	"minilang/colors"
	"minilang/internal/source"
)

func TestKeywordReclassification(t *testing.T) {
	tests := map[string]TOKEN{
		"if":       IF_TOKEN,
		"else":     ELSE_TOKEN,
		"while":    WHILE_TOKEN,
		"do":       DO_TOKEN,
		"for":      FOR_TOKEN,
		"function": FUNCTION_TOKEN,
		"int":      INT_TOKEN,
		"bool":     BOOL_TOKEN,
		"return":   RETURN_TOKEN,
		"true":     BOOLEAN_TOKEN,
		"false":    BOOLEAN_TOKEN,
	}
	for word, want := range tests {
		got, ok := Keyword(word)
		if !ok {
			t.Errorf("Expected %q to be reserved", word)
			continue
		}
		if got != want {
			t.Errorf("Keyword(%q): expected %s, got %s", word, want, got)
		}
	}
	for _, word := range []string{"x", "If", "iff", "main", "integer"} {
		if IsKeyword(word) {
			t.Errorf("Expected %q not to be reserved", word)
		}
	}
}

func TestIsTypeKeyword(t *testing.T) {
	if !IsTypeKeyword(INT_TOKEN) || !IsTypeKeyword(BOOL_TOKEN) {
		t.Error("Expected int and bool to start declarations")
	}
	if IsTypeKeyword(IDENTIFIER_TOKEN) || IsTypeKeyword(BOOLEAN_TOKEN) {
		t.Error("Expected identifier and boolean literal not to start declarations")
	}
}

func TestTokenString(t *testing.T) {
	start := source.Position{Line: 2, Column: 5}
	end := source.Position{Line: 2, Column: 7}

	op := NewToken(DOUBLE_EQUAL_TOKEN, "==", start, end)
	if got := op.String(); got != `2:5 "=="` {
		t.Errorf("Expected operator rendering, got %q", got)
	}

	id := NewToken(IDENTIFIER_TOKEN, "ab", start, end)
	if got := id.String(); got != `2:5 "ab" (identifier)` {
		t.Errorf("Expected identifier rendering, got %q", got)
	}
}

func TestTokenDebug(t *testing.T) {
	colors.Enabled = false
	defer func() { colors.Enabled = true }()

	var buf bytes.Buffer
	tok := NewToken(NUMBER_TOKEN, "42", source.Position{Line: 1, Column: 3}, source.Position{Line: 1, Column: 5})
	tok.Debug(&buf, "main.ml")
	if got := buf.String(); got != "main.ml:1:3 \"42\" ('integer literal')\n" {
		t.Errorf("Unexpected debug line %q", got)
	}
}
