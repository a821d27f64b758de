package tokens

import (
	"fmt"
	"io"

	"minilang/colors"
	"minilang/internal/source"
)

// TOKEN is the kind of a token. Keyword, operator and punctuation kinds are
// spelled exactly as they appear in source, so a kind doubles as its display text.
type TOKEN string

const (
	//keywords
	FUNCTION_TOKEN TOKEN = "function"
	IF_TOKEN       TOKEN = "if"
	ELSE_TOKEN     TOKEN = "else"
	WHILE_TOKEN    TOKEN = "while"
	DO_TOKEN       TOKEN = "do"
	FOR_TOKEN      TOKEN = "for"
	RETURN_TOKEN   TOKEN = "return"
	INT_TOKEN      TOKEN = "int"
	BOOL_TOKEN     TOKEN = "bool"
	//literals
	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "integer literal"
	BOOLEAN_TOKEN    TOKEN = "boolean literal"
	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	NOT_TOKEN TOKEN = "!"
	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	//comparison operators
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_TOKEN          TOKEN = "<"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_TOKEN       TOKEN = ">"
	GREATER_EQUAL_TOKEN TOKEN = ">="
	//assignment
	EQUALS_TOKEN TOKEN = "="
	//delimiters
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	SEMICOLON_TOKEN TOKEN = ";"
	COMMA_TOKEN     TOKEN = ","

	EOF_TOKEN TOKEN = "end of input"
)

var keyWordsMap = map[string]TOKEN{
	string(FUNCTION_TOKEN): FUNCTION_TOKEN,
	string(IF_TOKEN):       IF_TOKEN,
	string(ELSE_TOKEN):     ELSE_TOKEN,
	string(WHILE_TOKEN):    WHILE_TOKEN,
	string(DO_TOKEN):       DO_TOKEN,
	string(FOR_TOKEN):      FOR_TOKEN,
	string(RETURN_TOKEN):   RETURN_TOKEN,
	string(INT_TOKEN):      INT_TOKEN,
	string(BOOL_TOKEN):     BOOL_TOKEN,
	"true":                 BOOLEAN_TOKEN,
	"false":                BOOLEAN_TOKEN,
}

// Keyword returns the reserved kind for word, if word is reserved.
func Keyword(word string) (TOKEN, bool) {
	kind, ok := keyWordsMap[word]
	return kind, ok
}

func IsKeyword(word string) bool {
	_, ok := keyWordsMap[word]
	return ok
}

// IsTypeKeyword reports whether kind starts a declaration.
func IsTypeKeyword(kind TOKEN) bool {
	return kind == INT_TOKEN || kind == BOOL_TOKEN
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}

// Loc returns the span covered by the token.
func (t Token) Loc() source.Location {
	return source.NewLocation(t.Start, t.End)
}

func (t Token) String() string {
	if t.Value == string(t.Kind) {
		return fmt.Sprintf("%d:%d %q", t.Start.Line, t.Start.Column, t.Value)
	}
	return fmt.Sprintf("%d:%d %q (%s)", t.Start.Line, t.Start.Column, t.Value, t.Kind)
}

// Debug writes the token in the lexer's trace format.
func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}
