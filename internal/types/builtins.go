package types

type TYPE_NAME string

// Primitive types of the language. Only int and bool can be declared;
// function and void describe entries created by the symbol collector.
const (
	TYPE_INT  TYPE_NAME = "int"
	TYPE_BOOL TYPE_NAME = "bool"
	TYPE_FUNC TYPE_NAME = "function"
	TYPE_VOID TYPE_NAME = "void"

	TYPE_UNKNOWN TYPE_NAME = "unknown"
)

var declarable = map[string]TYPE_NAME{
	string(TYPE_INT):  TYPE_INT,
	string(TYPE_BOOL): TYPE_BOOL,
}

// FromKeyword maps a declaration keyword to its type, or TYPE_UNKNOWN.
func FromKeyword(keyword string) TYPE_NAME {
	if t, ok := declarable[keyword]; ok {
		return t
	}
	return TYPE_UNKNOWN
}

// IsDeclarable reports whether variables may be declared with this type.
func IsDeclarable(t TYPE_NAME) bool {
	_, ok := declarable[string(t)]
	return ok
}

func (t TYPE_NAME) String() string {
	return string(t)
}
