package diagnostics

// Error codes
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrInvalidExpression = "P0003"
	ErrInvalidStatement  = "P0004"
	ErrInvalidNumber     = "P0005"

	// Symbol table errors (T prefix)
	ErrUndefinedSymbol  = "T0002"
	ErrRedeclaredSymbol = "T0003"

	// Warnings (W prefix)
	WarnShadowedSymbol = "W0001"

	// Input errors (I prefix)
	ErrUnreadableInput = "I0001"
)
