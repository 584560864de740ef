package diagnostics

// Error codes for the MiniJava front end
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"

	// Parser errors (P prefix)
	ErrUnexpectedToken = "P0001"
	ErrExpectedToken   = "P0002"
	ErrMissingType     = "P0003"

	// Symbol table errors (D prefix)
	ErrDuplicateClass     = "D0001"
	ErrDuplicateField     = "D0002"
	ErrDuplicateMethod    = "D0003"
	ErrDuplicateParameter = "D0004"
	ErrDuplicateVariable  = "D0005"
)
