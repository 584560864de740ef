package diagnostics

import (
	"fmt"

	"minijava/internal/source"
)

// Common diagnostic builders for the lexer

// UnexpectedCharacter creates a diagnostic for an unexpected character
func UnexpectedCharacter(filepath string, loc *source.Location, char rune) *Diagnostic {
	return NewError(fmt.Sprintf("unrecognized character '%c'", char)).
		WithCode(ErrUnexpectedCharacter).
		WithLabel(filepath, loc, "unexpected character").
		WithHelp("remove this character or check if it's a typo")
}

// Common diagnostic builders for the parser

// UnexpectedToken creates a diagnostic for an unexpected token
func UnexpectedToken(filepath string, loc *source.Location, found, expected string) *Diagnostic {
	msg := "unexpected token " + found
	if expected != "" {
		msg = "expected " + expected + ", found " + found
	}

	return NewError(msg).
		WithCode(ErrUnexpectedToken).
		WithLabel(filepath, loc, "unexpected token here")
}

// ExpectedType creates a diagnostic for a missing type in a declaration
func ExpectedType(filepath string, loc *source.Location, found string) *Diagnostic {
	return NewError("expected type, found "+found).
		WithCode(ErrMissingType).
		WithLabel(filepath, loc, "expected int, boolean, int[] or a class name").
		WithHelp("declarations start with a type")
}

// Symbol table builders. These carry no source position.

// DuplicateClass reports a class declared twice in one compilation unit
func DuplicateClass(filepath, class string) *Diagnostic {
	return NewError(fmt.Sprintf("class %s already defined", class)).
		WithCode(ErrDuplicateClass).
		WithFile(filepath).
		WithNote("the body of the second declaration was skipped")
}

// DuplicateField reports a field declared twice in one class
func DuplicateField(filepath, field, class string) *Diagnostic {
	return NewError(fmt.Sprintf("field %s already defined in class %s", field, class)).
		WithCode(ErrDuplicateField).
		WithFile(filepath)
}

// DuplicateMethod reports a method declared twice in one class
func DuplicateMethod(filepath, method, class string) *Diagnostic {
	return NewError(fmt.Sprintf("method %s already defined in class %s", method, class)).
		WithCode(ErrDuplicateMethod).
		WithFile(filepath).
		WithHelp("methods cannot be overloaded; rename one of them")
}

// DuplicateParameter reports a parameter whose name is already taken in its method
func DuplicateParameter(filepath, param, method, class string) *Diagnostic {
	return NewError(fmt.Sprintf("parameter %s already defined in method %s of class %s", param, method, class)).
		WithCode(ErrDuplicateParameter).
		WithFile(filepath)
}

// DuplicateVariable reports a local variable whose name is already taken in its method
func DuplicateVariable(filepath, variable, method, class string) *Diagnostic {
	return NewError(fmt.Sprintf("variable %s already defined in method %s of class %s", variable, method, class)).
		WithCode(ErrDuplicateVariable).
		WithFile(filepath).
		WithNote("parameters and local variables share one namespace")
}
