package semantics

import (
	"fmt"
	"regexp"
	"strings"

	"minijava/internal/frontend/lexer"
)

// Kind tags a declared type. The set is closed: every Type has exactly one of these.
type Kind int

const (
	KindInt Kind = iota
	KindBoolean
	KindIntArray
	KindClass
	// Void and StringArray only appear on the synthesized entry method.
	KindVoid
	KindStringArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBoolean:
		return "boolean"
	case KindIntArray:
		return "int[]"
	case KindClass:
		return "class"
	case KindVoid:
		return "void"
	case KindStringArray:
		return "String[]"
	default:
		return "unknown"
	}
}

// Type is the declared type of a field, variable, parameter or return value.
// Class types carry only the class name; nothing is resolved here.
type Type struct {
	kind  Kind
	class string
}

var (
	Int         = Type{kind: KindInt}
	Boolean     = Type{kind: KindBoolean}
	IntArray    = Type{kind: KindIntArray}
	Void        = Type{kind: KindVoid}
	StringArray = Type{kind: KindStringArray}
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ClassType returns the type referring to the class called name
func ClassType(name string) (Type, error) {
	if !identifierPattern.MatchString(name) {
		return Type{}, fmt.Errorf("invalid class name %q", name)
	}
	if lexer.IsKeyword(name) {
		return Type{}, fmt.Errorf("invalid class name %q: reserved word", name)
	}
	return Type{kind: KindClass, class: name}, nil
}

// ParseType turns a written type tag (`int`, `boolean`, `int[]`, `void`,
// `String[]` or a class name) into a Type.
func ParseType(tag string) (Type, error) {
	switch strings.TrimSpace(tag) {
	case "int":
		return Int, nil
	case "boolean":
		return Boolean, nil
	case "int[]":
		return IntArray, nil
	case "void":
		return Void, nil
	case "String[]":
		return StringArray, nil
	}

	t, err := ClassType(strings.TrimSpace(tag))
	if err != nil {
		return Type{}, fmt.Errorf("malformed type tag %q: %w", tag, err)
	}
	return t, nil
}

func (t Type) Kind() Kind {
	return t.kind
}

// ClassName is empty unless Kind is KindClass
func (t Type) ClassName() string {
	return t.class
}

func (t Type) IsClass() bool {
	return t.kind == KindClass
}

func (t Type) String() string {
	if t.kind == KindClass {
		return t.class
	}
	return t.kind.String()
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
