package lexer

import (
	"fmt"

	"minijava/colors"
	"minijava/internal/source"
)

type TOKEN string

const (
	//keywords
	CLASS_TOKEN   TOKEN = "class"
	EXTENDS_TOKEN TOKEN = "extends"
	PUBLIC_TOKEN  TOKEN = "public"
	STATIC_TOKEN  TOKEN = "static"
	VOID_TOKEN    TOKEN = "void"
	RETURN_TOKEN  TOKEN = "return"
	IF_TOKEN      TOKEN = "if"
	ELSE_TOKEN    TOKEN = "else"
	WHILE_TOKEN   TOKEN = "while"
	NEW_TOKEN     TOKEN = "new"
	THIS_TOKEN    TOKEN = "this"
	TRUE_TOKEN    TOKEN = "true"
	FALSE_TOKEN   TOKEN = "false"
	PRINT_TOKEN   TOKEN = "System.out.println"
	//types
	INT_TOKEN     TOKEN = "int"
	BOOLEAN_TOKEN TOKEN = "boolean"
	//literals
	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "integer literal"
	//operators
	AND_TOKEN    TOKEN = "&&"
	LESS_TOKEN   TOKEN = "<"
	PLUS_TOKEN   TOKEN = "+"
	MINUS_TOKEN  TOKEN = "-"
	MUL_TOKEN    TOKEN = "*"
	NOT_TOKEN    TOKEN = "!"
	EQUALS_TOKEN TOKEN = "="
	//punctuation
	SEMICOLON_TOKEN TOKEN = ";"
	COMMA_TOKEN     TOKEN = ","
	DOT_TOKEN       TOKEN = "."
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_BRACKET    TOKEN = "["
	CLOSE_BRACKET   TOKEN = "]"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"

	EOF_TOKEN TOKEN = "end of file"
)

var keywords = map[string]bool{
	string(CLASS_TOKEN):   true,
	string(EXTENDS_TOKEN): true,
	string(PUBLIC_TOKEN):  true,
	string(STATIC_TOKEN):  true,
	string(VOID_TOKEN):    true,
	string(RETURN_TOKEN):  true,
	string(IF_TOKEN):      true,
	string(ELSE_TOKEN):    true,
	string(WHILE_TOKEN):   true,
	string(NEW_TOKEN):     true,
	string(THIS_TOKEN):    true,
	string(TRUE_TOKEN):    true,
	string(FALSE_TOKEN):   true,
	string(INT_TOKEN):     true,
	string(BOOLEAN_TOKEN): true,
}

// IsKeyword reports whether word is reserved
func IsKeyword(word string) bool {
	return keywords[word]
}

// Token is a single lexeme with its span in the source
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func NewToken(kind TOKEN, value string, start, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}

// Debug prints the token in a compact colored form
func (t Token) Debug(filename string) {
	if t.Value == string(t.Kind) {
		colors.GREY.Printf("%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
		fmt.Printf("'%s'\n", t.Value)
		return
	}
	colors.GREY.Printf("%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	fmt.Printf("%s ", t.Kind)
	colors.YELLOW.Printf("'%s'\n", t.Value)
}
