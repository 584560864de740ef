package lexer

import (
	"testing"

	"minijava/internal/diagnostics"
)

func kinds(toks []Token) []TOKEN {
	out := make([]TOKEN, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeClassHeader(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	toks := New("test.java", "class B extends A { int[] xs; }", diag).Tokenize(false)

	want := []TOKEN{
		CLASS_TOKEN, IDENTIFIER_TOKEN, EXTENDS_TOKEN, IDENTIFIER_TOKEN, OPEN_CURLY,
		INT_TOKEN, OPEN_BRACKET, CLOSE_BRACKET, IDENTIFIER_TOKEN, SEMICOLON_TOKEN,
		CLOSE_CURLY, EOF_TOKEN,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if toks[1].Value != "B" || toks[3].Value != "A" {
		t.Errorf("Unexpected identifier values %q, %q", toks[1].Value, toks[3].Value)
	}
	if diag.Len() != 0 {
		t.Errorf("Expected no diagnostics, got %v", diag.Messages())
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	src := "// line\n/* block\n comment */ x"
	toks := New("test.java", src, diagnostics.NewDiagnosticBag()).Tokenize(false)

	if len(toks) != 2 || toks[0].Kind != IDENTIFIER_TOKEN {
		t.Fatalf("Expected identifier then EOF, got %v", kinds(toks))
	}
	if toks[0].Start.Line != 3 || toks[0].Start.Column != 13 {
		t.Errorf("Expected x at 3:13, got %d:%d", toks[0].Start.Line, toks[0].Start.Column)
	}
}

func TestTokenizePrintAndOperators(t *testing.T) {
	toks := New("test.java", "System.out.println(a && b < !c);", diagnostics.NewDiagnosticBag()).Tokenize(false)

	want := []TOKEN{
		PRINT_TOKEN, OPEN_PAREN, IDENTIFIER_TOKEN, AND_TOKEN, IDENTIFIER_TOKEN,
		LESS_TOKEN, NOT_TOKEN, IDENTIFIER_TOKEN, CLOSE_PAREN, SEMICOLON_TOKEN, EOF_TOKEN,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTokenizeKeywordPrefixIsIdentifier(t *testing.T) {
	toks := New("test.java", "classy intx", diagnostics.NewDiagnosticBag()).Tokenize(false)

	if toks[0].Kind != IDENTIFIER_TOKEN || toks[1].Kind != IDENTIFIER_TOKEN {
		t.Errorf("Expected identifiers, got %v", kinds(toks))
	}
}

func TestTokenizeReportsUnknownCharacter(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	toks := New("test.java", "int # x;", diag).Tokenize(false)

	if diag.ErrorCount() != 1 {
		t.Fatalf("Expected 1 error, got %d", diag.ErrorCount())
	}
	if got := diag.Diagnostics()[0].Code; got != diagnostics.ErrUnexpectedCharacter {
		t.Errorf("Expected code %s, got %s", diagnostics.ErrUnexpectedCharacter, got)
	}
	// int, x, ;, EOF
	if len(toks) != 4 {
		t.Errorf("Expected lexing to continue past the bad character, got %v", kinds(toks))
	}
}
