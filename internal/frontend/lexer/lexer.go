package lexer

import (
	"regexp"

	"minijava/internal/diagnostics"
	"minijava/internal/source"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// Lexer turns MiniJava source text into tokens.
// Unknown characters are reported to the diagnostic bag and skipped.
type Lexer struct {
	diagnostics *diagnostics.DiagnosticBag
	Tokens      []Token
	Position    source.Position
	sourceCode  string
	FilePath    string
}

// patterns are tried in order; every regex is anchored at the start of the remainder
var patterns = []regexPattern{
	{regexp.MustCompile(`^\s+`), skipHandler},
	{regexp.MustCompile(`^//.*`), skipHandler},
	{regexp.MustCompile(`^/\*[\s\S]*?\*/`), skipHandler},
	{regexp.MustCompile(`^System\.out\.println\b`), defaultHandler(PRINT_TOKEN)},
	{regexp.MustCompile(`^[0-9]+`), numberHandler},
	{regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler},
	{regexp.MustCompile(`^&&`), defaultHandler(AND_TOKEN)},
	{regexp.MustCompile(`^<`), defaultHandler(LESS_TOKEN)},
	{regexp.MustCompile(`^\+`), defaultHandler(PLUS_TOKEN)},
	{regexp.MustCompile(`^-`), defaultHandler(MINUS_TOKEN)},
	{regexp.MustCompile(`^\*`), defaultHandler(MUL_TOKEN)},
	{regexp.MustCompile(`^!`), defaultHandler(NOT_TOKEN)},
	{regexp.MustCompile(`^=`), defaultHandler(EQUALS_TOKEN)},
	{regexp.MustCompile(`^;`), defaultHandler(SEMICOLON_TOKEN)},
	{regexp.MustCompile(`^,`), defaultHandler(COMMA_TOKEN)},
	{regexp.MustCompile(`^\.`), defaultHandler(DOT_TOKEN)},
	{regexp.MustCompile(`^\(`), defaultHandler(OPEN_PAREN)},
	{regexp.MustCompile(`^\)`), defaultHandler(CLOSE_PAREN)},
	{regexp.MustCompile(`^\[`), defaultHandler(OPEN_BRACKET)},
	{regexp.MustCompile(`^\]`), defaultHandler(CLOSE_BRACKET)},
	{regexp.MustCompile(`^\{`), defaultHandler(OPEN_CURLY)},
	{regexp.MustCompile(`^\}`), defaultHandler(CLOSE_CURLY)},
}

func New(filepath, content string, diag *diagnostics.DiagnosticBag) *Lexer {
	return &Lexer{
		sourceCode: content,
		Tokens:     make([]Token, 0),
		Position: source.Position{
			Line:   1,
			Column: 1,
			Index:  0,
		},
		diagnostics: diag,
		FilePath:    filepath,
	}
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func defaultHandler(token TOKEN) regexHandler {
	return func(lex *Lexer, regex *regexp.Regexp) {
		match := regex.FindString(lex.remainder())
		start := lex.Position
		lex.advance(match)
		lex.push(NewToken(token, match, start, lex.Position))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	if IsKeyword(identifier) {
		lex.push(NewToken(TOKEN(identifier), identifier, start, lex.Position))
	} else {
		lex.push(NewToken(IDENTIFIER_TOKEN, identifier, start, lex.Position))
	}
}

func numberHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	lex.push(NewToken(NUMBER_TOKEN, match, start, lex.Position))
}

// skipHandler consumes whitespace and comments without emitting a token
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	lex.advance(regex.FindString(lex.remainder()))
}

// Tokenize scans the whole source and returns the tokens, always ending with EOF_TOKEN.
func (lex *Lexer) Tokenize(debug bool) []Token {
	for !lex.atEOF() {
		matched := false

		for _, pattern := range patterns {
			if pattern.regex.MatchString(lex.remainder()) {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			start := lex.Position
			bad := []rune(lex.remainder())[0]
			lex.advance(string(bad))
			if lex.diagnostics != nil {
				lex.diagnostics.Add(
					diagnostics.UnexpectedCharacter(lex.FilePath, source.NewLocation(&start, &lex.Position), bad),
				)
			}
		}
	}

	lex.push(NewToken(EOF_TOKEN, string(EOF_TOKEN), lex.Position, lex.Position))

	if debug {
		for _, token := range lex.Tokens {
			token.Debug(lex.FilePath)
		}
	}

	return lex.Tokens
}
