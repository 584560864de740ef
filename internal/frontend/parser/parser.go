package parser

import (
	"fmt"

	"minijava/internal/diagnostics"
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
	"minijava/internal/source"
)

// ============================================================================
// PARSER - Token to AST Conversion
// ============================================================================
//
// The Parser builds a typed syntax tree from a token stream. It reports
// problems into the diagnostic bag and keeps going; the returned program may
// be partial but is never nil.

// Parser holds temporary state during parsing of a single file.
type Parser struct {
	tokens      []lexer.Token
	current     int
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
}

// Parse is the parsing entry point called by the pipeline.
func Parse(tokens []lexer.Token, filepath string, diag *diagnostics.DiagnosticBag) *ast.Program {
	if len(tokens) == 0 {
		tokens = []lexer.Token{{Kind: lexer.EOF_TOKEN, Value: string(lexer.EOF_TOKEN)}}
	}

	state := &Parser{
		tokens:      tokens,
		current:     0,
		diagnostics: diag,
		filepath:    filepath,
	}

	return state.parseProgram()
}

// parseProgram: MainClass ClassDecl* EOF
func (p *Parser) parseProgram() *ast.Program {
	start := p.peek().Start
	program := &ast.Program{
		FullPath: p.filepath,
		Classes:  []*ast.ClassDecl{},
	}

	program.Main = p.parseMainClass()

	for !p.isAtEnd() {
		if !p.check(lexer.CLASS_TOKEN) {
			p.error(fmt.Sprintf("unexpected token at top level: %s", p.peek().Value))
			p.advance()
			continue
		}
		program.Classes = append(program.Classes, p.parseClassDecl())
	}

	program.Location = p.makeLocation(start)
	return program
}

// Helper methods

func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// peekAt looks ahead offset tokens without consuming anything
func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind lexer.TOKEN) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}

	tok := p.peek()
	p.diagnostics.Add(
		diagnostics.UnexpectedToken(p.filepath, source.NewLocation(&tok.Start, &tok.End), tok.Value, fmt.Sprintf("'%s'", kind)),
	)
	return tok
}

// expectWord consumes an identifier that must be spelled word (`main`, `String`, `length`)
func (p *Parser) expectWord(word string) {
	tok := p.peek()
	if tok.Kind == lexer.IDENTIFIER_TOKEN && tok.Value == word {
		p.advance()
		return
	}
	p.diagnostics.Add(
		diagnostics.UnexpectedToken(p.filepath, source.NewLocation(&tok.Start, &tok.End), tok.Value, fmt.Sprintf("'%s'", word)),
	)
}

// error reports a parsing error to the diagnostics
func (p *Parser) error(msg string) {
	tok := p.peek()
	loc := source.NewLocation(&tok.Start, &tok.End)
	p.diagnostics.Add(
		diagnostics.NewError(msg).
			WithCode(diagnostics.ErrUnexpectedToken).
			WithLabel(p.filepath, loc, ""),
	)
}

// makeLocation creates a source location from start to current position
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.previous().End
	return *source.NewLocation(&start, &end)
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.check(lexer.IDENTIFIER_TOKEN) {
		p.error(fmt.Sprintf("expected identifier, got %s", p.peek().Value))
		tok := p.peek()
		return &ast.Identifier{
			Name:     "<error>",
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}
	}

	tok := p.advance()
	return &ast.Identifier{
		Name:     tok.Value,
		Location: *source.NewLocation(&tok.Start, &tok.End),
	}
}
