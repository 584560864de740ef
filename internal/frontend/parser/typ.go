package parser

import (
	"minijava/internal/diagnostics"
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
	"minijava/internal/source"
)

// startsType reports whether the current token can begin a type
func (p *Parser) startsType() bool {
	return p.check(lexer.INT_TOKEN) || p.check(lexer.BOOLEAN_TOKEN) || p.check(lexer.IDENTIFIER_TOKEN)
}

// parseType: int [ ] | boolean | int | Id
func (p *Parser) parseType() ast.TypeNode {
	tok := p.peek()

	switch tok.Kind {
	case lexer.INT_TOKEN:
		p.advance()
		if p.match(lexer.OPEN_BRACKET) {
			p.expect(lexer.CLOSE_BRACKET)
			return &ast.IntArrayType{Location: p.makeLocation(tok.Start)}
		}
		return &ast.IntType{Location: p.makeLocation(tok.Start)}

	case lexer.BOOLEAN_TOKEN:
		p.advance()
		return &ast.BooleanType{Location: p.makeLocation(tok.Start)}

	case lexer.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.NamedType{Name: tok.Value, Location: p.makeLocation(tok.Start)}

	default:
		p.diagnostics.Add(diagnostics.ExpectedType(p.filepath, source.NewLocation(&tok.Start, &tok.End), tok.Value))
		return nil
	}
}
