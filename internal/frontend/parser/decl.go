package parser

import (
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
)

// parseMainClass: class Id { public static void main ( String [ ] Id ) { VarDecl* Stmt* } }
func (p *Parser) parseMainClass() *ast.MainClass {
	start := p.peek().Start
	p.expect(lexer.CLASS_TOKEN)

	main := &ast.MainClass{
		Name:   p.parseIdentifier(),
		Locals: []*ast.VarDecl{},
		Body:   []ast.Statement{},
	}

	p.expect(lexer.OPEN_CURLY)
	p.expect(lexer.PUBLIC_TOKEN)
	p.expect(lexer.STATIC_TOKEN)
	p.expect(lexer.VOID_TOKEN)
	p.expectWord("main")
	p.expect(lexer.OPEN_PAREN)
	p.expectWord("String")
	p.expect(lexer.OPEN_BRACKET)
	p.expect(lexer.CLOSE_BRACKET)
	main.ArgName = p.parseIdentifier()
	p.expect(lexer.CLOSE_PAREN)

	p.expect(lexer.OPEN_CURLY)
	main.Locals = p.parseLocals()
	main.Body = p.parseStatementsUntil(lexer.CLOSE_CURLY)
	p.expect(lexer.CLOSE_CURLY)

	p.expect(lexer.CLOSE_CURLY)

	main.Location = p.makeLocation(start)
	return main
}

// parseClassDecl: class Id [extends Id] { VarDecl* MethodDecl* }
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	start := p.peek().Start
	p.expect(lexer.CLASS_TOKEN)

	decl := &ast.ClassDecl{
		Name:    p.parseIdentifier(),
		Fields:  []*ast.VarDecl{},
		Methods: []*ast.MethodDecl{},
	}

	if p.match(lexer.EXTENDS_TOKEN) {
		decl.Extends = p.parseIdentifier()
	}

	p.expect(lexer.OPEN_CURLY)

	for !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		switch {
		case p.check(lexer.PUBLIC_TOKEN):
			decl.Methods = append(decl.Methods, p.parseMethodDecl())
		case p.startsVarDecl():
			if len(decl.Methods) > 0 {
				p.error("field declarations must come before methods")
			}
			decl.Fields = append(decl.Fields, p.parseVarDecl())
		default:
			p.error("expected field or method declaration, got " + p.peek().Value)
			p.advance()
		}
	}

	p.expect(lexer.CLOSE_CURLY)

	decl.Location = p.makeLocation(start)
	return decl
}

// startsVarDecl tells `Type Id` apart from a statement that starts with an identifier
func (p *Parser) startsVarDecl() bool {
	switch p.peek().Kind {
	case lexer.INT_TOKEN, lexer.BOOLEAN_TOKEN:
		return true
	case lexer.IDENTIFIER_TOKEN:
		return p.peekAt(1).Kind == lexer.IDENTIFIER_TOKEN
	}
	return false
}

// parseVarDecl: Type Id ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.peek().Start
	typ := p.parseType()
	name := p.parseIdentifier()
	p.expect(lexer.SEMICOLON_TOKEN)

	return &ast.VarDecl{
		Type:     typ,
		Name:     name,
		Location: p.makeLocation(start),
	}
}

func (p *Parser) parseLocals() []*ast.VarDecl {
	locals := []*ast.VarDecl{}
	for p.startsVarDecl() {
		locals = append(locals, p.parseVarDecl())
	}
	return locals
}

// parseMethodDecl: public Type Id ( [Type Id {, Type Id}] ) { VarDecl* Stmt* return Expr ; }
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	start := p.peek().Start
	p.expect(lexer.PUBLIC_TOKEN)

	method := &ast.MethodDecl{
		ReturnType: p.parseType(),
		Name:       p.parseIdentifier(),
	}

	p.expect(lexer.OPEN_PAREN)
	method.Params = p.parseParams()
	p.expect(lexer.CLOSE_PAREN)

	p.expect(lexer.OPEN_CURLY)
	method.Locals = p.parseLocals()
	method.Body = p.parseStatementsUntil(lexer.RETURN_TOKEN)

	p.expect(lexer.RETURN_TOKEN)
	method.Return = p.parseExpr()
	p.expect(lexer.SEMICOLON_TOKEN)
	p.expect(lexer.CLOSE_CURLY)

	method.Location = p.makeLocation(start)
	return method
}

func (p *Parser) parseParams() []*ast.Param {
	params := []*ast.Param{}
	if p.check(lexer.CLOSE_PAREN) {
		return params
	}

	for {
		start := p.peek().Start
		typ := p.parseType()
		name := p.parseIdentifier()
		params = append(params, &ast.Param{
			Type:     typ,
			Name:     name,
			Location: p.makeLocation(start),
		})

		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}

	return params
}
