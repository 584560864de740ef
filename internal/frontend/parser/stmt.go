package parser

import (
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
)

// parseStatementsUntil parses statements up to (not including) the closing token.
// A statement that fails without consuming input is skipped one token at a time.
func (p *Parser) parseStatementsUntil(closing lexer.TOKEN) []ast.Statement {
	stmts := []ast.Statement{}
	for !p.check(closing) && !p.check(lexer.CLOSE_CURLY) && !p.isAtEnd() {
		before := p.current
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.current == before {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek()

	switch tok.Kind {
	case lexer.OPEN_CURLY:
		return p.parseBlock()
	case lexer.IF_TOKEN:
		return p.parseIf()
	case lexer.WHILE_TOKEN:
		return p.parseWhile()
	case lexer.PRINT_TOKEN:
		return p.parsePrint()
	case lexer.IDENTIFIER_TOKEN:
		return p.parseAssignment()
	default:
		p.error("unexpected token in statement position: " + tok.Value)
		return nil
	}
}

// parseBlock: { Stmt* }
func (p *Parser) parseBlock() ast.Statement {
	start := p.advance().Start
	stmts := p.parseStatementsUntil(lexer.CLOSE_CURLY)
	p.expect(lexer.CLOSE_CURLY)
	return &ast.Block{Stmts: stmts, Location: p.makeLocation(start)}
}

// parseIf: if ( Expr ) Stmt else Stmt
func (p *Parser) parseIf() ast.Statement {
	start := p.advance().Start
	p.expect(lexer.OPEN_PAREN)
	cond := p.parseExpr()
	p.expect(lexer.CLOSE_PAREN)

	then := p.parseStatement()
	p.expect(lexer.ELSE_TOKEN)
	els := p.parseStatement()

	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Location: p.makeLocation(start)}
}

// parseWhile: while ( Expr ) Stmt
func (p *Parser) parseWhile() ast.Statement {
	start := p.advance().Start
	p.expect(lexer.OPEN_PAREN)
	cond := p.parseExpr()
	p.expect(lexer.CLOSE_PAREN)
	body := p.parseStatement()

	return &ast.WhileStmt{Cond: cond, Body: body, Location: p.makeLocation(start)}
}

// parsePrint: System.out.println ( Expr ) ;
func (p *Parser) parsePrint() ast.Statement {
	start := p.advance().Start
	p.expect(lexer.OPEN_PAREN)
	x := p.parseExpr()
	p.expect(lexer.CLOSE_PAREN)
	p.expect(lexer.SEMICOLON_TOKEN)

	return &ast.PrintStmt{X: x, Location: p.makeLocation(start)}
}

// parseAssignment: Id = Expr ; | Id [ Expr ] = Expr ;
func (p *Parser) parseAssignment() ast.Statement {
	start := p.peek().Start
	name := p.parseIdentifier()

	if p.match(lexer.OPEN_BRACKET) {
		index := p.parseExpr()
		p.expect(lexer.CLOSE_BRACKET)
		p.expect(lexer.EQUALS_TOKEN)
		value := p.parseExpr()
		p.expect(lexer.SEMICOLON_TOKEN)
		return &ast.ArrayAssignStmt{Name: name, Index: index, Value: value, Location: p.makeLocation(start)}
	}

	p.expect(lexer.EQUALS_TOKEN)
	value := p.parseExpr()
	p.expect(lexer.SEMICOLON_TOKEN)
	return &ast.AssignStmt{Name: name, Value: value, Location: p.makeLocation(start)}
}
