package parser

import (
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
	"minijava/internal/source"
)

// Precedence, lowest first: &&, <, + -, *, !, postfix

func (p *Parser) parseExpr() ast.Expression {
	return p.parseAnd()
}

func (p *Parser) parseAnd() ast.Expression {
	return p.parseBinary(p.parseLess, map[lexer.TOKEN]ast.BinaryOp{lexer.AND_TOKEN: ast.OpAnd})
}

func (p *Parser) parseLess() ast.Expression {
	return p.parseBinary(p.parseAdditive, map[lexer.TOKEN]ast.BinaryOp{lexer.LESS_TOKEN: ast.OpLess})
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.parseBinary(p.parseMultiplicative, map[lexer.TOKEN]ast.BinaryOp{
		lexer.PLUS_TOKEN:  ast.OpAdd,
		lexer.MINUS_TOKEN: ast.OpSub,
	})
}

func (p *Parser) parseMultiplicative() ast.Expression {
	return p.parseBinary(p.parseUnary, map[lexer.TOKEN]ast.BinaryOp{lexer.MUL_TOKEN: ast.OpMul})
}

// parseBinary folds a left-associative chain of the given operators
func (p *Parser) parseBinary(next func() ast.Expression, ops map[lexer.TOKEN]ast.BinaryOp) ast.Expression {
	start := p.peek().Start
	left := next()

	for {
		op, ok := ops[p.peek().Kind]
		if !ok || p.isAtEnd() {
			return left
		}
		p.advance()
		right := next()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: p.makeLocation(start)}
	}
}

func (p *Parser) parseUnary() ast.Expression {
	if p.check(lexer.NOT_TOKEN) {
		start := p.advance().Start
		x := p.parseUnary()
		return &ast.NotExpr{X: x, Location: p.makeLocation(start)}
	}
	return p.parsePostfix()
}

// parsePostfix: Expr [ Expr ] | Expr . length | Expr . Id ( args )
func (p *Parser) parsePostfix() ast.Expression {
	start := p.peek().Start
	expr := p.parsePrimary()

	for {
		switch {
		case p.match(lexer.OPEN_BRACKET):
			index := p.parseExpr()
			p.expect(lexer.CLOSE_BRACKET)
			expr = &ast.IndexExpr{X: expr, Index: index, Location: p.makeLocation(start)}

		case p.match(lexer.DOT_TOKEN):
			tok := p.peek()
			if tok.Kind == lexer.IDENTIFIER_TOKEN && tok.Value == "length" && p.peekAt(1).Kind != lexer.OPEN_PAREN {
				p.advance()
				expr = &ast.LengthExpr{X: expr, Location: p.makeLocation(start)}
				continue
			}
			method := p.parseIdentifier()
			p.expect(lexer.OPEN_PAREN)
			args := p.parseArgs()
			p.expect(lexer.CLOSE_PAREN)
			expr = &ast.CallExpr{Receiver: expr, Method: method, Args: args, Location: p.makeLocation(start)}

		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expression {
	args := []ast.Expression{}
	if p.check(lexer.CLOSE_PAREN) {
		return args
	}
	for {
		args = append(args, p.parseExpr())
		if !p.match(lexer.COMMA_TOKEN) {
			return args
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	loc := *source.NewLocation(&tok.Start, &tok.End)

	switch tok.Kind {
	case lexer.NUMBER_TOKEN:
		p.advance()
		return &ast.IntLit{Value: tok.Value, Location: loc}
	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		return &ast.BoolLit{Value: tok.Kind == lexer.TRUE_TOKEN, Location: loc}
	case lexer.IDENTIFIER_TOKEN:
		return p.parseIdentifier()
	case lexer.THIS_TOKEN:
		p.advance()
		return &ast.ThisExpr{Location: loc}
	case lexer.NEW_TOKEN:
		return p.parseNew()
	case lexer.OPEN_PAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(lexer.CLOSE_PAREN)
		return &ast.ParenExpr{X: x, Location: p.makeLocation(tok.Start)}
	default:
		p.error("expected expression, got " + tok.Value)
		return nil
	}
}

// parseNew: new int [ Expr ] | new Id ( )
func (p *Parser) parseNew() ast.Expression {
	start := p.advance().Start

	if p.match(lexer.INT_TOKEN) {
		p.expect(lexer.OPEN_BRACKET)
		size := p.parseExpr()
		p.expect(lexer.CLOSE_BRACKET)
		return &ast.NewArrayExpr{Size: size, Location: p.makeLocation(start)}
	}

	class := p.parseIdentifier()
	p.expect(lexer.OPEN_PAREN)
	p.expect(lexer.CLOSE_PAREN)
	return &ast.NewObjectExpr{Class: class, Location: p.makeLocation(start)}
}
