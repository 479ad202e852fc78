package parser

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/token"
)

// parseExpr parses a full expression, the comma operator included.
func (p *Parser) parseExpr() ast.ExprID {
	start := p.tok.Span
	left := p.parseAssignExpr()
	for p.eat(token.Comma) {
		right := p.parseAssignExpr()
		left = p.builder.Exprs.NewBinary(p.spanFrom(start), ast.ExprBinaryComma, left, right)
	}
	return left
}

// parseAssignExpr parses assignment-expression; assignments nest to the
// right ("a = b = c").
func (p *Parser) parseAssignExpr() ast.ExprID {
	start := p.tok.Span
	left := p.parseTernary()
	if op, ok := assignOps[p.tok.Kind]; ok {
		p.advance()
		right := p.parseAssignExpr()
		return p.builder.Exprs.NewBinary(p.spanFrom(start), op, left, right)
	}
	return left
}

func (p *Parser) parseTernary() ast.ExprID {
	start := p.tok.Span
	cond := p.parseBinary(1)
	if !p.eat(token.Question) {
		return cond
	}
	then := p.parseExpr()
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression")
	els := p.parseTernary()
	return p.builder.Exprs.NewTernary(p.spanFrom(start), cond, then, els)
}

func (p *Parser) parseBinary(minPrec uint8) ast.ExprID {
	start := p.tok.Span
	left := p.parseUnary()
	for {
		info, ok := binOps[p.tok.Kind]
		if !ok || info.prec < minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(info.prec + 1)
		left = p.builder.Exprs.NewBinary(p.spanFrom(start), info.op, left, right)
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	start := p.tok.Span

	if p.at(token.KwSizeof) {
		return p.parseSizeof()
	}
	if p.at(token.LParen) && p.peek().IsTypeSpecifier() {
		return p.parseCast()
	}
	if op, ok := prefixOps[p.tok.Kind]; ok {
		p.advance()
		operand := p.parseUnary()
		return p.builder.Exprs.NewUnary(p.spanFrom(start), op, operand)
	}
	return p.parsePostfix()
}

// parseCast parses "( type-specifiers * ) unary-expression". Typedef'd
// type names are not recognized here; only keyword-led specifier lists
// count as casts.
func (p *Parser) parseCast() ast.ExprID {
	start := p.advance().Span // '('
	typ := p.parseTypeSpecifiers()
	typ = p.parsePointerStars(typ)
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after cast type")
	operand := p.parseUnary()
	return p.builder.Exprs.NewCast(p.spanFrom(start), typ, operand)
}

func (p *Parser) parseSizeof() ast.ExprID {
	start := p.advance().Span // 'sizeof'

	if p.at(token.LParen) && p.peek().IsTypeSpecifier() {
		p.advance() // '('
		typ := p.parseTypeSpecifiers()
		typ = p.parsePointerStars(typ)
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after sizeof type")
		return p.builder.Exprs.NewSizeof(p.spanFrom(start), typ, ast.NoExprID)
	}

	operand := p.parseUnary()
	return p.builder.Exprs.NewSizeof(p.spanFrom(start), ast.TypeRef{}, operand)
}

func (p *Parser) parsePostfix() ast.ExprID {
	start := p.tok.Span
	expr := p.parsePrimary()

	for {
		switch p.tok.Kind {
		case token.LParen:
			args := p.parseArgs()
			expr = p.builder.Exprs.NewCall(p.spanFrom(start), expr, args)

		case token.LBracket:
			p.advance()
			index := p.parseExpr()
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
			expr = p.builder.Exprs.NewIndex(p.spanFrom(start), expr, index)

		case token.Dot, token.Arrow:
			arrow := p.advance().Kind == token.Arrow
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name")
			if !ok {
				return p.builder.Exprs.NewBad(p.spanFrom(start))
			}
			expr = p.builder.Exprs.NewMember(p.spanFrom(start), expr,
				p.interner.Intern(nameTok.Text), arrow)

		case token.PlusPlus:
			p.advance()
			expr = p.builder.Exprs.NewUnary(p.spanFrom(start), ast.ExprUnaryPostInc, expr)

		case token.MinusMinus:
			p.advance()
			expr = p.builder.Exprs.NewUnary(p.spanFrom(start), ast.ExprUnaryPostDec, expr)

		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.ExprID {
	p.advance() // '('
	var args []ast.ExprID
	if p.eat(token.RParen) {
		return args
	}
	for {
		args = append(args, p.parseAssignExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return args
}

func (p *Parser) parsePrimary() ast.ExprID {
	switch p.tok.Kind {
	case token.Ident:
		tok := p.advance()
		return p.builder.Exprs.NewIdent(tok.Span, p.interner.Intern(tok.Text))

	case token.IntLit:
		tok := p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.LitInt, p.interner.Intern(tok.Text))

	case token.FloatLit:
		tok := p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.LitFloat, p.interner.Intern(tok.Text))

	case token.CharLit:
		tok := p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.LitChar, p.interner.Intern(tok.Text))

	case token.StringLit:
		tok := p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.LitString, p.interner.Intern(tok.Text))

	case token.LParen:
		start := p.advance().Span
		inner := p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return p.builder.Exprs.NewGroup(p.spanFrom(start), inner)

	default:
		p.report(diag.SynExpectExpression, p.tok.Span,
			"expected expression, found '"+p.tok.Text+"'")
		return p.builder.Exprs.NewBad(p.tok.Span)
	}
}
