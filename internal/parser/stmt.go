package parser

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/token"
)

// parseBlock parses "{ stmt* }".
func (p *Parser) parseBlock() ast.StmtID {
	start := p.tok.Span
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.tok.Span
		stmts = append(stmts, p.parseStmt())
		if p.tok.Span == before && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.advance()
		}
	}
	if !p.eat(token.RBrace) {
		p.report(diag.SynUnclosedBrace, start, "unclosed block")
	}
	return p.builder.Stmts.NewBlock(p.spanFrom(start), stmts)
}

func (p *Parser) parseStmt() ast.StmtID {
	switch p.tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		tok := p.advance()
		return p.builder.Stmts.NewEmpty(tok.Span)
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwGoto:
		return p.parseGoto()
	case token.KwBreak:
		start := p.advance().Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after break")
		return p.builder.Stmts.NewBreak(p.spanFrom(start))
	case token.KwContinue:
		start := p.advance().Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after continue")
		return p.builder.Stmts.NewContinue(p.spanFrom(start))
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwCase, token.KwDefault:
		return p.parseCase()
	case token.Ident:
		if p.peek().Kind == token.Colon {
			return p.parseLabel()
		}
	}

	if p.tok.IsTypeSpecifier() {
		return p.parseLocalDecl()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseIf() ast.StmtID {
	start := p.advance().Span // 'if'
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after if")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	then := p.parseStmt()

	els := ast.NoStmtID
	if p.eat(token.KwElse) {
		els = p.parseStmt()
	}
	return p.builder.Stmts.NewIf(p.spanFrom(start), cond, then, els)
}

func (p *Parser) parseWhile() ast.StmtID {
	start := p.advance().Span // 'while'
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after while")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	body := p.parseStmt()
	return p.builder.Stmts.NewWhile(p.spanFrom(start), cond, body)
}

func (p *Parser) parseDoWhile() ast.StmtID {
	start := p.advance().Span // 'do'
	body := p.parseStmt()
	if _, ok := p.expect(token.KwWhile, diag.SynExpectWhile, "expected 'while' after do body"); !ok {
		p.syncStmt()
		return p.builder.Stmts.NewBad(p.spanFrom(start))
	}
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after while")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after do/while")
	return p.builder.Stmts.NewDoWhile(p.spanFrom(start), cond, body)
}

func (p *Parser) parseFor() ast.StmtID {
	start := p.advance().Span // 'for'
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after for")

	init := ast.NoStmtID
	switch {
	case p.eat(token.Semicolon):
	case p.tok.IsTypeSpecifier():
		init = p.parseLocalDecl()
	default:
		expr := p.parseExpr()
		exprSpan := p.builder.Exprs.Get(expr).Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for clause")
		init = p.builder.Stmts.NewExpr(exprSpan.Cover(p.lastSpan), expr)
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for clause")

	post := ast.NoExprID
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for clauses")

	body := p.parseStmt()
	return p.builder.Stmts.NewFor(p.spanFrom(start), init, cond, post, body)
}

func (p *Parser) parseReturn() ast.StmtID {
	start := p.advance().Span // 'return'
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	return p.builder.Stmts.NewReturn(p.spanFrom(start), value)
}

func (p *Parser) parseGoto() ast.StmtID {
	start := p.advance().Span // 'goto'
	labelTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected label after goto")
	if !ok {
		p.syncStmt()
		return p.builder.Stmts.NewBad(p.spanFrom(start))
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after goto")
	return p.builder.Stmts.NewGoto(p.spanFrom(start),
		p.interner.Intern(labelTok.Text), labelTok.Span)
}

func (p *Parser) parseSwitch() ast.StmtID {
	start := p.advance().Span // 'switch'
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after switch")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	body := p.parseStmt()
	return p.builder.Stmts.NewSwitch(p.spanFrom(start), cond, body)
}

// parseCase parses "case expr:" or "default:". The wrapped statement is
// the one immediately following the label; siblings up to the next
// label stay ordinary block members.
func (p *Parser) parseCase() ast.StmtID {
	start := p.tok.Span
	value := ast.NoExprID
	if p.advance().Kind == token.KwCase {
		value = p.parseTernary()
	}
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case label")

	inner := ast.NoStmtID
	if !p.atLabelBoundary() {
		inner = p.parseStmt()
	}
	return p.builder.Stmts.NewCase(p.spanFrom(start), value, inner)
}

func (p *Parser) parseLabel() ast.StmtID {
	nameTok := p.advance() // Ident
	p.advance()            // ':'

	inner := ast.NoStmtID
	if !p.atLabelBoundary() {
		inner = p.parseStmt()
	}
	return p.builder.Stmts.NewLabel(p.spanFrom(nameTok.Span),
		p.interner.Intern(nameTok.Text), inner)
}

func (p *Parser) atLabelBoundary() bool {
	switch p.tok.Kind {
	case token.KwCase, token.KwDefault, token.RBrace, token.EOF:
		return true
	default:
		return false
	}
}

// parseLocalDecl parses a declaration statement, possibly with several
// comma-separated declarators.
func (p *Parser) parseLocalDecl() ast.StmtID {
	start := p.tok.Span
	base := p.parseTypeSpecifiers()

	// Local type declaration without a declarator.
	if p.eat(token.Semicolon) {
		return p.builder.Stmts.NewDecl(p.spanFrom(start), nil)
	}

	var decls []ast.LocalDecl
	for {
		ref := p.parsePointerStars(base)
		nameTok, ok := p.expect(token.Ident, diag.SynExpectDeclarator, "expected declarator name")
		if !ok {
			p.syncStmt()
			return p.builder.Stmts.NewBad(p.spanFrom(start))
		}
		p.skipArraySuffix()

		init := ast.NoExprID
		if p.eat(token.Assign) {
			init = p.parseInitializer()
		}
		decls = append(decls, ast.LocalDecl{
			Name:     p.interner.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Type:     ref,
			Init:     init,
		})

		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); !ok {
		p.syncStmt()
	}
	return p.builder.Stmts.NewDecl(p.spanFrom(start), decls)
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.tok.Span
	expr := p.parseExpr()
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression"); !ok {
		p.syncStmt()
	}
	return p.builder.Stmts.NewExpr(p.spanFrom(start), expr)
}
