package parser

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/source"
	"tenet/internal/token"
)

// parseItem parses one external declaration and pushes the resulting
// item(s) onto the file. A declaration with several declarators
// ("int a, b;") pushes one item per declarator.
func (p *Parser) parseItem(file ast.FileID) {
	start := p.tok.Span

	if !p.tok.IsTypeSpecifier() {
		p.report(diag.SynUnexpectedToken, p.tok.Span,
			"expected a declaration, found '"+p.tok.Text+"'")
		p.syncItem()
		p.builder.PushItem(file, p.builder.Items.NewBad(p.spanFrom(start)))
		return
	}

	base := p.parseTypeSpecifiers()

	// Bare type declaration: "struct point { ... };", "enum color { ... };"
	if p.eat(token.Semicolon) {
		p.builder.PushItem(file, p.builder.Items.NewDecl(p.spanFrom(start), ast.DeclData{
			Name: source.NoStringID,
			Type: base,
		}))
		return
	}

	ref := p.parsePointerStars(base)

	// Function-pointer declarators ("int (*fp)(void);") are recorded as
	// anonymous declarations; nothing downstream inspects them.
	if p.at(token.LParen) {
		p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed declarator")
		if p.at(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed parameter list")
		}
		if p.eat(token.Assign) {
			p.parseInitializer()
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
		p.builder.PushItem(file, p.builder.Items.NewDecl(p.spanFrom(start), ast.DeclData{
			Name: source.NoStringID,
			Type: ref,
		}))
		return
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectDeclarator, "expected declarator name")
	if !ok {
		p.syncItem()
		p.builder.PushItem(file, p.builder.Items.NewBad(p.spanFrom(start)))
		return
	}
	name := p.interner.Intern(nameTok.Text)

	if p.at(token.LParen) {
		params := p.parseParamList()

		if p.at(token.LBrace) {
			body := p.parseBlock()
			p.builder.PushItem(file, p.builder.Items.NewFunction(p.spanFrom(start), ast.FunctionData{
				Name:     name,
				NameSpan: nameTok.Span,
				Ret:      ref,
				Params:   params,
				Body:     body,
			}))
			return
		}

		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after prototype")
		p.builder.PushItem(file, p.builder.Items.NewDecl(p.spanFrom(start), ast.DeclData{
			Name:        name,
			NameSpan:    nameTok.Span,
			Type:        ref,
			IsPrototype: true,
		}))
		return
	}

	// Global variable declarator list.
	for {
		declStart := nameTok.Span
		p.skipArraySuffix()

		init := ast.NoExprID
		if p.eat(token.Assign) {
			init = p.parseInitializer()
		}
		p.builder.PushItem(file, p.builder.Items.NewDecl(start.Cover(p.spanFrom(declStart)), ast.DeclData{
			Name:     name,
			NameSpan: nameTok.Span,
			Type:     ref,
			Init:     init,
		}))

		if !p.eat(token.Comma) {
			break
		}
		ref = p.parsePointerStars(base)
		nameTok, ok = p.expect(token.Ident, diag.SynExpectDeclarator, "expected declarator name")
		if !ok {
			p.syncItem()
			return
		}
		name = p.interner.Intern(nameTok.Text)
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
}

// parseParamList consumes "(...)" of a function declarator.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '('")

	var params []ast.Param
	if p.eat(token.RParen) {
		return params
	}
	// "(void)" declares no parameters.
	if p.at(token.KwVoid) && p.peek().Kind == token.RParen {
		p.advance()
		p.advance()
		return params
	}

	for {
		if p.at(token.Ellipsis) {
			p.advance()
			break
		}

		start := p.tok.Span
		var ref ast.TypeRef
		switch {
		case p.tok.IsTypeSpecifier():
			ref = p.parseTypeSpecifiers()
		case p.at(token.Ident):
			// typedef'd parameter type
			t := p.advance()
			ref = ast.TypeRef{Name: p.interner.Intern(t.Text), Span: t.Span}
		default:
			p.report(diag.SynUnexpectedToken, p.tok.Span, "expected parameter type")
			p.skipToParamEnd()
			if p.eat(token.Comma) {
				continue
			}
			break
		}
		ref = p.parsePointerStars(ref)

		name := source.NoStringID
		if p.at(token.Ident) {
			nt := p.advance()
			name = p.interner.Intern(nt.Text)
		}
		p.skipArraySuffix()

		params = append(params, ast.Param{
			Name: name,
			Type: ref,
			Span: p.spanFrom(start),
		})

		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	return params
}

// skipToParamEnd advances to the next ',' or ')' at the current
// nesting level.
func (p *Parser) skipToParamEnd() {
	for !p.at(token.EOF) && !p.at(token.Comma) && !p.at(token.RParen) {
		if p.at(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed '('")
			continue
		}
		p.advance()
	}
}

// parseInitializer parses the right-hand side of '='. Brace-enclosed
// aggregate initializers are skipped as opaque.
func (p *Parser) parseInitializer() ast.ExprID {
	if p.at(token.LBrace) {
		start := p.tok.Span
		p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed initializer")
		return p.builder.Exprs.NewBad(p.spanFrom(start))
	}
	return p.parseAssignExpr()
}

// syncItem skips to the start of the next plausible external
// declaration: past a ';', over one balanced brace block, or up to the
// next specifier keyword.
func (p *Parser) syncItem() {
	for !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			return
		}
		if p.tok.IsTypeSpecifier() {
			return
		}
		if p.at(token.LBrace) {
			p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed block")
			return
		}
		p.advance()
	}
}
