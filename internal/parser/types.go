package parser

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/token"
)

// parseTypeSpecifiers consumes a declaration specifier list and reduces
// it to a TypeRef. Aggregate bodies ("struct { ... }") are skipped as
// opaque; qualifiers and storage classes are consumed but not recorded.
// The caller must have checked that the current token starts a
// specifier list.
func (p *Parser) parseTypeSpecifiers() ast.TypeRef {
	start := p.tok.Span
	var coreText string
	sawVoid := false

	for p.tok.IsTypeSpecifier() {
		tok := p.advance()
		switch tok.Kind {
		case token.KwConst, token.KwVolatile, token.KwStatic, token.KwExtern, token.KwTypedef:
			// no effect on the reduced type

		case token.KwStruct, token.KwUnion, token.KwEnum:
			if p.at(token.Ident) {
				tag := p.advance()
				coreText = tok.Text + " " + tag.Text
			} else {
				coreText = tok.Text
			}
			if p.at(token.LBrace) {
				p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed aggregate body")
			}

		case token.KwVoid:
			sawVoid = true
			coreText = tok.Text

		default:
			// short/long/signed/unsigned stack onto the previous core;
			// the last type keyword wins the spelling.
			sawVoid = false
			coreText = tok.Text
		}
	}

	ref := ast.TypeRef{Span: p.spanFrom(start)}
	if sawVoid {
		ref.Void = true
	}
	if coreText != "" {
		ref.Name = p.interner.Intern(coreText)
	}
	return ref
}

// parsePointerStars consumes the '*' (and interleaved qualifier)
// prefix of a declarator and folds the depth into ref.
func (p *Parser) parsePointerStars(ref ast.TypeRef) ast.TypeRef {
	for {
		switch p.tok.Kind {
		case token.Star:
			p.advance()
			if ref.Pointer < 255 {
				ref.Pointer++
			}
		case token.KwConst, token.KwVolatile:
			p.advance()
		default:
			ref.Span = ref.Span.Cover(p.lastSpan)
			return ref
		}
	}
}

// skipArraySuffix consumes zero or more "[...]" declarator suffixes.
func (p *Parser) skipArraySuffix() {
	for p.at(token.LBracket) {
		p.skipBalanced(token.LBracket, token.RBracket, diag.SynUnclosedBracket, "unclosed array declarator")
	}
}
