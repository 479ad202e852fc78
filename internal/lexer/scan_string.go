package lexer

import (
	"tenet/internal/diag"
	"tenet/internal/token"
)

// scanString consumes a double-quoted string literal. Escape sequences
// are carried through verbatim; the analyzer never needs their values.
func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(m)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
		}
		ch := lx.cursor.Bump()
		if ch == '\\' {
			// Consume the escaped byte so \" does not close the literal.
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if ch == '"' {
			break
		}
	}

	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.textOf(sp)}
}

func (lx *Lexer) scanChar() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(m)
			lx.report(diag.LexUnterminatedChar, sp, "unterminated character constant")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
		}
		ch := lx.cursor.Bump()
		if ch == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if ch == '\'' {
			break
		}
	}

	sp := lx.cursor.SpanFrom(m)
	if sp.Len() < 3 {
		lx.report(diag.LexBadCharConstant, sp, "empty character constant")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
	}
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.textOf(sp)}
}
