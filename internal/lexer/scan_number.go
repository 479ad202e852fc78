package lexer

import (
	"tenet/internal/diag"
	"tenet/internal/source"
	"tenet/internal/token"
)

func (lx *Lexer) textOf(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// scanNumber consumes an integer or floating constant, including hex
// and octal integers and integer/float suffixes.
func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	kind := token.IntLit

	// Hex: 0x / 0X
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			sp := lx.cursor.SpanFrom(m)
			lx.report(diag.LexBadNumber, sp, "hexadecimal constant needs at least one digit")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
		}
		lx.eatIntSuffix()
		sp := lx.cursor.SpanFrom(m)
		return token.Token{Kind: token.IntLit, Span: sp, Text: lx.textOf(sp)}
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fraction
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else if lx.cursor.Peek() == '.' {
		// "1." is still a float constant in C
		kind = token.FloatLit
		lx.cursor.Bump()
	}

	// Exponent
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		lx.cursor.Bump()
		if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
			lx.cursor.Bump()
		}
		digits := 0
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			sp := lx.cursor.SpanFrom(m)
			lx.report(diag.LexBadNumber, sp, "exponent has no digits")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
		}
		kind = token.FloatLit
	}

	if kind == token.FloatLit {
		if ch := lx.cursor.Peek(); ch == 'f' || ch == 'F' || ch == 'l' || ch == 'L' {
			lx.cursor.Bump()
		}
	} else {
		lx.eatIntSuffix()
	}

	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.textOf(sp)}
}

func (lx *Lexer) eatIntSuffix() {
	for {
		ch := lx.cursor.Peek()
		if ch == 'u' || ch == 'U' || ch == 'l' || ch == 'L' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
