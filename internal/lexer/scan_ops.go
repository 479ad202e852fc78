package lexer

import (
	"fmt"

	"tenet/internal/diag"
	"tenet/internal/token"
)

// scanOperatorOrPunct consumes the longest operator or punctuator at
// the cursor (maximal munch).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	m := lx.cursor.Mark()

	// Three-byte candidates first.
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok {
		var kind token.Kind
		switch {
		case b0 == '<' && b1 == '<' && b2 == '=':
			kind = token.ShlAssign
		case b0 == '>' && b1 == '>' && b2 == '=':
			kind = token.ShrAssign
		case b0 == '.' && b1 == '.' && b2 == '.':
			kind = token.Ellipsis
		}
		if kind != token.Invalid {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.makeOp(kind, m)
		}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		var kind token.Kind
		switch {
		case b0 == '<' && b1 == '<':
			kind = token.Shl
		case b0 == '>' && b1 == '>':
			kind = token.Shr
		case b0 == '<' && b1 == '=':
			kind = token.LtEq
		case b0 == '>' && b1 == '=':
			kind = token.GtEq
		case b0 == '=' && b1 == '=':
			kind = token.EqEq
		case b0 == '!' && b1 == '=':
			kind = token.BangEq
		case b0 == '&' && b1 == '&':
			kind = token.AndAnd
		case b0 == '|' && b1 == '|':
			kind = token.OrOr
		case b0 == '+' && b1 == '+':
			kind = token.PlusPlus
		case b0 == '-' && b1 == '-':
			kind = token.MinusMinus
		case b0 == '-' && b1 == '>':
			kind = token.Arrow
		case b0 == '+' && b1 == '=':
			kind = token.PlusAssign
		case b0 == '-' && b1 == '=':
			kind = token.MinusAssign
		case b0 == '*' && b1 == '=':
			kind = token.StarAssign
		case b0 == '/' && b1 == '=':
			kind = token.SlashAssign
		case b0 == '%' && b1 == '=':
			kind = token.PercentAssign
		case b0 == '&' && b1 == '=':
			kind = token.AmpAssign
		case b0 == '|' && b1 == '=':
			kind = token.PipeAssign
		case b0 == '^' && b1 == '=':
			kind = token.CaretAssign
		}
		if kind != token.Invalid {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.makeOp(kind, m)
		}
	}

	ch := lx.cursor.Bump()
	var kind token.Kind
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '&':
		kind = token.Amp
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '!':
		kind = token.Bang
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		sp := lx.cursor.SpanFrom(m)
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textOf(sp)}
	}
	return lx.makeOp(kind, m)
}

func (lx *Lexer) makeOp(kind token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.textOf(sp)}
}
