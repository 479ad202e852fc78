package lexer

import (
	"tenet/internal/diag"
	"tenet/internal/token"
)

// collectLeadingTrivia consumes whitespace, comments, and preprocessor
// lines into lx.hold until the cursor rests on a significant byte.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		switch {
		case ch == '\n':
			m := lx.cursor.Mark()
			for lx.cursor.Eat('\n') {
			}
			lx.push(token.TriviaNewline, m)

		case isSpaceByte(ch):
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.push(token.TriviaSpace, m)

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.scanLineComment()
			case '*':
				lx.scanBlockComment()
			default:
				return // a real '/' token
			}

		case ch == '#':
			lx.scanPreprocessorLine()

		default:
			return
		}
	}
}

func (lx *Lexer) push(kind token.TriviaKind, m Mark) {
	sp := lx.cursor.SpanFrom(m)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanLineComment() {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.push(token.TriviaLineComment, m)
}

func (lx *Lexer) scanBlockComment() {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	for {
		if lx.cursor.EOF() {
			lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(m), "unterminated block comment")
			break
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			break
		}
		if lx.cursor.Off+1 >= lx.cursor.Limit {
			// Last byte cannot start a terminator.
			lx.cursor.Bump()
			lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(m), "unterminated block comment")
			break
		}
		lx.cursor.Bump()
	}
	lx.push(token.TriviaBlockComment, m)
}

// scanPreprocessorLine swallows a whole '#...' line as trivia,
// honoring backslash-newline continuations. Directives are never
// expanded; this keeps the token stream purely C while the line index
// stays exact.
func (lx *Lexer) scanPreprocessorLine() {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	lx.push(token.TriviaPreprocessor, m)
}
