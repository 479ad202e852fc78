package lexer

import (
	"testing"

	"tenet/internal/diag"
	"tenet/internal/source"
	"tenet/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(src))
	bag := diag.NewBag(100)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
		if len(toks) > 10000 {
			t.Fatal("lexer does not terminate")
		}
	}
	return toks, bag
}

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Kind
	}{
		{"int x;", []token.Kind{token.KwInt, token.Ident, token.Semicolon}},
		{"x = y + 1;", []token.Kind{token.Ident, token.Assign, token.Ident, token.Plus, token.IntLit, token.Semicolon}},
		{"a <<= 2", []token.Kind{token.Ident, token.ShlAssign, token.IntLit}},
		{"a >>= 2", []token.Kind{token.Ident, token.ShrAssign, token.IntLit}},
		{"f(a, ...)", []token.Kind{token.Ident, token.LParen, token.Ident, token.Comma, token.Ellipsis, token.RParen}},
		{"p->x", []token.Kind{token.Ident, token.Arrow, token.Ident}},
		{"i++ + ++j", []token.Kind{token.Ident, token.PlusPlus, token.Plus, token.PlusPlus, token.Ident}},
		{"a<b<=c==d!=e", []token.Kind{
			token.Ident, token.Lt, token.Ident, token.LtEq, token.Ident,
			token.EqEq, token.Ident, token.BangEq, token.Ident,
		}},
		{"x && y || !z", []token.Kind{token.Ident, token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident}},
		{"while (1) {}", []token.Kind{token.KwWhile, token.LParen, token.IntLit, token.RParen, token.LBrace, token.RBrace}},
		{"goto done;", []token.Kind{token.KwGoto, token.Ident, token.Semicolon}},
		{"sizeof(int)", []token.Kind{token.KwSizeof, token.LParen, token.KwInt, token.RParen}},
		{`"str" 'c'`, []token.Kind{token.StringLit, token.CharLit}},
		{"0x1F 077 42u 42UL", []token.Kind{token.IntLit, token.IntLit, token.IntLit, token.IntLit}},
		{"1.5 1. .5 1e10 1.5e-3f", []token.Kind{token.FloatLit, token.FloatLit, token.FloatLit, token.FloatLit, token.FloatLit}},
	}

	for _, tc := range tests {
		toks, bag := lexAll(t, tc.src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics: %v", tc.src, bag.Items())
			continue
		}
		got := kindsOf(toks)
		if len(got) != len(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.src, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%q: token %d is %v, want %v", tc.src, i, got[i], tc.want[i])
			}
		}
	}
}

func TestLexerTokenText(t *testing.T) {
	toks, bag := lexAll(t, "count += 0x2A;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []string{"count", "+=", "0x2A", ";"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Text != w {
			t.Errorf("token %d text = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestLexerSpans(t *testing.T) {
	// offsets:      0123456789
	toks, _ := lexAll(t, "ab + cd")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Span.Start != 0 || toks[0].Span.End != 2 {
		t.Errorf("ab span = [%d,%d), want [0,2)", toks[0].Span.Start, toks[0].Span.End)
	}
	if toks[2].Span.Start != 5 || toks[2].Span.End != 7 {
		t.Errorf("cd span = [%d,%d), want [5,7)", toks[2].Span.Start, toks[2].Span.End)
	}
}

func TestLexerCommentsAreTrivia(t *testing.T) {
	src := "// header\nint /* inline */ x; /* tail */"
	toks, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	got := kindsOf(toks)
	want := []token.Kind{token.KwInt, token.Ident, token.Semicolon}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// The line comment and newline ride on the first token.
	var sawLineComment bool
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaLineComment {
			sawLineComment = true
			if tr.Text != "// header" {
				t.Errorf("line comment text = %q", tr.Text)
			}
		}
	}
	if !sawLineComment {
		t.Error("line comment missing from leading trivia")
	}
}

func TestLexerPreprocessorLinesAreTrivia(t *testing.T) {
	src := "#include <stdio.h>\n#define N 10 \\\n   + 1\nint x;"
	toks, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	got := kindsOf(toks)
	want := []token.Kind{token.KwInt, token.Ident, token.Semicolon}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	pp := 0
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaPreprocessor {
			pp++
		}
	}
	if pp != 2 {
		t.Errorf("got %d preprocessor trivia, want 2", pp)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `char *s = "oops;`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", bag.Items()[0].Code)
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	_, bag := lexAll(t, "int x; /* never closed")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("code = %v, want LexUnterminatedBlockComment", bag.Items()[0].Code)
	}
}

func TestLexerEscapedQuoteInString(t *testing.T) {
	toks, bag := lexAll(t, `"a\"b"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.StringLit {
		t.Fatalf("got %v", kindsOf(toks))
	}
	if toks[0].Text != `"a\"b"` {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestLexerUnknownChar(t *testing.T) {
	_, bag := lexAll(t, "int x @ y;")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("code = %v, want LexUnknownChar", bag.Items()[0].Code)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte("x"))
	lx := New(fs.Get(id), Options{Reporter: diag.NopReporter{}})

	lx.Next() // x
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after EOF: %v", i, tok.Kind)
		}
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte("a b"))
	lx := New(fs.Get(id), Options{Reporter: diag.NopReporter{}})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("peek %v/%q, next %v/%q", p.Kind, p.Text, n.Kind, n.Text)
	}
	if lx.Next().Text != "b" {
		t.Fatal("peek consumed a token")
	}
}
