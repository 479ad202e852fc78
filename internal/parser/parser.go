package parser

import (
	"fmt"

	"fortio.org/safecast"

	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/lexer"
	"tenet/internal/source"
	"tenet/internal/token"
)

// Options configures a single parse.
type Options struct {
	Reporter diag.Reporter
	Hints    ast.Hints
}

// Result carries the arenas and the root file node of one parse.
type Result struct {
	Builder *ast.Builder
	File    ast.FileID
}

// Parser is a recursive-descent parser over the lexer's token stream.
// It never fails hard: unparseable regions become Bad nodes and the
// parse continues at the next synchronization point.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	builder  *ast.Builder
	interner *source.Interner
	reporter diag.Reporter

	tok      token.Token // current token
	lastSpan source.Span // span of the most recently consumed token
}

// ParseFile parses one translation unit into fresh arenas.
func ParseFile(file *source.File, interner *source.Interner, opts Options) Result {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := &Parser{
		file:     file,
		lx:       lexer.New(file, lexer.Options{Reporter: reporter}),
		builder:  ast.NewBuilder(opts.Hints),
		interner: interner,
		reporter: reporter,
	}
	p.tok = p.lx.Next()

	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("file length overflow: %w", err))
	}
	fileSpan := source.Span{File: file.ID, Start: 0, End: end}
	fileID := p.builder.NewFile(fileSpan)

	for !p.at(token.EOF) {
		before := p.tok.Span
		p.parseItem(fileID)
		if p.tok.Span == before && !p.at(token.EOF) {
			// No progress; drop one token rather than spin.
			p.advance()
		}
	}
	return Result{Builder: p.builder, File: fileID}
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// peek looks one token past the current one.
func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) advance() token.Token {
	tok := p.tok
	p.lastSpan = tok.Span
	p.tok = p.lx.Next()
	return tok
}

func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.report(code, p.tok.Span, msg)
	return p.tok, false
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	p.reporter.Report(code, diag.SevError, span, msg, nil)
}

// spanFrom covers everything from start to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// syncStmt skips tokens until a statement boundary: past the next ';',
// or up to a '}'.
func (p *Parser) syncStmt() {
	for !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			return
		}
		if p.at(token.RBrace) {
			return
		}
		p.advance()
	}
}

// skipBalanced consumes from the current open token through its
// matching close token, tracking nesting.
func (p *Parser) skipBalanced(open, closing token.Kind, code diag.Code, msg string) {
	start := p.tok.Span
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case open:
			depth++
		case closing:
			depth--
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
	p.report(code, start, msg)
}
