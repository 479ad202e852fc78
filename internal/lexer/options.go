package lexer

import (
	"tenet/internal/diag"
	"tenet/internal/source"
)

type Options struct {
	// Reporter may be nil: errors are then dropped, lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
