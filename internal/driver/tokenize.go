package driver

import (
	"tenet/internal/diag"
	"tenet/internal/lexer"
	"tenet/internal/source"
	"tenet/internal/token"
)

// TokenizeResult carries the token stream of one file plus whatever
// the lexer reported along the way.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file to completion. The EOF token is kept so
// callers see trailing trivia positions.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fileSet,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
