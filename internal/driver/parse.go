package driver

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/parser"
	"tenet/internal/source"
)

// ParseResult carries one file's tree plus the arenas needed to walk it.
type ParseResult struct {
	FileSet  *source.FileSet
	FileID   source.FileID
	Builder  *ast.Builder
	ASTFile  ast.FileID
	Interner *source.Interner
	Bag      *diag.Bag
}

// Parse builds the tree of a single file without running any rules.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	interner := source.NewInterner()
	res := parser.ParseFile(fileSet.Get(fileID), interner, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet:  fileSet,
		FileID:   fileID,
		Builder:  res.Builder,
		ASTFile:  res.File,
		Interner: interner,
		Bag:      bag,
	}, nil
}
