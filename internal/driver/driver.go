package driver

import (
	"tenet/internal/analyze"
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/parser"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

// DefaultMaxDiagnostics caps the bag of one file unless the caller
// overrides it.
const DefaultMaxDiagnostics = 256

// CheckResult is everything one file's pipeline produced. Builder and
// Interner are nil when the result was served from the disk cache.
type CheckResult struct {
	Path     string
	FileID   source.FileID
	Bag      *diag.Bag
	Builder  *ast.Builder
	ASTFile  ast.FileID
	Interner *source.Interner
	Cached   bool
}

// CheckFile loads one file from disk and runs the full pipeline on it.
func CheckFile(fileSet *source.FileSet, path string, rs *ruleset.Ruleset, maxDiagnostics int) CheckResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
			"failed to load file: "+err.Error()))
		return CheckResult{Path: path, Bag: bag}
	}
	return checkLoaded(fileSet, fileID, path, rs, maxDiagnostics)
}

// checkLoaded runs lex+parse+analyze over an already-loaded file.
// Analysis is skipped when lexing or parsing reported errors: rules
// over a recovered tree would only echo the damage.
func checkLoaded(fileSet *source.FileSet, fileID source.FileID, path string,
	rs *ruleset.Ruleset, maxDiagnostics int) CheckResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	interner := source.NewInterner()

	file := fileSet.Get(fileID)
	res := parser.ParseFile(file, interner, parser.Options{Reporter: reporter})

	if !bag.HasBlockers() {
		ctx := analyze.NewContext(fileSet, interner, res.Builder, rs.Limits, reporter)
		analyze.New(rs).Analyze(ctx, res.File)
	}

	return CheckResult{
		Path:     path,
		FileID:   fileID,
		Bag:      bag,
		Builder:  res.Builder,
		ASTFile:  res.File,
		Interner: interner,
	}
}
