package driver

import (
	"fortio.org/safecast"

	"umlc/internal/diag"
	"umlc/internal/errors"
	"umlc/internal/lexer"
	"umlc/internal/parser"
	"umlc/internal/source"
	"umlc/internal/uml"
)

// ParseResult carries the semantic model of one input file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Diagram *uml.Diagram
	Bag     *diag.Bag
}

// Parse builds the semantic model for one file. Lex and parse
// diagnostics land in the bag; only a failure to read the input is
// an error.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %q", path)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	maxErrors, err := safeMaxErrors(maxDiagnostics)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file, lexer.BagOptions(bag))
	result := parser.ParseFile(fs, lx, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{FileSet: fs, File: file, Diagram: result.Diagram, Bag: bag}, nil
}

func safeMaxErrors(maxDiagnostics int) (uint, error) {
	n, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return 0, errors.Wrap(err, "diagnostic limit")
	}
	return n, nil
}
