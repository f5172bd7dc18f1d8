package driver

import (
	"umlc/internal/diag"
	"umlc/internal/errors"
	"umlc/internal/lexer"
	"umlc/internal/source"
	"umlc/internal/token"
)

// TokenizeResult carries the token stream of one input file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file to EOF. Lex diagnostics land in the bag;
// only a failure to read the input is an error.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %q", path)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.BagOptions(bag))

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}
