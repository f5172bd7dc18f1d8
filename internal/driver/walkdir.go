package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"umlc/internal/diag"
	"umlc/internal/lexer"
	"umlc/internal/parser"
	"umlc/internal/source"
	"umlc/internal/token"
	"umlc/internal/uml"
)

// diagramExtensions lists the input suffixes the directory walk picks up.
var diagramExtensions = []string{".puml", ".plantuml", ".uml", ".wsd"}

// TokenizeDirResult carries one walked file's token stream.
type TokenizeDirResult struct {
	Path   string
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult carries one walked file's semantic model.
type ParseDirResult struct {
	Path    string
	Diagram *uml.Diagram
	Bag     *diag.Bag
}

// ListDiagramFiles returns the diagram files under dir in sorted order.
func ListDiagramFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range diagramExtensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// loadAll loads every file into the shared FileSet before the workers
// start. A file that cannot be read gets a bag holding the IO
// diagnostic instead of an ID.
func loadAll(fileSet *source.FileSet, files []string, maxDiagnostics int) (map[string]source.FileID, map[string]*diag.Bag) {
	ids := make(map[string]source.FileID, len(files))
	failed := make(map[string]*diag.Bag)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			bag := diag.NewBag(maxDiagnostics)
			bag.Add(diag.NewError(diag.IOReadInput, source.Span{}, "cannot read input: "+err.Error()))
			failed[path] = bag
			continue
		}
		ids[path] = id
	}
	return ids, failed
}

// TokenizeDir lexes every diagram file under dir, at most jobs at a
// time. Results come back in sorted path order and share one FileSet.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListDiagramFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	ids, failed := loadAll(fileSet, files, maxDiagnostics)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if bag, ok := failed[path]; ok {
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}
			bag := diag.NewBag(maxDiagnostics)
			lx := lexer.New(fileSet.Get(ids[path]), lexer.BagOptions(bag))
			var tokens []token.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF {
					break
				}
			}
			results[i] = TokenizeDirResult{Path: path, Tokens: tokens, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// ParseDir builds the semantic model for every diagram file under
// dir, at most jobs at a time, in sorted path order over one FileSet.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListDiagramFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	ids, failed := loadAll(fileSet, files, maxDiagnostics)
	maxErrors, err := safeMaxErrors(maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if bag, ok := failed[path]; ok {
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}
			bag := diag.NewBag(maxDiagnostics)
			lx := lexer.New(fileSet.Get(ids[path]), lexer.BagOptions(bag))
			res := parser.ParseFile(fileSet, lx, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: maxErrors,
			})
			results[i] = ParseDirResult{Path: path, Diagram: res.Diagram, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
