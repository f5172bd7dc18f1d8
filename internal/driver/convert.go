// Package driver wires the pipeline into one-call services: Convert
// runs lex, parse, plan, and flush for a single diagram; Tokenize and
// Parse expose the intermediate stages for the debug commands.
package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"umlc/internal/backend"
	"umlc/internal/diag"
	"umlc/internal/emit"
	"umlc/internal/errors"
	"umlc/internal/logger"
	"umlc/internal/observ"
	"umlc/internal/parser"
	"umlc/internal/source"
)

// DefaultMaxDiagnostics caps the bag when the request leaves the
// limit unset.
const DefaultMaxDiagnostics = 64

// Request describes one conversion run.
type Request struct {
	// Text is the raw diagram source.
	Text []byte
	// Path names the source in diagnostics. Empty defaults to "<input>".
	Path string
	// Target selects the output language.
	Target backend.Target
	// Namespace overrides the target's namespace root where one exists.
	Namespace string
	// OutputRoot receives the diagram directory. Empty means the
	// current directory.
	OutputRoot string
	// MaxDiagnostics caps the run's bag. Zero applies the default.
	MaxDiagnostics int
}

// Result reports a completed run.
type Result struct {
	// RootDir is the diagram directory the run created.
	RootDir string
	// Files counts the artifacts written under RootDir.
	Files int
	// Warnings holds the run's non-fatal diagnostics: unresolved
	// relationship endpoints and unmapped type names.
	Warnings []diag.Diagnostic
	// FileSet resolves the warning spans for rendering.
	FileSet *source.FileSet
	// Timings holds the per-phase durations.
	Timings observ.Report
}

// RunError aborts a run whose diagnostics reached error severity. It
// carries the full bag and the file set so callers can render the
// report with source context.
type RunError struct {
	Bag     *diag.Bag
	FileSet *source.FileSet
}

func (e *RunError) Error() string {
	errs := 0
	for _, d := range e.Bag.Items() {
		if d.Severity >= diag.SevError {
			errs++
		}
	}
	if errs == 1 {
		return "conversion failed: 1 error"
	}
	return fmt.Sprintf("conversion failed: %d errors", errs)
}

// Convert runs the full pipeline over one diagram text. The model is
// built and every output file rendered before anything touches disk;
// a run therefore lands its complete tree or nothing. Diagnostic
// failures return a RunError, filesystem failures return the wrapped
// emit.IOError, and warnings ride along in the Result.
//
// ctx is consulted between phases only; a running phase is never
// interrupted, so a cancelled run still leaves no partial output.
func Convert(ctx context.Context, req Request) (Result, error) {
	runID := uuid.NewString()
	timer := observ.NewTimer()

	maxDiag := req.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiag)
	reporter := diag.BagReporter{Bag: bag}

	log := logger.L.With("run_id", runID, "target", req.Target.String())
	log.Infow("conversion started", "bytes", len(req.Text))

	path := req.Path
	if path == "" {
		path = "<input>"
	}
	maxErrors, err := safeMaxErrors(maxDiag)
	if err != nil {
		return Result{}, err
	}

	// The parser drives the lexer, so one phase covers both.
	done := timer.Track("parse")
	fs := source.NewFileSet()
	parsed := parser.ParseText(fs, path, req.Text, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	done(fmt.Sprintf("%d structures", len(parsed.Diagram.Structures())))

	if bag.HasErrors() {
		bag.Sort()
		log.Warnw("conversion aborted", "diagnostics", bag.Len())
		return Result{Timings: timer.Report()}, &RunError{Bag: bag, FileSet: fs}
	}
	if err := ctx.Err(); err != nil {
		return Result{Timings: timer.Report()}, err
	}

	done = timer.Track("plan")
	gen, err := emit.NewGenerator(req.Target, parsed.Diagram, req.Namespace)
	if err != nil {
		return Result{Timings: timer.Report()}, err
	}
	plan := emit.BuildPlan(gen, parsed.Diagram)
	for _, name := range gen.OpaqueTypes() {
		diag.ReportWarning(reporter, diag.GenUnmappedType, source.Span{},
			fmt.Sprintf("type %q has no %s mapping; the name is passed through verbatim", name, req.Target)).Emit()
	}
	done(fmt.Sprintf("%d files", len(plan.Files())))

	if err := ctx.Err(); err != nil {
		return Result{Timings: timer.Report()}, err
	}

	done = timer.Track("flush")
	rootDir, err := plan.Flush(req.OutputRoot)
	if err != nil {
		done("failed")
		log.Errorw("flush failed", "err", err)
		return Result{Timings: timer.Report()}, errors.Wrap(err, "flush output tree")
	}
	done(rootDir)

	bag.Sort()
	res := Result{
		RootDir:  rootDir,
		Files:    len(plan.Files()),
		Warnings: bag.Warnings(),
		FileSet:  fs,
		Timings:  timer.Report(),
	}
	log.Infow("conversion complete",
		"root", res.RootDir, "files", res.Files, "warnings", len(res.Warnings))
	return res, nil
}
