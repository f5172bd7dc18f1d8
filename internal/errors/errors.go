// Package errors provides error handling for umlc.
//
// It re-exports github.com/cockroachdb/errors so every package gets
// stack traces, wrapping with context, and user-facing hints from a
// single import. The helpers are drop-in compatible with the standard
// library's errors.Is and errors.As.
//
// Usage:
//
//	if err := flush(plan); err != nil {
//	    return errors.Wrap(err, "write output tree")
//	}
//
//	return errors.WithHint(err, "run 'umlc init' to create umlc.toml")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing hints and details, surfaced by the CLI on failure.
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection, compatible with the standard library.
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	Join          = crdb.Join
	CombineErrors = crdb.CombineErrors
)

// AssertionFailedf reports a violated internal invariant. These are
// bugs in umlc itself, never user input errors.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors shared across packages. Check with Is, wrap with
// Wrap to add context while preserving the identity.
var (
	// ErrNotGenerated marks a directory that was not produced by a
	// previous convert run, detected by the missing relationship
	// manifest.
	ErrNotGenerated = New("not a generated output tree")

	// ErrNoProject reports that no umlc.toml was found in the working
	// directory or any of its parents.
	ErrNoProject = New("no project configuration found")
)
