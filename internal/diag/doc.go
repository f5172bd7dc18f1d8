// Package diag carries structured diagnostics through the conversion
// pipeline.
//
// Each phase (lexer, parser, backends, emitter) reports through a thin
// Reporter interface; the driver collects everything into a Bag and
// decides afterwards whether the run may write output. Codes are grouped
// in blocks of one thousand per phase:
//
//	LEX  1000+  lexical errors
//	SYN  2000+  syntax errors
//	REF  3000+  reference resolution (unresolved endpoints, duplicates)
//	GEN  4000+  generation errors
//	IO   5000+  output filesystem errors
//	PRJ  6000+  project manifest errors
//
// Severity rules follow the conversion contract: errors abort a run
// before any file is written; warnings (unresolved relationship
// endpoints) are recorded in the manifest and never abort.
package diag
