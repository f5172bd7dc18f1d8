// Package token defines lexical token kinds and trivia for the diagram DSL.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Quoted names keep their quotes in Text; unquoting happens in the parser.
//   - Comments and presentation directives (skinparam, hide, show, !pragma)
//     are leading Trivia and never appear in the main token stream.
//   - Multiplicity words such as 0..* lex as a single Ident; the lexer never
//     splits a digit-led run on dots.
package token
