// Package uml holds the semantic model a parsed diagram resolves into:
// a named diagram owning a package tree, a flat symbol registry, and a
// relationship list.
//
// The model is built once per conversion run by the parser and is
// read-only afterwards; backends walk it but never mutate it. Nothing
// here is persisted: the model lives for one run and is discarded after
// emission.
//
// Registry semantics: structures register under their canonical
// (quote-stripped) name. A name must be unique within its owning
// package; the same name in two different packages is allowed, in which
// case the first registration keeps the flat-registry slot and later
// ones remain reachable only through their package.
package uml
