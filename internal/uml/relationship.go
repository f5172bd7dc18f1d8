package uml

import (
	"fmt"
	"strings"
)

// RelationshipKind classifies a relationship line.
type RelationshipKind uint8

const (
	Inheritance RelationshipKind = iota
	Realization
	Association
	Aggregation
	Composition
	Dependency
)

// String returns the manifest wording for the kind.
func (k RelationshipKind) String() string {
	switch k {
	case Inheritance:
		return "inheritance"
	case Realization:
		return "realization"
	case Association:
		return "association"
	case Aggregation:
		return "aggregation"
	case Composition:
		return "composition"
	case Dependency:
		return "dependency"
	}
	return "unknown"
}

// Relationship records one arrow line. Endpoints are free text checked
// lazily against the registry after the structural pass; multiplicities
// are kept verbatim and never interpreted.
//
// For inheritance and realization the parser normalizes direction so
// Source is always the parent or interface side, whichever way the
// arrow pointed in the text. Arrow keeps the original spelling.
type Relationship struct {
	Source     string
	Target     string
	SourceCard string
	TargetCard string
	Kind       RelationshipKind
	Label      string
	Arrow      string
}

// String renders the canonical one-line form used by the manifest and
// the model dump: source, kind, target, with optional multiplicities
// in parentheses and an optional label suffix.
func (r *Relationship) String() string {
	var b strings.Builder
	b.WriteString(r.Source)
	if r.SourceCard != "" {
		fmt.Fprintf(&b, " (%s)", r.SourceCard)
	}
	fmt.Fprintf(&b, " %s %s", r.Kind, r.Target)
	if r.TargetCard != "" {
		fmt.Fprintf(&b, " (%s)", r.TargetCard)
	}
	if r.Label != "" {
		b.WriteString(" : ")
		b.WriteString(r.Label)
	}
	return b.String()
}
