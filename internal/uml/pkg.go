package uml

// Package is one node of the diagram's package tree. The root package
// has an empty name and no parent; structures declared outside any
// package block land there.
type Package struct {
	Name       string
	Packages   []*Package
	Structures []Structure

	parent *Package
}

// NewRootPackage returns the implicit root.
func NewRootPackage() *Package {
	return &Package{}
}

// IsRoot reports whether p is the implicit root package.
func (p *Package) IsRoot() bool { return p.parent == nil }

// Parent returns the owning package, nil for the root.
func (p *Package) Parent() *Package { return p.parent }

// Child returns the direct subpackage called name, creating it on
// first use so repeated package blocks merge.
func (p *Package) Child(name string) *Package {
	for _, sub := range p.Packages {
		if sub.Name == name {
			return sub
		}
	}
	sub := &Package{Name: name, parent: p}
	p.Packages = append(p.Packages, sub)
	return sub
}

// Path returns the package names from the root down to p, excluding
// the unnamed root itself.
func (p *Package) Path() []string {
	if p == nil || p.IsRoot() {
		return nil
	}
	parent := p.parent.Path()
	return append(parent, p.Name)
}

// Walk visits p and every descendant package depth-first in
// declaration order.
func (p *Package) Walk(visit func(*Package)) {
	visit(p)
	for _, sub := range p.Packages {
		sub.Walk(visit)
	}
}
