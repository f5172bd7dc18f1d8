package uml

// CtorParam is one constructor parameter derived from an attribute.
// Inherited marks parameters collected from the base-class chain; they
// are forwarded to the base constructor rather than assigned.
type CtorParam struct {
	Name      string
	Type      string
	Default   string
	Inherited bool
}

// ConstructorParams computes the full ordered parameter list for a
// class constructor: required parameters inherited through the base
// chain (rootmost base first), then the class's own required
// parameters, then its own defaulted ones. The walk is read-only and
// resolves base names through the registry; unknown bases end the
// chain, and a base cycle stops at the first repeat.
func ConstructorParams(d *Diagram, c *Class) []CtorParam {
	out := make([]CtorParam, 0, len(c.Attrs))

	for _, base := range baseChain(d, c) {
		for _, a := range base.Attrs {
			if !a.Required() {
				continue
			}
			out = append(out, CtorParam{Name: a.Name, Type: a.Type, Inherited: true})
		}
	}
	for _, a := range c.Attrs {
		if !a.Required() {
			continue
		}
		out = append(out, CtorParam{Name: a.Name, Type: a.Type})
	}
	for _, a := range c.Attrs {
		if a.Static || !a.HasDefault() {
			continue
		}
		out = append(out, CtorParam{Name: a.Name, Type: a.Type, Default: a.Default})
	}
	return out
}

// InheritedParams returns only the base-chain part of the constructor
// parameter list, in forwarding order.
func InheritedParams(d *Diagram, c *Class) []CtorParam {
	params := ConstructorParams(d, c)
	out := make([]CtorParam, 0, len(params))
	for _, p := range params {
		if p.Inherited {
			out = append(out, p)
		}
	}
	return out
}

// baseChain resolves the transitive base classes of c, ordered from
// the root of the hierarchy down to c's direct base.
func baseChain(d *Diagram, c *Class) []*Class {
	var chain []*Class
	seen := map[string]bool{c.Name: true}

	name := c.Base
	for name != "" && !seen[name] {
		seen[name] = true
		s, ok := d.Lookup(name)
		if !ok {
			break
		}
		base, ok := s.(*Class)
		if !ok {
			break
		}
		chain = append(chain, base)
		name = base.Base
	}

	// Reverse so the rootmost ancestor contributes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
