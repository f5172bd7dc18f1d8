package uml

// DefaultName is used when the opening directive names no diagram.
const DefaultName = "diagram"

// Diagram is the root of the semantic model for one conversion run.
type Diagram struct {
	Name          string
	Root          *Package
	Relationships []*Relationship

	registry map[string]Structure
	order    []Structure
}

func NewDiagram(name string) *Diagram {
	if name == "" {
		name = DefaultName
	}
	return &Diagram{
		Name:     name,
		Root:     NewRootPackage(),
		registry: make(map[string]Structure),
	}
}

// Declare attaches s to its owning package and registers it in the
// flat registry. It returns false when the owning package already
// declares the name; the caller reports that as a duplicate. A name
// clash across different packages is legal: the structure still joins
// its package, but the first registration keeps the registry slot.
func (d *Diagram) Declare(s Structure) bool {
	owner := s.Owner()
	name := s.StructName()

	for _, sibling := range owner.Structures {
		if sibling.StructName() == name {
			return false
		}
	}
	owner.Structures = append(owner.Structures, s)

	if _, taken := d.registry[name]; !taken {
		d.registry[name] = s
	}
	d.order = append(d.order, s)
	return true
}

// Lookup resolves a canonical name against the flat registry.
func (d *Diagram) Lookup(name string) (Structure, bool) {
	s, ok := d.registry[name]
	return s, ok
}

// Structures returns every declared structure in registration order.
// The slice aliases internal storage; callers must not modify it.
func (d *Diagram) Structures() []Structure {
	return d.order
}

// AddRelationship appends one validated relationship record.
func (d *Diagram) AddRelationship(r *Relationship) {
	d.Relationships = append(d.Relationships, r)
}
