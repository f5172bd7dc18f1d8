package uml

import (
	"fortio.org/safecast"
)

// StructureKind discriminates the three declarable structures.
type StructureKind uint8

const (
	KindClass StructureKind = iota
	KindInterface
	KindEnum
)

func (k StructureKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Structure is the common read surface of classes, interfaces, and
// enums. Concrete behavior differences are handled by type switches in
// the backends.
type Structure interface {
	StructName() string
	Owner() *Package
	Kind() StructureKind
	Attributes() []*Attribute
	Methods() []*Method
}

// Common carries the fields every structure shares. It is embedded by
// the concrete structure types.
type Common struct {
	Name  string
	Pkg   *Package
	Attrs []*Attribute
	Meths []*Method
}

func (c *Common) StructName() string       { return c.Name }
func (c *Common) Owner() *Package          { return c.Pkg }
func (c *Common) Attributes() []*Attribute { return c.Attrs }
func (c *Common) Methods() []*Method       { return c.Meths }

// Class declares optional single inheritance plus an ordered interface
// list. Base and Implements hold canonical names resolved against the
// registry at generation time.
type Class struct {
	Common
	Base       string
	Implements []string
	Abstract   bool
}

func (*Class) Kind() StructureKind { return KindClass }

// Interface declares an ordered list of extended interfaces.
type Interface struct {
	Common
	Extends []string
}

func (*Interface) Kind() StructureKind { return KindInterface }

// EnumValue is one declared enum constant, optionally with an explicit
// integer.
type EnumValue struct {
	Name     string
	Explicit bool
	Value    int64
}

// Enum declares ordered values; declaration order drives sequential
// assignment where no explicit integers appear.
type Enum struct {
	Common
	Values []EnumValue
}

func (*Enum) Kind() StructureKind { return KindEnum }

// ResolvedValue pairs an enum constant with its effective integer.
type ResolvedValue struct {
	Name     string
	Value    int64
	Explicit bool
}

// Resolved assigns effective integers to every value: explicit ones
// verbatim, implicit ones continuing the running sequence (starting at
// zero).
func (e *Enum) Resolved() []ResolvedValue {
	out := make([]ResolvedValue, 0, len(e.Values))
	next := int64(0)
	for _, v := range e.Values {
		if v.Explicit {
			out = append(out, ResolvedValue{Name: v.Name, Value: v.Value, Explicit: true})
			next = v.Value + 1
			continue
		}
		out = append(out, ResolvedValue{Name: v.Name, Value: next})
		next++
	}
	return out
}

// HasExplicitValues reports whether any value carries an explicit
// integer.
func (e *Enum) HasExplicitValues() bool {
	for _, v := range e.Values {
		if v.Explicit {
			return true
		}
	}
	return false
}

// EnumWidth is the narrowest integer width backing an enum.
type EnumWidth uint8

const (
	Width8 EnumWidth = iota
	Width16
	Width32
	Width64
)

// Width computes the underlying integer width. Only explicit values
// count; when none exist, the value count alone decides, starting from
// the byte-equivalent default.
func (e *Enum) Width() EnumWidth {
	hasExplicit := false
	width := Width8
	for _, v := range e.Values {
		if !v.Explicit {
			continue
		}
		hasExplicit = true
		if _, err := safecast.Conv[uint8](v.Value); err == nil {
			continue
		}
		if width < Width16 {
			width = Width16
		}
		if _, err := safecast.Conv[int16](v.Value); err == nil {
			continue
		}
		if width < Width32 {
			width = Width32
		}
		if _, err := safecast.Conv[int32](v.Value); err == nil {
			continue
		}
		width = Width64
	}
	if hasExplicit {
		return width
	}

	// Implicit values run 0..n-1.
	switch n := int64(len(e.Values)); {
	case n <= 256:
		return Width8
	case n <= 32768:
		return Width16
	default:
		return Width32
	}
}
