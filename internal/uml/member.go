package uml

// Attribute is one declared field of a class, interface, or enum.
// Type and Default keep the raw diagram text; mapping to target types
// happens at generation time.
type Attribute struct {
	Name       string
	Type       string
	Visibility Visibility
	Static     bool
	Default    string
}

// HasDefault reports whether the attribute declared a default value.
func (a *Attribute) HasDefault() bool { return a.Default != "" }

// Required reports whether the attribute demands a constructor
// parameter: instance state with no default.
func (a *Attribute) Required() bool { return !a.Static && a.Default == "" }

// Method is one declared operation. An empty Returns means the method
// declares no return type (void).
type Method struct {
	Name       string
	Visibility Visibility
	Static     bool
	Abstract   bool
	Returns    string
	Params     []*Parameter
}

// Parameter is one method parameter with its raw type text.
type Parameter struct {
	Name    string
	Type    string
	Default string
}
