package uml

// Visibility is a member access level as written in the diagram.
type Visibility uint8

const (
	Public Visibility = iota
	Private
	Protected
	PackagePrivate
)

// Marker returns the diagram notation for v.
func (v Visibility) Marker() string {
	switch v {
	case Public:
		return "+"
	case Private:
		return "-"
	case Protected:
		return "#"
	case PackagePrivate:
		return "~"
	}
	return "?"
}

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	case PackagePrivate:
		return "package"
	}
	return "unknown"
}

// VisibilityFromMarker maps a diagram marker to its visibility.
func VisibilityFromMarker(marker string) (Visibility, bool) {
	switch marker {
	case "+":
		return Public, true
	case "-":
		return Private, true
	case "#":
		return Protected, true
	case "~":
		return PackagePrivate, true
	}
	return Public, false
}
