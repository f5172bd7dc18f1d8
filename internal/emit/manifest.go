package emit

import (
	"fmt"
	"strconv"
	"strings"

	"umlc/internal/uml"
)

// ManifestName is the relationship manifest written at the diagram
// root for every target. Browsing treats its presence as the marker
// that the run completed.
const ManifestName = "_diagram_relationships.txt"

// renderManifest lists every relationship with canonical names, one
// line each. Entries with endpoints absent from the registry become
// warning lines instead. An empty relationship list still produces
// the header.
func renderManifest(d *uml.Diagram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Relationships for diagram %q\n", d.Name)
	if len(d.Relationships) == 0 {
		return b.String()
	}
	b.WriteByte('\n')
	for _, r := range d.Relationships {
		entry := r.String()
		if missing := unresolved(d, r); len(missing) > 0 {
			fmt.Fprintf(&b, "warning: %s [unresolved: %s]\n", entry, strings.Join(missing, ", "))
			continue
		}
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return b.String()
}

func unresolved(d *uml.Diagram, r *uml.Relationship) []string {
	var missing []string
	if _, ok := d.Lookup(r.Source); !ok {
		missing = append(missing, strconv.Quote(r.Source))
	}
	if _, ok := d.Lookup(r.Target); !ok {
		missing = append(missing, strconv.Quote(r.Target))
	}
	return missing
}
