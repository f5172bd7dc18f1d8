package backend

import "strings"

// SplitGeneric splits one level of a parametrized type into its base
// name and top-level arguments: "Map<String, List<int>>" yields "Map"
// and ["String", "List<int>"]. ok is false for plain names and for
// malformed parameter lists, which callers treat as simple types.
func SplitGeneric(raw string) (base string, args []string, ok bool) {
	raw = strings.TrimSpace(raw)
	open := strings.IndexByte(raw, '<')
	if open <= 0 || !strings.HasSuffix(raw, ">") {
		return "", nil, false
	}
	base = strings.TrimSpace(raw[:open])
	inner := raw[open+1 : len(raw)-1]

	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", nil, false
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, false
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	for _, a := range args {
		if a == "" {
			return "", nil, false
		}
	}
	return base, args, true
}
