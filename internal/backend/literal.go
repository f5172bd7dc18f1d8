package backend

import "strconv"

// IsNumericLiteral reports whether raw parses as an integer or float
// literal that targets may embed without quoting.
func IsNumericLiteral(raw string) bool {
	if raw == "" {
		return false
	}
	rest := raw
	if rest[0] == '-' || rest[0] == '+' {
		rest = rest[1:]
		if rest == "" {
			return false
		}
	}
	if rest[0] != '.' && (rest[0] < '0' || rest[0] > '9') {
		return false
	}
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}

// IsIntegerLiteral reports whether raw parses as a plain integer.
func IsIntegerLiteral(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := strconv.ParseInt(raw, 10, 64)
	return err == nil
}
