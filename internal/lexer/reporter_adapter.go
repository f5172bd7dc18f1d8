package lexer

import "umlc/internal/diag"

// BagOptions builds Options that collect diagnostics into bag.
func BagOptions(bag *diag.Bag) Options {
	return Options{Reporter: diag.BagReporter{Bag: bag}}
}
