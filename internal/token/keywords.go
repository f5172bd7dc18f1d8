package token

var keywords = map[string]Kind{
	"class":      KwClass,
	"interface":  KwInterface,
	"enum":       KwEnum,
	"package":    KwPackage,
	"abstract":   KwAbstract,
	"extends":    KwExtends,
	"implements": KwImplements,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase spellings are recognized,
// so Class stays an ordinary identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
