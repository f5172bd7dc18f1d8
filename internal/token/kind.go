package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a bare identifier or multiplicity word.
	Ident
	// String represents a quoted name or label.
	String

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements

	// StartDirective represents the '@startuml' opening directive.
	StartDirective // @startuml
	// EndDirective represents the '@enduml' closing directive.
	EndDirective // @enduml

	// AnnAbstract represents the '{abstract}' member annotation.
	AnnAbstract // {abstract}
	// AnnStatic represents the '{static}' (or '{classifier}') member annotation.
	AnnStatic // {static}

	// Plus represents the public visibility marker.
	Plus // +
	// Minus represents the private visibility marker.
	Minus // -
	// Hash represents the protected visibility marker.
	Hash // #
	// Tilde represents the package-private visibility marker.
	Tilde // ~

	// InheritLeft represents the '<|--' inheritance arrow.
	InheritLeft // <|--
	// InheritRight represents the '--|>' inheritance arrow.
	InheritRight // --|>
	// RealizeLeft represents the '<|..' realization arrow.
	RealizeLeft // <|..
	// RealizeRight represents the '..|>' realization arrow.
	RealizeRight // ..|>
	// ComposeLeft represents the '*--' composition arrow.
	ComposeLeft // *--
	// ComposeRight represents the '--*' composition arrow.
	ComposeRight // --*
	// AggregLeft represents the 'o--' aggregation arrow.
	AggregLeft // o--
	// AggregRight represents the '--o' aggregation arrow.
	AggregRight // --o
	// AssocRight represents the '-->' directed association arrow.
	AssocRight // -->
	// AssocLeft represents the '<--' directed association arrow.
	AssocLeft // <--
	// DependRight represents the '..>' directed dependency arrow.
	DependRight // ..>
	// DependLeft represents the '<..' directed dependency arrow.
	DependLeft // <..
	// AssocPlain represents the '--' association line.
	AssocPlain // --
	// DependPlain represents the '..' dependency line.
	DependPlain // ..

	// LBrace represents the left brace.
	LBrace // {
	// RBrace represents the right brace.
	RBrace // }
	// LParen represents the left parenthesis.
	LParen // (
	// RParen represents the right parenthesis.
	RParen // )
	// Colon represents the colon.
	Colon // :
	// Comma represents the comma.
	Comma // ,
	// Assign represents the equals sign.
	Assign // =
	// Lt represents the left angle bracket in generic types.
	Lt // <
	// Gt represents the right angle bracket in generic types.
	Gt // >
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	String:         "String",
	KwClass:        "KwClass",
	KwInterface:    "KwInterface",
	KwEnum:         "KwEnum",
	KwPackage:      "KwPackage",
	KwAbstract:     "KwAbstract",
	KwExtends:      "KwExtends",
	KwImplements:   "KwImplements",
	StartDirective: "StartDirective",
	EndDirective:   "EndDirective",
	AnnAbstract:    "AnnAbstract",
	AnnStatic:      "AnnStatic",
	Plus:           "Plus",
	Minus:          "Minus",
	Hash:           "Hash",
	Tilde:          "Tilde",
	InheritLeft:    "InheritLeft",
	InheritRight:   "InheritRight",
	RealizeLeft:    "RealizeLeft",
	RealizeRight:   "RealizeRight",
	ComposeLeft:    "ComposeLeft",
	ComposeRight:   "ComposeRight",
	AggregLeft:     "AggregLeft",
	AggregRight:    "AggregRight",
	AssocRight:     "AssocRight",
	AssocLeft:      "AssocLeft",
	DependRight:    "DependRight",
	DependLeft:     "DependLeft",
	AssocPlain:     "AssocPlain",
	DependPlain:    "DependPlain",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LParen:         "LParen",
	RParen:         "RParen",
	Colon:          "Colon",
	Comma:          "Comma",
	Assign:         "Assign",
	Lt:             "Lt",
	Gt:             "Gt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
