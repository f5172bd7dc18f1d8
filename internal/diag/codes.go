package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntax
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedBrace         Code = 2002
	SynStrayBrace            Code = 2003
	SynMalformedRelationship Code = 2004
	SynExpectName            Code = 2005
	SynExpectType            Code = 2006
	SynMissingStart          Code = 2007
	SynUnclosedParen         Code = 2008
	SynBadEnumValue          Code = 2009
	SynKeywordOutsideBlock   Code = 2010

	// Reference resolution
	RefInfo               Code = 3000
	RefUnresolvedEndpoint Code = 3001
	RefDuplicateStructure Code = 3002
	RefUnknownBase        Code = 3003

	// Generation
	GenInfo          Code = 4000
	GenUnknownTarget Code = 4001
	GenUnmappedType  Code = 4002

	// Output filesystem
	IOInfo       Code = 5000
	IOCreateDir  Code = 5001
	IOWriteFile  Code = 5002
	IOReadInput  Code = 5003
	IOOutputRoot Code = 5004

	// Project manifest
	PrjInfo        Code = 6000
	PrjManifestBad Code = 6001
	PrjBadTarget   Code = 6002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedBrace:            "Unclosed brace",
	SynStrayBrace:               "Stray closing brace",
	SynMalformedRelationship:    "Malformed relationship line",
	SynExpectName:               "Expected a name",
	SynExpectType:               "Expected a type",
	SynMissingStart:             "Missing @startuml directive",
	SynUnclosedParen:            "Unclosed parameter list",
	SynBadEnumValue:             "Bad enum value",
	SynKeywordOutsideBlock:      "Keyword outside any recognized grammar",
	RefInfo:                     "Reference information",
	RefUnresolvedEndpoint:       "Unresolved relationship endpoint",
	RefDuplicateStructure:       "Duplicate structure name in package",
	RefUnknownBase:              "Unknown base or interface reference",
	GenInfo:                     "Generation information",
	GenUnknownTarget:            "Unknown target language",
	GenUnmappedType:             "Type cannot be mapped",
	IOInfo:                      "Output information",
	IOCreateDir:                 "Cannot create output directory",
	IOWriteFile:                 "Cannot write output file",
	IOReadInput:                 "Cannot read input",
	IOOutputRoot:                "Bad output root",
	PrjInfo:                     "Project information",
	PrjManifestBad:              "Bad project manifest",
	PrjBadTarget:                "Bad target in project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
