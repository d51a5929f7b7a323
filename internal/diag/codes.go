package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// I/O
	IOLoadFileError Code = 1000
	IOWriteError    Code = 1001

	// XML document structure
	XMLInfo          Code = 2000
	XMLSyntaxError   Code = 2001
	XMLEmptyDocument Code = 2002

	// Record building
	BuildInfo                 Code = 3000
	BuildBadPatternKind       Code = 3001
	BuildMissingLanguage      Code = 3002
	BuildUnknownNumberSystem  Code = 3003
	BuildDuplicateSymbols     Code = 3004
	BuildBadNumberingDigits   Code = 3005
	BuildDuplicateCanonical   Code = 3006
	BuildSupplementalMissing  Code = 3007
	BuildISO639MalformedEntry Code = 3008

	// Inheritance resolution
	ResolveInfo             Code = 4000
	ResolveUnresolvedParent Code = 4001
	ResolveNoRoot           Code = 4002
	ResolveMultipleRoots    Code = 4003
	ResolveCycle            Code = 4004
)

var codeNames = map[Code]string{
	UnknownCode: "Unknown",

	IOLoadFileError: "IOLoadFileError",
	IOWriteError:    "IOWriteError",

	XMLInfo:          "XMLInfo",
	XMLSyntaxError:   "XMLSyntaxError",
	XMLEmptyDocument: "XMLEmptyDocument",

	BuildInfo:                 "BuildInfo",
	BuildBadPatternKind:       "BuildBadPatternKind",
	BuildMissingLanguage:      "BuildMissingLanguage",
	BuildUnknownNumberSystem:  "BuildUnknownNumberSystem",
	BuildDuplicateSymbols:     "BuildDuplicateSymbols",
	BuildBadNumberingDigits:   "BuildBadNumberingDigits",
	BuildDuplicateCanonical:   "BuildDuplicateCanonical",
	BuildSupplementalMissing:  "BuildSupplementalMissing",
	BuildISO639MalformedEntry: "BuildISO639MalformedEntry",

	ResolveInfo:             "ResolveInfo",
	ResolveUnresolvedParent: "ResolveUnresolvedParent",
	ResolveNoRoot:           "ResolveNoRoot",
	ResolveMultipleRoots:    "ResolveMultipleRoots",
	ResolveCycle:            "ResolveCycle",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// ID returns the stable numeric form used in output ("CLDR4001").
func (c Code) ID() string {
	return fmt.Sprintf("CLDR%04d", uint16(c))
}
