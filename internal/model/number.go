package model

// LatnSystem is the Western decimal digit system, CLDR's default numbering
// system when a <symbols> block names none.
const LatnSystem = "latn"

// NumberingSystem is a named set of ten digit glyphs. One instance exists
// per distinct identifier; the supplemental numbering-systems document is
// the single source of truth and per-locale data references systems by id.
type NumberingSystem struct {
	ID     string
	Digits [10]rune
}

// NumberSymbols holds a locale's number formatting symbols for one
// numbering system. Every field except System is optional: absence means
// "not specified in this locale, inherit from the parent", which is
// resolved downstream of this generator.
type NumberSymbols struct {
	System string // owning numbering system id

	// AliasOf marks the whole block as "use that system's symbols".
	AliasOf Opt[string]

	Decimal  Opt[rune]
	Group    Opt[rune]
	List     Opt[rune]
	Percent  Opt[rune]
	Plus     Opt[rune]
	Minus    Opt[rune]
	PerMille Opt[rune]

	Infinity Opt[string]
	NaN      Opt[string]
	Exponent Opt[string]
}

// AliasSymbols builds a NumberSymbols record that merely redirects to
// another system's symbols.
func AliasSymbols(system, target string) NumberSymbols {
	return NumberSymbols{System: system, AliasOf: Some(target)}
}
