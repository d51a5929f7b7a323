// Package emit serializes the assembled locale model. The core hands an
// emitter the deduplicated numbering systems, calendar ids, metadata
// tables, and resolved locales with parent links by canonical key; what an
// emitter does with them is mechanical.
package emit

import (
	"sort"

	"cldrgen/internal/assemble"
	"cldrgen/internal/model"
)

// Emitter is the output backend contract.
type Emitter interface {
	Emit(m *assemble.Model) error
}

// Schema version of the emitted payload shape - increment when it changes.
const payloadSchemaVersion uint16 = 1

// Payload is the flat serialization shape shared by all backends. Optional
// fields are encoded as empty strings: a present symbol is never empty, so
// nothing is lost, and the shape stays free of pointers. Parent references
// are canonical keys; there is no object graph to cycle through.
type Payload struct {
	Schema uint16

	NumberingSystems []SystemPayload
	Calendars        []string

	Territories     []string
	Languages       []string
	Scripts         []string
	TerritoryAlpha3 map[string]string
	ISO639          map[string]string

	Locales []LocalePayload
}

// SystemPayload is one numbering system; Digits holds the ten glyphs as a
// single string.
type SystemPayload struct {
	ID     string
	Digits string
}

// SymbolsPayload is one number-symbols record. AliasOf non-empty means the
// whole record redirects to that system's symbols.
type SymbolsPayload struct {
	System  string
	AliasOf string

	Decimal  string
	Group    string
	List     string
	Percent  string
	Plus     string
	Minus    string
	PerMille string

	Infinity string
	NaN      string
	Exponent string
}

// PatternPayload is one date or time pattern with its length rank.
type PatternPayload struct {
	Kind    uint8
	Pattern string
}

// LocalePayload is one resolved locale.
type LocalePayload struct {
	Key    string
	Parent string // canonical key, empty for the root

	Language  string
	Script    string
	Territory string
	Variant   string
	Bundle    string

	DefaultNumberingSystem string
	Symbols                []SymbolsPayload // sorted by system id

	HasCalendar  bool
	MonthsWide   []string
	MonthsAbbr   []string
	WeekdaysWide []string
	WeekdaysAbbr []string
	AmPm         []string
	Eras         []string

	HasPatterns bool
	DateFormats []PatternPayload
	TimeFormats []PatternPayload
}

// FromModel flattens the assembled model into the serialization shape.
// Model ordering is already deterministic; the flattening keeps it.
func FromModel(m *assemble.Model) *Payload {
	p := &Payload{
		Schema:          payloadSchemaVersion,
		Calendars:       m.Calendars,
		Territories:     m.Metadata.Territories,
		Languages:       m.Metadata.Languages,
		Scripts:         m.Metadata.Scripts,
		TerritoryAlpha3: m.Metadata.TerritoryAlpha3,
		ISO639:          m.Metadata.ISO639,
	}

	p.NumberingSystems = make([]SystemPayload, 0, len(m.NumberingSystems))
	for _, sys := range m.NumberingSystems {
		p.NumberingSystems = append(p.NumberingSystems, SystemPayload{
			ID:     sys.ID,
			Digits: string(sys.Digits[:]),
		})
	}

	p.Locales = make([]LocalePayload, 0, len(m.Locales))
	for _, res := range m.Locales {
		p.Locales = append(p.Locales, localePayload(res))
	}
	return p
}

func localePayload(res model.Resolved) LocalePayload {
	loc := res.Locale
	lp := LocalePayload{
		Key:       loc.Key(),
		Parent:    res.Parent,
		Language:  loc.Identity.Language,
		Script:    loc.Identity.Script,
		Territory: loc.Identity.Territory,
		Variant:   loc.Identity.Variant,
		Bundle:    loc.BundleName,

		DefaultNumberingSystem: loc.DefaultNumberingSystem.Or(""),
	}

	for _, system := range sortedSystemIDs(loc.NumberSymbols) {
		lp.Symbols = append(lp.Symbols, symbolsPayload(loc.NumberSymbols[system]))
	}

	if cal, ok := loc.Calendar.Get(); ok {
		lp.HasCalendar = true
		lp.MonthsWide = cal.MonthsWide
		lp.MonthsAbbr = cal.MonthsAbbr
		lp.WeekdaysWide = cal.WeekdaysWide
		lp.WeekdaysAbbr = cal.WeekdaysAbbr
		lp.AmPm = cal.AmPm
		lp.Eras = cal.Eras
	}

	if pat, ok := loc.Patterns.Get(); ok {
		lp.HasPatterns = true
		for _, dp := range pat.DateFormats {
			lp.DateFormats = append(lp.DateFormats, PatternPayload{Kind: uint8(dp.Kind), Pattern: dp.Pattern})
		}
		for _, tp := range pat.TimeFormats {
			lp.TimeFormats = append(lp.TimeFormats, PatternPayload{Kind: uint8(tp.Kind), Pattern: tp.Pattern})
		}
	}
	return lp
}

func symbolsPayload(sym model.NumberSymbols) SymbolsPayload {
	sp := SymbolsPayload{
		System:   sym.System,
		AliasOf:  sym.AliasOf.Or(""),
		Infinity: sym.Infinity.Or(""),
		NaN:      sym.NaN.Or(""),
		Exponent: sym.Exponent.Or(""),
	}
	sp.Decimal = runeField(sym.Decimal)
	sp.Group = runeField(sym.Group)
	sp.List = runeField(sym.List)
	sp.Percent = runeField(sym.Percent)
	sp.Plus = runeField(sym.Plus)
	sp.Minus = runeField(sym.Minus)
	sp.PerMille = runeField(sym.PerMille)
	return sp
}

func runeField(o model.Opt[rune]) string {
	if r, ok := o.Get(); ok {
		return string(r)
	}
	return ""
}

func sortedSystemIDs(symbols map[string]model.NumberSymbols) []string {
	out := make([]string, 0, len(symbols))
	for id := range symbols {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
