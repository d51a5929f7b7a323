package model

import "strings"

// KeySep joins subtags into canonical keys. It matches the separator CLDR
// uses in bundle names, so canonical keys and bundle names compare directly.
const KeySep = "_"

// RootKey is the canonical key of the designated root locale.
const RootKey = "root"

// Identity is a locale's subtag decomposition. Language is required;
// everything else is optional and empty when absent.
type Identity struct {
	Language  string
	Script    string
	Territory string
	Variant   string
}

// Subtags returns the present subtags in canonical order: language,
// script, territory, variant.
func (id Identity) Subtags() []string {
	out := make([]string, 0, 4)
	out = append(out, id.Language)
	if id.Script != "" {
		out = append(out, id.Script)
	}
	if id.Territory != "" {
		out = append(out, id.Territory)
	}
	if id.Variant != "" {
		out = append(out, id.Variant)
	}
	return out
}

// Key derives the canonical compound key: present subtags joined by KeySep.
// Keys are unique across a well-formed corpus and are the sole currency of
// equality, lookup and hierarchy comparison.
func (id Identity) Key() string {
	return strings.Join(id.Subtags(), KeySep)
}

// IsRoot reports whether the identity is the designated root.
func (id Identity) IsRoot() bool {
	return id.Key() == RootKey
}

// Locale is one locale's descriptor as extracted from its document, before
// inheritance resolution. Nothing here is mutated after construction.
type Locale struct {
	Identity   Identity
	BundleName string

	// DefaultNumberingSystem references a NumberingSystem by id. Unknown
	// ids are dropped at build time, so a present value always resolves
	// against the deduplicated corpus table.
	DefaultNumberingSystem Opt[string]

	// NumberSymbols is keyed by numbering system id; most locales carry
	// exactly one entry, for their default system.
	NumberSymbols map[string]NumberSymbols

	Calendar Opt[CalendarSymbols]
	Patterns Opt[CalendarPatternSet]
}

// Key returns the locale's canonical compound key.
func (l *Locale) Key() string {
	return l.Identity.Key()
}

// Resolved is a locale descriptor plus its resolved parent reference.
// Parent is a canonical key, empty only for the root locale. Parent links
// are name references, never object links, so consumers can order
// declarations topologically without walking a cyclic graph.
type Resolved struct {
	Locale *Locale
	Parent string
}
