// Package assemble aggregates per-locale records and the shared
// supplemental tables into the final resolved model handed to an emitter.
package assemble

import (
	"cldrgen/internal/model"
	"cldrgen/internal/supplemental"
)

// Corpus is everything loaded from disk, before resolution: the shared
// write-once tables plus the flat list of locale descriptors.
type Corpus struct {
	Systems map[string]model.NumberingSystem
	Supp    *supplemental.Data
	ISO639  map[string]supplemental.ISO639Entry
	Locales []*model.Locale
}

// Metadata is the side-table of code lists the emitter receives alongside
// the locale graph. All lists are sorted; maps are keyed by the codes that
// actually occur in the corpus.
type Metadata struct {
	Territories []string // distinct 2-letter territory codes
	Languages   []string // distinct 2-letter language codes
	Scripts     []string // distinct 4-letter script codes

	TerritoryAlpha3 map[string]string // alpha-2 -> alpha-3, corpus territories only
	ISO639          map[string]string // alpha-2 -> preferred alpha-3 (terminology over bibliographic)
}

// Model is the complete output contract: deduplicated numbering systems,
// calendar ids, metadata tables, and the resolved locale graph with parent
// links by canonical key. Assembling the same corpus twice yields an
// identical Model.
type Model struct {
	NumberingSystems []model.NumberingSystem // sorted by id
	Calendars        []string
	Metadata         Metadata
	Locales          []model.Resolved // sorted by canonical key
}

// LocaleByKey returns the resolved locale with the given canonical key.
func (m *Model) LocaleByKey(key string) (model.Resolved, bool) {
	for _, res := range m.Locales {
		if res.Locale.Key() == key {
			return res, true
		}
	}
	return model.Resolved{}, false
}

// System returns the deduplicated numbering system with the given id.
func (m *Model) System(id string) (model.NumberingSystem, bool) {
	for _, sys := range m.NumberingSystems {
		if sys.ID == id {
			return sys, true
		}
	}
	return model.NumberingSystem{}, false
}
