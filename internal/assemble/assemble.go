package assemble

import (
	"sort"

	"golang.org/x/text/language"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/resolve"
)

// Resolve computes every locale's parent and verifies the tree
// post-condition. It runs strictly after every descriptor exists: the
// tree check is a whole-corpus property. Failures are reported through
// the reporter and returned.
func Resolve(corpus Corpus, reporter diag.Reporter) ([]model.Resolved, error) {
	resolver, err := resolve.New(corpus.Locales, corpus.Supp.Overrides, reporter)
	if err != nil {
		return nil, err
	}
	return resolver.All()
}

// Build aggregates the final model from an already resolved corpus:
// numbering systems in id order, calendar ids, metadata side-tables.
func Build(corpus Corpus, resolved []model.Resolved) *Model {
	systems := make([]model.NumberingSystem, 0, len(corpus.Systems))
	for _, sys := range corpus.Systems {
		systems = append(systems, sys)
	}
	sort.Slice(systems, func(i, j int) bool { return systems[i].ID < systems[j].ID })

	return &Model{
		NumberingSystems: systems,
		Calendars:        append([]string(nil), corpus.Supp.Calendars...),
		Metadata:         metadata(corpus),
		Locales:          resolved,
	}
}

// Assemble runs resolution and aggregation in one step.
func Assemble(corpus Corpus, reporter diag.Reporter) (*Model, error) {
	resolved, err := Resolve(corpus, reporter)
	if err != nil {
		return nil, err
	}
	return Build(corpus, resolved), nil
}

// metadata aggregates the distinct territory/language/script codes of the
// corpus, filtered to canonical forms, and cross-references the external
// code tables.
func metadata(corpus Corpus) Metadata {
	terr := make(map[string]bool)
	lang := make(map[string]bool)
	script := make(map[string]bool)

	for _, loc := range corpus.Locales {
		id := loc.Identity
		if isAlpha2Region(id.Territory) {
			terr[id.Territory] = true
		}
		if isAlpha2Language(id.Language) {
			lang[id.Language] = true
		}
		if isScriptCode(id.Script) {
			script[id.Script] = true
		}
	}

	md := Metadata{
		Territories:     sortedKeys(terr),
		Languages:       sortedKeys(lang),
		Scripts:         sortedKeys(script),
		TerritoryAlpha3: make(map[string]string),
		ISO639:          make(map[string]string),
	}

	for _, t := range md.Territories {
		if a3, ok := corpus.Supp.TerritoryAlpha3[t]; ok {
			md.TerritoryAlpha3[t] = a3
		}
	}
	for _, l := range md.Languages {
		if entry, ok := corpus.ISO639[l]; ok {
			md.ISO639[l] = entry.Alpha3()
		}
	}
	return md
}

// isAlpha2Region accepts canonical 2-letter territory codes; CLDR also
// uses UN M.49 numeric areas ("419"), which are excluded here.
func isAlpha2Region(code string) bool {
	if len(code) != 2 {
		return false
	}
	_, err := language.ParseRegion(code)
	return err == nil
}

func isAlpha2Language(code string) bool {
	if len(code) != 2 {
		return false
	}
	_, err := language.ParseBase(code)
	return err == nil
}

func isScriptCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	_, err := language.ParseScript(code)
	return err == nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
