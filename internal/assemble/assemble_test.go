package assemble

import (
	"reflect"
	"testing"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/supplemental"
	"cldrgen/internal/testkit"
)

func testCorpus() Corpus {
	latn := model.NumberingSystem{ID: "latn"}
	copy(latn.Digits[:], []rune("0123456789"))
	arab := model.NumberingSystem{ID: "arab"}
	copy(arab.Digits[:], []rune("٠١٢٣٤٥٦٧٨٩"))

	mk := func(lang, script, terr string) *model.Locale {
		id := model.Identity{Language: lang, Script: script, Territory: terr}
		return &model.Locale{Identity: id, BundleName: id.Key()}
	}

	return Corpus{
		Systems: map[string]model.NumberingSystem{"latn": latn, "arab": arab},
		Supp: &supplemental.Data{
			Calendars:       []string{"buddhist", "gregorian"},
			TerritoryAlpha3: map[string]string{"GB": "GBR", "US": "USA", "FR": "FRA"},
			Overrides:       model.NewParentOverrides(),
		},
		ISO639: map[string]supplemental.ISO639Entry{
			"en": {Bibliographic: "eng", Alpha2: "en"},
			"fr": {Bibliographic: "fre", Terminology: "fra", Alpha2: "fr"},
			"de": {Bibliographic: "ger", Terminology: "deu", Alpha2: "de"},
		},
		Locales: []*model.Locale{
			mk("root", "", ""),
			mk("en", "", ""),
			mk("en", "", "GB"),
			mk("es", "", "419"), // UN M.49 area, not an alpha-2 territory
			mk("es", "", ""),
			mk("sr", "Latn", ""),
			mk("sr", "", ""),
		},
	}
}

func TestAssemble(t *testing.T) {
	m, err := Assemble(testCorpus(), diag.NopReporter{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// numbering systems sorted by id
	if len(m.NumberingSystems) != 2 {
		t.Fatalf("systems = %d", len(m.NumberingSystems))
	}
	if m.NumberingSystems[0].ID != "arab" || m.NumberingSystems[1].ID != "latn" {
		t.Errorf("system order = [%s %s]", m.NumberingSystems[0].ID, m.NumberingSystems[1].ID)
	}

	// locales sorted by canonical key, parents resolved
	if len(m.Locales) != 7 {
		t.Fatalf("locales = %d", len(m.Locales))
	}
	testkit.CheckLocaleTree(t, m.Locales)
	enGB, ok := m.LocaleByKey("en_GB")
	if !ok {
		t.Fatal("en_GB missing")
	}
	if enGB.Parent != "en" {
		t.Errorf("en_GB parent = %q", enGB.Parent)
	}
	es419, ok := m.LocaleByKey("es_419")
	if !ok {
		t.Fatal("es_419 missing")
	}
	if es419.Parent != "es" {
		t.Errorf("es_419 parent = %q", es419.Parent)
	}
}

func TestAssembleMetadata(t *testing.T) {
	m, err := Assemble(testCorpus(), diag.NopReporter{})
	if err != nil {
		t.Fatal(err)
	}
	md := m.Metadata

	// GB is the only alpha-2 territory in the corpus; 419 is numeric
	if !reflect.DeepEqual(md.Territories, []string{"GB"}) {
		t.Errorf("Territories = %v", md.Territories)
	}
	if !reflect.DeepEqual(md.Languages, []string{"en", "es", "sr"}) {
		t.Errorf("Languages = %v", md.Languages)
	}
	if !reflect.DeepEqual(md.Scripts, []string{"Latn"}) {
		t.Errorf("Scripts = %v", md.Scripts)
	}

	// cross-references restricted to corpus codes
	if !reflect.DeepEqual(md.TerritoryAlpha3, map[string]string{"GB": "GBR"}) {
		t.Errorf("TerritoryAlpha3 = %v", md.TerritoryAlpha3)
	}
	if md.ISO639["en"] != "eng" {
		t.Errorf("ISO639[en] = %q", md.ISO639["en"])
	}
	if _, ok := md.ISO639["de"]; ok {
		t.Error("de is not in the corpus and should not be cross-referenced")
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a, err := Assemble(testCorpus(), diag.NopReporter{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Assemble(testCorpus(), diag.NopReporter{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.NumberingSystems, b.NumberingSystems) {
		t.Error("numbering systems differ between runs")
	}
	if !reflect.DeepEqual(a.Metadata, b.Metadata) {
		t.Error("metadata differs between runs")
	}
	if len(a.Locales) != len(b.Locales) {
		t.Fatal("locale counts differ")
	}
	for i := range a.Locales {
		if a.Locales[i].Locale.Key() != b.Locales[i].Locale.Key() ||
			a.Locales[i].Parent != b.Locales[i].Parent {
			t.Errorf("locale %d differs between runs", i)
		}
	}
}
