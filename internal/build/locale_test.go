package build

import (
	"strings"
	"testing"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/source"
)

func parseDoc(t *testing.T, name, content string) (*source.File, *cldrxml.Node) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(content))
	file := fs.Get(id)
	doc, err := cldrxml.Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return file, doc
}

func latnSystems() map[string]model.NumberingSystem {
	latn := model.NumberingSystem{ID: "latn"}
	copy(latn.Digits[:], []rune("0123456789"))
	arab := model.NumberingSystem{ID: "arab"}
	copy(arab.Digits[:], []rune("٠١٢٣٤٥٦٧٨٩"))
	return map[string]model.NumberingSystem{"latn": latn, "arab": arab}
}

func TestLocaleIdentity(t *testing.T) {
	file, doc := parseDoc(t, "sr_Latn_RS.xml", `<ldml>
		<identity>
			<language type="sr"/>
			<script type="Latn"/>
			<territory type="RS"/>
		</identity>
	</ldml>`)

	loc, err := Locale(file, doc, latnSystems(), diag.NopReporter{})
	if err != nil {
		t.Fatalf("Locale: %v", err)
	}
	if loc.Key() != "sr_Latn_RS" {
		t.Errorf("Key = %q, want sr_Latn_RS", loc.Key())
	}
	if loc.BundleName != "sr_Latn_RS" {
		t.Errorf("BundleName = %q", loc.BundleName)
	}
	if loc.Calendar.IsSome() {
		t.Error("calendar should be absent")
	}
	if loc.Patterns.IsSome() {
		t.Error("patterns should be absent")
	}
}

func TestLocaleMissingLanguage(t *testing.T) {
	file, doc := parseDoc(t, "bad.xml", `<ldml><identity><territory type="GB"/></identity></ldml>`)

	bag := diag.NewBag(10)
	_, err := Locale(file, doc, latnSystems(), diag.BagReporter{Bag: bag})
	if err == nil {
		t.Fatal("expected an error for missing language subtag")
	}
	if !bag.HasErrors() {
		t.Error("expected an error diagnostic")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.BuildMissingLanguage {
			found = true
		}
	}
	if !found {
		t.Error("expected BuildMissingLanguage diagnostic")
	}
}

func TestLocaleNoLdmlElement(t *testing.T) {
	file, doc := parseDoc(t, "odd.xml", `<other/>`)
	_, err := Locale(file, doc, latnSystems(), diag.NopReporter{})
	if err == nil || !strings.Contains(err.Error(), "ldml") {
		t.Errorf("err = %v, want missing-ldml error", err)
	}
}

func TestLocaleDefaultNumberingSystem(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want model.Opt[string]
	}{
		{
			"known system kept",
			`<ldml><identity><language type="ar"/></identity>
				<numbers><defaultNumberingSystem>arab</defaultNumberingSystem></numbers></ldml>`,
			model.Some("arab"),
		},
		{
			"unknown system dropped",
			`<ldml><identity><language type="xx"/></identity>
				<numbers><defaultNumberingSystem>hanidec</defaultNumberingSystem></numbers></ldml>`,
			model.None[string](),
		},
		{
			"absent element",
			`<ldml><identity><language type="en"/></identity></ldml>`,
			model.None[string](),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, doc := parseDoc(t, "t.xml", tt.xml)
			loc, err := Locale(file, doc, latnSystems(), diag.NopReporter{})
			if err != nil {
				t.Fatalf("Locale: %v", err)
			}
			if loc.DefaultNumberingSystem != tt.want {
				t.Errorf("DefaultNumberingSystem = %v, want %v", loc.DefaultNumberingSystem, tt.want)
			}
		})
	}
}
